package geometry

import (
	"fmt"
	"math"

	"github.com/npillmayer/arithm"

	"github.com/matzehuels/wedgeplot/pkg/errors"
)

// Quadrant identifies one of the four replicas of a full-circle layout.
type Quadrant int

const (
	Q1 Quadrant = iota + 1
	Q2
	Q3
	Q4
)

func (q Quadrant) String() string {
	if q < Q1 || q > Q4 {
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
	return fmt.Sprintf("Q%d", int(q))
}

// Symmetry maps first-quadrant geometry into one quadrant of the circle.
type Symmetry struct {
	Quadrant Quadrant

	// Transform is the 3x3 affine map applied to points, flattened by rows.
	Transform arithm.AT

	// angle maps a first-quadrant polar angle to its image.
	angle func(deg float64) float64
}

// Symmetries lists the four quadrant operators in emission order.
var Symmetries = [4]Symmetry{
	{
		Quadrant:  Q1,
		Transform: arithm.Identity(),
		angle:     func(deg float64) float64 { return deg },
	},
	{
		// reflection about the y axis
		Quadrant:  Q2,
		Transform: arithm.AT{-1, 0, 0, 0, 1, 0, 0, 0, 1},
		angle:     func(deg float64) float64 { return 180 - deg },
	},
	{
		// half turn about the origin
		Quadrant:  Q3,
		Transform: arithm.Rotation(math.Pi),
		angle:     func(deg float64) float64 { return 180 + deg },
	},
	{
		// reflection about the x axis
		Quadrant:  Q4,
		Transform: arithm.AT{1, 0, 0, 0, -1, 0, 0, 0, 1},
		angle:     func(deg float64) float64 { return 360 - deg },
	},
}

// Apply transforms a point.
func (m Symmetry) Apply(p Point) Point {
	return FromPair(m.Transform.Transform(p.Pair()).Zap())
}

// Reflects reports whether the operator reverses orientation, which swaps
// the start and end of every angular interval.
func (m Symmetry) Reflects() bool {
	t := m.Transform
	return t[0]*t[4]-t[1]*t[3] < 0
}

// Mirror returns the image of s under m. The source sector is left untouched.
// Identity returns s unchanged apart from its Quadrant.
func (m Symmetry) Mirror(s Sector) Sector {
	if m.Quadrant == Q1 {
		s.Quadrant = Q1
		return s
	}

	r := s
	r.Quadrant = m.Quadrant

	start, end := m.angle(s.StartAngle), m.angle(s.EndAngle)
	bracketStart, bracketEnd := m.Apply(s.BracketStart), m.Apply(s.BracketEnd)
	if m.Reflects() {
		start, end = end, start
		bracketStart, bracketEnd = bracketEnd, bracketStart
	}
	r.StartAngle, r.EndAngle = start, end
	r.MeanAngle = m.angle(s.MeanAngle)

	r.ArrowAngle = m.Apply(Direction(s.ArrowAngle)).Angle()
	r.ArrowTail = m.Apply(s.ArrowTail)
	r.ArrowHead = m.Apply(s.ArrowHead)

	r.LabelWidthPos = m.Apply(s.LabelWidthPos)
	r.LabelOrientationPos = m.Apply(s.LabelOrientationPos)

	r.BracketStart, r.BracketEnd = bracketStart, bracketEnd
	return r
}

// MaxMirrorSpan is the widest quadrant span that can be mirrored without
// replicas overlapping.
const MaxMirrorSpan = 90.0

// CheckMirrorSpan returns a ConfigError when a quadrant of span degrees
// cannot be mirrored to the full circle.
func CheckMirrorSpan(span float64) error {
	if span > MaxMirrorSpan {
		return errors.Config("span %g exceeds %g degrees and cannot be mirrored", span, MaxMirrorSpan)
	}
	return nil
}

// MirrorToFullCircle replicates first-quadrant sectors into all four
// quadrants. The result is ordered by sector, then by quadrant: sector 0 in
// Q1..Q4, then sector 1 in Q1..Q4, and so on.
//
// When the input tiles 0° to 90° the replicas tile the full circle. For a
// smaller span the replicas stay disjoint and the uncovered gaps are
// symmetric about both axes.
func MirrorToFullCircle(sectors []Sector) []Sector {
	out := make([]Sector, 0, len(sectors)*len(Symmetries))
	for _, s := range sectors {
		for _, m := range Symmetries {
			out = append(out, m.Mirror(s))
		}
	}
	return out
}
