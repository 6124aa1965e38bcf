package geometry

import (
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
)

// Epsilon is the tolerance used by [Boundary.Degenerate] and degenerate arrows.
const Epsilon = 1e-9

// Point is a 2D point or vector in output units. Arithmetic is delegated to
// [arithm.Pair].
type Point struct {
	X, Y float64
}

// Origin is the centre of the magnet.
var Origin = FromPair(arithm.Origin)

// FromPair converts an arithm pair.
func FromPair(p arithm.Pair) Point {
	x, y := p.F()
	return Point{X: x, Y: y}
}

// Pair returns p as an arithm pair.
func (p Point) Pair() arithm.Pair { return arithm.P(p.X, p.Y) }

// Polar returns the point at radius r and angle deg (degrees, counter-clockwise from +x).
func Polar(r, deg float64) Point {
	return FromPair(arithm.P(r, 0).Rotated(Radians(deg)))
}

// Direction returns the unit vector at angle deg.
func Direction(deg float64) Point {
	return Polar(1, deg)
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return FromPair(p.Pair().Shifted(q.Pair())) }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return FromPair(p.Pair().Shifted(-q.Pair())) }

// Scaled returns p multiplied by a.
func (p Point) Scaled(a float64) Point { return FromPair(p.Pair().Scaled(a)) }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the direction of p in degrees, normalised to [0, 360).
func (p Point) Angle() float64 {
	return NormalizeDegrees(Degrees(math.Atan2(p.Y, p.X)))
}

// Equal reports whether p and q coincide within [arithm.Epsilon].
func (p Point) Equal(q Point) bool { return p.Pair().Equal(q.Pair()) }

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
