package diagram

import (
	"github.com/matzehuels/wedgeplot/pkg/geometry"
)

// Kind tags the concrete type of a [Primitive].
type Kind int

const (
	KindWedgeArc Kind = iota
	KindArrow
	KindTextLabel
	KindAngularBracket
)

var kindNames = [...]string{"wedge", "arrow", "text", "bracket"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Primitive is one draw instruction. The set of implementations is closed:
// [WedgeArc], [Arrow], [TextLabel] and [AngularBracket].
type Primitive interface {
	Kind() Kind
	primitive()
}

// Ref locates a primitive in the layout. Sector is -1 for annotations.
type Ref struct {
	Sector   int
	Quadrant geometry.Quadrant
}

// WedgeArc is an annular wedge: the band between Radius-Width and Radius,
// from StartAngle to EndAngle (degrees, counter-clockwise).
type WedgeArc struct {
	Ref
	Center     geometry.Point
	Radius     float64
	Width      float64
	StartAngle float64
	EndAngle   float64
}

// Arrow is a straight arrow from Tail to Tail+Vector.
type Arrow struct {
	Ref
	Tail      geometry.Point
	Vector    geometry.Point
	HeadWidth float64
}

// Head returns Tail + Vector.
func (a Arrow) Head() geometry.Point { return a.Tail.Add(a.Vector) }

// Length returns the length of the arrow.
func (a Arrow) Length() float64 { return a.Vector.Len() }

// Degenerate reports a zero-length arrow, produced by a zero-width sector.
// Renderers skip drawing degenerate arrows.
func (a Arrow) Degenerate() bool { return a.Length() <= geometry.Epsilon }

// LabelStyle distinguishes the roles of text labels.
type LabelStyle string

const (
	LabelWidth       LabelStyle = "width"
	LabelOrientation LabelStyle = "orientation"
	LabelAnnotation  LabelStyle = "annotation"
)

// TextLabel is a string anchored at Position.
type TextLabel struct {
	Ref
	Position geometry.Point
	Text     string
	Style    LabelStyle
}

// AngularBracket is a curved double-headed connector from Start to End on
// the circle of Radius around Center.
//
// Curvature is the quadratic control point offset, relative to the chord
// length, measured to the right of the Start→End direction. It equals
// tan(θ/4) for an arc of θ, which makes the curve hug the circle.
type AngularBracket struct {
	Ref
	Start     geometry.Point
	End       geometry.Point
	Center    geometry.Point
	Radius    float64
	Curvature float64
	HeadWidth float64
}

func (WedgeArc) Kind() Kind       { return KindWedgeArc }
func (Arrow) Kind() Kind          { return KindArrow }
func (TextLabel) Kind() Kind      { return KindTextLabel }
func (AngularBracket) Kind() Kind { return KindAngularBracket }

func (WedgeArc) primitive()       {}
func (Arrow) primitive()          {}
func (TextLabel) primitive()      {}
func (AngularBracket) primitive() {}
