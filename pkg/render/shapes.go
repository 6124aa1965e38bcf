package render

import (
	"math"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
)

// HeadLengthRatio is the arrowhead length relative to its width.
const HeadLengthRatio = 1.5

// Triangle is a filled arrowhead: tip first, then the two base corners.
type Triangle [3]geometry.Point

// Arrowhead builds a head whose tip is at tip, pointing along dir. The head
// is at most maxLength long. It also returns the midpoint of the base, where
// a shaft should stop.
func Arrowhead(tip, dir geometry.Point, width, maxLength float64) (Triangle, geometry.Point) {
	n := dir.Len()
	if n <= geometry.Epsilon {
		return Triangle{tip, tip, tip}, tip
	}
	u := dir.Scaled(1 / n)
	length := math.Min(HeadLengthRatio*width, maxLength)
	if length < width {
		width = length
	}
	base := tip.Sub(u.Scaled(length))
	half := geometry.Point{X: -u.Y, Y: u.X}.Scaled(width / 2)
	return Triangle{tip, base.Add(half), base.Sub(half)}, base
}

// ArrowShape returns the shaft from a.Tail to shaftEnd and the head at
// a.Head(). The head never takes more than half the arrow.
func ArrowShape(a diagram.Arrow) (shaftEnd geometry.Point, head Triangle) {
	head, shaftEnd = Arrowhead(a.Head(), a.Vector, a.HeadWidth, a.Length()/2)
	return shaftEnd, head
}

// Bracket is the drawable form of an [diagram.AngularBracket]: a quadratic
// curve from Start through Control to End with a head at each end.
type Bracket struct {
	Start, Control, End geometry.Point
	StartHead, EndHead  Triangle
}

// BracketControl returns the quadratic control point of b: the chord
// midpoint offset to the right of Start→End by Curvature×chord length.
func BracketControl(b diagram.AngularBracket) geometry.Point {
	chord := b.End.Sub(b.Start)
	mid := b.Start.Add(b.End).Scaled(0.5)
	n := chord.Len()
	if n <= geometry.Epsilon {
		return mid
	}
	right := geometry.Point{X: chord.Y, Y: -chord.X}.Scaled(1 / n)
	return mid.Add(right.Scaled(b.Curvature * n))
}

// BracketShape computes the curve and both heads of b. Heads are tangent to
// the curve and limited to a third of the chord each.
func BracketShape(b diagram.AngularBracket) Bracket {
	c := BracketControl(b)
	maxLen := b.End.Sub(b.Start).Len() / 3
	sh, _ := Arrowhead(b.Start, b.Start.Sub(c), b.HeadWidth, maxLen)
	eh, _ := Arrowhead(b.End, b.End.Sub(c), b.HeadWidth, maxLen)
	return Bracket{Start: b.Start, Control: c, End: b.End, StartHead: sh, EndHead: eh}
}

// quadraticPoint evaluates the curve of br at t in [0, 1].
func (br Bracket) quadraticPoint(t float64) geometry.Point {
	u := 1 - t
	return br.Start.Scaled(u * u).Add(br.Control.Scaled(2 * u * t)).Add(br.End.Scaled(t * t))
}

// Ticks returns round tick values in [lo, hi], aiming for about n of them.
func Ticks(lo, hi float64, n int) []float64 {
	if n < 1 || !(hi > lo) {
		return nil
	}
	step := niceStep((hi - lo) / float64(n))
	first := math.Ceil(lo/step - 1e-9)
	last := math.Floor(hi/step + 1e-9)
	ticks := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		v := k * step
		if v == 0 {
			v = 0 // no negative zero
		}
		ticks = append(ticks, v)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}
