package render

import (
	"github.com/matzehuels/wedgeplot/pkg/diagram"
)

// Renderer receives draw instructions. Coordinates are in diagram units
// (millimetres, y axis up); implementations map them to their own space.
type Renderer interface {
	SetFrame(f diagram.Frame)
	DrawAnnularWedge(w diagram.WedgeArc)
	DrawArrow(a diagram.Arrow)
	DrawText(t diagram.TextLabel)
	DrawCurvedBracket(b diagram.AngularBracket)
}

// Draw sets up the frame and sends every primitive of d to r, in order.
// Degenerate arrows are skipped.
func Draw(d diagram.Diagram, r Renderer) {
	r.SetFrame(d.Frame)
	for _, p := range d.Primitives {
		switch p := p.(type) {
		case diagram.WedgeArc:
			r.DrawAnnularWedge(p)
		case diagram.Arrow:
			if p.Degenerate() {
				continue
			}
			r.DrawArrow(p)
		case diagram.TextLabel:
			r.DrawText(p)
		case diagram.AngularBracket:
			r.DrawCurvedBracket(p)
		}
	}
}
