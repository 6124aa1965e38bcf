package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
	"github.com/matzehuels/wedgeplot/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dc    *gg.Context
	vp    render.Viewport
	width float64
	scale float64
	style Style
	axes  bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGWidth sets the logical canvas width in pixels, before scaling.
func WithPNGWidth(w float64) PNGOption { return func(r *pngRenderer) { r.width = w } }

// WithPNGStyle replaces the default style.
func WithPNGStyle(s Style) PNGOption { return func(r *pngRenderer) { r.style = s } }

// WithoutPNGAxes omits the frame, ticks and axis labels.
func WithoutPNGAxes() PNGOption { return func(r *pngRenderer) { r.axes = false } }

// RenderPNG rasterises d in-process. Text uses gg's built-in bitmap face.
func RenderPNG(d diagram.Diagram, opts ...PNGOption) ([]byte, error) {
	r := &pngRenderer{width: render.DefaultWidth, scale: 2.0, style: DefaultStyle(), axes: true}
	for _, opt := range opts {
		opt(r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "png scale must be positive, got %g", r.scale)
	}

	render.Draw(d, r)

	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) SetFrame(f diagram.Frame) {
	r.vp = render.NewViewport(f, r.width)
	r.dc = gg.NewContext(int(r.vp.Width*r.scale), int(r.vp.Height*r.scale))
	r.dc.Scale(r.scale, r.scale)
	r.dc.SetHexColor(r.style.Background)
	r.dc.Clear()
	if r.axes {
		r.drawAxes()
	}
}

func (r *pngRenderer) drawAxes() {
	dc, f := r.dc, r.vp.Frame
	x0, y0, x1, y1 := r.vp.PlotRect()

	dc.SetHexColor(r.style.AxisColor)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	dc.Stroke()
	for _, v := range render.Ticks(f.MinX, f.MaxX, tickCount) {
		x, _ := r.vp.Map(geometry.Point{X: v, Y: f.MinY})
		dc.DrawLine(x, y1, x, y1+5)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(v), x, y1+14, 0.5, 0.5)
	}
	for _, v := range render.Ticks(f.MinY, f.MaxY, tickCount) {
		_, y := r.vp.Map(geometry.Point{X: f.MinX, Y: v})
		dc.DrawLine(x0-5, y, x0, y)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(v), x0-8, y, 1, 0.5)
	}
	if f.XLabel != "" {
		dc.DrawStringAnchored(f.XLabel, (x0+x1)/2, y1+36, 0.5, 0.5)
	}
	if f.YLabel != "" {
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), x0-52, (y0+y1)/2)
		dc.DrawStringAnchored(f.YLabel, x0-52, (y0+y1)/2, 0.5, 0.5)
		dc.Pop()
	}
}

// DrawAnnularWedge traces the outer arc forward and the inner arc back.
// Pixel space is y-down, so diagram angles are negated.
func (r *pngRenderer) DrawAnnularWedge(w diagram.WedgeArc) {
	cx, cy := r.vp.Map(w.Center)
	outer, inner := r.vp.Length(w.Radius), r.vp.Length(w.Radius-w.Width)
	a0, a1 := -gg.Radians(w.StartAngle), -gg.Radians(w.EndAngle)
	r.dc.NewSubPath()
	r.dc.DrawArc(cx, cy, outer, a0, a1)
	r.dc.DrawArc(cx, cy, inner, a1, a0)
	r.dc.ClosePath()
	if r.style.WedgeFill != NoFill && r.style.WedgeFill != "" {
		r.dc.SetHexColor(r.style.WedgeFill)
		r.dc.FillPreserve()
	}
	r.dc.SetHexColor(r.style.WedgeStroke)
	r.dc.SetLineWidth(r.style.StrokeWidth)
	r.dc.Stroke()
}

func (r *pngRenderer) DrawArrow(a diagram.Arrow) {
	shaftEnd, head := render.ArrowShape(a)
	r.dc.SetHexColor(r.style.ArrowColor)
	r.dc.SetLineWidth(r.style.StrokeWidth * 1.5)
	r.path([]geometry.Point{a.Tail, shaftEnd})
	r.dc.Stroke()
	r.triangle(head)
}

func (r *pngRenderer) DrawText(t diagram.TextLabel) {
	x, y := r.vp.Map(t.Position)
	ax := 0.5
	if t.Style == diagram.LabelAnnotation {
		ax = 0
	}
	r.dc.SetHexColor(r.style.TextColor)
	r.dc.DrawStringAnchored(t.Text, x, y, ax, 0.5)
}

func (r *pngRenderer) DrawCurvedBracket(b diagram.AngularBracket) {
	br := render.BracketShape(b)
	r.dc.SetHexColor(r.style.BracketColor)
	r.dc.SetLineWidth(r.style.StrokeWidth)
	sx, sy := r.vp.Map(br.Start)
	cx, cy := r.vp.Map(br.Control)
	ex, ey := r.vp.Map(br.End)
	r.dc.NewSubPath()
	r.dc.MoveTo(sx, sy)
	r.dc.QuadraticTo(cx, cy, ex, ey)
	r.dc.Stroke()
	r.triangle(br.StartHead)
	r.triangle(br.EndHead)
}

func (r *pngRenderer) triangle(t render.Triangle) {
	r.path(t[:])
	r.dc.ClosePath()
	r.dc.Fill()
}

func (r *pngRenderer) path(pts []geometry.Point) {
	r.dc.NewSubPath()
	for i, p := range pts {
		x, y := r.vp.Map(p)
		if i == 0 {
			r.dc.MoveTo(x, y)
		} else {
			r.dc.LineTo(x, y)
		}
	}
}
