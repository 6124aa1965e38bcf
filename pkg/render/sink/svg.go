package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
	"github.com/matzehuels/wedgeplot/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	buf    bytes.Buffer
	canvas *svg.SVG
	vp     render.Viewport
	width  float64
	style  Style
	title  string
	axes   bool
}

// WithWidth sets the canvas width in pixels. The height follows the frame.
func WithWidth(w float64) SVGOption { return func(r *svgRenderer) { r.width = w } }

// WithStyle replaces the default style.
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle adds a document title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithoutAxes omits the frame, ticks and axis labels.
func WithoutAxes() SVGOption { return func(r *svgRenderer) { r.axes = false } }

// RenderSVG draws d as a standalone SVG document.
func RenderSVG(d diagram.Diagram, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	render.Draw(d, r)
	r.canvas.Gend()
	r.canvas.End()
	return r.buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) *svgRenderer {
	r := &svgRenderer{width: render.DefaultWidth, style: DefaultStyle(), axes: true}
	for _, opt := range opts {
		opt(r)
	}
	r.canvas = svg.New(&r.buf)
	return r
}

func (r *svgRenderer) SetFrame(f diagram.Frame) {
	r.vp = render.NewViewport(f, r.width)
	w, h := int(r.vp.Width), int(r.vp.Height)
	r.canvas.Start(w, h, fmt.Sprintf(`viewBox="0 0 %d %d"`, w, h))
	if r.title != "" {
		r.canvas.Title(r.title)
	}
	r.canvas.Rect(0, 0, w, h, "fill:"+r.style.Background)
	if r.axes {
		r.drawAxes()
	}
	r.canvas.Gstyle(fmt.Sprintf("font-family:%s;font-size:%gpx", r.style.FontFamily, r.style.FontSize))
}

func (r *svgRenderer) drawAxes() {
	s, f := r.style, r.vp.Frame
	x0, y0, x1, y1 := r.vp.PlotRect()
	axis := fmt.Sprintf("stroke:%s;stroke-width:1;fill:none", s.AxisColor)
	label := fmt.Sprintf("fill:%s;font-family:%s;font-size:%gpx", s.TextColor, s.FontFamily, s.FontSize)

	r.canvas.Gid("axes")
	r.canvas.Rect(px(x0), px(y0), px(x1-x0), px(y1-y0), axis)
	for _, v := range render.Ticks(f.MinX, f.MaxX, tickCount) {
		x, _ := r.vp.Map(geometry.Point{X: v, Y: f.MinY})
		r.canvas.Line(px(x), px(y1), px(x), px(y1+5), axis)
		r.canvas.Text(px(x), px(y1+18), tickLabel(v), label+";text-anchor:middle")
	}
	for _, v := range render.Ticks(f.MinY, f.MaxY, tickCount) {
		_, y := r.vp.Map(geometry.Point{X: f.MinX, Y: v})
		r.canvas.Line(px(x0-5), px(y), px(x0), px(y), axis)
		r.canvas.Text(px(x0-8), px(y+4), tickLabel(v), label+";text-anchor:end")
	}
	if f.XLabel != "" {
		r.canvas.Text(px((x0+x1)/2), px(y1+40), f.XLabel, label+";text-anchor:middle")
	}
	if f.YLabel != "" {
		cx, cy := px(x0-52), px((y0+y1)/2)
		r.canvas.Text(cx, cy, f.YLabel, label+";text-anchor:middle",
			fmt.Sprintf(`transform="rotate(-90 %d %d)"`, cx, cy))
	}
	r.canvas.Gend()
}

func (r *svgRenderer) DrawAnnularWedge(w diagram.WedgeArc) {
	outer, inner := r.vp.Length(w.Radius), r.vp.Length(w.Radius-w.Width)
	mid := (w.StartAngle + w.EndAngle) / 2
	at := func(radius, deg float64) geometry.Point { return w.Center.Add(geometry.Polar(radius, deg)) }

	// Each arc is split at the mean angle so no half exceeds 180 degrees.
	var p strings.Builder
	r.moveTo(&p, at(w.Radius, w.StartAngle))
	r.arcTo(&p, outer, 0, at(w.Radius, mid))
	r.arcTo(&p, outer, 0, at(w.Radius, w.EndAngle))
	r.lineTo(&p, at(w.Radius-w.Width, w.EndAngle))
	r.arcTo(&p, inner, 1, at(w.Radius-w.Width, mid))
	r.arcTo(&p, inner, 1, at(w.Radius-w.Width, w.StartAngle))
	p.WriteString("Z")

	r.canvas.Path(p.String(),
		fmt.Sprintf(`class="wedge" data-sector="%d" data-quadrant="%d"`, w.Sector, w.Quadrant),
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", r.style.WedgeFill, r.style.WedgeStroke, r.style.StrokeWidth))
}

func (r *svgRenderer) DrawArrow(a diagram.Arrow) {
	shaftEnd, head := render.ArrowShape(a)
	var p strings.Builder
	r.moveTo(&p, a.Tail)
	r.lineTo(&p, shaftEnd)
	r.canvas.Path(p.String(), `class="arrow"`,
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", r.style.ArrowColor, r.style.StrokeWidth*1.5))
	r.triangle(head, r.style.ArrowColor)
}

func (r *svgRenderer) DrawText(t diagram.TextLabel) {
	x, y := r.vp.Map(t.Position)
	anchor := "middle"
	if t.Style == diagram.LabelAnnotation {
		anchor = "start"
	}
	r.canvas.Text(px(x), px(y), t.Text,
		fmt.Sprintf(`class="label-%s"`, t.Style),
		fmt.Sprintf("fill:%s;text-anchor:%s;dominant-baseline:middle", r.style.TextColor, anchor))
}

func (r *svgRenderer) DrawCurvedBracket(b diagram.AngularBracket) {
	br := render.BracketShape(b)
	var p strings.Builder
	r.moveTo(&p, br.Start)
	sx, sy := r.vp.Map(br.Control)
	ex, ey := r.vp.Map(br.End)
	fmt.Fprintf(&p, "Q%.2f %.2f %.2f %.2f", sx, sy, ex, ey)
	r.canvas.Path(p.String(), `class="bracket"`,
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", r.style.BracketColor, r.style.StrokeWidth))
	r.triangle(br.StartHead, r.style.BracketColor)
	r.triangle(br.EndHead, r.style.BracketColor)
}

func (r *svgRenderer) triangle(t render.Triangle, color string) {
	var p strings.Builder
	r.moveTo(&p, t[0])
	r.lineTo(&p, t[1])
	r.lineTo(&p, t[2])
	p.WriteString("Z")
	r.canvas.Path(p.String(), "fill:"+color)
}

func (r *svgRenderer) moveTo(b *strings.Builder, p geometry.Point) {
	x, y := r.vp.Map(p)
	fmt.Fprintf(b, "M%.2f %.2f ", x, y)
}

func (r *svgRenderer) lineTo(b *strings.Builder, p geometry.Point) {
	x, y := r.vp.Map(p)
	fmt.Fprintf(b, "L%.2f %.2f ", x, y)
}

// arcTo appends a circular arc of radius rad pixels. With y pointing down,
// sweep 0 runs counter-clockwise in diagram space.
func (r *svgRenderer) arcTo(b *strings.Builder, rad float64, sweep int, p geometry.Point) {
	x, y := r.vp.Map(p)
	fmt.Fprintf(b, "A%.2f %.2f 0 0 %d %.2f %.2f ", rad, rad, sweep, x, y)
}

func px(v float64) int { return int(math.Round(v)) }
