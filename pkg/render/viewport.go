package render

import (
	"math"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
)

// Plot margins in pixels, leaving room for tick and axis labels.
const (
	MarginLeft   = 70.0
	MarginRight  = 24.0
	MarginTop    = 24.0
	MarginBottom = 56.0
)

// DefaultWidth is the default canvas width in pixels.
const DefaultWidth = 800.0

// Viewport maps diagram coordinates onto a pixel canvas with y pointing down.
// Both axes share one scale, so circles stay circular.
type Viewport struct {
	Frame  diagram.Frame
	Width  float64
	Height float64
	scale  float64
}

// NewViewport fits f into a canvas width pixels wide; the height follows from
// the frame's aspect ratio.
func NewViewport(f diagram.Frame, width float64) Viewport {
	if width <= MarginLeft+MarginRight {
		width = DefaultWidth
	}
	plot := width - MarginLeft - MarginRight
	scale := 1.0
	if f.Width() > 0 {
		scale = plot / f.Width()
	}
	return Viewport{
		Frame:  f,
		Width:  width,
		Height: math.Ceil(f.Height()*scale + MarginTop + MarginBottom),
		scale:  scale,
	}
}

// Scale returns pixels per diagram unit.
func (v Viewport) Scale() float64 { return v.scale }

// Map converts a diagram point to pixel coordinates.
func (v Viewport) Map(p geometry.Point) (x, y float64) {
	return MarginLeft + (p.X-v.Frame.MinX)*v.scale, MarginTop + (v.Frame.MaxY-p.Y)*v.scale
}

// Length converts a diagram length to pixels.
func (v Viewport) Length(d float64) float64 { return d * v.scale }

// PlotRect returns the pixel rectangle covered by the frame.
func (v Viewport) PlotRect() (x0, y0, x1, y1 float64) {
	x0, y1 = v.Map(geometry.Point{X: v.Frame.MinX, Y: v.Frame.MinY})
	x1, y0 = v.Map(geometry.Point{X: v.Frame.MaxX, Y: v.Frame.MaxY})
	return x0, y0, x1, y1
}
