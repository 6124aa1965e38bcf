// Package diagram assembles magnet layouts into ordered draw primitives.
//
// [Assemble] runs the geometry engine (partition, sector placement and, in
// [ModeFull], quadrant mirroring) and emits one [WedgeArc], one [Arrow], two
// [TextLabel] values and one [AngularBracket] per sector, followed by the
// configuration's static annotations.
//
// Emission order is sector index ascending, then quadrant Q1→Q4. Renderers
// draw primitives in slice order, so this order is also the z-order.
//
//	d, err := diagram.Assemble(magnet.MagnetIV(), diagram.ModeFull)
//	if err != nil {
//	    return err // ConfigError
//	}
//	for _, p := range d.Primitives {
//	    // draw p
//	}
package diagram

import (
	"fmt"
	"math"

	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

// Mode selects a single quadrant or the mirrored full circle.
type Mode string

const (
	ModeQuadrant Mode = "quadrant"
	ModeFull     Mode = "full"
)

// Modes lists the valid modes.
var Modes = []string{string(ModeQuadrant), string(ModeFull)}

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	if err := errors.ValidateChoice(errors.ErrCodeInvalidMode, "mode", s, Modes); err != nil {
		return "", err
	}
	return Mode(s), nil
}

// MaxMirrorSpan is the widest quadrant span accepted by [ModeFull].
const MaxMirrorSpan = geometry.MaxMirrorSpan

// Frame describes the axes a renderer should set up.
type Frame struct {
	MinX, MinY float64
	MaxX, MaxY float64
	XLabel     string
	YLabel     string
}

// Width returns MaxX - MinX.
func (f Frame) Width() float64 { return f.MaxX - f.MinX }

// Height returns MaxY - MinY.
func (f Frame) Height() float64 { return f.MaxY - f.MinY }

// Diagram is an assembled, immutable drawing.
type Diagram struct {
	Mode       Mode
	Frame      Frame
	Sectors    int // sectors per quadrant
	Primitives []Primitive
}

// Count returns the number of primitives of kind k.
func (d Diagram) Count(k Kind) int {
	n := 0
	for _, p := range d.Primitives {
		if p.Kind() == k {
			n++
		}
	}
	return n
}

// Option customises assembly.
type Option func(*assembler)

type assembler struct {
	arrows      bool
	labels      bool
	brackets    bool
	annotations bool
}

// WithoutArrows omits orientation arrows.
func WithoutArrows() Option { return func(a *assembler) { a.arrows = false } }

// WithoutLabels omits the width and orientation labels.
func WithoutLabels() Option { return func(a *assembler) { a.labels = false } }

// WithoutBrackets omits angular brackets.
func WithoutBrackets() Option { return func(a *assembler) { a.brackets = false } }

// WithoutAnnotations omits the configuration's static annotations.
func WithoutAnnotations() Option { return func(a *assembler) { a.annotations = false } }

// Assemble builds the complete diagram for cfg.
//
// It returns a ConfigError when cfg is invalid, or when mode is [ModeFull]
// and the span exceeds [MaxMirrorSpan].
func Assemble(cfg magnet.Config, mode Mode, opts ...Option) (Diagram, error) {
	a := assembler{arrows: true, labels: true, brackets: true, annotations: true}
	for _, opt := range opts {
		opt(&a)
	}

	if mode != ModeQuadrant && mode != ModeFull {
		return Diagram{}, errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q", mode)
	}

	sectors, err := geometry.Sectors(cfg)
	if err != nil {
		return Diagram{}, err
	}
	if mode == ModeFull {
		if err := geometry.CheckMirrorSpan(cfg.TotalSpanDegrees); err != nil {
			return Diagram{}, err
		}
		sectors = geometry.MirrorToFullCircle(sectors)
	}

	p := cfg.Display()
	perSector := a.perSector()
	prims := make([]Primitive, 0, len(sectors)*perSector+len(cfg.Annotations))
	for _, s := range sectors {
		prims = a.emit(prims, s, p)
	}
	if a.annotations {
		for _, ann := range cfg.Annotations {
			prims = append(prims, TextLabel{
				Ref:      Ref{Sector: -1},
				Position: geometry.Point{X: ann.X, Y: ann.Y},
				Text:     ann.Text,
				Style:    LabelAnnotation,
			})
		}
	}

	return Diagram{
		Mode:       mode,
		Frame:      frame(cfg, p, mode),
		Sectors:    cfg.SectorCount(),
		Primitives: prims,
	}, nil
}

func (a assembler) perSector() int {
	n := 1
	if a.arrows {
		n++
	}
	if a.labels {
		n += 2
	}
	if a.brackets {
		n++
	}
	return n
}

func (a assembler) emit(prims []Primitive, s geometry.Sector, p magnet.Presentation) []Primitive {
	ref := Ref{Sector: s.Index, Quadrant: s.Quadrant}

	prims = append(prims, WedgeArc{
		Ref:        ref,
		Center:     geometry.Origin,
		Radius:     s.OuterRadius,
		Width:      s.OuterRadius - s.InnerRadius,
		StartAngle: s.StartAngle,
		EndAngle:   s.EndAngle,
	})
	if a.arrows {
		prims = append(prims, Arrow{
			Ref:       ref,
			Tail:      s.ArrowTail,
			Vector:    s.ArrowVector(),
			HeadWidth: p.ArrowHeadWidth,
		})
	}
	if a.labels {
		prims = append(prims,
			TextLabel{
				Ref:      ref,
				Position: s.LabelWidthPos,
				Text:     FormatDegrees(s.Width()),
				Style:    LabelWidth,
			},
			TextLabel{
				Ref:      ref,
				Position: s.LabelOrientationPos,
				Text:     FormatDegrees(geometry.NormalizeDegrees(s.ArrowAngle)),
				Style:    LabelOrientation,
			},
		)
	}
	if a.brackets {
		prims = append(prims, AngularBracket{
			Ref:       ref,
			Start:     s.BracketStart,
			End:       s.BracketEnd,
			Center:    geometry.Origin,
			Radius:    s.BracketRadius,
			Curvature: math.Tan(geometry.Radians(s.Width()) / 4),
			HeadWidth: p.ArrowHeadWidth / 2,
		})
	}
	return prims
}

func frame(cfg magnet.Config, p magnet.Presentation, mode Mode) Frame {
	limit := p.Scale * cfg.Limit()
	f := Frame{MaxX: limit, MaxY: limit, XLabel: p.XLabel, YLabel: p.YLabel}
	if mode == ModeFull {
		f.MinX, f.MinY = -limit, -limit
	}
	return f
}

// FormatDegrees renders an angle for labels, e.g. "18°" or "7.5°".
func FormatDegrees(deg float64) string {
	return fmt.Sprintf("%.4g°", deg)
}
