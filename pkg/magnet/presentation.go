package magnet

import (
	"github.com/matzehuels/wedgeplot/pkg/errors"
)

// Default presentation constants. They are display tuning, not geometry.
const (
	DefaultScale            = 1e3  // metres to millimetres
	DefaultArrowFactor      = 0.4  // arrow length per unit of arc length at the mean radius
	DefaultLabelOffset      = 1.05 // outward push applied to label anchors
	DefaultBracketRadius    = 0.95 // bracket circle as a fraction of the inner radius
	DefaultWidthLabelRadius = 0.75 // width label circle as a fraction of the inner radius
	DefaultArrowHeadWidth   = 8.0  // arrowhead width in output units
	DefaultXLabel           = "x [mm]"
	DefaultYLabel           = "y [mm]"
)

// Presentation holds the constants that map physical dimensions onto the
// drawing. A zero field means "use the default".
type Presentation struct {
	Scale            float64
	ArrowFactor      float64
	LabelOffset      float64
	BracketRadius    float64
	WidthLabelRadius float64
	ArrowHeadWidth   float64
	XLabel           string
	YLabel           string
}

// DefaultPresentation returns the stock presentation constants.
func DefaultPresentation() Presentation {
	return Presentation{
		Scale:            DefaultScale,
		ArrowFactor:      DefaultArrowFactor,
		LabelOffset:      DefaultLabelOffset,
		BracketRadius:    DefaultBracketRadius,
		WidthLabelRadius: DefaultWidthLabelRadius,
		ArrowHeadWidth:   DefaultArrowHeadWidth,
		XLabel:           DefaultXLabel,
		YLabel:           DefaultYLabel,
	}
}

// WithDefaults returns a copy of p with every zero field replaced by its default.
func (p Presentation) WithDefaults() Presentation {
	d := DefaultPresentation()
	if p.Scale == 0 {
		p.Scale = d.Scale
	}
	if p.ArrowFactor == 0 {
		p.ArrowFactor = d.ArrowFactor
	}
	if p.LabelOffset == 0 {
		p.LabelOffset = d.LabelOffset
	}
	if p.BracketRadius == 0 {
		p.BracketRadius = d.BracketRadius
	}
	if p.WidthLabelRadius == 0 {
		p.WidthLabelRadius = d.WidthLabelRadius
	}
	if p.ArrowHeadWidth == 0 {
		p.ArrowHeadWidth = d.ArrowHeadWidth
	}
	if p.XLabel == "" {
		p.XLabel = d.XLabel
	}
	if p.YLabel == "" {
		p.YLabel = d.YLabel
	}
	return p
}

// Validate rejects non-positive or non-finite constants.
func (p Presentation) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"scale", p.Scale},
		{"arrow factor", p.ArrowFactor},
		{"label offset", p.LabelOffset},
		{"bracket radius", p.BracketRadius},
		{"width label radius", p.WidthLabelRadius},
		{"arrow head width", p.ArrowHeadWidth},
	}
	for _, c := range checks {
		if err := errors.ValidatePositive(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}
