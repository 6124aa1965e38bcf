// Package magnet describes the input of a segmented annular magnet diagram.
//
// A [Config] names the band radii (in metres), the angular span of one
// quadrant, how that span is split into sectors, and the orientation arrow of
// every sector. [Presentation] carries the display tuning constants that turn
// those physical values into drawing coordinates.
//
// Configs are plain values. Nothing in this package touches files; see the io
// package for TOML encoding.
package magnet

import (
	"github.com/matzehuels/wedgeplot/pkg/errors"
)

// FractionTotal is the value sector fractions must add up to.
const FractionTotal = 100.0

// FractionTolerance is the relative tolerance applied to the fraction sum.
const FractionTolerance = 1e-6

// Config is the immutable description of one magnet diagram.
//
// Slices are shared, not copied; callers must not modify them after handing
// a Config to the layout engine.
type Config struct {
	// InnerRadius and OuterRadius bound the magnet band, in metres.
	InnerRadius float64
	OuterRadius float64

	// AxisLimit is the plot extent in metres. Zero means
	// [DefaultAxisMargin] times OuterRadius.
	AxisLimit float64

	// TotalSpanDegrees is the angle covered by the sectors of one quadrant.
	TotalSpanDegrees float64

	// SectorFractions split the span into sectors, in percent.
	SectorFractions []float64

	// ArrowAngles is the orientation of each sector's arrow, in degrees
	// counter-clockwise from the +x axis.
	ArrowAngles []float64

	// Annotations are static labels emitted after the sector geometry.
	Annotations []Annotation

	// Presentation holds display constants. Zero fields take their defaults.
	Presentation Presentation
}

// Annotation is a fixed text label positioned in output units.
type Annotation struct {
	Text string
	X, Y float64
}

// DefaultAxisMargin scales OuterRadius into the plot limit when AxisLimit is unset.
const DefaultAxisMargin = 1.05

// SectorCount returns the number of sectors in one quadrant.
func (c Config) SectorCount() int {
	return len(c.SectorFractions)
}

// Limit returns the plot extent in metres.
func (c Config) Limit() float64 {
	if c.AxisLimit > 0 {
		return c.AxisLimit
	}
	return DefaultAxisMargin * c.OuterRadius
}

// Display returns the presentation constants with defaults applied.
func (c Config) Display() Presentation {
	return c.Presentation.WithDefaults()
}

// Validate checks every invariant of the configuration and returns a
// ConfigError describing the first violation.
func (c Config) Validate() error {
	if err := errors.ValidatePositive("inner radius", c.InnerRadius); err != nil {
		return err
	}
	if err := errors.ValidatePositive("outer radius", c.OuterRadius); err != nil {
		return err
	}
	if c.OuterRadius <= c.InnerRadius {
		return errors.Config("outer radius %g must exceed inner radius %g", c.OuterRadius, c.InnerRadius)
	}
	if c.AxisLimit != 0 {
		if err := errors.ValidatePositive("axis limit", c.AxisLimit); err != nil {
			return err
		}
	}
	if err := errors.ValidatePositive("total span", c.TotalSpanDegrees); err != nil {
		return err
	}
	if c.TotalSpanDegrees > 360 {
		return errors.Config("total span %g exceeds 360 degrees", c.TotalSpanDegrees)
	}
	if len(c.SectorFractions) != len(c.ArrowAngles) {
		return errors.Config("%d sector fractions but %d arrow angles", len(c.SectorFractions), len(c.ArrowAngles))
	}
	if err := errors.ValidateSumTo("sector fractions", c.SectorFractions, FractionTotal, FractionTolerance); err != nil {
		return err
	}
	for i, a := range c.ArrowAngles {
		if err := errors.ValidateFinite("arrow angle", a); err != nil {
			return errors.Config("arrow angle %d: %s", i, errors.UserMessage(err))
		}
	}
	return c.Display().Validate()
}

// UniformFractions splits 100 percent into n equal sector fractions.
// It returns nil when n is not positive.
func UniformFractions(n int) []float64 {
	if n <= 0 {
		return nil
	}
	fractions := make([]float64, n)
	for i := range fractions {
		fractions[i] = FractionTotal / float64(n)
	}
	return fractions
}
