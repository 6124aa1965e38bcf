package magnet

import "fmt"

// Magnet IV dimensions, in metres.
const (
	MagnetIVInnerRadius = 173e-3
	MagnetIVOuterRadius = 396e-3
	MagnetIVAxisLimit   = 414e-3
	MagnetIVSegments    = 5
	MagnetIVSegmentSpan = 12.0 // degrees per segment
)

// MagnetIV returns the reference configuration: five equal 12° segments
// between r = 173 mm and r = 396 mm, arrows rotating at twice the segment
// angle.
func MagnetIV() Config {
	cfg := Segmented(MagnetIVInnerRadius, MagnetIVOuterRadius, MagnetIVSegments, MagnetIVSegmentSpan)
	cfg.AxisLimit = MagnetIVAxisLimit
	cfg.Annotations = DefaultAnnotations(cfg)
	return cfg
}

// Segmented returns a configuration of n equal segments of segmentSpan
// degrees each. The arrow of each segment points at twice its mean angle,
// the magnetisation pattern of a Halbach-style ring.
func Segmented(inner, outer float64, n int, segmentSpan float64) Config {
	cfg := Config{
		InnerRadius:      inner,
		OuterRadius:      outer,
		TotalSpanDegrees: float64(n) * segmentSpan,
		SectorFractions:  UniformFractions(n),
		Presentation:     DefaultPresentation(),
	}
	if n > 0 {
		cfg.ArrowAngles = make([]float64, n)
	}
	for i := range cfg.ArrowAngles {
		mean := (float64(i) + 0.5) * segmentSpan
		cfg.ArrowAngles[i] = 2 * mean
	}
	cfg.Annotations = DefaultAnnotations(cfg)
	return cfg
}

// DefaultAnnotations returns the angle legend and the diameter caption for
// cfg, placed in the upper left corner of the first quadrant.
func DefaultAnnotations(cfg Config) []Annotation {
	p := cfg.Display()
	limit := p.Scale * cfg.Limit()
	return []Annotation{
		{
			Text: "angles in degrees from +x",
			X:    0.05 * limit,
			Y:    0.95 * limit,
		},
		{
			Text: DiameterCaption(cfg),
			X:    0.05 * limit,
			Y:    0.90 * limit,
		},
	}
}

// DiameterCaption formats the inner and outer band diameters in output units.
func DiameterCaption(cfg Config) string {
	p := cfg.Display()
	return fmt.Sprintf("inner Ø %.4g, outer Ø %.4g", 2*p.Scale*cfg.InnerRadius, 2*p.Scale*cfg.OuterRadius)
}
