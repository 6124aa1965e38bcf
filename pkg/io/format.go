package io

import (
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

type configFile struct {
	InnerRadius      float64           `toml:"inner_radius"`
	OuterRadius      float64           `toml:"outer_radius"`
	AxisLimit        float64           `toml:"axis_limit,omitzero"`
	TotalSpanDegrees float64           `toml:"total_span_degrees"`
	Segments         int               `toml:"segments,omitzero"`
	SectorFractions  []float64         `toml:"sector_fractions,omitempty"`
	ArrowAngles      []float64         `toml:"arrow_angles"`
	Presentation     *presentationFile `toml:"presentation,omitempty"`
	Annotations      []annotationFile  `toml:"annotations,omitempty"`
}

type presentationFile struct {
	Scale            float64 `toml:"scale,omitzero"`
	ArrowFactor      float64 `toml:"arrow_factor,omitzero"`
	LabelOffset      float64 `toml:"label_offset,omitzero"`
	BracketRadius    float64 `toml:"bracket_radius,omitzero"`
	WidthLabelRadius float64 `toml:"width_label_radius,omitzero"`
	ArrowHeadWidth   float64 `toml:"arrow_head_width,omitzero"`
	XLabel           string  `toml:"x_label,omitempty"`
	YLabel           string  `toml:"y_label,omitempty"`
}

type annotationFile struct {
	Text string  `toml:"text"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

func (f configFile) config() (magnet.Config, error) {
	cfg := magnet.Config{
		InnerRadius:      f.InnerRadius,
		OuterRadius:      f.OuterRadius,
		AxisLimit:        f.AxisLimit,
		TotalSpanDegrees: f.TotalSpanDegrees,
		SectorFractions:  f.SectorFractions,
		ArrowAngles:      f.ArrowAngles,
	}

	switch {
	case f.Segments < 0:
		return magnet.Config{}, errors.Config("segments must be positive, got %d", f.Segments)
	case f.Segments > 0 && len(f.SectorFractions) == 0:
		cfg.SectorFractions = magnet.UniformFractions(f.Segments)
	case f.Segments > 0 && len(f.SectorFractions) != f.Segments:
		return magnet.Config{}, errors.Config("segments = %d but %d sector_fractions given", f.Segments, len(f.SectorFractions))
	}

	if p := f.Presentation; p != nil {
		cfg.Presentation = magnet.Presentation{
			Scale:            p.Scale,
			ArrowFactor:      p.ArrowFactor,
			LabelOffset:      p.LabelOffset,
			BracketRadius:    p.BracketRadius,
			WidthLabelRadius: p.WidthLabelRadius,
			ArrowHeadWidth:   p.ArrowHeadWidth,
			XLabel:           p.XLabel,
			YLabel:           p.YLabel,
		}
	}
	for _, a := range f.Annotations {
		cfg.Annotations = append(cfg.Annotations, magnet.Annotation{Text: a.Text, X: a.X, Y: a.Y})
	}
	return cfg, nil
}

func fromConfig(cfg magnet.Config) configFile {
	f := configFile{
		InnerRadius:      cfg.InnerRadius,
		OuterRadius:      cfg.OuterRadius,
		AxisLimit:        cfg.AxisLimit,
		TotalSpanDegrees: cfg.TotalSpanDegrees,
		SectorFractions:  cfg.SectorFractions,
		ArrowAngles:      cfg.ArrowAngles,
	}
	if p := cfg.Presentation; p != (magnet.Presentation{}) {
		f.Presentation = &presentationFile{
			Scale:            p.Scale,
			ArrowFactor:      p.ArrowFactor,
			LabelOffset:      p.LabelOffset,
			BracketRadius:    p.BracketRadius,
			WidthLabelRadius: p.WidthLabelRadius,
			ArrowHeadWidth:   p.ArrowHeadWidth,
			XLabel:           p.XLabel,
			YLabel:           p.YLabel,
		}
	}
	for _, a := range cfg.Annotations {
		f.Annotations = append(f.Annotations, annotationFile{Text: a.Text, X: a.X, Y: a.Y})
	}
	return f
}
