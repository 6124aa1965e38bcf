package pipeline

import (
	"fmt"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(d diagram.Diagram, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(d, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(d, buildPNGOptions(opts)...)
		case FormatPDF:
			data, err = sink.RenderPDF(d, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(d, sink.WithJSONTitle(opts.Title), sink.WithJSONSource(opts.Source))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func style(name string) sink.Style {
	if name == StyleFilled {
		return sink.FilledStyle()
	}
	return sink.DefaultStyle()
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style(opts.Style))}
	if opts.Width > 0 {
		svgOpts = append(svgOpts, sink.WithWidth(opts.Width))
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.NoAxes {
		svgOpts = append(svgOpts, sink.WithoutAxes())
	}
	return svgOpts
}

// buildPNGOptions builds PNG rendering options.
func buildPNGOptions(opts Options) []sink.PNGOption {
	pngOpts := []sink.PNGOption{sink.WithPNGStyle(style(opts.Style))}
	if opts.Width > 0 {
		pngOpts = append(pngOpts, sink.WithPNGWidth(opts.Width))
	}
	if opts.Scale > 0 {
		pngOpts = append(pngOpts, sink.WithScale(opts.Scale))
	}
	if opts.NoAxes {
		pngOpts = append(pngOpts, sink.WithoutPNGAxes())
	}
	return pngOpts
}
