// Package render draws assembled magnet diagrams.
//
// # Overview
//
// A [diagram.Diagram] is a flat, ordered list of primitives. This package
// defines the [Renderer] collaborator that consumes them and the helpers every
// backend shares:
//
//   - [Draw] dispatches primitives to a Renderer in emission order
//   - [Viewport] maps diagram coordinates (millimetres, y up) to pixels
//   - [ArrowShape] and [BracketShape] compute shafts, curves and heads
//   - [Ticks] picks round axis tick values
//
// Concrete backends live in the [sink] subpackage (SVG, PNG, PDF, JSON).
//
// # Format Conversion
//
// [ToPDF] converts SVG to PDF using the external rsvg-convert tool (from
// librsvg). The PDF sink renders SVG first and then converts it.
//
//	svg := sink.RenderSVG(d)
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/matzehuels/wedgeplot/pkg/render/sink
package render
