// Package sink provides output format renderers for magnet diagrams.
//
// # Overview
//
// Each sink consumes a [diagram.Diagram] and produces bytes:
//
//   - [RenderSVG]: vector output drawn with github.com/ajstarks/svgo
//   - [RenderPNG]: raster output drawn in-process with github.com/fogleman/gg
//   - [RenderPDF]: SVG converted by rsvg-convert (requires librsvg)
//   - [RenderJSON]: the primitive list, in emission order, for other tools
//
// The SVG and PNG sinks implement [render.Renderer] and are driven by
// [render.Draw], so they see primitives in the same order and share a
// [Style].
//
// # Usage
//
//	d, _ := diagram.Assemble(magnet.MagnetIV(), diagram.ModeFull)
//	svg := sink.RenderSVG(d, sink.WithWidth(600))
//	png, err := sink.RenderPNG(d, sink.WithScale(2))
//	pdf, err := sink.RenderPDF(d)
//	data, err := sink.RenderJSON(d)
//
// [render.Renderer]: github.com/matzehuels/wedgeplot/pkg/render.Renderer
// [render.Draw]: github.com/matzehuels/wedgeplot/pkg/render.Draw
package sink
