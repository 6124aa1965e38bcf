// Package pkg provides the core libraries for wedgeplot magnet diagrams.
//
// # Overview
//
// Wedgeplot draws segmented annular magnets: a ring between two radii, split
// into angular sectors, each carrying an arrow for its magnetisation
// direction. One quadrant is described by a configuration; the full circle is
// produced by mirroring that quadrant across both axes.
//
// # Architecture
//
// The typical data flow:
//
//	TOML config
//	     ↓
//	[io] package (decode + validate into a magnet.Config)
//	     ↓
//	[geometry] package (partition the span, place sectors, mirror quadrants)
//	     ↓
//	[diagram] package (ordered draw primitives)
//	     ↓
//	[render/sink] package (SVG, PNG, PDF, JSON)
//
// [pipeline] chains these stages with logging and [observability] hooks.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/wedgeplot/pkg/diagram"
//	    "github.com/matzehuels/wedgeplot/pkg/magnet"
//	    "github.com/matzehuels/wedgeplot/pkg/render/sink"
//	)
//
//	d, err := diagram.Assemble(magnet.MagnetIV(), diagram.ModeFull)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(d, sink.WithTitle("Magnet IV"))
//
// # Main Packages
//
// [magnet] - Input model: radii, span, sector fractions, arrow angles,
// presentation constants and the Magnet IV preset.
//
// [geometry] - Pure layout math. [geometry.Partition] splits the span,
// [geometry.ComputeSector] places arrows, labels and brackets, and
// [geometry.MirrorToFullCircle] replicates a quadrant into Q1..Q4.
//
// [diagram] - Assembles sectors into a closed set of primitives (wedges,
// arrows, text labels, angular brackets) in draw order.
//
// [render] - The Renderer interface, pixel viewport, shared shape math and
// SVG to PDF conversion. [render/sink] holds the output formats.
//
// [io] - TOML import and export of configurations.
//
// [errors] - Coded errors; configuration problems are ConfigErrors.
//
// [magnet]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/magnet
// [geometry]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/geometry
// [geometry.Partition]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/geometry#Partition
// [geometry.ComputeSector]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/geometry#ComputeSector
// [geometry.MirrorToFullCircle]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/geometry#MirrorToFullCircle
// [diagram]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/diagram
// [render]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/render/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/wedgeplot/pkg/observability
package pkg
