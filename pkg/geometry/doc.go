// Package geometry is the layout engine behind wedgeplot diagrams.
//
// # Overview
//
// A magnet quadrant is a band between two radii, split into angular sectors.
// The engine turns a [magnet.Config] into the coordinates a renderer needs:
//
//  1. [Partition] converts the total span and the percentage fractions into
//     contiguous [Boundary] values starting at 0°.
//  2. [ComputeSector] places the orientation arrow, the two labels and the
//     angular bracket of one sector.
//  3. [MirrorToFullCircle] replicates the first quadrant into Q2..Q4 with the
//     four [Symmetries]: identity, reflection about y, a half turn and
//     reflection about x, each an arithm affine transform.
//
// # Arrow placement
//
// The arrow of a sector is centred on the mean point (mean radius, mean
// angle). Its length is ArrowFactor × mean radius × angular width in
// radians, so the arrow scales with the arc it sits on:
//
//	tail = mean - l/2·(cos α, sin α)
//	head = tail + l·(cos α, sin α)
//
// # Purity
//
// Every function here is deterministic and allocation-bounded by the sector
// count. Nothing logs, nothing touches I/O, and no input is mutated, so one
// computed layout can be shared by any number of renderers.
//
// [magnet.Config]: github.com/matzehuels/wedgeplot/pkg/magnet.Config
package geometry
