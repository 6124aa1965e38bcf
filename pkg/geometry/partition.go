package geometry

import (
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

// Boundary is the angular extent of one sector, in degrees.
type Boundary struct {
	Start, End float64
}

// Width returns End - Start.
func (b Boundary) Width() float64 { return b.End - b.Start }

// Mean returns the angle halfway between Start and End.
func (b Boundary) Mean() float64 { return (b.Start + b.End) / 2 }

// Degenerate reports whether the boundary has zero angular width.
func (b Boundary) Degenerate() bool { return b.Width() <= Epsilon }

// Partition splits totalSpanDegrees into consecutive boundaries, one per
// fraction. Fractions are percentages and must be non-negative and sum to 100
// within [magnet.FractionTolerance]; otherwise a ConfigError is returned.
//
// The first boundary starts at 0 and each following one starts where the
// previous ended. The last boundary ends at totalSpanDegrees.
func Partition(totalSpanDegrees float64, fractions []float64) ([]Boundary, error) {
	if err := errors.ValidatePositive("total span", totalSpanDegrees); err != nil {
		return nil, err
	}
	if err := errors.ValidateSumTo("sector fractions", fractions, magnet.FractionTotal, magnet.FractionTolerance); err != nil {
		return nil, err
	}

	boundaries := make([]Boundary, len(fractions))
	start := 0.0
	for i, f := range fractions {
		end := start + f/magnet.FractionTotal*totalSpanDegrees
		boundaries[i] = Boundary{Start: start, End: end}
		start = end
	}
	// Snap the accumulated rounding error so the partition closes exactly.
	if last := &boundaries[len(boundaries)-1]; last.Start <= totalSpanDegrees {
		last.End = totalSpanDegrees
	}
	return boundaries, nil
}
