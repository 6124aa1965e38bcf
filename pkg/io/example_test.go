package io_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wedgeplot/pkg/io"
)

func ExampleReadTOML() {
	const doc = `
inner_radius = 0.173
outer_radius = 0.396
total_span_degrees = 90
segments = 3
arrow_angles = [30, 90, 150]
`
	cfg, err := io.ReadTOML(strings.NewReader(doc))
	if err != nil {
		panic(err)
	}
	fmt.Println("sectors:", cfg.SectorCount())
	fmt.Printf("fractions: %.4g\n", cfg.SectorFractions)
	// Output:
	// sectors: 3
	// fractions: [33.33 33.33 33.33]
}

func ExampleReadTOML_unknownKey() {
	_, err := io.ReadTOML(strings.NewReader("inner_radius = 0.1\nsector_fraction = [100]\n"))
	fmt.Println(err)
	// Output:
	// INVALID_CONFIG: unknown keys: sector_fraction
}
