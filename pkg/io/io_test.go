package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

func TestPresetRoundTrip(t *testing.T) {
	want := magnet.MagnetIV()

	var buf bytes.Buffer
	require.NoError(t, WriteTOML(want, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "# "), "missing header comment")
	assert.Contains(t, buf.String(), "[presentation]")
	assert.Contains(t, buf.String(), "[[annotations]]")

	got, err := ReadTOML(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadTOMLSegments(t *testing.T) {
	src := `
inner_radius = 0.173
outer_radius = 0.396
total_span_degrees = 60
segments = 5
arrow_angles = [12, 36, 60, 84, 108]
`
	cfg, err := ReadTOML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 20, 20, 20, 20}, cfg.SectorFractions)
	assert.Zero(t, cfg.AxisLimit)
	assert.Equal(t, magnet.Presentation{}, cfg.Presentation)
	assert.Equal(t, magnet.DefaultPresentation(), cfg.Display())
}

func TestReadTOMLPartialPresentation(t *testing.T) {
	src := `
inner_radius = 1
outer_radius = 2
total_span_degrees = 90
sector_fractions = [50, 50]
arrow_angles = [0, 90]

[presentation]
scale = 1
x_label = "x [m]"
`
	cfg, err := ReadTOML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Presentation.Scale)
	assert.Equal(t, "x [m]", cfg.Presentation.XLabel)

	p := cfg.Display()
	assert.Equal(t, magnet.DefaultArrowFactor, p.ArrowFactor)
	assert.Equal(t, magnet.DefaultYLabel, p.YLabel)
}

func TestReadTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `inner_radius = `},
		{"unknown key", `
inner_radius = 0.173
outer_radius = 0.396
total_span_degrees = 45
sector_fraction = [40, 40, 20]
arrow_angles = [0, 90, 180]
`},
		{"bad sum", `
inner_radius = 0.173
outer_radius = 0.396
total_span_degrees = 45
sector_fractions = [50, 40]
arrow_angles = [0, 90]
`},
		{"segments mismatch", `
inner_radius = 0.173
outer_radius = 0.396
total_span_degrees = 45
segments = 3
sector_fractions = [50, 50]
arrow_angles = [0, 90]
`},
		{"negative segments", `
inner_radius = 0.173
outer_radius = 0.396
total_span_degrees = 45
segments = -2
arrow_angles = [0, 90]
`},
		{"inverted radii", `
inner_radius = 0.396
outer_radius = 0.173
total_span_degrees = 45
segments = 2
arrow_angles = [0, 90]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTOML(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err), "got %v", err)
		})
	}
}

func TestImportExportTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "magnet.toml")
	want := magnet.MagnetIV()

	require.NoError(t, ExportTOML(want, path))
	got, err := ImportTOML(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportTOMLErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportTOML(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("inner_radius = -1\n"), 0o644))
	_, err = ImportTOML(bad)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), bad)

	assert.True(t, errors.Is(ExportTOML(magnet.MagnetIV(), ""), errors.ErrCodeInvalidPath))
}
