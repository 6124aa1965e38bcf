package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

const header = "# Segmented annular magnet layout. Radii in metres, angles in degrees.\n\n"

// WriteTOML encodes cfg as TOML and writes it to w.
// The output can be read back with [ReadTOML].
func WriteTOML(cfg magnet.Config, w io.Writer) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(fromConfig(cfg)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportTOML writes cfg to a TOML file at path, replacing any existing file.
func ExportTOML(cfg magnet.Config, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteTOML(cfg, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
