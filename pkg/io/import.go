package io

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

// ReadTOML decodes a magnet configuration from r and validates it.
//
// Unknown keys are rejected so that typos such as "sector_fraction" do not
// silently fall back to zero values. ReadTOML does not close r.
func ReadTOML(r io.Reader) (magnet.Config, error) {
	var f configFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return magnet.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return magnet.Config{}, errors.Config("unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg, err := f.config()
	if err != nil {
		return magnet.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return magnet.Config{}, err
	}
	return cfg, nil
}

// ImportTOML reads the TOML file at path and returns the decoded config.
//
// A missing file yields a FILE_NOT_FOUND error; everything else behaves as
// [ReadTOML].
func ImportTOML(path string) (magnet.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return magnet.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return magnet.Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := ReadTOML(f)
	if err != nil {
		return magnet.Config{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return cfg, nil
}
