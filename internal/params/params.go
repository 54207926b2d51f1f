// internal/params/params.go
package params

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"pwalign-core/align"
)

// File is the on-disk YAML schema for scoring parameters. Pointer fields
// distinguish "key absent" from an explicit 0.
type File struct {
	Match    *int `yaml:"match"`
	Mismatch *int `yaml:"mismatch"`
	Gap      *int `yaml:"gap"`
}

// Load reads a YAML scoring file. Unknown keys are rejected so a typo
// like "mismtach" fails loudly instead of silently scoring with defaults.
// An empty file is legal and supplies nothing.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer func() { _ = fh.Close() }()

	dec := yaml.NewDecoder(fh)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Value is one score as seen on the command line.
type Value struct {
	V   int
	Set bool
}

// Resolve merges command-line scores over file values; flags win. It
// errors on any score that neither source supplies.
func Resolve(f File, match, mismatch, gap Value) (align.Params, error) {
	var p align.Params
	var err error
	if p.Match, err = pick(match, f.Match, "--match"); err != nil {
		return p, err
	}
	if p.Mismatch, err = pick(mismatch, f.Mismatch, "--mismatch"); err != nil {
		return p, err
	}
	if p.Gap, err = pick(gap, f.Gap, "--gap"); err != nil {
		return p, err
	}
	return p, nil
}

func pick(flagV Value, fileV *int, name string) (int, error) {
	if flagV.Set {
		return flagV.V, nil
	}
	if fileV != nil {
		return *fileV, nil
	}
	return 0, fmt.Errorf("missing %s: not on the command line and not in the params file", name)
}
