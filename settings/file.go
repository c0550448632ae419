// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/scenegraph/base/errors"
)

// Format is a file format that a [Sheet] can be saved in.
type Format int

const (
	// TOML is the default format.
	TOML Format = iota

	// YAML is used for files with a .yaml or .yml extension.
	YAML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf returns the format for the given filename, based on its extension.
// Files are in TOML unless they have a .yaml or .yml extension.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// Write encodes the current values of the bound properties in the given
// format to the given writer, in the order they were bound.
func (s *Sheet) Write(w io.Writer, f Format) error {
	rec := record(s.entries())
	var err error
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(rec.Interface())
		if err == nil {
			err = enc.Close()
		}
	default:
		err = toml.NewEncoder(w).Encode(rec.Interface())
	}
	if err != nil {
		return fmt.Errorf("settings: write %q as %v: %w", s.Name, f, err)
	}
	return nil
}

// Read decodes values in the given format from the given reader and
// sets the bound properties to them. Properties whose names are not in
// the input keep their values, and names that are not bound are ignored.
// Nothing is set if the input can not be decoded; otherwise every bound
// property is set and all of the errors are returned together.
func (s *Sheet) Read(r io.Reader, f Format) error {
	entries := s.entries()
	rec := record(entries)
	var err error
	switch f {
	case YAML:
		err = yaml.NewDecoder(r).Decode(rec.Interface())
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = toml.NewDecoder(r).Decode(rec.Interface())
	}
	if err != nil {
		return fmt.Errorf("settings: read %q as %v: %w", s.Name, f, err)
	}
	return s.apply(entries, rec)
}

// Save saves the current values of the bound properties to the given file,
// in the format given by [FormatOf].
func (s *Sheet) Save(filename string) error {
	var b bytes.Buffer
	if err := s.Write(&b, FormatOf(filename)); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// Open sets the bound properties from the values in the given file,
// in the format given by [FormatOf].
func (s *Sheet) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := s.Read(bytes.NewReader(b), FormatOf(filename)); err != nil {
		return fmt.Errorf("%w (file %s)", err, filename)
	}
	return nil
}

// Load opens the given file like [Sheet.Open], except that
// it is not an error for the file to not exist.
func (s *Sheet) Load(filename string) error {
	err := s.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil // it is okay for settings to not be saved
	}
	return err
}
