// Package data loads map fixtures from disk.
package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hexmap/model"
)

// Format is a map file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for files whose extension is not .json, .yaml or .yml.
var ErrUnknownFormat = errors.New("unknown map file format")

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and validates a map file. The layout is the one the game
// client sends: {"tiles": [{"name", "value", "col", "row", "beaches": [{"exits": [...]}]}]}
func Load(path string) (model.Map, error) {
	format, err := FormatFor(path)
	if err != nil {
		return model.Map{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Map{}, fmt.Errorf("failed to read map file: %w", err)
	}

	m, err := Decode(bytes.NewReader(raw), format)
	if err != nil {
		return model.Map{}, fmt.Errorf("failed to load map from %s: %w", path, err)
	}
	return m, nil
}

// Decode parses a map in the given format and validates it
func Decode(r io.Reader, format Format) (model.Map, error) {
	var m model.Map

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return model.Map{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return model.Map{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return model.Map{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := m.Validate(); err != nil {
		return model.Map{}, err
	}
	return m, nil
}

// Save writes a map file, picking the format from the extension
func Save(path string, m model.Map) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(m, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(m)
	}
	if err != nil {
		return fmt.Errorf("failed to encode map: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}
