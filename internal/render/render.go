// Package render writes result structures for human inspection.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for formats other than yaml and json.
var ErrUnknownFormat = errors.New("unknown output format")

// CheckFormat reports whether format can be rendered.
func CheckFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write renders v to w in the given format.
func Write(w io.Writer, format string, v any) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	if strings.ToLower(format) == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
