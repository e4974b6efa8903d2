// Package encoder serializes the canonical OpenAPI tree as JSON or YAML and
// reads those encodings back.
//
// Both encoders preserve mapping insertion order and sequence order and use
// two-space indentation. JSON output does not escape HTML characters. YAML
// output never folds long lines, never emits anchors or aliases, and quotes
// strings that would otherwise read back as numbers or booleans.
//
// Decoding either encoding of the same tree yields equal trees.
package encoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasdraft/oas"
	"github.com/erraggy/oasdraft/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML}

// Extension returns the usual file extension of f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// MediaType returns the media type of f.
func (f Format) MediaType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// ParseFormat maps a flag value or a file extension ("json", "yaml", "yml",
// ".json", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &oaserrors.ConfigError{Option: "format", Value: name, Message: "expected json or yaml"}
	}
}

// FormatFromPath returns the Format implied by a file name's extension.
func FormatFromPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	return f, err == nil
}

const indent = 2

// JSON encodes doc as indented JSON followed by a newline.
func JSON(doc *oas.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoder: json: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML encodes doc as block-style YAML.
func YAML(doc *oas.Document) ([]byte, error) {
	out, err := yaml.Dump(doc,
		yaml.WithIndent(indent),
		yaml.WithCompactSeqIndent(false),
		yaml.WithLineWidth(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("encoder: yaml: %w", err)
	}
	return out, nil
}

// Encode encodes doc in the given format.
func Encode(doc *oas.Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return JSON(doc)
	case FormatYAML:
		return YAML(doc)
	default:
		return nil, &oaserrors.ConfigError{Option: "format", Value: string(f), Message: "unsupported format"}
	}
}

// Write encodes doc in the given format and writes it to w.
func Write(w io.Writer, doc *oas.Document, f Format) error {
	data, err := Encode(doc, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("encoder: writing %s: %w", f, err)
	}
	return nil
}

// DecodeJSON parses JSON produced by JSON back into a tree.
func DecodeJSON(data []byte) (*oas.Document, error) {
	var doc oas.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Format: string(FormatJSON), Message: "decoding document", Cause: err}
	}
	return &doc, nil
}

// DecodeYAML parses YAML produced by YAML back into a tree.
func DecodeYAML(data []byte) (*oas.Document, error) {
	var doc oas.Document
	if err := yaml.Load(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Format: string(FormatYAML), Message: "decoding document", Cause: err}
	}
	return &doc, nil
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (*oas.Document, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, &oaserrors.ConfigError{Option: "format", Value: string(f), Message: "unsupported format"}
	}
}
