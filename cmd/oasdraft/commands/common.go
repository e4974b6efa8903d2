// Package commands provides CLI command handlers for oasdraft.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/internal/cliutil"
	"github.com/erraggy/oasdraft/oaslog"
	"github.com/erraggy/oasdraft/store"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrCheckFailed is returned by the check command when the document has
// error-level issues. The issues themselves have already been printed.
var ErrCheckFailed = errors.New("document has errors")

// Env is what a command runs against: its streams and the document store.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Store  *store.Store
	Logger oaslog.Logger
}

// Writef writes formatted output to w.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w as indented JSON or YAML.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Dump(data, yaml.WithIndent(2))
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s", out)
	if format == FormatJSON {
		Writef(w, "\n")
	}
	return nil
}

// loadDocument returns the document read from input, or the stored document
// when input is empty.
func (e *Env) loadDocument(ctx context.Context, input string) (*document.Document, error) {
	if input == "" {
		return e.Store.Load(ctx), nil
	}
	data, err := cliutil.ReadSource(input, e.Stdin)
	if err != nil {
		return nil, err
	}
	doc, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", input, err)
	}
	return doc, nil
}
