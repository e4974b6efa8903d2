package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasdraft/document"
)

// ShowFlags contains flags for the show command
type ShowFlags struct {
	JSON bool
}

// SetupShowFlags creates and configures a FlagSet for the show command.
func SetupShowFlags() (*flag.FlagSet, *ShowFlags) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	flags := &ShowFlags{}

	fs.BoolVar(&flags.JSON, "json", false, "print the stored document in its persisted JSON form")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdraft show [flags]\n\n")
		Writef(fs.Output(), "Summarize the stored document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleShow executes the show command
func HandleShow(ctx context.Context, env *Env, args []string) error {
	fs, flags := SetupShowFlags()
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	doc := env.Store.Load(ctx)
	if flags.JSON {
		data, err := document.Encode(doc)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("formatting document: %w", err)
		}
		Writef(env.Stdout, "%s\n", buf.Bytes())
		return nil
	}

	operations := 0
	for _, p := range doc.Paths {
		operations += len(p.Operations)
	}
	Writef(env.Stdout, "Title: %s\n", doc.Info.Title)
	Writef(env.Stdout, "Version: %s\n", doc.Info.Version)
	Writef(env.Stdout, "OpenAPI: %s\n", doc.OpenAPI)
	Writef(env.Stdout, "Servers: %d\n", len(doc.Servers))
	Writef(env.Stdout, "Paths: %d\n", len(doc.Paths))
	Writef(env.Stdout, "Operations: %d\n", operations)
	Writef(env.Stdout, "Schemas: %d\n", len(doc.Schemas))
	for _, p := range doc.Paths {
		Writef(env.Stdout, "  %s\n", p.Path)
		for _, op := range p.Operations {
			Writef(env.Stdout, "    %-7s %s\n", op.Method, op.OperationID.OrElse("-"))
		}
	}
	return nil
}
