package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasdraft/encoder"
	"github.com/erraggy/oasdraft/internal/fileutil"
	"github.com/erraggy/oasdraft/internal/pathutil"
	"github.com/erraggy/oasdraft/transform"
)

// ExportFlags contains flags for the export command
type ExportFlags struct {
	Format string
	Output string
	Input  string
}

// SetupExportFlags creates and configures a FlagSet for the export command.
func SetupExportFlags() (*flag.FlagSet, *ExportFlags) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	flags := &ExportFlags{}

	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: from the output file extension, else json)")
	fs.StringVar(&flags.Output, "o", "", "write to this file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write to this file instead of stdout")
	fs.StringVar(&flags.Input, "input", "", "export the document in this file ('-' for stdin) instead of the stored one")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdraft export [flags]\n\n")
		Writef(fs.Output(), "Export the document as an OpenAPI document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasdraft export\n")
		Writef(fs.Output(), "  oasdraft export -o openapi.yaml\n")
		Writef(fs.Output(), "  oasdraft export --format yaml --input draft.json\n")
	}
	return fs, flags
}

// HandleExport executes the export command
func HandleExport(ctx context.Context, env *Env, args []string) error {
	fs, flags := SetupExportFlags()
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("export takes no arguments")
	}

	format := encoder.FormatJSON
	switch {
	case flags.Format != "":
		f, err := encoder.ParseFormat(flags.Format)
		if err != nil {
			return err
		}
		format = f
	case flags.Output != "":
		if f, ok := encoder.FormatFromPath(flags.Output); ok {
			format = f
		}
	}

	doc, err := env.loadDocument(ctx, flags.Input)
	if err != nil {
		return err
	}
	tree := transform.Transform(doc, transform.WithLogger(env.Logger))

	if flags.Output == "" {
		return encoder.Write(env.Stdout, tree, format)
	}

	path, err := pathutil.SanitizeOutputPath(flags.Output)
	if err != nil {
		return err
	}
	data, err := encoder.Encode(tree, format)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, fileutil.OwnerReadWrite); err != nil {
		return err
	}
	Writef(env.Stderr, "Wrote %s (%s, %d bytes)\n", flags.Output, format, len(data))
	return nil
}
