package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/store"
)

// InitFlags contains flags for the init command
type InitFlags struct {
	Force bool
	From  string
}

// SetupInitFlags creates and configures a FlagSet for the init command.
func SetupInitFlags() (*flag.FlagSet, *InitFlags) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	flags := &InitFlags{}

	fs.BoolVar(&flags.Force, "force", false, "replace a document that is already stored")
	fs.StringVar(&flags.From, "from", "", "store the document read from this file ('-' for stdin) instead of the default")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdraft init [flags]\n\n")
		Writef(fs.Output(), "Store a new document: the default document, or one in persisted JSON form.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasdraft init\n")
		Writef(fs.Output(), "  oasdraft init --force --from draft.json\n")
	}
	return fs, flags
}

// HandleInit executes the init command
func HandleInit(ctx context.Context, env *Env, args []string) error {
	fs, flags := SetupInitFlags()
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if !flags.Force {
		_, err := env.Store.LoadStrict(ctx)
		if err == nil {
			return fmt.Errorf("a document is already stored; use --force to replace it")
		}
		if !errors.Is(err, store.ErrNotFound) {
			env.Logger.Warn("replacing unusable stored document", "error", err)
		}
	}

	doc := document.Default()
	if flags.From != "" {
		var err error
		if doc, err = env.loadDocument(ctx, flags.From); err != nil {
			return err
		}
	}
	if err := env.Store.Save(ctx, doc); err != nil {
		return err
	}
	Writef(env.Stdout, "Stored document %q (%d paths, %d schemas)\n", doc.Info.Title, len(doc.Paths), len(doc.Schemas))
	return nil
}
