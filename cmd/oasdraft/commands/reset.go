package commands

import (
	"context"
	"errors"
	"flag"
)

// HandleReset executes the reset command
func HandleReset(ctx context.Context, env *Env, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdraft reset\n\n")
		Writef(fs.Output(), "Remove the stored document. The next command starts from the default document.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := env.Store.Clear(ctx); err != nil {
		return err
	}
	Writef(env.Stdout, "Stored document removed\n")
	return nil
}
