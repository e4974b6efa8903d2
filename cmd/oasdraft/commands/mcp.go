package commands

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/erraggy/oasdraft/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	CacheSize int
	CacheTTL  time.Duration
}

// HandleMCP executes the mcp command. It serves over stdio until the client
// disconnects.
func HandleMCP(ctx context.Context, env *Env, args []string, defaults MCPFlags) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	flags := defaults
	fs.IntVar(&flags.CacheSize, "cache-size", defaults.CacheSize, "number of export results to cache")
	fs.DurationVar(&flags.CacheTTL, "cache-ttl", defaults.CacheTTL, "how long an export result stays cached")
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasdraft mcp [flags]\n\n")
		Writef(fs.Output(), "Serve the export, check, default_document, load and save tools over stdio.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	server := mcpserver.New(env.Store,
		mcpserver.WithLogger(env.Logger),
		mcpserver.WithCache(flags.CacheSize, flags.CacheTTL),
	)
	return server.Run(ctx)
}
