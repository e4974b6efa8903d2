package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasdraft"
	"github.com/erraggy/oasdraft/cmd/oasdraft/commands"
	"github.com/erraggy/oasdraft/internal/cliutil"
	"github.com/erraggy/oasdraft/internal/config"
	"github.com/erraggy/oasdraft/oaslog"
	"github.com/erraggy/oasdraft/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(stdout, "oasdraft %s (commit %s, built %s, %s)\n",
			oasdraft.Version(), oasdraft.Commit(), oasdraft.BuildTime(), oasdraft.GoVersion())
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	bootLog := oaslog.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, nil)))
	cfg := config.Load(bootLog)
	logger := oaslog.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	kv, err := cfg.OpenKV()
	if err != nil {
		cliutil.Writef(stderr, "Error: %v\n", err)
		return 1
	}
	if c, ok := kv.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	env := &commands.Env{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Store:  store.New(kv, store.WithLogger(logger)),
		Logger: logger,
	}

	switch command {
	case "init":
		err = commands.HandleInit(ctx, env, args[1:])
	case "export":
		err = commands.HandleExport(ctx, env, args[1:])
	case "check":
		err = commands.HandleCheck(ctx, env, args[1:])
	case "show":
		err = commands.HandleShow(ctx, env, args[1:])
	case "reset":
		err = commands.HandleReset(ctx, env, args[1:])
	case "mcp":
		err = commands.HandleMCP(ctx, env, args[1:], commands.MCPFlags{CacheSize: cfg.CacheSize, CacheTTL: cfg.CacheTTL})
	default:
		cliutil.Writef(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		if !errors.Is(err, commands.ErrCheckFailed) {
			cliutil.Writef(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	cliutil.Writef(w, "%s", `oasdraft - build OpenAPI documents from an editable draft

Usage:
  oasdraft <command> [flags]

Commands:
  init       Store a new document
  export     Export the document as OpenAPI JSON or YAML
  check      Report inconsistencies the export tolerates
  show       Summarize the stored document
  reset      Remove the stored document
  mcp        Serve the document tools over MCP (stdio)
  version    Print version information
  help       Show this help

Run 'oasdraft <command> --help' for command flags.

Configuration is read from OASDRAFT_* environment variables and an optional
.env file (OASDRAFT_STORE, OASDRAFT_STORE_DIR, OASDRAFT_REDIS_ADDR,
OASDRAFT_REDIS_DB, OASDRAFT_CACHE_SIZE, OASDRAFT_CACHE_TTL, OASDRAFT_LOG_LEVEL).
`)
}
