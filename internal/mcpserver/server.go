// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the document store, the exporter and the checker as tools over
// stdio.
package mcpserver

import (
	"context"
	"regexp"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdraft"
	"github.com/erraggy/oasdraft/oaslog"
	"github.com/erraggy/oasdraft/store"
)

const serverInstructions = `oasdraft MCP server: builds OpenAPI documents from the editor's document model and exports them as JSON or YAML.

Documents are passed as the editor's persisted JSON form (the same JSON the load tool returns). Tools that take a document use the stored one when the content is left empty.

Configuration: OASDRAFT_* environment variables set in your MCP client config.
- OASDRAFT_STORE (default: file) selects where load and save keep the document: file, redis or memory
- OASDRAFT_CACHE_SIZE (default: 32) and OASDRAFT_CACHE_TTL (default: 5m) size the export cache

Caching: export results are cached per session by a hash of the document and the format.`

// Default export cache settings.
const (
	DefaultCacheSize = 32
	DefaultCacheTTL  = 5 * time.Minute
)

// defaultLimit caps the number of issues returned by check when the caller
// gives no limit.
const defaultLimit = 100

// Server holds the state shared by the tool handlers.
type Server struct {
	store *store.Store
	cache *expirable.LRU[string, string]
	log   oaslog.Logger

	cacheSize int
	cacheTTL  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for tool activity.
func WithLogger(l oaslog.Logger) Option {
	return func(s *Server) { s.log = oaslog.OrNop(l) }
}

// WithCache sizes the export cache. Non-positive values keep the defaults.
func WithCache(size int, ttl time.Duration) Option {
	return func(s *Server) {
		if size > 0 {
			s.cacheSize = size
		}
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// New returns a Server whose load and save tools use st.
func New(st *store.Store, opts ...Option) *Server {
	s := &Server{
		store:     st,
		log:       oaslog.NopLogger{},
		cacheSize: DefaultCacheSize,
		cacheTTL:  DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = expirable.NewLRU[string, string](s.cacheSize, nil, s.cacheTTL)
	return s
}

// MCP returns an MCP server with every tool registered.
func (s *Server) MCP() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdraft", Version: oasdraft.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	s.registerAllTools(server)
	return server
}

// Run serves over stdio and blocks until the client disconnects or ctx is
// canceled.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("mcp server starting", "version", oasdraft.Version())
	return s.MCP().Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Export a document as an OpenAPI document in JSON or YAML. Leave document.content empty to export the stored document. Paths that share a path string are merged and empty server URLs are dropped; run check first to see where that happens.",
	}, s.handleExport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Report inconsistencies in a document that export tolerates: duplicate paths, methods, status codes and schema names, required names missing from properties, dangling $ref values, missing operationIds (with a suggested id) and more. Use min_severity to focus on warnings or errors and offset/limit to paginate.",
	}, s.handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "default_document",
		Description: "Return the document a fresh editor session starts from, in the editor's persisted JSON form.",
	}, s.handleDefaultDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load",
		Description: "Return the stored document in the editor's persisted JSON form. When nothing usable is stored the default document is returned and stored is false.",
	}, s.handleLoad)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save",
		Description: "Store a document given in the editor's persisted JSON form, replacing the stored one.",
	}, s.handleSave)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to defaultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths, which are stripped from
// error messages sent to clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
