// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/erraggy/oasdraft/oaserrors"
	"github.com/erraggy/oasdraft/oaslog"
	"github.com/erraggy/oasdraft/store"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds every setting read from OASDRAFT_* variables.
type Config struct {
	// Store selects the backend: StoreFile, StoreRedis or StoreMemory.
	Store string
	// StoreDir is the directory FileKV writes to.
	StoreDir string

	RedisAddr   string
	RedisDB     int
	RedisPrefix string

	// Export cache settings for the MCP server.
	CacheSize int
	CacheTTL  time.Duration

	LogLevel slog.Level
}

// Load reads envFiles (".env" when none are given) into the environment
// without overriding variables that are already set, then builds a Config
// from OASDRAFT_* variables. Invalid values log a warning and fall back to
// their default. A missing env file is not an error.
func Load(log oaslog.Logger, envFiles ...string) *Config {
	log = oaslog.OrNop(log)
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn("cannot read env file", "file", f, "error", err)
		}
	}

	e := env{log: log}
	return &Config{
		Store:       e.oneOf("OASDRAFT_STORE", StoreFile, StoreFile, StoreRedis, StoreMemory),
		StoreDir:    e.str("OASDRAFT_STORE_DIR", defaultStoreDir()),
		RedisAddr:   e.str("OASDRAFT_REDIS_ADDR", "localhost:6379"),
		RedisDB:     e.int("OASDRAFT_REDIS_DB", 0, 0),
		RedisPrefix: e.str("OASDRAFT_REDIS_PREFIX", "oasdraft:"),
		CacheSize:   e.int("OASDRAFT_CACHE_SIZE", 32, 1),
		CacheTTL:    e.duration("OASDRAFT_CACHE_TTL", 5*time.Minute),
		LogLevel:    e.level("OASDRAFT_LOG_LEVEL", slog.LevelWarn),
	}
}

func defaultStoreDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".oasdraft"
	}
	return filepath.Join(dir, "oasdraft")
}

// OpenKV returns the KV backend the configuration selects. The caller
// closes it when it implements io.Closer.
func (c *Config) OpenKV() (store.KV, error) {
	switch c.Store {
	case StoreFile:
		return store.NewFileKV(c.StoreDir)
	case StoreRedis:
		return store.NewRedisKV(c.RedisAddr, c.RedisDB, c.RedisPrefix), nil
	case StoreMemory:
		return store.NewMemoryKV(), nil
	default:
		return nil, &oaserrors.ConfigError{Option: "OASDRAFT_STORE", Value: c.Store, Message: "unknown store backend"}
	}
}

type env struct {
	log oaslog.Logger
}

func (e env) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func (e env) str(key, fallback string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return fallback
}

func (e env) oneOf(key, fallback string, allowed ...string) string {
	v, ok := e.lookup(key)
	if !ok {
		return fallback
	}
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	e.log.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback)
	return fallback
}

func (e env) int(key string, fallback, min int) int {
	v, ok := e.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		e.log.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func (e env) duration(key string, fallback time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		e.log.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func (e env) level(key string, fallback slog.Level) slog.Level {
	v, ok := e.lookup(key)
	if !ok {
		return fallback
	}
	l, err := oaslog.ParseLevel(v)
	if err != nil {
		e.log.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return l
}
