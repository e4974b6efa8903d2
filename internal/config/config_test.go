package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdraft/oaserrors"
	"github.com/erraggy/oasdraft/oaslog"
	"github.com/erraggy/oasdraft/store"
)

var envKeys = []string{
	"OASDRAFT_STORE", "OASDRAFT_STORE_DIR",
	"OASDRAFT_REDIS_ADDR", "OASDRAFT_REDIS_DB", "OASDRAFT_REDIS_PREFIX",
	"OASDRAFT_CACHE_SIZE", "OASDRAFT_CACHE_TTL", "OASDRAFT_LOG_LEVEL",
}

// clearEnv isolates a test from the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c := Load(nil, noEnvFile(t))

	assert.Equal(t, StoreFile, c.Store)
	assert.NotEmpty(t, c.StoreDir)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	assert.Equal(t, 0, c.RedisDB)
	assert.Equal(t, "oasdraft:", c.RedisPrefix)
	assert.Equal(t, 32, c.CacheSize)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OASDRAFT_STORE", "Redis")
	t.Setenv("OASDRAFT_STORE_DIR", "/srv/state")
	t.Setenv("OASDRAFT_REDIS_ADDR", "cache:6380")
	t.Setenv("OASDRAFT_REDIS_DB", "3")
	t.Setenv("OASDRAFT_CACHE_SIZE", "8")
	t.Setenv("OASDRAFT_CACHE_TTL", "30s")
	t.Setenv("OASDRAFT_LOG_LEVEL", "debug")

	c := Load(nil, noEnvFile(t))

	assert.Equal(t, StoreRedis, c.Store)
	assert.Equal(t, "/srv/state", c.StoreDir)
	assert.Equal(t, "cache:6380", c.RedisAddr)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, 8, c.CacheSize)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoadInvalidValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OASDRAFT_STORE", "s3")
	t.Setenv("OASDRAFT_REDIS_DB", "-1")
	t.Setenv("OASDRAFT_CACHE_SIZE", "banana")
	t.Setenv("OASDRAFT_CACHE_TTL", "soon")
	t.Setenv("OASDRAFT_LOG_LEVEL", "loud")

	var buf bytes.Buffer
	c := Load(oaslog.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil))), noEnvFile(t))

	assert.Equal(t, StoreFile, c.Store)
	assert.Equal(t, 0, c.RedisDB)
	assert.Equal(t, 32, c.CacheSize)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("level=WARN")))
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// Unset so godotenv may fill them; t.Setenv restores them afterwards.
	require.NoError(t, os.Unsetenv("OASDRAFT_STORE"))
	require.NoError(t, os.Unsetenv("OASDRAFT_CACHE_SIZE"))
	t.Setenv("OASDRAFT_REDIS_ADDR", "from-env:1")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("OASDRAFT_STORE=memory\nOASDRAFT_CACHE_SIZE=4\nOASDRAFT_REDIS_ADDR=from-file:2\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("OASDRAFT_STORE")
		_ = os.Unsetenv("OASDRAFT_CACHE_SIZE")
	})

	c := Load(nil, path)

	assert.Equal(t, StoreMemory, c.Store)
	assert.Equal(t, 4, c.CacheSize)
	assert.Equal(t, "from-env:1", c.RedisAddr, "set variables win over the env file")
}

func TestOpenKV(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    any
		wantErr bool
	}{
		{name: "memory", cfg: Config{Store: StoreMemory}, want: &store.MemoryKV{}},
		{name: "file", cfg: Config{Store: StoreFile, StoreDir: t.TempDir()}, want: &store.FileKV{}},
		{name: "redis", cfg: Config{Store: StoreRedis, RedisAddr: "localhost:6379"}, want: &store.RedisKV{}},
		{name: "unknown", cfg: Config{Store: "s3"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := tt.cfg.OpenKV()
			if tt.wantErr {
				assert.ErrorIs(t, err, oaserrors.ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, kv)
			if r, ok := kv.(*store.RedisKV); ok {
				assert.NoError(t, r.Close())
			}
		})
	}
}
