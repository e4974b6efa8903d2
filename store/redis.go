package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis"

	"github.com/erraggy/oasdraft/oaserrors"
)

const backendRedis = "redis"

// RedisClient is the subset of *redis.Client used by RedisKV.
type RedisClient interface {
	Get(key string) *redis.StringCmd
	Set(key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(keys ...string) *redis.IntCmd
}

// RedisKV stores values in Redis under an optional key prefix.
type RedisKV struct {
	client RedisClient
	prefix string
	ctxFn  func(context.Context) RedisClient
}

// NewRedisKV returns a RedisKV connected to addr using database db. Keys
// are stored as prefix+key.
func NewRedisKV(addr string, db int, prefix string) *RedisKV {
	c := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	return &RedisKV{
		client: c,
		prefix: prefix,
		ctxFn:  func(ctx context.Context) RedisClient { return c.WithContext(ctx) },
	}
}

// NewRedisKVWithClient returns a RedisKV that sends commands through client.
func NewRedisKVWithClient(client RedisClient, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) conn(ctx context.Context) RedisClient {
	if r.ctxFn != nil {
		return r.ctxFn(ctx)
	}
	return r.client
}

// Get implements KV.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.conn(ctx).Get(r.prefix + key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &oaserrors.StorageError{Backend: backendRedis, Op: "get", Key: key, Cause: err}
	}
	return data, nil
}

// Set implements KV. Values never expire.
func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.conn(ctx).Set(r.prefix+key, value, 0).Err(); err != nil {
		return &oaserrors.StorageError{Backend: backendRedis, Op: "set", Key: key, Cause: err}
	}
	return nil
}

// Delete implements KV.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.conn(ctx).Del(r.prefix + key).Err(); err != nil {
		return &oaserrors.StorageError{Backend: backendRedis, Op: "delete", Key: key, Cause: err}
	}
	return nil
}

// Close closes the underlying connection pool when RedisKV owns it.
func (r *RedisKV) Close() error {
	if c, ok := r.client.(*redis.Client); ok {
		return c.Close()
	}
	return nil
}
