package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Cache is a JSON read-through cache on Redis. A Cache without a client
// misses on every read and ignores writes, so Redis stays optional.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

var errCacheDisabled = errors.New("redis not available")

// Get decodes the value stored at key into dst and reports whether it hit.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	data, err := c.get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("discarding undecodable cache entry", "key", key, "error", err)
		return false
	}
	slog.Debug("cache hit", "key", key)
	return true
}

// Set stores v at key for ttl. Failures are logged only.
func (c *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode cache value", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

// Invalidate deletes every key matching pattern.
func (c *Cache) Invalidate(ctx context.Context, pattern string) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Error("failed to invalidate cache", "pattern", pattern, "error", err)
		return
	}
	slog.Debug("cache invalidated", "pattern", pattern)
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return nil, errCacheDisabled
	}
	return c.rdb.Get(ctx, key).Bytes()
}
