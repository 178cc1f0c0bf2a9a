// Package cache provides an optional redis-backed JSON cache for catalog
// query results, keyed by the full filter tuple.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"autohub/internal/config"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a cache backed by redis, or nil when no address is
// configured. A nil *Cache is a valid no-op cache.
func New(cfg config.RedisConfig) *Cache {
	if cfg.Addr == "" {
		return nil
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: cfg.TTL,
	}
}

// Get unmarshals the cached value for key into dest, reporting whether a
// usable entry was found. Redis errors count as misses.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores v under key for the configured TTL. Failures are ignored;
// the cache is an optimization, never a source of truth.
func (c *Cache) Set(ctx context.Context, key string, v interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Ping verifies connectivity at boot.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
