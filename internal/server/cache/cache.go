// Package cache provides a Redis-backed cache for sort results with
// singleflight collapsing of concurrent identical requests.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/muyun-chen/stroke-sort/pkg/config"
	pkgredis "github.com/muyun-chen/stroke-sort/pkg/redis"
)

const keyPrefix = "sort:"

// ResultCache memoises sorted name lists. The cache key covers the full
// input order, because tie-breaking depends on it.
type ResultCache struct {
	client *pkgredis.Client
	cfg    config.RedisConfig
	group  singleflight.Group
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a ResultCache over the given Redis client.
func New(client *pkgredis.Client, cfg config.RedisConfig) *ResultCache {
	return &ResultCache{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "result-cache"),
	}
}

// Get returns the cached sorted list for the given input, if present.
func (c *ResultCache) Get(ctx context.Context, names []string) ([]string, bool) {
	key := buildKey(names)
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		c.misses.Add(1)
		return nil, false
	}
	var sorted []string
	if err := json.Unmarshal([]byte(data), &sorted); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	c.logger.Debug("cache hit", "key", key)
	return sorted, true
}

// Set stores the sorted list under the input's key.
func (c *ResultCache) Set(ctx context.Context, names []string, sorted []string) {
	key := buildKey(names)
	data, err := json.Marshal(sorted)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.cfg.CacheTTL); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

// GetOrCompute returns the cached result or runs computeFn once per key,
// collapsing concurrent identical requests. The bool reports a cache hit.
func (c *ResultCache) GetOrCompute(
	ctx context.Context,
	names []string,
	computeFn func() ([]string, error),
) ([]string, bool, error) {
	if sorted, ok := c.Get(ctx, names); ok {
		return sorted, true, nil
	}
	key := buildKey(names)
	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		if sorted, ok := c.Get(ctx, names); ok {
			return sorted, nil
		}
		sorted, err := computeFn()
		if err != nil {
			return nil, err
		}
		c.Set(ctx, names, sorted)
		return sorted, nil
	})
	if err != nil {
		return nil, false, err
	}
	return val.([]string), false, nil
}

// Stats returns the hit and miss counters.
func (c *ResultCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func buildKey(names []string) string {
	hash := sha256.Sum256([]byte(strings.Join(names, "\n")))
	return fmt.Sprintf("%s%x", keyPrefix, hash[:16])
}
