// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// api.go provides a Valkey-backed cache for public API responses.
// Encoded JSON envelopes for the read-heavy public endpoints are stored
// in Valkey so repeat requests skip the database entirely. Admin writes
// invalidate the affected keys.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// apiKeyPrefix is the Valkey key prefix for cached responses.
	apiKeyPrefix = "api:"

	// DefaultAPITTL is how long a cached response stays fresh.
	DefaultAPITTL = 5 * time.Minute
)

// APICache manages public response caching in Valkey.
type APICache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAPICache creates a new response cache backed by the given Valkey client.
func NewAPICache(client *redis.Client, ttl time.Duration) *APICache {
	if ttl == 0 {
		ttl = DefaultAPITTL
	}
	return &APICache{client: client, ttl: ttl}
}

// Get retrieves a cached response body for a key. Returns false on miss.
func (c *APICache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, apiKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("api cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("api cache hit", "key", key)
	return val, true
}

// Set stores an encoded response body for a key with the configured TTL.
func (c *APICache) Set(ctx context.Context, key string, body []byte) {
	if err := c.client.Set(ctx, apiKeyPrefix+key, body, c.ttl).Err(); err != nil {
		slog.Warn("api cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached response by key.
func (c *APICache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, apiKeyPrefix+key).Err(); err != nil {
		slog.Warn("api cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("api cache invalidated", "key", key)
}

// InvalidatePrefix removes all cached responses under a key prefix, for
// example every per-slug category payload after a category write.
func (c *APICache) InvalidatePrefix(ctx context.Context, prefix string) {
	c.scanDelete(ctx, apiKeyPrefix+prefix+"*")
}

// InvalidateAll removes every cached response.
func (c *APICache) InvalidateAll(ctx context.Context) {
	c.scanDelete(ctx, apiKeyPrefix+"*")
}

func (c *APICache) scanDelete(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("api cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("api cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("api cache cleared", "pattern", pattern, "deleted", deleted)
	}
}
