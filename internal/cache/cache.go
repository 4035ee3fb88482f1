// Package cache provides a Redis-backed cache for optimized prompts. Keys
// are version-aware (see internal/version), so logic changes invalidate old
// entries on their own instead of requiring a flush.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arvind-rs/prompt-agent/internal/version"
)

const optimizedPromptPrefix = "optcache"

// ResponseCache caches optimized prompts keyed by the request payload. A nil
// *ResponseCache is a valid no-op cache, which keeps the agent usable when
// Redis is not configured.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, ttl: ttl}
}

// Key derives the versioned cache key for an optimization payload.
func Key(payload string) string {
	return version.VersionedCacheKey(optimizedPromptPrefix, payload)
}

// Get returns the cached prompt for key. Errors are logged and treated as a
// miss; a cold cache must never fail a request.
func (c *ResponseCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		log.Println("Prompt cache MISS")
		return "", false
	}
	if err != nil {
		log.Printf("⚠️ Prompt cache read failed: %v", err)
		return "", false
	}
	log.Println("Prompt cache HIT")
	return value, true
}

// Set stores a prompt under key for the cache TTL. Failures are logged and
// swallowed.
func (c *ResponseCache) Set(ctx context.Context, key, value string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		log.Printf("⚠️ Prompt cache write failed: %v", err)
	}
}
