package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const generationTTL = time.Hour

// GenerationCache stores AI generation results keyed by prompt hash, so
// identical requests within the TTL are served without a model call.
type GenerationCache struct {
	client *redis.Client
}

// NewGenerationCache creates a GenerationCache wrapping the given Redis client.
func NewGenerationCache(client *redis.Client) *GenerationCache {
	return &GenerationCache{client: client}
}

// Get returns the cached content for key and whether it was present.
func (c *GenerationCache) Get(ctx context.Context, key string) (string, bool, error) {
	content, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("generation cache get: %w", err)
	}
	return content, true, nil
}

// Set stores content under key (expires after generationTTL).
func (c *GenerationCache) Set(ctx context.Context, key, content string) error {
	return c.client.Set(ctx, key, content, generationTTL).Err()
}
