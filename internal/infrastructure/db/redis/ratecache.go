package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateTTL = time.Hour

// RateCache caches exchange-rate pairs in Redis.
// Key format: rate:<FROM>:<TO>
type RateCache struct {
	client *redis.Client
}

// NewRateCache creates a RateCache wrapping the given Redis client.
func NewRateCache(client *redis.Client) *RateCache {
	return &RateCache{client: client}
}

// Get returns the cached rate for the pair and whether it was present.
func (c *RateCache) Get(ctx context.Context, from, to string) (float64, bool, error) {
	val, err := c.client.Get(ctx, c.key(from, to)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("rate cache get: %w", err)
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("rate cache parse: %w", err)
	}
	return rate, true, nil
}

// Set stores the rate for the pair (expires after rateTTL).
func (c *RateCache) Set(ctx context.Context, from, to string, rate float64) error {
	return c.client.Set(ctx, c.key(from, to), strconv.FormatFloat(rate, 'f', -1, 64), rateTTL).Err()
}

func (c *RateCache) key(from, to string) string {
	return fmt.Sprintf("rate:%s:%s", from, to)
}
