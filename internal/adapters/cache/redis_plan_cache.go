package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the PlanCache port. Stores rendered
// itinerary responses keyed by a request digest.
type RedisPlanCache struct{ Client *redis.Client }

func NewRedisPlanCache(client *redis.Client) *RedisPlanCache {
	return &RedisPlanCache{Client: client}
}

func (r *RedisPlanCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if r.Client == nil {
		return nil, false, errors.New("redis plan cache: client is nil")
	}

	payload, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("plan cache get %q: %w", key, err)
	}
	return payload, true, nil
}

func (r *RedisPlanCache) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if r.Client == nil {
		return errors.New("redis plan cache: client is nil")
	}

	if err := r.Client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("plan cache put %q: %w", key, err)
	}
	return nil
}
