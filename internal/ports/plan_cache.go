package ports

import (
	"context"
	"time"
)

// Contract for caching rendered itinerary responses keyed by a request
// digest. A miss is not an error; cache failures must never fail the
// request they were meant to speed up.
type PlanCache interface {
	// Return the cached payload for a key, with a hit/miss flag.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Store a payload under a key for at most ttl.
	Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
