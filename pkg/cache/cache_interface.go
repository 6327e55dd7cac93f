package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer so the backing store can be
// swapped (Redis, in-memory fakes in tests).
type Cache interface {
	// Get loads key into dest.
	// Returns found=false on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with ttl. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
