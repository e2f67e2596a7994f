package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations must treat a
// miss as (false, nil) and leave dest untouched.
type Cache interface {
	// Get unmarshals the cached value into dest. found=false means a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
