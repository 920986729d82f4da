// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations. The pipeline uses it to
// cache extracted sources keyed by normalized URL; implementations can be
// Redis, in-memory, or any other caching solution.
//
// Example usage:
//
//	// Store an extracted source
//	err := cache.Set(ctx, "source:https://example.com/a", data, 1*time.Hour)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "source:https://example.com/a")
//	if err != nil {
//		// handle error or cache miss
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
