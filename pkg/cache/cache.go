// Package cache provides response caching for the parsing-service client.
//
// Three backends implement the [Cache] interface:
//
//   - [FileCache]: sharded file storage for CLI usage (~/.cache/logicmap/)
//   - [RedisCache]: Redis-backed storage for server deployments
//   - [NullCache]: no-op backend for tests and --no-cache runs
//
// Keys are arbitrary strings; backends hash them before storage, so long
// keys (such as whole input passages) are acceptable. Entries carry a TTL
// supplied at Set time; a TTL of 0 means the entry never expires.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value by key.
	// Returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
	// Expired entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
