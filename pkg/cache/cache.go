// Package cache stores raw API responses keyed by request.
//
// # Overview
//
// The carquery client does not cache by default. When a [Cache] is
// configured, every command is keyed by its name plus the encoded query
// string, and the decoded payload is stored as JSON bytes.
//
// Backends:
//
//   - [FileCache]: hash-sharded JSON files, used by the CLI
//   - [RedisCache]: shared cache for the facade server
//   - [MongoCache]: document store with a TTL index
//   - [NullCache]: disables caching
//
// # Keys
//
// A [Keyer] builds keys. [DefaultKeyer] produces "http:<namespace>:<key>"
// keys, and [ScopedKeyer] prefixes all keys for isolation between tenants
// sharing one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
//
// Get reports a miss with (nil, false, nil); errors are reserved for
// backend failures. Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes for key and whether the key was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
