// Package cache stores computed header plans and rendered artifacts.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for the HTTP server (GANTTCAL_REDIS_URL)
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer] so that every option influencing the output
// also influences the key.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	// PlanTTL applies to computed layout plans.
	PlanTTL = 24 * time.Hour
	// ArtifactTTL applies to rendered SVG/PDF/PNG/JSON bytes.
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss returns (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
