// Package cache provides pluggable caching for solved layouts and rendered
// artifacts.
//
// Two backends ship with tilegrid:
//   - [FileCache] stores entries under a directory (CLI default)
//   - [RedisCache] stores entries in Redis (server deployments)
//
// [NullCache] disables caching entirely.
//
// Keys are built by a [Keyer]. The default keyer hashes every input that can
// change the result, so a layout is only reused when the container, count,
// aspect ratio, mode and placement options all match.
package cache

import (
	"context"
	"time"
)

// Default TTLs. A layout is a pure function of its inputs, so both are long;
// they only bound how much disk or memory stale entries can hold.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil). An error means the backend itself
// failed; callers treat that as a miss and carry on.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache misses on every Get and drops every Set. The CLI uses it for
// --no-cache.
type NullCache struct{}

// NewNullCache returns a [NullCache].
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
