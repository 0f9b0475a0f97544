// Package store persists solved layouts so they can be fetched again by ID.
//
// The HTTP server saves every layout it solves and returns its ID; clients
// then fetch it with GET /v1/layouts/{id} or render it later. Three backends
// implement [Store]:
//
//   - [MemoryStore]: in-process map, for tests and single-instance servers
//   - [FileStore]: one JSON file per layout, for the CLI and small setups
//   - [MongoStore]: a MongoDB collection with a TTL index, for deployments
//
// Stored layouts expire after a TTL. Expired layouts behave as missing.
//
// # Usage
//
//	s := store.NewMemoryStore(store.DefaultTTL)
//	saved, err := s.Save(ctx, layout)
//	// ...
//	l, err := s.Get(ctx, saved.ID)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // unknown or expired
//	}
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/grid"
)

// DefaultTTL is how long a saved layout stays retrievable.
const DefaultTTL = 30 * 24 * time.Hour

// Store is the interface for layout storage backends.
type Store interface {
	// Save stores l and returns it with its ID set. An empty ID is replaced
	// by a new one; an existing ID overwrites the stored layout.
	Save(ctx context.Context, l grid.Layout) (grid.Layout, error)

	// Get retrieves a layout by ID. Unknown and expired IDs return an
	// error with code NOT_FOUND.
	Get(ctx context.Context, id string) (grid.Layout, error)

	// Delete removes a layout. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired layouts (may be a no-op when the backend
	// expires entries itself).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// record is a stored layout plus its bookkeeping.
type record struct {
	ID        string      `json:"id" bson:"_id"`
	Layout    grid.Layout `json:"layout" bson:"layout"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time   `json:"expires_at" bson:"expires_at"`
}

func (r *record) expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}

// NewID returns a new random layout ID.
func NewID() string {
	return uuid.NewString()
}

// ValidateID checks that id is a well-formed layout ID.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid layout id %q", id)
	}
	return nil
}

func newRecord(l grid.Layout, ttl time.Duration) record {
	if l.ID == "" {
		l.ID = NewID()
	}
	now := time.Now().UTC()
	r := record{ID: l.ID, Layout: l, CreatedAt: now}
	if ttl > 0 {
		r.ExpiresAt = now.Add(ttl)
	}
	return r
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "layout %s not found", id)
}
