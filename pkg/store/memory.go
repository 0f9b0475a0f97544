package store

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/tilegrid/pkg/grid"
)

// MemoryStore keeps layouts in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	records map[string]record
}

// NewMemoryStore creates an in-memory store. A ttl of zero keeps layouts
// forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, records: make(map[string]record)}
}

func (s *MemoryStore) Save(_ context.Context, l grid.Layout) (grid.Layout, error) {
	if l.ID != "" {
		if err := ValidateID(l.ID); err != nil {
			return grid.Layout{}, err
		}
	}
	r := newRecord(l, s.ttl)
	r.Layout.ID = r.ID

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r
	return r.Layout, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (grid.Layout, error) {
	s.mu.RLock()
	r, ok := s.records[id]
	s.mu.RUnlock()

	if !ok || r.expired(time.Now()) {
		return grid.Layout{}, notFound(id)
	}
	return r.Layout, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) Cleanup(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, r := range s.records {
		if r.expired(now) {
			delete(s.records, id)
		}
	}
	return nil
}

// Len returns the number of stored layouts, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
