package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/tilegrid/pkg/grid"
)

// FileStore is a file-based layout store. Each layout is a JSON file named
// after its ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
	ttl     time.Duration
}

// NewFileStore creates a file-based store.
// If baseDir is empty, defaults to ~/.local/share/tilegrid/layouts.
func NewFileStore(baseDir string, ttl time.Duration) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".local", "share", "tilegrid", "layouts")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	return &FileStore{baseDir: baseDir, ttl: ttl}, nil
}

func (s *FileStore) layoutPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Save(_ context.Context, l grid.Layout) (grid.Layout, error) {
	if l.ID != "" {
		if err := ValidateID(l.ID); err != nil {
			return grid.Layout{}, err
		}
	}
	r := newRecord(l, s.ttl)
	r.Layout.ID = r.ID

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return grid.Layout{}, fmt.Errorf("marshal layout: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.layoutPath(r.ID), data, 0644); err != nil {
		return grid.Layout{}, fmt.Errorf("write layout file: %w", err)
	}
	return r.Layout, nil
}

func (s *FileStore) Get(_ context.Context, id string) (grid.Layout, error) {
	if err := ValidateID(id); err != nil {
		return grid.Layout{}, notFound(id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.layoutPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return grid.Layout{}, notFound(id)
		}
		return grid.Layout{}, fmt.Errorf("read layout file: %w", err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return grid.Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if r.expired(time.Now()) {
		return grid.Layout{}, notFound(id)
	}
	return r.Layout, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	if ValidateID(id) != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.layoutPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove layout file: %w", err)
	}
	return nil
}

func (s *FileStore) Cleanup(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("read layout dir: %w", err)
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var r record
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		if r.expired(now) {
			os.Remove(path)
		}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for layout files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
