// Package cache implements change detection over content-hash manifests.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store persists cache entries in a flat JSON file, one file per project.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
}

// NewStore creates a store backed by the file at the given path, loading any
// existing entries.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make(map[string]domain.CacheEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads existing entries. An unreadable or corrupt file degrades to an
// empty store rather than failing construction; every hook is treated as
// changed and the next save rewrites the file.
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and derived from the layout
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.entries = make(map[string]domain.CacheEntry)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for cache store")
	}

	//nolint:gosec // Path is cleaned and derived from the layout
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write cache store")
	}

	return nil
}

// Get retrieves the entry for a key. Returns nil when absent.
func (s *Store) Get(key domain.CacheKey) (*domain.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key.String()]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the entry and persists the store.
func (s *Store) Put(key domain.CacheKey, entry domain.CacheEntry) error {
	s.mu.Lock()
	s.entries[key.String()] = entry
	s.mu.Unlock()

	return s.save()
}
