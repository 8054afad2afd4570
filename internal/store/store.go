// Package store implements generic JSON-file-backed keyed collection
// persistence. Each record kind lives in its own file as a single JSON
// array; every operation is a whole-file read followed by a whole-file
// rewrite under the store's lock.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Keyed is any record addressable by a stable string id.
type Keyed interface {
	Key() string
}

// Error describes a failed store operation. Op names the failing step
// (mkdir, read, parse, encode, write), Path the backing file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, filepath.Base(e.Path), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Store persists an ordered sequence of T keyed by id. The mutex is held
// across the full load+mutate+persist sequence so concurrent writers to
// the same kind cannot lose updates.
type Store[T Keyed] struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by the given file. The parent directory is
// created on first write.
func New[T Keyed](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// Load returns all records in stored order. A missing file is an empty
// collection, not an error; malformed content fails loudly.
func (s *Store[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Upsert replaces the first record whose id matches item, or appends it,
// then persists the full sequence.
func (s *Store[T]) Upsert(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	found := false
	for i, existing := range items {
		if existing.Key() == item.Key() {
			items[i] = item
			found = true
			break
		}
	}
	if !found {
		items = append(items, item)
	}

	return s.persist(items)
}

// Delete removes all records with the given id and persists. Deleting an
// absent id is a no-op that still succeeds.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.Key() != id {
			kept = append(kept, item)
		}
	}

	return s.persist(kept)
}

// Replace overwrites the stored sequence wholesale. Used by profile
// loading, which is a total overwrite rather than a merge.
func (s *Store[T]) Replace(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []T{}
	}
	return s.persist(items)
}

func (s *Store[T]) load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, &Error{Op: "read", Path: s.path, Err: err}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &Error{Op: "parse", Path: s.path, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *Store[T]) persist(items []T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &Error{Op: "create directory for", Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return &Error{Op: "encode", Path: s.path, Err: err}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
