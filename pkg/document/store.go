package document

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Store errors.
var (
	// ErrNoDocument indicates a path that has no snapshot in the store.
	ErrNoDocument = errors.New("no document for path")
)

// Store holds the current snapshot for every file touched during a run,
// together with a process-wide project version counter. The project version
// changes if and only if at least one file's snapshot changed.
//
// The store is constructed explicitly and passed around, never ambient, so
// tests and embedders can run independent stores side by side.
type Store struct {
	storage Storage

	mu             sync.Mutex
	snapshots      map[string]*Snapshot
	projectVersion int64
}

// NewStore creates an empty store on top of the given backing storage.
func NewStore(storage Storage) *Store {
	return &Store{
		storage:   storage,
		snapshots: make(map[string]*Snapshot),
	}
}

// Snapshot returns the current snapshot for a path. On first access the
// backing text is read lazily and wrapped as version 0; subsequent calls
// return the cached snapshot until Replace commits a new one.
func (s *Store) Snapshot(ctx context.Context, path string) (*Snapshot, error) {
	s.mu.Lock()
	if snap, ok := s.snapshots[path]; ok {
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	// Suspension point: the only I/O on the snapshot path.
	text, err := s.storage.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have loaded it while we were reading.
	if snap, ok := s.snapshots[path]; ok {
		return snap, nil
	}

	snap := &Snapshot{Path: path, Text: text, Version: 0}
	s.snapshots[path] = snap
	return snap, nil
}

// Replace commits new text for a path. The new snapshot's version is the
// previous version plus 1, and the project version advances by exactly 1.
// The path must already have a snapshot; commits never create documents.
func (s *Store) Replace(path string, text []byte) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.snapshots[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDocument, path)
	}

	snap := &Snapshot{Path: path, Text: text, Version: prev.Version + 1}
	s.snapshots[path] = snap
	s.projectVersion++
	return snap, nil
}

// ProjectVersion returns the current project version counter.
func (s *Store) ProjectVersion() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectVersion
}

// Persist writes the current snapshot text for a path back to backing
// storage. Callers invoke it at most once per path per run, after the fix
// loop reached a terminal state with at least one commit.
func (s *Store) Persist(ctx context.Context, path string) error {
	s.mu.Lock()
	snap, ok := s.snapshots[path]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNoDocument, path)
	}

	if err := s.storage.WriteFile(ctx, path, snap.Text); err != nil {
		return fmt.Errorf("persist %s: %w", path, err)
	}
	return nil
}
