package document

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/yaklabco/srcfix/pkg/fsutil"
)

// Storage is the backing file storage collaborator. The store reads each
// path lazily (once, until a commit) and writes each path at most once per
// run, only in fix mode, only if a commit occurred.
type Storage interface {
	// FileExists reports whether the path exists in backing storage.
	FileExists(path string) bool

	// ReadFile returns the backing text for a path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile persists text for a path.
	WriteFile(ctx context.Context, path string, text []byte) error
}

// OSStorage is the file-system backed Storage implementation. It remembers
// the state of every file it reads and refuses to overwrite a file that was
// modified externally while a run was in progress.
type OSStorage struct {
	mu   sync.Mutex
	read map[string]*fsutil.FileInfo
}

// NewOSStorage creates a Storage backed by the operating system.
func NewOSStorage() *OSStorage {
	return &OSStorage{
		read: make(map[string]*fsutil.FileInfo),
	}
}

// FileExists implements Storage.
func (s *OSStorage) FileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

// ReadFile implements Storage. It records the file's mode, size, mod time and
// content hash so a later WriteFile can detect concurrent modification.
func (s *OSStorage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.read[path] = info
	s.mu.Unlock()

	return content, nil
}

// WriteFile implements Storage. The write is atomic (temp file + rename) and
// preserves the mode observed at read time. If the file changed on disk since
// it was read, the write is refused with fsutil.ErrModifiedExternally.
func (s *OSStorage) WriteFile(ctx context.Context, path string, text []byte) error {
	s.mu.Lock()
	info := s.read[path]
	s.mu.Unlock()

	var mode os.FileMode
	if info != nil {
		mode = info.Mode

		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			return fmt.Errorf("check modified: %w", err)
		}
		if modified {
			return fmt.Errorf("%w: %s", fsutil.ErrModifiedExternally, path)
		}
	}

	return fsutil.WriteAtomic(ctx, path, text, mode)
}

// MemStorage is an in-memory Storage, used by tests and in-process embedders.
type MemStorage struct {
	mu     sync.Mutex
	files  map[string][]byte
	writes map[string]int
}

// NewMemStorage creates a MemStorage seeded with the given files.
func NewMemStorage(files map[string][]byte) *MemStorage {
	m := &MemStorage{
		files:  make(map[string][]byte, len(files)),
		writes: make(map[string]int),
	}
	for path, text := range files {
		m.files[path] = append([]byte(nil), text...)
	}
	return m
}

// FileExists implements Storage.
func (m *MemStorage) FileExists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

// ReadFile implements Storage.
func (m *MemStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	text, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fsutil.ErrNotFound, path)
	}
	return append([]byte(nil), text...), nil
}

// WriteFile implements Storage.
func (m *MemStorage) WriteFile(_ context.Context, path string, text []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = append([]byte(nil), text...)
	m.writes[path]++
	return nil
}

// WriteCount returns how many times a path was written. Used by tests to
// assert that the final text is persisted exactly once per run.
func (m *MemStorage) WriteCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[path]
}
