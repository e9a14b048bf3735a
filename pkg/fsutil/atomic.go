package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used for newly created files when no mode is known.
const DefaultFileMode os.FileMode = 0644

// WriteAtomic writes content to path atomically. The content is staged in a
// temp file next to the target and renamed into place, so a crash mid-write
// never leaves a partially written target. If mode is 0, DefaultFileMode is
// used.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmpPath, err := stageTemp(path, content, mode)
	if err != nil {
		return err
	}

	// Rename is atomic on POSIX.
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// stageTemp writes content to a temp file in the target's directory and
// returns its path. The temp file is removed on any failure.
func stageTemp(path string, content []byte, mode os.FileMode) (string, error) {
	dir, base := filepath.Dir(path), filepath.Base(path)

	staged, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := staged.Name()

	fail := func(step string, err error) (string, error) {
		_ = staged.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("%s temp file: %w", step, err)
	}

	if _, err := staged.Write(content); err != nil {
		return fail("write", err)
	}
	if err := staged.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := staged.Close(); err != nil {
		return fail("close", err)
	}
	if err := os.Chmod(name, mode); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	return name, nil
}
