package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "let x = 1\n")

	content, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1\n", string(content))
	require.NotNil(t, info)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(10), info.Size)
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, _, err := ReadFile(context.Background(), filepath.Join(dir, "missing.js"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, _, err := ReadFile(context.Background(), dir)
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestReadFile_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ReadFile(ctx, "irrelevant")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckModified_Unchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "stable content")

	_, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	modified, err := CheckModified(context.Background(), info)
	require.NoError(t, err)
	assert.False(t, modified)
}

func TestCheckModified_ContentChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "original content")

	_, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("different content!"), 0644))

	modified, err := CheckModified(context.Background(), info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModified_TouchWithoutChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "same content")

	_, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	// Bump the mod time but keep the content identical.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	modified, err := CheckModified(context.Background(), info)
	require.NoError(t, err)
	assert.False(t, modified)
}

func TestCheckModified_Deleted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "soon gone")

	_, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	modified, err := CheckModified(context.Background(), info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModified_NilInfo(t *testing.T) {
	t.Parallel()

	_, err := CheckModified(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilFileInfo)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.js")

	err := WriteAtomic(context.Background(), path, []byte("written"), 0600)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "written", string(content))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())
}

func TestWriteAtomic_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "old")

	err := WriteAtomic(context.Background(), path, []byte("new"), 0)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestWriteAtomic_NoTempFileLeftBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("x"), 0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.js", entries[0].Name())
}

func TestWriteAtomic_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteAtomic(ctx, "irrelevant", nil, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
