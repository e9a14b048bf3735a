package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Snapshot_LazyLoad(t *testing.T) {
	t.Parallel()

	storage := NewMemStorage(map[string][]byte{
		"a.js": []byte("let x = 1\n"),
	})
	store := NewStore(storage)

	snap, err := store.Snapshot(context.Background(), "a.js")
	require.NoError(t, err)
	assert.Equal(t, "a.js", snap.Path)
	assert.Equal(t, "let x = 1\n", string(snap.Text))
	assert.Equal(t, int64(0), snap.Version)
}

func TestStore_Snapshot_Cached(t *testing.T) {
	t.Parallel()

	storage := NewMemStorage(map[string][]byte{
		"a.js": []byte("original"),
	})
	store := NewStore(storage)

	ctx := context.Background()
	first, err := store.Snapshot(ctx, "a.js")
	require.NoError(t, err)

	second, err := store.Snapshot(ctx, "a.js")
	require.NoError(t, err)

	// Same snapshot instance, no re-read.
	assert.Same(t, first, second)
}

func TestStore_Snapshot_MissingFile(t *testing.T) {
	t.Parallel()

	store := NewStore(NewMemStorage(nil))

	_, err := store.Snapshot(context.Background(), "missing.js")
	assert.Error(t, err)
}

func TestStore_Replace_IncrementsVersion(t *testing.T) {
	t.Parallel()

	storage := NewMemStorage(map[string][]byte{
		"a.js": []byte("v0"),
	})
	store := NewStore(storage)

	ctx := context.Background()
	_, err := store.Snapshot(ctx, "a.js")
	require.NoError(t, err)

	snap, err := store.Replace("a.js", []byte("v1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Version)
	assert.Equal(t, "v1", string(snap.Text))

	snap, err = store.Replace("a.js", []byte("v2"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Version)

	// The store now serves the committed snapshot.
	current, err := store.Snapshot(ctx, "a.js")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(current.Text))
	assert.Equal(t, int64(2), current.Version)
}

func TestStore_Replace_NoDocument(t *testing.T) {
	t.Parallel()

	store := NewStore(NewMemStorage(nil))

	_, err := store.Replace("never-loaded.js", []byte("text"))
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestStore_ProjectVersion(t *testing.T) {
	t.Parallel()

	storage := NewMemStorage(map[string][]byte{
		"a.js": []byte("a"),
		"b.js": []byte("b"),
	})
	store := NewStore(storage)
	ctx := context.Background()

	assert.Equal(t, int64(0), store.ProjectVersion())

	// Loading does not advance the project version.
	_, err := store.Snapshot(ctx, "a.js")
	require.NoError(t, err)
	_, err = store.Snapshot(ctx, "b.js")
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.ProjectVersion())

	// Each commit advances it by exactly 1.
	_, err = store.Replace("a.js", []byte("a'"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.ProjectVersion())

	_, err = store.Replace("b.js", []byte("b'"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), store.ProjectVersion())
}

func TestStore_Persist(t *testing.T) {
	t.Parallel()

	storage := NewMemStorage(map[string][]byte{
		"a.js": []byte("before"),
	})
	store := NewStore(storage)
	ctx := context.Background()

	_, err := store.Snapshot(ctx, "a.js")
	require.NoError(t, err)
	_, err = store.Replace("a.js", []byte("after"))
	require.NoError(t, err)

	require.NoError(t, store.Persist(ctx, "a.js"))

	written, err := storage.ReadFile(ctx, "a.js")
	require.NoError(t, err)
	assert.Equal(t, "after", string(written))
	assert.Equal(t, 1, storage.WriteCount("a.js"))
}

func TestStore_Persist_NoDocument(t *testing.T) {
	t.Parallel()

	store := NewStore(NewMemStorage(nil))
	err := store.Persist(context.Background(), "missing.js")
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestSnapshot_Len(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{Text: []byte("12345")}
	assert.Equal(t, 5, snap.Len())
}
