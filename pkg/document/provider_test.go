package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (*Provider, *Store) {
	t.Helper()

	storage := NewMemStorage(map[string][]byte{
		"a.js": []byte("content a"),
		"b.js": []byte("content b"),
	})
	store := NewStore(storage)
	return NewProvider(store, []string{"a.js", "b.js"}), store
}

func TestProvider_ListFiles(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t)
	assert.Equal(t, []string{"a.js", "b.js"}, provider.ListFiles())

	// The returned slice is a copy; mutating it does not affect the provider.
	files := provider.ListFiles()
	files[0] = "mutated"
	assert.Equal(t, []string{"a.js", "b.js"}, provider.ListFiles())
}

func TestProvider_Text(t *testing.T) {
	t.Parallel()

	provider, _ := newTestProvider(t)

	text, err := provider.Text(context.Background(), "a.js")
	require.NoError(t, err)
	assert.Equal(t, "content a", string(text))
}

func TestProvider_Version_TracksCommits(t *testing.T) {
	t.Parallel()

	provider, store := newTestProvider(t)
	ctx := context.Background()

	v, err := provider.Version(ctx, "a.js")
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	_, err = store.Replace("a.js", []byte("new"))
	require.NoError(t, err)

	v, err = provider.Version(ctx, "a.js")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	// The other file's version is unaffected.
	v, err = provider.Version(ctx, "b.js")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}

func TestProvider_ProjectVersion(t *testing.T) {
	t.Parallel()

	provider, store := newTestProvider(t)
	ctx := context.Background()

	assert.Equal(t, "0", provider.ProjectVersion())

	_, err := store.Snapshot(ctx, "a.js")
	require.NoError(t, err)
	_, err = store.Replace("a.js", []byte("new"))
	require.NoError(t, err)

	assert.Equal(t, "1", provider.ProjectVersion())
}
