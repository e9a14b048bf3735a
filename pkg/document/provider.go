package document

import (
	"context"
	"strconv"
)

// Provider is the read-only facade that answers "what are the project's
// files, their current text, their version, and the project's aggregate
// version" on demand. Versions are string-encoded counters meant for
// equality comparison only; consumers use them to invalidate derived caches
// (parse trees, analysis results) cheaply, never for ordering.
type Provider struct {
	store *Store
	files []string
}

// NewProvider creates a provider over the store for a fixed file set.
// The file list does not change for the lifetime of one run.
func NewProvider(store *Store, files []string) *Provider {
	return &Provider{
		store: store,
		files: append([]string(nil), files...),
	}
}

// ListFiles returns the project's input file paths.
func (p *Provider) ListFiles() []string {
	return append([]string(nil), p.files...)
}

// Version returns the string-encoded version of one file's snapshot.
func (p *Provider) Version(ctx context.Context, path string) (string, error) {
	snap, err := p.store.Snapshot(ctx, path)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(snap.Version, 10), nil
}

// ProjectVersion returns the string-encoded aggregate project version.
func (p *Provider) ProjectVersion() string {
	return strconv.FormatInt(p.store.ProjectVersion(), 10)
}

// Text returns the current snapshot's text for a path.
func (p *Provider) Text(ctx context.Context, path string) ([]byte, error) {
	snap, err := p.store.Snapshot(ctx, path)
	if err != nil {
		return nil, err
	}
	return snap.Text, nil
}
