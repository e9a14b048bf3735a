// Package document provides the versioned document store and the read-only
// provider facade that the fix engine and its collaborators query.
// Snapshots are immutable; a new snapshot replaces the old one in the store.
package document

// Snapshot is an immutable view of one file's text at one point in time.
type Snapshot struct {
	// Path is the file path this snapshot belongs to.
	Path string

	// Text is the full file content.
	Text []byte

	// Version is the snapshot version. A freshly loaded file is version 0;
	// every committed replacement increments it by exactly 1.
	Version int64
}

// Len returns the length of the snapshot text in bytes.
func (s *Snapshot) Len() int {
	return len(s.Text)
}
