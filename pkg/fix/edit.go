// Package fix provides text edit types and the merge engine that turns
// possibly-overlapping fix candidates from independent plugins into a single
// consistent text replacement.
package fix

// Edit represents a single text replacement in a file, addressed by absolute
// byte offsets into the exact snapshot text it was computed from. Applying an
// edit to any other snapshot version is a correctness hazard.
type Edit struct {
	// Path is the file the edit targets.
	Path string

	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Len returns the number of bytes the edit replaces.
func (e Edit) Len() int {
	return e.EndOffset - e.StartOffset
}

// Candidate is a named group of edits proposed by one plugin. Its edits are
// applied atomically: either every edit lands or none does.
type Candidate struct {
	// Name identifies the candidate, typically "plugin-id: summary".
	Name string

	// Edits are the text edits making up the candidate.
	Edits []Edit
}

// CandidateBuilder accumulates edits for a single candidate.
type CandidateBuilder struct {
	name  string
	path  string
	edits []Edit
}

// NewCandidate creates a builder for a candidate targeting one file.
func NewCandidate(name, path string) *CandidateBuilder {
	return &CandidateBuilder{name: name, path: path}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *CandidateBuilder) ReplaceRange(start, end int, newText string) *CandidateBuilder {
	b.edits = append(b.edits, Edit{
		Path:        b.path,
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
	return b
}

// Insert adds an edit that inserts text at the given offset.
func (b *CandidateBuilder) Insert(offset int, text string) *CandidateBuilder {
	return b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *CandidateBuilder) Delete(start, end int) *CandidateBuilder {
	return b.ReplaceRange(start, end, "")
}

// Build returns the accumulated candidate.
func (b *CandidateBuilder) Build() Candidate {
	return Candidate{Name: b.name, Edits: b.edits}
}
