package fix

import (
	"slices"
)

// MergeResult is the outcome of merging a set of candidates into one file.
type MergeResult struct {
	// Text is the merged content. Equal to the input content when Changed
	// is false.
	Text []byte

	// Changed reports whether at least one candidate was accepted.
	Changed bool

	// Accepted are the candidates that were applied, in application order
	// (rightmost first).
	Accepted []Candidate

	// Skipped are candidates dropped because they overlap an accepted,
	// more-rightward candidate. Skipping is not an error: a later pass may
	// accept them once the conflicting edit has been applied or withdrawn.
	Skipped []Candidate

	// Rejected are candidates that were structurally invalid for this file
	// (cross-file edits, out-of-range offsets, self-overlapping edits).
	Rejected []Candidate
}

// ordered pairs a candidate with its edits pre-sorted for application.
type ordered struct {
	cand  Candidate
	edits []Edit // descending by start offset
	last  Edit   // rightmost edit
	first Edit   // leftmost edit
}

// Merge selects a maximal, non-overlapping, left-to-right-consistent subset
// of the candidates and applies it to content, producing the text of the
// replacement snapshot.
//
// The algorithm is a single greedy right-to-left pass. Candidates are walked
// in the order of their rightmost edit, right to left, with a boundary
// cursor that starts at the end of the content. A candidate is accepted only
// if its entire edit span lies at or before the boundary; its edits are then
// applied immediately in descending-offset order, and the boundary moves to
// the candidate's leftmost edit. Processing right to left keeps every
// not-yet-applied offset valid, so no edit is ever re-based.
//
// Acceptance depends only on edit spans, never on which plugin produced a
// candidate; ties in span are broken by the stable enumeration order of the
// input, so the same candidate set always yields the same result.
func Merge(content []byte, path string, candidates []Candidate) MergeResult {
	result := MergeResult{Text: content}

	entries := make([]ordered, 0, len(candidates))
	for _, c := range candidates {
		// A candidate with no edits is a no-op, not a conflict.
		if len(c.Edits) == 0 {
			continue
		}
		if err := ValidateCandidate(c, path, len(content)); err != nil {
			result.Rejected = append(result.Rejected, c)
			continue
		}

		edits := make([]Edit, len(c.Edits))
		copy(edits, c.Edits)
		SortEdits(edits)
		slices.Reverse(edits)

		entries = append(entries, ordered{
			cand:  c,
			edits: edits,
			last:  edits[0],
			first: edits[len(edits)-1],
		})
	}

	// Rightmost candidate first; stable so equal spans keep input order.
	slices.SortStableFunc(entries, func(a, b ordered) int {
		switch {
		case a.last.StartOffset > b.last.StartOffset:
			return -1
		case a.last.StartOffset < b.last.StartOffset:
			return 1
		default:
			return 0
		}
	})

	text := content
	boundary := len(content)

	for _, entry := range entries {
		if entry.last.StartOffset+entry.last.Len() > boundary {
			result.Skipped = append(result.Skipped, entry.cand)
			continue
		}

		for _, e := range entry.edits {
			text = splice(text, e)
		}
		boundary = entry.first.StartOffset
		result.Accepted = append(result.Accepted, entry.cand)
	}

	if len(result.Accepted) > 0 {
		result.Text = text
		result.Changed = true
	}
	return result
}

// splice replaces text[e.StartOffset:e.EndOffset] with e.NewText,
// returning a fresh slice so the input is never mutated.
func splice(text []byte, e Edit) []byte {
	out := make([]byte, 0, len(text)+len(e.NewText)-e.Len())
	out = append(out, text[:e.StartOffset]...)
	out = append(out, e.NewText...)
	out = append(out, text[e.EndOffset:]...)
	return out
}
