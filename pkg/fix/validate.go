package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit with an invalid range.
type ValidationError struct {
	Edit    Edit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// CrossFileError describes a candidate whose edits span more than one file.
type CrossFileError struct {
	Candidate string
	Want      string
	Got       string
}

func (e *CrossFileError) Error() string {
	return fmt.Sprintf("candidate %q targets %q, expected %q", e.Candidate, e.Got, e.Want)
}

// ConflictError describes two overlapping edits inside one candidate.
type ConflictError struct {
	Edit1 Edit
	Edit2 Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// ValidateCandidate checks that a candidate is structurally applicable to a
// file: every edit targets the given path, lies within contentLen, and no
// two of the candidate's own edits overlap. A failing candidate is rejected
// wholesale; partial application is never allowed.
func ValidateCandidate(c Candidate, path string, contentLen int) error {
	for _, edit := range c.Edits {
		if edit.Path != path {
			return &CrossFileError{Candidate: c.Name, Want: path, Got: edit.Path}
		}
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}

	sorted := make([]Edit, len(c.Edits))
	copy(sorted, c.Edits)
	SortEdits(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i].StartOffset < sorted[i-1].EndOffset {
			return &ConflictError{Edit1: sorted[i-1], Edit2: sorted[i]}
		}
	}
	return nil
}

// SortEdits sorts edits ascending by start offset, then by end offset.
func SortEdits(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}
