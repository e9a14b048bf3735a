package engine

import (
	"github.com/yaklabco/srcfix/pkg/document"
	"github.com/yaklabco/srcfix/pkg/fix"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// FileReport is the per-file outcome of a Report or Fix pass.
type FileReport struct {
	Path string

	// Snapshot is the document state the diagnostics refer to. After a fix
	// pass it is the final snapshot, after a report pass the analyzed one.
	Snapshot *document.Snapshot

	// File is the parse result backing the last analysis pass.
	File *parser.File

	// Diagnostics from the last analysis pass. After a successful fix loop
	// these are the issues that remain.
	Diagnostics []plugin.Diagnostic

	// Commits counts snapshot replacements performed by the fix loop.
	Commits int

	// EditsApplied counts individual edits across all accepted candidates.
	EditsApplied int

	// SkippedCandidates counts candidates deferred to a later pass because
	// they collided with an already accepted one.
	SkippedCandidates int

	// BudgetExhausted is set when the loop stopped at the commit budget
	// rather than by convergence.
	BudgetExhausted bool

	// Skipped is set when the file changed on disk during processing and
	// the result was discarded instead of written.
	Skipped    bool
	SkipReason string

	// Written is set when the fixed text was persisted to storage.
	Written bool

	// Diff holds the unified diff in dry-run mode, nil when nothing changed.
	Diff *fix.Diff
}

// Changed reports whether the fix loop modified the document.
func (r *FileReport) Changed() bool {
	return r.Commits > 0
}

// CountBySeverity tallies remaining diagnostics per severity string.
func (r *FileReport) CountBySeverity() map[string]int {
	counts := make(map[string]int, 3)
	for _, d := range r.Diagnostics {
		counts[string(d.Severity)]++
	}
	return counts
}
