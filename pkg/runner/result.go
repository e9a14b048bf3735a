package runner

import "github.com/yaklabco/srcfix/pkg/engine"

// FileOutcome pairs a file path with its engine report or error.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Report contains the engine report for this file.
	// May be nil if the file encountered an error during processing.
	Report *engine.FileReport

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped due to concurrent modification.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesBudgetExhausted is the number of files whose fix loop stopped at
	// the attempt budget instead of converging.
	FilesBudgetExhausted int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsFixable is the number of diagnostics that have auto-fixes.
	DiagnosticsFixable int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesModified is the number of files that were written by fixes.
	FilesModified int

	// EditsApplied is the total number of edits applied across all files.
	EditsApplied int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity["error"] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Report == nil {
		return
	}

	r.Stats.FilesProcessed++

	report := outcome.Report
	if report.Skipped {
		r.Stats.FilesSkipped++
	}
	if report.Written {
		r.Stats.FilesModified++
	}
	if report.BudgetExhausted {
		r.Stats.FilesBudgetExhausted++
	}
	r.Stats.EditsApplied += report.EditsApplied

	if len(report.Diagnostics) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.DiagnosticsTotal += len(report.Diagnostics)

	for _, diag := range report.Diagnostics {
		severity := string(diag.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.DiagnosticsBySeverity[severity]++
		if diag.Fixable {
			r.Stats.DiagnosticsFixable++
		}
	}
}
