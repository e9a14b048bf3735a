package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldFormat = "format"

	// Document fields.
	FieldVersion        = "version"
	FieldProjectVersion = "project_version"
	FieldLanguage       = "language"

	// Fix loop fields.
	FieldCandidates = "candidates"
	FieldSkipped    = "skipped"
	FieldAttempts   = "attempts"
	FieldEdits      = "edits"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesModified    = "files_modified"
	FieldDiagnostics      = "diagnostics"

	// Version fields.
	FieldCommit = "commit"
	FieldBuilt  = "built"

	// Plugin fields.
	FieldPlugin      = "plugin"
	FieldSeverity    = "severity"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
