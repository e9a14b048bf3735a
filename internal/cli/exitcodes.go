package cli

import "github.com/yaklabco/srcfix/pkg/runner"

// Exit codes for srcfix.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check completed but found errors.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check found only warning or lower
	// severity diagnostics.
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Any remaining diagnostic makes the run non-zero: errors exit 1, lower
// severities exit 2. Strict mode promotes those lower severities to 1.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitCheckErrors
	}

	remaining := 0
	for severity, count := range result.Stats.DiagnosticsBySeverity {
		if severity == "error" && count > 0 {
			return ExitCheckErrors
		}
		remaining += count
	}

	if remaining > 0 {
		if strict {
			return ExitCheckErrors
		}
		return ExitCheckWarnings
	}

	return ExitSuccess
}
