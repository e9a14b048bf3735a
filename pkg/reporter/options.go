package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer receives the formatted output, typically os.Stdout.
	Writer io.Writer

	// Format selects the output format.
	Format Format

	// Color is "auto" (default), "always", or "never".
	Color string

	// ShowContext prints the offending source line under each diagnostic.
	ShowContext bool

	// ShowSummary appends the aggregate statistics line.
	ShowSummary bool

	// Compact minifies output where the format supports it.
	Compact bool

	// FixMode indicates the run already applied fixes, which suppresses
	// the hint to re-run with --fix.
	FixMode bool

	// WorkingDir, when set, makes reported paths relative to it.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}
