// Package logging wraps charmbracelet/log with a process-wide default
// logger, level parsing, and context attachment.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One default logger per process.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// ParseLevel maps a level name to a log level, defaulting to info for
// anything it does not recognize. Matching is case-insensitive and both
// "warn" and "warning" are accepted.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a stderr logger at the given level.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// NewInteractive creates a logger for user-facing command output on stdout.
func NewInteractive() *log.Logger {
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(log.InfoLevel)
	return logger
}

// Default returns the process-wide default logger, creating it on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetDefault replaces the process-wide default logger.
func SetDefault(logger *log.Logger) {
	Default()
	defaultLogger = logger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
