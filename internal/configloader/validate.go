package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	// Field is the path to the invalid field (e.g. "plugins.semicolons.severity").
	Field string

	// Value is the offending value.
	Value any

	// Message describes what is wrong with it.
	Message string

	// FilePath is the config file containing the error, when known.
	FilePath string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	return strings.Join(append(parts, e.Message), ": ")
}

// ValidationResult collects validation findings. Errors prevent loading;
// warnings (e.g. an unknown plugin ID) do not.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether the configuration can be loaded.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether any warnings were found.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.SeverityDefault != "" && !IsValidSeverity(cfg.SeverityDefault) {
		result.addError("severity_default", cfg.SeverityDefault,
			"invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault)
	}

	if cfg.Format != "" && !IsValidFormat(cfg.Format) {
		result.addError("format", cfg.Format,
			"invalid format %q; must be one of: text, json, diff", cfg.Format)
	}

	if cfg.MaxFixAttempts < 0 {
		result.addError("max_fix_attempts", cfg.MaxFixAttempts,
			"max_fix_attempts must be >= 0 (0 means the built-in default)")
	}

	for pluginID, ruleCfg := range cfg.Plugins {
		if _, known := plugin.DefaultRegistry.Get(pluginID); !known {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "plugins." + pluginID,
				Value:   pluginID,
				Message: fmt.Sprintf("unknown plugin %q; it will be ignored", pluginID),
			})
		}
		if ruleCfg.Severity != nil && !IsValidSeverity(*ruleCfg.Severity) {
			result.addError("plugins."+pluginID+".severity", *ruleCfg.Severity,
				"invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity)
		}
	}

	for i, pattern := range cfg.Ignore {
		// filepath.Match errors only on malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern,
				"invalid glob pattern: %v", err)
		}
	}

	return result
}

// ValidateWithFile validates a configuration and stamps the source file path
// onto every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidSeverity reports whether s names a known severity.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

// IsValidFormat reports whether f is a supported output format.
func IsValidFormat(f config.OutputFormat) bool {
	switch f {
	case config.FormatText, config.FormatJSON, config.FormatDiff:
		return true
	default:
		return false
	}
}
