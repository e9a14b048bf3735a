// Package config defines core configuration types for srcfix.
// These are pure data structures with no dependency on any config loader.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

// Severity levels.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true for a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-plugin rule configuration.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// RuleSet is the active rule configuration keyed by plugin ID. Plugins can
// rewrite it through the resolve step before analysis starts.
type RuleSet map[string]RuleConfig

// Clone returns a shallow per-entry copy of the rule set.
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for id, rc := range rs {
		out[id] = rc
	}
	return out
}

// OutputFormat specifies the report output format.
type OutputFormat string

// Output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// Config is the root configuration for srcfix.
type Config struct {
	// Plugins contains per-plugin configuration keyed by plugin ID.
	Plugins RuleSet `yaml:"plugins"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// SeverityDefault is the severity for plugins that do not set one.
	SeverityDefault string `yaml:"severity_default"`

	// MaxFixAttempts bounds the fix loop's commits per file.
	// 0 means the built-in default.
	MaxFixAttempts int `yaml:"max_fix_attempts"`

	// CLI-level options, never persisted to config files.

	// Fix enables auto-fixing.
	Fix bool `yaml:"-"`

	// DryRun collects fixes and shows diffs without writing files.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Strict treats warnings as errors for the exit code.
	Strict bool `yaml:"-"`

	// EnablePlugins contains plugin IDs to explicitly enable.
	EnablePlugins []string `yaml:"-"`

	// DisablePlugins contains plugin IDs to explicitly disable.
	DisablePlugins []string `yaml:"-"`

	// FixPlugins limits auto-fixing to specific plugin IDs.
	FixPlugins []string `yaml:"-"`
}

// Default returns a Config with defaults applied.
func Default() *Config {
	return &Config{
		Plugins:         make(RuleSet),
		SeverityDefault: string(SeverityWarning),
		Format:          FormatText,
	}
}
