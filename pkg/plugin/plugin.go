// Package plugin defines the capability contract every srcfix analyzer
// implements, the registry that holds live plugin instances, and the
// resolution step that turns registry plus configuration into the set of
// plugins to run.
package plugin

import (
	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/fix"
)

// Diagnostic is a located problem reported by a plugin. The engine treats
// it as an opaque value: it is aggregated, counted, and handed to the
// reporting collaborator, never inspected beyond existence.
type Diagnostic struct {
	// PluginID is the identifier of the plugin that produced the diagnostic.
	PluginID string

	// RuleID names the specific rule within the plugin, if any.
	RuleID string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine / StartColumn are the 1-based start position.
	StartLine   int
	StartColumn int

	// EndLine / EndColumn are the 1-based end position.
	EndLine   int
	EndColumn int

	// Suggestion is an optional human-readable fix hint.
	Suggestion string

	// Fixable reports whether the plugin can propose a fix for this issue.
	Fixable bool
}

// Plugin is the identity every analyzer exposes. Everything else is
// optional: a plugin implements zero or more of Linter, Fixer, and
// RuleResolver, and the engine discovers the capabilities by type
// assertion.
type Plugin interface {
	// ID returns the unique identifier for this plugin (e.g., "semicolons").
	ID() string

	// Name returns the human-readable name.
	Name() string

	// Description returns what the plugin checks.
	Description() string
}

// Linter produces diagnostics for a document. Lint must be pure with
// respect to the document store and may be called repeatedly against
// successive snapshot versions of the same file.
type Linter interface {
	Lint(ctx *Context) ([]Diagnostic, error)
}

// Fixer produces candidate fixes whose edits fall within [start, end) of
// the document. The engine passes the whole-file range.
type Fixer interface {
	Fixes(ctx *Context, start, end int) ([]fix.Candidate, error)
}

// RuleResolver lets a plugin rewrite the active rule configuration before
// any Lint or Fixes call. Resolvers run once per run, in plugin
// registration order, each seeing the previous resolver's output.
type RuleResolver interface {
	ResolveRules(rules config.RuleSet) config.RuleSet
}

// DefaultSeverity is an optional capability for plugins that want a
// severity other than the configured default.
type DefaultSeverity interface {
	DefaultSeverity() config.Severity
}
