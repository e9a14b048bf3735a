// Package runner provides multi-file orchestration: discovery, the
// per-file engine loop, and aggregate statistics.
package runner

import (
	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/langdetect"
)

// Options controls a run.
type Options struct {
	// Paths lists the files or directories to process. Empty means the
	// working directory.
	Paths []string

	// WorkingDir resolves relative Paths; empty means the process cwd.
	WorkingDir string

	// Extensions restricts discovery to these file extensions (lowercase,
	// leading dot). Empty means every supported grammar extension.
	Extensions []string

	// IncludeGlobs narrows discovery to matching files, relative to
	// WorkingDir. Empty means no narrowing beyond Extensions.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files or directories. Ignore rules from
	// config and --ignore end up here.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks during discovery.
	FollowSymlinks bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the extensions of every supported grammar.
func DefaultExtensions() []string {
	return langdetect.Extensions()
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
