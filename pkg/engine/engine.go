// Package engine coordinates documents, plugins, and the fix merge into the
// per-file analysis and fix loops.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/srcfix/internal/logging"
	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/document"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// Engine error types for categorization.
var (
	// ErrPluginFailure indicates a plugin returned an error during Lint or
	// Fixes. A misbehaving plugin cannot be trusted to have produced a
	// consistent diagnostic or fix set, so this is fatal for the run.
	ErrPluginFailure = errors.New("plugin failure")

	// ErrParseFailure indicates the document could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrDocumentLoad indicates the document text could not be loaded from
	// backing storage. Discovery and storage are then out of sync, so this
	// is fatal for the run.
	ErrDocumentLoad = errors.New("document load failure")

	// ErrWriteFailure indicates the final persist failed.
	ErrWriteFailure = errors.New("write failure")
)

// Engine runs plugins over the project's documents. It owns no ambient
// state: the store, provider, parser, and registry are all constructed
// explicitly and passed in, so independent engines can coexist in one
// process.
type Engine struct {
	store    *document.Store
	provider *document.Provider
	parser   parser.Parser
	registry *plugin.Registry

	cfg      *config.Config
	rules    config.RuleSet
	resolved []plugin.Resolved
}

// New creates an engine for a fixed file set. The plugins' rule resolvers
// run exactly once, here, in registration order.
func New(store *document.Store, files []string, p parser.Parser, registry *plugin.Registry, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}

	rules := plugin.ResolveRuleSet(registry, cfg.Plugins)

	return &Engine{
		store:    store,
		provider: document.NewProvider(store, files),
		parser:   p,
		registry: registry,
		cfg:      cfg,
		rules:    rules,
		resolved: plugin.ResolvePlugins(registry, cfg, rules),
	}
}

// Provider exposes the read-only document facade for external collaborators
// (e.g. a language-tooling layer that caches parse trees keyed by version).
func (e *Engine) Provider() *document.Provider {
	return e.provider
}

// Report runs a single analysis pass over one file and returns its
// diagnostics. No fixes are collected and nothing is committed.
func (e *Engine) Report(ctx context.Context, path string) (*FileReport, error) {
	snap, err := e.store.Snapshot(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}

	file, diags, err := e.analyze(ctx, snap)
	if err != nil {
		return nil, err
	}

	return &FileReport{
		Path:        path,
		Snapshot:    snap,
		File:        file,
		Diagnostics: diags,
	}, nil
}

// analyze parses a snapshot and runs every enabled Linter against it.
func (e *Engine) analyze(ctx context.Context, snap *document.Snapshot) (*parser.File, []plugin.Diagnostic, error) {
	file, err := e.parser.Parse(ctx, snap.Path, snap.Text, snap.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	logger := logging.FromContext(ctx)

	var diags []plugin.Diagnostic
	for _, r := range e.resolved {
		linter, ok := r.Plugin.(plugin.Linter)
		if !ok {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		default:
		}

		pctx := plugin.NewContext(ctx, file, e.cfg, r.Config)

		found, err := linter.Lint(pctx)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPluginFailure, r.Plugin.ID(), err)
		}

		for i := range found {
			found[i].Severity = r.Severity
			if found[i].PluginID == "" {
				found[i].PluginID = r.Plugin.ID()
			}
			if found[i].FilePath == "" {
				found[i].FilePath = snap.Path
			}
		}
		diags = append(diags, found...)
	}

	logger.Debug("analyzed file",
		logging.FieldPath, snap.Path,
		logging.FieldVersion, snap.Version,
		logging.FieldDiagnostics, len(diags),
	)

	return file, diags, nil
}
