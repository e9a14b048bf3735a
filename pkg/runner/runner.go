package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/srcfix/internal/logging"
	"github.com/yaklabco/srcfix/pkg/document"
	"github.com/yaklabco/srcfix/pkg/engine"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// Runner orchestrates multi-file analysis and fixing.
type Runner struct {
	// Storage backs the document store. Defaults to the OS file system.
	Storage document.Storage

	// Parser turns snapshots into parsed files. Defaults to the tree-sitter
	// parser.
	Parser parser.Parser

	// Registry supplies the plugins. Defaults to the global registry the
	// built-in plugins registered with.
	Registry *plugin.Registry
}

// New creates a Runner with default collaborators.
func New() *Runner {
	return &Runner{
		Storage:  document.NewOSStorage(),
		Parser:   parser.New(),
		Registry: plugin.DefaultRegistry,
	}
}

// Run discovers files under opts.Paths and processes them one at a time, in
// path order. Files are deliberately not processed concurrently: a fix pass
// commits document versions, and a deterministic sequential order is what
// makes runs reproducible end to end.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	logger.Debug("discovered files",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldWorkingDir, opts.WorkingDir,
	)

	if len(files) == 0 {
		return result, nil
	}

	store := document.NewStore(r.Storage)
	eng := engine.New(store, files, r.Parser, r.Registry, opts.Config)

	fixMode := opts.Config != nil && (opts.Config.Fix || opts.Config.DryRun)

	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		outcome := FileOutcome{Path: path}

		var report *engine.FileReport
		if fixMode {
			report, err = eng.Fix(ctx, path)
		} else {
			report, err = eng.Report(ctx, path)
		}
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Report = report
		}

		result.accumulate(outcome)

		if err != nil && fatalForRun(err) {
			return result, err
		}
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldFilesModified, result.Stats.FilesModified,
	)

	return result, nil
}

// fatalForRun reports whether a per-file error invalidates the whole run.
// A misbehaving plugin poisons every file, and a document that cannot be
// loaded or parsed means discovery and storage disagree about the tree.
func fatalForRun(err error) bool {
	return errors.Is(err, engine.ErrPluginFailure) ||
		errors.Is(err, engine.ErrParseFailure) ||
		errors.Is(err, engine.ErrDocumentLoad)
}
