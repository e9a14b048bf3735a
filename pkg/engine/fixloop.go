package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/srcfix/internal/logging"
	"github.com/yaklabco/srcfix/pkg/fix"
	"github.com/yaklabco/srcfix/pkg/fsutil"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// DefaultMaxFixAttempts bounds the number of committed fix passes per file.
// Plugins whose fixes create work for each other would otherwise loop
// forever; three passes resolves every honest cascade seen in practice.
const DefaultMaxFixAttempts = 3

// Fix drives the per-file fix loop: analyze, collect candidates, merge,
// commit, repeat. The loop ends when a pass produces no change (converged)
// or when the attempt budget is spent (not an error; the remaining
// diagnostics surface in report mode). If at least one commit occurred, the
// final text is persisted to backing storage exactly once.
func (e *Engine) Fix(ctx context.Context, path string) (*FileReport, error) {
	logger := logging.FromContext(ctx)

	budget := e.cfg.MaxFixAttempts
	if budget <= 0 {
		budget = DefaultMaxFixAttempts
	}

	first, err := e.store.Snapshot(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}
	originalText := first.Text

	report := &FileReport{Path: path}

	for {
		// Re-fetch: iteration n+1 must observe the snapshot committed at
		// the end of iteration n.
		snap, err := e.store.Snapshot(ctx, path)
		if err != nil {
			return nil, err
		}

		file, diags, err := e.analyze(ctx, snap)
		if err != nil {
			return nil, err
		}
		report.Snapshot = snap
		report.File = file
		report.Diagnostics = diags

		candidates, err := e.collectCandidates(ctx, file)
		if err != nil {
			return nil, err
		}

		merged := fix.Merge(snap.Text, path, candidates)
		report.SkippedCandidates += len(merged.Skipped)

		if !merged.Changed {
			break
		}

		committed, err := e.store.Replace(path, merged.Text)
		if err != nil {
			return nil, err
		}
		report.Commits++
		report.EditsApplied += acceptedEdits(merged.Accepted)

		logger.Debug("committed fix pass",
			logging.FieldPath, path,
			logging.FieldVersion, committed.Version,
			logging.FieldCandidates, len(merged.Accepted),
			logging.FieldSkipped, len(merged.Skipped),
		)

		if report.Commits >= budget {
			report.BudgetExhausted = true
			logger.Debug("fix attempt budget exhausted",
				logging.FieldPath, path,
				logging.FieldAttempts, report.Commits,
			)
			break
		}
	}

	if report.Commits == 0 {
		return report, nil
	}

	final, err := e.store.Snapshot(ctx, path)
	if err != nil {
		return nil, err
	}
	report.Snapshot = final

	if e.cfg.DryRun {
		report.Diff = fix.GenerateDiff(path, originalText, final.Text)
		return report, nil
	}

	// Persist the last committed snapshot, once.
	if err := e.store.Persist(ctx, path); err != nil {
		if errors.Is(err, fsutil.ErrModifiedExternally) {
			report.Skipped = true
			report.SkipReason = "file modified during processing"
			return report, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	report.Written = true

	return report, nil
}

// collectCandidates gathers fix candidates from every enabled Fixer for the
// whole-file range. A fixer error is fatal for the run.
func (e *Engine) collectCandidates(ctx context.Context, file *parser.File) ([]fix.Candidate, error) {
	var candidates []fix.Candidate

	for _, r := range e.resolved {
		if !r.AutoFix {
			continue
		}
		fixer, ok := r.Plugin.(plugin.Fixer)
		if !ok {
			continue
		}

		pctx := plugin.NewContext(ctx, file, e.cfg, r.Config)

		found, err := fixer.Fixes(pctx, 0, len(file.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrPluginFailure, r.Plugin.ID(), err)
		}
		candidates = append(candidates, found...)
	}
	return candidates, nil
}

// acceptedEdits counts the individual edits across accepted candidates.
func acceptedEdits(accepted []fix.Candidate) int {
	n := 0
	for _, c := range accepted {
		n += len(c.Edits)
	}
	return n
}
