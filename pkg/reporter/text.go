package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/srcfix/internal/ui/pretty"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	// A run with nothing to report stays silent.
	if result == nil || len(result.Files) == 0 {
		return 0, nil
	}

	var totalIssues int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Report == nil {
			continue
		}

		if file.Report.Skipped {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Warning.Render("skipped: "+file.Report.SkipReason),
			)
			continue
		}

		diagnostics := file.Report.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(diagnostics)))

		for _, diag := range diagnostics {
			var sourceLine string
			if r.opts.ShowContext {
				sourceLine = getSourceLine(file.Report.File, diag.StartLine)
			}
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext, sourceLine))
			totalIssues++
		}

		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary && summaryHasContent(result.Stats) {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		if result.Stats.DiagnosticsFixable > 0 && !r.opts.FixMode {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("Run with --fix to auto-repair fixable issues"))
		}
	}

	return totalIssues, nil
}

// summaryHasContent reports whether the run produced anything worth
// summarizing. A clean run prints nothing at all.
func summaryHasContent(stats runner.Stats) bool {
	return stats.DiagnosticsTotal > 0 ||
		stats.EditsApplied > 0 ||
		stats.FilesErrored > 0 ||
		stats.FilesSkipped > 0
}

// getSourceLine extracts one line from the parsed file's line index.
func getSourceLine(file *parser.File, lineNum int) string {
	if file == nil {
		return ""
	}
	content := file.LineContent(lineNum)
	if content == nil {
		return ""
	}
	return string(content)
}
