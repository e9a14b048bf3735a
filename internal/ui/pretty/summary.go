package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/srcfix/pkg/runner"
)

// FormatSummaryOneLine renders run statistics as a single trailing line,
// e.g. "12 issues (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		return s.cleanSummary(stats) + "\n"
	}

	parts := []string{
		s.issueCount(stats),
		"in " + plural(stats.FilesWithIssues, "file"),
	}

	if stats.DiagnosticsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
	}
	if stats.EditsApplied > 0 {
		parts = append(parts, s.fixedNote(stats))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(plural(stats.FilesSkipped, "file")+" skipped"))
	}

	return strings.Join(parts, ", ") + "\n"
}

// cleanSummary covers the no-remaining-issues case, which still mentions
// applied fixes when the run repaired everything it found.
func (s *Styles) cleanSummary(stats runner.Stats) string {
	msg := s.Success.Render("No issues found") +
		s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
	if stats.EditsApplied > 0 {
		msg += ", " + s.fixedNote(stats)
	}
	return msg
}

// issueCount renders the total with a severity breakdown when one exists.
func (s *Styles) issueCount(stats runner.Stats) string {
	severities := []struct {
		key   string
		style lipgloss.Style
	}{
		{"error", s.Error},
		{"warning", s.Warning},
		{"info", s.Info},
	}

	var breakdown []string
	for _, sev := range severities {
		n := stats.DiagnosticsBySeverity[sev.key]
		if n == 0 {
			continue
		}
		label := sev.key
		if n != 1 && sev.key != "info" {
			label += "s"
		}
		breakdown = append(breakdown, sev.style.Render(fmt.Sprintf("%d %s", n, label)))
	}

	total := plural(stats.DiagnosticsTotal, "issue")
	if len(breakdown) == 0 {
		return total
	}
	return fmt.Sprintf("%s (%s)", total, strings.Join(breakdown, ", "))
}

func (s *Styles) fixedNote(stats runner.Stats) string {
	return s.Success.Render(fmt.Sprintf("%d fixed in %s",
		stats.EditsApplied, plural(stats.FilesModified, "file")))
}

// plural renders "1 file" / "3 files" style counts.
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
