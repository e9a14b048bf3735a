package builtin

import (
	"fmt"

	"github.com/yaklabco/srcfix/pkg/fix"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// TrailingWhitespacePlugin reports and removes trailing whitespace on lines.
// It is line-based and works for every language.
type TrailingWhitespacePlugin struct {
	BasePlugin
}

// NewTrailingWhitespacePlugin creates a new trailing whitespace plugin.
func NewTrailingWhitespacePlugin() *TrailingWhitespacePlugin {
	return &TrailingWhitespacePlugin{
		BasePlugin: NewBasePlugin(
			"whitespace",
			"no-trailing-whitespace",
			"Lines should not have trailing spaces or tabs",
		),
	}
}

// Lint reports each line carrying trailing whitespace.
func (p *TrailingWhitespacePlugin) Lint(ctx *plugin.Context) ([]plugin.Diagnostic, error) {
	var diags []plugin.Diagnostic

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("plugin cancelled: %w", ctx.Ctx.Err())
		}

		start, end := trailingWhitespaceRange(ctx.File.Content, ctx.File.Lines[lineNum-1].StartOffset, ctx.File.Lines[lineNum-1].NewlineStart)
		if start < 0 {
			continue
		}

		lineStart := ctx.File.Lines[lineNum-1].StartOffset
		diags = append(diags, plugin.Diagnostic{
			PluginID:    p.ID(),
			Message:     "Trailing whitespace",
			FilePath:    ctx.File.Path,
			StartLine:   lineNum,
			StartColumn: start - lineStart + 1,
			EndLine:     lineNum,
			EndColumn:   end - lineStart + 1,
			Suggestion:  "Remove trailing whitespace",
			Fixable:     true,
		})
	}
	return diags, nil
}

// Fixes proposes one candidate per offending line whose range falls within
// [start, end).
func (p *TrailingWhitespacePlugin) Fixes(ctx *plugin.Context, start, end int) ([]fix.Candidate, error) {
	var candidates []fix.Candidate

	for lineNum := 1; lineNum <= ctx.File.LineCount(); lineNum++ {
		if ctx.Cancelled() {
			return candidates, fmt.Errorf("plugin cancelled: %w", ctx.Ctx.Err())
		}

		info := ctx.File.Lines[lineNum-1]
		wsStart, wsEnd := trailingWhitespaceRange(ctx.File.Content, info.StartOffset, info.NewlineStart)
		if wsStart < 0 || wsStart < start || wsEnd > end {
			continue
		}

		candidates = append(candidates, fix.NewCandidate(
			fmt.Sprintf("%s: trim line %d", p.ID(), lineNum),
			ctx.File.Path,
		).Delete(wsStart, wsEnd).Build())
	}
	return candidates, nil
}

// trailingWhitespaceRange returns the [start, end) byte range of trailing
// spaces and tabs between lineStart and newlineStart, or (-1, -1) when the
// line is clean. All-whitespace lines are reported whole.
func trailingWhitespaceRange(content []byte, lineStart, newlineStart int) (int, int) {
	start := newlineStart
	for start > lineStart {
		c := content[start-1]
		if c != ' ' && c != '\t' {
			break
		}
		start--
	}
	if start == newlineStart {
		return -1, -1
	}
	return start, newlineStart
}
