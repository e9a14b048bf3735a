package builtin

import (
	"fmt"

	"github.com/yaklabco/srcfix/pkg/fix"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// FinalNewlinePlugin ensures files end with exactly one newline.
type FinalNewlinePlugin struct {
	BasePlugin
}

// NewFinalNewlinePlugin creates a new final newline plugin.
func NewFinalNewlinePlugin() *FinalNewlinePlugin {
	return &FinalNewlinePlugin{
		BasePlugin: NewBasePlugin(
			"finalnewline",
			"single-final-newline",
			"Files should end with a single newline character",
		),
	}
}

// Lint reports a missing final newline or excess trailing newlines.
func (p *FinalNewlinePlugin) Lint(ctx *plugin.Context) ([]plugin.Diagnostic, error) {
	issue := p.check(ctx)
	if issue == nil {
		return nil, nil
	}

	line, col := ctx.File.LineAt(issue.start)
	return []plugin.Diagnostic{{
		PluginID:    p.ID(),
		Message:     issue.message,
		FilePath:    ctx.File.Path,
		StartLine:   line,
		StartColumn: col,
		EndLine:     line,
		EndColumn:   col,
		Suggestion:  issue.suggestion,
		Fixable:     true,
	}}, nil
}

// Fixes proposes the single edit that normalizes the file ending, when the
// edit falls within [start, end).
func (p *FinalNewlinePlugin) Fixes(ctx *plugin.Context, start, end int) ([]fix.Candidate, error) {
	issue := p.check(ctx)
	if issue == nil || issue.start < start || issue.end > end {
		return nil, nil
	}

	candidate := fix.NewCandidate(
		fmt.Sprintf("%s: %s", p.ID(), issue.name),
		ctx.File.Path,
	).ReplaceRange(issue.start, issue.end, issue.newText).Build()
	return []fix.Candidate{candidate}, nil
}

type newlineIssue struct {
	name       string
	message    string
	suggestion string
	start, end int
	newText    string
}

func (p *FinalNewlinePlugin) check(ctx *plugin.Context) *newlineIssue {
	content := ctx.File.Content
	if len(content) == 0 {
		return nil
	}

	if content[len(content)-1] != '\n' {
		return &newlineIssue{
			name:       "add final newline",
			message:    "File should end with a newline",
			suggestion: "Add a newline at end of file",
			start:      len(content),
			end:        len(content),
			newText:    "\n",
		}
	}

	// Count trailing newlines, treating CRLF as one ending.
	endings := 0
	idx := len(content)
	for idx > 0 && content[idx-1] == '\n' {
		idx--
		if idx > 0 && content[idx-1] == '\r' {
			idx--
		}
		endings++
	}
	if endings <= 1 {
		return nil
	}

	// Keep the first ending, drop the rest.
	first := idx
	if content[first] == '\r' {
		first += 2
	} else {
		first++
	}
	return &newlineIssue{
		name:       "trim trailing newlines",
		message:    fmt.Sprintf("File ends with %d newlines, expected 1", endings),
		suggestion: "Remove extra trailing newlines",
		start:      first,
		end:        len(content),
		newText:    "",
	}
}
