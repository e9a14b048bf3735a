package builtin

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/srcfix/pkg/fix"
	"github.com/yaklabco/srcfix/pkg/langdetect"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// semicolonNodeTypes are the JavaScript statement node types that take a
// trailing semicolon. Statements relying on automatic semicolon insertion
// parse without a ";" child.
//
//nolint:gochecknoglobals // Read-only lookup table
var semicolonNodeTypes = map[string]bool{
	"lexical_declaration":  true,
	"variable_declaration": true,
	"expression_statement": true,
	"return_statement":     true,
	"break_statement":      true,
	"continue_statement":   true,
	"throw_statement":      true,
	"import_statement":     true,
	"export_statement":     true,
	"debugger_statement":   true,
}

// SemicolonsPlugin reports and fixes JavaScript statements that rely on
// automatic semicolon insertion.
type SemicolonsPlugin struct {
	BasePlugin
}

// NewSemicolonsPlugin creates a new semicolons plugin.
func NewSemicolonsPlugin() *SemicolonsPlugin {
	return &SemicolonsPlugin{
		BasePlugin: NewBasePlugin(
			"semicolons",
			"require-semicolons",
			"JavaScript statements should end with an explicit semicolon",
		),
	}
}

// Lint reports each statement missing its trailing semicolon.
func (p *SemicolonsPlugin) Lint(ctx *plugin.Context) ([]plugin.Diagnostic, error) {
	offsets, err := p.missingSemicolons(ctx)
	if err != nil {
		return nil, err
	}

	diags := make([]plugin.Diagnostic, 0, len(offsets))
	for _, offset := range offsets {
		line, col := ctx.File.LineAt(offset)
		diags = append(diags, plugin.Diagnostic{
			PluginID:    p.ID(),
			Message:     "Statement is missing a trailing semicolon",
			FilePath:    ctx.File.Path,
			StartLine:   line,
			StartColumn: col,
			EndLine:     line,
			EndColumn:   col,
			Suggestion:  "Add a semicolon",
			Fixable:     true,
		})
	}
	return diags, nil
}

// Fixes proposes one candidate per missing semicolon whose insertion point
// falls within [start, end).
func (p *SemicolonsPlugin) Fixes(ctx *plugin.Context, start, end int) ([]fix.Candidate, error) {
	offsets, err := p.missingSemicolons(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []fix.Candidate
	for _, offset := range offsets {
		if offset < start || offset > end {
			continue
		}
		line, _ := ctx.File.LineAt(offset)
		candidates = append(candidates, fix.NewCandidate(
			fmt.Sprintf("%s: insert ';' at line %d", p.ID(), line),
			ctx.File.Path,
		).Insert(offset, ";").Build())
	}
	return candidates, nil
}

// missingSemicolons walks the syntax tree and returns the byte offsets where
// a semicolon should be inserted, in source order.
func (p *SemicolonsPlugin) missingSemicolons(ctx *plugin.Context) ([]int, error) {
	if ctx.File == nil || ctx.File.Root == nil {
		return nil, nil
	}
	if ctx.File.Language != langdetect.LangJavaScript {
		return nil, nil
	}

	var offsets []int
	var walkErr error

	parser.Walk(ctx.File.Root, func(node *sitter.Node) bool {
		if ctx.Cancelled() {
			walkErr = fmt.Errorf("plugin cancelled: %w", ctx.Ctx.Err())
			return false
		}
		if !semicolonNodeTypes[node.Type()] {
			return true
		}
		if hasTrailingSemicolon(node) {
			return true
		}
		offsets = append(offsets, int(node.EndByte()))
		return true
	})

	return offsets, walkErr
}

func hasTrailingSemicolon(node *sitter.Node) bool {
	count := node.ChildCount()
	if count == 0 {
		return false
	}
	last := node.Child(int(count) - 1)
	return last != nil && last.Type() == ";"
}
