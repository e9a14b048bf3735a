package builtin

import (
	"bytes"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// defaultTodoKeywords are reported when the configuration sets none.
//
//nolint:gochecknoglobals // Read-only default
var defaultTodoKeywords = []string{"TODO", "FIXME", "XXX"}

// TodosPlugin reports task markers left in comments. It never proposes
// fixes; deleting a task marker is not a mechanical transformation.
type TodosPlugin struct {
	BasePlugin
}

// NewTodosPlugin creates a new todos plugin.
func NewTodosPlugin() *TodosPlugin {
	return &TodosPlugin{
		BasePlugin: NewBasePlugin(
			"todos",
			"no-task-markers",
			"Comments should not carry unresolved task markers",
		),
	}
}

// DefaultSeverity marks task markers informational rather than warnings.
func (p *TodosPlugin) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// ResolveRules injects the default keyword list into this plugin's rule
// entry when the configuration sets none, so reporting can show the active
// keywords.
func (p *TodosPlugin) ResolveRules(rules config.RuleSet) config.RuleSet {
	rc := rules[p.ID()]
	if rc.Options == nil {
		rc.Options = make(map[string]any)
	}
	if _, ok := rc.Options["keywords"]; !ok {
		rc.Options["keywords"] = defaultTodoKeywords
	}
	rules[p.ID()] = rc
	return rules
}

// Lint scans comments for the configured keywords. When no syntax tree is
// available the whole file is scanned line by line.
func (p *TodosPlugin) Lint(ctx *plugin.Context) ([]plugin.Diagnostic, error) {
	keywords := ctx.OptionStringSlice("keywords", defaultTodoKeywords)

	if ctx.File.Root == nil {
		return p.lintLines(ctx, keywords)
	}

	var diags []plugin.Diagnostic
	var walkErr error

	parser.Walk(ctx.File.Root, func(node *sitter.Node) bool {
		if ctx.Cancelled() {
			walkErr = fmt.Errorf("plugin cancelled: %w", ctx.Ctx.Err())
			return false
		}
		if node.Type() != "comment" {
			return true
		}
		start := int(node.StartByte())
		end := int(node.EndByte())
		diags = append(diags, p.scan(ctx, ctx.File.Content[start:end], start, keywords)...)
		return false
	})

	return diags, walkErr
}

func (p *TodosPlugin) lintLines(ctx *plugin.Context, keywords []string) ([]plugin.Diagnostic, error) {
	var diags []plugin.Diagnostic
	for _, info := range ctx.File.Lines {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("plugin cancelled: %w", ctx.Ctx.Err())
		}
		line := ctx.File.Content[info.StartOffset:info.NewlineStart]
		diags = append(diags, p.scan(ctx, line, info.StartOffset, keywords)...)
	}
	return diags, nil
}

// scan reports every keyword occurrence in text, which begins at base in the
// file.
func (p *TodosPlugin) scan(ctx *plugin.Context, text []byte, base int, keywords []string) []plugin.Diagnostic {
	var diags []plugin.Diagnostic
	for _, keyword := range keywords {
		needle := []byte(keyword)
		from := 0
		for {
			idx := bytes.Index(text[from:], needle)
			if idx < 0 {
				break
			}
			offset := base + from + idx
			line, col := ctx.File.LineAt(offset)
			diags = append(diags, plugin.Diagnostic{
				PluginID:    p.ID(),
				RuleID:      keyword,
				Message:     fmt.Sprintf("Unresolved %s marker", keyword),
				FilePath:    ctx.File.Path,
				StartLine:   line,
				StartColumn: col,
				EndLine:     line,
				EndColumn:   col + len(keyword),
			})
			from += idx + len(needle)
		}
	}
	return diags
}
