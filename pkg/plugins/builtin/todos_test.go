package builtin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/parser"
	"github.com/yaklabco/srcfix/pkg/plugin"
)

// parsedContext runs the real parser so comment nodes are available.
func parsedContext(t *testing.T, path, content string, ruleCfg *config.RuleConfig) *plugin.Context {
	t.Helper()

	file, err := parser.New().Parse(context.Background(), path, []byte(content), 0)
	require.NoError(t, err)
	return plugin.NewContext(context.Background(), file, config.Default(), ruleCfg)
}

func TestTodos_Lint_CommentsOnly(t *testing.T) {
	t.Parallel()

	p := NewTodosPlugin()
	src := "// TODO: finish this\nlet TODO = 1;\n"
	ctx := parsedContext(t, "app.js", src, nil)

	diags, err := p.Lint(ctx)
	require.NoError(t, err)

	// The identifier TODO outside a comment is not reported.
	require.Len(t, diags, 1)
	assert.Equal(t, "todos", diags[0].PluginID)
	assert.Equal(t, "TODO", diags[0].RuleID)
	assert.Equal(t, 1, diags[0].StartLine)
	assert.False(t, diags[0].Fixable)
}

func TestTodos_Lint_AllDefaultKeywords(t *testing.T) {
	t.Parallel()

	p := NewTodosPlugin()
	src := "// TODO one\n// FIXME two\n// XXX three\n"
	ctx := parsedContext(t, "app.js", src, nil)

	diags, err := p.Lint(ctx)
	require.NoError(t, err)
	require.Len(t, diags, 3)

	keywords := make(map[string]bool)
	for _, d := range diags {
		keywords[d.RuleID] = true
	}
	assert.True(t, keywords["TODO"])
	assert.True(t, keywords["FIXME"])
	assert.True(t, keywords["XXX"])
}

func TestTodos_Lint_CustomKeywords(t *testing.T) {
	t.Parallel()

	p := NewTodosPlugin()
	src := "// HACK around the cache\n// TODO ignored now\n"
	ruleCfg := &config.RuleConfig{Options: map[string]any{
		"keywords": []any{"HACK"},
	}}
	ctx := parsedContext(t, "app.js", src, ruleCfg)

	diags, err := p.Lint(ctx)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "HACK", diags[0].RuleID)
}

func TestTodos_Lint_LineFallback(t *testing.T) {
	t.Parallel()

	// Files without a syntax tree are scanned whole.
	p := NewTodosPlugin()
	ctx := lineContext("plain text\nTODO item here\n")

	diags, err := p.Lint(ctx)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].StartLine)
}

func TestTodos_DefaultSeverity(t *testing.T) {
	t.Parallel()

	p := NewTodosPlugin()
	assert.Equal(t, config.SeverityInfo, p.DefaultSeverity())
}

func TestTodos_ResolveRules_InjectsDefaults(t *testing.T) {
	t.Parallel()

	p := NewTodosPlugin()
	out := p.ResolveRules(config.RuleSet{})

	rc, ok := out["todos"]
	require.True(t, ok)
	assert.Equal(t, defaultTodoKeywords, rc.Options["keywords"])
}

func TestTodos_ResolveRules_KeepsConfigured(t *testing.T) {
	t.Parallel()

	p := NewTodosPlugin()
	in := config.RuleSet{
		"todos": {Options: map[string]any{"keywords": []string{"HACK"}}},
	}
	out := p.ResolveRules(in)
	assert.Equal(t, []string{"HACK"}, out["todos"].Options["keywords"])
}
