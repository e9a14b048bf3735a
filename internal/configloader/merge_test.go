package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcfix/pkg/config"
)

func TestMerge_NilHandling(t *testing.T) {
	t.Parallel()

	base := config.Default()
	assert.Same(t, base, merge(base, nil))
	assert.Same(t, base, merge(nil, base))
}

func TestMerge_ScalarOverride(t *testing.T) {
	t.Parallel()

	base := config.Default()
	override := &config.Config{
		SeverityDefault: "error",
		Format:          config.FormatJSON,
		MaxFixAttempts:  5,
	}

	result := merge(base, override)

	assert.Equal(t, "error", result.SeverityDefault)
	assert.Equal(t, config.FormatJSON, result.Format)
	assert.Equal(t, 5, result.MaxFixAttempts)
}

func TestMerge_ZeroValuesDoNotOverride(t *testing.T) {
	t.Parallel()

	base := config.Default()
	base.SeverityDefault = "error"
	base.MaxFixAttempts = 5

	result := merge(base, &config.Config{})

	assert.Equal(t, "error", result.SeverityDefault)
	assert.Equal(t, 5, result.MaxFixAttempts)
	assert.Equal(t, config.FormatText, result.Format)
}

func TestMerge_BooleanTrueWins(t *testing.T) {
	t.Parallel()

	base := config.Default()
	base.Fix = true

	// A false in the override cannot unset a true in the base.
	result := merge(base, &config.Config{DryRun: true})

	assert.True(t, result.Fix)
	assert.True(t, result.DryRun)
	assert.False(t, result.Strict)
}

func TestMerge_SlicesReplaceEntirely(t *testing.T) {
	t.Parallel()

	base := config.Default()
	base.Ignore = []string{"vendor/**", "dist/**"}

	result := merge(base, &config.Config{Ignore: []string{"build/**"}})
	assert.Equal(t, []string{"build/**"}, result.Ignore)

	// A nil slice in the override keeps the base's value.
	result = merge(base, &config.Config{})
	assert.Equal(t, []string{"vendor/**", "dist/**"}, result.Ignore)
}

func TestMerge_RuleSetDeepMerge(t *testing.T) {
	t.Parallel()

	enabled := true
	infoSev := "info"
	errorSev := "error"

	base := config.Default()
	base.Plugins = config.RuleSet{
		"semicolons": {
			Enabled:  &enabled,
			Severity: &infoSev,
			Options:  map[string]any{"depth": 2, "style": "always"},
		},
		"whitespace": {Severity: &infoSev},
	}

	override := &config.Config{
		Plugins: config.RuleSet{
			"semicolons": {
				Severity: &errorSev,
				Options:  map[string]any{"depth": 9},
			},
			"todos": {Severity: &errorSev},
		},
	}

	result := merge(base, override)

	semi := result.Plugins["semicolons"]
	require.NotNil(t, semi.Enabled)
	assert.True(t, *semi.Enabled)
	require.NotNil(t, semi.Severity)
	assert.Equal(t, "error", *semi.Severity)
	assert.Equal(t, 9, semi.Options["depth"])
	assert.Equal(t, "always", semi.Options["style"])

	// Entries unique to either side survive.
	assert.Contains(t, result.Plugins, "whitespace")
	assert.Contains(t, result.Plugins, "todos")
}

func TestMergeRuleConfig_NilPointersDoNotOverride(t *testing.T) {
	t.Parallel()

	enabled := false
	sev := "error"

	base := config.RuleConfig{Enabled: &enabled, Severity: &sev}
	result := mergeRuleConfig(base, config.RuleConfig{})

	require.NotNil(t, result.Enabled)
	assert.False(t, *result.Enabled)
	require.NotNil(t, result.Severity)
	assert.Equal(t, "error", *result.Severity)
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	first := &config.Config{SeverityDefault: "info"}
	second := &config.Config{SeverityDefault: "error"}
	third := &config.Config{MaxFixAttempts: 2}

	result := MergeAll(first, second, third)
	assert.Equal(t, "error", result.SeverityDefault)
	assert.Equal(t, 2, result.MaxFixAttempts)
}
