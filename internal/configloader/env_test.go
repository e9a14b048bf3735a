package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcfix/pkg/config"
)

func TestLoadFromEnv_StringFields(t *testing.T) {
	t.Setenv("SRCFIX_SEVERITY_DEFAULT", "error")
	t.Setenv("SRCFIX_FORMAT", "json")

	cfg := config.Default()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, "error", cfg.SeverityDefault)
	assert.Equal(t, config.FormatJSON, cfg.Format)
}

func TestLoadFromEnv_BoolFields(t *testing.T) {
	t.Setenv("SRCFIX_FIX", "true")
	t.Setenv("SRCFIX_DRY_RUN", "1")
	t.Setenv("SRCFIX_STRICT", "false")

	cfg := config.Default()
	cfg.Strict = false
	require.NoError(t, LoadFromEnv(cfg))

	assert.True(t, cfg.Fix)
	assert.True(t, cfg.DryRun)
	assert.False(t, cfg.Strict)
}

func TestLoadFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("SRCFIX_FIX", "yes please")

	cfg := config.Default()
	err := LoadFromEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SRCFIX_FIX")
}

func TestLoadFromEnv_IntField(t *testing.T) {
	t.Setenv("SRCFIX_MAX_FIX_ATTEMPTS", "7")

	cfg := config.Default()
	require.NoError(t, LoadFromEnv(cfg))
	assert.Equal(t, 7, cfg.MaxFixAttempts)
}

func TestLoadFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("SRCFIX_MAX_FIX_ATTEMPTS", "lots")

	cfg := config.Default()
	err := LoadFromEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SRCFIX_MAX_FIX_ATTEMPTS")
}

func TestLoadFromEnv_SliceField(t *testing.T) {
	t.Setenv("SRCFIX_IGNORE", "vendor/**, node_modules/**, ,dist")

	cfg := config.Default()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, []string{"vendor/**", "node_modules/**", "dist"}, cfg.Ignore)
}

func TestLoadFromEnv_EmptyValueIgnored(t *testing.T) {
	t.Setenv("SRCFIX_SEVERITY_DEFAULT", "")

	cfg := config.Default()
	require.NoError(t, LoadFromEnv(cfg))
	assert.Equal(t, string(config.SeverityWarning), cfg.SeverityDefault)
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadFromEnv(nil))
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "a", want: []string{"a"}},
		{name: "multiple", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "whitespace trimmed", input: " a , b ", want: []string{"a", "b"}},
		{name: "empty elements dropped", input: "a,,b,", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseSliceValue(tt.input))
		})
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	for suffix := range envMappings {
		assert.Contains(t, vars, envVarPrefix+suffix)
	}
}
