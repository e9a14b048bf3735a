package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/srcfix/pkg/config"
)

// envVarPrefix is the prefix for all srcfix environment variables.
const envVarPrefix = "SRCFIX_"

// envMappings maps environment variable suffixes to functions that apply the
// raw value to a config. Each function owns its own parsing.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]func(*config.Config, string) error{
	"SEVERITY_DEFAULT": func(cfg *config.Config, v string) error {
		cfg.SeverityDefault = v
		return nil
	},
	"FORMAT": func(cfg *config.Config, v string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	},
	"FIX":     envBool(func(cfg *config.Config, b bool) { cfg.Fix = b }),
	"DRY_RUN": envBool(func(cfg *config.Config, b bool) { cfg.DryRun = b }),
	"STRICT":  envBool(func(cfg *config.Config, b bool) { cfg.Strict = b }),
	"MAX_FIX_ATTEMPTS": func(cfg *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer: %q", v)
		}
		cfg.MaxFixAttempts = n
		return nil
	},
	"IGNORE": func(cfg *config.Config, v string) error {
		cfg.Ignore = parseSliceValue(v)
		return nil
	},
}

// envBool wraps a setter with boolean parsing shared by all bool variables.
func envBool(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean: %q (expected true/false/1/0)", v)
		}
		set(cfg, b)
		return nil
	}
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with SRCFIX_ (e.g. SRCFIX_FIX); empty values are
// treated as unset.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, apply := range envMappings {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// parseSliceValue splits a comma-separated value, trimming whitespace and
// dropping empty elements.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"SRCFIX_SEVERITY_DEFAULT": "Default severity: error, warning, or info",
		"SRCFIX_FIX":              "Enable auto-fix: true or false",
		"SRCFIX_DRY_RUN":          "Dry-run mode: true or false",
		"SRCFIX_STRICT":           "Treat warnings as errors: true or false",
		"SRCFIX_FORMAT":           "Output format: text, json, or diff",
		"SRCFIX_MAX_FIX_ATTEMPTS": "Fix loop commit budget per file",
		"SRCFIX_IGNORE":           "Comma-separated list of ignore patterns",
	}
}
