package plugin

import (
	"context"

	"github.com/yaklabco/srcfix/pkg/config"
	"github.com/yaklabco/srcfix/pkg/parser"
)

// Context provides everything a plugin needs for one invocation against one
// parsed file.
//
// Design note: Context stores context.Context as a field (Ctx). It is a
// short-lived parameter object created per plugin invocation, not a
// long-lived struct, which keeps the capability interfaces down to a single
// method each while still supporting cancellation via Cancelled().
type Context struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// File is the parsed file under analysis.
	File *parser.File

	// Config is the run configuration.
	Config *config.Config

	// RuleConfig is this plugin's entry in the resolved rule set.
	// May be nil when the configuration has no entry for the plugin.
	RuleConfig *config.RuleConfig
}

// NewContext creates a plugin invocation context.
func NewContext(ctx context.Context, file *parser.File, cfg *config.Config, ruleCfg *config.RuleConfig) *Context {
	return &Context{
		Ctx:        ctx,
		File:       file,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (pc *Context) Cancelled() bool {
	select {
	case <-pc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a plugin-specific option value, or the default if unset.
func (pc *Context) Option(key string, defaultValue any) any {
	if pc.RuleConfig == nil || pc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := pc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns an integer option, or the default.
func (pc *Context) OptionInt(key string, defaultValue int) int {
	switch v := pc.Option(key, defaultValue).(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// OptionString returns a string option, or the default.
func (pc *Context) OptionString(key string, defaultValue string) string {
	if s, ok := pc.Option(key, defaultValue).(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a boolean option, or the default.
func (pc *Context) OptionBool(key string, defaultValue bool) bool {
	if b, ok := pc.Option(key, defaultValue).(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a string slice option, or the default.
func (pc *Context) OptionStringSlice(key string, defaultValue []string) []string {
	v := pc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// YAML decodes sequences as []interface{}.
	if iface, ok := v.([]any); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
