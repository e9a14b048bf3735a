package configloader

import "github.com/yaklabco/srcfix/pkg/config"

// merge layers override on top of base. Non-zero scalars in override win,
// non-nil slices replace wholesale, rule sets deep-merge per plugin, and a
// true boolean always wins (false is the zero value, so a lower layer's true
// cannot be unset from above).
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	out := *base

	if override.SeverityDefault != "" {
		out.SeverityDefault = override.SeverityDefault
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.MaxFixAttempts != 0 {
		out.MaxFixAttempts = override.MaxFixAttempts
	}

	out.Fix = base.Fix || override.Fix
	out.DryRun = base.DryRun || override.DryRun
	out.Strict = base.Strict || override.Strict

	out.Plugins = mergeRuleSets(base.Plugins, override.Plugins)

	if override.Ignore != nil {
		out.Ignore = override.Ignore
	}
	if override.EnablePlugins != nil {
		out.EnablePlugins = override.EnablePlugins
	}
	if override.DisablePlugins != nil {
		out.DisablePlugins = override.DisablePlugins
	}
	if override.FixPlugins != nil {
		out.FixPlugins = override.FixPlugins
	}

	return &out
}

// mergeRuleSets deep-merges per-plugin rule configurations.
func mergeRuleSets(base, override config.RuleSet) config.RuleSet {
	switch {
	case base == nil && override == nil:
		return nil
	case base == nil:
		return override.Clone()
	case override == nil:
		return base.Clone()
	}

	out := base.Clone()
	for id, rc := range override {
		if existing, ok := out[id]; ok {
			out[id] = mergeRuleConfig(existing, rc)
		} else {
			out[id] = rc
		}
	}
	return out
}

// mergeRuleConfig overlays one rule config on another; nil pointers in
// override leave the base value in place, and options merge by key.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	out := base

	if override.Enabled != nil {
		out.Enabled = override.Enabled
	}
	if override.Severity != nil {
		out.Severity = override.Severity
	}
	if override.AutoFix != nil {
		out.AutoFix = override.AutoFix
	}

	if len(override.Options) > 0 {
		merged := make(map[string]any, len(base.Options)+len(override.Options))
		for k, v := range base.Options {
			merged[k] = v
		}
		for k, v := range override.Options {
			merged[k] = v
		}
		out.Options = merged
	}

	return out
}

// MergeAll folds configs left to right, later entries taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	out := configs[0]
	for _, cfg := range configs[1:] {
		out = merge(out, cfg)
	}
	return out
}
