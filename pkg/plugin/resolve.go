package plugin

import "github.com/yaklabco/srcfix/pkg/config"

// Resolved pairs a plugin with its resolved run configuration.
type Resolved struct {
	// Plugin is the underlying plugin instance.
	Plugin Plugin

	// Enabled indicates whether the plugin should run.
	Enabled bool

	// Severity is the resolved severity for the plugin's diagnostics.
	Severity config.Severity

	// AutoFix indicates whether fixes from this plugin are collected.
	AutoFix bool

	// Config is the plugin's entry in the resolved rule set (may be nil).
	Config *config.RuleConfig
}

// ResolveRuleSet runs every registered RuleResolver over the configured rule
// set, in registration order, each plugin seeing the previous plugin's
// output. It is applied exactly once per run, before any Lint or Fixes call.
func ResolveRuleSet(registry *Registry, rules config.RuleSet) config.RuleSet {
	resolved := rules.Clone()
	for _, p := range registry.Plugins() {
		if rr, ok := p.(RuleResolver); ok {
			resolved = rr.ResolveRules(resolved)
		}
	}
	return resolved
}

// ResolvePlugins determines which plugins run and with what settings, based
// on the registry, the run config, and the (already resolver-rewritten)
// rule set. The result keeps registration order.
func ResolvePlugins(registry *Registry, cfg *config.Config, rules config.RuleSet) []Resolved {
	var out []Resolved
	for _, p := range registry.Plugins() {
		r := resolveOne(p, cfg, rules)
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

func resolveOne(p Plugin, cfg *config.Config, rules config.RuleSet) Resolved {
	_, fixable := p.(Fixer)

	r := Resolved{
		Plugin:   p,
		Enabled:  true,
		Severity: config.SeverityWarning,
		AutoFix:  fixable,
	}

	if ds, ok := p.(DefaultSeverity); ok {
		r.Severity = ds.DefaultSeverity()
	}

	if cfg == nil {
		return r
	}

	if cfg.SeverityDefault != "" {
		if sev := config.Severity(cfg.SeverityDefault); sev.IsValid() {
			if _, ok := p.(DefaultSeverity); !ok {
				r.Severity = sev
			}
		}
	}

	for _, id := range cfg.EnablePlugins {
		if id == p.ID() {
			r.Enabled = true
			break
		}
	}
	for _, id := range cfg.DisablePlugins {
		if id == p.ID() {
			r.Enabled = false
			break
		}
	}

	if rc, ok := rules[p.ID()]; ok {
		r.Config = &rc

		if rc.Enabled != nil {
			r.Enabled = *rc.Enabled
		}
		if rc.Severity != nil {
			if sev := config.Severity(*rc.Severity); sev.IsValid() {
				r.Severity = sev
			}
		}
		if rc.AutoFix != nil {
			r.AutoFix = *rc.AutoFix && fixable
		}
	}

	// --fix-plugins narrows auto-fix to the named plugins.
	if len(cfg.FixPlugins) > 0 {
		r.AutoFix = false
		for _, id := range cfg.FixPlugins {
			if id == p.ID() && fixable {
				r.AutoFix = true
				break
			}
		}
	}

	if !cfg.Fix && !cfg.DryRun {
		r.AutoFix = false
	}

	return r
}
