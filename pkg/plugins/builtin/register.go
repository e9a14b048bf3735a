package builtin

import "github.com/yaklabco/srcfix/pkg/plugin"

// RegisterAll registers all built-in plugins with the given registry.
// Registration order is load-bearing: it fixes both the Lint/Fixes call
// order and the RuleResolver chain order.
func RegisterAll(registry *plugin.Registry) {
	registry.Register(NewSemicolonsPlugin())
	registry.Register(NewTrailingWhitespacePlugin())
	registry.Register(NewFinalNewlinePlugin())
	registry.Register(NewTodosPlugin())
}

// init registers all built-in plugins with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic plugin registration
func init() {
	RegisterAll(plugin.DefaultRegistry)
}
