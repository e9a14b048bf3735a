// Package builtin provides the plugins that ship with srcfix.
package builtin

// BasePlugin provides the identity part of the plugin contract.
// Embed it and add the capability methods the plugin supports.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BasePlugin struct {
	id   string // Unique identifier (e.g., "semicolons")
	name string // Human-readable name
	desc string // Detailed description
}

// NewBasePlugin creates a BasePlugin with the given properties.
func NewBasePlugin(id, name, desc string) BasePlugin {
	return BasePlugin{
		id:   id,
		name: name,
		desc: desc,
	}
}

// ID returns the unique identifier for this plugin.
func (p *BasePlugin) ID() string {
	return p.id
}

// Name returns the human-readable name of the plugin.
func (p *BasePlugin) Name() string {
	return p.name
}

// Description returns a detailed description of what the plugin checks.
func (p *BasePlugin) Description() string {
	return p.desc
}
