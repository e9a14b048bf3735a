package plugin

import "sync"

// Registry holds live plugin instances in registration order. Order matters
// twice: RuleResolvers run in it, and it is the stable enumeration order
// that keeps fix-candidate tie-breaking reproducible across runs.
type Registry struct {
	mu      sync.RWMutex
	ordered []Plugin
	byID    map[string]Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]Plugin),
	}
}

// Register adds a plugin. Re-registering an ID replaces the instance but
// keeps its original position in the order.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID()]; ok {
		for i, existing := range r.ordered {
			if existing.ID() == p.ID() {
				r.ordered[i] = p
				break
			}
		}
	} else {
		r.ordered = append(r.ordered, p)
	}
	r.byID[p.ID()] = p
}

// Get retrieves a plugin by ID.
func (r *Registry) Get(id string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	return p, ok
}

// Plugins returns all registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Plugin(nil), r.ordered...)
}

// IDs returns all registered plugin IDs in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.ordered))
	for i, p := range r.ordered {
		ids[i] = p.ID()
	}
	return ids
}

// DefaultRegistry is the global registry for built-in plugins, which
// register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for plugin registration
var DefaultRegistry = NewRegistry()
