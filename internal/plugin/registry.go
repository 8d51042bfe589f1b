package plugin

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages known plugin descriptors.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Descriptor
}

// NewRegistry creates a new empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Descriptor)}
}

// Register adds a descriptor to the registry.
// Returns an error if a plugin with the same name already exists.
func (r *Registry) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid plugin descriptor: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[d.Name]; exists {
		return fmt.Errorf("plugin %s already registered", d.Name)
	}
	r.plugins[d.Name] = d
	return nil
}

// Get retrieves a descriptor by name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.plugins[name]
	return d, ok
}

// Has checks if a plugin with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns all descriptors sorted by name.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Descriptor, 0, len(r.plugins))
	for _, d := range r.plugins {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// ListByKind returns the descriptors of one kind sorted by name.
func (r *Registry) ListByKind(kind Kind) []Descriptor {
	var result []Descriptor
	for _, d := range r.List() {
		if d.Kind == kind {
			result = append(result, d)
		}
	}
	return result
}

// Unknown returns the names not present in the registry, preserving input order.
func (r *Registry) Unknown(names []string) []string {
	var out []string
	for _, n := range names {
		if !r.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}
