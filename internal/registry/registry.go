package registry

import (
	"sync"

	"github.com/specialistvlad/modgraph/internal/manifest"
)

// Registry stores manifests keyed by module name and preserves registration
// order. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*manifest.Manifest
	indexes map[string]int
	order   []*manifest.Manifest
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName:  make(map[string]*manifest.Manifest),
		indexes: make(map[string]int),
	}
}

// Register validates m and adds it to the registry. It fails with a
// *DuplicateModuleError if the name is taken and with a
// *manifest.ValidationError if m is malformed. On failure the registry is
// left unchanged.
func (r *Registry) Register(m *manifest.Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[m.Name]; ok {
		return &DuplicateModuleError{Name: m.Name, Existing: existing.Source, Duplicate: m.Source}
	}
	r.byName[m.Name] = m
	r.indexes[m.Name] = len(r.order)
	r.order = append(r.order, m)
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(m *manifest.Manifest) {
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// Lookup returns the manifest registered under name or an *UnknownModuleError.
func (r *Registry) Lookup(name string) (*manifest.Manifest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byName[name]
	if !ok {
		return nil, &UnknownModuleError{Name: name}
	}
	return m, nil
}

// Index returns the registration index of name.
func (r *Registry) Index(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.indexes[name]
	return idx, ok
}

// Modules returns a snapshot of all manifests in registration order.
func (r *Registry) Modules() []*manifest.Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*manifest.Manifest, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns all module names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	for i, m := range r.order {
		names[i] = m.Name
	}
	return names
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
