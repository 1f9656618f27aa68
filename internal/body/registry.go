package body

import (
	"sort"
	"strings"
	"sync"

	"github.com/solarpath/solcal/internal/kepler"
)

// Registry maps lowercase body names to their constant tables. Built-in
// bodies are always present; catalog bodies overlay them and can be swapped
// wholesale on reload.
type Registry struct {
	mu      sync.RWMutex
	builtin map[string]kepler.Body
	catalog map[string]kepler.Body
}

// NewRegistry returns a registry seeded with the built-in bodies.
func NewRegistry() *Registry {
	r := &Registry{
		builtin: make(map[string]kepler.Body),
		catalog: make(map[string]kepler.Body),
	}
	for _, b := range []kepler.Body{Mars, Earth} {
		r.builtin[b.Name()] = b
	}
	return r
}

// Lookup returns the body registered under name, catalog entries first.
func (r *Registry) Lookup(name string) (kepler.Body, bool) {
	key := strings.ToLower(strings.TrimSpace(name))

	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.catalog[key]; ok {
		return b, true
	}
	b, ok := r.builtin[key]
	return b, ok
}

// Names returns all registered body names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(r.builtin)+len(r.catalog))
	for name := range r.builtin {
		seen[name] = true
	}
	for name := range r.catalog {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bodies returns all registered bodies in name order.
func (r *Registry) Bodies() []kepler.Body {
	names := r.Names()
	bodies := make([]kepler.Body, 0, len(names))
	for _, name := range names {
		if b, ok := r.Lookup(name); ok {
			bodies = append(bodies, b)
		}
	}
	return bodies
}

// SetCatalog replaces the catalog overlay with the given bodies.
func (r *Registry) SetCatalog(bodies []kepler.Body) {
	next := make(map[string]kepler.Body, len(bodies))
	for _, b := range bodies {
		next[strings.ToLower(b.Name())] = b
	}

	r.mu.Lock()
	r.catalog = next
	r.mu.Unlock()
}
