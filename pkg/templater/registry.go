package templater

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hiracky16/sqlfluff/pkg/config"
)

// Factory constructs a fresh templater instance.
type Factory func() Templater

// Registry maps templater names to factories. It is an explicit object
// with no package-level state: callers build one at process start and
// pass it to whatever selects the engine.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty templater registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given name, replacing any existing
// registration.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// New instantiates the templater registered under name. An empty name
// selects the default templater. Unknown names are an error listing the
// available templaters.
func (r *Registry) New(name string) (Templater, error) {
	if name == "" {
		name = config.DefaultTemplater
	}

	factory, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("requested templater %q which is not currently available, try one of: %s",
			name, strings.Join(r.Names(), ", "))
	}

	return factory(), nil
}

// Names returns all registered templater names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

// Builtin returns a registry populated with the built-in templaters.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(NameRaw, func() Templater { return NewRawTemplater() })
	r.Register(NameDataform, func() Templater { return NewDataformTemplater() })
	return r
}
