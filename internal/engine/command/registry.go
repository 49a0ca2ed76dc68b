package command

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/zerr"
)

// Factory creates a command invocation from its raw property values.
type Factory func(source domain.PropertySource, env Env) Command

type registration struct {
	schema  func() *domain.PropertyDefinitionSet
	factory Factory
}

// Registry maps command type names to their schema and factory.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]registration),
	}
}

// Register adds a command type.
// The schema is built immediately so malformed schemas surface at registration.
func (r *Registry) Register(name string, schema func() *domain.PropertyDefinitionSet, factory Factory) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrMissingCommandType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrCommandTypeExists, "failed to register command"), "type", name)
	}

	schema()
	r.entries[name] = registration{schema: schema, factory: factory}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, schema func() *domain.PropertyDefinitionSet, factory Factory) {
	if err := r.Register(name, schema, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory of a command type.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.entries[name]
	return reg.factory, ok
}

// Schema returns the property schema of a command type.
func (r *Registry) Schema(name string) (*domain.PropertyDefinitionSet, bool) {
	r.mu.RLock()
	reg, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return reg.schema(), true
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Create instantiates the command a declaration names.
// When env has no registry, r is used so nested commands resolve against the same types.
func (r *Registry) Create(decl domain.CommandDeclaration, env Env) (Command, error) {
	if decl.Type == "" {
		return nil, domain.ErrMissingCommandType
	}

	factory, ok := r.Lookup(decl.Type)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownCommandType, "failed to create command"), "type", decl.Type)
	}

	if env.Registry == nil {
		env.Registry = r
	}
	return factory(decl.Properties, env), nil
}

// DefaultRegistry returns a Registry holding every built-in command type.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(TypeSetFocus, setFocusSchema, NewSetFocus)
	r.MustRegister(TypeClearFocus, clearFocusSchema, NewClearFocus)
	r.MustRegister(TypeSetValue, setValueSchema, NewSetValue)
	r.MustRegister(TypeRemoveItem, removeItemSchema, NewRemoveItem)
	r.MustRegister(TypeIdle, idleSchema, NewIdle)
	r.MustRegister(TypeAnimateItem, animateItemSchema, NewAnimateItem)
	r.MustRegister(TypeSequential, sequentialSchema, NewSequential)
	r.MustRegister(TypeParallel, parallelSchema, NewParallel)
	return r
}
