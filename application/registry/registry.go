// Package registry maps the class names a library exports to component
// factories. The host reads the names through GetClassNames and asks for an
// instance of one of them through GetClassObject.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// ClassNameSeparator joins class names in the GetClassNames export.
const ClassNameSeparator = "|"

var validate = validator.New(validator.WithRequiredStructEnabled())

// registryConfig holds configuration for the Registry.
type registryConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		strictMode: true,
	}
}

// RegistryOption configures a Registry instance.
type RegistryOption func(*registryConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates). With strict mode off a duplicate
// replaces the earlier factory and keeps its position.
func WithStrictMode(enabled bool) RegistryOption {
	return func(c *registryConfig) {
		c.strictMode = enabled
	}
}

// Manifester is implemented by components that can describe their name tables.
type Manifester interface {
	Manifest() *entities.Manifest
}

// Registry implements ports.ComponentRegistry.
type Registry struct {
	config    registryConfig
	mu        sync.RWMutex
	factories map[string]ports.Factory
	names     []string
}

// NewRegistry creates a new Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{config: cfg, factories: map[string]ports.Factory{}}
}

var _ ports.ComponentRegistry = (*Registry)(nil)

// classNameTag rejects ClassNameSeparator. The validator reads a bare "|" as
// its OR operator, so the character is given in hex.
const classNameTag = "required,excludesall=0x7C"

// Register adds factory under name. The name must be non-empty and must not
// contain the class name separator.
func (r *Registry) Register(name string, factory ports.Factory) error {
	if err := validate.Var(name, classNameTag); err != nil {
		return fmt.Errorf("invalid class name %q: %w", name, err)
	}
	if factory == nil {
		return fmt.Errorf("class %q: factory is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		if r.config.strictMode {
			return fmt.Errorf("class %q already registered", name)
		}
	} else {
		r.names = append(r.names, name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// package-level registration in a library's init.
func (r *Registry) MustRegister(name string, factory ports.Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Lookup retrieves the factory registered under name. Names match exactly.
func (r *Registry) Lookup(name string) (ports.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// List returns all registered class names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// ClassNames returns the value of the GetClassNames export.
func (r *Registry) ClassNames() string {
	return strings.Join(r.List(), ClassNameSeparator)
}

// Manifests builds one instance of every registered class and collects the
// manifests of those that describe themselves.
func (r *Registry) Manifests() []*entities.Manifest {
	var out []*entities.Manifest
	for _, name := range r.List() {
		f, _ := r.Lookup(name)
		m, ok := f().(Manifester)
		if !ok {
			continue
		}
		man := m.Manifest()
		man.Name = name
		out = append(out, man)
	}
	return out
}
