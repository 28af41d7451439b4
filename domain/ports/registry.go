package ports

// ComponentRegistry maps class names the host asks for to component factories.
type ComponentRegistry interface {
	// Register adds a factory under name.
	Register(name string, factory Factory) error

	// Lookup returns the factory registered under name.
	Lookup(name string) (Factory, bool)

	// List returns all registered class names in registration order.
	List() []string
}
