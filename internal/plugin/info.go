package plugin

// Factory builds a plugin instance from an optional configuration blob.
// The blob's interpretation (path, URI, inline document) is the plugin's
// own concern; an empty string means no configuration was supplied.
type Factory[T any] func(configuration string) (T, error)

// Info is the descriptor registered for one plugin: a unique name, a
// human-readable description, and the instance factory.
type Info[T any] struct {
	name        string
	description string
	factory     Factory[T]
}

// NewInfo constructs a plugin descriptor.
func NewInfo[T any](name, description string, factory Factory[T]) *Info[T] {
	return &Info[T]{name: name, description: description, factory: factory}
}

func (i *Info[T]) Name() string { return i.name }

func (i *Info[T]) Description() string { return i.description }

// Create invokes the plugin factory.
func (i *Info[T]) Create(configuration string) (T, error) {
	return i.factory(configuration)
}
