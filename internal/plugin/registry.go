package plugin

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// ErrUnknownPlugin is returned when a lookup or create names a plugin that
// was never registered.
var ErrUnknownPlugin = errors.New("unknown plugin")

// Entry is the minimal surface a registry entry exposes.
type Entry interface {
	Name() string
	Description() string
}

// Creator is implemented by entries whose factory builds instances of T.
type Creator[T any] interface {
	Entry
	Create(configuration string) (T, error)
}

// Registry is a name-keyed table of plugin entries. Names are unique;
// registering a second entry under an existing name is rejected.
type Registry[E Entry] struct {
	// Warn receives the logged reason for a rejected registration.
	// Defaults to stderr.
	Warn io.Writer

	mu      sync.RWMutex
	entries map[string]E
}

// NewRegistry returns an empty registry.
func NewRegistry[E Entry]() *Registry[E] {
	return &Registry[E]{Warn: os.Stderr, entries: make(map[string]E)}
}

// Register adds the entry under its name. It reports whether registration
// succeeded; a duplicate name is rejected and the first registration kept.
func (r *Registry[E]) Register(entry E) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := entry.Name()
	if _, exists := r.entries[name]; exists {
		fmt.Fprintf(r.Warn, "plugin %q is already registered, ignoring duplicate\n", name)
		return false
	}
	r.entries[name] = entry
	return true
}

// Lookup returns the entry registered under name.
func (r *Registry[E]) Lookup(name string) (E, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry, ok
}

// Has reports whether name is registered.
func (r *Registry[E]) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[E]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create resolves name in r and invokes the entry's factory with the
// optional configuration blob. An unknown name fails with ErrUnknownPlugin,
// distinct from a factory failure.
func Create[T any, E Creator[T]](r *Registry[E], name, configuration string) (T, error) {
	entry, ok := r.Lookup(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
	}
	instance, err := entry.Create(configuration)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create plugin %q: %w", name, err)
	}
	return instance, nil
}
