// Package pass keeps the name-keyed dispatch tables for compiler passes and
// pass pipelines. The toolchain does not know what a pass does to the
// program representation; it only guarantees that targets register their
// passes once and that the driver can resolve them by name in order.
package pass

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Func transforms an opaque module payload. The representation is owned by
// the front-end and the targets; this package never inspects it.
type Func func(ctx context.Context, module []byte) ([]byte, error)

// Registry maps pass names to pass functions and pipeline names to ordered
// pass-name lists.
type Registry struct {
	mu        sync.RWMutex
	passes    map[string]Func
	pipelines map[string][]string
}

// NewRegistry returns an empty pass registry.
func NewRegistry() *Registry {
	return &Registry{
		passes:    make(map[string]Func),
		pipelines: make(map[string][]string),
	}
}

// RegisterPass adds a pass under name. Duplicate names are rejected.
func (r *Registry) RegisterPass(name string, fn Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.passes[name]; exists {
		return fmt.Errorf("pass %q is already registered", name)
	}
	r.passes[name] = fn
	return nil
}

// RegisterPipeline adds a named, ordered pipeline of previously registered
// passes.
func (r *Registry) RegisterPipeline(name string, passNames ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pipelines[name]; exists {
		return fmt.Errorf("pipeline %q is already registered", name)
	}
	for _, pn := range passNames {
		if _, ok := r.passes[pn]; !ok {
			return fmt.Errorf("pipeline %q references unregistered pass %q", name, pn)
		}
	}
	r.pipelines[name] = append([]string(nil), passNames...)
	return nil
}

// Pass returns the pass registered under name.
func (r *Registry) Pass(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.passes[name]
	return fn, ok
}

// Pipeline returns the ordered pass names of the named pipeline.
func (r *Registry) Pipeline(name string) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names, ok := r.pipelines[name]
	return names, ok
}

// PassNames returns the registered pass names in sorted order.
func (r *Registry) PassNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.passes))
	for name := range r.passes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PipelineNames returns the registered pipeline names in sorted order.
func (r *Registry) PipelineNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named pipeline over module, applying each pass in order.
func (r *Registry) Run(ctx context.Context, pipeline string, module []byte) ([]byte, error) {
	passNames, ok := r.Pipeline(pipeline)
	if !ok {
		return nil, fmt.Errorf("unknown pipeline %q", pipeline)
	}
	for _, name := range passNames {
		fn, ok := r.Pass(name)
		if !ok {
			return nil, fmt.Errorf("pipeline %q references unregistered pass %q", pipeline, name)
		}
		var err error
		module, err = fn(ctx, module)
		if err != nil {
			return nil, fmt.Errorf("pass %q: %w", name, err)
		}
	}
	return module, nil
}
