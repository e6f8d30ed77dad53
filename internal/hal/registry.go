package hal

import (
	"errors"
	"fmt"

	"qec/internal/pass"
	"qec/internal/plugin"
	"qec/internal/session"
)

// ErrNoTargetConfigured is the failure of the null target entry: nothing
// was requested, as opposed to a requested target that is missing.
var ErrNoTargetConfigured = errors.New("no target configured")

// Registry is the plugin registry specialized to target systems.
type Registry struct {
	*plugin.Registry[*SystemInfo]
}

// NewRegistry returns an empty target-system registry.
func NewRegistry() *Registry {
	return &Registry{Registry: plugin.NewRegistry[*SystemInfo]()}
}

// RegisterTarget registers a target backend with its factory and one-shot
// pass/pipeline registrars. It reports whether registration succeeded.
func (r *Registry) RegisterTarget(name, description string, factory plugin.Factory[TargetSystem], passes, pipelines Registrar) bool {
	return r.Register(NewSystemInfo(name, description, factory, passes, pipelines))
}

// CreateTarget resolves the named target and creates (or retrieves) its
// instance for the given session. An unknown name fails with
// plugin.ErrUnknownPlugin.
func (r *Registry) CreateTarget(name string, id session.ID, configuration string) (TargetSystem, error) {
	info, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: target %q", plugin.ErrUnknownPlugin, name)
	}
	return info.CreateTarget(id, configuration)
}

// RegisterTargetPasses triggers the named target's one-shot pass and
// pipeline registration against the given pass registry.
func (r *Registry) RegisterTargetPasses(name string, passes *pass.Registry) error {
	info, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: target %q", plugin.ErrUnknownPlugin, name)
	}
	if err := info.RegisterPasses(passes); err != nil {
		return fmt.Errorf("register passes for target %q: %w", name, err)
	}
	if err := info.RegisterPipelines(passes); err != nil {
		return fmt.Errorf("register pipelines for target %q: %w", name, err)
	}
	return nil
}

// NullSystemInfo returns the distinguished entry representing "no target
// configured". Its factory always fails with ErrNoTargetConfigured so
// callers can tell "nothing requested" apart from "requested but missing".
func NullSystemInfo() *SystemInfo {
	return NewSystemInfo("", "no target configured",
		func(string) (TargetSystem, error) {
			return nil, ErrNoTargetConfigured
		},
		nil, nil)
}
