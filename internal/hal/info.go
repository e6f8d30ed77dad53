package hal

import (
	"errors"
	"fmt"
	"sync"

	"qec/internal/pass"
	"qec/internal/plugin"
	"qec/internal/session"
)

// ErrNoTarget is returned when neither the requested session nor the
// default session has a target instance.
var ErrNoTarget = errors.New("no target registered")

// Registrar contributes a target's passes or pass pipelines to the given
// registry. Registrars run at most once per process regardless of how many
// sessions instantiate the target.
type Registrar func(*pass.Registry) error

// SystemInfo is the registry entry for one target system: the plugin
// descriptor plus the one-shot registrars and the per-session instance
// cache. Mutable internals stay private; consumers only see the narrow
// lookup and create surface.
type SystemInfo struct {
	*plugin.Info[TargetSystem]

	passRegistrar     Registrar
	pipelineRegistrar Registrar
	passOnce          sync.Once
	passErr           error
	pipelineOnce      sync.Once
	pipelineErr       error

	mu        sync.Mutex
	instances map[session.ID]TargetSystem
}

// NewSystemInfo constructs a target registry entry.
func NewSystemInfo(name, description string, factory plugin.Factory[TargetSystem], passes, pipelines Registrar) *SystemInfo {
	return &SystemInfo{
		Info:              plugin.NewInfo(name, description, factory),
		passRegistrar:     passes,
		pipelineRegistrar: pipelines,
		instances:         make(map[session.ID]TargetSystem),
	}
}

// CreateTarget creates the target instance for the given session, invoking
// the factory with the optional configuration blob on first request and
// caching the result. Subsequent requests for the same session return the
// cached instance; at most one instance exists per (target, session) pair.
func (i *SystemInfo) CreateTarget(id session.ID, configuration string) (TargetSystem, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if target, ok := i.instances[id]; ok {
		return target, nil
	}
	target, err := i.Create(configuration)
	if err != nil {
		return nil, fmt.Errorf("create target %q: %w", i.Name(), err)
	}
	i.instances[id] = target
	return target, nil
}

// GetTarget returns the instance created for the given session, falling
// back to the session.Nil instance. When neither exists, the error wraps
// ErrNoTarget.
func (i *SystemInfo) GetTarget(id session.ID) (TargetSystem, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if target, ok := i.instances[id]; ok {
		return target, nil
	}
	if target, ok := i.instances[session.Nil]; ok {
		return target, nil
	}
	return nil, fmt.Errorf("%w: target %q has no instance for session %s", ErrNoTarget, i.Name(), id)
}

// RegisterPasses runs the target's pass registrar exactly once per process;
// later calls, from any session or goroutine, return the first outcome.
func (i *SystemInfo) RegisterPasses(r *pass.Registry) error {
	i.passOnce.Do(func() {
		if i.passRegistrar != nil {
			i.passErr = i.passRegistrar(r)
		}
	})
	return i.passErr
}

// RegisterPipelines runs the target's pipeline registrar exactly once per
// process; later calls return the first outcome.
func (i *SystemInfo) RegisterPipelines(r *pass.Registry) error {
	i.pipelineOnce.Do(func() {
		if i.pipelineRegistrar != nil {
			i.pipelineErr = i.pipelineRegistrar(r)
		}
	})
	return i.pipelineErr
}
