package config

import (
	"errors"
	"fmt"
	"sync"

	"qec/internal/session"
)

// ErrNoConfig is returned when neither the requested session nor the
// default session has a registered configuration.
var ErrNoConfig = errors.New("no configuration registered")

// Registry associates resolved configurations with compilation sessions.
// Register one entry under session.Nil to provide a process-wide default
// that lookups for unregistered sessions fall back to.
//
// Entries are reads-mostly shared state: Set during initialization, Get many
// times during compilation. Returned configurations must be treated as
// read-only.
type Registry struct {
	mu      sync.RWMutex
	configs map[session.ID]*Config
}

// NewRegistry returns an empty configuration registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[session.ID]*Config)}
}

// Set stores or replaces the configuration for id. Last write wins.
func (r *Registry) Set(id session.ID, cfg *Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[id] = cfg
}

// Get returns the configuration for id, falling back to the session.Nil
// entry when id has none. When neither exists, the error wraps ErrNoConfig.
func (r *Registry) Get(id session.ID) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cfg, ok := r.configs[id]; ok {
		return cfg, nil
	}
	if cfg, ok := r.configs[session.Nil]; ok {
		return cfg, nil
	}
	return nil, fmt.Errorf("%w for session %s", ErrNoConfig, id)
}
