// Package mock provides the mock target system used for toolchain
// development and tests. It behaves like a real backend — TOML target
// configuration, registered passes and a payload pipeline — without any
// hardware behind it.
package mock

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"qec/internal/hal"
	"qec/internal/pass"
)

// TargetName is the name the mock system registers under.
const TargetName = "mock"

const (
	passConversion = "mock-conversion"
	passLowering   = "mock-lowering"
	// PayloadPipeline is the pipeline the mock target contributes.
	PayloadPipeline = "mock-payload"
)

// Config is the mock target's TOML configuration.
type Config struct {
	NumQubits     int  `toml:"num_qubits"`
	Multithreaded bool `toml:"multithreaded"`
}

// System is the mock target backend.
type System struct {
	cfg Config
}

func (s *System) Name() string { return TargetName }

func (s *System) PayloadPipeline() string { return PayloadPipeline }

// Config returns the decoded target configuration.
func (s *System) Config() Config { return s.cfg }

// Register adds the mock target to the registry. It reports whether
// registration succeeded.
func Register(r *hal.Registry) bool {
	return r.RegisterTarget(TargetName, "Mock target for development and testing",
		newSystem, registerPasses, registerPipelines)
}

func newSystem(configuration string) (hal.TargetSystem, error) {
	sys := &System{cfg: Config{NumQubits: 1}}
	if configuration == "" {
		return sys, nil
	}
	meta, err := toml.DecodeFile(configuration, &sys.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", configuration, err)
	}
	if !meta.IsDefined("num_qubits") {
		return nil, fmt.Errorf("%s: missing num_qubits", configuration)
	}
	if sys.cfg.NumQubits <= 0 {
		return nil, fmt.Errorf("%s: num_qubits must be positive, got %d", configuration, sys.cfg.NumQubits)
	}
	return sys, nil
}

func registerPasses(r *pass.Registry) error {
	if err := r.RegisterPass(passConversion, identity); err != nil {
		return err
	}
	return r.RegisterPass(passLowering, identity)
}

func registerPipelines(r *pass.Registry) error {
	return r.RegisterPipeline(PayloadPipeline, passConversion, passLowering)
}

// The mock passes leave the module untouched.
func identity(_ context.Context, module []byte) ([]byte, error) {
	return module, nil
}
