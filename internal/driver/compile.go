// Package driver orchestrates compilation runs: it resolves the session
// configuration and target backend, triggers one-time pass registration,
// and executes the target's payload pipeline over each input module. It
// owns no compilation semantics; modules are opaque byte payloads.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"qec/internal/config"
	"qec/internal/diag"
	"qec/internal/hal"
	"qec/internal/pass"
	"qec/internal/session"
)

// Module is one named input unit. The source representation is owned by
// the front-end.
type Module struct {
	Name   string
	Source []byte
}

// CompiledModule is the outcome for one input module.
type CompiledModule struct {
	Name    string
	Payload []byte
	Elapsed time.Duration
}

// Request describes one compilation run. The registries are injected so
// embedders and tests can run against isolated state.
type Request struct {
	Session session.ID
	Configs *config.Registry
	Targets *hal.Registry
	Passes  *pass.Registry
	Modules []Module

	// Progress receives per-module events. Nil means no reporting.
	Progress ProgressSink
	// OnDiagnostic observes diagnostics for failures. Nil means errors only.
	OnDiagnostic diag.Callback
}

// Result holds the resolved target and the compiled modules, in input order.
type Result struct {
	Target  hal.TargetSystem
	Modules []CompiledModule
}

// Compile executes the run described by req.
func Compile(ctx context.Context, req *Request) (Result, error) {
	sink := req.Progress
	if sink == nil {
		sink = NopSink{}
	}

	sink.OnEvent(Event{Stage: StageResolve, Status: StatusWorking})
	cfg, target, err := resolve(req)
	if err != nil {
		sink.OnEvent(Event{Stage: StageResolve, Status: StatusError, Err: err})
		return Result{}, err
	}
	sink.OnEvent(Event{Stage: StageResolve, Status: StatusDone})

	if cfg.ShouldAddTargetPasses() {
		sink.OnEvent(Event{Stage: StagePasses, Status: StatusWorking})
		if err := req.Targets.RegisterTargetPasses(target.Name(), req.Passes); err != nil {
			err = diag.Emit(req.OnDiagnostic, diag.SevError, diag.CatCompilationFailure, err.Error())
			sink.OnEvent(Event{Stage: StagePasses, Status: StatusError, Err: err})
			return Result{}, err
		}
		sink.OnEvent(Event{Stage: StagePasses, Status: StatusDone})
	}

	result := Result{
		Target:  target,
		Modules: make([]CompiledModule, len(req.Modules)),
	}
	for _, m := range req.Modules {
		sink.OnEvent(Event{Module: m.Name, Stage: StageCompile, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(cfg, len(req.Modules)))
	for i, m := range req.Modules {
		i, m := i, m
		g.Go(func() error {
			sink.OnEvent(Event{Module: m.Name, Stage: StageCompile, Status: StatusWorking})
			start := time.Now()
			payload, err := compileModule(gctx, req, cfg, target, m)
			elapsed := time.Since(start)
			if err != nil {
				err = diag.Emit(req.OnDiagnostic, diag.SevError, diag.CatCompilationFailure,
					fmt.Sprintf("%s: %v", m.Name, err))
				sink.OnEvent(Event{Module: m.Name, Stage: StageCompile, Status: StatusError, Err: err, Elapsed: elapsed})
				return err
			}
			result.Modules[i] = CompiledModule{Name: m.Name, Payload: payload, Elapsed: elapsed}
			sink.OnEvent(Event{Module: m.Name, Stage: StageCompile, Status: StatusDone, Elapsed: elapsed})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return result, nil
}

func resolve(req *Request) (*config.Config, hal.TargetSystem, error) {
	cfg, err := req.Configs.Get(req.Session)
	if err != nil {
		return nil, nil, diag.Emit(req.OnDiagnostic, diag.SevError, diag.CatCompilerError, err.Error())
	}

	name, ok := cfg.TargetName()
	if !ok {
		// Nothing requested; fail through the null entry so callers can
		// tell this apart from a missing registration.
		_, err := hal.NullSystemInfo().CreateTarget(req.Session, "")
		return nil, nil, diag.Emit(req.OnDiagnostic, diag.SevError, diag.CatCompilerError, err.Error())
	}

	configuration, _ := cfg.TargetConfigPath()
	target, err := req.Targets.CreateTarget(name, req.Session, configuration)
	if err != nil {
		return nil, nil, diag.Emit(req.OnDiagnostic, diag.SevError, diag.CatCompilerError, err.Error())
	}
	return cfg, target, nil
}

func compileModule(ctx context.Context, req *Request, cfg *config.Config, target hal.TargetSystem, m Module) ([]byte, error) {
	if cfg.ShouldBypassTargetCompilation() {
		return append([]byte(nil), m.Source...), nil
	}
	pipeline := target.PayloadPipeline()
	if !cfg.ShouldAddTargetPasses() || pipeline == "" {
		return append([]byte(nil), m.Source...), nil
	}
	return req.Passes.Run(ctx, pipeline, m.Source)
}

func workerLimit(cfg *config.Config, modules int) int {
	workers := runtime.NumCPU()
	if maxThreads, ok := cfg.MaxThreads(); ok {
		if n, err := safecast.Conv[int](maxThreads); err == nil && n < workers {
			workers = n
		}
	}
	return max(1, min(workers, modules))
}
