package driver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qec/internal/config"
	"qec/internal/diag"
	"qec/internal/hal"
	"qec/internal/pass"
	"qec/internal/session"
)

type reverseTarget struct{}

func (reverseTarget) Name() string            { return "reverse" }
func (reverseTarget) PayloadPipeline() string { return "reverse-payload" }

// registerReverse installs a target whose single pass reverses the module
// bytes, so tests can observe that the pipeline actually ran.
func registerReverse(t *testing.T, r *hal.Registry) {
	t.Helper()
	ok := r.RegisterTarget("reverse", "test target",
		func(string) (hal.TargetSystem, error) { return reverseTarget{}, nil },
		func(pr *pass.Registry) error {
			return pr.RegisterPass("reverse-bytes", func(_ context.Context, m []byte) ([]byte, error) {
				out := make([]byte, len(m))
				for i, b := range m {
					out[len(m)-1-i] = b
				}
				return out, nil
			})
		},
		func(pr *pass.Registry) error {
			return pr.RegisterPipeline("reverse-payload", "reverse-bytes")
		})
	if !ok {
		t.Fatal("target registration failed")
	}
}

type recordedEvents struct {
	events []Event
}

func (r *recordedEvents) OnEvent(evt Event) { r.events = append(r.events, evt) }

func newRequest(t *testing.T, cfg *config.Config, modules ...Module) *Request {
	t.Helper()
	id := session.New()
	configs := config.NewRegistry()
	configs.Set(id, cfg)
	targets := hal.NewRegistry()
	targets.Warn = &strings.Builder{}
	registerReverse(t, targets)
	return &Request{
		Session: id,
		Configs: configs,
		Targets: targets,
		Passes:  pass.NewRegistry(),
		Modules: modules,
	}
}

func TestCompileRunsTargetPipeline(t *testing.T) {
	cfg := config.New().SetTargetName("reverse")
	req := newRequest(t, cfg,
		Module{Name: "a.qasm", Source: []byte("abc")},
		Module{Name: "b.qasm", Source: []byte("xy")},
	)

	res, err := Compile(context.Background(), req)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if res.Target.Name() != "reverse" {
		t.Errorf("resolved target %q", res.Target.Name())
	}
	if got := string(res.Modules[0].Payload); got != "cba" {
		t.Errorf("module a payload = %q, want cba", got)
	}
	if got := string(res.Modules[1].Payload); got != "yx" {
		t.Errorf("module b payload = %q, want yx", got)
	}
}

func TestCompileBypassSkipsPipeline(t *testing.T) {
	cfg := config.New().SetTargetName("reverse").SetBypassTargetCompilation(true)
	req := newRequest(t, cfg, Module{Name: "a.qasm", Source: []byte("abc")})

	res, err := Compile(context.Background(), req)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if got := string(res.Modules[0].Payload); got != "abc" {
		t.Errorf("payload = %q, want untouched abc", got)
	}
}

func TestCompileWithoutTargetPasses(t *testing.T) {
	cfg := config.New().SetTargetName("reverse").SetAddTargetPasses(false)
	req := newRequest(t, cfg, Module{Name: "a.qasm", Source: []byte("abc")})

	res, err := Compile(context.Background(), req)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	// Pipeline was never registered, so the module passes through.
	if got := string(res.Modules[0].Payload); got != "abc" {
		t.Errorf("payload = %q, want abc", got)
	}
	if len(req.Passes.PassNames()) != 0 {
		t.Errorf("passes registered despite add-target-passes=false: %v", req.Passes.PassNames())
	}
}

func TestCompileNoConfiguration(t *testing.T) {
	req := newRequest(t, config.New())
	req.Configs = config.NewRegistry() // empty: no entry, no default

	var seen []diag.Diagnostic
	req.OnDiagnostic = func(d diag.Diagnostic) { seen = append(seen, d) }

	_, err := Compile(context.Background(), req)
	if err == nil {
		t.Fatal("Compile succeeded without configuration")
	}
	if len(seen) != 1 || seen[0].Severity != diag.SevError {
		t.Errorf("diagnostics = %+v", seen)
	}
}

func TestCompileNoTargetConfigured(t *testing.T) {
	req := newRequest(t, config.New()) // config present, target name unset
	_, err := Compile(context.Background(), req)
	if err == nil {
		t.Fatal("Compile succeeded without a target name")
	}
	d, ok := diag.AsDiagnostic(err)
	if !ok {
		t.Fatalf("error is not a diagnostic: %v", err)
	}
	if !strings.Contains(d.Message, "no target configured") {
		t.Errorf("message %q does not name the null-target condition", d.Message)
	}
}

func TestCompileUnknownTarget(t *testing.T) {
	cfg := config.New().SetTargetName("ghost")
	req := newRequest(t, cfg)
	_, err := Compile(context.Background(), req)
	if err == nil {
		t.Fatal("Compile succeeded with unknown target")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error does not name the target: %v", err)
	}
}

func TestCompileEmitsProgressEvents(t *testing.T) {
	cfg := config.New().SetTargetName("reverse").SetMaxThreads(1)
	req := newRequest(t, cfg, Module{Name: "a.qasm", Source: []byte("abc")})
	rec := &recordedEvents{}
	req.Progress = rec

	if _, err := Compile(context.Background(), req); err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	var sawResolve, sawQueued, sawDone bool
	for _, evt := range rec.events {
		switch {
		case evt.Stage == StageResolve && evt.Status == StatusDone:
			sawResolve = true
		case evt.Module == "a.qasm" && evt.Status == StatusQueued:
			sawQueued = true
		case evt.Module == "a.qasm" && evt.Status == StatusDone:
			sawDone = true
		}
	}
	if !sawResolve || !sawQueued || !sawDone {
		t.Errorf("missing expected events: %+v", rec.events)
	}
}

func TestCompileModuleFailureIsDiagnosed(t *testing.T) {
	targets := hal.NewRegistry()
	targets.Warn = &strings.Builder{}
	boom := errors.New("boom")
	targets.RegisterTarget("bad", "failing target",
		func(string) (hal.TargetSystem, error) { return reverseTarget{}, nil },
		func(pr *pass.Registry) error {
			return pr.RegisterPass("reverse-bytes", func(context.Context, []byte) ([]byte, error) {
				return nil, boom
			})
		},
		func(pr *pass.Registry) error {
			return pr.RegisterPipeline("reverse-payload", "reverse-bytes")
		})

	id := session.New()
	configs := config.NewRegistry()
	configs.Set(id, config.New().SetTargetName("bad"))

	var seen []diag.Diagnostic
	req := &Request{
		Session:      id,
		Configs:      configs,
		Targets:      targets,
		Passes:       pass.NewRegistry(),
		Modules:      []Module{{Name: "a.qasm", Source: []byte("abc")}},
		OnDiagnostic: func(d diag.Diagnostic) { seen = append(seen, d) },
	}

	_, err := Compile(context.Background(), req)
	if err == nil {
		t.Fatal("Compile succeeded with failing pass")
	}
	if len(seen) == 0 || seen[0].Category != diag.CatCompilationFailure {
		t.Errorf("diagnostics = %+v", seen)
	}
}
