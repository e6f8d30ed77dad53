package pass

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func appendPass(tag string) Func {
	return func(_ context.Context, module []byte) ([]byte, error) {
		return append(module, []byte(tag)...), nil
	}
}

func TestRegisterPassDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterPass("a", appendPass("a")); err != nil {
		t.Fatalf("RegisterPass error: %v", err)
	}
	if err := r.RegisterPass("a", appendPass("a2")); err == nil {
		t.Fatal("duplicate pass registration succeeded")
	}
}

func TestRegisterPipelineUnknownPass(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterPipeline("p", "missing"); err == nil {
		t.Fatal("pipeline with unregistered pass accepted")
	}
}

func TestRunAppliesPassesInOrder(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterPass("one", appendPass("1")); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterPass("two", appendPass("2")); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterPipeline("seq", "one", "two", "one"); err != nil {
		t.Fatal(err)
	}

	out, err := r.Run(context.Background(), "seq", []byte("m:"))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !bytes.Equal(out, []byte("m:121")) {
		t.Errorf("Run produced %q, want %q", out, "m:121")
	}
}

func TestRunPassFailure(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	if err := r.RegisterPass("bad", func(context.Context, []byte) ([]byte, error) {
		return nil, boom
	}); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterPipeline("p", "bad"); err != nil {
		t.Fatal(err)
	}
	_, err := r.Run(context.Background(), "p", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want wrapped boom", err)
	}
}

func TestRunUnknownPipeline(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Run(context.Background(), "ghost", nil); err == nil {
		t.Fatal("Run succeeded for unknown pipeline")
	}
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"b", "a", "c"} {
		if err := r.RegisterPass(n, appendPass(n)); err != nil {
			t.Fatal(err)
		}
	}
	got := r.PassNames()
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("PassNames() not sorted: %v", got)
		}
	}
}
