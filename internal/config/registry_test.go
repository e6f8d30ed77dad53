package config

import (
	"errors"
	"testing"

	"qec/internal/session"
)

func TestRegistryExactLookup(t *testing.T) {
	r := NewRegistry()
	id := session.New()
	cfg := New().SetTargetName("exact")
	r.Set(id, cfg)

	got, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != cfg {
		t.Error("Get returned a different config")
	}
}

func TestRegistryNilFallback(t *testing.T) {
	r := NewRegistry()
	def := New().SetTargetName("default")
	r.Set(session.Nil, def)

	got, err := r.Get(session.New())
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != def {
		t.Error("Get did not fall back to the default entry")
	}
}

func TestRegistryMissing(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get(session.New())
	if !errors.Is(err, ErrNoConfig) {
		t.Fatalf("Get() error = %v, want ErrNoConfig", err)
	}
}

func TestRegistryLastWriteWins(t *testing.T) {
	r := NewRegistry()
	id := session.New()
	first := New().SetTargetName("first")
	second := New().SetTargetName("second")
	r.Set(id, first)
	r.Set(id, second)

	got, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != second {
		t.Error("replacement did not win")
	}
}

func TestRegistryGetIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Set(session.Nil, New())
	id := session.New()
	a, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	b, err := r.Get(id)
	if err != nil {
		t.Fatalf("second Get() error: %v", err)
	}
	if a != b {
		t.Error("repeated Get returned different values")
	}
}
