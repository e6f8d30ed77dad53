package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version = %q, want a dotted semantic version", Version)
	}
}

func TestVersionCanBeOverridden(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2026-01-15T10:30:00Z")
	}
}

func TestResourcesDirEnvOverride(t *testing.T) {
	t.Setenv(EnvResources, "/opt/qec/resources")

	dir, err := ResourcesDir()
	if err != nil {
		t.Fatalf("ResourcesDir: %v", err)
	}
	if dir != "/opt/qec/resources" {
		t.Errorf("ResourcesDir = %q, want %q", dir, "/opt/qec/resources")
	}
}

func TestResourcesDirFallback(t *testing.T) {
	t.Setenv(EnvResources, "")

	dir, err := ResourcesDir()
	if err != nil {
		t.Fatalf("ResourcesDir: %v", err)
	}
	if dir == "" {
		t.Error("ResourcesDir returned empty fallback path")
	}
}
