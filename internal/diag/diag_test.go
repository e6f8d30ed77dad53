package diag

import (
	"strings"
	"testing"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "no input error",
			diag: New(SevError, CatNoInput, "missing file"),
			want: "Error: Error when no input file or string is provided\nmissing file",
		},
		{
			name: "link warning",
			diag: New(SevWarning, CatLinkSignatureWarning, "recovered"),
			want: "Warning: Signature file format is invalid but may be processed\nrecovered",
		},
		{
			name: "fatal uncategorized",
			diag: New(SevFatal, CatUncategorized, "gave up"),
			want: "Fatal: Compilation failure\ngave up",
		},
		{
			name: "info with empty message",
			diag: New(SevInfo, CatCompilationFailure, ""),
			want: "Info: Failure during compilation\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SevInfo < SevWarning && SevWarning < SevError && SevError < SevFatal) {
		t.Fatalf("severity ordering broken: %d %d %d %d", SevInfo, SevWarning, SevError, SevFatal)
	}
}

func TestCategoryDescriptionsDistinct(t *testing.T) {
	seen := map[string]Category{}
	for c := CatQASMParseFailure; c <= CatUncategorized; c++ {
		desc := c.Description()
		if desc == "" {
			t.Errorf("category %d has empty description", c)
		}
		if prev, dup := seen[desc]; dup {
			t.Errorf("categories %d and %d share description %q", prev, c, desc)
		}
		seen[desc] = c
	}
}

func TestEmitReturnsErrorAndCallsBack(t *testing.T) {
	var seen []Diagnostic
	err := Emit(func(d Diagnostic) { seen = append(seen, d) }, SevError, CatNoInput, "missing file")
	if err == nil {
		t.Fatal("Emit returned nil error")
	}
	want := "Error: Error when no input file or string is provided\nmissing file"
	if err.Error() != want {
		t.Errorf("err.Error() = %q, want %q", err.Error(), want)
	}
	if len(seen) != 1 {
		t.Fatalf("callback invoked %d times, want 1", len(seen))
	}
	if seen[0].Category != CatNoInput || seen[0].Severity != SevError {
		t.Errorf("callback saw %+v", seen[0])
	}
}

func TestEmitNilCallback(t *testing.T) {
	err := Emit(nil, SevWarning, CatLinkArgumentNotFound, "theta")
	if err == nil {
		t.Fatal("Emit returned nil error")
	}
	if !strings.Contains(err.Error(), "theta") {
		t.Errorf("error text missing message: %q", err.Error())
	}
}

func TestAsDiagnostic(t *testing.T) {
	err := Emit(nil, SevFatal, CatControlSystemResourcesExceeded, "out of instruction memory")
	d, ok := AsDiagnostic(err)
	if !ok {
		t.Fatal("AsDiagnostic failed on Emit error")
	}
	if d.Severity != SevFatal || d.Category != CatControlSystemResourcesExceeded {
		t.Errorf("recovered diagnostic %+v", d)
	}
	if _, ok := AsDiagnostic(nil); ok {
		t.Error("AsDiagnostic succeeded on nil error")
	}
}
