package diag

import "errors"

// Callback observes diagnostics as they are emitted. Callbacks run
// synchronously on the emitting goroutine.
type Callback func(Diagnostic)

// diagError carries the Diagnostic behind the error it renders into, so
// callers holding only the error can still recover the structured value.
type diagError struct {
	diag Diagnostic
}

func (e *diagError) Error() string {
	return e.diag.String()
}

// AsDiagnostic extracts the Diagnostic from an error produced by Emit.
func AsDiagnostic(err error) (Diagnostic, bool) {
	var de *diagError
	if errors.As(err, &de) {
		return de.diag, true
	}
	return Diagnostic{}, false
}

// Emit invokes cb (when non-nil) with the diagnostic and returns an error
// carrying its rendered text. The error is always non-nil: emitting a
// diagnostic is itself a failure result, even at SevInfo, and callers decide
// how far it propagates.
func Emit(cb Callback, sev Severity, cat Category, msg string) error {
	return EmitDiagnostic(cb, New(sev, cat, msg))
}

// EmitDiagnostic is Emit for an already-constructed Diagnostic.
func EmitDiagnostic(cb Callback, d Diagnostic) error {
	if cb != nil {
		cb(d)
	}
	return &diagError{diag: d}
}
