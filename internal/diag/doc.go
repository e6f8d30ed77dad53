// Package diag defines the diagnostic model for the qec toolchain.
//
// A Diagnostic is an immutable value classified along two axes: Severity
// (urgency) and Category (cause). Diagnostics render as
//
//	{Severity}: {CategoryDescription}
//	{Message}
//
// and travel across the public surface as ordinary error values. Emit builds
// that error and, when the caller supplied a callback, delivers the
// Diagnostic to it synchronously first. This lets embedders collect
// diagnostics for UI or logging without this package depending on any
// logging framework.
package diag
