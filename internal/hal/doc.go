// Package hal defines the hardware-abstraction layer of the qec toolchain:
// the TargetSystem backend interface and the registry that associates
// registered targets with compilation sessions.
//
// Targets self-register during process initialization. When compilation
// needs a backend it resolves the registry by target name, creates or
// retrieves the instance cached for the current session, and triggers the
// target's one-time pass and pipeline registration. The one-shot guarantee
// is enforced here, not left to caller discipline.
package hal
