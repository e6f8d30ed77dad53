package hal

// TargetSystem is a pluggable backend representing one hardware or
// execution environment the compiler can produce output for. Compilation
// semantics live entirely inside the backend; the toolchain only resolves
// instances and runs the pipelines they registered.
type TargetSystem interface {
	// Name returns the registered target name.
	Name() string

	// PayloadPipeline names the pass pipeline that produces this target's
	// payload. Empty means the target contributes no pipeline.
	PayloadPipeline() string
}
