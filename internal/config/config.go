package config

// StdinName is the file-name sentinel for reading from standard input.
const StdinName = "-"

// StdoutName is the file-name sentinel for writing to standard output.
const StdoutName = "-"

// DefaultPayloadName is the payload-name sentinel meaning "use the default".
const DefaultPayloadName = "-"

// Config is the resolved toolchain configuration. It is mutable while
// builders populate it and read-only once registered for a session.
type Config struct {
	targetName         string
	targetNameSet      bool
	targetConfigPath   string
	targetConfigSet    bool
	inputType          InputType
	emitAction         EmitAction
	verbosity          Verbosity
	addTargetPasses    bool
	showTargets        bool
	showPayloads       bool
	showConfig         bool
	payloadName        string
	plaintextPayload   bool
	includeSource      bool
	compileTargetIR    bool
	bypassTargetComp   bool
	passPluginPaths    []string
	dialectPluginPaths []string
	maxThreads         uint32
	maxThreadsSet      bool
}

// New returns a Config populated with the compiled-in defaults. This is the
// implicit first builder of the resolution pipeline.
func New() *Config {
	return &Config{
		verbosity:       VerbosityWarn,
		addTargetPasses: true,
		payloadName:     DefaultPayloadName,
	}
}

// SetTargetName records the target-system name to compile for.
func (c *Config) SetTargetName(name string) *Config {
	c.targetName = name
	c.targetNameSet = true
	return c
}

// TargetName returns the target-system name, if one was configured.
func (c *Config) TargetName() (string, bool) {
	return c.targetName, c.targetNameSet
}

// SetTargetConfigPath records the path (or URI) of the target configuration.
func (c *Config) SetTargetConfigPath(path string) *Config {
	c.targetConfigPath = path
	c.targetConfigSet = true
	return c
}

// TargetConfigPath returns the target configuration path, if one was set.
func (c *Config) TargetConfigPath() (string, bool) {
	return c.targetConfigPath, c.targetConfigSet
}

// SetInputType fixes the input kind. Once resolved it must not change for
// the lifetime of the value.
func (c *Config) SetInputType(t InputType) *Config {
	c.inputType = t
	return c
}

func (c *Config) InputType() InputType { return c.inputType }

// SetEmitAction fixes the output action. Once resolved it must not change
// for the lifetime of the value.
func (c *Config) SetEmitAction(a EmitAction) *Config {
	c.emitAction = a
	return c
}

func (c *Config) EmitAction() EmitAction { return c.emitAction }

func (c *Config) SetVerbosity(v Verbosity) *Config {
	c.verbosity = v
	return c
}

func (c *Config) Verbosity() Verbosity { return c.verbosity }

func (c *Config) SetAddTargetPasses(flag bool) *Config {
	c.addTargetPasses = flag
	return c
}

// ShouldAddTargetPasses reports whether target-specific passes are added to
// the pipeline.
func (c *Config) ShouldAddTargetPasses() bool { return c.addTargetPasses }

func (c *Config) SetShowTargets(flag bool) *Config {
	c.showTargets = flag
	return c
}

func (c *Config) ShouldShowTargets() bool { return c.showTargets }

func (c *Config) SetShowPayloads(flag bool) *Config {
	c.showPayloads = flag
	return c
}

func (c *Config) ShouldShowPayloads() bool { return c.showPayloads }

func (c *Config) SetShowConfig(flag bool) *Config {
	c.showConfig = flag
	return c
}

func (c *Config) ShouldShowConfig() bool { return c.showConfig }

func (c *Config) SetPayloadName(name string) *Config {
	c.payloadName = name
	return c
}

func (c *Config) PayloadName() string { return c.payloadName }

func (c *Config) SetEmitPlaintextPayload(flag bool) *Config {
	c.plaintextPayload = flag
	return c
}

func (c *Config) ShouldEmitPlaintextPayload() bool { return c.plaintextPayload }

func (c *Config) SetIncludeSource(flag bool) *Config {
	c.includeSource = flag
	return c
}

func (c *Config) ShouldIncludeSource() bool { return c.includeSource }

func (c *Config) SetCompileTargetIR(flag bool) *Config {
	c.compileTargetIR = flag
	return c
}

func (c *Config) ShouldCompileTargetIR() bool { return c.compileTargetIR }

func (c *Config) SetBypassTargetCompilation(flag bool) *Config {
	c.bypassTargetComp = flag
	return c
}

func (c *Config) ShouldBypassTargetCompilation() bool { return c.bypassTargetComp }

// AddPassPlugins appends pass-plugin paths. Order is load order; duplicates
// are kept.
func (c *Config) AddPassPlugins(paths ...string) *Config {
	c.passPluginPaths = append(c.passPluginPaths, paths...)
	return c
}

// PassPlugins returns the pass-plugin paths in load order. The slice is
// owned by the Config; callers must not modify it.
func (c *Config) PassPlugins() []string { return c.passPluginPaths }

// AddDialectPlugins appends dialect-plugin paths. Order is load order;
// duplicates are kept.
func (c *Config) AddDialectPlugins(paths ...string) *Config {
	c.dialectPluginPaths = append(c.dialectPluginPaths, paths...)
	return c
}

// DialectPlugins returns the dialect-plugin paths in load order. The slice
// is owned by the Config; callers must not modify it.
func (c *Config) DialectPlugins() []string { return c.dialectPluginPaths }

// SetMaxThreads bounds the number of worker threads used during compilation.
func (c *Config) SetMaxThreads(n uint32) *Config {
	c.maxThreads = n
	c.maxThreadsSet = true
	return c
}

// MaxThreads returns the worker-thread bound, if one was configured.
func (c *Config) MaxThreads() (uint32, bool) {
	return c.maxThreads, c.maxThreadsSet
}
