package config

import (
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/pflag"
)

// CLIBuilder populates a Config from command-line flags. Flags are
// registered on the supplied flag set; the set must be parsed before
// Populate runs.
//
// Parsing plugin-path flags has a side effect: each named plugin is handed
// to the platform loader immediately, in flag order, and a load failure is
// logged and ignored rather than aborting resolution.
type CLIBuilder struct {
	fs     *pflag.FlagSet
	loader PluginLoader

	// Warn receives non-fatal resolution warnings. Defaults to stderr.
	Warn io.Writer

	inputType        string
	emit             string
	targetConfigPath string
	targetName       string
	addTargetPasses  bool
	showTargets      bool
	showPayloads     bool
	showConfig       bool
	plaintextPayload bool
	includeSource    bool
	compileTargetIR  bool
	bypassTargetComp bool
	verbosity        string
	maxThreads       int
	passPlugins      []string
	dialectPlugins   []string
}

// NewCLIBuilder registers the qec tool flags on fs and returns the builder.
// A nil loader selects the platform plugin loader.
func NewCLIBuilder(fs *pflag.FlagSet, loader PluginLoader) *CLIBuilder {
	if loader == nil {
		loader = PlatformLoader{}
	}
	b := &CLIBuilder{fs: fs, loader: loader, Warn: os.Stderr}

	fs.StringVarP(&b.inputType, "input-type", "X", "",
		"specify the kind of input desired (qasm|mlir|bytecode)")
	fs.StringVar(&b.emit, "emit", "",
		"select the kind of output desired (ast|ast-pretty|mlir|bytecode|wavemem|qem|qe-qem|none)")
	fs.StringVar(&b.targetConfigPath, "config", "",
		"path to configuration file or directory (depends on the target), - means use the config service")
	fs.StringVar(&b.targetName, "target", "",
		"target architecture, required for machine code generation")
	fs.BoolVar(&b.addTargetPasses, "add-target-passes", true,
		"add target-specific passes")
	fs.BoolVar(&b.showTargets, "show-targets", false,
		"print the list of registered targets")
	fs.BoolVar(&b.showPayloads, "show-payloads", false,
		"print the list of registered payloads")
	fs.BoolVar(&b.showConfig, "show-config", false,
		"print the loaded compiler configuration")
	fs.BoolVar(&b.plaintextPayload, "plaintext-payload", false,
		"write the payload in plaintext")
	fs.BoolVar(&b.includeSource, "include-source", false,
		"write the input source into the payload")
	fs.BoolVar(&b.compileTargetIR, "compile-target-ir", false,
		"apply the target's IR compilation")
	fs.BoolVar(&b.bypassTargetComp, "bypass-payload-target-compilation", false,
		"bypass target compilation during payload generation")
	fs.StringVar(&b.verbosity, "verbosity", VerbosityWarn.String(),
		"set verbosity level for output (error|warn|info|debug)")
	fs.IntVar(&b.maxThreads, "max-threads", -1,
		"set the maximum number of compilation worker threads")
	fs.StringArrayVar(&b.passPlugins, "load-pass-plugin", nil,
		"load passes from plugin library (repeatable)")
	fs.StringArrayVar(&b.dialectPlugins, "load-dialect-plugin", nil,
		"load dialects from plugin library (repeatable)")

	return b
}

// Populate implements Builder. The flag set must have been parsed already.
func (b *CLIBuilder) Populate(c *Config) error {
	if !b.fs.Parsed() {
		return fmt.Errorf("command-line flags have not been parsed")
	}

	if b.fs.Changed("verbosity") {
		v, err := ParseVerbosity(b.verbosity)
		if err != nil {
			return err
		}
		c.SetVerbosity(v)
	}

	// Empty strings are ignored, not stored.
	if b.targetName != "" {
		c.SetTargetName(b.targetName)
	}
	if b.targetConfigPath != "" {
		c.SetTargetConfigPath(b.targetConfigPath)
	}

	c.SetAddTargetPasses(b.addTargetPasses)
	c.SetShowTargets(b.showTargets)
	c.SetShowPayloads(b.showPayloads)
	c.SetShowConfig(b.showConfig)
	c.SetEmitPlaintextPayload(b.plaintextPayload)
	c.SetIncludeSource(b.includeSource)
	c.SetCompileTargetIR(b.compileTargetIR)
	c.SetBypassTargetCompilation(b.bypassTargetComp)

	for _, path := range b.passPlugins {
		c.AddPassPlugins(path)
		if err := b.loader.LoadPassPlugin(path); err != nil {
			fmt.Fprintf(b.Warn, "Failed to load passes from '%s'. Request ignored.\n", path)
		}
	}
	for _, path := range b.dialectPlugins {
		c.AddDialectPlugins(path)
		if err := b.loader.LoadDialectPlugin(path); err != nil {
			fmt.Fprintf(b.Warn, "Failed to load dialect from '%s'. Request ignored.\n", path)
		}
	}

	// Values <= 0 are ignored.
	if b.maxThreads > 0 {
		maxThreads, err := safecast.Conv[uint32](b.maxThreads)
		if err != nil {
			return fmt.Errorf("invalid --max-threads value %d: %w", b.maxThreads, err)
		}
		c.SetMaxThreads(maxThreads)
	}

	if b.fs.Changed("input-type") {
		t, err := ParseInputType(b.inputType)
		if err != nil {
			return err
		}
		c.SetInputType(t)
	}
	if b.fs.Changed("emit") {
		a, err := ParseEmitAction(b.emit)
		if err != nil {
			return err
		}
		c.SetEmitAction(a)
	}

	return nil
}

// PopulateWithFiles overlays the parsed flags and then resolves input type
// and emit action from the given file names.
func (b *CLIBuilder) PopulateWithFiles(c *Config, inputName, outputName string) error {
	if err := b.Populate(c); err != nil {
		return err
	}
	if err := b.computeInputType(c, inputName); err != nil {
		return err
	}
	b.computeEmitAction(c, outputName)
	return nil
}

func (b *CLIBuilder) computeInputType(c *Config, inputName string) error {
	if c.InputType() != InputUndetected {
		return nil
	}
	c.SetInputType(Extension(inputName).InputType())
	if c.InputType() == InputUndetected {
		return fmt.Errorf("unable to autodetect file extension type for %q, please specify the input type with -X", inputName)
	}
	return nil
}

func (b *CLIBuilder) computeEmitAction(c *Config, outputName string) {
	if outputName == StdoutName {
		if c.EmitAction() == EmitUndetected {
			c.SetEmitAction(EmitMLIR)
		}
		return
	}

	extensionAction := Extension(outputName).EmitAction()
	switch {
	case extensionAction == EmitUndetected && c.EmitAction() == EmitUndetected:
		b.warnf(c, "cannot determine the file extension of the specified output file %s, defaulting to dumping MLIR\n", outputName)
		c.SetEmitAction(EmitMLIR)
	case c.EmitAction() == EmitUndetected:
		c.SetEmitAction(extensionAction)
	case extensionAction != EmitUndetected && extensionAction != c.EmitAction():
		// The flag wins over the extension.
		b.warnf(c, "the output type in the file extension of %s does not match the output type specified by --emit\n", outputName)
	}
}

func (b *CLIBuilder) warnf(c *Config, format string, args ...any) {
	if c.Verbosity() < VerbosityWarn {
		return
	}
	fmt.Fprintf(b.Warn, format, args...)
}
