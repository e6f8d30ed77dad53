package config

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable rendering of every resolved field, used by
// --show-config for audit and debugging.
func (c *Config) Dump(w io.Writer) {
	targetName := "<unset>"
	if name, ok := c.TargetName(); ok {
		targetName = name
	}
	targetConfigPath := "<unset>"
	if path, ok := c.TargetConfigPath(); ok {
		targetConfigPath = path
	}
	maxThreads := "<unset>"
	if n, ok := c.MaxThreads(); ok {
		maxThreads = fmt.Sprintf("%d", n)
	}

	fmt.Fprintf(w, "target name: %s\n", targetName)
	fmt.Fprintf(w, "target config path: %s\n", targetConfigPath)
	fmt.Fprintf(w, "input type: %s\n", c.InputType())
	fmt.Fprintf(w, "emit action: %s\n", c.EmitAction())
	fmt.Fprintf(w, "verbosity: %s\n", c.Verbosity())
	fmt.Fprintf(w, "add target passes: %t\n", c.ShouldAddTargetPasses())
	fmt.Fprintf(w, "show targets: %t\n", c.ShouldShowTargets())
	fmt.Fprintf(w, "show payloads: %t\n", c.ShouldShowPayloads())
	fmt.Fprintf(w, "show config: %t\n", c.ShouldShowConfig())
	fmt.Fprintf(w, "payload name: %s\n", c.PayloadName())
	fmt.Fprintf(w, "emit plaintext payload: %t\n", c.ShouldEmitPlaintextPayload())
	fmt.Fprintf(w, "include source: %t\n", c.ShouldIncludeSource())
	fmt.Fprintf(w, "compile target IR: %t\n", c.ShouldCompileTargetIR())
	fmt.Fprintf(w, "bypass target compilation: %t\n", c.ShouldBypassTargetCompilation())
	fmt.Fprintf(w, "pass plugins: %s\n", pluginList(c.PassPlugins()))
	fmt.Fprintf(w, "dialect plugins: %s\n", pluginList(c.DialectPlugins()))
	fmt.Fprintf(w, "max threads: %s\n", maxThreads)
}

func pluginList(paths []string) string {
	if len(paths) == 0 {
		return "<none>"
	}
	return strings.Join(paths, ", ")
}
