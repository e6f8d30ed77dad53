// Package main implements the qec CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"qec/internal/config"
	"qec/internal/diag"
	"qec/internal/driver"
	"qec/internal/hal"
	"qec/internal/hal/systems/mock"
	"qec/internal/pass"
	"qec/internal/session"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [input]",
	Short: "Compile a quantum program for a target system",
	Long:  "Compile a quantum program into a target-system payload. Use - to read from stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  compileExecution,
}

// compileBuilder owns the compile command's config flags. It is created in
// init so the flags are registered before cobra parses them.
var compileBuilder *config.CLIBuilder

func init() {
	compileBuilder = config.NewCLIBuilder(compileCmd.Flags(), nil)
	compileCmd.Flags().StringP("output", "o", config.StdoutName, "output file (- for stdout)")
	compileCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
}

func compileExecution(cmd *cobra.Command, args []string) error {
	inputName := config.StdinName
	if len(args) == 1 {
		inputName = args[0]
	}
	outputName, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	cfg, err := config.BuildToolConfig(compileBuilder, inputName, outputName)
	if err != nil {
		return err
	}

	targets := hal.NewRegistry()
	mock.Register(targets)

	if cfg.ShouldShowConfig() {
		cfg.Dump(cmd.OutOrStdout())
		return nil
	}
	if cfg.ShouldShowTargets() {
		printTargets(cmd.OutOrStdout(), targets)
		return nil
	}
	if cfg.ShouldShowPayloads() {
		printPayloads(cmd.OutOrStdout())
		return nil
	}

	source, moduleName, err := readInput(inputName)
	if err != nil {
		return diag.Emit(nil, diag.SevError, diag.CatNoInput, err.Error())
	}

	sess := session.New()
	configs := config.NewRegistry()
	configs.Set(sess, cfg)

	req := driver.Request{
		Session: sess,
		Configs: configs,
		Targets: targets,
		Passes:  pass.NewRegistry(),
		Modules: []driver.Module{{Name: moduleName, Source: source}},
		OnDiagnostic: func(d diag.Diagnostic) {
			if shouldReport(d.Severity, cfg.Verbosity()) {
				fmt.Fprintln(os.Stderr, d.String())
			}
		},
	}

	var res driver.Result
	useTUI := shouldUseTUI(uiModeValue) && outputName != config.StdoutName
	if useTUI {
		res, err = runCompileWithUI(cmd.Context(), "qec compile", &req)
	} else {
		res, err = driver.Compile(cmd.Context(), &req)
	}
	if err != nil {
		return err
	}

	return writeOutput(outputName, res.Modules[0].Payload)
}

func readInput(name string) ([]byte, string, error) {
	if name == config.StdinName {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, "", err
	}
	return data, name, nil
}

func writeOutput(name string, payload []byte) error {
	if name == config.StdoutName {
		_, err := os.Stdout.Write(payload)
		return err
	}
	return os.WriteFile(name, payload, 0o644)
}

func printTargets(out io.Writer, targets *hal.Registry) {
	fmt.Fprintln(out, "Registered target systems:")
	for _, name := range targets.Names() {
		entry, ok := targets.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %s - %s\n", entry.Name(), entry.Description())
	}
}

func printPayloads(out io.Writer) {
	fmt.Fprintln(out, "Supported payload formats:")
	for _, a := range []config.EmitAction{config.EmitQEM, config.EmitQEQEM} {
		fmt.Fprintf(out, "  %s\n", a)
	}
}

// shouldReport filters diagnostics against the configured verbosity.
// Errors always surface.
func shouldReport(sev diag.Severity, v config.Verbosity) bool {
	switch sev {
	case diag.SevError, diag.SevFatal:
		return true
	case diag.SevWarning:
		return v >= config.VerbosityWarn
	default:
		return v >= config.VerbosityInfo
	}
}
