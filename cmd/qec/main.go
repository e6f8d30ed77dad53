package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "qec",
	Short: "Quantum engine compiler toolchain",
	Long:  `qec compiles quantum programs into target-system payloads`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
