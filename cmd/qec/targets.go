package main

import (
	"github.com/spf13/cobra"

	"qec/internal/hal"
	"qec/internal/hal/systems/mock"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the available target systems",
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := hal.NewRegistry()
		mock.Register(targets)
		printTargets(cmd.OutOrStdout(), targets)
		return nil
	},
}
