package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "registryctl",
		Short:         "Operator tooling for the registry service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newKeygenCmd(),
		newSignCmd(),
		newMigrateCmd(),
	)

	return rootCmd
}
