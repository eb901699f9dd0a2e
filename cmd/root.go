package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the verdant command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "verdant",
		Short:         "Simulation engine development harness",
		Long:          "Verdant boots a simulation engine session, with a quickstart path that auto-generates or auto-loads a world without menu interaction.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewScenariosCmd())
	rootCmd.AddCommand(NewSavesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
