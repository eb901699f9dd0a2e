package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verdantsim/verdant/pkg/engine"
)

func NewScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenarios quickstart can generate from",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := engine.NewScenarioRegistry()
			name := color.New(color.Bold, color.FgGreen)
			for _, sc := range registry.All() {
				name.Println(sc.Name)
				fmt.Printf("  %s\n", sc.Summary)
				fmt.Printf("  colonists: %d, starts in %s\n", sc.Colonists, sc.StartSeason)
			}
			return nil
		},
	}
}
