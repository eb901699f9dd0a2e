package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verdantsim/verdant/pkg/engine"
)

var savesDataDir string

func NewSavesCmd() *cobra.Command {
	savesCmd := &cobra.Command{
		Use:   "saves",
		Short: "List saved sessions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolveDataDir(savesDataDir)
			if err != nil {
				return err
			}
			registry := engine.NewSaveRegistry(filepath.Join(dataDir, "saves"))
			saves, err := registry.List()
			if err != nil {
				return err
			}
			if len(saves) == 0 {
				color.Yellow("No saves in %s", registry.Dir())
				return nil
			}
			for _, save := range saves {
				fmt.Printf("%-24s %s\n", save.Name, formatRelativeTime(save.ModTime))
			}
			return nil
		},
	}
	savesCmd.Flags().StringVar(&savesDataDir, "data-dir", "", "Data directory (default: platform config dir)")
	return savesCmd
}
