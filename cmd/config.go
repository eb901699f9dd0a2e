package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verdantsim/verdant/pkg/quickstart"
	"github.com/verdantsim/verdant/pkg/settings"
)

var (
	configDataDir      string
	configMode         string
	configScenario     string
	configMapSize      int
	configSaveFile     string
	configBypassCheck  bool
	configStopErrors   bool
	configStopWarnings bool
)

func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the quickstart configuration",
		Long: `Show the persisted quickstart configuration, or change it with flags.

Examples:
  # Auto-generate a Crashlanded world on every dev run
  verdant config --mode generate_map --scenario Crashlanded --map-size 250

  # Auto-load the most recent save, skipping the version check
  verdant config --mode load_map --bypass-version-check

  # Turn quickstart off
  verdant config --mode disabled`,
		RunE: runConfig,
	}
	configCmd.Flags().StringVar(&configDataDir, "data-dir", "", "Data directory (default: platform config dir)")
	configCmd.Flags().StringVar(&configMode, "mode", "", "Quickstart mode: disabled, generate_map, or load_map")
	configCmd.Flags().StringVar(&configScenario, "scenario", "", "Scenario to generate")
	configCmd.Flags().IntVar(&configMapSize, "map-size", 0, "Map size to generate (snapped to the nearest valid size at startup)")
	configCmd.Flags().StringVar(&configSaveFile, "save-file", "", "Save to load (empty means most recent)")
	configCmd.Flags().BoolVar(&configBypassCheck, "bypass-version-check", false, "Skip the save version-compatibility check")
	configCmd.Flags().BoolVar(&configStopErrors, "stop-on-errors", false, "Abort quickstart when errors were already logged")
	configCmd.Flags().BoolVar(&configStopWarnings, "stop-on-warnings", false, "Abort quickstart when warnings were already logged")
	return configCmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir(configDataDir)
	if err != nil {
		return err
	}
	backend, err := settings.Open(filepath.Join(dataDir, "settings.yml"))
	if err != nil {
		return err
	}
	store := quickstart.NewStore(backend)

	cfg, err := store.Load()
	if err != nil {
		return err
	}

	changed := false
	if cmd.Flags().Changed("mode") {
		mode := quickstart.Mode(configMode)
		switch mode {
		case quickstart.ModeDisabled, quickstart.ModeGenerateMap, quickstart.ModeLoadMap:
		default:
			return fmt.Errorf("invalid mode %q (want disabled, generate_map, or load_map)", configMode)
		}
		cfg.Mode = mode
		changed = true
	}
	if cmd.Flags().Changed("scenario") {
		cfg.Scenario = configScenario
		changed = true
	}
	if cmd.Flags().Changed("map-size") {
		cfg.MapSize = configMapSize
		changed = true
	}
	if cmd.Flags().Changed("save-file") {
		cfg.SaveFile = configSaveFile
		changed = true
	}
	if cmd.Flags().Changed("bypass-version-check") {
		cfg.BypassVersionCheck = configBypassCheck
		changed = true
	}
	if cmd.Flags().Changed("stop-on-errors") {
		cfg.StopOnErrors = configStopErrors
		changed = true
	}
	if cmd.Flags().Changed("stop-on-warnings") {
		cfg.StopOnWarnings = configStopWarnings
		changed = true
	}

	if changed {
		if err := store.Save(cfg); err != nil {
			return err
		}
	}
	return showConfig(store)
}

// showConfig prints the current quickstart record.
func showConfig(store *quickstart.Store) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Println("Quickstart configuration")
	fmt.Printf("  mode:                 %s\n", cfg.Mode)
	fmt.Printf("  scenario:             %s\n", orDash(cfg.Scenario))
	fmt.Printf("  map size:             %d\n", cfg.MapSize)
	fmt.Printf("  save file:            %s\n", orDash(cfg.SaveFile))
	fmt.Printf("  bypass version check: %t\n", cfg.BypassVersionCheck)
	fmt.Printf("  stop on errors:       %t\n", cfg.StopOnErrors)
	fmt.Printf("  stop on warnings:     %t\n", cfg.StopOnWarnings)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
