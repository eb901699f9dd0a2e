package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verdantsim/verdant/cmd/countdown_tui"
	"github.com/verdantsim/verdant/pkg/engine"
	"github.com/verdantsim/verdant/pkg/quickstart"
	"github.com/verdantsim/verdant/pkg/settings"
)

var (
	runDevMode   bool
	runQuicktest bool
	runCountdown time.Duration
	runDataDir   string
	runAutosave  bool
)

func NewRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Boot the engine, honoring the quickstart configuration",
		Long: `Boot the simulation engine. When quickstart is configured and --dev is
set, the configured action (generate a world or load a save) runs
automatically after a countdown the operator can abort.

Without --dev, quickstart never fires; the engine falls through to its
normal interactive startup.`,
		RunE: runEngine,
	}
	runCmd.Flags().BoolVar(&runDevMode, "dev", false, "Enable development mode (required for quickstart to fire)")
	runCmd.Flags().BoolVar(&runQuicktest, "quicktest", false, "Prepare map generation without forcing the scene change")
	runCmd.Flags().DurationVar(&runCountdown, "countdown", 5*time.Second, "Countdown before the quickstart action commits")
	runCmd.Flags().StringVar(&runDataDir, "data-dir", "", "Data directory (default: platform config dir)")
	runCmd.Flags().BoolVar(&runAutosave, "autosave", false, "Write an autosave once the session is running")
	return runCmd
}

func runEngine(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir(runDataDir)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetLevel(logLevelFromEnv())
	quickstart.SetLogger(logger)

	eng := engine.New(filepath.Join(dataDir, "saves"), logger)
	backend, err := settings.Open(filepath.Join(dataDir, "settings.yml"))
	if err != nil {
		return err
	}

	bridge := engine.NewBridge(eng)
	bridge.Quicktest = runQuicktest

	store := quickstart.NewStore(backend)
	orch := quickstart.New(bridge, store, logger.WithField("component", "quickstart"))

	// Generation consults the orchestrator's override points; it stays
	// agnostic of whether quickstart armed them.
	eng.ScenarioResolver = orch.ResolveScenario
	eng.MapSizeResolver = orch.ResolveMapSize
	eng.OnGenerationConsumed = orch.MarkGenerationConsumed

	if err := orch.OnEarlyInitialize(); err != nil {
		return err
	}
	orch.OnLateInitialize(runDevMode)

	ctx := cmd.Context()

	if gate := orch.Gate(); gate != nil && orch.QuickstartPending() && stdoutIsTerminal() {
		model := countdown_tui.New(gate, runCountdown)
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return fmt.Errorf("run countdown: %w", err)
		}
		switch final.(countdown_tui.Model).Outcome {
		case countdown_tui.OutcomeOpenSettings:
			return showConfig(store)
		case countdown_tui.OutcomeGenerateNow:
			if err := orch.GenerateNow(ctx); err != nil {
				return err
			}
		}
	}

	if err := eng.Tasks.ExecuteAll(ctx); err != nil {
		return err
	}

	session := eng.Game.Current()
	if session == nil {
		color.Yellow("No session started; continuing to interactive startup.")
		return nil
	}

	color.Green("Session %s ready: scenario %q, map %d x %d", session.ID, session.Scenario, session.MapSize, session.MapSize)
	if session.SourceSave != "" {
		fmt.Printf("Restored from save %q at tick %d\n", session.SourceSave, session.Tick)
	}

	if runAutosave {
		name := eng.Saves.NextAutosaveName()
		if err := eng.SaveCurrent(name); err != nil {
			return fmt.Errorf("autosave: %w", err)
		}
		fmt.Printf("Autosaved as %q\n", name)
	}
	return nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func logLevelFromEnv() logrus.Level {
	if raw := os.Getenv("VERDANT_LOG_LEVEL"); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			return level
		}
	}
	return logrus.InfoLevel
}
