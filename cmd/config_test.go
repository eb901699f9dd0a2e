package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantsim/verdant/pkg/quickstart"
	"github.com/verdantsim/verdant/pkg/settings"
)

func loadConfig(t *testing.T, dataDir string) *quickstart.Config {
	t.Helper()
	backend, err := settings.Open(filepath.Join(dataDir, "settings.yml"))
	require.NoError(t, err)
	cfg, err := quickstart.NewStore(backend).Load()
	require.NoError(t, err)
	return cfg
}

func TestConfigCommandSetsFields(t *testing.T) {
	dataDir := t.TempDir()

	cmd := NewConfigCmd()
	cmd.SetArgs([]string{
		"--data-dir", dataDir,
		"--mode", "generate_map",
		"--scenario", "Crashlanded",
		"--map-size", "300",
		"--stop-on-errors",
	})
	require.NoError(t, cmd.Execute())

	cfg := loadConfig(t, dataDir)
	assert.Equal(t, quickstart.ModeGenerateMap, cfg.Mode)
	assert.Equal(t, "Crashlanded", cfg.Scenario)
	assert.Equal(t, 300, cfg.MapSize)
	assert.True(t, cfg.StopOnErrors)
	assert.False(t, cfg.StopOnWarnings)
}

func TestConfigCommandRejectsUnknownMode(t *testing.T) {
	dataDir := t.TempDir()

	cmd := NewConfigCmd()
	cmd.SetArgs([]string{"--data-dir", dataDir, "--mode", "sideways"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")

	// The invalid value must not have been persisted.
	cfg := loadConfig(t, dataDir)
	assert.Equal(t, quickstart.ModeDisabled, cfg.Mode)
}

func TestConfigCommandShowWithoutChanges(t *testing.T) {
	dataDir := t.TempDir()

	cmd := NewConfigCmd()
	cmd.SetArgs([]string{"--data-dir", dataDir})
	require.NoError(t, cmd.Execute())

	// A bare show must not create a settings record.
	cfg := loadConfig(t, dataDir)
	assert.Equal(t, quickstart.ModeDisabled, cfg.Mode)
}
