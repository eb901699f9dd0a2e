// Package quickstart decides at startup whether to auto-generate a new world
// or auto-load a saved one, bypassing the interactive menus, while giving
// the operator a countdown window to abort.
package quickstart

import (
	"fmt"

	"github.com/verdantsim/verdant/pkg/settings"
)

// Mode selects which automated action quickstart performs.
type Mode string

const (
	// ModeDisabled means no automated action ever runs.
	ModeDisabled Mode = "disabled"
	// ModeGenerateMap auto-generates a new world from the configured
	// scenario and size.
	ModeGenerateMap Mode = "generate_map"
	// ModeLoadMap auto-loads a saved session.
	ModeLoadMap Mode = "load_map"
)

// settingsKey is the fixed identifier of the quickstart record in the
// settings store.
const settingsKey = "quickstart"

// Config is the persisted quickstart configuration. Validation happens in
// the orchestrator, not here.
type Config struct {
	Mode Mode `yaml:"mode" json:"mode"`

	// Scenario names the scenario to generate. Required when Mode is
	// generate_map.
	Scenario string `yaml:"scenario,omitempty" json:"scenario,omitempty"`

	// MapSize is snapped to the nearest catalog entry at late init.
	MapSize int `yaml:"map_size,omitempty" json:"map_size,omitempty"`

	// SaveFile is the save to load; empty means the most recently modified
	// save, resolved at use time.
	SaveFile string `yaml:"save_file,omitempty" json:"save_file,omitempty"`

	// BypassVersionCheck skips the version-compatibility pre-check when
	// loading.
	BypassVersionCheck bool `yaml:"bypass_version_check,omitempty" json:"bypass_version_check,omitempty"`

	// StopOnErrors aborts quickstart if errors were already logged.
	StopOnErrors bool `yaml:"stop_on_errors,omitempty" json:"stop_on_errors,omitempty"`
	// StopOnWarnings aborts quickstart if warnings were already logged.
	StopOnWarnings bool `yaml:"stop_on_warnings,omitempty" json:"stop_on_warnings,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is persisted.
func DefaultConfig() *Config {
	return &Config{
		Mode:    ModeDisabled,
		MapSize: 250,
	}
}

// Store persists the quickstart record through the settings subsystem.
type Store struct {
	backend *settings.Store
}

// NewStore wraps a settings store.
func NewStore(backend *settings.Store) *Store {
	return &Store{backend: backend}
}

// Load returns the persisted configuration, or a fresh default (mode
// disabled) when no record exists yet.
func (s *Store) Load() (*Config, error) {
	cfg := DefaultConfig()
	if _, err := s.backend.Get(settingsKey, cfg); err != nil {
		return nil, fmt.Errorf("load quickstart settings: %w", err)
	}
	return cfg, nil
}

// Save forces immediate persistence of cfg.
func (s *Store) Save(cfg *Config) error {
	if err := s.backend.Put(settingsKey, cfg); err != nil {
		return fmt.Errorf("store quickstart settings: %w", err)
	}
	if err := s.backend.ForceSave(); err != nil {
		return fmt.Errorf("persist quickstart settings: %w", err)
	}
	return nil
}
