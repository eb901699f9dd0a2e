package quickstart

import (
	"path/filepath"
	"testing"

	"github.com/verdantsim/verdant/pkg/settings"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yml")
	backend, err := settings.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(backend), path
}

func TestStoreLoadDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	cfg, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeDisabled {
		t.Errorf("default mode = %q, want disabled", cfg.Mode)
	}
	if cfg.MapSize != 250 {
		t.Errorf("default map size = %d, want 250", cfg.MapSize)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store, path := newTestStore(t)

	cfg := &Config{
		Mode:           ModeGenerateMap,
		Scenario:       "Crashlanded",
		MapSize:        300,
		StopOnErrors:   true,
		StopOnWarnings: true,
	}
	if err := store.Save(cfg); err != nil {
		t.Fatal(err)
	}

	// Re-open the file to prove the save was durable, not in-memory.
	backend, err := settings.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := NewStore(backend).Load()
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Mode != ModeGenerateMap || loaded.Scenario != "Crashlanded" || loaded.MapSize != 300 {
		t.Errorf("loaded = %+v, want saved values back", loaded)
	}
	if !loaded.StopOnErrors || !loaded.StopOnWarnings {
		t.Errorf("stop toggles lost on round trip: %+v", loaded)
	}
}
