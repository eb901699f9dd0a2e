package engine

import (
	"os"
	"testing"
	"time"
)

func TestSaveRegistryListOrdersByModTime(t *testing.T) {
	registry := NewSaveRegistry(t.TempDir())

	payload := SavePayload{EngineVersion: Version, Scenario: "Crashlanded", MapSize: 250}
	for _, name := range []string{"Autosave-2", "Autosave-3", "Manual"} {
		if err := registry.Write(name, payload); err != nil {
			t.Fatal(err)
		}
	}

	now := time.Now()
	ages := map[string]time.Duration{
		"Autosave-3": 0,
		"Manual":     time.Hour,
		"Autosave-2": 2 * time.Hour,
	}
	for name, age := range ages {
		stamp := now.Add(-age)
		if err := os.Chtimes(registry.FilePath(name), stamp, stamp); err != nil {
			t.Fatal(err)
		}
	}

	saves, err := registry.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Autosave-3", "Manual", "Autosave-2"}
	if len(saves) != len(want) {
		t.Fatalf("List() returned %d saves, want %d", len(saves), len(want))
	}
	for i, name := range want {
		if saves[i].Name != name {
			t.Errorf("saves[%d] = %q, want %q", i, saves[i].Name, name)
		}
	}
}

func TestSaveRegistryListMissingDir(t *testing.T) {
	registry := NewSaveRegistry("/nonexistent/saves")
	saves, err := registry.List()
	if err != nil {
		t.Fatalf("List() on missing dir: %v", err)
	}
	if len(saves) != 0 {
		t.Errorf("List() = %v, want empty", saves)
	}
}

func TestSaveRegistryIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	registry := NewSaveRegistry(dir)
	if err := registry.Write("Good", SavePayload{EngineVersion: Version}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir+"/notes.txt", []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	saves, err := registry.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(saves) != 1 || saves[0].Name != "Good" {
		t.Errorf("List() = %v, want only Good", saves)
	}
}

func TestSaveRegistryReadRoundTrip(t *testing.T) {
	registry := NewSaveRegistry(t.TempDir())
	in := SavePayload{
		EngineVersion: Version,
		Scenario:      "Lost Tribe",
		MapSize:       300,
		Tick:          12345,
		SavedAt:       time.Now().UTC().Truncate(time.Second),
	}
	if err := registry.Write("Roundtrip", in); err != nil {
		t.Fatal(err)
	}

	out, err := registry.Read(registry.FilePath("Roundtrip"))
	if err != nil {
		t.Fatal(err)
	}
	if out.Scenario != in.Scenario || out.MapSize != in.MapSize || out.Tick != in.Tick {
		t.Errorf("Read() = %+v, want %+v", out, in)
	}
}

func TestNextAutosaveName(t *testing.T) {
	registry := NewSaveRegistry(t.TempDir())

	if got := registry.NextAutosaveName(); got != "Autosave-1" {
		t.Errorf("NextAutosaveName() = %q, want Autosave-1", got)
	}
	if err := registry.Write("Autosave-1", SavePayload{}); err != nil {
		t.Fatal(err)
	}
	if got := registry.NextAutosaveName(); got != "Autosave-2" {
		t.Errorf("NextAutosaveName() = %q, want Autosave-2", got)
	}
}
