package engine

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(t.TempDir(), logger)
}

func TestGenerateWorldConsultsResolvers(t *testing.T) {
	eng := newTestEngine(t)

	var consumed bool
	eng.ScenarioResolver = func(original Scenario) Scenario {
		return Scenario{Name: "Rich Explorer"}
	}
	eng.MapSizeResolver = func(original int) int { return 325 }
	eng.OnGenerationConsumed = func() { consumed = true }

	session, err := eng.GenerateWorld(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if session.Scenario != "Rich Explorer" || session.MapSize != 325 {
		t.Errorf("session = %+v, want resolver overrides applied", session)
	}
	if !consumed {
		t.Error("generation did not report the override consumed")
	}
	if !eng.Game.Playing() || eng.Game.Current() != session {
		t.Error("session not installed as current")
	}
}

func TestGenerateWorldDefaultsWithoutResolvers(t *testing.T) {
	eng := newTestEngine(t)

	session, err := eng.GenerateWorld(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if session.Scenario != "Crashlanded" {
		t.Errorf("default scenario = %q, want first builtin", session.Scenario)
	}
	if session.MapSize != DefaultMapSize {
		t.Errorf("default size = %d, want %d", session.MapSize, DefaultMapSize)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	eng := newTestEngine(t)

	if _, err := eng.GenerateWorld(context.Background()); err != nil {
		t.Fatal(err)
	}
	eng.Game.Current().Tick = 777
	if err := eng.SaveCurrent("Manual"); err != nil {
		t.Fatal(err)
	}

	eng.Game.ClearWorld()
	if eng.Game.Current() != nil {
		t.Fatal("ClearWorld left a session")
	}

	session, err := eng.LoadSavedGame(context.Background(), "Manual")
	if err != nil {
		t.Fatal(err)
	}
	if session.Scenario != "Crashlanded" || session.Tick != 777 || session.SourceSave != "Manual" {
		t.Errorf("restored session = %+v", session)
	}
}

func TestSaveCurrentWithoutSession(t *testing.T) {
	eng := newTestEngine(t)
	if err := eng.SaveCurrent("Nope"); err == nil {
		t.Error("SaveCurrent without a session did not fail")
	}
}

func TestScenarioRegistryFindByName(t *testing.T) {
	registry := NewScenarioRegistry()

	if _, ok := registry.FindByName("Crashlanded"); !ok {
		t.Error("builtin Crashlanded not found")
	}
	if _, ok := registry.FindByName("crashlanded"); ok {
		t.Error("lookup is not exact-match")
	}

	registry.SetExternal([]Scenario{{Name: "Modded Start"}})
	if _, ok := registry.FindByName("Modded Start"); !ok {
		t.Error("external scenario not found")
	}
	if got := len(registry.All()); got != len(BuiltinScenarios())+1 {
		t.Errorf("All() = %d scenarios, want builtins plus one", got)
	}
}
