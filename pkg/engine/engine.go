// Package engine implements the host side of the simulation harness: the
// scenario and save registries, the deferred task queue, session state, and
// the generation/load pipelines the quickstart core drives.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultMapSize is used when nothing overrides the size of a new world.
const DefaultMapSize = 250

// Engine bundles the host collaborators and owns the generation and load
// pipelines.
type Engine struct {
	Scenarios  *ScenarioRegistry
	Saves      *SaveRegistry
	Tasks      *TaskQueue
	Game       *GameState
	Guard      *VersionGuard
	StartupLog *BufferHook
	Log        *logrus.Logger

	// Override points consulted by the generation pipeline. The pipeline
	// itself stays agnostic of who installs them.
	ScenarioResolver     func(original Scenario) Scenario
	MapSizeResolver      func(original int) int
	OnGenerationConsumed func()
}

// New creates an engine whose saves live under savesDir. The returned
// engine's logger carries the startup buffer hook.
func New(savesDir string, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	hook := NewBufferHook()
	log.AddHook(hook)

	saves := NewSaveRegistry(savesDir)
	return &Engine{
		Scenarios:  NewScenarioRegistry(),
		Saves:      saves,
		Tasks:      NewTaskQueue(log),
		Game:       NewGameState(),
		Guard:      NewVersionGuard(saves, log),
		StartupLog: hook,
		Log:        log,
	}
}

// DefaultMapSizes returns the world sizes this engine build supports.
func (e *Engine) DefaultMapSizes() []int {
	return []int{200, 225, 250, 275, 300, 325, 350}
}

// GenerateWorld runs the generation pipeline: it asks the override points
// which scenario and size to use, builds the session, and reports the
// override consumed.
func (e *Engine) GenerateWorld(ctx context.Context) (*Session, error) {
	scenario := e.defaultScenario()
	if e.ScenarioResolver != nil {
		scenario = e.ScenarioResolver(scenario)
	}
	size := DefaultMapSize
	if e.MapSizeResolver != nil {
		size = e.MapSizeResolver(size)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	session := &Session{
		ID:        newSessionID(),
		Scenario:  scenario.Name,
		MapSize:   size,
		CreatedAt: time.Now(),
	}
	e.Game.StartSession(session)
	e.Log.WithFields(logrus.Fields{
		"scenario": scenario.Name,
		"map_size": size,
		"session":  session.ID,
	}).Info("world generated")

	if e.OnGenerationConsumed != nil {
		e.OnGenerationConsumed()
	}
	return session, nil
}

// LoadSavedGame deserializes the named save and installs it as the current
// session.
func (e *Engine) LoadSavedGame(ctx context.Context, name string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := e.Saves.Read(e.Saves.FilePath(name))
	if err != nil {
		return nil, fmt.Errorf("load save %q: %w", name, err)
	}

	session := &Session{
		ID:         newSessionID(),
		Scenario:   payload.Scenario,
		MapSize:    payload.MapSize,
		SourceSave: name,
		Tick:       payload.Tick,
		CreatedAt:  time.Now(),
	}
	e.Game.StartSession(session)
	e.Log.WithFields(logrus.Fields{
		"save":    name,
		"tick":    payload.Tick,
		"session": session.ID,
	}).Info("save loaded")
	return session, nil
}

// SaveCurrent writes the active session under the given base name.
func (e *Engine) SaveCurrent(name string) error {
	session := e.Game.Current()
	if session == nil {
		return fmt.Errorf("no active session to save")
	}
	return e.Saves.Write(name, SavePayload{
		EngineVersion: Version,
		Scenario:      session.Scenario,
		MapSize:       session.MapSize,
		Tick:          session.Tick,
		SavedAt:       time.Now(),
	})
}

func (e *Engine) defaultScenario() Scenario {
	all := e.Scenarios.All()
	if len(all) == 0 {
		return Scenario{Name: "Empty"}
	}
	return all[0]
}
