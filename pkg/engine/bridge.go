package engine

import "context"

// Bridge adapts the engine's collaborators to the narrow surface the
// quickstart orchestrator consumes, keeping the core decoupled from engine
// layout.
type Bridge struct {
	Engine *Engine

	// Quicktest mirrors the command-line testing flag: when set, quickstart
	// only prepares generation and leaves the scene change to another path.
	Quicktest bool
}

// NewBridge wraps an engine.
func NewBridge(e *Engine) *Bridge {
	return &Bridge{Engine: e}
}

// DefaultMapSizes returns the engine's supported world sizes.
func (b *Bridge) DefaultMapSizes() []int {
	return b.Engine.DefaultMapSizes()
}

// FindScenario looks up a scenario by exact name.
func (b *Bridge) FindScenario(name string) (Scenario, bool) {
	return b.Engine.Scenarios.FindByName(name)
}

// ListSaves returns save files most-recent-first.
func (b *Bridge) ListSaves() ([]SaveFileInfo, error) {
	return b.Engine.Saves.List()
}

// SavePath resolves a save base name to its file path.
func (b *Bridge) SavePath(name string) string {
	return b.Engine.Saves.FilePath(name)
}

// SaveExists reports whether the file at path is present.
func (b *Bridge) SaveExists(path string) bool {
	return b.Engine.Saves.Exists(path)
}

// CheckVersionAndLoad runs the version pre-check before invoking onSuccess.
func (b *Bridge) CheckVersionAndLoad(path string, onSuccess func()) {
	b.Engine.Guard.CheckVersionAndLoad(path, HeaderModeMap, onSuccess)
}

// ClearWorld drops any loaded world and session state.
func (b *Bridge) ClearWorld() {
	b.Engine.Game.ClearWorld()
}

// ResetGameContext drops back to the entry context.
func (b *Bridge) ResetGameContext() {
	b.Engine.Game.ResetContext()
}

// RunGeneration runs the engine's generation pipeline.
func (b *Bridge) RunGeneration(ctx context.Context) error {
	_, err := b.Engine.GenerateWorld(ctx)
	return err
}

// StartLoadedSession deserializes the named save into a new session.
func (b *Bridge) StartLoadedSession(ctx context.Context, saveName string) error {
	_, err := b.Engine.LoadSavedGame(ctx, saveName)
	return err
}

// Enqueue defers work onto the engine's task queue.
func (b *Bridge) Enqueue(label string, fn func(ctx context.Context) error) {
	b.Engine.Tasks.Enqueue(label, fn)
}

// StartupErrors reports whether the startup log already holds errors.
func (b *Bridge) StartupErrors() bool {
	return b.Engine.StartupLog.HasErrors()
}

// StartupWarnings reports whether the startup log already holds warnings.
func (b *Bridge) StartupWarnings() bool {
	return b.Engine.StartupLog.HasWarnings()
}

// QuicktestRequested reports the command-line testing flag.
func (b *Bridge) QuicktestRequested() bool {
	return b.Quicktest
}
