package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one running game: a world plus the scenario it was started
// from, or the save it was restored from.
type Session struct {
	ID         string
	Scenario   string
	MapSize    int
	SourceSave string
	Tick       int64
	CreatedAt  time.Time
}

// GameState tracks the engine's current session and context. The context is
// "entry" (main menu equivalent) until a session starts playing.
type GameState struct {
	mu      sync.Mutex
	current *Session
	playing bool
}

// NewGameState starts at the entry context with no session.
func NewGameState() *GameState {
	return &GameState{}
}

// ClearWorld drops any loaded world and session state.
func (g *GameState) ClearWorld() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = nil
	g.playing = false
}

// ResetContext returns the engine to the entry context without touching the
// loaded session, handing control to whatever pipeline runs next.
func (g *GameState) ResetContext() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.playing = false
}

// StartSession installs a session and marks the engine as playing.
func (g *GameState) StartSession(s *Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = s
	g.playing = true
}

// Current returns the active session, or nil at the entry context.
func (g *GameState) Current() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Playing reports whether a session is active.
func (g *GameState) Playing() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playing
}

func newSessionID() string {
	return uuid.NewString()
}
