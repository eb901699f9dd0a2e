// Package countdown_tui renders the quickstart countdown and lets the
// operator abort the pending automated action before it commits.
package countdown_tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantsim/verdant/pkg/quickstart"
)

// Outcome is how the countdown ended.
type Outcome int

const (
	// OutcomeCommitted means the countdown ran out; the action proceeds.
	OutcomeCommitted Outcome = iota
	// OutcomeAborted means the operator canceled this run only.
	OutcomeAborted
	// OutcomeAbortedAndDisabled means the operator canceled and turned
	// quickstart off permanently.
	OutcomeAbortedAndDisabled
	// OutcomeOpenSettings means the operator asked for the settings view
	// instead.
	OutcomeOpenSettings
	// OutcomeGenerateNow means the debug key skipped the countdown and
	// requested immediate generation.
	OutcomeGenerateNow
)

const frameInterval = 100 * time.Millisecond

type frameMsg time.Time

// Model drives the countdown. It owns no side effects beyond calling the
// gate's Abort.
type Model struct {
	Gate      *quickstart.AbortGate
	Remaining time.Duration
	Total     time.Duration
	Outcome   Outcome
	KeyMap    KeyMap
	Width     int
}

// New creates a countdown over an armed gate.
func New(gate *quickstart.AbortGate, total time.Duration) Model {
	return Model{
		Gate:      gate,
		Remaining: total,
		Total:     total,
		KeyMap:    NewKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameTick()
}
