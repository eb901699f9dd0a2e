package quickstart

import "fmt"

// GateState is the abort gate's lifecycle state.
type GateState int

const (
	// GateArmed is the initial state: the action is pending and abortable.
	GateArmed GateState = iota
	// GateAborted is terminal: the operator canceled the action.
	GateAborted
	// GateCommitted is terminal: the deferred action began executing.
	GateCommitted
)

func (s GateState) String() string {
	switch s {
	case GateArmed:
		return "armed"
	case GateAborted:
		return "aborted"
	case GateCommitted:
		return "committed"
	default:
		return fmt.Sprintf("gatestate(%d)", int(s))
	}
}

// PendingAction describes the automated action awaiting the countdown. It is
// a closed sum: LoadSaveAction or GenerateMapAction.
type PendingAction interface {
	// Describe renders the display text shown while counting down.
	Describe() string

	pendingAction()
}

// LoadSaveAction announces a pending save load. SaveName may be empty when
// resolution failed; the description degrades rather than erroring.
type LoadSaveAction struct {
	SaveName string
}

func (a LoadSaveAction) Describe() string {
	if a.SaveName == "" {
		return "Loading most recent save"
	}
	return fmt.Sprintf("Loading save %q", a.SaveName)
}

func (a LoadSaveAction) pendingAction() {}

// GenerateMapAction announces a pending world generation.
type GenerateMapAction struct {
	Scenario string
	MapSize  int
}

func (a GenerateMapAction) Describe() string {
	if a.Scenario == "" {
		return fmt.Sprintf("Generating %d x %d map", a.MapSize, a.MapSize)
	}
	return fmt.Sprintf("Generating %d x %d map with scenario %q", a.MapSize, a.MapSize, a.Scenario)
}

func (a GenerateMapAction) pendingAction() {}

// AbortGate is the cancelable countdown gate. Rendering and key handling
// live in the TUI layer; the gate only tracks state and fires the abort
// callback. Transitions out of Armed are terminal.
type AbortGate struct {
	state   GateState
	action  PendingAction
	onAbort func(disable bool)
}

// NewAbortGate arms a gate for the given action. onAbort fires once if the
// operator cancels; disable is true when the operator also chose to turn
// quickstart off permanently.
func NewAbortGate(action PendingAction, onAbort func(disable bool)) *AbortGate {
	return &AbortGate{
		state:   GateArmed,
		action:  action,
		onAbort: onAbort,
	}
}

// Action returns the pending action this gate guards.
func (g *AbortGate) Action() PendingAction {
	return g.action
}

// State returns the gate's current state.
func (g *AbortGate) State() GateState {
	return g.state
}

// Abort cancels the pending action. Only valid from Armed; later calls are
// ignored.
func (g *AbortGate) Abort(disable bool) {
	if g.state != GateArmed {
		return
	}
	g.state = GateAborted
	if g.onAbort != nil {
		g.onAbort(disable)
	}
}

// Commit marks the action as executing. Only valid from Armed.
func (g *AbortGate) Commit() {
	if g.state != GateArmed {
		return
	}
	g.state = GateCommitted
}
