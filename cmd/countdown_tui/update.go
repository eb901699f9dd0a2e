package countdown_tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantsim/verdant/pkg/quickstart"
)

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return m, nil

	case frameMsg:
		if m.Gate.State() != quickstart.GateArmed {
			return m, tea.Quit
		}
		m.Remaining -= frameInterval
		if m.Remaining <= 0 {
			m.Remaining = 0
			m.Outcome = OutcomeCommitted
			return m, tea.Quit
		}
		return m, frameTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Abort):
			m.Gate.Abort(false)
			m.Outcome = OutcomeAborted
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.AbortAndDisable):
			m.Gate.Abort(true)
			m.Outcome = OutcomeAbortedAndDisabled
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.StartNow):
			m.Outcome = OutcomeCommitted
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.OpenSettings):
			m.Gate.Abort(false)
			m.Outcome = OutcomeOpenSettings
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.GenerateNow):
			m.Outcome = OutcomeGenerateNow
			return m, tea.Quit
		}
	}
	return m, nil
}
