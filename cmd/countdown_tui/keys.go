package countdown_tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Abort           key.Binding
	AbortAndDisable key.Binding
	StartNow        key.Binding
	OpenSettings    key.Binding
	GenerateNow     key.Binding
}

func NewKeyMap() KeyMap {
	return KeyMap{
		Abort: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "abort"),
		),
		AbortAndDisable: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "abort and disable quickstart"),
		),
		StartNow: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start now"),
		),
		OpenSettings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "open settings"),
		),
		GenerateNow: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "generate immediately (debug)"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Abort, k.AbortAndDisable, k.StartNow}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Abort, k.AbortAndDisable},
		{k.StartNow, k.OpenSettings, k.GenerateNow},
	}
}
