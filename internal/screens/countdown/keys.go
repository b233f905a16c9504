package countdown

import "charm.land/bubbles/v2/key"

// KeyMap binds keys to engine commands.
type KeyMap struct {
	Toggle      key.Binding
	Reset       key.Binding
	BreakDown   key.Binding
	BreakUp     key.Binding
	SessionDown key.Binding
	SessionUp   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("space", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		BreakDown: key.NewBinding(
			key.WithKeys("b", "left"),
			key.WithHelp("b/←", "break -1"),
		),
		BreakUp: key.NewBinding(
			key.WithKeys("B", "right"),
			key.WithHelp("B/→", "break +1"),
		),
		SessionDown: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "session -1"),
		),
		SessionUp: key.NewBinding(
			key.WithKeys("S", "up"),
			key.WithHelp("S/↑", "session +1"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.BreakDown, k.BreakUp},
		{k.SessionDown, k.SessionUp},
		{k.Help, k.Quit},
	}
}
