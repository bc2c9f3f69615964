package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Grow    key.Binding
	Shrink  key.Binding
	Soften  key.Binding
	Sharpen key.Binding
	Mode    key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "radius +10"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "radius -10"),
		),
		Soften: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "soft edge +5"),
		),
		Sharpen: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "soft edge -5"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "block/cell"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grow, k.Shrink, k.Mode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grow, k.Shrink, k.Soften, k.Sharpen},
		{k.Mode, k.Copy},
		{k.Help, k.Quit},
	}
}
