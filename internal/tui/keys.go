package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pders01/hinan/internal/config"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Focus  key.Binding
	Home   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(kb config.KeyBindings) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(kb.Select),
			key.WithHelp(kb.Select, "open"),
		),
		Focus: key.NewBinding(
			key.WithKeys(kb.Focus),
			key.WithHelp(kb.Focus, "menu/content"),
		),
		Home: key.NewBinding(
			key.WithKeys(kb.Home),
			key.WithHelp(kb.Home, "home"),
		),
		Help: key.NewBinding(
			key.WithKeys(kb.Help),
			key.WithHelp(kb.Help, "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys(kb.Quit, "ctrl+c"),
			key.WithHelp(kb.Quit, "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Focus, k.Home, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Focus, k.Home},
		{k.Help, k.Quit},
	}
}
