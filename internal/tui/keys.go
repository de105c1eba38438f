package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next          key.Binding
	Prev          key.Binding
	MoveLeft      key.Binding
	MoveRight     key.Binding
	Open          key.Binding
	Close         key.Binding
	CloseOthers   key.Binding
	Pin           key.Binding
	Modify        key.Binding
	Jump          key.Binding
	SortHandle    key.Binding
	SortDirectory key.Binding
	SortLanguage  key.Binding
	SortWindow    key.Binding
	Offset        key.Binding
	ScrollLeft    key.Binding
	ScrollRight   key.Binding
	Help          key.Binding
	Quit          key.Binding
}

var Keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "l"),
		key.WithHelp("tab", "next tab"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "h"),
		key.WithHelp("s-tab", "previous tab"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "move tab left"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "move tab right"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open document"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close tab"),
	),
	CloseOthers: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "close other tabs"),
	),
	Pin: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle pin"),
	),
	Modify: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle modified"),
	),
	Jump: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "jump mode"),
	),
	SortHandle: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "sort by handle"),
	),
	SortDirectory: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "sort by directory"),
	),
	SortLanguage: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "sort by language"),
	),
	SortWindow: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "sort by window"),
	),
	Offset: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "toggle side offset"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "scroll right"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "exit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Open, k.Close, k.Pin, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.MoveLeft, k.MoveRight, k.Jump},
		{k.Open, k.Close, k.CloseOthers, k.Pin, k.Modify},
		{k.SortHandle, k.SortDirectory, k.SortLanguage, k.SortWindow},
		{k.Offset, k.ScrollLeft, k.ScrollRight, k.Help, k.Quit},
	}
}
