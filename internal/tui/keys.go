package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Selector key.Binding
	Files    key.Binding
	Table    key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("[", "left"), key.WithHelp("[/←", "previous")),
		Next:     key.NewBinding(key.WithKeys("]", "right"), key.WithHelp("]/→", "next")),
		Selector: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "select key")),
		Files:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open csv")),
		Table:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "rows")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Selector, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Selector, k.Open},
		{k.Files, k.Table, k.Help, k.Quit},
	}
}
