package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Refresh  key.Binding
	Search   key.Binding
	Delete   key.Binding
	ClearAll key.Binding
	Submit   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	CopyAll  key.Binding
	CopyOne  key.Binding
	Open     key.Binding
	Export   key.Binding
	Select   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var Keys = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	ClearAll: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),
	Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "run")),
	NextPage: key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n", "next page")),
	PrevPage: key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p", "prev page")),
	CopyAll:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy emails")),
	CopyOne:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy email")),
	Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open linkedin")),
	Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	Select:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
}
