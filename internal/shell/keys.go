// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the front end.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Clear   key.Binding
	Back    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Drawer  key.Binding
	Vendor  key.Binding
	Focus   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x", "backspace"),
		key.WithHelp("x", "clear selection"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Drawer: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Vendor: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "vendor"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "up", "down"),
		key.WithHelp("tab", "next field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// loginKeys are shown on the login screen.
type loginKeys KeyMap

func (k loginKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Select, k.Vendor, k.Quit}
}

func (k loginKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// screenKeys are shown once logged in.
type screenKeys KeyMap

func (k screenKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Drawer, k.Select, k.Back, k.Vendor, k.Quit}
}

func (k screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Clear},
		{k.NextTab, k.PrevTab, k.Drawer, k.Back},
		{k.Vendor, k.Quit},
	}
}
