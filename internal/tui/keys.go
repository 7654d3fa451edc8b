package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	next      key.Binding
	finish    key.Binding
	refresh   key.Binding
	autoSync  key.Binding
	clipboard key.Binding
	status    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c", "q")),
	next:      key.NewBinding(key.WithKeys("ctrl+n")),
	finish:    key.NewBinding(key.WithKeys("ctrl+f")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	autoSync:  key.NewBinding(key.WithKeys("a")),
	clipboard: key.NewBinding(key.WithKeys("c")),
	status:    key.NewBinding(key.WithKeys("s")),
}
