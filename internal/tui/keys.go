package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	prevDay   key.Binding
	nextDay   key.Binding
	today     key.Binding
	sync      key.Binding
	theme     key.Binding
	copy      key.Binding
	buildInfo key.Binding
	esc       key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	prevDay:   key.NewBinding(key.WithKeys("ctrl+p", "alt+left"), key.WithHelp("ctrl+p", "prev day")),
	nextDay:   key.NewBinding(key.WithKeys("ctrl+n", "alt+right"), key.WithHelp("ctrl+n", "next day")),
	today:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "today")),
	sync:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save now")),
	theme:     key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "theme")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	buildInfo: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	esc:       key.NewBinding(key.WithKeys("esc")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.prevDay, k.nextDay, k.today, k.sync, k.copy, k.theme, k.buildInfo, k.quit}
}
