package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Sidebar  key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Filter   key.Binding
	Add      key.Binding
	NextStep key.Binding
	Remove   key.Binding
	Run      key.Binding
	Engine   key.Binding
	Design   key.Binding
	RunMode  key.Binding
	Explore  key.Binding
	Theme    key.Binding
	Clear    key.Binding
	Save     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Sidebar:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Add:      key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "add step")),
		NextStep: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next step")),
		Remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Run:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run")),
		Engine:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "engine")),
		Design:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "design")),
		RunMode:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "run mode")),
		Explore:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "explore")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear log")),
		Save:     key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
	}
}

// footer lists the bindings shown in the help line, in display order.
func (k keyMap) footer() []key.Binding {
	return []key.Binding{k.Sidebar, k.Filter, k.Add, k.NextStep, k.Remove, k.Run, k.Engine, k.Theme, k.Save, k.Quit}
}
