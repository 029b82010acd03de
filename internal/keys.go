package internal

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the main view. Forms and modals use their
// own fixed keys (enter, esc, tab, y/n).
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Export   key.Binding
	Import   key.Binding
	Theme    key.Binding
	Sidebar  key.Binding
	NextTool key.Binding
	Quit     key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("n", "a"),
		key.WithHelp("n", "add month"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Sidebar: key.NewBinding(
		key.WithKeys("s", "ctrl+b"),
		key.WithHelp("s", "sidebar"),
	),
	NextTool: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tool"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) timeHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Export, k.Import, k.Theme, k.Sidebar, k.NextTool, k.Quit}
}

func (k KeyMap) settingsHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Sidebar, k.NextTool, k.Quit}
}
