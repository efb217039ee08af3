package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start      key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Work       key.Binding
	Break      key.Binding
	Apply      key.Binding
	Theme      key.Binding
	FullScreen key.Binding
	Edit       key.Binding
	Clear      key.Binding
	Export     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:      key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Work:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "work")),
		Break:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "break")),
		Apply:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "set custom")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		FullScreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Edit:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit minutes")),
		Clear:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
		Export:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "report")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Work, k.Break, k.Edit, k.Apply, k.Theme, k.FullScreen, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.Work, k.Break, k.Edit, k.Apply},
		{k.Theme, k.FullScreen, k.Export, k.Clear, k.Quit},
	}
}

func (k keyMap) focusHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.FullScreen}
}
