package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open   key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	k := keyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open dialog"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown", "k", "j"),
			key.WithHelp("↑/↓/wheel", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.setOpen(false)
	return k
}

// setOpen enables the bindings that apply while the dialog is open or closed.
func (k *keyMap) setOpen(open bool) {
	k.Open.SetEnabled(!open)
	k.Scroll.SetEnabled(open)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Scroll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
