package presenter

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Next      key.Binding
	Previous  key.Binding
	First     key.Binding
	Last      key.Binding
	Digit     key.Binding
	GoTo      key.Binding
	Reload    key.Binding
	Copy      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.First, k.Last},
		{k.Digit, k.GoTo, k.Reload, k.Copy, k.Quit},
	}
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("n", "l", "right", " ", "space", "pgdown"),
		key.WithHelp("n/l/→/space", "next slide"),
	),
	Previous: key.NewBinding(
		key.WithKeys("p", "h", "left", "backspace", "pgup"),
		key.WithHelp("p/h/←/bksp", "previous slide"),
	),
	First: key.NewBinding(
		key.WithKeys("^"),
		key.WithHelp("^", "first slide"),
	),
	Last: key.NewBinding(
		key.WithKeys("$"),
		key.WithHelp("$", "last slide"),
	),
	Digit: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1..9", "slide number"),
	),
	GoTo: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "go to slide number"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r", "ctrl+l"),
		key.WithHelp("r/ctrl+l", "reload"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy slide source"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+x"),
		key.WithHelp("q/esc/ctrl+x", "quit"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// Controls describes the key bindings for the command help.
func Controls() string {
	plain := lipgloss.NewStyle()

	h := help.New()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}

	return h.FullHelpView(keys.FullHelp())
}
