package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings of both screens. The form accepts letters and
// "?" as key choices, so its quit and help bindings avoid them.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Start    key.Binding
	FormQuit key.Binding
	FormHelp key.Binding

	Stop key.Binding
	Quit key.Binding
	Help key.Binding
}

func bind(label, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// DefaultKeys returns the bindings used by NewModel.
func DefaultKeys() KeyMap {
	return KeyMap{
		Next:     bind("tab/↓", "next field", "tab", "down"),
		Prev:     bind("shift+tab/↑", "previous field", "shift+tab", "up"),
		Start:    bind("enter", "start", "enter"),
		FormQuit: bind("esc/ctrl+c", "quit", "esc", "ctrl+c"),
		FormHelp: bind("f1", "toggle help", "f1"),

		Stop: bind("s/enter", "stop", "s", "enter", "esc"),
		Quit: bind("q/ctrl+c", "stop and quit", "q", "ctrl+c"),
		Help: bind("?/f1", "toggle help", "?", "f1"),
	}
}

// ForState returns the help.KeyMap shown under the given screen.
func (k KeyMap) ForState(s State) help.KeyMap {
	return screenKeys{keys: k, state: s}
}

type screenKeys struct {
	keys  KeyMap
	state State
}

func (s screenKeys) ShortHelp() []key.Binding {
	if s.state == StateRunning {
		return []key.Binding{s.keys.Stop, s.keys.Quit, s.keys.Help}
	}
	return []key.Binding{s.keys.Start, s.keys.Next, s.keys.FormHelp, s.keys.FormQuit}
}

func (s screenKeys) FullHelp() [][]key.Binding {
	if s.state == StateRunning {
		return [][]key.Binding{{s.keys.Stop, s.keys.Quit}, {s.keys.Help}}
	}
	return [][]key.Binding{{s.keys.Start, s.keys.Next, s.keys.Prev}, {s.keys.FormHelp, s.keys.FormQuit}}
}
