// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jokey/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

// Generic intents come straight from key presses.
const (
	None Type = iota
	Quit
	ToggleHelp
	Open
	Back
	Refresh
	MoveToTop
	LoadMore
)

// Concrete intents are produced when a list row resolves a generic one.
const (
	Toggle Type = iota + 100
	Select
)

// Intent represents a parsed user intent. Category and Joke are filled in
// once a row has resolved it.
type Intent struct {
	Type     Type
	Category string
	Joke     string
}

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Quit:
		return "quit"
	case ToggleHelp:
		return "toggle-help"
	case Open:
		return "open"
	case Back:
		return "back"
	case Refresh:
		return "refresh"
	case MoveToTop:
		return "move-to-top"
	case LoadMore:
		return "load-more"
	case Toggle:
		return "toggle"
	case Select:
		return "select"
	default:
		return "unknown"
	}
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.MoveToTop):
		return Intent{Type: MoveToTop}
	case key.Matches(msg, keys.LoadMore):
		return Intent{Type: LoadMore}
	default:
		return Intent{Type: None}
	}
}
