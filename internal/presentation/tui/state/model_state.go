package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/tesso57/jokey/internal/domain/joke"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session      Session
	Previous     Session
	Browse       joke.State
	JokeCategory string
	List         list.Model
	Help         help.Model
	Spinner      spinner.Model
	Keys         KeyMap
	Width        int
	Height       int
	MaxJokes     int
}
