// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jokey/internal/presentation/tui/metrics"
	"github.com/tesso57/jokey/internal/presentation/tui/textutil"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Joke shows the selected joke.
	Joke
	// Help shows the full key help.
	Help
	// Quit asks for quit confirmation.
	Quit
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Hint    string
	Accent  lipgloss.Color
	Width   int
	Height  int
}

// Render renders the modal centered in the given area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	var content string
	switch p.Kind {
	case Joke:
		width := BoxWidth(p.Width)
		box = box.Width(width).BorderForeground(p.Accent)
		content = textutil.Wrap(p.Body, width-box.GetHorizontalPadding())
		if p.Title != "" {
			content = lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Title) + "\n\n" + content
		}
	case Quit:
		box = box.BorderForeground(p.Accent)
		content = p.Body
	default:
		box = box.BorderForeground(lipgloss.Color("63"))
		content = p.Body
	}
	if p.Hint != "" {
		content += "\n\n" + lipgloss.NewStyle().Faint(true).Render(p.Hint)
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box.Render(content))
}

// BoxWidth returns the width of the joke box for a screen of the given
// width, excluding the border.
func BoxWidth(screen int) int {
	width := screen - metrics.ModalFramePadding
	if width > metrics.ModalMaxWidth {
		width = metrics.ModalMaxWidth
	}
	if width < metrics.ModalMinWidth {
		width = metrics.ModalMinWidth
	}
	return width
}
