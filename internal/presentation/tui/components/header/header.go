// Package header provides the module header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Title   string
	Status  string
	Accent  lipgloss.Color
}

// Render renders the header component. It always takes two lines so the
// list below does not jump when the status appears.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Render(p.Title)
	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(p.Status)
	return title + "\n" + status
}
