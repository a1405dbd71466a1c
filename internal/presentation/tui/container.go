// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jokey/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/jokey/internal/presentation/tui/components/main"
	"github.com/tesso57/jokey/internal/presentation/tui/components/modal"
	"github.com/tesso57/jokey/internal/presentation/tui/metrics"
	"github.com/tesso57/jokey/internal/presentation/tui/state"
	"github.com/tesso57/jokey/internal/presentation/tui/update"
	"github.com/tesso57/jokey/internal/presentation/tui/view"
)

const appTitle = "Joke Categories"

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: update.FooterText(m.state),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	status := fmt.Sprintf("%d categories", len(m.state.Browse.Categories))
	if m.state.Browse.Refreshing {
		status = m.state.Spinner.View() + " Refreshing..."
	}
	return header.Props{
		Visible: true,
		Title:   appTitle,
		Status:  status,
		Accent:  m.accent(),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch {
	case len(m.state.Browse.Categories) > 0:
		body = m.state.List.View()
	case m.state.Browse.Refreshing:
		body = fmt.Sprintf("\n   %s Loading categories...", m.state.Spinner.View())
	default:
		body = fmt.Sprintf("\n   No categories. Press %s to refresh.", m.state.Keys.Refresh.Help().Key)
	}

	return mainview.Props{
		Width:  m.state.Width,
		Height: m.state.List.Height() + metrics.HeaderLines,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	base := modal.Props{
		Visible: true,
		Accent:  m.accent(),
		Width:   m.state.Width,
		Height:  m.state.Height,
	}

	switch {
	case m.state.Session == state.QuitView:
		base.Kind = modal.Quit
		base.Body = "Are you sure you want to quit?"
		base.Hint = "(y/n)"
	case m.state.Help.ShowAll:
		base.Kind = modal.Help
		base.Body = m.state.Help.FullHelpView(m.state.Keys.FullHelp())
		base.Hint = "(? or esc to close)"
	case m.state.Session == state.JokeView && m.state.Browse.ModalOpen:
		base.Kind = modal.Joke
		base.Title = m.state.JokeCategory
		base.Body = m.state.Browse.Selected
		base.Hint = fmt.Sprintf("(%s to close)", m.state.Keys.Back.Help().Key)
	default:
		return modal.Props{Visible: false}
	}
	return base
}

func (m *Model) accent() lipgloss.Color {
	return lipgloss.Color(m.settings.Theme.Accent)
}
