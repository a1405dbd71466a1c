package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jokey/internal/presentation/tui/metrics"
	"github.com/tesso57/jokey/internal/presentation/tui/state"
)

// mainPaddingLeft matches the left padding of the main view.
const mainPaddingLeft = 1

// UpdateListSizes fits the list between the header and the footer.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	width, height := listSize(s)
	s.List.SetSize(width, height)
}

func listSize(s *state.ModelState) (int, int) {
	availableHeight := clampMin(s.Height-footerHeight(s), 1)
	height := clampMin(availableHeight-metrics.HeaderLines, 1)
	height = reservePaginationSpace(s.List, height)
	return clampMin(s.Width-mainPaddingLeft, 1), height
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(FooterText(s))
}

// FooterText returns the footer shown below the list.
func FooterText(s *state.ModelState) string {
	helpText := s.Help.ShortHelpView(s.Keys.ShortHelp())
	return state.FooterText(s.Session, s.Browse.LoadingCategories(), helpText)
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
