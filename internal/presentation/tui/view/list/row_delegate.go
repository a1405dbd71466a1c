// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jokey/internal/presentation/tui/metrics"
	"github.com/tesso57/jokey/internal/presentation/tui/textutil"
)

// RowItem is implemented by items that RowDelegate can render.
type RowItem interface {
	list.Item
	Title() string
	Badge() string
	IsTop() bool
	Depth() int
	IsExpanded() bool
	IsLoading() bool
	IsAction() bool
	IsPlaceholder() bool
}

// Theme holds the colors used by RowDelegate.
type Theme struct {
	Category lipgloss.Color
	TopBadge lipgloss.Color
	GoTop    lipgloss.Color
	Accent   lipgloss.Color
}

// RowDelegate renders category rows and the rows nested under them.
type RowDelegate struct {
	Styles  list.DefaultItemStyles
	Theme   Theme
	Spinner func() string
}

// NewRowDelegate creates a new RowDelegate. spinner, when set, supplies the
// frame drawn in front of loading rows.
func NewRowDelegate(theme Theme, spinner func() string) *RowDelegate {
	return &RowDelegate{
		Styles:  withItemPadding(list.NewDefaultItemStyles()),
		Theme:   theme,
		Spinner: spinner,
	}
}

// Height returns the height of the item.
func (d *RowDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *RowDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *RowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *RowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(RowItem)
	if !ok {
		return
	}

	style := itemStyle(d.Styles, m, index)
	if i.Depth() == 0 {
		d.renderCategory(w, m, style, i, index == m.Index())
		return
	}

	text := i.Title()
	if i.IsLoading() && d.Spinner != nil {
		text = d.Spinner() + " " + text
	}
	text = truncateItemText(m, style, strings.Repeat(" ", metrics.ItemIndent)+text)

	switch {
	case i.IsAction():
		text = lipgloss.NewStyle().Foreground(d.Theme.Accent).Render(text)
	case i.IsPlaceholder():
		text = lipgloss.NewStyle().Faint(true).Render(text)
	}
	renderItemText(w, style, text)
}

func (d *RowDelegate) renderCategory(w io.Writer, m list.Model, style lipgloss.Style, i RowItem, selected bool) {
	marker := "▸"
	if i.IsExpanded() {
		marker = "▾"
	}

	badgeColor := d.Theme.GoTop
	if i.IsTop() {
		badgeColor = d.Theme.TopBadge
	}
	badge := lipgloss.NewStyle().Foreground(badgeColor).Render("[" + i.Badge() + "]")

	maxWidth := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding - lipgloss.Width(badge) - 1
	name := textutil.Truncate(marker+" "+i.Title(), maxWidth)
	if !selected {
		name = lipgloss.NewStyle().Foreground(d.Theme.Category).Render(name)
	}
	renderItemText(w, style, name+" "+badge)
}
