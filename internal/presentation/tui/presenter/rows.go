// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/jokey/internal/domain/joke"
	"github.com/tesso57/jokey/internal/presentation/tui/intent"
	"github.com/tesso57/jokey/internal/presentation/tui/textutil"
)

// Kind identifies what a list row shows.
type Kind int

const (
	CategoryRow Kind = iota
	JokeRow
	LoadingRow
	EmptyRow
	AddMoreRow
)

// Row is a view model for one line of the category list.
type Row struct {
	Kind      Kind
	Category  string
	Position  int
	Expanded  bool
	Joke      string
	JokeIndex int
}

// FilterValue implements list.Item.
func (r *Row) FilterValue() string {
	if r.Kind == JokeRow {
		return r.Joke
	}
	return r.Category
}

// Key identifies the row across rebuilds.
func (r *Row) Key() string {
	switch r.Kind {
	case JokeRow:
		return fmt.Sprintf("%d:%s:%d", r.Kind, r.Category, r.JokeIndex)
	default:
		return fmt.Sprintf("%d:%s", r.Kind, r.Category)
	}
}

// Title returns the display text of the row.
func (r *Row) Title() string {
	switch r.Kind {
	case CategoryRow:
		return fmt.Sprintf("%d. %s", r.Position+1, r.Category)
	case JokeRow:
		return textutil.SingleLine(r.Joke)
	case LoadingRow:
		return "Loading..."
	case EmptyRow:
		return "No Data"
	case AddMoreRow:
		return "Add More +"
	default:
		return ""
	}
}

// Badge returns the reorder badge of a category row.
func (r *Row) Badge() string {
	if r.Kind != CategoryRow {
		return ""
	}
	if r.IsTop() {
		return "Top"
	}
	return "Go Top"
}

// IsTop reports whether the row belongs to the first category.
func (r *Row) IsTop() bool { return r.Position == 0 }

// Depth is 0 for category rows and 1 for the rows nested under them.
func (r *Row) Depth() int {
	if r.Kind == CategoryRow {
		return 0
	}
	return 1
}

// IsExpanded reports whether a category row is expanded.
func (r *Row) IsExpanded() bool { return r.Kind == CategoryRow && r.Expanded }

// IsLoading reports whether the row is a loading placeholder.
func (r *Row) IsLoading() bool { return r.Kind == LoadingRow }

// IsAction reports whether the row triggers a fetch when opened.
func (r *Row) IsAction() bool { return r.Kind == AddMoreRow }

// IsPlaceholder reports whether the row stands in for missing content.
func (r *Row) IsPlaceholder() bool { return r.Kind == LoadingRow || r.Kind == EmptyRow }

// Resolve turns a generic intent into the concrete intent for this row.
func (r *Row) Resolve(t intent.Type) intent.Intent {
	switch t {
	case intent.Open:
		switch r.Kind {
		case CategoryRow:
			return intent.Intent{Type: intent.Toggle, Category: r.Category}
		case JokeRow:
			return intent.Intent{Type: intent.Select, Category: r.Category, Joke: r.Joke}
		case AddMoreRow:
			return intent.Intent{Type: intent.LoadMore, Category: r.Category}
		default:
			return intent.Intent{Type: intent.None}
		}
	case intent.MoveToTop, intent.LoadMore:
		return intent.Intent{Type: t, Category: r.Category}
	default:
		return intent.Intent{Type: t}
	}
}

// BuildRows flattens the browse state into list rows. Expanded categories
// are followed by their jokes, a loading line or "No Data", and an add-more
// row while more jokes may be fetched.
func BuildRows(browse joke.State, maxJokes int) []list.Item {
	items := make([]list.Item, 0, len(browse.Categories))
	for i, category := range browse.Categories {
		expanded := browse.IsExpanded(category)
		items = append(items, &Row{Kind: CategoryRow, Category: category, Position: i, Expanded: expanded})
		if !expanded {
			continue
		}

		switch browse.Status(category) {
		case joke.ExpandedLoading:
			items = append(items, &Row{Kind: LoadingRow, Category: category, Position: i})
		case joke.ExpandedLoaded:
			jokes, _ := browse.CachedJokes(category)
			for j, text := range jokes {
				items = append(items, &Row{Kind: JokeRow, Category: category, Position: i, Joke: text, JokeIndex: j})
			}
		default:
			items = append(items, &Row{Kind: EmptyRow, Category: category, Position: i})
		}

		if browse.CanLoadMore(category, maxJokes) {
			items = append(items, &Row{Kind: AddMoreRow, Category: category, Position: i})
		}
	}
	return items
}

// ApplyRows rebuilds the list and keeps the cursor on the row identified by
// focus. An empty focus keeps the row that is currently selected. When that
// row is gone the cursor stays at the same index, clamped to the list.
func ApplyRows(model *list.Model, browse joke.State, maxJokes int, focus string) {
	if focus == "" {
		if row, ok := model.SelectedItem().(*Row); ok {
			focus = row.Key()
		}
	}
	prev := model.Index()

	items := BuildRows(browse, maxJokes)
	model.SetItems(items)

	for i, item := range items {
		if row, ok := item.(*Row); ok && row.Key() == focus {
			model.Select(i)
			return
		}
	}
	switch {
	case len(items) == 0:
		model.ResetSelected()
	case prev >= len(items):
		model.Select(len(items) - 1)
	default:
		model.Select(prev)
	}
}

// SelectedRow returns the row under the cursor.
func SelectedRow(model list.Model) (*Row, bool) {
	row, ok := model.SelectedItem().(*Row)
	return row, ok && row != nil
}

// CategoryKey returns the focus key of a category row.
func CategoryKey(category string) string {
	return (&Row{Kind: CategoryRow, Category: category}).Key()
}

// LoadingKey returns the focus key of a category's loading row.
func LoadingKey(category string) string {
	return (&Row{Kind: LoadingRow, Category: category}).Key()
}
