package presenter

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jokey/internal/domain/joke"
	"github.com/tesso57/jokey/internal/presentation/tui/intent"
)

func titles(items []list.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.(*Row).Title())
	}
	return out
}

func TestBuildRows_Collapsed(t *testing.T) {
	browse := joke.NewState().WithCategories([]string{"Programming", "Misc", "Pun"})

	items := BuildRows(browse, 6)
	assert.Equal(t, []string{"1. Programming", "2. Misc", "3. Pun"}, titles(items))

	first := items[0].(*Row)
	second := items[1].(*Row)
	assert.Equal(t, "Top", first.Badge())
	assert.Equal(t, "Go Top", second.Badge())
}

func TestBuildRows_ExpandedStates(t *testing.T) {
	browse := joke.NewState().WithCategories([]string{"Programming", "Misc", "Pun", "Dark"})
	browse, _ = browse.ToggleExpanded("Programming")
	browse = browse.ApplyJokes("Programming", []string{"j1", "j2"}, false)
	browse, _ = browse.ToggleExpanded("Misc")
	browse = browse.StartFetch("Misc")
	browse, _ = browse.ToggleExpanded("Pun")
	browse = browse.ApplyJokes("Pun", nil, false)

	items := BuildRows(browse, 6)
	assert.Equal(t, []string{
		"1. Programming", "j1", "j2", "Add More +",
		"2. Misc", "Loading...",
		"3. Pun", "No Data", "Add More +",
		"4. Dark",
	}, titles(items))
}

func TestBuildRows_AddMoreHiddenAtLimit(t *testing.T) {
	browse := joke.NewState().WithCategories([]string{"Misc"})
	browse, _ = browse.ToggleExpanded("Misc")
	browse = browse.ApplyJokes("Misc", []string{"1", "2", "3", "4", "5", "6"}, false)

	items := BuildRows(browse, 6)
	require.Len(t, items, 7)
	assert.NotEqual(t, AddMoreRow, items[len(items)-1].(*Row).Kind)

	unlimited := BuildRows(browse, 0)
	assert.Equal(t, AddMoreRow, unlimited[len(unlimited)-1].(*Row).Kind)
}

func TestBuildRows_FailedFetchShowsNoData(t *testing.T) {
	browse := joke.NewState().WithCategories([]string{"Misc"})
	browse, _ = browse.ToggleExpanded("Misc")
	browse = browse.StartFetch("Misc").FinishFetch("Misc")

	assert.Equal(t, []string{"1. Misc", "No Data"}, titles(BuildRows(browse, 6)))
}

func TestRowResolve(t *testing.T) {
	category := &Row{Kind: CategoryRow, Category: "Misc"}
	jokeRow := &Row{Kind: JokeRow, Category: "Misc", Joke: "a joke"}
	more := &Row{Kind: AddMoreRow, Category: "Misc"}
	loading := &Row{Kind: LoadingRow, Category: "Misc"}

	tests := []struct {
		name string
		row  *Row
		in   intent.Type
		want intent.Intent
	}{
		{"open category toggles", category, intent.Open, intent.Intent{Type: intent.Toggle, Category: "Misc"}},
		{"open joke selects", jokeRow, intent.Open, intent.Intent{Type: intent.Select, Category: "Misc", Joke: "a joke"}},
		{"open add more loads", more, intent.Open, intent.Intent{Type: intent.LoadMore, Category: "Misc"}},
		{"open loading does nothing", loading, intent.Open, intent.Intent{Type: intent.None}},
		{"move to top from joke uses its category", jokeRow, intent.MoveToTop, intent.Intent{Type: intent.MoveToTop, Category: "Misc"}},
		{"load more from joke uses its category", jokeRow, intent.LoadMore, intent.Intent{Type: intent.LoadMore, Category: "Misc"}},
		{"refresh passes through", category, intent.Refresh, intent.Intent{Type: intent.Refresh}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.Resolve(tt.in))
		})
	}
}

func TestRowTitle_CollapsesWhitespace(t *testing.T) {
	row := &Row{Kind: JokeRow, Joke: "line one\n  line two"}
	assert.Equal(t, "line one line two", row.Title())
	assert.Equal(t, "line one\n  line two", row.FilterValue())
}

func TestApplyRows_KeepsFocus(t *testing.T) {
	browse := joke.NewState().WithCategories([]string{"a", "b", "c"})
	model := list.New(nil, list.NewDefaultDelegate(), 0, 0)

	ApplyRows(&model, browse, 6, "")
	model.Select(2)

	browse = browse.MoveToTop("c")
	ApplyRows(&model, browse, 6, CategoryKey("c"))
	row, ok := SelectedRow(model)
	require.True(t, ok)
	assert.Equal(t, "c", row.Category)
	assert.Equal(t, 0, model.Index())

	browse, _ = browse.ToggleExpanded("c")
	browse = browse.ApplyJokes("c", []string{"j"}, false)
	ApplyRows(&model, browse, 6, "")
	assert.Equal(t, 0, model.Index())

	model.Select(2)
	ApplyRows(&model, browse, 6, "")
	row, ok = SelectedRow(model)
	require.True(t, ok)
	assert.Equal(t, AddMoreRow, row.Kind)

	ApplyRows(&model, browse.StartFetch("c"), 6, "")
	assert.Equal(t, 2, model.Index())
}

func TestApplyRows_ClampsWhenRowsShrink(t *testing.T) {
	browse := joke.NewState().WithCategories([]string{"a"})
	browse, _ = browse.ToggleExpanded("a")
	browse = browse.ApplyJokes("a", []string{"j1", "j2"}, false)

	model := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	ApplyRows(&model, browse, 6, "")
	model.Select(3)

	collapsed, _ := browse.ToggleExpanded("a")
	ApplyRows(&model, collapsed, 6, "")
	assert.Equal(t, 0, model.Index())

	ApplyRows(&model, joke.NewState(), 6, "")
	assert.Empty(t, model.Items())
	_, ok := SelectedRow(model)
	assert.False(t, ok)
}
