// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jokey/internal/application/usecase"
	"github.com/tesso57/jokey/internal/presentation/tui/intent"
	"github.com/tesso57/jokey/internal/presentation/tui/presenter"
	"github.com/tesso57/jokey/internal/presentation/tui/state"
)

var errNoService = errors.New("joke service is not configured")

// Deps groups external dependencies for updates.
type Deps struct {
	Jokes  *usecase.JokeService
	Logger *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// CategoriesFetchedMsg is emitted after a category fetch settles.
type CategoriesFetchedMsg struct {
	Generation uint64
	Categories []string
	Err        error
}

// JokesFetchedMsg is emitted after a joke fetch settles, successfully or
// not.
type JokesFetchedMsg struct {
	Generation uint64
	Category   string
	Append     bool
	Jokes      []string
	Err        error
}

// FetchCategoriesCmd creates a command that fetches the category list.
func FetchCategoriesCmd(svc *usecase.JokeService, generation uint64) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return CategoriesFetchedMsg{Generation: generation, Err: errNoService}
		}
		categories, err := svc.FetchCategories(context.Background())
		return CategoriesFetchedMsg{Generation: generation, Categories: categories, Err: err}
	}
}

// FetchJokesCmd creates a command that fetches a batch of jokes for
// category.
func FetchJokesCmd(svc *usecase.JokeService, generation uint64, category string, appendMode bool) tea.Cmd {
	return func() tea.Msg {
		msg := JokesFetchedMsg{Generation: generation, Category: category, Append: appendMode}
		if svc == nil {
			msg.Err = errNoService
			return msg
		}
		msg.Jokes, msg.Err = svc.FetchJokes(context.Background(), category)
		return msg
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Help.ShowAll = false
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}

	if s.Help.ShowAll {
		if parsed.Type == intent.ToggleHelp || parsed.Type == intent.Back {
			s.Help.ShowAll = false
		}
		return nil, true
	}

	switch s.Session {
	case state.JokeView:
		return handleJokeViewIntent(s, parsed)
	case state.ListView:
		return handleListViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleJokeViewIntent(s *state.ModelState, in intent.Intent) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back, intent.Open:
		s.Browse = s.Browse.CloseModal()
		s.Session = state.ListView
	case intent.ToggleHelp:
		s.Help.ShowAll = true
	}
	return nil, true
}

func handleListViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.Refresh:
		return Dispatch(s, in, deps), true
	case intent.Open, intent.MoveToTop, intent.LoadMore:
		row, ok := presenter.SelectedRow(s.List)
		if !ok {
			return nil, true
		}
		return Dispatch(s, row.Resolve(in.Type), deps), true
	case intent.Back:
		row, ok := presenter.SelectedRow(s.List)
		if !ok || !s.Browse.IsExpanded(row.Category) {
			return nil, true
		}
		return Dispatch(s, intent.Intent{Type: intent.Toggle, Category: row.Category}, deps), true
	default:
		return nil, false
	}
}

// Dispatch applies a concrete intent to the browse state and returns the
// fetch command it requires, if any.
func Dispatch(s *state.ModelState, in intent.Intent, deps Deps) tea.Cmd {
	switch in.Type {
	case intent.Toggle:
		browse, needsLoad := s.Browse.ToggleExpanded(in.Category)
		s.Browse = browse
		var cmd tea.Cmd
		if needsLoad {
			cmd = startJokeFetch(s, in.Category, false, deps)
		}
		applyRows(s, presenter.CategoryKey(in.Category))
		return cmd
	case intent.LoadMore:
		if !s.Browse.CanLoadMore(in.Category, s.MaxJokes) {
			return nil
		}
		cmd := startJokeFetch(s, in.Category, true, deps)
		applyRows(s, presenter.LoadingKey(in.Category))
		return cmd
	case intent.MoveToTop:
		if in.Category == "" {
			return nil
		}
		s.Browse = s.Browse.MoveToTop(in.Category)
		applyRows(s, presenter.CategoryKey(in.Category))
		return nil
	case intent.Select:
		s.Browse = s.Browse.SelectJoke(in.Joke).OpenModal()
		s.JokeCategory = in.Category
		s.Session = state.JokeView
		return nil
	case intent.Refresh:
		s.Browse = s.Browse.Reset()
		applyRows(s, "")
		s.List.ResetSelected()
		deps.logger().Debug("refreshing categories", "generation", s.Browse.Generation)
		return tea.Batch(s.Spinner.Tick, FetchCategoriesCmd(deps.Jokes, s.Browse.Generation))
	default:
		return nil
	}
}

func startJokeFetch(s *state.ModelState, category string, appendMode bool, deps Deps) tea.Cmd {
	s.Browse = s.Browse.StartFetch(category)
	return tea.Batch(s.Spinner.Tick, FetchJokesCmd(deps.Jokes, s.Browse.Generation, category, appendMode))
}

// HandleWindowSize records the terminal size and resizes the list.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

// HandleCategoriesFetchedMsg applies a category result. Results from an
// older generation are dropped; failures leave the list as it is.
func HandleCategoriesFetchedMsg(s *state.ModelState, msg CategoriesFetchedMsg, deps Deps) {
	if !s.Browse.IsCurrent(msg.Generation) {
		deps.logger().Debug("discarding stale category result",
			"generation", msg.Generation, "current", s.Browse.Generation)
		return
	}
	if msg.Err == nil {
		s.Browse = s.Browse.WithCategories(msg.Categories)
	}
	s.Browse = s.Browse.SetRefreshing(false)
	applyRows(s, "")
	UpdateListSizes(s)
}

// HandleJokesFetchedMsg applies a joke result and clears the loading flag.
// Results from an older generation are dropped without touching any flag.
func HandleJokesFetchedMsg(s *state.ModelState, msg JokesFetchedMsg, deps Deps) {
	if !s.Browse.IsCurrent(msg.Generation) {
		deps.logger().Debug("discarding stale joke result",
			"category", msg.Category, "generation", msg.Generation, "current", s.Browse.Generation)
		return
	}
	if msg.Err == nil {
		s.Browse = s.Browse.ApplyJokes(msg.Category, msg.Jokes, msg.Append)
	}
	s.Browse = s.Browse.FinishFetch(msg.Category)
	applyRows(s, "")
	UpdateListSizes(s)
}

func applyRows(s *state.ModelState, focus string) {
	presenter.ApplyRows(&s.List, s.Browse, s.MaxJokes, focus)
}
