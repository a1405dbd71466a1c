package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jokey/internal/application/settings"
	"github.com/tesso57/jokey/internal/application/usecase"
	"github.com/tesso57/jokey/internal/domain/joke"
	"github.com/tesso57/jokey/internal/presentation/tui/state"
	"github.com/tesso57/jokey/internal/presentation/tui/update"
	"github.com/tesso57/jokey/internal/presentation/tui/view"
	listview "github.com/tesso57/jokey/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	jokes    usecase.JokeService
	logger   *slog.Logger
	state    *state.ModelState
}

// NewModel creates a new application model. A nil logger discards
// diagnostics.
func NewModel(cfg settings.Settings, jokes usecase.JokeService, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Model{
		settings: cfg,
		jokes:    jokes,
		logger:   logger,
		state:    newModelState(cfg),
	}
}

// Init starts the spinner and the first category fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.state.Spinner.Tick,
		update.FetchCategoriesCmd(&m.jokes, m.state.Browse.Generation),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.CategoriesFetchedMsg:
		update.HandleCategoriesFetchedMsg(m.state, msg, m.deps())
	case update.JokesFetchedMsg:
		update.HandleJokesFetchedMsg(m.state, msg, m.deps())
	}

	if m.state.Browse.Busy() {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.Session == state.ListView && !m.state.Help.ShowAll {
		m.state.List, cmd = m.state.List.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Jokes:  &m.jokes,
		Logger: m.logger,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:  state.ListView,
		Browse:   joke.NewState().SetRefreshing(true),
		Help:     help.New(),
		Spinner:  newSpinner(cfg.Theme),
		Keys:     state.NewKeyMap(cfg.KeyMap),
		MaxJokes: cfg.API.MaxJokes,
	}
	st.List = newCategoryList(cfg.Theme, st)

	st.List.KeyMap.CursorUp = st.Keys.Up
	st.List.KeyMap.CursorDown = st.Keys.Down
	st.List.KeyMap.PrevPage = st.Keys.UpPage
	st.List.KeyMap.NextPage = st.Keys.DownPage
	st.List.KeyMap.GoToStart = st.Keys.Top
	st.List.KeyMap.GoToEnd = st.Keys.Bottom

	return st
}

func newCategoryList(theme settings.ThemeConfig, st *state.ModelState) list.Model {
	delegate := listview.NewRowDelegate(listview.Theme{
		Category: lipgloss.Color(theme.Category),
		TopBadge: lipgloss.Color(theme.TopBadge),
		GoTop:    lipgloss.Color(theme.GoTop),
		Accent:   lipgloss.Color(theme.Accent),
	}, func() string { return st.Spinner.View() })

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Joke Categories"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner(theme settings.ThemeConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	return s
}
