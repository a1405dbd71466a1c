package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/jokey/internal/application/settings"
	"github.com/tesso57/jokey/internal/application/usecase"
	"github.com/tesso57/jokey/internal/presentation/tui/update"
)

type stubJokeSource struct {
	mock.Mock
}

func (s *stubJokeSource) Categories(ctx context.Context) ([]string, error) {
	args := s.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

func (s *stubJokeSource) Jokes(ctx context.Context, category string, amount int) ([]string, error) {
	args := s.Called(ctx, category, amount)
	jokes, _ := args.Get(0).([]string)
	return jokes, args.Error(1)
}

func testSettings() settings.Settings {
	return settings.Settings{
		API: settings.APIConfig{Amount: 2, MaxJokes: 6},
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", UpPage: "ctrl+u", DownPage: "ctrl+d",
			Top: "g", Bottom: "G", Open: "enter,l", Back: "esc,h", Quit: "q",
			MoveToTop: "t", LoadMore: "m", Refresh: "r",
		},
		Theme: settings.ThemeConfig{
			Category: "#2642CA", TopBadge: "#FFAA46", GoTop: "#6AD2FF", Accent: "205",
		},
	}
}

func newTestModel(source usecase.JokeSource) *Model {
	cfg := testSettings()
	svc := usecase.NewJokeService(source, cfg.API.Amount, 0, nil)
	m := NewModel(cfg, svc, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// drain runs cmd and feeds every fetch result back into the model until no
// fetch is pending.
func drain(m *Model, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		_, next := m.Update(msg)
		drain(m, next)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
	case update.CategoriesFetchedMsg, update.JokesFetchedMsg:
		out = append(out, msg)
	}
	return out
}

func press(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func pressKey(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}
