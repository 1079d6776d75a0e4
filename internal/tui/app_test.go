package tui

import (
	"errors"
	"testing"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/domain/mocks"
	"github.com/NewsReader/internal/reader"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and every batched command except spinner ticks and
// returns the messages they produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		out = append(out, c())
	}
	return out
}

func fetchDone(t *testing.T, cmd tea.Cmd) fetchDoneMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if done, ok := msg.(fetchDoneMsg); ok {
			return done
		}
	}
	require.FailNow(t, "no fetch issued")
	return fetchDoneMsg{}
}

func newTestApp(t *testing.T, gw *mocks.MockNewsGateway, themes domain.ThemeRepository) *App {
	t.Helper()
	app := NewApp(RunOpts{Controller: reader.NewController(gw), Themes: themes})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func lightThemes() *mocks.MockThemeRepository {
	repo := new(mocks.MockThemeRepository)
	repo.On("LoadTheme").Return(domain.ThemeLight, nil)
	return repo
}

func TestApp_InitialLoad(t *testing.T) {
	gw := new(mocks.MockNewsGateway)
	gw.On("Fetch", mock.Anything, domain.ProxyRequest{Endpoint: domain.EndpointTopHeadlines, Category: "general"}).
		Return([]domain.Article{{Title: "Hello", URL: "https://example.com"}, {Title: domain.RemovedTitle}}, nil).Once()
	app := newTestApp(t, gw, lightThemes())

	cmd := app.Init()
	assert.True(t, app.state.Loading)
	assert.Contains(t, app.View(), reader.LoadingText)

	app.Update(fetchDone(t, cmd))

	assert.False(t, app.state.Loading)
	require.Len(t, app.state.Articles, 1)
	view := app.View()
	assert.Contains(t, view, "Top General Headlines")
	assert.Contains(t, view, "Hello")
	assert.Contains(t, view, footerText)
	gw.AssertExpectations(t)
}

func TestApp_SearchFlow(t *testing.T) {
	gw := new(mocks.MockNewsGateway)
	gw.On("Fetch", mock.Anything, domain.ProxyRequest{Endpoint: domain.EndpointEverything, Q: "mars"}).
		Return([]domain.Article{{Title: "Rover"}}, nil).Once()
	app := newTestApp(t, gw, lightThemes())

	app.Update(keyRunes("/"))
	require.Equal(t, modeSearch, app.mode)
	for _, r := range " mars " {
		app.Update(keyRunes(string(r)))
	}
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeNormal, app.mode)

	app.Update(fetchDone(t, cmd))

	assert.Equal(t, `Results for: "mars"`, app.state.Heading())
	assert.Equal(t, -1, app.activeTab(), "no category is highlighted while searching")
	gw.AssertExpectations(t)
}

func TestApp_CategoryKeyClearsSearch(t *testing.T) {
	gw := new(mocks.MockNewsGateway)
	gw.On("Fetch", mock.Anything, domain.ProxyRequest{Endpoint: domain.EndpointTopHeadlines, Category: "sports"}).
		Return([]domain.Article{}, nil).Once()
	app := newTestApp(t, gw, lightThemes())

	_, cmd := app.Update(keyRunes("3"))
	app.Update(fetchDone(t, cmd))

	assert.Equal(t, "Top Sports Headlines", app.state.Heading())
	assert.Equal(t, 2, app.activeTab())
	assert.Contains(t, app.View(), reader.EmptyText)
	gw.AssertExpectations(t)
}

func TestApp_ErrorBanner(t *testing.T) {
	gw := new(mocks.MockNewsGateway)
	gw.On("Fetch", mock.Anything, mock.Anything).
		Return(nil, &domain.FetchError{StatusCode: 500, Message: "boom"}).Once()
	app := newTestApp(t, gw, lightThemes())

	app.Update(fetchDone(t, app.Init()))

	assert.Equal(t, "Failed to fetch news: boom.", app.state.Err)
	assert.Contains(t, app.View(), "Error: Failed to fetch news: boom.")
	assert.NotContains(t, app.View(), reader.EmptyText)
}

func TestApp_StaleFetchIgnored(t *testing.T) {
	gw := new(mocks.MockNewsGateway)
	gw.On("Fetch", mock.Anything, domain.ProxyRequest{Endpoint: domain.EndpointTopHeadlines, Category: "general"}).
		Return([]domain.Article{{Title: "general"}}, nil)
	gw.On("Fetch", mock.Anything, domain.ProxyRequest{Endpoint: domain.EndpointTopHeadlines, Category: "health"}).
		Return([]domain.Article{{Title: "health"}}, nil)
	app := newTestApp(t, gw, lightThemes())

	initial := app.Init()
	_, healthCmd := app.Update(keyRunes("5"))

	app.Update(fetchDone(t, healthCmd))
	app.Update(fetchDone(t, initial))

	require.Len(t, app.state.Articles, 1)
	assert.Equal(t, "health", app.state.Articles[0].Title)
}

func TestApp_ThemeToggleIsPersisted(t *testing.T) {
	repo := new(mocks.MockThemeRepository)
	repo.On("LoadTheme").Return(domain.ThemeDark, nil)
	repo.On("SaveTheme", domain.ThemeLight).Return(nil).Once()
	app := newTestApp(t, new(mocks.MockNewsGateway), repo)
	require.Equal(t, domain.ThemeDark, app.theme)

	_, cmd := app.Update(keyRunes("t"))
	for _, msg := range collect(cmd) {
		app.Update(msg)
	}

	assert.Equal(t, domain.ThemeLight, app.theme)
	assert.Empty(t, app.notice)
	repo.AssertExpectations(t)
}

func TestApp_ThemeSaveFailureShowsNotice(t *testing.T) {
	repo := new(mocks.MockThemeRepository)
	repo.On("LoadTheme").Return(domain.ThemeLight, nil)
	repo.On("SaveTheme", domain.ThemeDark).Return(errors.New("read-only")).Once()
	app := newTestApp(t, new(mocks.MockNewsGateway), repo)

	_, cmd := app.Update(keyRunes("t"))
	for _, msg := range collect(cmd) {
		app.Update(msg)
	}

	assert.Equal(t, domain.ThemeDark, app.theme)
	assert.Equal(t, "Could not save theme preference", app.notice)
}

func TestApp_OpenSelectedArticle(t *testing.T) {
	gw := new(mocks.MockNewsGateway)
	gw.On("Fetch", mock.Anything, mock.Anything).
		Return([]domain.Article{{Title: "A", URL: "https://a.example"}, {Title: "B", URL: "https://b.example"}}, nil)
	var opened string
	app := NewApp(RunOpts{
		Controller: reader.NewController(gw),
		Open:       func(url string) error { opened = url; return nil },
	})
	app.Update(fetchDone(t, app.Init()))

	app.Update(keyRunes("j"))
	_, cmd := app.Update(keyRunes("o"))
	collect(cmd)

	assert.Equal(t, "https://b.example", opened)
}
