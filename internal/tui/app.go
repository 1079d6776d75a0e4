package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/reader"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle   = "News Feed"
	footerText = "Data provided by NewsAPI.org"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
)

type fetchDoneMsg struct {
	result reader.Result
}

type themeSavedMsg struct {
	err error
}

type openErrMsg struct {
	err error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Controller   *reader.Controller
	Themes       domain.ThemeRepository
	Open         func(url string) error
	FetchTimeout time.Duration
}

type App struct {
	ctrl         *reader.Controller
	themes       domain.ThemeRepository
	open         func(string) error
	fetchTimeout time.Duration

	state  reader.State
	theme  domain.Theme
	styles styles
	mode   mode
	cursor int
	notice string

	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model
}

func NewApp(opts RunOpts) *App {
	theme := domain.ThemeLight
	if opts.Themes != nil {
		loaded, err := opts.Themes.LoadTheme()
		if err != nil {
			slog.Warn("Failed to load theme", "error", err)
		} else {
			theme = loaded
		}
	}

	a := &App{
		ctrl:         opts.Controller,
		themes:       opts.Themes,
		open:         opts.Open,
		fetchTimeout: opts.FetchTimeout,
		state:        opts.Controller.State(),
	}

	a.searchInput = textinput.New()
	a.searchInput.Placeholder = "Search for news..."
	a.searchInput.CharLimit = 100

	a.spinner = spinner.New()
	a.spinner.Spinner = spinner.MiniDot

	a.applyTheme(theme)
	return a
}

func (a *App) applyTheme(theme domain.Theme) {
	a.theme = theme
	a.styles = newStyles(theme)
	a.searchInput.Prompt = a.styles.searchPrompt.Render("/ ")
	a.spinner.Style = a.styles.spinner
}

// Init issues the initial fetch for the default category.
func (a *App) Init() tea.Cmd {
	return a.begin(a.ctrl.Refresh())
}

func (a *App) begin(s reader.State, f reader.Fetch) tea.Cmd {
	a.state = s
	a.cursor = 0
	return tea.Batch(a.fetchCmd(f), a.spinner.Tick)
}

func (a *App) fetchCmd(f reader.Fetch) tea.Cmd {
	timeout := a.fetchTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return fetchDoneMsg{result: f.Run(ctx)}
	}
}

func (a *App) saveThemeCmd(theme domain.Theme) tea.Cmd {
	repo := a.themes
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		return themeSavedMsg{err: repo.SaveTheme(theme)}
	}
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	if open == nil {
		return nil
	}
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.notice = ""
		return a.handleKey(msg)

	case fetchDoneMsg:
		a.state = a.ctrl.Complete(msg.result)
		if a.cursor >= len(a.state.Articles) {
			a.cursor = max(0, len(a.state.Articles)-1)
		}
		return a, nil

	case themeSavedMsg:
		if msg.err != nil {
			slog.Warn("Failed to save theme", "error", msg.err)
			a.notice = "Could not save theme preference"
		}
		return a, nil

	case openErrMsg:
		a.notice = msg.err.Error()
		return a, nil

	case spinner.TickMsg:
		if a.state.Loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.mode == modeSearch {
		return a.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.state.Articles)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.SetValue(a.state.Query.SearchTerm)
		a.searchInput.CursorEnd()
		a.searchInput.Focus()
		return a, textinput.Blink
	case "esc":
		if a.state.Query.Mode() == reader.Searching {
			return a, a.begin(a.ctrl.Search(""))
		}
		return a, nil
	case "left", "h":
		return a, a.selectCategory(a.activeTab() - 1)
	case "right", "l":
		return a, a.selectCategory(a.activeTab() + 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return a, a.selectCategory(int(msg.String()[0] - '1'))
	case "r":
		return a, a.begin(a.ctrl.Refresh())
	case "t":
		next := a.theme.Toggle()
		a.applyTheme(next)
		return a, a.saveThemeCmd(next)
	case "o", "enter":
		if a.cursor < len(a.state.Articles) {
			return a, a.openCmd(a.state.Articles[a.cursor].URL)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, a.begin(a.ctrl.Search(a.searchInput.Value()))
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

// activeTab is the highlighted category, or -1 while searching.
func (a *App) activeTab() int {
	if a.state.Query.Mode() == reader.Searching {
		return -1
	}
	for i, c := range reader.Categories {
		if c.Slug == a.state.Query.Category {
			return i
		}
	}
	return -1
}

func (a *App) selectCategory(idx int) tea.Cmd {
	if idx < 0 || idx >= len(reader.Categories) {
		return nil
	}
	return a.begin(a.ctrl.SelectCategory(reader.Categories[idx].Slug))
}

func (a *App) View() string {
	if a.width == 0 {
		return a.styles.header.Render(appTitle)
	}
	st := a.styles

	badge := "☀ light"
	if a.theme.IsDark() {
		badge = "☾ dark"
	}
	headerLeft := st.header.Render(appTitle)
	headerRight := st.themeBadge.Render(badge + " ")
	gap := max(0, a.width-lipgloss.Width(headerLeft)-lipgloss.Width(headerRight))
	header := headerLeft + strings.Repeat(" ", gap) + headerRight

	search := st.searchHint.Render("/ search")
	if a.mode == modeSearch {
		search = " " + a.searchInput.View()
	} else if a.state.Query.SearchTerm != "" {
		search = st.searchHint.Render("/ " + a.state.Query.SearchTerm + "  (esc clears)")
	}

	labels := make([]string, len(reader.Categories))
	for i, c := range reader.Categories {
		labels[i] = c.Label
	}
	tabs := renderTabs(st, labels, a.activeTab(), a.width)

	sections := []string{header, search, tabs, st.heading.Render(a.state.Heading())}

	if a.state.Loading {
		sections = append(sections, st.loading.Render(a.spinner.View()+" "+reader.LoadingText))
	}
	if a.state.Err != "" {
		sections = append(sections, st.errorBanner.Width(a.width-2).Render("Error: "+a.state.Err))
	}
	if a.state.Empty() {
		sections = append(sections, st.empty.Render(reader.EmptyText))
	}

	top := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := st.footer.Render(footerText)
	status := a.renderStatus()

	cardsHeight := a.height - lipgloss.Height(top) - lipgloss.Height(footer) - lipgloss.Height(status)
	cards := renderCards(st, a.state.Articles, a.cursor, cardsHeight, a.width)

	return lipgloss.JoinVertical(lipgloss.Left, top, cards, footer, status)
}

func (a *App) renderStatus() string {
	left := a.notice
	if left == "" && len(a.state.Articles) > 0 {
		left = fmt.Sprintf("%d/%d articles", a.cursor+1, len(a.state.Articles))
	}
	right := "/ search  ←/→ category  o open  t theme  r refresh  q quit"
	if a.mode == modeSearch {
		right = "esc cancel  enter search"
	}
	return renderStatusBar(a.styles, left, right, a.width)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
