package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/hinan/internal/catalog"
	"github.com/pders01/hinan/internal/config"
	"github.com/pders01/hinan/internal/debuglog"
	"github.com/pders01/hinan/internal/nav"
)

const headerHeight = 1

type focusArea int

const (
	focusMenu focusArea = iota
	focusContent
)

// NavigateMsg asks the app to show a screen and set the title.
type NavigateMsg struct {
	ScreenID string
	Title    string
}

// Navigate returns a command that shows screenID with the given title.
func Navigate(screenID, title string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{ScreenID: screenID, Title: title}
	}
}

type App struct {
	config  *config.Config
	entries map[string]catalog.Entry
	nav     *nav.Navigator
	keys    keyMap
	theme   theme

	menu    list.Model
	content viewport.Model // scrollable region enclosing every screen
	help    help.Model
	focus   focusArea

	renderers map[int]*glamour.TermRenderer
	bodies    map[bodyKey]string

	width  int
	height int
	err    error
}

// NewApp builds the UI over the given screens. The navigator is created once
// here and lives as long as the app.
func NewApp(cfg *config.Config, entries []catalog.Entry) (*App, error) {
	a := &App{
		config:    cfg,
		entries:   make(map[string]catalog.Entry, len(entries)),
		keys:      newKeyMap(cfg.Keys),
		theme:     newTheme(cfg.UI.Colors),
		content:   viewport.New(0, 0),
		help:      help.New(),
		renderers: make(map[int]*glamour.TermRenderer),
		bodies:    make(map[bodyKey]string),
	}

	screens, err := catalog.Build(entries, &a.content)
	if err != nil {
		return nil, err
	}
	n, err := nav.New(screens...)
	if err != nil {
		return nil, err
	}
	a.nav = n

	var items []list.Item
	for _, e := range entries {
		a.entries[e.ID] = e
		if e.InMenu() {
			items = append(items, menuItem{id: e.ID, title: e.Title})
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	a.menu = list.New(items, delegate, 0, 0)
	a.menu.Title = "› メニュー"
	a.menu.SetShowStatusBar(false)
	a.menu.SetFilteringEnabled(false)
	a.menu.SetShowHelp(false)
	a.menu.Styles.Title = a.theme.menuTitle
	a.help.Styles.ShortKey = a.theme.helpKey
	a.help.Styles.FullKey = a.theme.helpKey

	return a, nil
}

// Navigator exposes the screen navigator so other UI logic can drive it.
func (a *App) Navigator() *nav.Navigator {
	return a.nav
}

func (a *App) Init() tea.Cmd {
	return Navigate(a.config.Navigator.DefaultScreen, a.config.Navigator.DefaultTitle)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case NavigateMsg:
		a.navigate(msg.ScreenID, msg.Title)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) navigate(screenID, title string) {
	a.err = nil
	a.nav.Navigate(screenID, title)

	cur := a.nav.Current()
	if cur == nil {
		a.content.SetContent("")
		return
	}

	debuglog.WithFields(debuglog.Fields{
		"screen": cur.ID,
		"layout": cur.Layout,
	}).Debugf("navigated to %q", title)

	for i, item := range a.menu.Items() {
		if mi, ok := item.(menuItem); ok && mi.id == cur.ID {
			a.menu.Select(i)
			break
		}
	}
	a.layout()
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.layout()
		return a, nil
	case key.Matches(msg, a.keys.Focus):
		if a.focus == focusMenu {
			a.focus = focusContent
		} else {
			a.focus = focusMenu
		}
		return a, nil
	case key.Matches(msg, a.keys.Home):
		return a, Navigate(a.config.Navigator.DefaultScreen, a.config.Navigator.DefaultTitle)
	case a.focus == focusMenu && key.Matches(msg, a.keys.Select):
		if item, ok := a.menu.SelectedItem().(menuItem); ok {
			return a, Navigate(item.id, item.title)
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.focus == focusMenu {
		a.menu, cmd = a.menu.Update(msg)
	} else {
		a.content, cmd = a.content.Update(msg)
	}
	return a, cmd
}

func (a *App) menuWidth() int {
	w := a.config.UI.MenuWidth
	if third := a.width / 3; w > third {
		w = third
	}
	if w < 0 {
		w = 0
	}
	return w
}

func (a *App) footerHeight() int {
	if a.help.ShowAll {
		return len(a.keys.FullHelp()[0])
	}
	return 1
}

func (a *App) regionWidth() int {
	if w := a.width - a.menuWidth(); w > 0 {
		return w
	}
	return 0
}

func (a *App) regionHeight() int {
	if h := a.height - headerHeight - a.footerHeight(); h > 0 {
		return h
	}
	return 0
}

// layout sizes the menu and content region, then loads the visible screen's
// body. Column screens fill the region; centered screens shrink to their
// content so View can place them in the middle.
func (a *App) layout() {
	regionW, regionH := a.regionWidth(), a.regionHeight()
	a.help.Width = a.width

	if mw := a.menuWidth(); mw > 2 && regionH > 2 {
		a.menu.SetSize(mw-2, regionH-2)
	}

	cur := a.nav.Current()
	if cur == nil {
		a.content.Width, a.content.Height = regionW, regionH
		return
	}

	body := a.renderBody(cur)
	if cur.Layout == nav.LayoutCentered {
		a.content.Width = min(lipgloss.Width(body), regionW)
		a.content.Height = min(lipgloss.Height(body), regionH)
	} else {
		a.content.Width, a.content.Height = regionW, regionH
	}
	a.content.SetContent(body)
}

func (a *App) View() string {
	title := truncateEnd(a.nav.Title(), max(a.width-4, 0))
	header := a.theme.header.Width(a.width).Render(title)

	var menu string
	if a.menuWidth() > 2 && a.regionHeight() > 2 {
		style := a.theme.menuIdle
		if a.focus == focusMenu {
			style = a.theme.menuActive
		}
		menu = style.Render(a.menu.View())
	}

	regionW, regionH := a.regionWidth(), a.regionHeight()
	var screen string
	switch cur := a.nav.Current(); {
	case cur == nil:
		screen = a.theme.empty.Width(regionW).Height(regionH).Render("")
	case cur.Layout == nav.LayoutCentered:
		screen = lipgloss.Place(regionW, regionH, lipgloss.Center, lipgloss.Center, a.content.View())
	default:
		screen = a.theme.empty.Width(regionW).Height(regionH).MaxHeight(regionH).Render(a.content.View())
	}

	footer := a.help.View(a.keys)
	if a.err != nil {
		footer = a.theme.alert.Render("✗ " + a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, menu, screen),
		strings.TrimRight(footer, "\n"),
	)
}

type menuItem struct {
	id    string
	title string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.id }
func (i menuItem) FilterValue() string { return i.title }
