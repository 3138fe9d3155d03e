package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/hinan/internal/catalog"
	"github.com/pders01/hinan/internal/config"
	"github.com/pders01/hinan/internal/nav"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	entries, err := catalog.Default()
	require.NoError(t, err)
	app, err := NewApp(config.TestConfig(), entries)
	require.NoError(t, err)
	return app
}

// send feeds msg to the app and then every message its commands produce.
func send(t *testing.T, app *App, msg tea.Msg) tea.Msg {
	t.Helper()
	model, cmd := app.Update(msg)
	require.Same(t, app, model)
	for cmd != nil {
		next := cmd()
		switch next.(type) {
		case NavigateMsg:
			_, cmd = app.Update(next)
		default:
			return next
		}
	}
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInit_ShowsDefaultScreen(t *testing.T) {
	app := newTestApp(t)
	assert.Nil(t, app.Navigator().Current(), "nothing is visible before init")

	cmd := app.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, NavigateMsg{ScreenID: "home-screen", Title: "避難支援ホーム"}, msg)

	send(t, app, msg)

	cur := app.Navigator().Current()
	require.NotNil(t, cur)
	assert.Equal(t, "home-screen", cur.ID)
	assert.Equal(t, nav.LayoutCentered, cur.Layout)
	assert.Equal(t, "避難支援ホーム", app.Navigator().Title())
	assert.Equal(t, 1, app.Navigator().VisibleCount())
}

func TestInit_ConfiguredDefault(t *testing.T) {
	entries, err := catalog.Default()
	require.NoError(t, err)
	cfg := config.TestConfig()
	cfg.Navigator.DefaultScreen = "map-screen"
	cfg.Navigator.DefaultTitle = "避難所マップ"

	app, err := NewApp(cfg, entries)
	require.NoError(t, err)
	send(t, app, app.Init()())

	require.NotNil(t, app.Navigator().Current())
	assert.Equal(t, "map-screen", app.Navigator().Current().ID)
	assert.Equal(t, "避難所マップ", app.Navigator().Title())
}

func TestNavigateMsg(t *testing.T) {
	tests := []struct {
		id     string
		title  string
		layout nav.Layout
	}{
		{"home-screen", "避難支援ホーム", nav.LayoutCentered},
		{"emergency-sos-screen", "緊急SOS", nav.LayoutCentered},
		{"admin-menu-screen", "管理者メニュー", nav.LayoutCentered},
		{"user-menu-screen", "メニュー", nav.LayoutCentered},
		{"settings-screen", "設定", nav.LayoutColumn},
		{"chat-screen", "チャット", nav.LayoutColumn},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			app := newTestApp(t)
			send(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})
			send(t, app, NavigateMsg{ScreenID: tt.id, Title: tt.title})

			cur := app.Navigator().Current()
			require.NotNil(t, cur)
			assert.Equal(t, tt.id, cur.ID)
			assert.Equal(t, tt.layout, cur.Layout)
			assert.Equal(t, tt.title, app.Navigator().Title())
			assert.Contains(t, app.View(), tt.title)
		})
	}
}

func TestNavigateMsg_UnknownScreen(t *testing.T) {
	app := newTestApp(t)
	send(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})
	send(t, app, NavigateMsg{ScreenID: "settings-screen", Title: "設定"})

	send(t, app, NavigateMsg{ScreenID: "missing-screen", Title: "存在しない"})

	assert.Nil(t, app.Navigator().Current())
	assert.Equal(t, 0, app.Navigator().VisibleCount())
	assert.Equal(t, "設定", app.Navigator().Title())
	assert.Nil(t, app.err)

	view := app.View()
	assert.NotContains(t, view, "存在しない")
	assert.Contains(t, view, "設定")
}

func TestNavigate_ResetsScroll(t *testing.T) {
	app := newTestApp(t)
	send(t, app, tea.WindowSizeMsg{Width: 100, Height: 12})
	send(t, app, NavigateMsg{ScreenID: "settings-screen", Title: "設定"})

	var long strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&long, "line %d\n", i)
	}
	app.content.SetContent(long.String())
	app.content.SetYOffset(30)
	require.Equal(t, 30, app.content.YOffset)

	send(t, app, NavigateMsg{ScreenID: "map-screen", Title: "避難所マップ"})
	assert.Equal(t, 0, app.content.YOffset)

	app.content.SetContent(long.String())
	app.content.SetYOffset(30)
	send(t, app, NavigateMsg{ScreenID: "missing-screen", Title: "x"})
	assert.Equal(t, 0, app.content.YOffset, "scroll resets even for unknown screens")
}

func TestNavigate_Idempotent(t *testing.T) {
	app := newTestApp(t)
	send(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})

	send(t, app, NavigateMsg{ScreenID: "settings-screen", Title: "設定"})
	first := app.View()
	send(t, app, NavigateMsg{ScreenID: "settings-screen", Title: "設定"})

	assert.Equal(t, first, app.View())
	assert.Equal(t, 1, app.Navigator().VisibleCount())
}

func TestMenuSelect(t *testing.T) {
	app := newTestApp(t)
	send(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})
	send(t, app, app.Init()())

	target := -1
	for i, item := range app.menu.Items() {
		if item.(menuItem).id == "settings-screen" {
			target = i
		}
	}
	require.GreaterOrEqual(t, target, 0)
	app.menu.Select(target)

	send(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	cur := app.Navigator().Current()
	require.NotNil(t, cur)
	assert.Equal(t, "settings-screen", cur.ID)
	assert.Equal(t, nav.LayoutColumn, cur.Layout)
	assert.Equal(t, "設定", app.Navigator().Title())
}

func TestMenuFollowsNavigation(t *testing.T) {
	app := newTestApp(t)
	send(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})
	send(t, app, NavigateMsg{ScreenID: "qr-screen", Title: "QRコード"})

	selected, ok := app.menu.SelectedItem().(menuItem)
	require.True(t, ok)
	assert.Equal(t, "qr-screen", selected.id)
}

func TestHomeKey(t *testing.T) {
	app := newTestApp(t)
	send(t, app, NavigateMsg{ScreenID: "settings-screen", Title: "設定"})

	send(t, app, runes("H"))

	require.NotNil(t, app.Navigator().Current())
	assert.Equal(t, "home-screen", app.Navigator().Current().ID)
	assert.Equal(t, "避難支援ホーム", app.Navigator().Title())
}

func TestLowercaseHReachesContent(t *testing.T) {
	app := newTestApp(t)
	send(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})
	send(t, app, NavigateMsg{ScreenID: "chat-screen", Title: "チャット"})
	send(t, app, tea.KeyMsg{Type: tea.KeyTab})

	send(t, app, runes("h"))

	assert.Equal(t, "chat-screen", app.Navigator().Current().ID)
}

func TestRenderErrorClearsOnNextNavigation(t *testing.T) {
	cfg := config.TestConfig()
	cfg.UI.GlamourStyle = "no-such-style"
	entries, err := catalog.Default()
	require.NoError(t, err)
	app, err := NewApp(cfg, entries)
	require.NoError(t, err)
	send(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})

	send(t, app, NavigateMsg{ScreenID: "settings-screen", Title: "設定"})
	require.Error(t, app.err)
	assert.Contains(t, app.View(), "✗")

	cfg.UI.GlamourStyle = "notty"
	send(t, app, NavigateMsg{ScreenID: "map-screen", Title: "避難所マップ"})
	assert.NoError(t, app.err)
	assert.NotContains(t, app.View(), "✗")
}

func TestNewApp_LayoutOnlyOverrideKeepsMenuItem(t *testing.T) {
	base, err := catalog.Default()
	require.NoError(t, err)
	entries := catalog.Merge(base, []catalog.Entry{{ID: "settings-screen", Layout: "centered"}})

	app, err := NewApp(config.TestConfig(), entries)
	require.NoError(t, err)

	var found *menuItem
	for _, item := range app.menu.Items() {
		if mi, ok := item.(menuItem); ok && mi.id == "settings-screen" {
			found = &mi
			break
		}
	}
	require.NotNil(t, found, "settings-screen stays in the menu")
	assert.Equal(t, "設定", found.title)

	send(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})
	send(t, app, NavigateMsg{ScreenID: "settings-screen", Title: "設定"})
	assert.Equal(t, nav.LayoutCentered, app.Navigator().Current().Layout)
	assert.NotEmpty(t, strings.TrimSpace(app.content.View()))
}

func TestFocusToggle(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, focusMenu, app.focus)

	send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusContent, app.focus)

	// Enter does nothing while the content region has focus.
	send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, app.Navigator().Current())

	send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusMenu, app.focus)
}

func TestHelpToggle(t *testing.T) {
	app := newTestApp(t)
	send(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})
	short := app.regionHeight()

	send(t, app, runes("?"))
	assert.True(t, app.help.ShowAll)
	assert.Less(t, app.regionHeight(), short)

	send(t, app, runes("?"))
	assert.False(t, app.help.ShowAll)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		app := newTestApp(t)
		out := send(t, app, msg)
		assert.IsType(t, tea.QuitMsg{}, out, msg.String())
	}
}

func TestNewApp_Errors(t *testing.T) {
	cfg := config.TestConfig()

	_, err := NewApp(cfg, []catalog.Entry{{ID: "a-screen"}, {ID: "a-screen"}})
	assert.ErrorIs(t, err, nav.ErrDuplicateScreenID)

	_, err = NewApp(cfg, []catalog.Entry{{ID: "a-screen", Layout: "spiral"}})
	assert.Error(t, err)
}

func TestView_SmallTerminal(t *testing.T) {
	app := newTestApp(t)
	send(t, app, app.Init()())

	for _, size := range []tea.WindowSizeMsg{{Width: 0, Height: 0}, {Width: 10, Height: 3}, {Width: 40, Height: 8}} {
		send(t, app, size)
		assert.NotPanics(t, func() { _ = app.View() })
	}
}

func TestMenuWidth(t *testing.T) {
	app := newTestApp(t)
	app.config.UI.MenuWidth = 26

	app.width = 120
	assert.Equal(t, 26, app.menuWidth())
	app.width = 60
	assert.Equal(t, 20, app.menuWidth())
	assert.Equal(t, 40, app.regionWidth())
}
