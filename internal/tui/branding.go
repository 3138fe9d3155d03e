package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/hinan/internal/config"
)

const AppName = "hinan"

var LogoLines = []string{
	"█ █ █ █▄ █ ▄▀█ █▄ █",
	"█▀█ █ █ ▀█ █▀█ █ ▀█",
}

const tagline = "避難支援ナビゲーター"

var bannerColors = []lipgloss.Color{
	lipgloss.Color("#E4572E"),
	lipgloss.Color("#FFC914"),
	lipgloss.Color("#17BEBB"),
}

// theme holds the styles derived from the configured colors.
type theme struct {
	header     lipgloss.Style
	menuActive lipgloss.Style
	menuIdle   lipgloss.Style
	menuTitle  lipgloss.Style
	helpKey    lipgloss.Style
	alert      lipgloss.Style
	empty      lipgloss.Style
}

func newTheme(c config.UIColors) theme {
	return theme{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Surface)).
			Bold(true).
			Padding(0, 2),
		menuActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Accent)),
		menuIdle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Muted)),
		menuTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)).
			Bold(true).
			Padding(0, 1),
		helpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Secondary)),
		alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Alert)).
			Bold(true),
		empty: lipgloss.NewStyle(),
	}
}

// ShowBanner prints the startup banner to w.
func ShowBanner(w io.Writer, version string) {
	lines := make([]string, 0, len(LogoLines)+2)
	for i, line := range LogoLines {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(bannerColors[i%len(bannerColors)]).
			Bold(true).
			Render(line))
	}
	lines = append(lines, "")

	tag := tagline
	if version != "" && version != "dev" {
		if version[0] != 'v' && version[0] != 'V' {
			version = "v" + version
		}
		tag = fmt.Sprintf("%s %s", tagline, version)
	}
	lines = append(lines, lipgloss.NewStyle().
		Foreground(bannerColors[len(bannerColors)-1]).
		Render(tag))

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(bannerColors[0]).
		Padding(1, 3).
		MarginTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	fmt.Fprintln(w, lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(box))
}
