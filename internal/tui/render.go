package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/pders01/hinan/internal/nav"
)

const (
	minWrapWidth      = 20
	centeredWrapWidth = 60
)

// wrapWidth picks the markdown wrap width for a screen of the given layout
// inside a region regionWidth columns wide.
func (a *App) wrapWidth(layout nav.Layout, regionWidth int) int {
	maxWidth := a.config.UI.WrapMaxWidth
	if maxWidth < minWrapWidth {
		maxWidth = minWrapWidth
	}
	if layout == nav.LayoutCentered && maxWidth > centeredWrapWidth {
		maxWidth = centeredWrapWidth
	}
	return clamp(regionWidth-2, minWrapWidth, maxWidth)
}

func (a *App) rendererFor(width int) (*glamour.TermRenderer, error) {
	if r, ok := a.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(a.config.UI.GlamourStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, wrapErr("creating markdown renderer", err)
	}
	a.renderers[width] = r
	return r, nil
}

// renderBody returns the rendered markdown for a screen. Results are cached
// per screen and width; the catalog never changes at runtime.
func (a *App) renderBody(s *nav.Screen) string {
	width := a.wrapWidth(s.Layout, a.regionWidth())
	cacheKey := bodyKey{id: s.ID, width: width}
	if out, ok := a.bodies[cacheKey]; ok {
		return out
	}

	md := ""
	if e, ok := a.entries[s.ID]; ok {
		md = e.Body
	}

	r, err := a.rendererFor(width)
	if err != nil {
		a.err = err
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		a.err = wrapErr("rendering "+s.ID, err)
		return md
	}

	a.bodies[cacheKey] = out
	return out
}

type bodyKey struct {
	id    string
	width int
}

func wrapErr(context string, err error) error {
	return fmt.Errorf("%s: %w", context, err)
}
