// Package catalog declares the screens the application can show.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/pders01/hinan/internal/nav"
)

//go:embed screens.toml
var screensTOML []byte

// Entry describes one screen. Menu is nil when the source left it unset.
type Entry struct {
	ID     string `toml:"id"`
	Title  string `toml:"title,omitempty"`
	Layout string `toml:"layout,omitempty"`
	Menu   *bool  `toml:"menu,omitempty"`
	Body   string `toml:"body,omitempty"`
}

// InMenu reports whether the screen gets a menu item.
func (e Entry) InMenu() bool {
	return e.Menu != nil && *e.Menu
}

type file struct {
	Screens []Entry `toml:"screens"`
}

// Default returns the built-in screens.
func Default() ([]Entry, error) {
	return Parse(screensTOML)
}

// Parse reads a catalog document.
func Parse(data []byte) ([]Entry, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing screen catalog: %w", err)
	}
	return f.Screens, nil
}

// Merge lays overrides over base entries with the same id and appends the
// rest, keeping declaration order. Only fields an override sets replace the
// base value.
func Merge(base, overrides []Entry) []Entry {
	out := make([]Entry, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, e := range out {
		index[e.ID] = i
	}
	for _, o := range overrides {
		if i, ok := index[o.ID]; ok {
			out[i] = overlay(out[i], o)
			continue
		}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	return out
}

func overlay(base, o Entry) Entry {
	if o.Title != "" {
		base.Title = o.Title
	}
	if o.Layout != "" {
		base.Layout = o.Layout
	}
	if o.Menu != nil {
		menu := *o.Menu
		base.Menu = &menu
	}
	if o.Body != "" {
		base.Body = o.Body
	}
	return base
}

// Build turns entries into navigator screens enclosed by container.
func Build(entries []Entry, container nav.Scroller) ([]*nav.Screen, error) {
	screens := make([]*nav.Screen, 0, len(entries))
	for _, e := range entries {
		layout, err := e.layout()
		if err != nil {
			return nil, fmt.Errorf("screen %s: %w", e.ID, err)
		}
		screens = append(screens, &nav.Screen{
			ID:        e.ID,
			Layout:    layout,
			Container: container,
		})
	}
	return screens, nil
}

func (e Entry) layout() (nav.Layout, error) {
	if e.Layout == "" {
		return nav.DefaultLayout(e.ID), nil
	}
	return nav.ParseLayout(e.Layout)
}

// Find returns the entry with the given id.
func Find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
