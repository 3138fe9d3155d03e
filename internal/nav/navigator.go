// Package nav switches which screen of the application is visible.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyScreenID is returned by New for a nil screen or a blank id.
	ErrEmptyScreenID = errors.New("screen id is empty")
	// ErrDuplicateScreenID is returned by New when two screens share an id.
	ErrDuplicateScreenID = errors.New("duplicate screen id")
)

// Scroller is the scrollable region enclosing a screen.
// *viewport.Model from bubbles satisfies it.
type Scroller interface {
	SetYOffset(n int)
}

// Screen is a panel shown or hidden as a unit.
type Screen struct {
	ID        string
	Layout    Layout
	Container Scroller

	visible bool
}

// Visible reports whether the screen is shown.
func (s *Screen) Visible() bool {
	return s.visible
}

// Navigator owns the fixed screen set and the title label.
type Navigator struct {
	screens []*Screen
	byID    map[string]*Screen
	current *Screen
	title   string
}

// New builds a navigator over screens. All screens start hidden.
func New(screens ...*Screen) (*Navigator, error) {
	n := &Navigator{
		screens: make([]*Screen, 0, len(screens)),
		byID:    make(map[string]*Screen, len(screens)),
	}
	for _, s := range screens {
		if s == nil || strings.TrimSpace(s.ID) == "" {
			return nil, ErrEmptyScreenID
		}
		if _, dup := n.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScreenID, s.ID)
		}
		s.visible = false
		n.screens = append(n.screens, s)
		n.byID[s.ID] = s
	}
	return n, nil
}

// Navigate hides every screen, resets their containers to the top, then shows
// the screen with the given id and sets the title. An unknown id leaves every
// screen hidden and the title untouched.
func (n *Navigator) Navigate(screenID, titleText string) {
	for _, s := range n.screens {
		s.visible = false
		if s.Container != nil {
			s.Container.SetYOffset(0)
		}
	}
	n.current = nil

	target, ok := n.byID[screenID]
	if !ok {
		return
	}
	target.visible = true
	n.current = target
	n.title = titleText
}

// Current returns the visible screen, or nil when none is.
func (n *Navigator) Current() *Screen {
	return n.current
}

// Title returns the text of the title label.
func (n *Navigator) Title() string {
	return n.title
}

// Lookup finds a screen by id.
func (n *Navigator) Lookup(id string) (*Screen, bool) {
	s, ok := n.byID[id]
	return s, ok
}

// Screens returns the screen set in declaration order.
func (n *Navigator) Screens() []*Screen {
	out := make([]*Screen, len(n.screens))
	copy(out, n.screens)
	return out
}

// VisibleCount reports how many screens are shown.
func (n *Navigator) VisibleCount() int {
	count := 0
	for _, s := range n.screens {
		if s.visible {
			count++
		}
	}
	return count
}
