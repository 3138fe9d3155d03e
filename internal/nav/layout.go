package nav

import (
	"fmt"
	"strings"
)

// Layout controls how a visible screen arranges its content.
type Layout int

const (
	// LayoutColumn stacks content vertically from the top.
	LayoutColumn Layout = iota
	// LayoutCentered places content in the middle of the region.
	LayoutCentered
)

func (l Layout) String() string {
	switch l {
	case LayoutColumn:
		return "column"
	case LayoutCentered:
		return "centered"
	default:
		return "unknown"
	}
}

// ParseLayout parses "centered" or "column". Empty input is an error; callers
// that want a fallback use DefaultLayout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "centered", "center", "row":
		return LayoutCentered, nil
	case "column", "col":
		return LayoutColumn, nil
	default:
		return LayoutColumn, fmt.Errorf("unknown layout %q", s)
	}
}

// Screens that have always been shown centered.
var centeredScreens = map[string]struct{}{
	"home-screen":          {},
	"emergency-sos-screen": {},
	"admin-menu-screen":    {},
	"user-menu-screen":     {},
}

// DefaultLayout returns the layout for id when none is configured.
func DefaultLayout(id string) Layout {
	if _, ok := centeredScreens[id]; ok {
		return LayoutCentered
	}
	return LayoutColumn
}
