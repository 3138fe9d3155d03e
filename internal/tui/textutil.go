package tui

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// truncateEnd shortens s to at most limit terminal columns. Japanese titles
// take two columns per rune, so rune counts are not enough.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	if limit <= runewidth.StringWidth(ellipsis) {
		return ellipsis
	}
	return runewidth.Truncate(s, limit, ellipsis)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
