package tui

import "github.com/mattn/go-runewidth"

// Box drawing characters (single line).
const (
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
	boxH  = '─'
	boxV  = '│'
)

// Truncate cuts text to the given display width, wide-rune aware.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "")
}
