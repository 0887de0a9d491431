package terminal

import "github.com/gdamore/tcell/v2"

// Styles holds the color pairs used by the console layout:
// plain text, borders, and the input line.
type Styles struct {
	Text   tcell.Style
	Border tcell.Style
	Input  tcell.Style
}

// NewStyles builds the style set for a terminal reporting the given
// number of colors. Below 8 colors the terminal default pair is used
// for everything rather than forcing a palette it cannot hold.
func NewStyles(colors int) (Styles, error) {
	if colors <= 0 {
		return Styles{}, ErrNoColorSupport
	}
	if colors < 2 {
		// Color is reported but a distinct fg/bg pair cannot exist
		return Styles{}, ErrCannotSetColor
	}
	if colors < 8 {
		return Styles{
			Text:   tcell.StyleDefault,
			Border: tcell.StyleDefault,
			Input:  tcell.StyleDefault,
		}, nil
	}

	return Styles{
		Text:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Border: tcell.StyleDefault.Foreground(tcell.ColorTeal).Background(tcell.ColorBlack),
		Input:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	}, nil
}
