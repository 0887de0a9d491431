package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/console/terminal/tui"
)

// LayoutState is the layout feasibility state. TooSmall is
// recoverable: the next resize above the minimum transitions back to
// Ready.
type LayoutState int

const (
	Ready LayoutState = iota
	TooSmall
)

// Minimum terminal dimensions for a usable layout, and the fixed
// height of the input region.
const (
	MinWidth    = 40
	MinHeight   = 10
	InputHeight = 3
)

// Layout owns the four drawing surfaces (output border/content, input
// border/content). They are destroyed and reallocated as a unit on
// every geometry change; the set is never partially valid.
type Layout struct {
	screen tcell.Screen
	state  LayoutState

	termW, termH int
	outputH      int

	outputBorder  tui.Surface
	outputContent tui.Surface
	inputBorder   tui.Surface
	inputContent  tui.Surface
}

// NewLayout creates a layout with no surfaces allocated.
func NewLayout(screen tcell.Screen) *Layout {
	return &Layout{screen: screen, state: TooSmall}
}

// State returns the current layout state.
func (l *Layout) State() LayoutState {
	return l.state
}

// TermSize returns the dimensions the layout was last computed for.
func (l *Layout) TermSize() (width, height int) {
	return l.termW, l.termH
}

// Viewport returns the output content dimensions (zero while
// TooSmall).
func (l *Layout) Viewport() (width, height int) {
	return l.outputContent.Size()
}

// Apply recomputes window geometry for the given terminal size. It
// always clears the screen, releases all surfaces, and rebuilds from
// scratch; there is no incremental resize. Allocation failure for a
// Ready-sized terminal degrades to TooSmall rather than failing.
func (l *Layout) Apply(width, height int) LayoutState {
	l.termW, l.termH = width, height
	l.screen.Clear()
	l.release()

	if height < MinHeight || width < MinWidth {
		l.state = TooSmall
		return l.state
	}

	l.outputH = height - InputHeight

	outputBorder, err := tui.New(l.screen, 0, 0, width, l.outputH)
	if err != nil {
		return l.failSafe()
	}
	inputBorder, err := tui.New(l.screen, 0, l.outputH, width, InputHeight)
	if err != nil {
		return l.failSafe()
	}

	// Content surfaces sit one row/column inside their border and are
	// zero-sized when the outer region cannot hold an interior
	innerW := inner(width)
	outputContent, err := tui.New(l.screen, 1, 1, innerW, inner(l.outputH))
	if err != nil {
		return l.failSafe()
	}
	inputContent, err := tui.New(l.screen, 1, l.outputH+1, innerW, inner(InputHeight))
	if err != nil {
		return l.failSafe()
	}

	l.outputBorder = outputBorder
	l.outputContent = outputContent
	l.inputBorder = inputBorder
	l.inputContent = inputContent
	l.state = Ready
	return l.state
}

// release drops all four surfaces as a unit.
func (l *Layout) release() {
	l.outputBorder = tui.Surface{}
	l.outputContent = tui.Surface{}
	l.inputBorder = tui.Surface{}
	l.inputContent = tui.Surface{}
}

func (l *Layout) failSafe() LayoutState {
	l.release()
	l.state = TooSmall
	return l.state
}

// inner returns the interior extent of a bordered region.
func inner(outer int) int {
	if outer <= 2 {
		return 0
	}
	return outer - 2
}
