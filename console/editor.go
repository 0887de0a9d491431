package console

import "github.com/gdamore/tcell/v2"

// Editor is the single-line command editor: mutable text with a
// cursor, plus traversal of previously submitted commands.
// historyIndex -1 means not browsing.
type Editor struct {
	text    []rune
	cursor  int
	history []string
	histIdx int
}

// NewEditor creates an empty editor.
func NewEditor() *Editor {
	return &Editor{histIdx: -1}
}

// Text returns the current line content.
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the cursor position in [0, len(text)].
func (e *Editor) Cursor() int {
	return e.cursor
}

// History returns a copy of the submitted-command history.
func (e *Editor) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// Handle applies one key event to the editor. On Enter with a
// non-empty line it returns the submitted text, records it in history
// (unless it is the literal "exit" or duplicates the previous entry),
// and clears the line. Unrecognized keys are ignored.
func (e *Editor) Handle(ev *tcell.EventKey) (submitted string, ok bool) {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.cursor > 0 {
			e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
			e.cursor--
		}

	case tcell.KeyDelete:
		if e.cursor < len(e.text) {
			e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
		}

	case tcell.KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}

	case tcell.KeyRight:
		if e.cursor < len(e.text) {
			e.cursor++
		}

	case tcell.KeyHome:
		e.cursor = 0

	case tcell.KeyEnd:
		e.cursor = len(e.text)

	case tcell.KeyUp:
		if len(e.history) == 0 {
			break
		}
		if e.histIdx == -1 {
			e.histIdx = len(e.history) - 1
		} else if e.histIdx > 0 {
			e.histIdx--
		}
		e.load(e.history[e.histIdx])

	case tcell.KeyDown:
		if e.histIdx == -1 {
			break
		}
		if e.histIdx < len(e.history)-1 {
			e.histIdx++
			e.load(e.history[e.histIdx])
		} else {
			e.histIdx = -1
			e.load("")
		}

	case tcell.KeyEnter:
		if len(e.text) == 0 {
			break
		}
		submitted = string(e.text)
		e.record(submitted)
		e.text = e.text[:0]
		e.cursor = 0
		e.histIdx = -1
		return submitted, true

	case tcell.KeyRune:
		r := ev.Rune()
		if r < 32 || r > 126 {
			break
		}
		e.text = append(e.text, 0)
		copy(e.text[e.cursor+1:], e.text[e.cursor:])
		e.text[e.cursor] = r
		e.cursor++
	}

	return "", false
}

// load replaces the line content and puts the cursor at the end.
func (e *Editor) load(text string) {
	e.text = []rune(text)
	e.cursor = len(e.text)
}

// record appends a submitted command to history. The literal "exit"
// is never recorded, and a command equal to the previous entry is
// suppressed.
func (e *Editor) record(command string) {
	if command == "exit" {
		return
	}
	if n := len(e.history); n > 0 && e.history[n-1] == command {
		return
	}
	e.history = append(e.history, command)
}
