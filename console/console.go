// Package console implements the terminal UI runtime: a scrollable
// output region above an editable input line, driven by a polling
// render loop that survives resizes and stops cooperatively on an
// exit command or an OS signal.
package console

import (
	"os"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"github.com/lixenwraith/console/terminal"
)

// pollInterval paces the render loop. It bounds CPU usage while
// keeping input latency below perception; it is not a precision
// timer.
const pollInterval = 20 * time.Millisecond

// Bell is the audible alert used when input is rejected.
type Bell interface {
	Ring()
}

// Console ties the layout, scrollback, editor and command processor
// together under a single render loop.
type Console struct {
	screen  *terminal.Screen
	layout  *Layout
	scroll  *Scrollback
	editor  *Editor
	proc    Processor
	signals *SignalRegistry
	bell    Bell

	// running is the loop continuation flag. It is the only state
	// shared with the signal dispatch goroutine.
	running  atomic.Bool
	interval time.Duration
}

// Create opens the terminal and builds a console on it. A nil proc
// falls back to DefaultProcessor, a nil bell to the terminal bell.
// Failure returns one of the terminal package's typed init errors
// with the terminal already restored.
func Create(proc Processor, bell Bell) (*Console, error) {
	screen, err := terminal.Open()
	if err != nil {
		return nil, err
	}
	return New(screen, proc, bell)
}

// New builds a console on an already opened screen, computes the
// initial layout and registers the stop callback for interrupt and
// terminate signals.
func New(screen *terminal.Screen, proc Processor, bell Bell) (*Console, error) {
	if proc == nil {
		proc = DefaultProcessor{}
	}

	c := &Console{
		screen:   screen,
		layout:   NewLayout(screen),
		scroll:   NewScrollback(),
		editor:   NewEditor(),
		proc:     proc,
		signals:  NewSignalRegistry(),
		bell:     bell,
		interval: pollInterval,
	}

	w, h := screen.Size()
	if c.layout.Apply(w, h) == Ready {
		c.scroll.Append(gotext.Get("Console UI Ready. Type 'help' or 'exit'."))
	}

	// Armed before the signal handlers so a stop dispatched between
	// creation and the first loop iteration is never lost
	c.running.Store(true)

	c.signals.Register(os.Interrupt, c.Stop)
	c.signals.Register(syscall.SIGTERM, c.Stop)

	return c, nil
}

// Run drives the render loop until Stop is called: poll at most one
// input event, redraw, sleep one interval. Every iteration is
// idempotent; transient failures are retried by the next pass. Run
// only reads the continuation flag, so a Stop that precedes it still
// takes effect.
func (c *Console) Run() {
	for c.running.Load() {
		c.poll()
		c.draw()
		time.Sleep(c.interval)
	}
}

// Stop requests loop termination. Safe to call from any goroutine;
// takes effect at the next iteration boundary.
func (c *Console) Stop() {
	c.running.Store(false)
}

// Close unregisters the signal handlers and restores the terminal.
// Safe to call multiple times.
func (c *Console) Close() {
	c.signals.Unregister(os.Interrupt)
	c.signals.Unregister(syscall.SIGTERM)
	c.signals.Close()
	c.screen.Close()
}

// poll fetches at most one pending input event without blocking.
func (c *Console) poll() {
	if !c.screen.HasPendingEvent() {
		return
	}
	switch ev := c.screen.PollEvent().(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		c.handleResize(w, h)
	case *tcell.EventKey:
		c.handleKey(ev)
	}
}

// handleResize recomputes the layout and notes recovery from the
// TooSmall state exactly once per transition.
func (c *Console) handleResize(width, height int) {
	wasTooSmall := c.layout.State() == TooSmall
	if c.layout.Apply(width, height) == Ready && wasTooSmall {
		c.scroll.Append(gotext.Get("Terminal resized to usable dimensions."))
	}
}

// handleKey routes a key event to the scrollback or the editor. All
// input except resizes is rejected with an alert while the layout is
// TooSmall.
func (c *Console) handleKey(ev *tcell.EventKey) {
	if c.layout.State() == TooSmall {
		c.ring()
		return
	}

	switch ev.Key() {
	case tcell.KeyPgUp:
		_, viewport := c.layout.Viewport()
		c.scroll.ScrollBack(viewport, viewport)

	case tcell.KeyPgDn:
		_, viewport := c.layout.Viewport()
		c.scroll.ScrollForward(viewport)

	default:
		if command, ok := c.editor.Handle(ev); ok {
			c.scroll.Append("> " + command)
			c.scroll.ResetOffset()
			c.execute(command)
		}
	}
}

// draw paints the current state and performs the single atomic flush
// for this iteration.
func (c *Console) draw() {
	if c.layout.State() == TooSmall {
		c.drawTooSmall()
		c.screen.HideCursor()
		c.screen.Show()
		return
	}

	styles := c.screen.Styles
	l := c.layout

	l.outputBorder.Fill(styles.Border)
	l.outputBorder.Box(styles.Border)
	l.outputBorder.Title(gotext.Get(" Output "), styles.Border)

	l.inputBorder.Fill(styles.Border)
	l.inputBorder.Box(styles.Border)
	l.inputBorder.Title(gotext.Get(" Input "), styles.Border)

	if !l.outputContent.Empty() {
		l.outputContent.Fill(styles.Text)
		_, viewport := l.outputContent.Size()
		for y, line := range c.scroll.Visible(viewport) {
			l.outputContent.Text(0, y, line, styles.Text)
		}
	}

	if !l.inputContent.Empty() {
		l.inputContent.Fill(styles.Input)
		l.inputContent.Text(0, 0, c.editor.Text(), styles.Input)

		inputW, _ := l.inputContent.Size()
		cursor := c.editor.Cursor()
		if cursor > inputW-1 {
			cursor = inputW - 1
		}
		c.screen.ShowCursor(l.inputContent.CursorAt(cursor, 0))
	}

	c.screen.Show()
}

// drawTooSmall paints the fixed diagnostic screen.
func (c *Console) drawTooSmall() {
	c.screen.Clear()
	w, h := c.layout.TermSize()
	style := c.screen.Styles.Text

	putString(c.screen, 0, 0, gotext.Get("Terminal too small!"), style)
	putString(c.screen, 0, 1,
		gotext.Get("Required: %d x %d, Current: %d x %d",
			MinWidth, MinHeight, w, h), style)
}

// ring sounds the audible alert, preferring the configured bell over
// the terminal one.
func (c *Console) ring() {
	if c.bell != nil {
		c.bell.Ring()
		return
	}
	c.screen.Beep()
}

func putString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
