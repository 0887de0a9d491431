// Package terminal wraps the tcell drawing library behind the small
// lifecycle the console needs: open in raw mode with color pairs
// established, restore exactly once on close.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen is a tcell screen with restore-once teardown and the color
// pairs used by the console layout. Drawing goes through the embedded
// tcell.Screen: SetContent stages cells, Show performs one atomic
// flush to the physical terminal.
type Screen struct {
	tcell.Screen
	Styles Styles

	mu        sync.Mutex
	rawMode   bool
	finalized bool
}

// Open initializes the terminal: activates the process locale, enters
// raw/no-echo mode, verifies color capability and establishes the
// color pairs. On any failure the terminal is restored before the
// typed error is returned.
func Open() (*Screen, error) {
	ActivateLocale()

	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}

	// Raw mode is active from here on; every error path below must
	// restore through Close
	s := &Screen{Screen: ts, rawMode: true}

	if ts.Colors() <= 0 {
		s.Close()
		return nil, ErrNoColorSupport
	}
	styles, err := NewStyles(ts.Colors())
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Styles = styles

	ts.SetStyle(styles.Text)
	ts.Clear()
	return s, nil
}

// NewSimulation opens a Screen over a tcell simulation screen for
// tests. The simulation handle is returned for event injection and
// content inspection.
func NewSimulation(width, height int) (*Screen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	sim.SetSize(width, height)

	styles, err := NewStyles(sim.Colors())
	if err != nil {
		sim.Fini()
		return nil, nil, err
	}

	s := &Screen{Screen: sim, Styles: styles, rawMode: true}
	sim.SetStyle(styles.Text)
	sim.Clear()
	return s, sim, nil
}

// Close restores the terminal to its original mode. Safe to call
// multiple times; only the mode that was actually set is restored.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return
	}
	s.finalized = true

	if s.rawMode {
		// Fini leaves the alternate screen, re-enables echo and key
		// translation, and shows the cursor
		s.Screen.Fini()
	}
}
