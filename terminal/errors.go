package terminal

import "errors"

// Initialization failures. All are fatal to startup; Open guarantees
// the terminal is restored before any of these is returned.
var (
	// ErrInitFailed indicates the terminal control layer could not be
	// initialized (no TTY, unknown terminal type, raw mode rejected).
	ErrInitFailed = errors.New("terminal init failed")

	// ErrNoColorSupport indicates the terminal reports no color
	// capability at all.
	ErrNoColorSupport = errors.New("terminal has no color support")

	// ErrCannotSetColor indicates the terminal reports color support
	// too narrow to establish the required color pairs.
	ErrCannotSetColor = errors.New("cannot set terminal colors")
)
