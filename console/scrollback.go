package console

import "sync"

// MaxScrollbackLines bounds the output buffer; oldest lines are
// evicted first.
const MaxScrollbackLines = 1000

// Scrollback is the bounded, append-only store of output lines plus
// the viewport offset. One mutex covers both so a render pass always
// observes a consistent snapshot, even with concurrent producers.
type Scrollback struct {
	mu     sync.Mutex
	lines  []string
	offset int
}

// NewScrollback creates an empty scrollback.
func NewScrollback() *Scrollback {
	return &Scrollback{}
}

// Append adds one line, evicting the oldest lines beyond the cap.
func (b *Scrollback) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, line)
	if n := len(b.lines) - MaxScrollbackLines; n > 0 {
		b.lines = b.lines[n:]
	}
}

// Clear empties the buffer and resets the viewport offset.
func (b *Scrollback) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = nil
	b.offset = 0
}

// Len returns the number of buffered lines.
func (b *Scrollback) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Offset returns the current viewport offset.
func (b *Scrollback) Offset() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.offset
}

// ResetOffset snaps the viewport back to the most recent lines.
func (b *Scrollback) ResetOffset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.offset = 0
}

// ScrollBack shifts the viewport toward older lines, clamped so the
// viewport never runs past the start of the buffer.
func (b *Scrollback) ScrollBack(amount, viewport int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	max := len(b.lines) - viewport
	if max < 0 {
		max = 0
	}
	b.offset += amount
	if b.offset > max {
		b.offset = max
	}
}

// ScrollForward shifts the viewport toward newer lines, floored at 0.
func (b *Scrollback) ScrollForward(amount int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.offset -= amount
	if b.offset < 0 {
		b.offset = 0
	}
}

// Visible returns the slice of lines the viewport shows, newest-last,
// at most viewport lines.
func (b *Scrollback) Visible(viewport int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.lines)
	first := n - viewport - b.offset
	if first < 0 {
		first = 0
	}
	last := n - b.offset
	if last < 0 {
		last = 0
	}
	if first > last {
		first = last
	}

	out := make([]string, last-first)
	copy(out, b.lines[first:last])
	return out
}
