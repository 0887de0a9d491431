// Package tui provides rectangular drawing surfaces over a tcell
// screen. A Surface has its own coordinate space and writes staged
// cells; nothing reaches the physical terminal until the screen's
// next Show.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is an independently allocated drawing region composited
// onto the screen at a fixed offset. Zero-sized surfaces are valid
// and all drawing on them is a no-op.
type Surface struct {
	screen tcell.Screen
	x, y   int
	w, h   int
}

// New allocates a surface at (x, y) with the given dimensions.
// Fails if the region does not fit the current screen, so a stale
// geometry cannot produce out-of-bounds writes.
func New(screen tcell.Screen, x, y, w, h int) (Surface, error) {
	sw, sh := screen.Size()
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > sw || y+h > sh {
		return Surface{}, fmt.Errorf("surface %dx%d at (%d,%d) exceeds screen %dx%d", w, h, x, y, sw, sh)
	}
	return Surface{screen: screen, x: x, y: y, w: w, h: h}, nil
}

// Size returns the surface dimensions.
func (s Surface) Size() (width, height int) {
	return s.w, s.h
}

// Empty reports whether the surface has no drawable area.
func (s Surface) Empty() bool {
	return s.w <= 0 || s.h <= 0
}

// Fill overwrites the whole surface with spaces in the given style.
func (s Surface) Fill(style tcell.Style) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.screen.SetContent(s.x+x, s.y+y, ' ', nil, style)
		}
	}
}

// Text writes a string at (x, y), truncated to the surface width.
func (s Surface) Text(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= s.h || x < 0 || x >= s.w {
		return
	}
	for _, ch := range Truncate(text, s.w-x) {
		s.screen.SetContent(s.x+x, s.y+y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// Box draws a border around the surface edge.
func (s Surface) Box(style tcell.Style) {
	if s.w < 2 || s.h < 2 {
		return
	}

	s.screen.SetContent(s.x, s.y, boxTL, nil, style)
	s.screen.SetContent(s.x+s.w-1, s.y, boxTR, nil, style)
	s.screen.SetContent(s.x, s.y+s.h-1, boxBL, nil, style)
	s.screen.SetContent(s.x+s.w-1, s.y+s.h-1, boxBR, nil, style)

	for x := 1; x < s.w-1; x++ {
		s.screen.SetContent(s.x+x, s.y, boxH, nil, style)
		s.screen.SetContent(s.x+x, s.y+s.h-1, boxH, nil, style)
	}
	for y := 1; y < s.h-1; y++ {
		s.screen.SetContent(s.x, s.y+y, boxV, nil, style)
		s.screen.SetContent(s.x+s.w-1, s.y+y, boxV, nil, style)
	}
}

// Title writes a label onto the top border edge, inset from the
// corner.
func (s Surface) Title(text string, style tcell.Style) {
	if s.w < 5 || s.h < 1 {
		return
	}
	s.Text(2, 0, Truncate(text, s.w-4), style)
}

// CursorAt maps surface coordinates to absolute screen coordinates.
func (s Surface) CursorAt(x, y int) (absX, absY int) {
	return s.x + x, s.y + y
}
