// Package display owns the terminal end of a progress bar: one updating
// line, redrawn in place. It knows nothing about rates or layout; callers
// hand it fully rendered frames and the cell widths needed to paper over
// the previous one.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	cursorHide = "\033[?25l"
	cursorShow = "\033[?25h"
	cursorBOL  = "\033[1G"
	eraseLine  = "\033[2K"

	// synchronized update brackets minimize flicker on terminals that
	// support them and are ignored elsewhere
	syncBegin = "\033[?2026h"
	syncEnd   = "\033[?2026l"
)

// Line writes one self-replacing terminal line. Output is buffered to
// minimize flickering; a mutex serializes the reporting loop against
// resize repaints.
type Line struct {
	mu sync.Mutex
	// buffer output to minimize flickering on all terminals
	w *bufio.Writer

	active    bool
	last      string
	lastWidth int
}

func NewLine(w io.Writer) *Line {
	return &Line{w: bufio.NewWriter(w)}
}

// Set draws text over the previous frame. width is the printed cell width
// of text, prev the width of the frame being replaced; the difference is
// padded with spaces so nothing of a longer frame survives.
func (l *Line) Set(text string, width, prev int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.set(text, width, prev)
}

func (l *Line) set(text string, width, prev int) {
	if !l.active {
		// hide cursor
		fmt.Fprint(l.w, cursorHide)
		l.active = true
	}

	fmt.Fprint(l.w, syncBegin, cursorBOL, text)
	if prev > width {
		fmt.Fprint(l.w, strings.Repeat(" ", prev-width))
	}
	fmt.Fprint(l.w, syncEnd)
	l.w.Flush()

	l.last = text
	l.lastWidth = width
}

// Repaint redraws the last frame, covering whatever a resize left behind.
func (l *Line) Repaint() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return
	}
	l.set(l.last, l.lastWidth, l.lastWidth)
}

// Stop releases the line: the cursor drops to the next row and reappears.
func (l *Line) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active {
		fmt.Fprintln(l.w)
	}

	// show cursor
	fmt.Fprint(l.w, cursorShow)
	l.w.Flush()
	l.active = false
}

// StopAndClear erases the line instead of keeping it.
func (l *Line) StopAndClear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active {
		fmt.Fprint(l.w, eraseLine, cursorBOL)
	}

	// show cursor
	fmt.Fprint(l.w, cursorShow)
	l.w.Flush()
	l.active = false
}
