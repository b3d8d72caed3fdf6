package render

import (
	"fmt"
	"io"

	"github.com/kian-mehta/ExtendedEssay/maze"
	"golang.org/x/crypto/ssh/terminal"
)

// ANSI escape sequences used when animating in a terminal.
const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	cursorOff   = "\033[?25l"
	cursorOn    = "\033[?25h"
)

// Returns true if the file descriptor refers to a terminal.
func IsTerminal(fd int) bool {
	return terminal.IsTerminal(fd)
}

// Returns the number of columns and rows in the terminal. Defaults to 80
// columns and 24 rows if the size can't be determined.
func TerminalSize(fd int) (int, int) {
	cols, rows, e := terminal.GetSize(fd)
	if e != nil {
		return 80, 24
	}
	return cols, rows
}

// Returns the largest maze, in cells, whose ASCII drawing fits in a
// terminal of the given size, leaving one line for a status message.
func FitTerminal(cols, rows int) (int, int) {
	width := (cols - 1) / 4
	height := (rows - 2) / 2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// Redraws frames in place on a terminal, for animating maze generation.
type TerminalAnimator struct {
	w      io.Writer
	color  bool
	frames int
}

// Returns an animator writing to w. If useColor is set, frames are drawn
// with ColorASCII.
func NewTerminalAnimator(w io.Writer, useColor bool) *TerminalAnimator {
	return &TerminalAnimator{
		w:     w,
		color: useColor,
	}
}

// Replaces the previous frame with a drawing of the snapshot, followed by a
// status line.
func (a *TerminalAnimator) Draw(s maze.Snapshot, status string) error {
	var frame string
	var e error
	if a.color {
		frame, e = ColorASCII(s, nil)
	} else {
		frame, e = ASCII(s, nil)
	}
	if e != nil {
		return e
	}
	prefix := cursorHome
	if a.frames == 0 {
		prefix = cursorOff + clearScreen + cursorHome
	}
	a.frames++
	_, e = fmt.Fprintf(a.w, "%s%s%s\n", prefix, frame, status)
	if e != nil {
		return fmt.Errorf("Error drawing frame %d: %w", a.frames, e)
	}
	return nil
}

// Restores the cursor. Call once the animation is over.
func (a *TerminalAnimator) Close() error {
	if a.frames == 0 {
		return nil
	}
	_, e := io.WriteString(a.w, cursorOn)
	return e
}

// Returns the number of frames drawn so far.
func (a *TerminalAnimator) Frames() int {
	return a.frames
}
