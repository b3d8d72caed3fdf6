package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/kian-mehta/ExtendedEssay/maze"
)

// The styles used by ColorASCII.
var (
	wallStyle      = color.New(color.FgHiBlack)
	solutionStyle  = color.New(color.FgHiRed, color.Bold)
	currentStyle   = color.New(color.FgHiGreen, color.Bold)
	unvisitedStyle = color.New(color.FgHiBlack)
	arrowStyle     = color.New(color.FgHiCyan, color.Bold)
)

// Decides how each piece of the ASCII drawing is printed.
type asciiPainter struct {
	wall      func(a ...interface{}) string
	solution  func(a ...interface{}) string
	current   func(a ...interface{}) string
	unvisited func(a ...interface{}) string
	arrow     func(a ...interface{}) string
}

func plain(a ...interface{}) string {
	if len(a) == 0 {
		return ""
	}
	return a[0].(string)
}

var plainPainter = asciiPainter{
	wall:      plain,
	solution:  plain,
	current:   plain,
	unvisited: plain,
	arrow:     plain,
}

var colorPainter = asciiPainter{
	wall:      wallStyle.Sprint,
	solution:  solutionStyle.Sprint,
	current:   currentStyle.Sprint,
	unvisited: unvisitedStyle.Sprint,
	arrow:     arrowStyle.Sprint,
}

// Draws the maze with +, -, and | characters, three columns per cell. Cells
// on the given path are marked with '*', cells that haven't joined the maze
// with ':::' and the most recently connected cell of an unfinished maze with
// '@'. The path may be nil.
func ASCII(s maze.Snapshot, path []maze.Coord) (string, error) {
	return drawASCII(s, path, plainPainter)
}

// Same as ASCII, but colored for terminals using ANSI escapes. Color output
// is suppressed if color.NoColor is set, for instance when stdout isn't a
// terminal.
func ColorASCII(s maze.Snapshot, path []maze.Coord) (string, error) {
	return drawASCII(s, path, colorPainter)
}

func drawASCII(s maze.Snapshot, path []maze.Coord,
	p asciiPainter) (string, error) {
	if s.CellCount() == 0 {
		return "", ErrEmptySnapshot
	}
	onPath, e := pathMask(s, path)
	if e != nil {
		return "", e
	}
	entrance, exit := endpoints(s)
	var output strings.Builder

	// Top boundary, open above the entrance.
	output.WriteString(p.wall("+"))
	for col := 0; col < s.Width; col++ {
		if col == entrance.X {
			output.WriteString(p.arrow(" v "))
		} else {
			output.WriteString(p.wall("---"))
		}
		output.WriteString(p.wall("+"))
	}
	output.WriteByte('\n')

	for row := 0; row < s.Height; row++ {
		// Cell rows
		output.WriteString(p.wall("|"))
		for col := 0; col < s.Width; col++ {
			c := maze.Coord{X: col, Y: row}
			switch {
			case onPath[row*s.Width+col]:
				output.WriteString(p.solution(" * "))
			case !s.Visited(c):
				output.WriteString(p.unvisited(":::"))
			case (s.State != maze.StateDone) && s.HasLast && (s.Last == c):
				output.WriteString(p.current(" @ "))
			default:
				output.WriteString("   ")
			}
			if s.IsOpen(c, c.Add(1, 0)) {
				output.WriteString(" ")
			} else {
				output.WriteString(p.wall("|"))
			}
		}
		output.WriteByte('\n')

		// Wall rows
		output.WriteString(p.wall("+"))
		for col := 0; col < s.Width; col++ {
			c := maze.Coord{X: col, Y: row}
			if s.IsOpen(c, c.Add(0, 1)) {
				output.WriteString("   ")
			} else if c == exit {
				output.WriteString(p.arrow(" v "))
			} else {
				output.WriteString(p.wall("---"))
			}
			output.WriteString(p.wall("+"))
		}
		output.WriteByte('\n')
	}
	return output.String(), nil
}
