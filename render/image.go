package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kian-mehta/ExtendedEssay/maze"
)

// Differentiates between the ways a cell can be drawn.
type cellState uint8

const (
	cellNormal cellState = iota
	cellSolution
	cellUnvisited
	cellCurrent
)

func (s cellState) String() string {
	switch s {
	case cellNormal:
		return "normal"
	case cellSolution:
		return "solutionPath"
	case cellUnvisited:
		return "unvisited"
	case cellCurrent:
		return "current"
	}
	return fmt.Sprintf("Unknown cellState: %d", uint8(s))
}

var (
	solutionColor  = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	unvisitedColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	currentColor   = color.RGBA{R: 40, G: 180, B: 70, A: 255}
)

// A single cell of the maze. Can be drawn as an image individually.
type cellImage struct {
	// Whether each of the cell's walls are present. The order is left, top,
	// right, bottom. Each entry is true if the wall is there.
	walls [4]bool
	state cellState
}

func (c *cellImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (c *cellImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, CellPixels, CellPixels)
}

// Takes an integer, 0 through 3, corresponding to the top-left, top-right,
// bottom-right, and bottom-left corners. Returns false only if both walls
// adjacent to the corner are clear.
func (c *cellImage) cornerSet(n int) bool {
	if (n < 0) || (n > 3) {
		return true
	}
	if n == 3 {
		return c.walls[3] || c.walls[0]
	}
	return c.walls[n] || c.walls[n+1]
}

func wallColor(set bool) color.Color {
	if set {
		return color.Black
	}
	return color.White
}

func (c *cellImage) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= CellPixels) || (y >= CellPixels) {
		return color.Transparent
	}
	last := CellPixels - 1
	switch {
	case (x == 0) && (y == 0):
		return wallColor(c.cornerSet(0))
	case (x == last) && (y == 0):
		return wallColor(c.cornerSet(1))
	case (x == last) && (y == last):
		return wallColor(c.cornerSet(2))
	case (x == 0) && (y == last):
		return wallColor(c.cornerSet(3))
	case x == 0:
		return wallColor(c.walls[0])
	case y == 0:
		return wallColor(c.walls[1])
	case x == last:
		return wallColor(c.walls[2])
	case y == last:
		return wallColor(c.walls[3])
	}
	// At this point, we're not along any wall.
	switch c.state {
	case cellUnvisited:
		return unvisitedColor
	case cellNormal:
		return color.White
	}
	// Highlighted cells are filled if more than two pixels away from an edge.
	if (x > 1) && (x < (CellPixels - 2)) && (y > 1) &&
		(y < (CellPixels - 2)) {
		if c.state == cellCurrent {
			return currentColor
		}
		return solutionColor
	}
	return color.White
}

// Satisfies the image.Image interface, drawing a maze snapshot with
// CellPixels pixels per cell. Cells that haven't joined the maze yet are
// shaded, and the most recently connected cell is highlighted, so a sequence
// of these can be used to animate generation. The walls above the entrance
// and below the exit are left open. Create using NewImage.
type Image struct {
	width  int
	height int
	cells  []cellImage
}

// Captures the snapshot's walls and cell states. The snapshot isn't retained.
func NewImage(s maze.Snapshot) (*Image, error) {
	if (s.Width < 1) || (s.Height < 1) || !s.InBounds(maze.Coord{}) {
		return nil, ErrEmptySnapshot
	}
	toReturn := &Image{
		width:  s.Width,
		height: s.Height,
		cells:  make([]cellImage, s.CellCount()),
	}
	for i := range toReturn.cells {
		c := maze.Coord{X: i % s.Width, Y: i / s.Width}
		cell := &(toReturn.cells[i])
		cell.walls = s.Walls(c)
		if !s.Visited(c) {
			cell.state = cellUnvisited
		} else if (s.State != maze.StateDone) && s.HasLast && (s.Last == c) {
			cell.state = cellCurrent
		}
	}
	entrance, exit := endpoints(s)
	toReturn.cells[entrance.Y*s.Width+entrance.X].walls[1] = false
	toReturn.cells[exit.Y*s.Width+exit.X].walls[3] = false
	return toReturn, nil
}

// Highlights the given cells, typically a path returned by one of the maze
// solvers. Replaces any previously shown solution.
func (m *Image) ShowSolution(s maze.Snapshot, path []maze.Coord) error {
	if (s.Width != m.width) || (s.Height != m.height) {
		return fmt.Errorf("solution for a %dx%d maze doesn't fit a %dx%d "+
			"image", s.Width, s.Height, m.width, m.height)
	}
	mask, e := pathMask(s, path)
	if e != nil {
		return e
	}
	m.ClearSolution()
	for i, onPath := range mask {
		if onPath {
			m.cells[i].state = cellSolution
		}
	}
	return nil
}

// Removes the highlight added by ShowSolution.
func (m *Image) ClearSolution() {
	for i := range m.cells {
		if m.cells[i].state == cellSolution {
			m.cells[i].state = cellNormal
		}
	}
}

func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width*CellPixels, m.height*CellPixels)
}

func (m *Image) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= m.width*CellPixels) ||
		(y >= m.height*CellPixels) {
		return color.Transparent
	}
	// We delegate drawing of each pixel to the At() function for the cell it
	// falls into.
	col := x / CellPixels
	row := y / CellPixels
	return m.cells[row*m.width+col].At(x%CellPixels, y%CellPixels)
}

// Returns the pixel at the middle of the given side of a cell, where side
// is 0 through 3 for left, top, right and bottom.
func (m *Image) sideMidpoint(c maze.Coord, side int) image.Point {
	left := c.X * CellPixels
	top := c.Y * CellPixels
	half := CellPixels / 2
	switch side {
	case 0:
		return image.Pt(left, top+half)
	case 1:
		return image.Pt(left+half, top)
	case 2:
		return image.Pt(left+CellPixels-1, top+half)
	}
	return image.Pt(left+half, top+CellPixels-1)
}
