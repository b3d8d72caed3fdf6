// Package render draws maze snapshots. Everything here only reads
// maze.Snapshot values, so a renderer can run on a different goroutine from
// the generator as long as it's handed snapshots rather than the generator
// itself.
package render

import (
	"errors"

	"github.com/kian-mehta/ExtendedEssay/maze"
)

// The number of pixels across, in a square cell. Must be at least 5.
const CellPixels = 9

var (
	// Returned when a path passed to a renderer leaves the maze.
	ErrPathOutOfBounds = errors.New("render: path cell out of bounds")
	// Returned when trying to render a snapshot that has no grid, such as
	// the zero value.
	ErrEmptySnapshot = errors.New("render: snapshot has no cells")
)

// Returns the maze's entrance and exit: the top-left and bottom-right
// cells. These match maze.Info.Entrance and maze.Info.Exit.
func endpoints(s maze.Snapshot) (maze.Coord, maze.Coord) {
	return maze.Coord{}, maze.Coord{X: s.Width - 1, Y: s.Height - 1}
}

// Returns a per-cell lookup of the cells on the given path, indexed
// row-major.
func pathMask(s maze.Snapshot, path []maze.Coord) ([]bool, error) {
	toReturn := make([]bool, s.CellCount())
	for _, c := range path {
		if !s.InBounds(c) {
			return nil, ErrPathOutOfBounds
		}
		toReturn[c.Y*s.Width+c.X] = true
	}
	return toReturn, nil
}
