// This defines a library for generating 2D "perfect" mazes: spanning trees
// over a rectangular grid graph, grown by randomized algorithms from a seed
// cell. The grid state can be stepped one commit at a time, so an external
// renderer may animate the generation, or run to completion in one call.
package maze

import (
	"errors"
	"fmt"
)

var (
	// Returned when a grid dimension is less than 1.
	ErrInvalidDimensions = errors.New("maze: width and height must be at " +
		"least 1")
	// Returned when the requested cell count overflows an int.
	ErrGridTooLarge = errors.New("maze: the grid's size was too big")
	// Returned when a coordinate falls outside of the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// Returned when trying to open an edge between two cells that don't
	// share a wall.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")
	// Returned when popping from an empty frontier. Callers must check
	// IsEmpty first, so this always indicates a contract violation.
	ErrEmptyFrontier = errors.New("maze: pop from an empty frontier")
	// Returned by the solvers if no path connects the two cells.
	ErrNoPath = errors.New("maze: no path between the given cells")
	// Returned by post-processing that requires a complete maze.
	ErrNotDone = errors.New("maze: generation has not finished")
	// Returned when parsing an unknown algorithm name.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
)

// The random source used by every randomized operation in this package. A
// *rand.Rand satisfies it. Injecting a deterministic source reproduces a
// maze exactly.
type Rand interface {
	Intn(n int) int
}

// Identifies a single cell in the grid. X is the column, Y is the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Returns the coordinate offset by dx and dy.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Returns true if c comes before other in row-major order.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// Returns the manhattan distance between the two coordinates.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// The wall between two cells. Edges are unordered: NewEdge always stores the
// cell that comes first in row-major order as A, so an Edge can be used as a
// map key regardless of which side it was built from.
type Edge struct {
	A Coord `json:"a"`
	B Coord `json:"b"`
}

// Returns the normalized edge between a and b.
func NewEdge(a, b Coord) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Returns true if the edge connects two orthogonally neighboring cells.
func (e Edge) Adjacent() bool {
	return e.A.Manhattan(e.B) == 1
}

// Returns the endpoint that isn't c. Only meaningful if c is one of the
// endpoints.
func (e Edge) Other(c Coord) Coord {
	if e.A == c {
		return e.B
	}
	return e.A
}

func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.A, e.B)
}

// Directions, in the order left, top, right, bottom. This order is also used
// for the per-cell wall arrays returned by Snapshot.Walls.
const (
	dirLeft = iota
	dirUp
	dirRight
	dirDown
)

// Neighbor offsets, N, E, S, W. This is the order in which neighbors are
// returned and frontier candidates are proposed.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
