package maze

import (
	"fmt"
	"sort"
)

// Holds the cell and wall state of a rectangular maze. Cells live in a flat,
// row-major arena; walls are stored by the cell on their left or top side,
// so no cell ever references another one directly. Create using NewGrid.
type Grid struct {
	// Width and height are numbers of cells
	width  int
	height int
	// One entry per cell, true once the cell has joined the maze.
	visited []bool
	// openRight[i] is true if the wall between cell i and the cell to its
	// right has been removed. The rightmost column never uses its entry.
	openRight []bool
	// openDown[i] is the same as openRight, but for the cell below.
	openDown []bool
}

// Allocates a grid with every cell unvisited and every wall present.
func NewGrid(width, height int) (*Grid, error) {
	if (width < 1) || (height < 1) {
		return nil, ErrInvalidDimensions
	}
	cellCount := width * height
	// Check for overflow.
	if (cellCount <= 0) || (cellCount/width != height) {
		return nil, ErrGridTooLarge
	}
	return &Grid{
		width:     width,
		height:    height,
		visited:   make([]bool, cellCount),
		openRight: make([]bool, cellCount),
		openDown:  make([]bool, cellCount),
	}, nil
}

// Allocates a roughly square grid containing at most n cells. The number of
// rows is the integer square root of n and the number of columns is n divided
// by the rows, so the grid may hold fewer than n cells if n doesn't factor
// evenly. Check CellCount for the number of cells actually used.
func NewGridForCellCount(n int) (*Grid, error) {
	if n < 1 {
		return nil, ErrInvalidDimensions
	}
	rows := isqrt(n)
	cols := n / rows
	return NewGrid(cols, rows)
}

// Returns the largest r such that r*r <= n. Requires n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	// Newton's method, starting above the root so it converges downward.
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Returns the number of cells in the grid.
func (g *Grid) CellCount() int {
	return len(g.visited)
}

// Returns true if c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return (c.X >= 0) && (c.Y >= 0) && (c.X < g.width) && (c.Y < g.height)
}

// Maps c to its row-major index. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(index int) Coord {
	return Coord{X: index % g.width, Y: index / g.width}
}

// Returns the in-bounds orthogonal neighbors of c, in N, E, S, W order.
// Positions outside of the grid are simply left out.
func (g *Grid) Neighbors(c Coord) []Coord {
	toReturn := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			toReturn = append(toReturn, n)
		}
	}
	return toReturn
}

// Returns true if the cell has joined the maze. Out-of-bounds cells are
// never visited.
func (g *Grid) Visited(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.visited[g.Index(c)]
}

// Returns the number of visited cells.
func (g *Grid) VisitedCount() int {
	count := 0
	for _, v := range g.visited {
		if v {
			count++
		}
	}
	return count
}

func (g *Grid) markVisited(c Coord) {
	g.visited[g.Index(c)] = true
}

// Returns a pointer to the flag storing the open state of the wall between
// a and b, or nil if they aren't adjacent cells within the grid.
func (g *Grid) edgeFlag(a, b Coord) *bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil
	}
	e := NewEdge(a, b)
	if !e.Adjacent() {
		return nil
	}
	index := g.Index(e.A)
	if e.B.Y == e.A.Y {
		return &(g.openRight[index])
	}
	return &(g.openDown[index])
}

// Returns true if the wall between a and b has been removed. Returns false
// for cells that aren't neighbors.
func (g *Grid) IsOpen(a, b Coord) bool {
	flag := g.edgeFlag(a, b)
	if flag == nil {
		return false
	}
	return *flag
}

// Removes the wall between the two cells. This doesn't change either cell's
// visited state; generators do that themselves.
func (g *Grid) OpenEdge(a, b Coord) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("opening %s: %w", NewEdge(a, b), ErrOutOfBounds)
	}
	flag := g.edgeFlag(a, b)
	if flag == nil {
		return fmt.Errorf("opening %s: %w", NewEdge(a, b), ErrNotAdjacent)
	}
	*flag = true
	return nil
}

// Calls f for every wall in the grid, open or not, in row-major order of the
// first cell, right wall before bottom wall.
func (g *Grid) forEachEdge(f func(e Edge, open bool)) {
	for row := 0; row < g.height; row++ {
		rowStartIdx := row * g.width
		for col := 0; col < g.width; col++ {
			index := rowStartIdx + col
			c := Coord{X: col, Y: row}
			if col != (g.width - 1) {
				f(Edge{A: c, B: c.Add(1, 0)}, g.openRight[index])
			}
			if row != (g.height - 1) {
				f(Edge{A: c, B: c.Add(0, 1)}, g.openDown[index])
			}
		}
	}
}

// Returns every removed wall, sorted by its first cell and then its second.
func (g *Grid) OpenEdges() []Edge {
	var toReturn []Edge
	g.forEachEdge(func(e Edge, open bool) {
		if open {
			toReturn = append(toReturn, e)
		}
	})
	sortEdges(toReturn)
	return toReturn
}

// Returns every wall that is still standing, in the same order as OpenEdges.
func (g *Grid) ClosedEdges() []Edge {
	var toReturn []Edge
	g.forEachEdge(func(e Edge, open bool) {
		if !open {
			toReturn = append(toReturn, e)
		}
	})
	sortEdges(toReturn)
	return toReturn
}

// Returns the number of removed walls.
func (g *Grid) OpenEdgeCount() int {
	count := 0
	g.forEachEdge(func(e Edge, open bool) {
		if open {
			count++
		}
	})
	return count
}

// Returns the total number of interior walls, open or closed.
func (g *Grid) EdgeCount() int {
	return (g.width-1)*g.height + (g.height-1)*g.width
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A.Less(edges[j].A)
		}
		return edges[i].B.Less(edges[j].B)
	})
}

// Marks every cell unvisited and closes every wall.
func (g *Grid) Reset() {
	for i := range g.visited {
		g.visited[i] = false
		g.openRight[i] = false
		g.openDown[i] = false
	}
}
