package maze

// A read-only copy of a maze's state at one point in time, for renderers.
// Snapshots never share storage with the grid they were taken from.
type Snapshot struct {
	// Width and height are numbers of cells
	Width  int
	Height int
	// The generator's state when the snapshot was taken.
	State State
	// The cell the maze was grown from. Algorithms without a seed cell
	// report (0, 0).
	Start Coord
	// The most recently connected cell. Only valid if HasLast is set.
	Last    Coord
	HasLast bool
	// The number of candidates still waiting in the frontier.
	FrontierLen int
	// The number of steps performed so far.
	Steps int
	grid  *Grid
}

// Returns a deep copy of the grid, wrapped in a Snapshot with only the
// dimensions set.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		Width:  g.width,
		Height: g.height,
		grid:   g.clone(),
	}
}

func (g *Grid) clone() *Grid {
	toReturn := &Grid{
		width:     g.width,
		height:    g.height,
		visited:   make([]bool, len(g.visited)),
		openRight: make([]bool, len(g.openRight)),
		openDown:  make([]bool, len(g.openDown)),
	}
	copy(toReturn.visited, g.visited)
	copy(toReturn.openRight, g.openRight)
	copy(toReturn.openDown, g.openDown)
	return toReturn
}

// Returns a private, mutable copy of the snapshot's grid. Used for
// post-processing such as Braid without touching the snapshot.
func (s Snapshot) Grid() *Grid {
	if s.grid == nil {
		return nil
	}
	return s.grid.clone()
}

func (s Snapshot) CellCount() int {
	return s.Width * s.Height
}

func (s Snapshot) InBounds(c Coord) bool {
	return (s.grid != nil) && s.grid.InBounds(c)
}

func (s Snapshot) Visited(c Coord) bool {
	return (s.grid != nil) && s.grid.Visited(c)
}

func (s Snapshot) VisitedCount() int {
	if s.grid == nil {
		return 0
	}
	return s.grid.VisitedCount()
}

func (s Snapshot) IsOpen(a, b Coord) bool {
	return (s.grid != nil) && s.grid.IsOpen(a, b)
}

func (s Snapshot) OpenEdges() []Edge {
	if s.grid == nil {
		return nil
	}
	return s.grid.OpenEdges()
}

func (s Snapshot) OpenEdgeCount() int {
	if s.grid == nil {
		return 0
	}
	return s.grid.OpenEdgeCount()
}

// Returns the neighbors of c reachable through removed walls, in N, E, S, W
// order.
func (s Snapshot) OpenNeighbors(c Coord) []Coord {
	if s.grid == nil {
		return nil
	}
	return s.grid.OpenNeighbors(c)
}

// Returns whether each of the cell's walls is present, in the order left,
// top, right, bottom. The outer boundary always counts as a wall.
func (s Snapshot) Walls(c Coord) [4]bool {
	var toReturn [4]bool
	toReturn[dirLeft] = !s.IsOpen(c, c.Add(-1, 0))
	toReturn[dirUp] = !s.IsOpen(c, c.Add(0, -1))
	toReturn[dirRight] = !s.IsOpen(c, c.Add(1, 0))
	toReturn[dirDown] = !s.IsOpen(c, c.Add(0, 1))
	return toReturn
}

// Returns the maze as a (2*Height+1) x (2*Width+1) raster, indexed [row][col],
// in which cells sit at odd coordinates and the walls between them at the
// positions in between. An entry is true for visited cells and removed walls;
// everything else, including the outer border, is false.
func (s Snapshot) Blocks() [][]bool {
	rows := 2*s.Height + 1
	cols := 2*s.Width + 1
	toReturn := make([][]bool, rows)
	for i := range toReturn {
		toReturn[i] = make([]bool, cols)
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := Coord{X: x, Y: y}
			bx, by := 2*x+1, 2*y+1
			toReturn[by][bx] = s.Visited(c)
			if s.IsOpen(c, c.Add(1, 0)) {
				toReturn[by][bx+1] = true
			}
			if s.IsOpen(c, c.Add(0, 1)) {
				toReturn[by+1][bx] = true
			}
		}
	}
	return toReturn
}

// Returns the block raster position of a cell.
func BlockPosition(c Coord) Coord {
	return Coord{X: 2*c.X + 1, Y: 2*c.Y + 1}
}

// Returns the neighbors of c reachable through removed walls.
func (g *Grid) OpenNeighbors(c Coord) []Coord {
	toReturn := make([]Coord, 0, 4)
	for _, n := range g.Neighbors(c) {
		if g.IsOpen(c, n) {
			toReturn = append(toReturn, n)
		}
	}
	return toReturn
}
