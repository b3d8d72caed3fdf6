package maze

// Removes wall segments that "stick out": ones that don't touch another
// wall at one of their ends. Only interior corners are examined, so the
// outer boundary is never touched. Calling this repeatedly erodes the maze
// further. Returns the number of walls removed.
func (g *Grid) ErodeWalls() int {
	// Work from a copy to avoid removing several connected segments in a
	// single call.
	orig := g.clone()
	removed := 0
	for row := 0; row < (g.height - 1); row++ {
		for col := 0; col < (g.width - 1); col++ {
			// The four walls meeting at the bottom right corner of the cell.
			main := Coord{X: col, Y: row}
			right := main.Add(1, 0)
			below := main.Add(0, 1)
			diagonal := main.Add(1, 1)
			corner := [4]Edge{
				NewEdge(main, right),
				NewEdge(main, below),
				NewEdge(below, diagonal),
				NewEdge(right, diagonal),
			}
			wallCount := 0
			var wall Edge
			for _, e := range corner {
				if orig.IsOpen(e.A, e.B) {
					continue
				}
				wallCount++
				wall = e
			}
			if wallCount != 1 {
				continue
			}
			flag := g.edgeFlag(wall.A, wall.B)
			if !*flag {
				*flag = true
				removed++
			}
		}
	}
	return removed
}

// Erodes a completed maze. See Grid.ErodeWalls.
func (g *Generator) ErodeWalls() (int, error) {
	if g.state != StateDone {
		return 0, ErrNotDone
	}
	return g.grid.ErodeWalls(), nil
}
