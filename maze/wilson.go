package maze

// Wilson's algorithm. Each step starts a random walk from a random
// unvisited cell, runs it until it touches the maze, and grafts the
// loop-erased walk onto the maze.
type wilson struct {
	// Indices of cells that may still be unvisited. Visited entries are
	// removed lazily when sampled.
	unvisited []int
	// The number of cells that really are unvisited.
	remaining int
	// next[i] is the index the walk most recently left cell i toward.
	// Overwriting it when the walk revisits i is what erases loops.
	next []int
	// Scratch space for the path being grafted.
	path []Coord
}

func (w *wilson) begin(g *Grid, start Coord, rng Rand) {
	n := g.CellCount()
	if len(w.next) != n {
		w.next = make([]int, n)
	}
	w.unvisited = w.unvisited[:0]
	startIndex := g.Index(start)
	for i := 0; i < n; i++ {
		w.next[i] = -1
		if i != startIndex {
			w.unvisited = append(w.unvisited, i)
		}
	}
	g.markVisited(start)
	w.remaining = n - 1
}

// Picks a random cell that isn't part of the maze yet. Requires remaining
// to be nonzero.
func (w *wilson) sampleUnvisited(g *Grid, rng Rand) int {
	for {
		i := rng.Intn(len(w.unvisited))
		index := w.unvisited[i]
		if !g.visited[index] {
			return index
		}
		last := len(w.unvisited) - 1
		w.unvisited[i] = w.unvisited[last]
		w.unvisited = w.unvisited[:last]
	}
}

func (w *wilson) step(g *Grid, rng Rand) (stepResult, error) {
	if w.remaining == 0 {
		return stepResult{}, ErrEmptyFrontier
	}
	walkStart := w.sampleUnvisited(g, rng)

	// Walk until we hit the maze, remembering only the last exit from each
	// cell.
	current := walkStart
	for !g.visited[current] {
		neighbors := g.Neighbors(g.Coordinate(current))
		n := neighbors[rng.Intn(len(neighbors))]
		w.next[current] = g.Index(n)
		current = w.next[current]
	}

	// Follow the loop-erased walk from its start to the maze.
	w.path = w.path[:0]
	current = walkStart
	for !g.visited[current] {
		w.path = append(w.path, g.Coordinate(current))
		current = w.next[current]
	}
	w.path = append(w.path, g.Coordinate(current))

	// Graft it on starting at the maze, so that every opened wall has one
	// side that was already connected.
	commits := 0
	for i := len(w.path) - 2; i >= 0; i-- {
		c := w.path[i]
		g.markVisited(c)
		e := g.OpenEdge(c, w.path[i+1])
		if e != nil {
			return stepResult{}, e
		}
		w.remaining--
		commits++
	}
	return stepResult{commits: commits, last: w.path[0]}, nil
}

func (w *wilson) done() bool {
	return w.remaining == 0
}

func (w *wilson) pending() int {
	return w.remaining
}
