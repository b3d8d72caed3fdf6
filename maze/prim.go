package maze

// Randomized Prim's algorithm with a cell frontier and lazy invalidation.
type primCells struct {
	frontier *Frontier
}

func (p *primCells) begin(g *Grid, start Coord, rng Rand) {
	if p.frontier == nil {
		p.frontier = NewFrontier(g.CellCount())
	}
	p.frontier.Reset()
	g.markVisited(start)
	p.propose(g, start)
}

// Adds a candidate for each unvisited neighbor of source.
func (p *primCells) propose(g *Grid, source Coord) {
	for _, n := range g.Neighbors(source) {
		if !g.Visited(n) {
			p.frontier.Add(Candidate{Target: n, Source: source})
		}
	}
}

func (p *primCells) step(g *Grid, rng Rand) (stepResult, error) {
	c, e := p.frontier.PopRandom(rng)
	if e != nil {
		return stepResult{}, e
	}
	// The target may have been proposed by several sources before any of
	// them was popped. Committing it twice would close a loop.
	if g.Visited(c.Target) {
		return stepResult{}, nil
	}
	g.markVisited(c.Target)
	e = g.OpenEdge(c.Source, c.Target)
	if e != nil {
		return stepResult{}, e
	}
	p.propose(g, c.Target)
	return stepResult{commits: 1, last: c.Target}, nil
}

func (p *primCells) done() bool {
	return (p.frontier == nil) || p.frontier.IsEmpty()
}

func (p *primCells) pending() int {
	if p.frontier == nil {
		return 0
	}
	return p.frontier.Len()
}

// Randomized Prim's algorithm with a frontier of walls. Each wall enters the
// frontier at most once; membership is tracked in a bitmap indexed the same
// way as the grid's wall arena, so no frontier scan is ever needed.
type primWalls struct {
	frontier *Frontier
	// Indexed by wallIndex. Stays set after a wall is popped, so a wall is
	// never proposed twice.
	queued []bool
}

// Returns the index of the wall between two adjacent cells: walls to the
// right of a cell use the cell's index, walls below it are offset by the
// cell count.
func wallIndex(g *Grid, e Edge) int {
	index := g.Index(e.A)
	if e.A.Y == e.B.Y {
		return index
	}
	return g.CellCount() + index
}

func (p *primWalls) begin(g *Grid, start Coord, rng Rand) {
	if p.frontier == nil {
		p.frontier = NewFrontier(g.CellCount())
	}
	p.frontier.Reset()
	if len(p.queued) != 2*g.CellCount() {
		p.queued = make([]bool, 2*g.CellCount())
	}
	for i := range p.queued {
		p.queued[i] = false
	}
	g.markVisited(start)
	p.propose(g, start)
}

// Queues every standing wall around source that hasn't been queued before.
func (p *primWalls) propose(g *Grid, source Coord) {
	for _, n := range g.Neighbors(source) {
		if g.IsOpen(source, n) {
			continue
		}
		index := wallIndex(g, NewEdge(source, n))
		if p.queued[index] {
			continue
		}
		p.queued[index] = true
		p.frontier.Add(Candidate{Target: n, Source: source})
	}
}

func (p *primWalls) step(g *Grid, rng Rand) (stepResult, error) {
	c, e := p.frontier.PopRandom(rng)
	if e != nil {
		return stepResult{}, e
	}
	// The wall only joins the maze if exactly one side is visited. The
	// source side always is.
	if g.Visited(c.Source) == g.Visited(c.Target) {
		return stepResult{}, nil
	}
	unvisited := c.Target
	if !g.Visited(c.Source) {
		unvisited = c.Source
	}
	g.markVisited(unvisited)
	e = g.OpenEdge(c.Source, c.Target)
	if e != nil {
		return stepResult{}, e
	}
	p.propose(g, unvisited)
	return stepResult{commits: 1, last: unvisited}, nil
}

func (p *primWalls) done() bool {
	return (p.frontier == nil) || p.frontier.IsEmpty()
}

func (p *primWalls) pending() int {
	if p.frontier == nil {
		return 0
	}
	return p.frontier.Len()
}
