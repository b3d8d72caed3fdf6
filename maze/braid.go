package maze

import "math"

// Returns the number of walls Braid opens for the given fraction of a grid
// with the given number of cells: the fraction is relative to the number of
// passages in a perfect maze, cells - 1. Fractions above maxBraidFraction,
// including +Inf, count as maxBraidFraction.
func BraidCount(cellCount int, fraction float64) int {
	if (cellCount < 2) || !(fraction > 0) {
		return 0
	}
	if fraction > maxBraidFraction {
		fraction = maxBraidFraction
	}
	return int(math.Round(fraction * float64(cellCount-1)))
}

// A grid has fewer than 2*(cells-1) walls, so no larger fraction can open
// more of them.
const maxBraidFraction = 2.0

// Turns a perfect maze into one with loops by opening randomly chosen walls
// between visited cells. Opens BraidCount(CellCount(), fraction) walls, or
// every remaining one if there are fewer. Returns the number of walls
// opened.
func (g *Grid) Braid(fraction float64, rng Rand) int {
	wanted := BraidCount(g.CellCount(), fraction)
	if wanted == 0 {
		return 0
	}
	var closed []Edge
	g.forEachEdge(func(e Edge, open bool) {
		if !open && g.Visited(e.A) && g.Visited(e.B) {
			closed = append(closed, e)
		}
	})
	if wanted > len(closed) {
		wanted = len(closed)
	}
	// A partial Fisher-Yates shuffle picks the walls without repeats.
	for i := 0; i < wanted; i++ {
		j := i + rng.Intn(len(closed)-i)
		closed[i], closed[j] = closed[j], closed[i]
		*(g.edgeFlag(closed[i].A, closed[i].B)) = true
	}
	return wanted
}

// Opens extra walls in a completed maze, using the generator's random
// source. See Grid.Braid. Returns the number of walls opened, or an error if
// generation hasn't finished.
func (g *Generator) Braid(fraction float64) (int, error) {
	if g.state != StateDone {
		return 0, ErrNotDone
	}
	return g.grid.Braid(fraction, g.rng), nil
}
