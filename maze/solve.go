package maze

import (
	"fmt"
	"time"
)

// The outcome of running one of the solvers.
type SolveResult struct {
	// The cells from the start to the end, inclusive.
	Path []Coord
	// The number of cells the solver looked at before it found the end.
	Explored int
	Elapsed  time.Duration
}

// Returns the offset for moving one cell in the given direction.
func dirOffset(dir int) (int, int) {
	switch dir {
	case dirLeft:
		return -1, 0
	case dirUp:
		return 0, -1
	case dirRight:
		return 1, 0
	case dirDown:
		return 0, 1
	}
	panic("Bad direction.")
}

// Fills dirRanking with a permutation of the four directions, where index 0
// is the direction most likely to decrease the manhattan distance to the
// target and index 3 is the least likely. Ties may be broken arbitrarily.
func setDirRanking(current, target Coord, dirRanking *[4]int) {
	colDiff := target.X - current.X
	rowDiff := target.Y - current.Y
	vertical := [2]int{dirUp, dirDown}
	if rowDiff > 0 {
		vertical = [2]int{dirDown, dirUp}
	}
	horizontal := [2]int{dirLeft, dirRight}
	if colDiff > 0 {
		horizontal = [2]int{dirRight, dirLeft}
	}
	if abs(rowDiff) > abs(colDiff) {
		// The row difference is bigger, so moving up or down is highest
		// priority.
		*dirRanking = [4]int{vertical[0], horizontal[0], horizontal[1],
			vertical[1]}
		return
	}
	*dirRanking = [4]int{horizontal[0], vertical[0], vertical[1],
		horizontal[1]}
}

// Rebuilds the path ending at the given index by following parent indices.
func tracePath(g *Grid, parents []int, end int) []Coord {
	length := 0
	for i := end; i >= 0; i = parents[i] {
		length++
	}
	toReturn := make([]Coord, length)
	for i := end; i >= 0; i = parents[i] {
		length--
		toReturn[length] = g.Coordinate(i)
	}
	return toReturn
}

func checkEndpoints(g *Grid, from, to Coord) error {
	if g == nil {
		return ErrNoPath
	}
	if !g.InBounds(from) {
		return fmt.Errorf("solving from %s: %w", from, ErrOutOfBounds)
	}
	if !g.InBounds(to) {
		return fmt.Errorf("solving to %s: %w", to, ErrOutOfBounds)
	}
	return nil
}

// Finds a path between two cells using a depth-first search that follows
// each corridor as long as possible, preferring whichever direction
// minimizes the manhattan distance to the target. The path is not
// necessarily the shortest one if the maze contains loops. Returns ErrNoPath
// if the cells aren't connected.
func SolveDFS(s Snapshot, from, to Coord) (SolveResult, error) {
	startTime := time.Now()
	g := s.grid
	e := checkEndpoints(g, from, to)
	if e != nil {
		return SolveResult{}, e
	}
	visited := make([]bool, g.CellCount())
	// These will be -1 to indicate either uninitialized or the start of the
	// path.
	parents := make([]int, g.CellCount())
	for i := range parents {
		parents[i] = -1
	}
	explored := 1
	endIndex := g.Index(to)
	dfsStack := make([]int, 0, g.CellCount()/2+1)
	dfsStack = append(dfsStack, g.Index(from))
	visited[g.Index(from)] = true
	var dirRanking [4]int

DFSLoop:
	for {
		if len(dfsStack) == 0 {
			return SolveResult{}, fmt.Errorf("solving %s to %s: %w", from, to,
				ErrNoPath)
		}
		currentIndex := dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]
		if currentIndex == endIndex {
			break
		}
		current := g.Coordinate(currentIndex)

		// Follow the path as long as possible, minimizing manhattan distance
		// at each step.
		for {
			setDirRanking(current, to, &dirRanking)
			moveDst := -1
			for _, dir := range dirRanking {
				n := current.Add(dirOffset(dir))
				if !g.IsOpen(current, n) || visited[g.Index(n)] {
					continue
				}
				dstIndex := g.Index(n)
				visited[dstIndex] = true
				parents[dstIndex] = currentIndex
				explored++
				if moveDst == -1 {
					moveDst = dstIndex
					continue
				}
				// We already chose our next step, so test this one later.
				dfsStack = append(dfsStack, dstIndex)
			}
			if moveDst < 0 {
				break
			}
			currentIndex = moveDst
			current = g.Coordinate(moveDst)
			if currentIndex == endIndex {
				break DFSLoop
			}
		}
	}

	return SolveResult{
		Path:     tracePath(g, parents, endIndex),
		Explored: explored,
		Elapsed:  time.Since(startTime),
	}, nil
}
