package maze

import (
	"container/heap"
	"fmt"
	"time"
)

// Returns true if c is the middle of a straight corridor running along
// (dx, dy): its only passages lead forward and back.
func straightCorridor(g *Grid, c Coord, dx, dy int) bool {
	if !g.IsOpen(c, c.Add(dx, dy)) || !g.IsOpen(c, c.Add(-dx, -dy)) {
		return false
	}
	return !g.IsOpen(c, c.Add(dy, dx)) && !g.IsOpen(c, c.Add(-dy, -dx))
}

// Moves from c in the direction (dx, dy), which must be open, until reaching
// the target or a cell that isn't a straight corridor: a junction, a turn or
// a dead end. Returns that cell and the number of moves made.
func jump(g *Grid, c Coord, dx, dy int, target Coord) (Coord, int) {
	distance := 0
	for {
		c = c.Add(dx, dy)
		distance++
		if (c == target) || !straightCorridor(g, c, dx, dy) {
			return c, distance
		}
	}
}

// Rebuilds the full path from jump point parents, filling in the corridor
// cells skipped between each jump point and its parent.
func traceJumps(g *Grid, parents []int, end int) []Coord {
	var reversed []Coord
	i := end
	for parents[i] >= 0 {
		c := g.Coordinate(i)
		parent := g.Coordinate(parents[i])
		dx := sign(parent.X - c.X)
		dy := sign(parent.Y - c.Y)
		for c != parent {
			reversed = append(reversed, c)
			c = c.Add(dx, dy)
		}
		i = parents[i]
	}
	reversed = append(reversed, g.Coordinate(i))
	toReturn := make([]Coord, len(reversed))
	for j, c := range reversed {
		toReturn[len(reversed)-1-j] = c
	}
	return toReturn
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// Finds a shortest path between two cells using jump point search restricted
// to four directions. It's A* over "jump points" only: from each expanded
// cell, the search slides along every open direction without stopping in
// straight corridors, so Explored counts junctions, turns and dead ends
// rather than every cell on the way. Returns ErrNoPath if the cells aren't
// connected.
func SolveJPS(s Snapshot, from, to Coord) (SolveResult, error) {
	startTime := time.Now()
	g := s.grid
	e := checkEndpoints(g, from, to)
	if e != nil {
		return SolveResult{}, e
	}
	cellCount := g.CellCount()
	costs := make([]int, cellCount)
	parents := make([]int, cellCount)
	closed := make([]bool, cellCount)
	for i := range costs {
		costs[i] = -1
		parents[i] = -1
	}
	startIndex := g.Index(from)
	endIndex := g.Index(to)
	costs[startIndex] = 0
	open := &openSet{{index: startIndex, priority: from.Manhattan(to)}}
	order := 1
	explored := 0

	for open.Len() != 0 {
		node := heap.Pop(open).(openNode)
		if closed[node.index] {
			continue
		}
		closed[node.index] = true
		explored++
		if node.index == endIndex {
			return SolveResult{
				Path:     traceJumps(g, parents, endIndex),
				Explored: explored,
				Elapsed:  time.Since(startTime),
			}, nil
		}
		current := g.Coordinate(node.index)
		for _, d := range neighborOffsets {
			if !g.IsOpen(current, current.Add(d[0], d[1])) {
				continue
			}
			jumpPoint, distance := jump(g, current, d[0], d[1], to)
			jpIndex := g.Index(jumpPoint)
			if closed[jpIndex] {
				continue
			}
			cost := costs[node.index] + distance
			if (costs[jpIndex] >= 0) && (costs[jpIndex] <= cost) {
				continue
			}
			costs[jpIndex] = cost
			parents[jpIndex] = node.index
			heap.Push(open, openNode{
				index:    jpIndex,
				priority: cost + jumpPoint.Manhattan(to),
				order:    order,
			})
			order++
		}
	}
	return SolveResult{}, fmt.Errorf("solving %s to %s: %w", from, to,
		ErrNoPath)
}
