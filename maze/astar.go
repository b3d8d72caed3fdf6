package maze

import (
	"container/heap"
	"fmt"
	"time"
)

type openNode struct {
	index int
	// The path cost from the start plus the manhattan distance to the end.
	priority int
	// Insertion order, used to break ties so that results are reproducible.
	order int
}

// A min-heap of open nodes, for use with container/heap.
type openSet []openNode

func (s openSet) Len() int {
	return len(s)
}

func (s openSet) Less(i, j int) bool {
	if s[i].priority != s[j].priority {
		return s[i].priority < s[j].priority
	}
	return s[i].order < s[j].order
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s *openSet) Push(v any) {
	*s = append(*s, v.(openNode))
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	toReturn := old[n-1]
	*s = old[:n-1]
	return toReturn
}

// Finds a shortest path between two cells using A* with the manhattan
// distance heuristic. Explored counts the cells removed from the open set.
// Returns ErrNoPath if the cells aren't connected.
func SolveAStar(s Snapshot, from, to Coord) (SolveResult, error) {
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
			// A stale entry, superseded by a cheaper path.
			continue
		}
		closed[node.index] = true
		explored++
		if node.index == endIndex {
			return SolveResult{
				Path:     tracePath(g, parents, endIndex),
				Explored: explored,
				Elapsed:  time.Since(startTime),
			}, nil
		}
		current := g.Coordinate(node.index)
		for _, n := range g.OpenNeighbors(current) {
			nIndex := g.Index(n)
			if closed[nIndex] {
				continue
			}
			cost := costs[node.index] + 1
			if (costs[nIndex] >= 0) && (costs[nIndex] <= cost) {
				continue
			}
			costs[nIndex] = cost
			parents[nIndex] = node.index
			heap.Push(open, openNode{
				index:    nIndex,
				priority: cost + n.Manhattan(to),
				order:    order,
			})
			order++
		}
	}
	return SolveResult{}, fmt.Errorf("solving %s to %s: %w", from, to,
		ErrNoPath)
}
