package maze

// Implements the disjoint set data structure from CLRS, over cell indices.
type disjointSet struct {
	parent []int
	rank   []int
	// The number of distinct sets.
	count int
}

// Resets the structure so that each of the n elements is in its own set.
func (s *disjointSet) init(n int) {
	if len(s.parent) != n {
		s.parent = make([]int, n)
		s.rank = make([]int, n)
	}
	for i := range s.parent {
		s.parent[i] = i
		s.rank[i] = 0
	}
	s.count = n
}

// Finds the unique "root" of the set containing i. Compresses the path
// along the way.
func (s *disjointSet) findSet(i int) int {
	root := i
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[i] != root {
		next := s.parent[i]
		s.parent[i] = root
		i = next
	}
	return root
}

// Merges the sets containing a and b. Returns false if they were already the
// same set.
func (s *disjointSet) union(a, b int) bool {
	x := s.findSet(a)
	y := s.findSet(b)
	if x == y {
		return false
	}
	s.count--
	if s.rank[x] > s.rank[y] {
		s.parent[y] = x
		return true
	}
	s.parent[x] = y
	if s.rank[x] == s.rank[y] {
		s.rank[y]++
	}
	return true
}

// Randomized Kruskal's algorithm. The candidate list holds every wall that
// hasn't been examined yet; a popped wall is removed if it separates two
// different sets.
type kruskal struct {
	sets  disjointSet
	walls []Edge
}

func (k *kruskal) begin(g *Grid, start Coord, rng Rand) {
	k.sets.init(g.CellCount())
	k.walls = k.walls[:0]
	// Each cell starts with a disconnected neighbor to its right and below,
	// except along the right and bottom edges.
	g.forEachEdge(func(e Edge, open bool) {
		k.walls = append(k.walls, e)
	})
	if g.CellCount() == 1 {
		// A 1x1 "maze" is complete as soon as it exists.
		g.markVisited(Coord{})
	}
}

func (k *kruskal) step(g *Grid, rng Rand) (stepResult, error) {
	if len(k.walls) == 0 {
		return stepResult{}, ErrEmptyFrontier
	}
	i := rng.Intn(len(k.walls))
	wall := k.walls[i]
	last := len(k.walls) - 1
	k.walls[i] = k.walls[last]
	k.walls = k.walls[:last]

	if !k.sets.union(g.Index(wall.A), g.Index(wall.B)) {
		return stepResult{}, nil
	}
	g.markVisited(wall.A)
	g.markVisited(wall.B)
	if e := g.OpenEdge(wall.A, wall.B); e != nil {
		return stepResult{}, e
	}
	// Once everything is in one set, every remaining wall would close a
	// loop, so there's no point popping them one at a time.
	if k.sets.count == 1 {
		k.walls = k.walls[:0]
	}
	return stepResult{commits: 1, last: wall.B}, nil
}

func (k *kruskal) done() bool {
	return len(k.walls) == 0
}

func (k *kruskal) pending() int {
	return len(k.walls)
}
