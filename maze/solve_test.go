package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fails unless path is a walk through open walls from the first cell to the
// last.
func requireValidPath(t *testing.T, s Snapshot, path []Coord, from,
	to Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, from, path[0])
	require.Equal(t, to, path[len(path)-1])
	seen := map[Coord]bool{}
	for i, c := range path {
		require.False(t, seen[c], "%s appears twice in the path", c)
		seen[c] = true
		if i != 0 {
			require.True(t, s.IsOpen(path[i-1], c), "no passage from %s to %s",
				path[i-1], c)
		}
	}
}

func TestSolvePerfectMaze(t *testing.T) {
	for _, a := range Algorithms() {
		g, e := Initialize(15, 11, WithSeed(8), WithAlgorithm(a))
		require.NoError(t, e)
		require.NoError(t, g.RunToCompletion())
		s := g.Snapshot()
		info := g.Info()

		dfs, e := SolveDFS(s, info.Entrance, info.Exit)
		require.NoError(t, e)
		requireValidPath(t, s, dfs.Path, info.Entrance, info.Exit)
		astar, e := SolveAStar(s, info.Entrance, info.Exit)
		require.NoError(t, e)
		requireValidPath(t, s, astar.Path, info.Entrance, info.Exit)
		jps, e := SolveJPS(s, info.Entrance, info.Exit)
		require.NoError(t, e)
		requireValidPath(t, s, jps.Path, info.Entrance, info.Exit)
		assert.Equal(t, astar.Path, jps.Path, "algorithm %s", a)

		// A perfect maze has exactly one path between two cells.
		assert.Equal(t, astar.Path, dfs.Path, "algorithm %s", a)
		assert.GreaterOrEqual(t, dfs.Explored, len(dfs.Path))
		assert.GreaterOrEqual(t, astar.Explored, len(astar.Path))
	}
}

func TestSolveBraidedMaze(t *testing.T) {
	g, e := Initialize(20, 20, WithSeed(13))
	require.NoError(t, e)
	require.NoError(t, g.RunToCompletion())
	_, e = g.Braid(0.3)
	require.NoError(t, e)
	s := g.Snapshot()
	from := Coord{0, 0}
	to := Coord{19, 19}
	dfs, e := SolveDFS(s, from, to)
	require.NoError(t, e)
	requireValidPath(t, s, dfs.Path, from, to)
	astar, e := SolveAStar(s, from, to)
	require.NoError(t, e)
	requireValidPath(t, s, astar.Path, from, to)
	assert.LessOrEqual(t, len(astar.Path), len(dfs.Path))
	jps, e := SolveJPS(s, from, to)
	require.NoError(t, e)
	requireValidPath(t, s, jps.Path, from, to)
	assert.Equal(t, len(astar.Path), len(jps.Path))
}

func TestSolveJPSBraidedShortest(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, e := Initialize(12, 9, WithSeed(seed), WithAlgorithm(AlgorithmWilson))
		require.NoError(t, e)
		require.NoError(t, g.RunToCompletion())
		_, e = g.Braid(0.2)
		require.NoError(t, e)
		s := g.Snapshot()
		from := Coord{2, 7}
		to := Coord{10, 1}
		astar, e := SolveAStar(s, from, to)
		require.NoError(t, e)
		jps, e := SolveJPS(s, from, to)
		require.NoError(t, e)
		requireValidPath(t, s, jps.Path, from, to)
		assert.Equal(t, len(astar.Path), len(jps.Path), "seed %d", seed)
	}
}

func TestSolveJPSStraightCorridor(t *testing.T) {
	// A single row is one corridor, so only the two ends are expanded.
	g, e := Initialize(9, 1, WithStart(Coord{}))
	require.NoError(t, e)
	require.NoError(t, g.RunToCompletion())
	r, e := SolveJPS(g.Snapshot(), Coord{0, 0}, Coord{8, 0})
	require.NoError(t, e)
	assert.Len(t, r.Path, 9)
	assert.Equal(t, 2, r.Explored)
	astar, e := SolveAStar(g.Snapshot(), Coord{0, 0}, Coord{8, 0})
	require.NoError(t, e)
	assert.Equal(t, 9, astar.Explored)
}

func TestSolveSameCell(t *testing.T) {
	g, e := Initialize(3, 3, WithSeed(1))
	require.NoError(t, e)
	require.NoError(t, g.RunToCompletion())
	c := Coord{1, 2}
	r, e := SolveDFS(g.Snapshot(), c, c)
	require.NoError(t, e)
	assert.Equal(t, []Coord{c}, r.Path)
	r, e = SolveAStar(g.Snapshot(), c, c)
	require.NoError(t, e)
	assert.Equal(t, []Coord{c}, r.Path)
	assert.Equal(t, 1, r.Explored)
	r, e = SolveJPS(g.Snapshot(), c, c)
	require.NoError(t, e)
	assert.Equal(t, []Coord{c}, r.Path)
	assert.Equal(t, 1, r.Explored)
}

func TestSolveNoPath(t *testing.T) {
	// Nothing has been connected yet.
	g, e := Initialize(3, 3, WithSeed(1))
	require.NoError(t, e)
	s := g.Snapshot()
	_, e = SolveDFS(s, Coord{0, 0}, Coord{2, 2})
	assert.ErrorIs(t, e, ErrNoPath)
	_, e = SolveAStar(s, Coord{0, 0}, Coord{2, 2})
	assert.ErrorIs(t, e, ErrNoPath)
	_, e = SolveJPS(s, Coord{0, 0}, Coord{2, 2})
	assert.ErrorIs(t, e, ErrNoPath)
	_, e = SolveJPS(s, Coord{0, 0}, Coord{0, 3})
	assert.ErrorIs(t, e, ErrOutOfBounds)

	_, e = SolveDFS(s, Coord{0, 0}, Coord{3, 2})
	assert.ErrorIs(t, e, ErrOutOfBounds)
	_, e = SolveAStar(s, Coord{-1, 0}, Coord{2, 2})
	assert.ErrorIs(t, e, ErrOutOfBounds)
	_, e = SolveAStar(Snapshot{}, Coord{0, 0}, Coord{0, 0})
	assert.ErrorIs(t, e, ErrNoPath)
}

func TestSetDirRanking(t *testing.T) {
	var ranking [4]int
	setDirRanking(Coord{0, 0}, Coord{5, 1}, &ranking)
	assert.Equal(t, [4]int{dirRight, dirDown, dirUp, dirLeft}, ranking)
	setDirRanking(Coord{4, 9}, Coord{3, 0}, &ranking)
	assert.Equal(t, [4]int{dirUp, dirLeft, dirRight, dirDown}, ranking)
}
