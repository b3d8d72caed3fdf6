package maze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridErrors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		err           error
	}{
		{"ZeroWidth", 0, 5, ErrInvalidDimensions},
		{"ZeroHeight", 5, 0, ErrInvalidDimensions},
		{"Negative", -3, 2, ErrInvalidDimensions},
		{"Overflow", math.MaxInt / 2, 3, ErrGridTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, e := NewGrid(tc.width, tc.height)
			assert.ErrorIs(t, e, tc.err)
		})
	}
}

func TestNewGridForCellCount(t *testing.T) {
	cases := []struct {
		n             int
		width, height int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{9, 3, 3},
		{10, 3, 3},
		{12, 4, 3},
		{100, 10, 10},
	}
	for _, tc := range cases {
		g, e := NewGridForCellCount(tc.n)
		require.NoError(t, e)
		assert.Equal(t, tc.width, g.Width(), "width for %d cells", tc.n)
		assert.Equal(t, tc.height, g.Height(), "height for %d cells", tc.n)
		assert.LessOrEqual(t, g.CellCount(), tc.n)
	}
	_, e := NewGridForCellCount(0)
	assert.ErrorIs(t, e, ErrInvalidDimensions)
}

func TestIsqrt(t *testing.T) {
	for n := 0; n < 2000; n++ {
		r := isqrt(n)
		assert.True(t, (r*r <= n) && ((r+1)*(r+1) > n), "isqrt(%d) = %d", n,
			r)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g, e := NewGrid(7, 4)
	require.NoError(t, e)
	for i := 0; i < g.CellCount(); i++ {
		c := g.Coordinate(i)
		assert.True(t, g.InBounds(c))
		assert.Equal(t, i, g.Index(c))
	}
}

func TestNeighbors(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	assert.Equal(t, []Coord{{1, 0}, {0, 1}}, g.Neighbors(Coord{0, 0}))
	assert.Equal(t, []Coord{{1, 0}, {2, 1}, {1, 2}, {0, 1}},
		g.Neighbors(Coord{1, 1}))
	assert.Equal(t, []Coord{{2, 1}, {1, 2}}, g.Neighbors(Coord{2, 2}))

	single, e := NewGrid(1, 1)
	require.NoError(t, e)
	assert.Empty(t, single.Neighbors(Coord{0, 0}))
}

func TestOpenEdge(t *testing.T) {
	g, e := NewGrid(3, 2)
	require.NoError(t, e)
	assert.Equal(t, 7, g.EdgeCount())
	assert.Len(t, g.ClosedEdges(), 7)

	require.NoError(t, g.OpenEdge(Coord{1, 0}, Coord{0, 0}))
	require.NoError(t, g.OpenEdge(Coord{2, 0}, Coord{2, 1}))
	assert.True(t, g.IsOpen(Coord{0, 0}, Coord{1, 0}))
	assert.True(t, g.IsOpen(Coord{1, 0}, Coord{0, 0}))
	assert.True(t, g.IsOpen(Coord{2, 1}, Coord{2, 0}))
	assert.False(t, g.IsOpen(Coord{0, 0}, Coord{0, 1}))
	assert.Equal(t, 2, g.OpenEdgeCount())
	assert.Equal(t, []Edge{
		{A: Coord{0, 0}, B: Coord{1, 0}},
		{A: Coord{2, 0}, B: Coord{2, 1}},
	}, g.OpenEdges())
	assert.Len(t, g.ClosedEdges(), 5)

	assert.ErrorIs(t, g.OpenEdge(Coord{0, 0}, Coord{1, 1}), ErrNotAdjacent)
	assert.ErrorIs(t, g.OpenEdge(Coord{0, 0}, Coord{0, 0}), ErrNotAdjacent)
	assert.ErrorIs(t, g.OpenEdge(Coord{2, 0}, Coord{3, 0}), ErrOutOfBounds)
	assert.False(t, g.IsOpen(Coord{-1, 0}, Coord{0, 0}))
}

func TestReset(t *testing.T) {
	g, e := NewGrid(2, 2)
	require.NoError(t, e)
	g.markVisited(Coord{0, 0})
	g.markVisited(Coord{1, 0})
	require.NoError(t, g.OpenEdge(Coord{0, 0}, Coord{1, 0}))
	assert.Equal(t, 2, g.VisitedCount())
	g.Reset()
	assert.Equal(t, 0, g.VisitedCount())
	assert.Equal(t, 0, g.OpenEdgeCount())
}

func TestNewEdgeNormalizes(t *testing.T) {
	a := Coord{2, 1}
	b := Coord{1, 1}
	assert.Equal(t, NewEdge(a, b), NewEdge(b, a))
	assert.Equal(t, b, NewEdge(a, b).A)
	assert.True(t, NewEdge(a, b).Adjacent())
	assert.False(t, NewEdge(Coord{0, 0}, Coord{1, 1}).Adjacent())
	assert.Equal(t, a, NewEdge(a, b).Other(b))
	assert.Equal(t, "(1,1)-(2,1)", NewEdge(a, b).String())
}
