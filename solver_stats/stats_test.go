package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kian-mehta/ExtendedEssay/maze"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	logger, _ := test.NewNullLogger()
	summaries, e := collect(runSettings{
		sizes:     []int{25, 50},
		fractions: []float64{0.1, 0, -1, 0.3},
		trials:    3,
		algorithm: maze.AlgorithmWilson,
		seed:      5,
	}, logger)
	require.NoError(t, e)
	// Two sizes, three distinct fractions, three solvers.
	require.Len(t, summaries, 2*3*3)

	first := summaries[0]
	assert.Equal(t, "A*", first.Solver)
	assert.Equal(t, 25, first.Cells)
	assert.Equal(t, 5, first.Width)
	assert.Equal(t, 5, first.Height)
	assert.Equal(t, 0.0, first.Fraction)
	assert.Equal(t, 3, first.Trials)
	assert.Equal(t, "perfect", first.MazeType())
	// Every solver finds the only path through a perfect maze.
	assert.Equal(t, "JPS", summaries[1].Solver)
	assert.Equal(t, first.AveragePathCells, summaries[1].AveragePathCells)
	assert.Equal(t, first.AveragePathCells, summaries[2].AveragePathCells)
	assert.GreaterOrEqual(t, first.AverageExplored, first.AveragePathCells)

	last := summaries[len(summaries)-1]
	assert.Equal(t, "DFS", last.Solver)
	assert.Equal(t, 50, last.Cells)
	assert.Equal(t, 7, last.Width)
	assert.Equal(t, 7, last.Height)
	assert.Equal(t, 0.3, last.Fraction)
	assert.Equal(t, "imperfect k=0.3", last.MazeType())

	for _, s := range summaries {
		// A path from corner to corner visits at least width+height-1 cells.
		assert.GreaterOrEqual(t, s.AveragePathCells,
			float64(s.Width+s.Height-1))
		if s.Solver == "A*" {
			continue
		}
		astar := summaries[indexOf(t, summaries, "A*", s.Cells, s.Fraction)]
		if s.Solver == "JPS" {
			// Both find shortest paths.
			assert.InDelta(t, astar.AveragePathCells, s.AveragePathCells, 1e-9)
			continue
		}
		assert.LessOrEqual(t, astar.AveragePathCells, s.AveragePathCells)
	}
}

func indexOf(t *testing.T, summaries []Summary, solver string, cells int,
	fraction float64) int {
	for i, s := range summaries {
		if (s.Solver == solver) && (s.Cells == cells) &&
			(s.Fraction == fraction) {
			return i
		}
	}
	t.Fatalf("No %s summary for %d cells, k=%g", solver, cells, fraction)
	return -1
}

func TestCollectBadSize(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, e := collect(runSettings{
		sizes:  []int{0},
		trials: 1,
	}, logger)
	assert.ErrorIs(t, e, maze.ErrInvalidDimensions)
}

func TestPrintTable(t *testing.T) {
	logger, _ := test.NewNullLogger()
	summaries, e := collect(runSettings{
		sizes:     []int{16},
		fractions: []float64{0.2},
		trials:    1,
		algorithm: maze.AlgorithmPrim,
		seed:      1,
	}, logger)
	require.NoError(t, e)
	var buf bytes.Buffer
	printTable(&buf, summaries, fmt.Sprint)
	out := buf.String()
	assert.Contains(t, out, "4x4 perfect, 1 trials")
	assert.Contains(t, out, "4x4 imperfect k=0.2, 1 trials")
	assert.Equal(t, 2, strings.Count(out, "avg. explored"))
	assert.Equal(t, 2, strings.Count(out, "\nDFS "))
	assert.Equal(t, 2, strings.Count(out, "\nJPS "))
}

func TestParseLists(t *testing.T) {
	ints, e := parseInts("100, 400,,1600")
	require.NoError(t, e)
	assert.Equal(t, []int{100, 400, 1600}, ints)
	_, e = parseInts("10,ten")
	assert.Error(t, e)
	floats, e := parseFloats("0.05,0.1")
	require.NoError(t, e)
	assert.Equal(t, []float64{0.05, 0.1}, floats)
	_, e = parseFloats("x")
	assert.Error(t, e)
}
