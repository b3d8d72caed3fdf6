package maze

import (
	"fmt"
	"strings"
)

// Names one of the generation algorithms supported by Generator.
type Algorithm string

const (
	// Randomized Prim's algorithm over a frontier of cells. Each candidate
	// remembers the visited cell that proposed it; the same cell may be
	// proposed several times and stale candidates are dropped when popped.
	AlgorithmPrim Algorithm = "prim"
	// Randomized Prim's algorithm over a frontier of walls. A wall is queued
	// at most once, and is opened if exactly one side is visited when it is
	// popped.
	AlgorithmPrimWalls Algorithm = "prim-walls"
	// Randomized Kruskal's algorithm: random walls are removed whenever they
	// separate two disjoint sets of cells. The visited region is a forest
	// until the last join, so a commit may join two visited cells and the
	// maze is only connected once generation is done.
	AlgorithmKruskal Algorithm = "kruskal"
	// Wilson's algorithm: loop-erased random walks from unvisited cells are
	// grafted onto the tree. Produces uniformly random spanning trees.
	AlgorithmWilson Algorithm = "wilson"
)

// Returns every supported algorithm, default first.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmPrim, AlgorithmPrimWalls, AlgorithmKruskal,
		AlgorithmWilson}
}

// Converts a user-supplied name, ignoring case and surrounding spaces, to an
// Algorithm. An empty name selects AlgorithmPrim.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return AlgorithmPrim, nil
	}
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) String() string {
	return string(a)
}

// The outcome of one growth step.
type stepResult struct {
	// The number of walls opened during the step. Zero if the step only
	// discarded a stale candidate.
	commits int
	// The most recently connected cell, valid if commits is nonzero.
	last Coord
}

// Implemented by each generation algorithm. A growth value is bound to one
// grid at a time; begin is always called on a freshly reset grid.
type growth interface {
	// Places the seed and fills the initial frontier. start is ignored by
	// algorithms without a seed cell.
	begin(g *Grid, start Coord, rng Rand)
	// Performs exactly one pop, validate and (optionally) commit cycle.
	// Must not be called once done returns true.
	step(g *Grid, rng Rand) (stepResult, error)
	// Returns true once nothing is left to pop.
	done() bool
	// Returns the number of pending candidates, for snapshots.
	pending() int
}

func newGrowth(a Algorithm) (growth, error) {
	switch a {
	case AlgorithmPrim:
		return &primCells{}, nil
	case AlgorithmPrimWalls:
		return &primWalls{}, nil
	case AlgorithmKruskal:
		return &kruskal{}, nil
	case AlgorithmWilson:
		return &wilson{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}
