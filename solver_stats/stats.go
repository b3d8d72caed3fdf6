package main

import (
	"fmt"
	"io"
	"time"

	"github.com/kian-mehta/ExtendedEssay/maze"
	"github.com/sirupsen/logrus"
)

// A maze solver, as compared by this tool.
type solver struct {
	name  string
	solve func(s maze.Snapshot, from, to maze.Coord) (maze.SolveResult, error)
}

var solvers = []solver{
	{name: "A*", solve: maze.SolveAStar},
	{name: "JPS", solve: maze.SolveJPS},
	{name: "DFS", solve: maze.SolveDFS},
}

// The averages for one solver over every trial of one maze configuration.
type Summary struct {
	Solver string
	// The requested number of cells, and the dimensions actually used.
	Cells         int
	Width, Height int
	// The braid fraction; 0 for perfect mazes.
	Fraction         float64
	Trials           int
	AverageRuntime   time.Duration
	AverageExplored  float64
	AveragePathCells float64
}

func (s *Summary) add(r maze.SolveResult) {
	s.Trials++
	s.AverageRuntime += r.Elapsed
	s.AverageExplored += float64(r.Explored)
	s.AveragePathCells += float64(len(r.Path))
}

func (s *Summary) evaluate() {
	if s.Trials == 0 {
		return
	}
	s.AverageRuntime /= time.Duration(s.Trials)
	s.AverageExplored /= float64(s.Trials)
	s.AveragePathCells /= float64(s.Trials)
}

// Returns "perfect" or "imperfect k=<fraction>".
func (s *Summary) MazeType() string {
	if s.Fraction == 0 {
		return "perfect"
	}
	return fmt.Sprintf("imperfect k=%g", s.Fraction)
}

// Settings for a statistics run.
type runSettings struct {
	sizes     []int
	fractions []float64
	trials    int
	algorithm maze.Algorithm
	// Trial i uses seed+i, so a whole run can be reproduced.
	seed int64
}

// Generates trials mazes for each size, braids a copy of each for every
// fraction, and solves every resulting maze with every solver. Fraction 0
// is always included. Returns one summary per size, fraction and solver.
func collect(settings runSettings, log logrus.FieldLogger) ([]Summary,
	error) {
	fractions := []float64{0}
	for _, f := range settings.fractions {
		if f > 0 {
			fractions = append(fractions, f)
		}
	}
	var toReturn []Summary
	for _, cells := range settings.sizes {
		grid, e := maze.NewGridForCellCount(cells)
		if e != nil {
			return nil, fmt.Errorf("Error sizing %d-cell maze: %w", cells, e)
		}
		width, height := grid.Width(), grid.Height()
		summaries := make([]Summary, len(fractions)*len(solvers))
		for i := range summaries {
			summaries[i] = Summary{
				Solver:   solvers[i%len(solvers)].name,
				Cells:    cells,
				Width:    width,
				Height:   height,
				Fraction: fractions[i/len(solvers)],
			}
		}
		for trial := 0; trial < settings.trials; trial++ {
			g, e := maze.Initialize(width, height,
				maze.WithSeed(settings.seed+int64(trial)),
				maze.WithAlgorithm(settings.algorithm))
			if e != nil {
				return nil, e
			}
			if e = g.RunToCompletion(); e != nil {
				return nil, e
			}
			perfect := g.Snapshot()
			info := g.Info()
			for fi, fraction := range fractions {
				imperfect := perfect.Grid()
				opened := imperfect.Braid(fraction, g.Rand())
				s := imperfect.Snapshot()
				for si, sv := range solvers {
					r, e := sv.solve(s, info.Entrance, info.Exit)
					if e != nil {
						return nil, fmt.Errorf("%s failed on a %dx%d maze: %w",
							sv.name, width, height, e)
					}
					summaries[fi*len(solvers)+si].add(r)
				}
				log.WithFields(logrus.Fields{
					"cells":    cells,
					"trial":    trial + 1,
					"fraction": fraction,
					"opened":   opened,
				}).Debug("Solved maze")
			}
		}
		for i := range summaries {
			summaries[i].evaluate()
		}
		toReturn = append(toReturn, summaries...)
	}
	return toReturn, nil
}

// Prints one table row per summary, grouped under a header for each maze
// configuration.
func printTable(w io.Writer, summaries []Summary,
	header func(a ...interface{}) string) {
	for i := range summaries {
		s := &summaries[i]
		if (i == 0) || (s.Cells != summaries[i-1].Cells) ||
			(s.Fraction != summaries[i-1].Fraction) {
			if i != 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, header(fmt.Sprintf("%dx%d %s, %d trials",
				s.Width, s.Height, s.MazeType(), s.Trials)))
			fmt.Fprintf(w, "%-8s %14s %14s %14s\n", "solver", "avg. time",
				"avg. explored", "avg. path")
		}
		fmt.Fprintf(w, "%-8s %14s %14.1f %14.1f\n", s.Solver,
			s.AverageRuntime.Round(time.Microsecond), s.AverageExplored,
			s.AveragePathCells)
	}
}
