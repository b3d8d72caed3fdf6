// This defines an executable comparing maze solvers on perfect mazes and on
// the same mazes with extra walls removed.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/kian-mehta/ExtendedEssay/config"
	"github.com/kian-mehta/ExtendedEssay/maze"
)

var (
	headerStyle = color.New(color.FgHiCyan, color.Bold)
	errorStyle  = color.New(color.FgHiRed, color.Bold)
)

// Parses a comma-separated list of integers.
func parseInts(list string) ([]int, error) {
	var toReturn []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, e := strconv.Atoi(field)
		if e != nil {
			return nil, fmt.Errorf("Bad integer %q: %w", field, e)
		}
		toReturn = append(toReturn, v)
	}
	return toReturn, nil
}

// Parses a comma-separated list of numbers.
func parseFloats(list string) ([]float64, error) {
	var toReturn []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, e := strconv.ParseFloat(field, 64)
		if e != nil {
			return nil, fmt.Errorf("Bad number %q: %w", field, e)
		}
		toReturn = append(toReturn, v)
	}
	return toReturn, nil
}

func run() int {
	var configFile, algorithm, sizes, fractions string
	var trials int
	var seed int64
	flag.StringVar(&configFile, "config", "",
		"An optional path to a YAML config file.")
	flag.StringVar(&algorithm, "algorithm", string(maze.AlgorithmWilson),
		"The generation algorithm: prim, prim-walls, kruskal or wilson.")
	flag.StringVar(&sizes, "sizes", "",
		"Comma-separated cell counts. Overrides the config file.")
	flag.StringVar(&fractions, "k_factors", "",
		"Comma-separated braid fractions. Overrides the config file.")
	flag.IntVar(&trials, "trials", 0,
		"Mazes per size. Overrides the config file if positive.")
	flag.Int64Var(&seed, "random_seed", 1,
		"The seed of the first trial's maze.")
	flag.Parse()

	cfg, e := config.Load(configFile)
	if e != nil {
		errorStyle.Fprintf(os.Stderr, "Failed loading config: %s\n", e)
		return 1
	}
	log, e := config.NewLogger(cfg.LogLevel)
	if e != nil {
		errorStyle.Fprintf(os.Stderr, "Failed creating logger: %s\n", e)
		return 1
	}
	settings := runSettings{
		sizes:     cfg.Stats.Sizes,
		fractions: cfg.Stats.BraidFractions,
		trials:    cfg.Stats.Trials,
		seed:      seed,
	}
	settings.algorithm, e = maze.ParseAlgorithm(algorithm)
	if e != nil {
		errorStyle.Fprintf(os.Stderr, "%s\n", e)
		return 1
	}
	if sizes != "" {
		if settings.sizes, e = parseInts(sizes); e != nil {
			errorStyle.Fprintf(os.Stderr, "Invalid -sizes: %s\n", e)
			return 1
		}
	}
	if fractions != "" {
		if settings.fractions, e = parseFloats(fractions); e != nil {
			errorStyle.Fprintf(os.Stderr, "Invalid -k_factors: %s\n", e)
			return 1
		}
	}
	if trials > 0 {
		settings.trials = trials
	}
	if (len(settings.sizes) == 0) || (settings.trials < 1) {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	log.WithField("algorithm", settings.algorithm).Info("Collecting " +
		"solver statistics")
	summaries, e := collect(settings, log)
	if e != nil {
		errorStyle.Fprintf(os.Stderr, "Failed collecting statistics: %s\n", e)
		return 1
	}
	printTable(os.Stdout, summaries, headerStyle.Sprint)
	return 0
}

func main() {
	os.Exit(run())
}
