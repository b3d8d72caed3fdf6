// This defines a basic executable for generating an image of a maze.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/kian-mehta/ExtendedEssay/config"
	"github.com/kian-mehta/ExtendedEssay/maze"
	"github.com/kian-mehta/ExtendedEssay/render"
	"github.com/sirupsen/logrus"
)

var (
	headerStyle  = color.New(color.FgHiCyan, color.Bold)
	successStyle = color.New(color.FgHiGreen, color.Bold)
	errorStyle   = color.New(color.FgHiRed, color.Bold)
	mutedStyle   = color.New(color.FgHiBlack)
)

// The command-line settings that aren't part of config.Config.
type outputFlags struct {
	configFile string
	outFile    string
	textFile   string
	asciiOut   bool
}

// Registers the command-line flags, using the config's values as defaults.
func registerFlags(fs *flag.FlagSet, cfg *config.Config, out *outputFlags) {
	fs.StringVar(&out.configFile, "config", "",
		"An optional path to a YAML config file. Flags override its values.")
	fs.IntVar(&cfg.Width, "cells_wide", cfg.Width,
		"The width of the maze, in grid cells.")
	fs.IntVar(&cfg.Height, "cells_high", cfg.Height,
		"The height of the maze, in grid cells.")
	fs.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm,
		"The generation algorithm: prim, prim-walls, kruskal or wilson.")
	fs.IntVar(&cfg.ErodeAmount, "erode_amount", cfg.ErodeAmount,
		"The amount by which to \"erode\" small walls.")
	fs.Float64Var(&cfg.Braid, "braid", cfg.Braid,
		"The fraction of extra walls to remove, relative to the number of "+
			"passages, to add loops to the maze.")
	fs.Int64Var(&cfg.Seed, "random_seed", cfg.Seed,
		"If positive, specifies the random seed to use.")
	fs.BoolVar(&cfg.ShowSolution, "show_solution", cfg.ShowSolution,
		"If set, shows the solution of the maze.")
	fs.BoolVar(&cfg.Animation.Enabled, "animate", cfg.Animation.Enabled,
		"If set, draws the maze in the terminal as it's generated.")
	fs.DurationVar(&cfg.Animation.FrameDelay, "frame_delay",
		cfg.Animation.FrameDelay, "The time between animation frames.")
	fs.StringVar(&cfg.LogLevel, "log_level", cfg.LogLevel,
		"The log level: debug, info, warn or error.")
	fs.StringVar(&out.outFile, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	fs.StringVar(&out.textFile, "text_file", "",
		"The name of a file to which the maze's block text will be "+
			"appended, one maze per line.")
	fs.BoolVar(&out.asciiOut, "ascii", false,
		"If set, prints the finished maze to stdout.")
}

// Finds the -config flag without parsing anything else, so the config file
// can supply the defaults for the remaining flags.
func findConfigFile(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		for _, name := range []string{"-config", "--config"} {
			if (arg == name) && ((i + 1) < len(args)) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"=")
			}
		}
	}
	return ""
}

// Generates the maze, animating it in the terminal if requested.
func generate(ctx context.Context, g *maze.Generator, cfg *config.Config,
	log logrus.FieldLogger) error {
	if !cfg.Animation.Enabled {
		return g.Run(ctx)
	}
	if !render.IsTerminal(int(os.Stdout.Fd())) {
		log.Warn("Stdout isn't a terminal, so the maze won't be animated")
		return g.Run(ctx)
	}
	cols, rows := render.TerminalSize(int(os.Stdout.Fd()))
	fitWidth, fitHeight := render.FitTerminal(cols, rows)
	if (cfg.Width > fitWidth) || (cfg.Height > fitHeight) {
		log.Warnf("A %dx%d maze doesn't fit in the terminal; %dx%d would",
			cfg.Width, cfg.Height, fitWidth, fitHeight)
	}
	animator := render.NewTerminalAnimator(os.Stdout, cfg.Animation.Color)
	defer animator.Close()
	delay := cfg.Animation.FrameDelay
	if delay <= 0 {
		delay = time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	animation := g.Animate(ctx)
	for animation.Next() {
		s := animation.Snapshot()
		status := fmt.Sprintf("step %d, %d/%d cells, %d frontier", s.Steps,
			s.VisitedCount(), s.CellCount(), s.FrontierLen)
		if e := animator.Draw(s, mutedStyle.Sprint(status)); e != nil {
			animation.Stop()
			return e
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			animation.Stop()
		}
	}
	if e := animation.Err(); e != nil {
		return e
	}
	// Stopped early by a signal.
	return ctx.Err()
}

// Writes the decorated maze image to the given path.
func writeImage(path string, s maze.Snapshot, solution []maze.Coord) error {
	pic, e := render.NewImage(s)
	if e != nil {
		return e
	}
	if solution != nil {
		e = pic.ShowSolution(s, solution)
		if e != nil {
			return fmt.Errorf("Error drawing solution: %w", e)
		}
	}
	finalPic, e := render.Decorate(pic)
	if e != nil {
		return fmt.Errorf("Error adding maze decorations: %w", e)
	}
	f, e := os.Create(path)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", path, e)
	}
	defer f.Close()
	e = render.WritePNG(f, finalPic)
	if e != nil {
		return fmt.Errorf("Error writing image to %s: %w", path, e)
	}
	return nil
}

// Appends the maze's block text to the given path as a single line.
func appendText(path string, s maze.Snapshot) error {
	f, e := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if e != nil {
		return fmt.Errorf("Error opening text file %s: %w", path, e)
	}
	defer f.Close()
	_, e = fmt.Fprintln(f, render.TextLine(s))
	if e != nil {
		return fmt.Errorf("Error writing to %s: %w", path, e)
	}
	return nil
}

func fail(format string, args ...interface{}) int {
	errorStyle.Fprintf(os.Stderr, format+"\n", args...)
	return 1
}

func run() int {
	cfg, e := config.Load(findConfigFile(os.Args[1:]))
	if e != nil {
		return fail("Failed loading config: %s", e)
	}
	var out outputFlags
	registerFlags(flag.CommandLine, &cfg, &out)
	flag.Parse()
	e = cfg.Validate()
	if e != nil {
		fmt.Println("Invalid or missing argument:", e)
		fmt.Println("Run with -help for more information.")
		return 1
	}
	if (out.outFile == "") && (out.textFile == "") && !out.asciiOut &&
		!cfg.Animation.Enabled {
		fmt.Println("Invalid or missing argument: no output was requested.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	log, e := config.NewLogger(cfg.LogLevel)
	if e != nil {
		return fail("Failed creating logger: %s", e)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, e := maze.Initialize(cfg.Width, cfg.Height,
		maze.WithSeed(cfg.Seed), maze.WithAlgorithm(cfg.ParsedAlgorithm()),
		maze.WithLogger(log))
	if e != nil {
		return fail("Failed generating maze: %s", e)
	}
	e = generate(ctx, g, &cfg, log)
	if e != nil {
		return fail("Failed generating maze: %s", e)
	}
	headerStyle.Printf("Generated %s OK.\n", g.Info())

	if cfg.ErodeAmount > 0 {
		fmt.Printf("Eroding maze walls %d steps.\n", cfg.ErodeAmount)
		for i := 0; i < cfg.ErodeAmount; i++ {
			removed, e := g.ErodeWalls()
			if e != nil {
				return fail("Error eroding walls: %s", e)
			}
			log.WithField("removed", removed).Debug("Eroded walls")
		}
	}
	if cfg.Braid > 0 {
		opened, e := g.Braid(cfg.Braid)
		if e != nil {
			return fail("Error braiding maze: %s", e)
		}
		fmt.Printf("Removed %d extra walls.\n", opened)
	}
	s := g.Snapshot()
	var solution []maze.Coord
	if cfg.ShowSolution {
		fmt.Printf("Finding solution to the maze.\n")
		info := g.Info()
		result, e := maze.SolveDFS(s, info.Entrance, info.Exit)
		if e != nil {
			return fail("Error finding solution: %s", e)
		}
		solution = result.Path
		log.WithFields(logrus.Fields{
			"length":   len(result.Path),
			"explored": result.Explored,
			"elapsed":  result.Elapsed,
		}).Info("Solved maze")
	}

	if out.asciiOut {
		drawn, e := render.ColorASCII(s, solution)
		if e != nil {
			return fail("Error drawing maze: %s", e)
		}
		fmt.Print(drawn)
	}
	if out.textFile != "" {
		e = appendText(out.textFile, s)
		if e != nil {
			return fail("%s", e)
		}
		successStyle.Printf("Maze text appended to %s OK.\n", out.textFile)
	}
	if out.outFile != "" {
		e = writeImage(out.outFile, s, solution)
		if e != nil {
			return fail("%s", e)
		}
		successStyle.Printf("Image %s written OK.\n", out.outFile)
	}
	return 0
}

func main() {
	os.Exit(run())
}
