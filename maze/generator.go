package maze

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// The generator's position in its two-state lifecycle.
type State uint8

const (
	// Frontier candidates remain; Step will do more work.
	StateRunning State = iota
	// The frontier is empty and the maze is a spanning tree.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("Unknown State: %d", uint8(s))
}

// Holds the settings collected from Option values.
type options struct {
	seed      int64
	rng       Rand
	start     *Coord
	algorithm Algorithm
	logger    logrus.FieldLogger
}

// Configures a Generator. Options passed to Reinitialize are applied on top
// of the ones the generator was created with.
type Option func(*options)

// Sets the random seed. A seed that isn't positive selects a new seed based
// on the current time in nanoseconds. Options apply in order, so this
// replaces a source passed to WithRand earlier, and a later WithRand
// replaces this seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = nil
	}
}

// Uses the given random source instead of one built from a seed, until a
// later WithSeed replaces it. The generator takes ownership of the source; it must not be shared with
// another goroutine.
func WithRand(rng Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// Grows the maze from a fixed cell instead of a random one.
func WithStart(c Coord) Option {
	return func(o *options) {
		start := c
		o.start = &start
	}
}

// Grows the maze from a random cell. This is the default.
func WithRandomStart() Option {
	return func(o *options) {
		o.start = nil
	}
}

// Selects the generation algorithm. Defaults to AlgorithmPrim.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// Sets the logger used to report steps (at debug level) and completion (at
// info level). By default, nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return options{
		algorithm: AlgorithmPrim,
		logger:    silent,
	}
}

// Drives one of the growth algorithms over a Grid. A Generator has a single
// mutator: Step, RunToCompletion, Run and Animate must not be called
// concurrently. Create using Initialize.
type Generator struct {
	grid   *Grid
	growth growth
	opts   options
	rng    Rand
	// The seed that was used to create rng, or 0 if rng was injected.
	randomSeed int64
	start      Coord
	state      State
	steps      int
	commits    int
	last       Coord
	hasLast    bool
	// Time spent inside Step since the last (re)initialization.
	generationTime time.Duration
	log            logrus.FieldLogger
}

// Allocates a width x height grid and seeds it, leaving the generator in
// StateRunning, or StateDone if there is nothing to grow (a 1x1 grid).
func Initialize(width, height int, opts ...Option) (*Generator, error) {
	grid, e := NewGrid(width, height)
	if e != nil {
		return nil, e
	}
	toReturn := &Generator{
		grid: grid,
		opts: defaultOptions(),
	}
	e = toReturn.Reinitialize(opts...)
	if e != nil {
		return nil, fmt.Errorf("Error initializing maze: %w", e)
	}
	return toReturn, nil
}

// Clears every cell and wall and seeds the maze again, regardless of the
// current state. The given options are applied on top of the existing ones;
// pass WithSeed to get a different maze from a seeded generator.
func (g *Generator) Reinitialize(opts ...Option) error {
	newOpts := g.opts
	for _, o := range opts {
		o(&newOpts)
	}
	if newOpts.logger == nil {
		newOpts.logger = defaultOptions().logger
	}
	if (newOpts.start != nil) && !g.grid.InBounds(*newOpts.start) {
		return fmt.Errorf("start cell %s: %w", *newOpts.start, ErrOutOfBounds)
	}
	grower, e := newGrowth(newOpts.algorithm)
	if e != nil {
		return e
	}
	// Reuse the previous algorithm's buffers when possible.
	if (g.growth != nil) && (newOpts.algorithm == g.opts.algorithm) {
		grower = g.growth
	}

	rng := newOpts.rng
	seed := int64(0)
	if rng == nil {
		seed = newOpts.seed
		if seed <= 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g.opts = newOpts
	g.growth = grower
	g.rng = rng
	g.randomSeed = seed
	g.log = newOpts.logger
	g.steps = 0
	g.commits = 0
	g.hasLast = false
	g.generationTime = 0
	g.grid.Reset()

	if newOpts.start != nil {
		g.start = *newOpts.start
	} else if newOpts.algorithm == AlgorithmKruskal {
		g.start = Coord{}
	} else {
		g.start = Coord{
			X: rng.Intn(g.grid.Width()),
			Y: rng.Intn(g.grid.Height()),
		}
	}
	g.growth.begin(g.grid, g.start, g.rng)
	g.state = StateRunning
	if g.growth.done() {
		g.state = StateDone
	}
	g.log.WithFields(logrus.Fields{
		"width":     g.grid.Width(),
		"height":    g.grid.Height(),
		"algorithm": g.opts.algorithm,
		"seed":      g.randomSeed,
		"start":     g.start.String(),
	}).Debug("Initialized maze")
	return nil
}

// Performs exactly one pop, validate and commit cycle. Returns false once
// the frontier has been drained, including on the call that drains it; later
// calls do nothing and keep returning false.
func (g *Generator) Step() (bool, error) {
	if g.state == StateDone {
		return false, nil
	}
	if g.growth.done() {
		g.finish()
		return false, nil
	}
	startTime := time.Now()
	result, e := g.growth.step(g.grid, g.rng)
	g.generationTime += time.Since(startTime)
	if e != nil {
		return false, fmt.Errorf("Error in step %d: %w", g.steps+1, e)
	}
	g.steps++
	if result.commits != 0 {
		g.commits += result.commits
		g.last = result.last
		g.hasLast = true
		g.log.WithFields(logrus.Fields{
			"step":    g.steps,
			"cell":    result.last.String(),
			"pending": g.growth.pending(),
		}).Debug("Connected cell")
	}
	if g.growth.done() {
		g.finish()
		return false, nil
	}
	return true, nil
}

func (g *Generator) finish() {
	g.state = StateDone
	g.log.WithFields(logrus.Fields{
		"steps":   g.steps,
		"commits": g.commits,
		"elapsed": g.generationTime,
	}).Info("Maze generation complete")
}

// Steps until the maze is complete.
func (g *Generator) RunToCompletion() error {
	for {
		more, e := g.Step()
		if e != nil {
			return e
		}
		if !more {
			return nil
		}
	}
}

// Same as RunToCompletion, but gives up with the context's error if ctx is
// canceled. The maze is left in whatever consistent state the last step
// produced.
func (g *Generator) Run(ctx context.Context) error {
	for {
		if e := ctx.Err(); e != nil {
			return e
		}
		more, e := g.Step()
		if e != nil {
			return e
		}
		if !more {
			return nil
		}
	}
}

// Returns a copy of the current maze state.
func (g *Generator) Snapshot() Snapshot {
	toReturn := g.grid.Snapshot()
	toReturn.State = g.state
	toReturn.Start = g.start
	toReturn.Last = g.last
	toReturn.HasLast = g.hasLast
	toReturn.FrontierLen = g.growth.pending()
	toReturn.Steps = g.steps
	return toReturn
}

func (g *Generator) State() State {
	return g.state
}

func (g *Generator) Algorithm() Algorithm {
	return g.opts.algorithm
}

// Returns the seed used for the random source, or 0 if the source was
// supplied with WithRand.
func (g *Generator) RandomSeed() int64 {
	return g.randomSeed
}

// Returns the generator's random source, for post-processing such as Braid
// that should stay reproducible from the same seed.
func (g *Generator) Rand() Rand {
	return g.rng
}

// Describes a generated maze, for logging and for decorating renders.
type Info struct {
	Width     int
	Height    int
	Algorithm Algorithm
	// Zero if the random source was injected.
	RandomSeed int64
	State      State
	// The cell the maze was grown from.
	Seed Coord
	// The maze's entrance and exit: the top-left and bottom-right cells.
	Entrance       Coord
	Exit           Coord
	Steps          int
	Commits        int
	GenerationTime time.Duration
}

// Returns a human-readable summary, providing debug info such as the random
// seed.
func (i Info) String() string {
	return fmt.Sprintf("%dx%d %s maze with random seed %d, generated in "+
		"%.03f seconds", i.Width, i.Height, i.Algorithm, i.RandomSeed,
		i.GenerationTime.Seconds())
}

func (g *Generator) Info() Info {
	return Info{
		Width:          g.grid.Width(),
		Height:         g.grid.Height(),
		Algorithm:      g.opts.algorithm,
		RandomSeed:     g.randomSeed,
		State:          g.state,
		Seed:           g.start,
		Entrance:       Coord{},
		Exit:           Coord{X: g.grid.Width() - 1, Y: g.grid.Height() - 1},
		Steps:          g.steps,
		Commits:        g.commits,
		GenerationTime: g.generationTime,
	}
}
