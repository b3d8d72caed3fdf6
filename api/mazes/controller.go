package mazeapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kian-mehta/ExtendedEssay/maze"
	"github.com/kian-mehta/ExtendedEssay/render"
	"github.com/sirupsen/logrus"
)

var (
	// Returned when a request asks for a maze bigger than the server allows.
	ErrTooLarge = errors.New("maze dimensions exceed the server's limit")
)

// Options holds the settings for a MazeServer.
type Options struct {
	// Used when a request doesn't give a width or height.
	DefaultWidth  int
	DefaultHeight int
	// The largest width or height a request may ask for.
	MaxDimension int
	// The largest maze, in cells, for which a step trace is returned.
	MaxTraceCells int
	// The most erosion passes a request may ask for. Defaults to
	// DefaultMaxErode.
	MaxErode int
	Logger   logrus.FieldLogger
}

// The erosion limit used if Options.MaxErode isn't positive.
const DefaultMaxErode = 20

// MazeServer handles HTTP requests for generated mazes. Every request
// generates its own maze, so requests never share state.
type MazeServer struct {
	opts Options
	log  logrus.FieldLogger
}

// NewMazeServer creates a new MazeServer.
func NewMazeServer(opts Options) *MazeServer {
	if opts.DefaultWidth < 1 {
		opts.DefaultWidth = 20
	}
	if opts.DefaultHeight < 1 {
		opts.DefaultHeight = 20
	}
	if opts.MaxErode < 1 {
		opts.MaxErode = DefaultMaxErode
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MazeServer{
		opts: opts,
		log:  log,
	}
}

// Register registers the maze routes.
func (c *MazeServer) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", c.getMaze)
		mazes.GET("/image", c.getImage)
		mazes.GET("/text", c.getText)
		mazes.GET("/steps", c.getSteps)
	}
}

// A generated maze along with everything a response may need.
type generated struct {
	id        uuid.UUID
	generator *maze.Generator
	snapshot  maze.Snapshot
	solution  []maze.Coord
}

// Parses and validates the query, returning a generator that hasn't taken
// any steps yet.
func (c *MazeServer) newGenerator(ctx *gin.Context) (*maze.Generator,
	*MazeQuery, error) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, nil, err
	}
	// Zero values skip the binding's range checks, so an explicit zero has
	// to be caught here.
	if _, ok := ctx.GetQuery("width"); ok && (query.Width == 0) {
		return nil, nil, fmt.Errorf("width must be at least 1")
	}
	if _, ok := ctx.GetQuery("height"); ok && (query.Height == 0) {
		return nil, nil, fmt.Errorf("height must be at least 1")
	}
	if query.Width == 0 {
		query.Width = c.opts.DefaultWidth
	}
	if query.Height == 0 {
		query.Height = c.opts.DefaultHeight
	}
	if (c.opts.MaxDimension > 0) && ((query.Width > c.opts.MaxDimension) ||
		(query.Height > c.opts.MaxDimension)) {
		return nil, nil, fmt.Errorf("%w: %dx%d is bigger than %dx%d",
			ErrTooLarge, query.Width, query.Height, c.opts.MaxDimension,
			c.opts.MaxDimension)
	}
	if query.Erode > c.opts.MaxErode {
		return nil, nil, fmt.Errorf("%w: erode %d is more than %d",
			ErrTooLarge, query.Erode, c.opts.MaxErode)
	}
	algorithm, err := maze.ParseAlgorithm(query.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	g, err := maze.Initialize(query.Width, query.Height,
		maze.WithSeed(query.Seed), maze.WithAlgorithm(algorithm),
		maze.WithLogger(c.log))
	if err != nil {
		return nil, nil, err
	}
	return g, &query, nil
}

// Generates the maze described by the request's query, applying any
// post-processing it asks for.
func (c *MazeServer) generate(ctx *gin.Context) (*generated, error) {
	g, query, err := c.newGenerator(ctx)
	if err != nil {
		return nil, err
	}
	if err = g.Run(ctx.Request.Context()); err != nil {
		return nil, err
	}
	for i := 0; i < query.Erode; i++ {
		if _, err = g.ErodeWalls(); err != nil {
			return nil, err
		}
	}
	if _, err = g.Braid(query.Braid); err != nil {
		return nil, err
	}
	toReturn := &generated{
		id:        uuid.New(),
		generator: g,
		snapshot:  g.Snapshot(),
	}
	if query.Solution {
		info := g.Info()
		result, err := maze.SolveAStar(toReturn.snapshot, info.Entrance,
			info.Exit)
		if err != nil {
			return nil, err
		}
		toReturn.solution = result.Path
	}
	c.log.WithFields(logrus.Fields{
		"id":   toReturn.id.String(),
		"maze": g.Info().String(),
	}).Debug("Generated maze")
	return toReturn, nil
}

func badRequest(ctx *gin.Context, err error) {
	ctx.Error(err)
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func setMazeHeaders(ctx *gin.Context, m *generated) {
	ctx.Header("X-Maze-Id", m.id.String())
	ctx.Header("X-Maze-Seed",
		strconv.FormatInt(m.generator.RandomSeed(), 10))
}

// getMaze describes a maze as JSON.
func (c *MazeServer) getMaze(ctx *gin.Context) {
	m, err := c.generate(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	info := m.generator.Info()
	blocks := strings.Split(strings.TrimSpace(textOf(m.snapshot)), "\n")
	response := &MazeResponse{
		ID:        m.id,
		Width:     info.Width,
		Height:    info.Height,
		Algorithm: info.Algorithm.String(),
		Seed:      info.RandomSeed,
		Steps:     info.Steps,
		Commits:   info.Commits,
		Entrance:  info.Entrance,
		Exit:      info.Exit,
		OpenEdges: m.snapshot.OpenEdges(),
		Blocks:    blocks,
		Solution:  m.solution,
	}
	setMazeHeaders(ctx, m)
	ctx.JSON(http.StatusOK, response)
}

// Returns the maze's text export, or an empty string if it can't be
// rendered.
func textOf(s maze.Snapshot) string {
	var buf bytes.Buffer
	if render.WriteText(&buf, s) != nil {
		return ""
	}
	return buf.String()
}

// getImage renders a maze as a decorated PNG.
func (c *MazeServer) getImage(ctx *gin.Context) {
	m, err := c.generate(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	pic, err := render.NewImage(m.snapshot)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if m.solution != nil {
		if err = pic.ShowSolution(m.snapshot, m.solution); err != nil {
			ctx.JSON(http.StatusInternalServerError,
				gin.H{"error": err.Error()})
			return
		}
	}
	decorated, err := render.Decorate(pic)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err = render.WritePNG(&buf, decorated); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setMazeHeaders(ctx, m)
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// getText returns a maze in the block text format.
func (c *MazeServer) getText(ctx *gin.Context) {
	m, err := c.generate(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	var buf bytes.Buffer
	if err = render.WriteText(&buf, m.snapshot); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setMazeHeaders(ctx, m)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// getSteps returns a trace of every generation step.
func (c *MazeServer) getSteps(ctx *gin.Context) {
	g, _, err := c.newGenerator(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	info := g.Info()
	cells := info.Width * info.Height
	if (c.opts.MaxTraceCells > 0) && (cells > c.opts.MaxTraceCells) {
		badRequest(ctx, fmt.Errorf("%w: step traces are limited to %d cells",
			ErrTooLarge, c.opts.MaxTraceCells))
		return
	}
	response := &StepTraceResponse{
		ID:        uuid.New(),
		Width:     info.Width,
		Height:    info.Height,
		Algorithm: info.Algorithm.String(),
		Seed:      info.RandomSeed,
		Start:     info.Seed,
	}
	animation := g.Animate(ctx.Request.Context())
	for animation.Next() {
		s := animation.Snapshot()
		entry := StepEntry{
			Step:     s.Steps,
			Visited:  s.VisitedCount(),
			Frontier: s.FrontierLen,
			Done:     s.State == maze.StateDone,
		}
		if s.HasLast {
			last := s.Last
			entry.Cell = &last
		}
		response.Steps = append(response.Steps, entry)
	}
	if err = animation.Err(); err != nil {
		badRequest(ctx, err)
		return
	}
	ctx.Header("X-Maze-Seed", strconv.FormatInt(g.RandomSeed(), 10))
	ctx.JSON(http.StatusOK, response)
}
