package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	fcolor "github.com/fatih/color"
	"github.com/kian-mehta/ExtendedEssay/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns a completed 2x1 maze. There's only one possible 2x1 maze.
func twoByOne(t *testing.T) maze.Snapshot {
	t.Helper()
	g, e := maze.Initialize(2, 1, maze.WithSeed(1))
	require.NoError(t, e)
	require.NoError(t, g.RunToCompletion())
	return g.Snapshot()
}

func completed(t *testing.T, width, height int) maze.Snapshot {
	t.Helper()
	g, e := maze.Initialize(width, height, maze.WithSeed(31))
	require.NoError(t, e)
	require.NoError(t, g.RunToCompletion())
	return g.Snapshot()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestImageSingleCell(t *testing.T) {
	g, e := maze.Initialize(1, 1)
	require.NoError(t, e)
	pic, e := NewImage(g.Snapshot())
	require.NoError(t, e)
	assert.Equal(t, image.Rect(0, 0, CellPixels, CellPixels), pic.Bounds())
	black := rgba(color.Black)
	white := rgba(color.White)
	// The entrance and exit are cut into the top and bottom walls.
	assert.Equal(t, white, rgba(pic.At(4, 0)))
	assert.Equal(t, white, rgba(pic.At(4, CellPixels-1)))
	assert.Equal(t, black, rgba(pic.At(0, 4)))
	assert.Equal(t, black, rgba(pic.At(CellPixels-1, 4)))
	assert.Equal(t, black, rgba(pic.At(0, 0)))
	assert.Equal(t, white, rgba(pic.At(4, 4)))
	assert.Equal(t, rgba(color.Transparent), rgba(pic.At(-1, 3)))
}

func TestImagePassages(t *testing.T) {
	pic, e := NewImage(twoByOne(t))
	require.NoError(t, e)
	assert.Equal(t, image.Rect(0, 0, 2*CellPixels, CellPixels), pic.Bounds())
	black := rgba(color.Black)
	white := rgba(color.White)
	// The wall between the two cells is gone, but the corner it shares with
	// the bottom wall remains.
	assert.Equal(t, white, rgba(pic.At(CellPixels-1, 4)))
	assert.Equal(t, white, rgba(pic.At(CellPixels, 4)))
	assert.Equal(t, black, rgba(pic.At(CellPixels-1, CellPixels-1)))
	assert.Equal(t, white, rgba(pic.At(CellPixels-1, 0)))
	assert.Equal(t, black, rgba(pic.At(2*CellPixels-1, 4)))
}

func TestImageGenerationStates(t *testing.T) {
	g, e := maze.Initialize(3, 1, maze.WithSeed(1),
		maze.WithStart(maze.Coord{}))
	require.NoError(t, e)
	pic, e := NewImage(g.Snapshot())
	require.NoError(t, e)
	assert.Equal(t, unvisitedColor, rgba(pic.At(CellPixels+4, 4)))
	assert.Equal(t, rgba(color.White), rgba(pic.At(4, 4)))

	more, e := g.Step()
	require.NoError(t, e)
	require.True(t, more)
	pic, e = NewImage(g.Snapshot())
	require.NoError(t, e)
	assert.Equal(t, currentColor, rgba(pic.At(CellPixels+4, 4)))
	assert.Equal(t, unvisitedColor, rgba(pic.At(2*CellPixels+4, 4)))
}

func TestImageSolution(t *testing.T) {
	s := twoByOne(t)
	pic, e := NewImage(s)
	require.NoError(t, e)
	path := []maze.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}
	require.NoError(t, pic.ShowSolution(s, path))
	assert.Equal(t, solutionColor, rgba(pic.At(4, 4)))
	assert.Equal(t, solutionColor, rgba(pic.At(CellPixels+4, 4)))
	assert.Equal(t, rgba(color.White), rgba(pic.At(1, 1)))
	pic.ClearSolution()
	assert.Equal(t, rgba(color.White), rgba(pic.At(4, 4)))

	assert.ErrorIs(t, pic.ShowSolution(s, []maze.Coord{{X: 2, Y: 0}}),
		ErrPathOutOfBounds)
	assert.Error(t, pic.ShowSolution(completed(t, 3, 3), nil))
}

func TestNewImageEmptySnapshot(t *testing.T) {
	_, e := NewImage(maze.Snapshot{})
	assert.ErrorIs(t, e, ErrEmptySnapshot)
}

func TestDecorate(t *testing.T) {
	s := completed(t, 6, 4)
	pic, e := NewImage(s)
	require.NoError(t, e)
	decorated, e := Decorate(pic)
	require.NoError(t, e)
	bounds := decorated.Bounds()
	assert.Equal(t, 6*CellPixels+2*decorationBorder, bounds.Dx())
	assert.Equal(t, 4*CellPixels+2*decorationBorder, bounds.Dy())
	// The border is white, and the maze starts just inside it.
	assert.Equal(t, rgba(color.White), rgba(decorated.At(2, 2)))
	assert.Equal(t, rgba(pic.At(0, 4)),
		rgba(decorated.At(decorationBorder, decorationBorder+4)))
	assert.Equal(t, rgba(color.Black), rgba(pic.At(0, 4)))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, decorated))
	decoded, e := png.Decode(&buf)
	require.NoError(t, e)
	assert.Equal(t, bounds.Dx(), decoded.Bounds().Dx())
}

func TestArrowTopLeft(t *testing.T) {
	pt := image.Pt(40, 40)
	assert.Equal(t, image.Pt(32, 23), getArrowTopLeft(pt, arrowDown, false))
	assert.Equal(t, image.Pt(32, 41), getArrowTopLeft(pt, arrowDown, true))
	assert.Equal(t, image.Pt(41, 32), getArrowTopLeft(pt, arrowLeft, false))
	assert.Panics(t, func() { getArrowTopLeft(pt, 7, false) })
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, twoByOne(t)))
	expected := "{'0', '1', '0', '0', '0'},\n" +
		"{'0', 'S', '1', 'E', '0'},\n" +
		"{'0', '0', '0', '1', '0'}\n"
	assert.Equal(t, expected, buf.String())
	assert.ErrorIs(t, WriteText(&buf, maze.Snapshot{}), ErrEmptySnapshot)
}

func TestTextLine(t *testing.T) {
	line := TextLine(twoByOne(t))
	assert.Equal(t, "{{'0', '1', '0', '0', '0'},{'0', 'S', '1', 'E', '0'},"+
		"{'0', '0', '0', '1', '0'}}", line)
	assert.NotContains(t, line, "\n")
}

func TestBlocksOpenEntranceAndExit(t *testing.T) {
	s := completed(t, 5, 3)
	blocks := Blocks(s)
	raw := s.Blocks()
	assert.True(t, blocks[0][1])
	assert.True(t, blocks[6][9])
	assert.False(t, raw[0][1])
	assert.False(t, raw[6][9])
}

func TestASCII(t *testing.T) {
	drawn, e := ASCII(twoByOne(t), nil)
	require.NoError(t, e)
	assert.Equal(t, "+ v +---+\n"+
		"|       |\n"+
		"+---+ v +\n", drawn)

	drawn, e = ASCII(twoByOne(t), []maze.Coord{{X: 1, Y: 0}})
	require.NoError(t, e)
	assert.Equal(t, "|     * |", strings.Split(drawn, "\n")[1])

	_, e = ASCII(maze.Snapshot{}, nil)
	assert.ErrorIs(t, e, ErrEmptySnapshot)
}

func TestASCIIGenerationStates(t *testing.T) {
	g, e := maze.Initialize(3, 1, maze.WithSeed(1),
		maze.WithStart(maze.Coord{}))
	require.NoError(t, e)
	_, e = g.Step()
	require.NoError(t, e)
	drawn, e := ASCII(g.Snapshot(), nil)
	require.NoError(t, e)
	assert.Equal(t, "|     @ |:::|", strings.Split(drawn, "\n")[1])
}

func TestColorASCIIMatchesWithoutColor(t *testing.T) {
	saved := fcolor.NoColor
	fcolor.NoColor = true
	defer func() { fcolor.NoColor = saved }()
	s := completed(t, 4, 4)
	plainText, e := ASCII(s, nil)
	require.NoError(t, e)
	colored, e := ColorASCII(s, nil)
	require.NoError(t, e)
	assert.Equal(t, plainText, colored)
}

func TestFitTerminal(t *testing.T) {
	w, h := FitTerminal(80, 24)
	assert.Equal(t, 19, w)
	assert.Equal(t, 11, h)
	w, h = FitTerminal(0, 0)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestTerminalAnimator(t *testing.T) {
	var buf bytes.Buffer
	a := NewTerminalAnimator(&buf, false)
	require.NoError(t, a.Close())
	assert.Empty(t, buf.String())
	s := twoByOne(t)
	require.NoError(t, a.Draw(s, "step 1"))
	require.NoError(t, a.Draw(s, "step 2"))
	require.NoError(t, a.Close())
	assert.Equal(t, 2, a.Frames())
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, clearScreen))
	assert.Equal(t, 2, strings.Count(out, cursorHome))
	assert.True(t, strings.HasSuffix(out, "step 2\n"+cursorOn))
}
