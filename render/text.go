package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kian-mehta/ExtendedEssay/maze"
)

// Returns the snapshot's block raster (see maze.Snapshot.Blocks) with the
// outer border opened above the entrance and below the exit.
func Blocks(s maze.Snapshot) [][]bool {
	toReturn := s.Blocks()
	if (s.Width < 1) || (s.Height < 1) {
		return toReturn
	}
	entrance, exit := endpoints(s)
	top := maze.BlockPosition(entrance)
	bottom := maze.BlockPosition(exit)
	toReturn[top.Y-1][top.X] = true
	toReturn[bottom.Y+1][bottom.X] = true
	return toReturn
}

// Returns the character used for one block of the text export: 'S' and 'E'
// for the entrance and exit cells, '1' for paths, '0' for walls.
func blockChar(s maze.Snapshot, blocks [][]bool, row, col int) byte {
	entrance, exit := endpoints(s)
	switch (maze.Coord{X: col, Y: row}) {
	case maze.BlockPosition(entrance):
		return 'S'
	case maze.BlockPosition(exit):
		return 'E'
	}
	if blocks[row][col] {
		return '1'
	}
	return '0'
}

// Formats a single block row as {'0', '1', ...}.
func formatRow(s maze.Snapshot, blocks [][]bool, row int) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for col := range blocks[row] {
		if col != 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('\'')
		sb.WriteByte(blockChar(s, blocks, row, col))
		sb.WriteByte('\'')
	}
	sb.WriteByte('}')
	return sb.String()
}

// Writes the maze's block raster as rows of quoted characters in braces, one
// row per line. This is the format read by the solver tooling: 'S' and 'E'
// mark the entrance and exit, '1' is an open block and '0' is a wall.
func WriteText(w io.Writer, s maze.Snapshot) error {
	if s.CellCount() == 0 {
		return ErrEmptySnapshot
	}
	blocks := Blocks(s)
	out := bufio.NewWriter(w)
	for row := range blocks {
		out.WriteString(formatRow(s, blocks, row))
		if row != (len(blocks) - 1) {
			out.WriteByte(',')
		}
		out.WriteByte('\n')
	}
	e := out.Flush()
	if e != nil {
		return fmt.Errorf("Error writing maze text: %w", e)
	}
	return nil
}

// Returns the whole maze as a single line of nested braces, suitable for
// appending to a file holding one maze per line.
func TextLine(s maze.Snapshot) string {
	if s.CellCount() == 0 {
		return "{}"
	}
	blocks := Blocks(s)
	rows := make([]string, len(blocks))
	for row := range blocks {
		rows[row] = formatRow(s, blocks, row)
	}
	return "{" + strings.Join(rows, ",") + "}"
}
