// Package mazeapi serves generated mazes over HTTP.
package mazeapi

import (
	"github.com/google/uuid"
	"github.com/kian-mehta/ExtendedEssay/maze"
)

// MazeQuery holds the query parameters shared by every maze route.
type MazeQuery struct {
	Width     int     `form:"width" binding:"omitempty,min=1"`
	Height    int     `form:"height" binding:"omitempty,min=1"`
	Seed      int64   `form:"seed"`
	Algorithm string  `form:"algorithm"`
	Solution  bool    `form:"solution"`
	Braid     float64 `form:"braid" binding:"omitempty,min=0"`
	Erode     int     `form:"erode" binding:"omitempty,min=0"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID        uuid.UUID    `json:"id"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Algorithm string       `json:"algorithm"`
	Seed      int64        `json:"seed"`
	Steps     int          `json:"steps"`
	Commits   int          `json:"commits"`
	Entrance  maze.Coord   `json:"entrance"`
	Exit      maze.Coord   `json:"exit"`
	OpenEdges []maze.Edge  `json:"open_edges"`
	Blocks    []string     `json:"blocks"`
	Solution  []maze.Coord `json:"solution,omitempty"`
}

// StepEntry describes the maze after a single generation step.
type StepEntry struct {
	Step     int         `json:"step"`
	Cell     *maze.Coord `json:"cell,omitempty"`
	Visited  int         `json:"visited"`
	Frontier int         `json:"frontier"`
	Done     bool        `json:"done"`
}

// StepTraceResponse lists every step of a maze's generation, starting with
// the state before the first step.
type StepTraceResponse struct {
	ID        uuid.UUID   `json:"id"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Algorithm string      `json:"algorithm"`
	Seed      int64       `json:"seed"`
	Start     maze.Coord  `json:"start"`
	Steps     []StepEntry `json:"steps"`
}
