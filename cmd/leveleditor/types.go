package main

import "github.com/JozefSVK/MazeRun/internal/level"

type tool int

const (
	toolCoin tool = iota
	toolObstacle
	toolBlade
	toolSpike
	toolPlayer
	toolErase
)

var toolNames = []string{"coin", "obstacle", "blade", "spike ball", "player start", "erase"}

func (t tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "?"
}

// editor is the level editor state.
type editor struct {
	path string
	pack *level.Pack
	cur  int // index into pack.Levels

	tool tool
	grid float64 // snap step in base units, 0 = off

	// obstacle drag in base space
	dragging  bool
	dragStart level.Point
	dragEnd   level.Point

	status string
	dirty  bool

	w, h int // window size from Layout
}
