package main

import (
	"fmt"

	"github.com/JozefSVK/MazeRun/internal/level"
)

// save validates the pack, including random coin placement, and writes it
// back to e.path. The status line reports the outcome.
func (e *editor) save() error {
	check := level.Pack{Levels: make([]level.Level, len(e.pack.Levels))}
	for i, l := range e.pack.Levels {
		l.Coins = append([]level.Point(nil), l.Coins...)
		l.Obstacles = append([]level.Obstacle(nil), l.Obstacles...)
		l.Traps = append([]level.Trap(nil), l.Traps...)
		check.Levels[i] = l
	}
	if err := check.Prepare(); err != nil {
		e.status = "not saved: " + err.Error()
		return fmt.Errorf("save %s: %w", e.path, err)
	}
	if err := level.Save(e.path, e.pack); err != nil {
		e.status = "save failed: " + err.Error()
		return fmt.Errorf("save %s: %w", e.path, err)
	}
	e.dirty = false
	e.status = "saved " + e.path
	return nil
}
