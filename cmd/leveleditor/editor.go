package main

import (
	"fmt"
	"math"

	"github.com/JozefSVK/MazeRun/internal/level"
)

const (
	eraseReach     = 20.0
	minObstacle    = 10.0
	newLevelStartX = 100.0
)

func newEditor(path string, pack *level.Pack) *editor {
	if pack == nil || len(pack.Levels) == 0 {
		pack = &level.Pack{}
	}
	e := &editor{path: path, pack: pack, grid: 10}
	for i := range e.pack.Levels {
		e.pack.Levels[i].StripGenerated()
	}
	if len(e.pack.Levels) == 0 {
		e.newLevel()
	}
	e.status = fmt.Sprintf("%s: %d levels", path, len(e.pack.Levels))
	return e
}

func (e *editor) level() *level.Level { return &e.pack.Levels[e.cur] }

func (e *editor) snap(p level.Point) level.Point {
	p.X = math.Max(0, math.Min(level.BaseWidth, p.X))
	p.Y = math.Max(0, math.Min(level.BaseHeight, p.Y))
	if e.grid <= 0 {
		return p
	}
	return level.Point{X: math.Round(p.X/e.grid) * e.grid, Y: math.Round(p.Y/e.grid) * e.grid}
}

// newLevel appends an empty level after the highest id and selects it.
func (e *editor) newLevel() {
	id := 1
	for _, l := range e.pack.Levels {
		if l.ID >= id {
			id = l.ID + 1
		}
	}
	e.pack.Levels = append(e.pack.Levels, level.Level{
		ID:     id,
		Player: level.Point{X: newLevelStartX, Y: level.BaseHeight / 2},
		Coins:  []level.Point{},
	})
	e.cur = len(e.pack.Levels) - 1
	e.dirty = true
	e.status = fmt.Sprintf("new level %d", id)
}

func (e *editor) deleteLevel() {
	if len(e.pack.Levels) <= 1 {
		e.status = "cannot delete the last level"
		return
	}
	id := e.level().ID
	e.pack.Levels = append(e.pack.Levels[:e.cur], e.pack.Levels[e.cur+1:]...)
	if e.cur >= len(e.pack.Levels) {
		e.cur = len(e.pack.Levels) - 1
	}
	e.dirty = true
	e.status = fmt.Sprintf("deleted level %d", id)
}

func (e *editor) selectLevel(delta int) {
	n := len(e.pack.Levels)
	e.cur = ((e.cur+delta)%n + n) % n
	e.dragging = false
}

// apply runs the current tool at p (base space). Obstacles use drag instead.
func (e *editor) apply(p level.Point) {
	p = e.snap(p)
	l := e.level()
	switch e.tool {
	case toolCoin:
		l.Coins = append(l.Coins, p)
	case toolBlade:
		l.Traps = append(l.Traps, level.Trap{
			Type: level.TrapRotatingBlade, X: p.X, Y: p.Y,
			Width: level.DefaultBladeWidth, RotationSpeed: level.DefaultRotationSpeed,
		})
	case toolSpike:
		l.Traps = append(l.Traps, level.Trap{Type: level.TrapSpikeBall, X: p.X, Y: p.Y, Size: level.DefaultSpikeSize})
	case toolPlayer:
		l.Player = p
	case toolErase:
		if !e.eraseAt(p) {
			return
		}
	default:
		return
	}
	e.dirty = true
}

// addObstacle turns a drag between two corners into a center-anchored box.
func (e *editor) addObstacle(a, b level.Point) bool {
	a, b = e.snap(a), e.snap(b)
	w, h := math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)
	if w < minObstacle || h < minObstacle {
		return false
	}
	l := e.level()
	l.Obstacles = append(l.Obstacles, level.Obstacle{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Width: w, Height: h})
	e.dirty = true
	return true
}

// eraseAt removes the closest coin or trap within reach, else an obstacle
// under p.
func (e *editor) eraseAt(p level.Point) bool {
	l := e.level()
	best, kind, idx := eraseReach, "", -1
	for i, c := range l.Coins {
		if d := math.Hypot(c.X-p.X, c.Y-p.Y); d <= best {
			best, kind, idx = d, "coin", i
		}
	}
	for i, t := range l.Traps {
		if d := math.Hypot(t.X-p.X, t.Y-p.Y); d <= best {
			best, kind, idx = d, "trap", i
		}
	}
	switch kind {
	case "coin":
		l.Coins = append(l.Coins[:idx], l.Coins[idx+1:]...)
		return true
	case "trap":
		l.Traps = append(l.Traps[:idx], l.Traps[idx+1:]...)
		return true
	}
	for i := len(l.Obstacles) - 1; i >= 0; i-- {
		o := l.Obstacles[i]
		if math.Abs(p.X-o.X) <= o.Width/2 && math.Abs(p.Y-o.Y) <= o.Height/2 {
			l.Obstacles = append(l.Obstacles[:i], l.Obstacles[i+1:]...)
			return true
		}
	}
	return false
}

func (e *editor) adjustRandomCoins(d int) {
	l := e.level()
	l.RandomCoins = max(0, l.RandomCoins+d)
	e.dirty = true
}
