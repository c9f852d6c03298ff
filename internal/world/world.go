// Package world simulates one level in the 800x600 base space: the ball,
// coins, obstacles and traps, with collisions on a resolv spatial hash.
package world

import (
	"math"
	"time"

	"github.com/solarlune/resolv"

	"github.com/JozefSVK/MazeRun/internal/input"
	"github.com/JozefSVK/MazeRun/internal/level"
)

// Category is a collision group bit.
type Category uint8

const (
	CategoryPlayer   Category = 0x1
	CategoryTrap     Category = 0x2
	CategoryCoin     Category = 0x4
	CategoryObstacle Category = 0x8
)

var (
	tagPlayer   = resolv.NewTag("player")
	tagTrap     = resolv.NewTag("trap")
	tagCoin     = resolv.NewTag("coin")
	tagObstacle = resolv.NewTag("obstacle")
)

// masks lists what each category collides with. Traps, coins and obstacles
// only ever meet the player.
var masks = map[Category]Category{
	CategoryPlayer:   CategoryTrap | CategoryCoin | CategoryObstacle,
	CategoryTrap:     CategoryPlayer,
	CategoryCoin:     CategoryPlayer,
	CategoryObstacle: CategoryPlayer,
}

func Collides(a, b Category) bool {
	return masks[a]&b != 0 && masks[b]&a != 0
}

func tagFor(c Category) resolv.Tags {
	switch c {
	case CategoryPlayer:
		return tagPlayer
	case CategoryTrap:
		return tagTrap
	case CategoryCoin:
		return tagCoin
	default:
		return tagObstacle
	}
}

// Hazard says what reset the ball.
type Hazard int

const (
	HazardNone Hazard = iota
	HazardObstacle
	HazardTrap
)

// Events is what one Step produced.
type Events struct {
	Coins     int
	Hit       Hazard
	Completed bool
}

type Options struct {
	// Mobile halves blade speed.
	Mobile bool
}

type World struct {
	Level     *level.Level
	Ball      Ball
	Coins     []*Coin
	Obstacles []Obstacle
	Blades    []*RotatingBlade
	Spikes    []*SpikeBall

	space     *resolv.Space
	playerTag resolv.Tags
	against   resolv.Tags
	collected int
	completed bool
}

// New builds the world for l.
func New(l *level.Level, opts Options) *World {
	w := &World{
		Level: l,
		space: resolv.NewSpace(int(level.BaseWidth), int(level.BaseHeight), 32, 32),
	}
	w.playerTag = tagFor(CategoryPlayer)
	for _, c := range []Category{CategoryTrap, CategoryCoin, CategoryObstacle} {
		if Collides(CategoryPlayer, c) {
			w.against |= tagFor(c)
		}
	}

	start := w.clamp(l.Player.X, l.Player.Y, BallRadius)
	w.Ball = Ball{X: start.X, Y: start.Y, Radius: BallRadius}
	w.Ball.shape = resolv.NewCircle(start.X, start.Y, BallRadius)
	w.Ball.shape.Tags().Set(w.playerTag)
	w.space.Add(w.Ball.shape)

	for _, p := range l.Coins {
		c := newCoin(p)
		c.shape = resolv.NewCircle(c.X, c.Y, c.Radius)
		c.shape.Tags().Set(tagFor(CategoryCoin))
		w.space.Add(c.shape)
		w.Coins = append(w.Coins, c)
	}
	for _, o := range l.Obstacles {
		ob := Obstacle{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
		x, y, ww, hh := ob.Rect()
		sh := resolv.NewRectangleFromTopLeft(x, y, ww, hh)
		sh.Tags().Set(tagFor(CategoryObstacle))
		w.space.Add(sh)
		w.Obstacles = append(w.Obstacles, ob)
	}
	for _, t := range l.Traps {
		switch t.Type {
		case level.TrapRotatingBlade:
			w.Blades = append(w.Blades, newBlade(t, opts.Mobile))
		case level.TrapSpikeBall:
			s := &SpikeBall{X: t.X, Y: t.Y, Size: t.Size}
			s.shape = resolv.NewCircle(s.X, s.Y, s.HitRadius())
			s.shape.Tags().Set(tagFor(CategoryTrap))
			w.space.Add(s.shape)
			w.Spikes = append(w.Spikes, s)
		}
	}
	return w
}

func (w *World) Collected() int  { return w.collected }
func (w *World) Total() int      { return len(w.Coins) }
func (w *World) Completed() bool { return w.completed }

// ResetBall puts the ball back on the level start at rest.
func (w *World) ResetBall() {
	p := w.clamp(w.Level.Player.X, w.Level.Player.Y, w.Ball.Radius)
	w.Ball.moveTo(p.X, p.Y)
	w.Ball.VX, w.Ball.VY = 0, 0
}

func (w *World) clamp(x, y, r float64) level.Point {
	return level.Point{
		X: math.Max(r, math.Min(level.BaseWidth-r, x)),
		Y: math.Max(r, math.Min(level.BaseHeight-r, y)),
	}
}

// Step advances animations by dt, moves the ball with vel (px/s) and resolves
// pickups and hazards. Completion is reported once.
func (w *World) Step(dt time.Duration, vel input.Vector) Events {
	var ev Events
	for _, c := range w.Coins {
		c.animate(dt)
	}
	for _, b := range w.Blades {
		b.advance(dt)
	}
	for _, s := range w.Spikes {
		s.advance(dt)
	}

	w.Ball.VX, w.Ball.VY = vel.X, vel.Y
	s := dt.Seconds()
	p := w.clamp(w.Ball.X+vel.X*s, w.Ball.Y+vel.Y*s, w.Ball.Radius)
	w.Ball.moveTo(p.X, p.Y)

	var taken []resolv.IShape
	hit := HazardNone
	sh := w.Ball.shape
	sh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: sh.SelectTouchingCells(0).FilterShapes().ByTags(w.against),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			tags := set.OtherShape.Tags()
			switch {
			case tags.Has(tagCoin):
				taken = append(taken, set.OtherShape)
			case tags.Has(tagTrap):
				hit = HazardTrap
			case tags.Has(tagObstacle) && hit == HazardNone:
				hit = HazardObstacle
			}
			return true
		},
	})
	for _, b := range w.Blades {
		if b.hits(w.Ball.X, w.Ball.Y, w.Ball.Radius) {
			hit = HazardTrap
		}
	}

	for _, other := range taken {
		for _, c := range w.Coins {
			if c.shape == other && !c.Collected {
				c.Collected = true
				w.space.Remove(c.shape)
				w.collected++
				ev.Coins++
			}
		}
	}
	if hit != HazardNone {
		ev.Hit = hit
		w.ResetBall()
	}
	if !w.completed && len(w.Coins) > 0 && w.collected == len(w.Coins) {
		w.completed = true
		ev.Completed = true
	}
	return ev
}
