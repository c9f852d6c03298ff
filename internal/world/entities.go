package world

import (
	"math"
	"time"

	"github.com/solarlune/resolv"

	"github.com/JozefSVK/MazeRun/internal/level"
	"github.com/JozefSVK/MazeRun/internal/tween"
)

const (
	BallRadius = 0.025 * level.BaseHeight
	CoinRadius = 0.015 * level.BaseHeight

	coinHover    = 5.0
	coinCycle    = 1000 * time.Millisecond
	SpikeCount   = 8
	SpikePeriod  = 2000 * time.Millisecond
	framesPerSec = 60.0
)

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	shape *resolv.Circle
}

func (b *Ball) moveTo(x, y float64) {
	b.X, b.Y = x, y
	b.shape.SetPosition(x, y)
}

// Coin is a pickup. Hover, squash and glow only change how it is drawn; the
// collision circle never moves.
type Coin struct {
	X, Y      float64
	Radius    float64
	Collected bool

	hover, squash, glow *tween.Tween
	shape               *resolv.Circle
}

func newCoin(p level.Point) *Coin {
	loop := func(from, to float64) *tween.Tween {
		t := tween.New(from, to, coinCycle, tween.InOutSine)
		t.Yoyo = true
		t.Repeat = -1
		return t
	}
	return &Coin{
		X:      p.X,
		Y:      p.Y,
		Radius: CoinRadius,
		hover:  loop(0, -coinHover),
		squash: loop(1, 0.5),
		glow:   loop(0, 1),
	}
}

func (c *Coin) animate(dt time.Duration) {
	c.hover.Update(dt)
	c.squash.Update(dt)
	c.glow.Update(dt)
}

// DrawY is the hovering y position.
func (c *Coin) DrawY() float64 { return c.Y + c.hover.Value() }

// ScaleX is the horizontal squash that fakes a spinning coin.
func (c *Coin) ScaleX() float64 { return c.squash.Value() }

// Glow returns the halo radius and alpha.
func (c *Coin) Glow() (radius, alpha float64) {
	p := c.glow.Value()
	return c.Radius * 1.5 * (1 + 0.2*p), 0.2 - 0.1*p
}

// Obstacle is a static center-anchored rectangle.
type Obstacle struct {
	X, Y, Width, Height float64
}

func (o Obstacle) Rect() (x, y, w, h float64) {
	return o.X - o.Width/2, o.Y - o.Height/2, o.Width, o.Height
}

// RotatingBlade is a bar spinning around its hub.
type RotatingBlade struct {
	X, Y  float64
	Width float64
	Angle float64

	perSecond float64
}

func newBlade(t level.Trap, mobile bool) *RotatingBlade {
	period := t.RotationSpeed / 1000
	if mobile {
		period *= 2
	}
	// The per-frame step is 2π/(period·60); stepping by time keeps that
	// speed independent of the tick rate.
	step := 2 * math.Pi / (period * framesPerSec)
	return &RotatingBlade{X: t.X, Y: t.Y, Width: t.Width, perSecond: step * framesPerSec}
}

func (b *RotatingBlade) HubRadius() float64     { return b.Width * 0.05 }
func (b *RotatingBlade) Thickness() float64     { return b.Width * 0.08 }
func (b *RotatingBlade) AngularSpeed() float64  { return b.perSecond }
func (b *RotatingBlade) advance(dt time.Duration) {
	b.Angle = math.Mod(b.Angle+b.perSecond*dt.Seconds(), 2*math.Pi)
}

// Ends returns the two blade tips.
func (b *RotatingBlade) Ends() (x1, y1, x2, y2 float64) {
	dx := math.Cos(b.Angle) * b.Width / 2
	dy := math.Sin(b.Angle) * b.Width / 2
	return b.X - dx, b.Y - dy, b.X + dx, b.Y + dy
}

// hits tests a circle against the blade capsule and its hub.
func (b *RotatingBlade) hits(x, y, r float64) bool {
	if math.Hypot(x-b.X, y-b.Y) < r+b.HubRadius() {
		return true
	}
	x1, y1, x2, y2 := b.Ends()
	return segmentDist(x, y, x1, y1, x2, y2) < r+b.Thickness()/2
}

// SpikeBall is a spinning ball with spikes. Its hit circle covers the tips.
type SpikeBall struct {
	X, Y  float64
	Size  float64
	Angle float64

	elapsed time.Duration
	shape   *resolv.Circle
}

func (s *SpikeBall) SpikeLength() float64 { return s.Size * 0.5 }
func (s *SpikeBall) HitRadius() float64   { return s.Size * 1.5 }

func (s *SpikeBall) advance(dt time.Duration) {
	s.elapsed = (s.elapsed + dt) % SpikePeriod
	s.Angle = 2 * math.Pi * float64(s.elapsed) / float64(SpikePeriod)
}

func segmentDist(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
