// Package level holds level descriptors: the player start, coins, obstacles
// and traps, all in the fixed 800x600 base space.
package level

import (
	"errors"
	"fmt"
	"sort"
)

const (
	BaseWidth  = 800.0
	BaseHeight = 600.0

	TrapRotatingBlade = "rotatingBlade"
	TrapSpikeBall     = "spikeBall"

	DefaultBladeWidth    = 200.0
	DefaultRotationSpeed = 2000.0 // ms per full turn
	DefaultSpikeSize     = 20.0
)

var ErrNotFound = errors.New("level not found")

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Obstacle is a center-anchored static rectangle.
type Obstacle struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type Trap struct {
	Type          string  `json:"type" yaml:"type"`
	X             float64 `json:"x" yaml:"x"`
	Y             float64 `json:"y" yaml:"y"`
	Width         float64 `json:"width,omitempty" yaml:"width,omitempty"`                 // blade length
	RotationSpeed float64 `json:"rotationSpeed,omitempty" yaml:"rotationSpeed,omitempty"` // ms per turn
	Size          float64 `json:"size,omitempty" yaml:"size,omitempty"`                   // spike ball radius
}

type Level struct {
	ID          int        `json:"id" yaml:"id"`
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	Player      Point      `json:"player" yaml:"player"`
	Coins       []Point    `json:"coins" yaml:"coins"`
	RandomCoins int        `json:"randomCoins,omitempty" yaml:"randomCoins,omitempty"`
	Obstacles   []Obstacle `json:"obstacles" yaml:"obstacles"`
	Traps       []Trap     `json:"traps,omitempty" yaml:"traps,omitempty"`

	generated int
}

type Pack struct {
	Levels []Level `json:"levels" yaml:"levels"`
}

// Title is the heading shown on the transition screen.
func (l Level) Title() string {
	if l.Name != "" {
		return fmt.Sprintf("Level %d: %s", l.ID, l.Name)
	}
	return fmt.Sprintf("Level %d", l.ID)
}

// StripGenerated drops procedurally placed coins so only authored ones remain.
// PlaceRandomCoins will place them again.
func (l *Level) StripGenerated() {
	if l.generated > 0 && len(l.Coins) >= l.generated {
		l.Coins = l.Coins[:len(l.Coins)-l.generated]
	}
	l.generated = 0
}

func (t *Trap) applyDefaults() {
	switch t.Type {
	case TrapRotatingBlade:
		if t.Width <= 0 {
			t.Width = DefaultBladeWidth
		}
		if t.RotationSpeed <= 0 {
			t.RotationSpeed = DefaultRotationSpeed
		}
	case TrapSpikeBall:
		if t.Size <= 0 {
			t.Size = DefaultSpikeSize
		}
	}
}

// Lookup finds a level by id.
func (p *Pack) Lookup(id int) (*Level, error) {
	for i := range p.Levels {
		if p.Levels[i].ID == id {
			return &p.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// IDs returns the level ids in pack order.
func (p *Pack) IDs() []int {
	ids := make([]int, 0, len(p.Levels))
	for _, l := range p.Levels {
		ids = append(ids, l.ID)
	}
	return ids
}

func (p *Pack) sortByID() {
	sort.SliceStable(p.Levels, func(i, j int) bool { return p.Levels[i].ID < p.Levels[j].ID })
}

// Validate checks ids, sizes and trap types and fills trap defaults.
func (p *Pack) Validate() error {
	if len(p.Levels) == 0 {
		return errors.New("level pack is empty")
	}
	seen := map[int]bool{}
	for i := range p.Levels {
		l := &p.Levels[i]
		if l.ID <= 0 {
			return fmt.Errorf("level #%d: id must be positive", i)
		}
		if seen[l.ID] {
			return fmt.Errorf("level %d: duplicate id", l.ID)
		}
		seen[l.ID] = true
		if len(l.Coins)+l.RandomCoins == 0 {
			return fmt.Errorf("level %d: no coins", l.ID)
		}
		if l.RandomCoins < 0 {
			return fmt.Errorf("level %d: randomCoins must not be negative", l.ID)
		}
		for j, o := range l.Obstacles {
			if o.Width <= 0 || o.Height <= 0 {
				return fmt.Errorf("level %d: obstacle %d has no size", l.ID, j)
			}
		}
		for j := range l.Traps {
			t := &l.Traps[j]
			if t.Type != TrapRotatingBlade && t.Type != TrapSpikeBall {
				return fmt.Errorf("level %d: trap %d has unknown type %q", l.ID, j, t.Type)
			}
			t.applyDefaults()
		}
	}
	return nil
}

// Prepare validates the pack, orders it by id and places random coins. A
// level left without any coin after placement is rejected.
func (p *Pack) Prepare() error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.sortByID()
	for i := range p.Levels {
		l := &p.Levels[i]
		PlaceRandomCoins(l)
		if len(l.Coins) == 0 {
			return fmt.Errorf("level %d: no room for random coins", l.ID)
		}
	}
	return nil
}

// Transform maps base-space coordinates onto a screen of another size.
type Transform struct{ SX, SY float64 }

// Scale returns the base-to-screen transform for a w x h screen.
func Scale(w, h int) Transform {
	if w <= 0 || h <= 0 {
		return Transform{1, 1}
	}
	return Transform{float64(w) / BaseWidth, float64(h) / BaseHeight}
}

func (t Transform) Point(p Point) (float64, float64) { return p.X * t.SX, p.Y * t.SY }

// Len scales a radius or stroke width; circles stay round.
func (t Transform) Len(v float64) float64 {
	if t.SX < t.SY {
		return v * t.SX
	}
	return v * t.SY
}

// Inverse maps a screen position back to base space.
func (t Transform) Inverse(x, y float64) Point {
	return Point{x / t.SX, y / t.SY}
}
