package level

import (
	"math"
	"math/rand"
)

const (
	coinRadius    = 9.0
	coinMargin    = 30.0
	minPlayerGap  = 80.0
	placeAttempts = 200
)

// PlaceRandomCoins appends RandomCoins coins to l.Coins. The RNG is seeded
// with the level id, so a level always generates the same layout. Coins avoid
// obstacles, traps, existing coins and the player start.
func PlaceRandomCoins(l *Level) {
	if l.RandomCoins <= 0 || l.generated > 0 {
		return
	}
	rng := rand.New(rand.NewSource(int64(l.ID)))
	placed := 0
	for i := 0; i < l.RandomCoins*placeAttempts && placed < l.RandomCoins; i++ {
		p := Point{
			X: coinMargin + rng.Float64()*(BaseWidth-2*coinMargin),
			Y: coinMargin + rng.Float64()*(BaseHeight-2*coinMargin),
		}
		if !free(l, p) {
			continue
		}
		l.Coins = append(l.Coins, p)
		placed++
		l.generated++
	}
}

func free(l *Level, p Point) bool {
	if dist(p, l.Player) < minPlayerGap {
		return false
	}
	for _, c := range l.Coins {
		if dist(p, c) < 4*coinRadius {
			return false
		}
	}
	for _, o := range l.Obstacles {
		if math.Abs(p.X-o.X) < o.Width/2+coinRadius*2 && math.Abs(p.Y-o.Y) < o.Height/2+coinRadius*2 {
			return false
		}
	}
	for _, t := range l.Traps {
		reach := t.Size * 1.5
		if t.Type == TrapRotatingBlade {
			reach = t.Width / 2
		}
		if dist(p, Point{t.X, t.Y}) < reach+coinRadius*2 {
			return false
		}
	}
	return true
}

func dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
