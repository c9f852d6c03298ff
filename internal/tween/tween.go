// Package tween animates scalar values over time and sequences timed steps.
package tween

import "time"

// Tween interpolates From→To over Duration after Delay. Yoyo plays the
// reverse leg as part of each cycle; Repeat < 0 loops forever.
type Tween struct {
	From, To float64
	Duration time.Duration
	Delay    time.Duration
	Ease     Func
	Yoyo     bool
	Repeat   int

	elapsed time.Duration
}

func New(from, to float64, d time.Duration, ease Func) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{From: from, To: to, Duration: d, Ease: ease}
}

func (t *Tween) cycle() time.Duration {
	if t.Yoyo {
		return 2 * t.Duration
	}
	return t.Duration
}

// Update advances the tween by dt and returns the current value and whether it
// has finished. Infinite tweens never finish.
func (t *Tween) Update(dt time.Duration) (float64, bool) {
	t.elapsed += dt
	return t.Value(), t.Done()
}

func (t *Tween) Done() bool {
	if t.Repeat < 0 {
		return false
	}
	return t.elapsed >= t.Delay+t.cycle()*time.Duration(t.Repeat+1)
}

func (t *Tween) Value() float64 {
	e := t.elapsed - t.Delay
	if e <= 0 || t.Duration <= 0 {
		if t.Duration <= 0 && e > 0 {
			return t.To
		}
		return t.From
	}
	if t.Done() {
		if t.Yoyo {
			return t.From
		}
		return t.To
	}
	c := t.cycle()
	e %= c
	p := float64(e) / float64(t.Duration)
	if p > 1 {
		p = 2 - p
	}
	return t.From + (t.To-t.From)*t.Ease(clamp01(p))
}

func (t *Tween) Reset() { t.elapsed = 0 }
