package tween

import "time"

// Step is one stage of a Timeline. Tick receives the stage progress in [0,1];
// Done runs once when the stage ends.
type Step struct {
	Duration time.Duration
	Tick     func(p float64)
	Done     func()
}

// Timeline runs steps back to back. A step with only Done acts as a delayed
// call.
type Timeline struct {
	steps   []Step
	idx     int
	elapsed time.Duration
}

func NewTimeline(steps ...Step) *Timeline {
	return &Timeline{steps: steps}
}

func (tl *Timeline) Finished() bool { return tl.idx >= len(tl.steps) }

// Update advances by dt, carrying leftover time into the following steps.
func (tl *Timeline) Update(dt time.Duration) {
	tl.elapsed += dt
	for !tl.Finished() {
		s := tl.steps[tl.idx]
		if tl.elapsed < s.Duration {
			if s.Tick != nil && s.Duration > 0 {
				s.Tick(float64(tl.elapsed) / float64(s.Duration))
			}
			return
		}
		if s.Tick != nil {
			s.Tick(1)
		}
		tl.elapsed -= s.Duration
		tl.idx++
		if s.Done != nil {
			s.Done()
		}
	}
}
