package flow

import (
	"time"

	"github.com/JozefSVK/MazeRun/internal/tween"
)

const (
	TransitionFadeIn  = 500 * time.Millisecond
	TransitionHold    = 2000 * time.Millisecond
	TransitionFadeOut = 500 * time.Millisecond

	EndFadeIn  = 1000 * time.Millisecond
	EndFadeOut = 500 * time.Millisecond
)

// Fade is what a transition or end screen draws with: text opacity and the
// opacity of the black cover on top of everything.
type Fade struct {
	Text  float64
	Cover float64
}

// TransitionTimeline fades the level title in over the black backdrop,
// holds it, fades both out and then calls done.
func TransitionTimeline(f *Fade, done func()) *tween.Timeline {
	*f = Fade{Text: 0, Cover: 1}
	return tween.NewTimeline(
		tween.Step{Duration: TransitionFadeIn, Tick: func(p float64) {
			f.Text = tween.OutCubic(p)
		}},
		tween.Step{Duration: TransitionHold},
		tween.Step{Duration: TransitionFadeOut, Tick: func(p float64) {
			v := 1 - tween.OutCubic(p)
			f.Text, f.Cover = v, v
		}, Done: done},
	)
}

// EndIntro reveals the congratulations screen.
func EndIntro(f *Fade) *tween.Timeline {
	*f = Fade{Text: 0, Cover: 1}
	return tween.NewTimeline(tween.Step{Duration: EndFadeIn, Tick: func(p float64) {
		e := tween.OutCubic(p)
		f.Text = e
		f.Cover = 1 - e
	}})
}

// EndOutro covers the screen again and then calls done.
func EndOutro(f *Fade, done func()) *tween.Timeline {
	from := f.Cover
	return tween.NewTimeline(tween.Step{Duration: EndFadeOut, Tick: func(p float64) {
		f.Cover = from + (1-from)*tween.OutCubic(p)
	}, Done: done})
}
