package flow

import (
	"errors"
	"slices"
	"testing"
	"time"
)

type fakeProgress struct {
	played  []int
	current int
	hasCur  bool
	cleared int
	pick    func(left []int) int
}

func (f *fakeProgress) AddPlayedLevel(id int) {
	if !slices.Contains(f.played, id) {
		f.played = append(f.played, id)
	}
}
func (f *fakeProgress) SaveCurrentLevel(id int) { f.current, f.hasCur = id, true }
func (f *fakeProgress) CurrentLevel() int {
	if !f.hasCur {
		return 1
	}
	return f.current
}
func (f *fakeProgress) HasCurrentLevel() bool { return f.hasCur }
func (f *fakeProgress) ClearProgress() {
	f.played, f.current, f.hasCur = nil, 0, false
	f.cleared++
}
func (f *fakeProgress) UnplayedLevels(all []int) []int {
	var out []int
	for _, id := range all {
		if !slices.Contains(f.played, id) {
			out = append(out, id)
		}
	}
	return out
}
func (f *fakeProgress) RandomUnplayedLevel(all []int) (int, bool) {
	left := f.UnplayedLevels(all)
	if len(left) == 0 {
		return 0, false
	}
	if f.pick != nil {
		return f.pick(left), true
	}
	return left[len(left)-1], true
}

func TestFullRun(t *testing.T) {
	p := &fakeProgress{}
	d := NewDirector(p, []int{1, 2, 3})
	var entered []State
	d.OnEnter(func(s State) { entered = append(entered, s) })

	if err := d.StartGame(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 3; i++ {
		st := d.State()
		if st.Scene != Transition {
			t.Fatalf("want transition, got %s", st.Scene)
		}
		if p.current != st.Level {
			t.Fatalf("want current level %d saved, got %d", st.Level, p.current)
		}
		if err := d.TransitionDone(); err != nil {
			t.Fatalf("transition done: %v", err)
		}
		if err := d.CompleteLevel(st.Level); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}
	if d.State().Scene != End {
		t.Fatalf("want end after every level, got %s", d.State().Scene)
	}
	if len(p.played) != 3 {
		t.Fatalf("want 3 played, got %v", p.played)
	}
	if len(entered) != 7 {
		t.Fatalf("want 7 scene changes, got %d", len(entered))
	}
	if err := d.BackToMenu(); err != nil || d.State().Scene != Menu {
		t.Fatalf("end should lead back to menu: %v", err)
	}
	if err := d.StartGame(); err != nil || d.State().Scene != End {
		t.Fatalf("starting with nothing left should go to end, got %s (%v)", d.State().Scene, err)
	}
}

func TestStartResumesUnplayedCurrent(t *testing.T) {
	p := &fakeProgress{current: 2, hasCur: true}
	d := NewDirector(p, []int{1, 2, 3})
	if err := d.StartGame(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := d.State(); got != (State{Transition, 2}) {
		t.Fatalf("want resume level 2, got %+v", got)
	}
}

func TestStartSkipsPlayedCurrent(t *testing.T) {
	p := &fakeProgress{current: 2, hasCur: true, played: []int{2}}
	p.pick = func(left []int) int { return left[0] }
	d := NewDirector(p, []int{1, 2, 3})
	if err := d.StartGame(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := d.State().Level; got != 1 {
		t.Fatalf("want random unplayed level 1, got %d", got)
	}
}

func TestCompleteNeverPicksPlayed(t *testing.T) {
	p := &fakeProgress{}
	d := NewDirector(p, []int{1, 2, 3, 4})
	_ = d.StartGame()
	for d.State().Scene == Transition {
		id := d.State().Level
		if slices.Contains(p.played, id) {
			t.Fatalf("level %d offered twice", id)
		}
		_ = d.TransitionDone()
		_ = d.CompleteLevel(id)
	}
	if d.State().Scene != End {
		t.Fatalf("want end, got %s", d.State().Scene)
	}
}

func TestInvalidMovesKeepState(t *testing.T) {
	p := &fakeProgress{}
	d := NewDirector(p, []int{1, 2})
	cases := []struct {
		name string
		fn   func() error
	}{
		{"transition done on menu", d.TransitionDone},
		{"quit on menu", d.Quit},
		{"complete on menu", func() error { return d.CompleteLevel(1) }},
		{"menu on menu", d.BackToMenu},
	}
	for _, c := range cases {
		if err := c.fn(); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s: want ErrInvalidTransition, got %v", c.name, err)
		}
		if d.State().Scene != Menu {
			t.Fatalf("%s: state changed to %s", c.name, d.State().Scene)
		}
	}

	_ = d.StartGame()
	_ = d.TransitionDone()
	lvl := d.State().Level
	if err := d.CompleteLevel(lvl + 100); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("completing another level should fail, got %v", err)
	}
	if err := d.ResetProgress(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reset during a level should fail, got %v", err)
	}
	if err := d.Quit(); err != nil || d.State().Scene != Menu {
		t.Fatalf("quit should return to menu: %v", err)
	}
	if d.State().Level != 0 {
		t.Fatalf("menu carries no level, got %d", d.State().Level)
	}
}

func TestInstructionsAndReset(t *testing.T) {
	p := &fakeProgress{played: []int{1}}
	d := NewDirector(p, []int{1, 2})
	if err := d.ShowInstructions(); err != nil {
		t.Fatalf("instructions: %v", err)
	}
	if err := d.BackToMenu(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if err := d.ResetProgress(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if p.cleared != 1 || len(p.played) != 0 || d.State().Scene != Menu {
		t.Fatalf("reset should clear progress and stay on menu")
	}
}

func TestTransitionTimeline(t *testing.T) {
	var f Fade
	done := 0
	tl := TransitionTimeline(&f, func() { done++ })
	if f.Text != 0 || f.Cover != 1 {
		t.Fatalf("want hidden text on black, got %+v", f)
	}
	tl.Update(TransitionFadeIn)
	if f.Text != 1 {
		t.Fatalf("want text visible after fade-in, got %v", f.Text)
	}
	tl.Update(TransitionHold - time.Millisecond)
	if f.Text != 1 || done != 0 {
		t.Fatalf("text should hold, got %+v done=%d", f, done)
	}
	tl.Update(time.Millisecond + TransitionFadeOut)
	if done != 1 || !tl.Finished() {
		t.Fatalf("want done once, got %d", done)
	}
	if f.Text != 0 || f.Cover != 0 {
		t.Fatalf("want everything faded out, got %+v", f)
	}
}

func TestEndFades(t *testing.T) {
	var f Fade
	in := EndIntro(&f)
	in.Update(EndFadeIn / 2)
	if f.Text <= 0 || f.Text >= 1 || f.Cover <= 0 || f.Cover >= 1 {
		t.Fatalf("want mid fade, got %+v", f)
	}
	in.Update(EndFadeIn)
	if f.Text != 1 || f.Cover != 0 {
		t.Fatalf("want revealed, got %+v", f)
	}
	left := false
	out := EndOutro(&f, func() { left = true })
	out.Update(EndFadeOut)
	if !left || f.Cover != 1 {
		t.Fatalf("want covered and done, got %+v left=%v", f, left)
	}
}
