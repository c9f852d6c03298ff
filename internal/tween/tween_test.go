package tween

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEaseEndpoints(t *testing.T) {
	for name, f := range map[string]Func{"linear": Linear, "outCubic": OutCubic, "inOutSine": InOutSine} {
		if !near(f(0), 0) || !near(f(1), 1) {
			t.Fatalf("%s: want 0->0 and 1->1, got %v %v", name, f(0), f(1))
		}
	}
	if OutCubic(0.5) <= 0.5 {
		t.Fatalf("out ease should run ahead of linear")
	}
}

func TestTweenOnce(t *testing.T) {
	tw := New(0, 1, 500*time.Millisecond, Linear)
	v, done := tw.Update(250 * time.Millisecond)
	if !near(v, 0.5) || done {
		t.Fatalf("want 0.5 not done, got %v %v", v, done)
	}
	v, done = tw.Update(300 * time.Millisecond)
	if !near(v, 1) || !done {
		t.Fatalf("want 1 done, got %v %v", v, done)
	}
}

func TestTweenDelay(t *testing.T) {
	tw := New(1, 0, 500*time.Millisecond, Linear)
	tw.Delay = 500 * time.Millisecond
	if v, _ := tw.Update(400 * time.Millisecond); v != 1 {
		t.Fatalf("delayed tween should hold From, got %v", v)
	}
	if v, _ := tw.Update(350 * time.Millisecond); !near(v, 0.5) {
		t.Fatalf("want 0.5, got %v", v)
	}
}

func TestTweenYoyoForever(t *testing.T) {
	tw := New(0, 10, time.Second, Linear)
	tw.Yoyo = true
	tw.Repeat = -1
	if v, _ := tw.Update(500 * time.Millisecond); !near(v, 5) {
		t.Fatalf("want 5 on the way out, got %v", v)
	}
	if v, _ := tw.Update(time.Second); !near(v, 5) {
		t.Fatalf("want 5 on the way back, got %v", v)
	}
	if _, done := tw.Update(time.Hour); done {
		t.Fatalf("infinite tween must not finish")
	}
}

func TestTimelineCarriesOver(t *testing.T) {
	var order []string
	var last float64
	tl := NewTimeline(
		Step{Duration: 500 * time.Millisecond, Tick: func(p float64) { last = p }, Done: func() { order = append(order, "in") }},
		Step{Duration: 2 * time.Second, Done: func() { order = append(order, "hold") }},
		Step{Duration: 500 * time.Millisecond, Done: func() { order = append(order, "out") }},
	)
	tl.Update(250 * time.Millisecond)
	if !near(last, 0.5) {
		t.Fatalf("want half progress, got %v", last)
	}
	tl.Update(2500 * time.Millisecond)
	if len(order) != 2 || order[1] != "hold" {
		t.Fatalf("want in+hold fired, got %v", order)
	}
	tl.Update(10 * time.Second)
	if !tl.Finished() || len(order) != 3 {
		t.Fatalf("want finished with 3 steps, got %v", order)
	}
}
