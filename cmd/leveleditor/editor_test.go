package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JozefSVK/MazeRun/internal/level"
)

func testEditor(t *testing.T) *editor {
	t.Helper()
	pack := &level.Pack{Levels: []level.Level{
		{ID: 1, Player: level.Point{X: 100, Y: 300}, Coins: []level.Point{{X: 400, Y: 300}}},
		{ID: 4, Player: level.Point{X: 100, Y: 300}, Coins: []level.Point{{X: 200, Y: 200}}},
	}}
	return newEditor(filepath.Join(t.TempDir(), "levels.json"), pack)
}

func TestSnap(t *testing.T) {
	e := testEditor(t)
	if got := e.snap(level.Point{X: 123, Y: 456.7}); got != (level.Point{X: 120, Y: 460}) {
		t.Fatalf("want 120,460, got %+v", got)
	}
	if got := e.snap(level.Point{X: -40, Y: 900}); got != (level.Point{X: 0, Y: 600}) {
		t.Fatalf("want clamp to 0,600, got %+v", got)
	}
	e.grid = 0
	if got := e.snap(level.Point{X: 123, Y: 45.5}); got != (level.Point{X: 123, Y: 45.5}) {
		t.Fatalf("grid off should not round, got %+v", got)
	}
}

func TestNewAndDeleteLevel(t *testing.T) {
	e := testEditor(t)
	e.newLevel()
	if e.level().ID != 5 || e.cur != 2 {
		t.Fatalf("want new level 5 selected, got id %d cur %d", e.level().ID, e.cur)
	}
	if len(e.level().Coins) != 0 || e.level().Player.X != newLevelStartX {
		t.Fatalf("unexpected new level %+v", *e.level())
	}
	e.deleteLevel()
	if len(e.pack.Levels) != 2 || e.cur != 1 {
		t.Fatalf("want 2 levels with cur 1, got %d/%d", len(e.pack.Levels), e.cur)
	}
	e.deleteLevel()
	e.deleteLevel()
	if len(e.pack.Levels) != 1 {
		t.Fatalf("last level must survive, got %d", len(e.pack.Levels))
	}
}

func TestEmptyPackGetsALevel(t *testing.T) {
	e := newEditor("x.json", nil)
	if len(e.pack.Levels) != 1 || e.level().ID != 1 {
		t.Fatalf("want one level with id 1, got %+v", e.pack.Levels)
	}
}

func TestSelectLevelWraps(t *testing.T) {
	e := testEditor(t)
	e.selectLevel(-1)
	if e.cur != 1 {
		t.Fatalf("want wrap to 1, got %d", e.cur)
	}
	e.selectLevel(1)
	if e.cur != 0 {
		t.Fatalf("want wrap to 0, got %d", e.cur)
	}
}

func TestApplyTools(t *testing.T) {
	e := testEditor(t)
	e.tool = toolCoin
	e.apply(level.Point{X: 301, Y: 99})
	l := e.level()
	if len(l.Coins) != 2 || l.Coins[1] != (level.Point{X: 300, Y: 100}) {
		t.Fatalf("want snapped coin, got %+v", l.Coins)
	}
	e.tool = toolBlade
	e.apply(level.Point{X: 500, Y: 500})
	e.tool = toolSpike
	e.apply(level.Point{X: 600, Y: 100})
	if len(l.Traps) != 2 {
		t.Fatalf("want 2 traps, got %d", len(l.Traps))
	}
	if b := l.Traps[0]; b.Type != level.TrapRotatingBlade || b.Width != level.DefaultBladeWidth || b.RotationSpeed != level.DefaultRotationSpeed {
		t.Fatalf("unexpected blade %+v", b)
	}
	if s := l.Traps[1]; s.Type != level.TrapSpikeBall || s.Size != level.DefaultSpikeSize {
		t.Fatalf("unexpected spike ball %+v", s)
	}
	e.tool = toolPlayer
	e.apply(level.Point{X: 50, Y: 50})
	if l.Player != (level.Point{X: 50, Y: 50}) {
		t.Fatalf("want player moved, got %+v", l.Player)
	}
	e.tool = toolErase
	e.apply(level.Point{X: 305, Y: 100})
	if len(l.Coins) != 1 {
		t.Fatalf("erase should remove the coin, got %+v", l.Coins)
	}
	if !e.dirty {
		t.Fatalf("edits should mark the editor dirty")
	}
}

func TestAddObstacle(t *testing.T) {
	e := testEditor(t)
	if e.addObstacle(level.Point{X: 100, Y: 100}, level.Point{X: 104, Y: 300}) {
		t.Fatalf("thin drag should be rejected")
	}
	if !e.addObstacle(level.Point{X: 300, Y: 200}, level.Point{X: 100, Y: 100}) {
		t.Fatalf("drag should add an obstacle")
	}
	o := e.level().Obstacles[0]
	if o != (level.Obstacle{X: 200, Y: 150, Width: 200, Height: 100}) {
		t.Fatalf("want centered 200x100 box, got %+v", o)
	}
}

func TestEraseAtPrefersNearest(t *testing.T) {
	e := testEditor(t)
	l := e.level()
	l.Obstacles = []level.Obstacle{{X: 400, Y: 300, Width: 200, Height: 200}}
	l.Traps = []level.Trap{{Type: level.TrapSpikeBall, X: 410, Y: 300, Size: 20}}

	if !e.eraseAt(level.Point{X: 408, Y: 300}) || len(l.Traps) != 0 || len(l.Coins) != 1 {
		t.Fatalf("want trap erased first, got coins %d traps %d", len(l.Coins), len(l.Traps))
	}
	if !e.eraseAt(level.Point{X: 400, Y: 300}) || len(l.Coins) != 0 {
		t.Fatalf("want coin erased next")
	}
	if !e.eraseAt(level.Point{X: 450, Y: 350}) || len(l.Obstacles) != 0 {
		t.Fatalf("want obstacle erased last")
	}
	if e.eraseAt(level.Point{X: 450, Y: 350}) {
		t.Fatalf("nothing left to erase")
	}
}

func TestAdjustRandomCoins(t *testing.T) {
	e := testEditor(t)
	e.adjustRandomCoins(-1)
	if e.level().RandomCoins != 0 {
		t.Fatalf("want floor at 0, got %d", e.level().RandomCoins)
	}
	e.adjustRandomCoins(1)
	e.adjustRandomCoins(1)
	if e.level().RandomCoins != 2 {
		t.Fatalf("want 2, got %d", e.level().RandomCoins)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	e := testEditor(t)
	e.tool = toolBlade
	e.apply(level.Point{X: 500, Y: 500})
	if err := e.save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if e.dirty {
		t.Fatalf("save should clear dirty")
	}
	got, err := load(e.path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Levels) != 2 || len(got.Levels[0].Traps) != 1 {
		t.Fatalf("unexpected pack %+v", got.Levels)
	}
}

func TestSaveRejectsInvalidPack(t *testing.T) {
	e := testEditor(t)
	e.newLevel()
	if err := e.save(); err == nil {
		t.Fatalf("level without coins should not save")
	}
	if _, err := os.Stat(e.path); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written, stat err %v", err)
	}
	if !e.dirty {
		t.Fatalf("failed save keeps the editor dirty")
	}
}

func TestSaveRejectsLevelWithoutRoomForCoins(t *testing.T) {
	e := testEditor(t)
	l := e.level()
	l.Coins = nil
	l.RandomCoins = 3
	if !e.addObstacle(level.Point{X: 0, Y: 0}, level.Point{X: level.BaseWidth, Y: level.BaseHeight}) {
		t.Fatalf("full board obstacle should be added")
	}
	err := e.save()
	if err == nil {
		t.Fatalf("level with no room for coins should not save")
	}
	if !strings.Contains(e.status, "no room for random coins") {
		t.Fatalf("want the reason on the status line, got %q", e.status)
	}
	if _, err := os.Stat(e.path); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written, stat err %v", err)
	}
}

func TestSaveDropsGeneratedCoins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	e := newEditor(path, &level.Pack{Levels: []level.Level{
		{ID: 2, Player: level.Point{X: 100, Y: 300}, RandomCoins: 3},
	}})
	if err := e.save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	p, err := level.Decode(b, ".yaml")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n := len(p.Levels[0].Coins); n != 3 {
		t.Fatalf("want 3 regenerated coins, got %d", n)
	}
}
