package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/JozefSVK/MazeRun/internal/input"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readFrame snapshots keyboard and pointer for the input controller. Touch
// counts as the mouse; only the first finger steers.
func readFrame(w, h int, now time.Time) input.Frame {
	f := input.Frame{Width: w, Height: h, Now: now}
	f.Keys = input.Keys{
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		f.Pointer = input.Pointer{X: float64(x), Y: float64(y), Pressed: true}
		return f
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		f.Pointer = input.Pointer{X: float64(x), Y: float64(y), Pressed: true}
	}
	return f
}

// clicked reports a fresh left click or touch and where it landed.
func clicked() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}

func cursor() (int, int) { return ebiten.CursorPosition() }
