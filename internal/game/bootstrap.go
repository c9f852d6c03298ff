//go:build !android

package game

import "github.com/hajimehoshi/ebiten/v2"

func init() {
	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("Maze Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(400, 300, -1, -1)
}
