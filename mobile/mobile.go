// Package mobile is the ebitenmobile binding entry point.
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/JozefSVK/MazeRun/internal/config"
	"github.com/JozefSVK/MazeRun/internal/game"
)

func init() {
	cfg := config.Load()
	if cfg.Platform == "desktop" {
		cfg.Platform = "android"
	}
	mobile.SetGame(game.New(cfg))
}

// Dummy forces gomobile to export the package.
func Dummy() {}
