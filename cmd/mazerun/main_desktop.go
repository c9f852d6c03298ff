//go:build !android

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JozefSVK/MazeRun/internal/config"
	"github.com/JozefSVK/MazeRun/internal/game"
)

func main() {
	cfg := config.Load()
	log.Println("Desktop main() starting, profile dir", cfg.ProfileDir())
	g := game.New(cfg)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Println(err)
	}
}
