//go:build android

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/JozefSVK/MazeRun/internal/config"
	"github.com/JozefSVK/MazeRun/internal/game"
)

func init() {
	log.Println("Android init: SetGame")
	cfg := config.Load()
	cfg.Platform = "android"
	mobile.SetGame(game.New(cfg))
}

func main() {}
