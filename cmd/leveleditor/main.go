// Command leveleditor edits MazeRun level packs (JSON or YAML).
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JozefSVK/MazeRun/internal/level"
)

func load(path string) (*level.Pack, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("no level file at", path, "- starting a new pack")
		return &level.Pack{}, nil
	}
	if err != nil {
		return nil, err
	}
	return level.Decode(b, filepath.Ext(path))
}

func main() {
	var path string
	var seed bool
	flag.StringVar(&path, "file", "levels.json", "level pack to edit (.json, .yaml or .yml)")
	flag.BoolVar(&seed, "builtin", false, "start from the built-in levels when the file does not exist")
	flag.Parse()
	log.SetFlags(0)

	pack, err := load(path)
	if err != nil {
		log.Fatal(err)
	}
	if len(pack.Levels) == 0 && seed {
		if pack, err = level.Default(); err != nil {
			log.Fatal(err)
		}
	}
	ed := newEditor(path, pack)

	ebiten.SetWindowTitle("MazeRun Level Editor")
	ebiten.SetWindowSize(1000, 780)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(ed); err != nil {
		log.Fatal(err)
	}
}
