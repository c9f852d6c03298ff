package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/JozefSVK/MazeRun/internal/level"
)

const (
	topUIH    = 48
	bottomUIH = 24
)

// canvas maps base space onto the window below the toolbar.
type canvas struct {
	offX, offY, scale float64
}

func canvasFor(w, h int) canvas {
	avail := float64(h - topUIH - bottomUIH)
	s := min(float64(w)/level.BaseWidth, avail/level.BaseHeight)
	if s <= 0 {
		s = 1
	}
	return canvas{
		offX:  (float64(w) - level.BaseWidth*s) / 2,
		offY:  topUIH + (avail-level.BaseHeight*s)/2,
		scale: s,
	}
}

func (c canvas) toBase(x, y int) level.Point {
	return level.Point{X: (float64(x) - c.offX) / c.scale, Y: (float64(y) - c.offY) / c.scale}
}

func (c canvas) toScreen(p level.Point) (float32, float32) {
	return float32(c.offX + p.X*c.scale), float32(c.offY + p.Y*c.scale)
}

func (c canvas) inside(p level.Point) bool {
	return p.X >= 0 && p.X <= level.BaseWidth && p.Y >= 0 && p.Y <= level.BaseHeight
}

var toolKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

func (e *editor) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	for i, k := range toolKeys {
		if inpututil.IsKeyJustPressed(k) {
			e.tool = tool(i)
			e.status = "tool: " + e.tool.String()
		}
	}
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := e.save(); err != nil {
			log.Println("leveleditor:", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		e.newLevel()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		e.deleteLevel()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		e.selectLevel(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		e.selectLevel(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		e.adjustRandomCoins(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		e.adjustRandomCoins(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		if e.grid > 0 {
			e.grid = 0
		} else {
			e.grid = 10
		}
		e.status = fmt.Sprintf("grid snap: %v", e.grid)
	}

	cv := canvasFor(e.w, e.h)
	mx, my := ebiten.CursorPosition()
	p := cv.toBase(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && cv.inside(p) {
		if e.eraseAt(e.snap(p)) {
			e.dirty = true
		}
		return nil
	}
	if e.tool == toolObstacle {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && cv.inside(p):
			e.dragging = true
			e.dragStart, e.dragEnd = p, p
		case e.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			e.dragEnd = p
		case e.dragging:
			e.dragging = false
			if !e.addObstacle(e.dragStart, e.dragEnd) {
				e.status = "obstacle too small"
			}
		}
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && cv.inside(p) {
		e.apply(p)
	}
	return nil
}

func (e *editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.w, e.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
