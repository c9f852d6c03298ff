package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/JozefSVK/MazeRun/internal/level"
)

var (
	colGrid     = color.NRGBA{40, 40, 50, 255}
	colCanvas   = color.NRGBA{17, 17, 17, 255}
	colObstacle = color.NRGBA{102, 102, 102, 255}
	colCoin     = color.NRGBA{255, 255, 0, 255}
	colTrap     = color.NRGBA{255, 0, 0, 255}
	colPlayer   = color.NRGBA{80, 160, 255, 255}
	colDrag     = color.NRGBA{255, 255, 255, 90}
)

func (e *editor) Draw(screen *ebiten.Image) {
	vw, vh := e.w, e.h
	ebitenutil.DrawRect(screen, 0, 0, float64(vw), float64(vh), color.NRGBA{20, 20, 30, 255})
	cv := canvasFor(vw, vh)

	x0, y0 := cv.toScreen(level.Point{})
	x1, y1 := cv.toScreen(level.Point{X: level.BaseWidth, Y: level.BaseHeight})
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colCanvas, false)
	if e.grid > 0 {
		step := math.Max(e.grid, 50)
		for gx := step; gx < level.BaseWidth; gx += step {
			a, _ := cv.toScreen(level.Point{X: gx})
			vector.StrokeLine(screen, a, y0, a, y1, 1, colGrid, false)
		}
		for gy := step; gy < level.BaseHeight; gy += step {
			_, b := cv.toScreen(level.Point{Y: gy})
			vector.StrokeLine(screen, x0, b, x1, b, 1, colGrid, false)
		}
	}

	l := e.level()
	s := float32(cv.scale)
	for _, o := range l.Obstacles {
		x, y := cv.toScreen(level.Point{X: o.X - o.Width/2, Y: o.Y - o.Height/2})
		vector.DrawFilledRect(screen, x, y, float32(o.Width)*s, float32(o.Height)*s, colObstacle, false)
	}
	for _, c := range l.Coins {
		x, y := cv.toScreen(c)
		vector.DrawFilledCircle(screen, x, y, 9*s, colCoin, true)
	}
	for _, t := range l.Traps {
		x, y := cv.toScreen(level.Point{X: t.X, Y: t.Y})
		switch t.Type {
		case level.TrapRotatingBlade:
			vector.StrokeCircle(screen, x, y, float32(t.Width/2)*s, 1, colTrap, true)
			vector.StrokeLine(screen, x-float32(t.Width/2)*s, y, x+float32(t.Width/2)*s, y, float32(t.Width*0.08)*s, colTrap, true)
		case level.TrapSpikeBall:
			vector.DrawFilledCircle(screen, x, y, float32(t.Size)*s, colTrap, true)
			vector.StrokeCircle(screen, x, y, float32(t.Size*1.5)*s, 1, colTrap, true)
		}
	}
	px, py := cv.toScreen(l.Player)
	vector.DrawFilledCircle(screen, px, py, 15*s, colPlayer, true)

	if e.dragging {
		a, b := e.snap(e.dragStart), e.snap(e.dragEnd)
		ax, ay := cv.toScreen(level.Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)})
		bx, by := cv.toScreen(level.Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)})
		vector.DrawFilledRect(screen, ax, ay, bx-ax, by-ay, colDrag, false)
	}

	title := fmt.Sprintf("Level %d (%d/%d)  coins %d  random %d  tool [%d] %s",
		l.ID, e.cur+1, len(e.pack.Levels), len(l.Coins), l.RandomCoins, int(e.tool)+1, e.tool)
	if e.dirty {
		title += "  *"
	}
	text.Draw(screen, title, basicfont.Face7x13, 10, 20, color.White)
	text.Draw(screen, "1-6 tools  N new  Del delete  </> level  +/- random coins  G grid  Ctrl+S save  right-click erase",
		basicfont.Face7x13, 10, 38, color.NRGBA{180, 180, 180, 255})
	text.Draw(screen, e.status, basicfont.Face7x13, 10, vh-8, color.NRGBA{200, 200, 120, 255})
}
