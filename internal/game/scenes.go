package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JozefSVK/MazeRun/internal/flow"
)

const (
	menuStart = iota
	menuInstructions
	menuReset
)

var instructions = []string{
	"Collect every coin to finish a level.",
	"Obstacles and traps send you back to the start.",
	"",
	"Keyboard: arrow keys or WASD",
	"Mouse / touch: drag to use the joystick",
	"Gyroscope: tilt your phone",
	"",
	"Press Esc or the gear to open the game menu.",
}

func (g *Game) menuButtons() []button {
	return column([]string{"Start Game", "Instructions", "Reset Progress"}, g.w/2, g.h/2-20, 260, 44, 14)
}

func (g *Game) backButton() button {
	return button{label: "Back to Menu", r: rect{g.w/2 - 130, g.h - 110, 260, 44}}
}

func (g *Game) updateMenu() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.move(g.director.StartGame())
		return
	}
	x, y, ok := clicked()
	if !ok {
		return
	}
	switch hitButton(g.menuButtons(), x, y) {
	case menuStart:
		g.move(g.director.StartGame())
	case menuInstructions:
		g.move(g.director.ShowInstructions())
	case menuReset:
		g.move(g.director.ResetProgress())
		g.flash("Progress reset")
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	drawCentered(screen, "Maze Run", titleFace(64), float64(g.w)/2, float64(g.h)/4, colText)
	ids := g.director.Levels()
	played := len(ids) - len(g.tracker.UnplayedLevels(ids))
	drawCentered(screen, fmt.Sprintf("Levels played: %d/%d", played, len(ids)), uiFace(18),
		float64(g.w)/2, float64(g.h)/4+56, colMuted)

	mx, my := cursor()
	for _, b := range g.menuButtons() {
		drawButton(screen, b, uiFace(26), b.r.hit(mx, my), false)
	}
}

func (g *Game) updateInstructions() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.move(g.director.BackToMenu())
		return
	}
	if x, y, ok := clicked(); ok && g.backButton().r.hit(x, y) {
		g.move(g.director.BackToMenu())
	}
}

func (g *Game) drawInstructions(screen *ebiten.Image) {
	drawCentered(screen, "How to Play:", titleFace(36), float64(g.w)/2, 90, colText)
	f := uiFace(20)
	for i, line := range instructions {
		drawCentered(screen, line, f, float64(g.w)/2, 160+float64(i)*30, colText)
	}
	mx, my := cursor()
	b := g.backButton()
	drawButton(screen, b, uiFace(24), b.r.hit(mx, my), false)
}

func (g *Game) startTransition(id int) {
	g.title = fmt.Sprintf("Level %d", id)
	if l, err := g.pack.Lookup(id); err == nil {
		g.title = l.Title()
	} else {
		log.Println("transition:", err)
	}
	g.timeline = flow.TransitionTimeline(&g.fade, func() {
		g.move(g.director.TransitionDone())
	})
}

func (g *Game) drawTransition(screen *ebiten.Image) {
	w, h := float32(g.w), float32(g.h)
	vector.DrawFilledRect(screen, 0, 0, w, h, withAlpha(colBackground, g.fade.Cover), false)
	drawCentered(screen, g.title, titleFace(56), float64(g.w)/2, float64(g.h)/2, withAlpha(colText, g.fade.Text))
}

func (g *Game) updateEnd(dt time.Duration) {
	if g.timeline != nil {
		g.timeline.Update(dt)
	}
	if g.leaving || g.fade.Text < 1 {
		return
	}
	x, y, ok := clicked()
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if enter || (ok && g.backButton().r.hit(x, y)) {
		g.leaving = true
		g.timeline = flow.EndOutro(&g.fade, func() {
			g.move(g.director.BackToMenu())
		})
	}
}

func (g *Game) drawEnd(screen *ebiten.Image) {
	cx, cy := float64(g.w)/2, float64(g.h)/2
	drawCentered(screen, "Congratulations!", titleFace(64), cx, cy-50, withAlpha(colText, g.fade.Text))
	drawCentered(screen, "You completed all levels!", uiFace(32), cx, cy+50, withAlpha(colText, g.fade.Text))
	mx, my := cursor()
	b := g.backButton()
	if g.fade.Text >= 1 {
		drawButton(screen, b, uiFace(24), b.r.hit(mx, my), false)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(g.w), float32(g.h), withAlpha(colBackground, g.fade.Cover), false)
}
