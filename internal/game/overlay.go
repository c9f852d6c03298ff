package game

import (
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// overlay is the in-game menu. While it is open the level is paused.
type overlay struct{}

type overlayItem struct {
	button
	selected bool
	act      func()
}

type overlayLine struct {
	text string
	y    int
}

func (g *Game) toggleOverlay() {
	if g.overlay != nil {
		g.overlay = nil
		return
	}
	g.overlay = &overlay{}
}

func (g *Game) overlayLayout() (rect, []overlayItem, []overlayLine) {
	const (
		pw   = 360
		bh   = 40
		gap  = 10
		padY = 24
	)
	var items []overlayItem
	var lines []overlayLine

	y := padY + 50
	lines = append(lines, overlayLine{"Controls", y})
	y += 16
	for _, k := range g.kinds() {
		items = append(items, overlayItem{
			button:   button{label: k.Label(g.mobile), r: rect{0, y, pw - 48, bh}},
			selected: g.ctrl.Kind() == k,
			act:      func() { g.changeControl(k) },
		})
		y += bh + gap
	}
	if g.pairing != nil {
		y += 16
		lines = append(lines, overlayLine{"Phone: " + g.phoneURL, y})
		y += 26
		lines = append(lines, overlayLine{"PIN: " + g.pairing.PIN(), y})
		y += 16
		items = append(items, overlayItem{
			button: button{label: "Copy phone link", r: rect{0, y, pw - 48, bh}},
			act:    g.copyPhoneLink,
		})
		y += bh + gap
	}
	y += gap
	items = append(items,
		overlayItem{button: button{label: "Continue", r: rect{0, y, pw - 48, bh}}, act: g.toggleOverlay},
		overlayItem{button: button{label: "Quit", r: rect{0, y + bh + gap, pw - 48, bh}}, act: func() {
			g.move(g.director.Quit())
		}},
	)
	y += 2*(bh+gap) + padY

	panel := rect{g.w/2 - pw/2, g.h/2 - y/2, pw, y}
	for i := range items {
		items[i].r.x += panel.x + 24
		items[i].r.y += panel.y
	}
	for i := range lines {
		lines[i].y += panel.y
	}
	return panel, items, lines
}

func (g *Game) updateOverlay() {
	x, y, ok := clicked()
	if !ok {
		return
	}
	panel, items, _ := g.overlayLayout()
	if !panel.hit(x, y) {
		g.toggleOverlay()
		return
	}
	for _, it := range items {
		if it.r.hit(x, y) {
			it.act()
			return
		}
	}
}

func (g *Game) copyPhoneLink() {
	if err := clipboard.WriteAll(g.phoneURL); err != nil {
		log.Println("clipboard:", err)
		g.flash("Could not copy, open " + g.phoneURL)
		return
	}
	g.flash("Phone link copied")
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.w), float32(g.h), color.NRGBA{0, 0, 0, 128}, false)
	panel, items, lines := g.overlayLayout()
	vector.DrawFilledRect(screen, float32(panel.x), float32(panel.y), float32(panel.w), float32(panel.h), colPanel, false)

	cx := float64(panel.x) + float64(panel.w)/2
	drawCentered(screen, "Game Menu", titleFace(28), cx, float64(panel.y)+36, colPanelText)
	for _, l := range lines {
		drawCentered(screen, l.text, uiFace(16), cx, float64(l.y), colPanelText)
	}
	mx, my := cursor()
	for _, it := range items {
		drawButton(screen, it.button, uiFace(20), it.r.hit(mx, my), it.selected)
	}
}
