package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	colBackground = color.NRGBA{17, 17, 17, 255}
	colText       = color.NRGBA{255, 255, 255, 255}
	colMuted      = color.NRGBA{170, 170, 170, 255}
	colHover      = color.NRGBA{255, 255, 0, 255}
	colButton     = color.NRGBA{68, 68, 68, 255}
	colButtonOn   = color.NRGBA{46, 125, 50, 255}
	colPanel      = color.NRGBA{250, 250, 250, 255}
	colPanelText  = color.NRGBA{30, 30, 30, 255}
	colBall       = color.NRGBA{255, 0, 0, 255}
	colCoin       = color.NRGBA{255, 255, 0, 255}
	colObstacle   = color.NRGBA{102, 102, 102, 255}
	colTrap       = color.NRGBA{255, 0, 0, 255}
	colSpike      = color.NRGBA{204, 0, 0, 255}
	colGear       = color.NRGBA{31, 41, 55, 255}
)

type rect struct{ x, y, w, h int }

func (r rect) hit(mx, my int) bool {
	return mx >= r.x && mx <= r.x+r.w && my >= r.y && my <= r.y+r.h
}

func (r rect) center() (float64, float64) {
	return float64(r.x) + float64(r.w)/2, float64(r.y) + float64(r.h)/2
}

type button struct {
	label string
	r     rect
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	c.A = uint8(float64(c.A) * a)
	return c
}

// drawCentered draws s centered on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, f font.Face, cx, cy float64, clr color.Color) {
	b := text.BoundString(f, s)
	x := int(cx) - b.Dx()/2 - b.Min.X
	y := int(cy) - b.Dy()/2 - b.Min.Y
	text.Draw(dst, s, f, x, y, clr)
}

// drawButton is a filled box with a centered label, yellow on hover.
func drawButton(dst *ebiten.Image, b button, f font.Face, hovered, selected bool) {
	bg := colButton
	if selected {
		bg = colButtonOn
	}
	vector.DrawFilledRect(dst, float32(b.r.x), float32(b.r.y), float32(b.r.w), float32(b.r.h), bg, false)
	fg := colText
	if hovered {
		fg = colHover
	}
	cx, cy := b.r.center()
	drawCentered(dst, b.label, f, cx, cy, fg)
}

// column lays out n buttons of size w x h centered on cx, starting at top.
func column(labels []string, cx, top, w, h, gap int) []button {
	out := make([]button, len(labels))
	for i, l := range labels {
		out[i] = button{label: l, r: rect{cx - w/2, top + i*(h+gap), w, h}}
	}
	return out
}

func hitButton(bs []button, x, y int) int {
	for i, b := range bs {
		if b.r.hit(x, y) {
			return i
		}
	}
	return -1
}
