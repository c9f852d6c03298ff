package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JozefSVK/MazeRun/internal/input"
	"github.com/JozefSVK/MazeRun/internal/level"
	"github.com/JozefSVK/MazeRun/internal/world"
)

type playScene struct {
	lvl   *level.Level
	world *world.World
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) startPlay(id int) {
	l, err := g.pack.Lookup(id)
	if err != nil {
		log.Println("game:", err)
		g.play = nil
		return
	}
	g.play = &playScene{lvl: l, world: world.New(l, world.Options{Mobile: g.mobile})}
	g.overlay = nil
	g.ctrl.Resize(g.w, g.h)

	kind := g.tracker.ControlType(g.defaultKind())
	if !slices.Contains(g.kinds(), kind) {
		kind = g.defaultKind()
	}
	if err := g.ctrl.Setup(kind); err != nil {
		log.Println("input:", err)
	}
}

func (g *Game) leavePlay() {
	if g.play == nil {
		return
	}
	g.ctrl.Cleanup()
	g.play = nil
	g.overlay = nil
}

func (g *Game) gearRect() rect { return rect{g.w - 56, 16, 40, 40} }

func (g *Game) updatePlay(dt time.Duration, now time.Time) {
	if g.play == nil {
		g.move(g.director.Quit())
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.toggleOverlay()
		return
	}
	if g.overlay != nil {
		g.updateOverlay()
		return
	}
	if x, y, ok := clicked(); ok && g.gearRect().hit(x, y) {
		g.toggleOverlay()
		return
	}

	vel := g.ctrl.Update(readFrame(g.w, g.h, now))
	ev := g.play.world.Step(dt, vel)
	if ev.Coins > 0 {
		g.sfx.play(g.sfx.coin)
	}
	if ev.Hit != world.HazardNone {
		g.ctrl.Stop()
		g.sfx.play(g.sfx.hit)
	}
	if ev.Completed {
		g.move(g.director.CompleteLevel(g.play.lvl.ID))
	}
}

// changeControl persists k and swaps the live scheme.
func (g *Game) changeControl(k input.Kind) {
	g.tracker.SetControlType(k)
	if err := g.ctrl.SetKind(k); errors.Is(err, input.ErrPermissionDenied) {
		if g.pairing != nil {
			g.flash("Open " + g.phoneURL + " on your phone and enter PIN " + g.pairing.PIN())
		} else {
			g.flash("Tilt control is not available")
		}
	}
}

func (g *Game) drawPlay(screen *ebiten.Image) {
	if g.play == nil {
		return
	}
	tr := level.Scale(g.w, g.h)
	w := g.play.world

	for _, o := range w.Obstacles {
		x, y, ow, oh := o.Rect()
		vector.DrawFilledRect(screen, float32(x*tr.SX), float32(y*tr.SY), float32(ow*tr.SX), float32(oh*tr.SY), colObstacle, false)
	}
	for _, c := range w.Coins {
		if !c.Collected {
			drawCoin(screen, tr, c)
		}
	}
	for _, b := range w.Blades {
		drawBlade(screen, tr, b)
	}
	for _, s := range w.Spikes {
		drawSpikeBall(screen, tr, s)
	}
	bx, by := tr.Point(level.Point{X: w.Ball.X, Y: w.Ball.Y})
	vector.DrawFilledCircle(screen, float32(bx), float32(by), float32(tr.Len(w.Ball.Radius)), colBall, true)

	if v, ok := g.ctrl.Joystick(); ok {
		vector.StrokeCircle(screen, float32(v.Origin.X), float32(v.Origin.Y), float32(v.Radius), 2, color.NRGBA{255, 255, 255, 128}, true)
		vector.DrawFilledCircle(screen, float32(v.Knob.X), float32(v.Knob.Y), float32(v.Radius*0.5), color.NRGBA{255, 255, 255, 160}, true)
	}

	hud := fmt.Sprintf("Coins: %d/%d", w.Collected(), w.Total())
	f := uiFace(24)
	b := text.BoundString(f, hud)
	text.Draw(screen, hud, f, 20, 20-b.Min.Y, colText)

	g.drawGear(screen)
	if g.overlay != nil {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawGear(screen *ebiten.Image) {
	cx, cy := g.gearRect().center()
	x, y := float32(cx), float32(cy)
	vector.DrawFilledCircle(screen, x, y, 20, colGear, true)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		c, s := float32(math.Cos(a)), float32(math.Sin(a))
		vector.StrokeLine(screen, x+c*7, y+s*7, x+c*13, y+s*13, 4, colText, true)
	}
	vector.StrokeCircle(screen, x, y, 8, 3, colText, true)
}

func drawCoin(screen *ebiten.Image, tr level.Transform, c *world.Coin) {
	x, y := tr.Point(level.Point{X: c.X, Y: c.DrawY()})
	gr, ga := c.Glow()
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(tr.Len(gr)), withAlpha(colCoin, ga), true)

	r := tr.Len(c.Radius)
	var path vector.Path
	const seg = 24
	for i := 0; i <= seg; i++ {
		a := 2 * math.Pi * float64(i) / seg
		px := float32(x + math.Cos(a)*r*c.ScaleX())
		py := float32(y + math.Sin(a)*r)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	fillPath(screen, &path, colCoin)
}

func drawBlade(screen *ebiten.Image, tr level.Transform, b *world.RotatingBlade) {
	half := b.Width / 2
	hub := b.HubRadius()
	th := b.Thickness() / 2
	pts := [][2]float64{
		{-half, 0}, {-hub, th}, {0, th}, {hub, th},
		{half, 0}, {hub, -th}, {0, -th}, {-hub, -th},
	}
	sin, cos := math.Sincos(b.Angle)
	var path vector.Path
	for i, p := range pts {
		x, y := tr.Point(level.Point{
			X: b.X + p[0]*cos - p[1]*sin,
			Y: b.Y + p[0]*sin + p[1]*cos,
		})
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	fillPath(screen, &path, colTrap)
	cx, cy := tr.Point(level.Point{X: b.X, Y: b.Y})
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(tr.Len(hub)), colTrap, true)
}

func drawSpikeBall(screen *ebiten.Image, tr level.Transform, s *world.SpikeBall) {
	cx, cy := tr.Point(level.Point{X: s.X, Y: s.Y})
	l := s.SpikeLength()
	for i := 0; i < world.SpikeCount; i++ {
		a := s.Angle + float64(i)*2*math.Pi/world.SpikeCount
		sin, cos := math.Sincos(a)
		at := func(r, side float64) (float32, float32) {
			x, y := tr.Point(level.Point{
				X: s.X + cos*r - sin*side,
				Y: s.Y + sin*r + cos*side,
			})
			return float32(x), float32(y)
		}
		var path vector.Path
		path.MoveTo(at(s.Size+l, 0))
		path.LineTo(at(s.Size-l*0.5, l*0.5))
		path.LineTo(at(s.Size-l*0.5, -l*0.5))
		path.Close()
		fillPath(screen, &path, colSpike)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(tr.Len(s.Size)), colTrap, true)
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.NRGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r*a, g*a, b*a, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}
