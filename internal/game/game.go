// Package game is the ebiten front end: scenes, overlay, HUD and drawing.
package game

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JozefSVK/MazeRun/internal/config"
	"github.com/JozefSVK/MazeRun/internal/flow"
	"github.com/JozefSVK/MazeRun/internal/gyro"
	"github.com/JozefSVK/MazeRun/internal/input"
	"github.com/JozefSVK/MazeRun/internal/level"
	"github.com/JozefSVK/MazeRun/internal/progress"
	"github.com/JozefSVK/MazeRun/internal/storage"
	"github.com/JozefSVK/MazeRun/internal/tween"
)

type Game struct {
	cfg      config.Config
	mobile   bool
	store    storage.Store
	pack     *level.Pack
	tracker  *progress.Tracker
	director *flow.Director
	ctrl     *input.Controller

	tilt     *gyro.Source
	pairing  *gyro.Pairing
	phoneURL string
	cancel   context.CancelFunc

	w, h int

	fade     flow.Fade
	timeline *tween.Timeline
	title    string
	leaving  bool
	play     *playScene
	overlay  *overlay

	notice      string
	noticeUntil time.Time

	sfx *sfx
}

// New wires storage, levels, progress and the optional phone relay from cfg.
func New(cfg config.Config) *Game {
	g := &Game{cfg: cfg, mobile: cfg.Mobile(), w: int(level.BaseWidth), h: int(level.BaseHeight)}

	g.store = storage.OpenOrMemory(cfg.Storage, cfg.ProfileDir())
	pack, err := level.Load(cfg.LevelsDir)
	if err != nil {
		// The embedded pack is part of the binary; nothing sensible to run without it.
		log.Fatal("levels: ", err)
	}
	g.pack = pack
	g.tracker = progress.New(g.store, nil)
	g.director = flow.NewDirector(g.tracker, pack.IDs())
	g.director.OnEnter(g.enter)

	g.tilt = gyro.NewSource(cfg.Input.GyroStaleAfter)
	g.ctrl = input.NewController(tuning(cfg.Input), g.tilt)
	if cfg.GyroAddr != "" {
		g.startRelay()
	}
	g.sfx = newSFX()
	return g
}

func tuning(in config.Input) input.Tuning {
	return input.Tuning{
		Speed:              in.Speed,
		DeadZone:           in.DeadZone,
		Curve:              in.Curve,
		Smoothing:          in.Smoothing,
		JoystickRadiusFrac: in.JoystickRadiusFrac,
		GyroMaxTilt:        in.GyroMaxTilt,
	}
}

func (g *Game) startRelay() {
	pairing, err := gyro.NewPairing(g.cfg.ProfileDir(), g.cfg.GyroTokenTTL)
	if err != nil {
		log.Println("gyro: relay disabled:", err)
		return
	}
	g.pairing = pairing
	g.phoneURL = gyro.PhoneURL(g.cfg.GyroAddr, g.cfg.GyroPublicURL)

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	srv := gyro.NewServer(g.cfg.GyroAddr, g.tilt, pairing)
	go func() {
		if err := srv.Run(ctx); err != nil {
			log.Println(err)
		}
	}()
	log.Println("gyro: open", g.phoneURL, "on your phone, PIN", pairing.PIN())
}

// Close stops the relay and flushes storage.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
	}
	g.ctrl.Cleanup()
	if err := g.store.Close(); err != nil {
		log.Println("storage: close:", err)
	}
}

func (g *Game) defaultKind() input.Kind {
	if g.mobile {
		return input.Mouse
	}
	return input.Keyboard
}

// kinds lists the schemes offered in the overlay.
func (g *Game) kinds() []input.Kind {
	var out []input.Kind
	for _, k := range input.Kinds {
		switch {
		case k == input.Keyboard && g.mobile:
			continue
		case k == input.Gyroscope && !g.mobile && g.pairing == nil:
			continue
		}
		out = append(out, k)
	}
	return out
}

func (g *Game) enter(s flow.State) {
	switch s.Scene {
	case flow.Menu, flow.Instructions:
		g.leavePlay()
		g.timeline = nil
	case flow.Transition:
		g.leavePlay()
		g.startTransition(s.Level)
	case flow.Game:
		g.timeline = nil
		g.startPlay(s.Level)
	case flow.End:
		g.leavePlay()
		g.leaving = false
		g.timeline = flow.EndIntro(&g.fade)
	}
}

func (g *Game) move(err error) {
	if err != nil {
		log.Println("flow:", err)
	}
}

func (g *Game) flash(msg string) {
	g.notice = msg
	g.noticeUntil = time.Now().Add(2 * time.Second)
}

func frameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) Update() error {
	dt := frameDelta()
	switch g.director.State().Scene {
	case flow.Menu:
		g.updateMenu()
	case flow.Instructions:
		g.updateInstructions()
	case flow.Transition:
		if g.timeline != nil {
			g.timeline.Update(dt)
		}
	case flow.Game:
		g.updatePlay(dt, time.Now())
	case flow.End:
		g.updateEnd(dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	switch g.director.State().Scene {
	case flow.Menu:
		g.drawMenu(screen)
	case flow.Instructions:
		g.drawInstructions(screen)
	case flow.Transition:
		g.drawTransition(screen)
	case flow.Game:
		g.drawPlay(screen)
	case flow.End:
		g.drawEnd(screen)
	}
	if g.notice != "" && time.Now().Before(g.noticeUntil) {
		drawCentered(screen, g.notice, uiFace(18), float64(g.w)/2, float64(g.h)-30, colMuted)
	}
}

// Layout follows the window so the world transform can stretch to it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.w, g.h
	}
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctrl.Resize(g.w, g.h)
	}
	return g.w, g.h
}
