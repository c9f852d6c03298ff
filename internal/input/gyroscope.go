package input

import (
	"log"
	"time"
)

type gyroscope struct {
	src     TiltSource
	enabled bool
}

// enable is the permission step: without a granted source the scheme stays
// silent.
func (g *gyroscope) enable() error {
	if g.src == nil || !g.src.Granted() {
		g.enabled = false
		return ErrPermissionDenied
	}
	g.enabled = true
	return nil
}

// intent maps device tilt to screen axes. Landscape swaps beta and gamma.
func (g *gyroscope) intent(now time.Time, maxTilt float64) Vector {
	if !g.enabled {
		if g.src == nil || !g.src.Granted() {
			return Vector{}
		}
		g.enabled = true
		log.Println("input: gyroscope granted")
	}
	t, ok := g.src.Tilt(now)
	if !ok || maxTilt <= 0 {
		return Vector{}
	}
	var x, y float64
	if t.Landscape {
		x = -t.Gamma
		y = t.Beta
	} else {
		x = -t.Beta
		y = -t.Gamma
	}
	return Vector{X: y / maxTilt, Y: x / maxTilt}
}
