package tween

import "math"

// Func maps progress t in [0,1] to eased progress.
type Func func(t float64) float64

func Linear(t float64) float64 { return t }

// OutCubic is the "Power2" ease.
func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
