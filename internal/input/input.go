// Package input turns keyboard, pointer and device-tilt state into a ball
// velocity. Every scheme first produces an intent inside the unit disc; a
// shared pipeline then applies dead-zone, response curve, speed and smoothing.
package input

import (
	"errors"
	"math"
	"strings"
	"time"
)

type Kind string

const (
	Keyboard  Kind = "keyboard"
	Mouse     Kind = "mouse"
	Gyroscope Kind = "gyroscope"
)

var Kinds = []Kind{Keyboard, Mouse, Gyroscope}

// ErrPermissionDenied is returned by Setup when the gyroscope has no granted
// tilt source yet.
var ErrPermissionDenied = errors.New("input: gyroscope permission denied")

func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Keyboard:
		return Keyboard, true
	case Mouse, "touch", "joystick":
		return Mouse, true
	case Gyroscope, "gyro", "tilt":
		return Gyroscope, true
	}
	return "", false
}

func (k Kind) Label(mobile bool) string {
	switch k {
	case Keyboard:
		return "Keyboard"
	case Mouse:
		if mobile {
			return "Touch"
		}
		return "Mouse"
	case Gyroscope:
		return "Gyroscope"
	}
	return string(k)
}

type Vector struct{ X, Y float64 }

func (v Vector) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vector) Add(o Vector) Vector    { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector    { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }
func (v Vector) IsZero() bool           { return v.X == 0 && v.Y == 0 }

type Keys struct{ Left, Right, Up, Down bool }

// Pointer is the primary mouse button or the first touch.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// Frame is the per-tick snapshot the controller consumes.
type Frame struct {
	Keys          Keys
	Pointer       Pointer
	Width, Height int
	Now           time.Time
}

// Tilt is one device orientation reading in degrees.
type Tilt struct {
	Beta, Gamma float64
	Landscape   bool
}

// TiltSource feeds the gyroscope scheme. Granted reports whether a device is
// allowed to stream; Tilt returns the latest fresh reading.
type TiltSource interface {
	Granted() bool
	Tilt(now time.Time) (Tilt, bool)
}

type Tuning struct {
	Speed              float64 // px/s at full deflection
	DeadZone           float64 // fraction of the unit disc ignored
	Curve              float64 // response exponent, 1 is linear
	Smoothing          float64 // 0 = none, closer to 1 = heavier
	JoystickRadiusFrac float64 // of min(width, height)
	GyroMaxTilt        float64 // degrees for full deflection
}

func DefaultTuning() Tuning {
	return Tuning{
		Speed:              160,
		DeadZone:           0,
		Curve:              1,
		Smoothing:          0,
		JoystickRadiusFrac: 0.05,
		GyroMaxTilt:        8,
	}
}
