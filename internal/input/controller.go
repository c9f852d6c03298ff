package input

import (
	"log"
	"time"
)

// Controller owns the active scheme and the smoothed output velocity.
type Controller struct {
	tuning Tuning
	kind   Kind
	active bool

	keys  keyboard
	stick joystick
	gyro  gyroscope

	velocity      Vector
	width, height int
}

func NewController(t Tuning, tilt TiltSource) *Controller {
	c := &Controller{tuning: t, kind: Keyboard, gyro: gyroscope{src: tilt}}
	return c
}

func (c *Controller) Kind() Kind        { return c.kind }
func (c *Controller) Tuning() Tuning    { return c.tuning }
func (c *Controller) Velocity() Vector  { return c.velocity }
func (c *Controller) GyroEnabled() bool { return c.active && c.kind == Gyroscope && c.gyro.enabled }

func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
	c.stick.radius = minf(float64(c.width), float64(c.height)) * t.JoystickRadiusFrac
}

// Setup attaches scheme k. A gyroscope without permission still becomes the
// active kind but stays silent until a source is granted; the error is
// informational.
func (c *Controller) Setup(k Kind) error {
	c.Cleanup()
	c.kind = k
	c.active = true
	if k == Gyroscope {
		if err := c.gyro.enable(); err != nil {
			return err
		}
	}
	return nil
}

// Cleanup detaches every scheme and zeroes the output.
func (c *Controller) Cleanup() {
	c.active = false
	c.stick.reset()
	c.gyro.enabled = false
	c.velocity = Vector{}
}

// SetKind is the control-type change handler.
func (c *Controller) SetKind(k Kind) error {
	if err := c.Setup(k); err != nil {
		log.Println("input:", err)
		return err
	}
	return nil
}

func (c *Controller) Resize(w, h int) {
	c.width, c.height = w, h
	c.stick.resize(w, h, c.tuning.JoystickRadiusFrac)
}

// Stop zeroes the velocity immediately, skipping smoothing.
func (c *Controller) Stop() {
	c.velocity = Vector{}
}

// Update consumes one frame and returns the ball velocity.
func (c *Controller) Update(f Frame) Vector {
	if f.Width != c.width || f.Height != c.height {
		if f.Width > 0 && f.Height > 0 {
			c.Resize(f.Width, f.Height)
		}
	}
	if !c.active {
		return Vector{}
	}
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	var intent Vector
	switch c.kind {
	case Keyboard:
		intent = c.keys.intent(f.Keys)
	case Mouse:
		if c.stick.track(f.Pointer) {
			c.Stop()
			return c.velocity
		}
		intent = c.stick.intent()
	case Gyroscope:
		intent = c.gyro.intent(now, c.tuning.GyroMaxTilt)
	}

	target := Shape(intent, c.tuning)
	c.velocity = Smooth(c.velocity, target, c.tuning.Smoothing)
	return c.velocity
}

// Joystick returns the stick to draw, if one is being dragged.
func (c *Controller) Joystick() (JoystickView, bool) {
	if !c.active || c.kind != Mouse || !c.stick.dragging {
		return JoystickView{}, false
	}
	return JoystickView{Origin: c.stick.origin, Knob: c.stick.knob, Radius: c.stick.radius}, true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
