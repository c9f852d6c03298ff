package input

import "math"

// JoystickView is what the front end needs to draw the virtual stick.
type JoystickView struct {
	Origin, Knob Vector
	Radius       float64
}

type joystick struct {
	radius   float64
	dragging bool
	origin   Vector
	knob     Vector
}

func (j *joystick) reset() {
	j.dragging = false
	j.origin = Vector{}
	j.knob = Vector{}
}

// track feeds one pointer sample. It reports released=true on the frame the
// pointer goes up while dragging.
func (j *joystick) track(p Pointer) (released bool) {
	switch {
	case p.Pressed && !j.dragging:
		j.dragging = true
		j.origin = Vector{p.X, p.Y}
		j.knob = j.origin
	case p.Pressed:
		j.knob = j.clamp(Vector{p.X, p.Y})
	case j.dragging:
		j.reset()
		return true
	}
	return false
}

func (j *joystick) clamp(p Vector) Vector {
	d := p.Sub(j.origin)
	dist := d.Len()
	if dist <= j.radius {
		return p
	}
	a := math.Atan2(d.Y, d.X)
	return Vector{j.origin.X + math.Cos(a)*j.radius, j.origin.Y + math.Sin(a)*j.radius}
}

func (j *joystick) intent() Vector {
	if !j.dragging {
		return Vector{}
	}
	d := j.knob.Sub(j.origin)
	n := math.Max(d.Len(), j.radius)
	if n == 0 {
		return Vector{}
	}
	return d.Scale(1 / n)
}

// resize moves an active stick to the lower-left anchor and re-clamps the knob.
func (j *joystick) resize(w, h int, frac float64) {
	j.radius = math.Min(float64(w), float64(h)) * frac
	if !j.dragging {
		return
	}
	j.origin = Vector{float64(w) * 0.2, float64(h) * 0.8}
	j.knob = j.clamp(j.knob)
}
