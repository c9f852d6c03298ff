package input

import "math"

// Shape maps an intent to a target velocity: clamp to the unit disc, cut the
// radial dead-zone and rescale the rest, bend by the response curve, scale to
// speed.
func Shape(intent Vector, t Tuning) Vector {
	m := intent.Len()
	if m == 0 {
		return Vector{}
	}
	if m > 1 {
		intent = intent.Scale(1 / m)
		m = 1
	}
	if m <= t.DeadZone {
		return Vector{}
	}
	adj := m
	if t.DeadZone > 0 {
		adj = (m - t.DeadZone) / (1 - t.DeadZone)
	}
	if t.Curve > 0 && t.Curve != 1 {
		adj = math.Pow(adj, t.Curve)
	}
	return intent.Scale(adj / m * t.Speed)
}

// Smooth moves current toward target by (1 - smoothing) of the gap.
func Smooth(current, target Vector, smoothing float64) Vector {
	if smoothing <= 0 {
		return target
	}
	if smoothing >= 1 {
		smoothing = 0.99
	}
	v := current.Add(target.Sub(current).Scale(1 - smoothing))
	if math.Abs(v.X) < 0.01 {
		v.X = 0
	}
	if math.Abs(v.Y) < 0.01 {
		v.Y = 0
	}
	return v
}
