package input

type keyboard struct{}

// intent: left beats right, up beats down.
func (keyboard) intent(k Keys) Vector {
	var v Vector
	if k.Left {
		v.X = -1
	} else if k.Right {
		v.X = 1
	}
	if k.Up {
		v.Y = -1
	} else if k.Down {
		v.Y = 1
	}
	return v
}
