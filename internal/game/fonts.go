package game

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	bold bool
	size float64
}

var (
	fontMu sync.Mutex
	parsed = map[bool]*opentype.Font{}
	faces  = map[faceKey]font.Face{}
)

func face(bold bool, size float64) font.Face {
	k := faceKey{bold, size}
	fontMu.Lock()
	defer fontMu.Unlock()

	if f, ok := faces[k]; ok {
		return f
	}
	ft := parsed[bold]
	if ft == nil {
		data := goregular.TTF
		if bold {
			data = gobold.TTF
		}
		var err error
		ft, err = opentype.Parse(data)
		if err != nil {
			panic("fonts: parse: " + err.Error())
		}
		parsed[bold] = ft
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("fonts: face: " + err.Error())
	}
	faces[k] = f
	return f
}

func uiFace(size float64) font.Face    { return face(false, size) }
func titleFace(size float64) font.Face { return face(true, size) }
