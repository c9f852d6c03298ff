package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type sfx struct {
	ctx  *audio.Context
	coin *audio.Player
	hit  *audio.Player
}

func newSFX() *sfx {
	s := &sfx{ctx: audio.CurrentContext()}
	if s.ctx == nil {
		s.ctx = audio.NewContext(sampleRate)
	}
	s.coin = s.ctx.NewPlayerFromBytes(beep(1320, 0.08))
	s.hit = s.ctx.NewPlayerFromBytes(beep(180, 0.15))
	return s
}

// beep synthesizes a short sine tone as 16-bit stereo PCM with a linear fade.
func beep(freq, dur float64) []byte {
	n := int(sampleRate * dur)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * 0.3 * env
		s := int16(v * 32767)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

func (s *sfx) play(p *audio.Player) {
	if s == nil || p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Println("sfx:", err)
		return
	}
	p.Play()
}
