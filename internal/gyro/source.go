// Package gyro relays phone tilt to the game. A phone opens the pairing page,
// trades the on-screen PIN for a token and streams deviceorientation samples
// over a WebSocket into a Source that the frame loop polls.
package gyro

import (
	"sync"
	"time"

	"github.com/JozefSVK/MazeRun/internal/input"
)

// Sample is one orientation reading in degrees.
type Sample struct {
	Beta      float64   `json:"beta"`
	Gamma     float64   `json:"gamma"`
	Landscape bool      `json:"landscape"`
	At        time.Time `json:"-"`
}

// Source holds the latest sample. It is safe for concurrent use.
type Source struct {
	mu         sync.Mutex
	latest     Sample
	has        bool
	granted    bool
	staleAfter time.Duration
}

func NewSource(staleAfter time.Duration) *Source {
	if staleAfter <= 0 {
		staleAfter = 500 * time.Millisecond
	}
	return &Source{staleAfter: staleAfter}
}

func (s *Source) Push(smp Sample) {
	if smp.At.IsZero() {
		smp.At = time.Now()
	}
	s.mu.Lock()
	s.latest, s.has = smp, true
	s.mu.Unlock()
}

// Grant marks that a device has paired and may stream.
func (s *Source) Grant() {
	s.mu.Lock()
	s.granted = true
	s.mu.Unlock()
}

func (s *Source) Granted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.granted
}

// Latest returns the newest sample while it is fresh.
func (s *Source) Latest(now time.Time) (Sample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.has || now.Sub(s.latest.At) > s.staleAfter {
		return Sample{}, false
	}
	return s.latest, true
}

// Tilt adapts Latest to input.TiltSource.
func (s *Source) Tilt(now time.Time) (input.Tilt, bool) {
	smp, ok := s.Latest(now)
	if !ok {
		return input.Tilt{}, false
	}
	return input.Tilt{Beta: smp.Beta, Gamma: smp.Gamma, Landscape: smp.Landscape}, true
}
