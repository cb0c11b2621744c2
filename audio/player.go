// Package audio plays short feedback tones for committed, placed and rejected shapes
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
)

// Player plays cues without blocking the caller
type Player interface {
	Play(c Cue)
}

// Nop discards every cue
type Nop struct{}

func (Nop) Play(Cue) {}

// Speaker plays cues through the system audio device
type Speaker struct {
	volume float64
}

// NewSpeaker initializes the audio device
// Non-fatal for callers: fall back to Nop on error
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Speaker{volume: volume}, nil
}

// Play queues c on the speaker mixer
func (s *Speaker) Play(c Cue) {
	if st := Build(c, s.volume, SampleRate); st != nil {
		speaker.Play(st)
	}
}

// Close releases the audio device
func (s *Speaker) Close() {
	speaker.Close()
}
