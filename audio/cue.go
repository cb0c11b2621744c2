package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate used for all cues
const SampleRate = beep.SampleRate(44100)

// Cue identifies a feedback sound
type Cue int

const (
	// CueCommit plays when a shape is added to the palette
	CueCommit Cue = iota
	// CuePlace plays when a shape is merged into the board
	CuePlace
	// CueReject plays when a command is refused
	CueReject
)

func (c Cue) String() string {
	switch c {
	case CueCommit:
		return "Commit"
	case CuePlace:
		return "Place"
	case CueReject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Cue timings
const (
	commitDuration = 90 * time.Millisecond
	placeNote      = 60 * time.Millisecond
	rejectDuration = 120 * time.Millisecond
	attack         = 5 * time.Millisecond
	release        = 30 * time.Millisecond
)

// Build returns a finite streamer for c at volume in [0, 1]
// Returns nil for unknown cues
func Build(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueCommit:
		// A5 sine, generator sourced; bounded by Take
		sine, err := generators.SineTone(rate, 880)
		if err != nil {
			return nil
		}
		tone := NewEnvelope(beep.Take(rate.N(commitDuration), sine), commitDuration, attack, release, rate)
		return newVolume(tone, volume)

	case CuePlace:
		// Rising two-note square chime (E5, B5)
		n1 := NewEnvelope(NewOscillator(659.25, placeNote, WaveSquare, rate), placeNote, attack, release, rate)
		n2 := NewEnvelope(NewOscillator(987.77, placeNote, WaveSquare, rate), placeNote, attack, release, rate)
		return newVolume(beep.Seq(n1, n2), volume*0.5)

	case CueReject:
		// Low saw buzz
		buzz := NewEnvelope(NewOscillator(110, rejectDuration, WaveSaw, rate), rejectDuration, attack, release, rate)
		return newVolume(buzz, volume*0.6)

	default:
		return nil
	}
}
