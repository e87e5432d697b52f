package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a named game sound
type Cue uint8

const (
	CueThrust Cue = iota
	CueSpawn
	CueStart
	NumCues
)

func (c Cue) String() string {
	switch c {
	case CueThrust:
		return "thrust"
	case CueSpawn:
		return "spawn"
	case CueStart:
		return "start"
	default:
		return "unknown"
	}
}

// Cue timing
const (
	thrustDuration = 120 * time.Millisecond
	thrustAttack   = 10 * time.Millisecond
	thrustRelease  = 60 * time.Millisecond

	spawnDuration = 250 * time.Millisecond
	spawnAttack   = 5 * time.Millisecond
	spawnRelease  = 180 * time.Millisecond

	startNoteDuration = 90 * time.Millisecond
	startAttack       = 5 * time.Millisecond
	startRelease      = 40 * time.Millisecond
)

// Duration returns the length of the synthesized cue
func (c Cue) Duration() time.Duration {
	switch c {
	case CueThrust:
		return thrustDuration
	case CueSpawn:
		return spawnDuration
	case CueStart:
		return 3 * startNoteDuration
	default:
		return 0
	}
}

// Synthesize builds the streamer for a cue at the given volume, nil for unknown cues
func Synthesize(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueThrust:
		// filtered rumble: noise under a low saw
		noise := NewEnvelope(NewOscillator(0, thrustDuration, WaveNoise, rate), thrustDuration, thrustAttack, thrustRelease, rate)
		saw := NewEnvelope(NewOscillator(55, thrustDuration, WaveSaw, rate), thrustDuration, thrustAttack, thrustRelease, rate)
		s = beep.Mix(newVolume(noise, 0.4), newVolume(saw, 0.6))
	case CueSpawn:
		sweep := NewSweep(420, 140, spawnDuration, WaveSine, rate)
		s = NewEnvelope(sweep, spawnDuration, spawnAttack, spawnRelease, rate)
	case CueStart:
		notes := make([]beep.Streamer, 0, 3)
		for _, f := range []float64{523.25, 659.25, 783.99} {
			osc := NewOscillator(f, startNoteDuration, WaveSquare, rate)
			notes = append(notes, NewEnvelope(osc, startNoteDuration, startAttack, startRelease, rate))
		}
		s = beep.Seq(notes...)
	default:
		return nil
	}
	return newVolume(s, volume)
}
