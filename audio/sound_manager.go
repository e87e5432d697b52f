package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// speakerBuffer is the speaker latency
const speakerBuffer = 100 * time.Millisecond

// Player plays cues
type Player interface {
	Play(c Cue)
}

// SoundManager plays cues through the system speaker
// Without a successful Initialize every call is a no-op, so the game runs without audio
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	log         *zap.Logger
	initialized bool
	played      [NumCues]int
}

// NewSoundManager creates a sound manager
func NewSoundManager(rate int, volume float64, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		rate:   beep.SampleRate(rate),
		volume: volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}
}

// Initialize opens the speaker; safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("audio initialized", zap.Int("sample_rate", int(sm.rate)))
	return nil
}

// Play mixes a cue into the output
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Synthesize(c, sm.rate, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

// Played returns how many times c was mixed
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// Close stops all sounds and closes the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
