package system

import (
	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
)

// minCueInterval throttles repeats of a cue in seconds
var minCueInterval = [audio.NumCues]float32{
	audio.CueThrust: 0.1,
	audio.CueSpawn:  0.05,
	audio.CueStart:  0,
}

// AudioData is the audio subsystem state
type AudioData struct {
	Player   audio.Player
	cooldown [audio.NumCues]float32
}

// Release closes the player if it holds a device
func (d *AudioData) Release() {
	if c, ok := d.Player.(interface{ Close() }); ok {
		c.Close()
	}
}

// NewAudioSubsystem creates the subsystem playing cues queued by audio components
// player may be nil if audio is disabled; queues are still drained
func NewAudioSubsystem(player audio.Player) *engine.Subsystem {
	s := engine.NewSubsystem(component.KindAudio)
	s.Data = &AudioData{Player: player}
	s.AfterUpdate = playCues
	return s
}

func playCues(s *engine.Subsystem, f *engine.Frame) {
	d := s.Data.(*AudioData)
	for i := range d.cooldown {
		d.cooldown[i] = max(d.cooldown[i]-f.Delta, 0)
	}

	for c := range s.Components() {
		for _, cue := range engine.DataOf[*component.AudioComponent](c).Drain() {
			if cue >= audio.NumCues || d.cooldown[cue] > 0 {
				continue
			}
			if d.Player != nil {
				d.Player.Play(cue)
			}
			d.cooldown[cue] = minCueInterval[cue]
		}
	}
}
