package component

import (
	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/engine"
)

// KindAudio is claimed by the audio subsystem
const KindAudio = "audio"

// AudioComponent queues cues raised by gameplay until the audio subsystem plays them
type AudioComponent struct {
	queue []audio.Cue
}

func (a *AudioComponent) Kind() string { return KindAudio }

// Queue schedules a cue for the end of the frame
func (a *AudioComponent) Queue(c audio.Cue) {
	a.queue = append(a.queue, c)
}

// Pending returns the number of queued cues
func (a *AudioComponent) Pending() int {
	return len(a.queue)
}

// Drain returns queued cues and empties the queue
func (a *AudioComponent) Drain() []audio.Cue {
	q := a.queue
	a.queue = nil
	return q
}

// NewAudio creates an empty audio component
func NewAudio() *engine.Component {
	return engine.NewComponent(&AudioComponent{}, nil)
}

// QueueCue queues c on the entity's audio component, a no-op for silent entities
func QueueCue(e *engine.Entity, c audio.Cue) {
	if comp, ok := e.Component(KindAudio); ok {
		engine.DataOf[*AudioComponent](comp).Queue(c)
	}
}
