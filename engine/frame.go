package engine

import (
	"time"

	"github.com/lixenwraith/asteroids/input"
)

// Frame is the per-frame context passed to frame funcs, hooks and component updates
type Frame struct {
	Game *Game
	// Number counts frames from 1
	Number int64
	// Delta is the elapsed time since the previous frame in seconds
	Delta float32
	Time  time.Time
}

// Input returns the keyboard snapshot source for this frame
func (f *Frame) Input() input.Source {
	return f.Game.Input()
}
