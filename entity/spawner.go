package entity

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/physics"
)

// Spawner adds one asteroid per interval of accumulated frame time up to a cap
// Its Frame method is the game's frame func
type Spawner struct {
	world    *physics.World
	rng      *rand.Rand
	interval float32
	limit    int
	acc      float32
	live     []engine.EntityID
	spawned  int
}

// NewSpawner creates a spawner; limit <= 0 disables spawning
func NewSpawner(w *physics.World, interval time.Duration, limit int, seed uint64) *Spawner {
	return &Spawner{
		world:    w,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		interval: float32(interval.Seconds()),
		limit:    limit,
	}
}

// Frame accumulates dt and spawns while a whole interval is available
// Spawns go through the game's pending queue and update in this frame
func (s *Spawner) Frame(f *engine.Frame) {
	if s.limit <= 0 || s.interval <= 0 {
		return
	}
	s.acc += f.Delta
	for s.acc >= s.interval {
		s.acc -= s.interval
		if s.Live(f.Game) >= s.limit {
			continue
		}
		s.spawn(f.Game)
	}
}

func (s *Spawner) spawn(g *engine.Game) {
	e, err := NewAsteroid(g, s.world, s.rng)
	if err != nil {
		g.Logger().Warn("asteroid spawn failed", zap.Error(err))
		return
	}
	id, err := g.AddEntity(e)
	if err != nil {
		e.Free()
		g.Logger().Warn("asteroid add failed", zap.Error(err))
		return
	}
	component.QueueCue(e, audio.CueSpawn)
	s.live = append(s.live, id)
	s.spawned++
}

// Live prunes removed asteroids and returns how many remain
func (s *Spawner) Live(g *engine.Game) int {
	n := 0
	for _, id := range s.live {
		if _, err := g.Entity(id); err == nil {
			s.live[n] = id
			n++
		}
	}
	s.live = s.live[:n]
	return n
}

// Spawned returns the total number of asteroids spawned
func (s *Spawner) Spawned() int {
	return s.spawned
}
