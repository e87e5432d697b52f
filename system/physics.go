package system

import (
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/physics"
)

// PhysicsData is the physics subsystem state
type PhysicsData struct {
	World *physics.World
}

// Release drops every remaining body
func (d *PhysicsData) Release() {
	d.World.Clear()
}

// NewPhysicsSubsystem creates the subsystem owning w
// Each physics component integrates its own body during the update
func NewPhysicsSubsystem(w *physics.World) *engine.Subsystem {
	s := engine.NewSubsystem(component.KindPhysics)
	s.Data = &PhysicsData{World: w}
	return s
}

// WorldOf returns the physics world of a game's physics subsystem
func WorldOf(g *engine.Game) (*physics.World, bool) {
	s, ok := g.Subsystem(component.KindPhysics)
	if !ok {
		return nil, false
	}
	d, ok := s.Data.(*PhysicsData)
	if !ok {
		return nil, false
	}
	return d.World, true
}
