// Package component holds the typed data of the game's component kinds
package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/physics"
)

// KindPhysics is claimed by the physics subsystem
const KindPhysics = "physics"

// PhysicsComponent binds an entity to a body in the physics world
type PhysicsComponent struct {
	Body *physics.Body
	// Control applies forces before the body is integrated, nil for passive bodies
	Control func(e *engine.Entity, p *PhysicsComponent, f *engine.Frame)

	world *physics.World
}

func (p *PhysicsComponent) Kind() string { return KindPhysics }

// Release removes the body from the world it was created in
// A body already gone, e.g. after World.Clear, is logged and skipped
func (p *PhysicsComponent) Release() {
	if err := p.world.RemoveBody(p.Body); err != nil {
		p.world.Logger().Warn("physics component released without its body", zap.Error(err))
	}
}

// NewPhysics creates a body in w and wraps it in a component integrated once per frame
func NewPhysics(w *physics.World, typ physics.BodyType, mass float32, pos mgl32.Vec3, shape *physics.Shape) (*engine.Component, error) {
	body, err := w.AddBody(typ, mass, pos)
	if err != nil {
		return nil, err
	}
	if shape != nil {
		body.SetShape(shape)
	}
	return engine.NewComponent(&PhysicsComponent{Body: body, world: w}, UpdatePhysics), nil
}

// UpdatePhysics runs the control func then integrates the body by the frame delta
func UpdatePhysics(c *engine.Component, f *engine.Frame) {
	p := engine.DataOf[*PhysicsComponent](c)
	if p.Control != nil {
		p.Control(c.Entity(), p, f)
	}
	p.Body.World().IntegrateBody(p.Body, f.Delta)
}

// PhysicsOf returns the physics data of an entity, asserting it exists
func PhysicsOf(e *engine.Entity) *PhysicsComponent {
	return engine.DataOf[*PhysicsComponent](e.MustComponent(KindPhysics))
}
