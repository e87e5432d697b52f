// Package entity builds the game's entities and the per-frame asteroid spawner
package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/assets"
	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// Player handling
const (
	PlayerTurnRate = 2.0 // rad/s
	PlayerThrust   = 1.5
	PlayerMass     = 1.0
)

// NewPlayer builds the ship at the origin facing up
// Missing mesh or material resources are fatal
func NewPlayer(g *engine.Game, w *physics.World, material string) (*engine.Entity, error) {
	e := engine.NewEntity("player")
	e.SetPayload(&component.PlayerState{Angle: math.Pi / 2})

	phys, err := component.NewPhysics(w, physics.BodyDynamic, PlayerMass, mgl32.Vec3{}, physics.NewSquare(0.6, 0.75))
	if err != nil {
		return nil, err
	}
	engine.DataOf[*component.PhysicsComponent](phys).Control = steerPlayer
	e.Attach(phys)

	mesh := g.MustResource(assets.MeshPlayer, engine.ResMesh).(*render.Mesh)
	mat := g.MustResource(material, engine.ResMaterial).(*render.Material)
	e.Attach(component.NewGraphics(mesh, mat, orientPlayer))
	e.Attach(component.NewAudio())
	return e, nil
}

// steerPlayer turns on left/right and thrusts along the heading on up
func steerPlayer(e *engine.Entity, p *component.PhysicsComponent, f *engine.Frame) {
	s := engine.PayloadOf[*component.PlayerState](e)
	in := f.Input()

	if in.KeyIsPressed(input.KeyArrowLeft) || in.KeyIsPressed(input.KeyA) {
		s.Angle += PlayerTurnRate * f.Delta
	}
	if in.KeyIsPressed(input.KeyArrowRight) || in.KeyIsPressed(input.KeyD) {
		s.Angle -= PlayerTurnRate * f.Delta
	}

	s.Thrusting = in.KeyIsPressed(input.KeyArrowUp) || in.KeyIsPressed(input.KeyW)
	if !s.Thrusting {
		return
	}
	sin, cos := math.Sincos(float64(s.Angle))
	heading := mgl32.Vec3{float32(cos), float32(sin), 0}
	p.Body.ApplyForce(heading.Mul(PlayerThrust), mgl32.Vec3{})
	component.QueueCue(e, audio.CueThrust)
}

// orientPlayer rotates the mesh, which points up, to the heading
func orientPlayer(c *engine.Component, _ *engine.Frame) {
	s := engine.PayloadOf[*component.PlayerState](c.Entity())
	g := engine.DataOf[*component.GraphicsComponent](c)
	g.SetTransform(vmath.RotationZ(s.Angle - math.Pi/2))
}
