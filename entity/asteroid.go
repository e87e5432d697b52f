package entity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/assets"
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// Asteroid motion ranges
const (
	asteroidMinSpeed = 0.3
	asteroidMaxSpeed = 1.2
	asteroidMaxSpin  = 1.5
	asteroidSize     = 1.0
)

// NewAsteroid builds a drifting, spinning rock on a random edge of the world
func NewAsteroid(g *engine.Game, w *physics.World, rng *rand.Rand) (*engine.Entity, error) {
	variant := rng.IntN(assets.AsteroidVariants)
	state := &component.AsteroidState{
		Variant: variant,
		Spin:    (rng.Float32()*2 - 1) * asteroidMaxSpin,
	}
	e := engine.NewEntity(fmt.Sprintf("asteroid-%d", variant))
	e.SetPayload(state)

	mass := 1 + rng.Float32()*2
	phys, err := component.NewPhysics(w, physics.BodyDynamic, mass, edgePosition(w.Bounds(), rng), physics.NewSquare(asteroidSize, asteroidSize))
	if err != nil {
		return nil, err
	}
	body := engine.DataOf[*component.PhysicsComponent](phys).Body
	body.SetVelocity(driftVelocity(rng))
	e.Attach(phys)

	mesh := g.MustResource(assets.AsteroidMeshName(variant), engine.ResMesh).(*render.Mesh)
	mat := g.MustResource(assets.MaterialRock, engine.ResMaterial).(*render.Material)
	e.Attach(component.NewGraphics(mesh, mat, spinAsteroid))
	e.Attach(component.NewAudio())
	return e, nil
}

// edgePosition picks a point on the boundary of the play plane
func edgePosition(b vmath.AABB, rng *rand.Rand) mgl32.Vec3 {
	x := b.Min[0] + rng.Float32()*(b.Max[0]-b.Min[0])
	y := b.Min[1] + rng.Float32()*(b.Max[1]-b.Min[1])
	switch rng.IntN(4) {
	case 0:
		x = b.Min[0]
	case 1:
		x = b.Max[0]
	case 2:
		y = b.Min[1]
	default:
		y = b.Max[1]
	}
	return mgl32.Vec3{x, y, 0}
}

func driftVelocity(rng *rand.Rand) mgl32.Vec3 {
	angle := rng.Float64() * 2 * math.Pi
	speed := asteroidMinSpeed + rng.Float32()*(asteroidMaxSpeed-asteroidMinSpeed)
	sin, cos := math.Sincos(angle)
	return mgl32.Vec3{float32(cos) * speed, float32(sin) * speed, 0}
}

func spinAsteroid(c *engine.Component, f *engine.Frame) {
	s := engine.PayloadOf[*component.AsteroidState](c.Entity())
	s.Angle += s.Spin * f.Delta
	engine.DataOf[*component.GraphicsComponent](c).SetTransform(vmath.RotationZ(s.Angle))
}
