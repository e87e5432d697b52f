package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/vmath"
)

// BodyType selects whether a body takes part in integration
type BodyType uint8

const (
	// BodyStatic bodies never move under Integrate
	BodyStatic BodyType = iota
	// BodyDynamic bodies integrate accumulated force each tick
	BodyDynamic
)

func (t BodyType) String() string {
	switch t {
	case BodyStatic:
		return "static"
	case BodyDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Body is a point mass with a bounding box, owned by a World
type Body struct {
	aabb  vmath.AABB
	local vmath.AABB // shape extents around pos

	pos mgl32.Vec3
	vel mgl32.Vec3
	acc mgl32.Vec3

	force mgl32.Vec3 // accumulated for the current tick

	world *World
	typ   BodyType
	mass  float32

	prev, next *Body
}

// ApplyForce accumulates a linear force for the current tick
// point is reserved for torque and currently unused
func (b *Body) ApplyForce(force, point mgl32.Vec3) {
	b.mustAttached()
	b.force = b.force.Add(force)
}

// Position returns the body position
func (b *Body) Position() mgl32.Vec3 { return b.pos }

// Velocity returns the body velocity
func (b *Body) Velocity() mgl32.Vec3 { return b.vel }

// Acceleration returns the acceleration applied during the last integration
func (b *Body) Acceleration() mgl32.Vec3 { return b.acc }

// Force returns the force accumulated since the last integration
func (b *Body) Force() mgl32.Vec3 { return b.force }

// BoundingBox returns the world-space bounding box
func (b *Body) BoundingBox() vmath.AABB { return b.aabb }

// Mass returns the body mass
func (b *Body) Mass() float32 { return b.mass }

// Type returns the body type
func (b *Body) Type() BodyType { return b.typ }

// World returns the owning world, nil once removed
func (b *Body) World() *World { return b.world }

// SetPosition teleports the body
func (b *Body) SetPosition(p mgl32.Vec3) {
	b.mustAttached()
	b.pos = p
	b.updateAABB()
}

// SetVelocity overrides the body velocity
func (b *Body) SetVelocity(v mgl32.Vec3) {
	b.mustAttached()
	b.vel = v
}

// SetShape sets the shape whose extents define the bounding box
func (b *Body) SetShape(s *Shape) {
	b.mustAttached()
	b.local = s.AABB()
	b.updateAABB()
}

func (b *Body) updateAABB() {
	b.aabb = b.local.Translate(b.pos)
}

func (b *Body) mustAttached() {
	core.Assert(b.world != nil, "physics: body used after removal from its world")
}
