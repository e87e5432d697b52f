package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/vmath"
)

// Camera is an orthographic view of the play plane
type Camera struct {
	Eye, Center, Up mgl32.Vec3
	// HalfHeight is half the visible world height; width follows the aspect
	HalfHeight float32
	Near, Far  float32
}

// DefaultCamera looks from (0,0,6) at the origin with +Y up
func DefaultCamera() Camera {
	return Camera{
		Eye:        mgl32.Vec3{0, 0, 6},
		Center:     mgl32.Vec3{0, 0, 0},
		Up:         mgl32.Vec3{0, 1, 0},
		HalfHeight: 5,
		Near:       0.01,
		Far:        12,
	}
}

// ViewProjection returns projection * view for the given aspect ratio
func (c Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	hw := c.HalfHeight * aspect
	proj := mgl32.Ortho(-hw, hw, -c.HalfHeight, c.HalfHeight, c.Near, c.Far)
	return proj.Mul4(vmath.LookAt(c.Eye, c.Center, c.Up))
}
