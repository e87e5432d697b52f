package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/vmath"
)

// ShapeMaxPoints caps the outline size of a collision shape
const ShapeMaxPoints = 64

// Shape is a planar outline in body-local coordinates
// Only its bounding box feeds the world; there is no narrow phase
type Shape struct {
	Points []mgl32.Vec2
}

// NewShape creates a shape from outline points
func NewShape(points ...mgl32.Vec2) *Shape {
	core.Assertf(len(points) < ShapeMaxPoints, "shape has %d points, max %d", len(points), ShapeMaxPoints)
	pts := make([]mgl32.Vec2, len(points))
	copy(pts, points)
	return &Shape{Points: pts}
}

// NewSquare creates a width x height rectangle centered on the origin
func NewSquare(width, height float32) *Shape {
	hw, hh := width/2, height/2
	return NewShape(
		mgl32.Vec2{hw, hh},
		mgl32.Vec2{-hw, hh},
		mgl32.Vec2{-hw, -hh},
		mgl32.Vec2{hw, -hh},
	)
}

// AABB returns the local bounding box, zero-sized for an empty shape
func (s *Shape) AABB() vmath.AABB {
	if s == nil || len(s.Points) == 0 {
		return vmath.AABB{}
	}
	first := mgl32.Vec3{s.Points[0][0], s.Points[0][1], 0}
	box := vmath.AABB{Min: first, Max: first}
	for _, p := range s.Points[1:] {
		box = box.Extend(mgl32.Vec3{p[0], p[1], 0})
	}
	return box
}
