package vmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RotationZ returns a homogeneous rotation around the Z axis
func RotationZ(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(angle)
}

// Model composes a model matrix: translation * transform
func Model(pos mgl32.Vec3, transform mgl32.Mat4) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(transform)
}

// LookAt builds a view matrix
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// Project transforms a model-space point by mvp and returns normalized device coordinates
// ok is false when the point lies behind the projection plane
func Project(mvp mgl32.Mat4, p mgl32.Vec3) (ndc mgl32.Vec3, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return mgl32.Vec3{}, false
	}
	inv := 1 / clip[3]
	return mgl32.Vec3{clip[0] * inv, clip[1] * inv, clip[2] * inv}, true
}

// NDCToCell maps normalized device coordinates to terminal cell coordinates, y grows downward
func NDCToCell(ndc mgl32.Vec3, width, height int) (x, y int) {
	fx := (ndc[0] + 1) * 0.5 * float32(width)
	fy := (1 - ndc[1]) * 0.5 * float32(height)
	return floorInt(fx), floorInt(fy)
}

func floorInt(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}
