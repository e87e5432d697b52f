package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box
type AABB struct {
	Min, Max mgl32.Vec3
}

// Box builds an AABB from corner coordinates
func Box(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: mgl32.Vec3{minX, minY, minZ},
		Max: mgl32.Vec3{maxX, maxY, maxZ},
	}
}

// Translate returns the box shifted by offset
func (b AABB) Translate(offset mgl32.Vec3) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Size returns the box extents per axis
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Overlaps reports whether two boxes intersect, touching counts
func (b AABB) Overlaps(o AABB) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1] &&
		b.Min[2] <= o.Max[2] && b.Max[2] >= o.Min[2]
}

// Extend grows the box to include p
func (b AABB) Extend(p mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}

// Wrap maps p into the box per axis, toroidal; degenerate axes are left untouched
// Non-finite coordinates pass through unchanged
func (b AABB) Wrap(p mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		span := float64(b.Max[i]) - float64(b.Min[i])
		v := float64(p[i])
		if span <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if p[i] >= b.Min[i] && p[i] <= b.Max[i] {
			continue
		}
		off := math.Mod(v-float64(b.Min[i]), span)
		if off < 0 {
			off += span
		}
		p[i] = min(b.Min[i]+float32(off), b.Max[i])
	}
	return p
}
