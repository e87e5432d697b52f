package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/vmath"
)

// ErrInvalidMesh is returned for meshes with out-of-range edge indices
var ErrInvalidMesh = errors.New("render: invalid mesh")

// Mesh is a wireframe: vertices in model space plus edges indexing them
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Edges    [][2]int
}

// NewMesh validates edge indices
func NewMesh(name string, vertices []mgl32.Vec3, edges [][2]int) (*Mesh, error) {
	for i, e := range edges {
		if e[0] < 0 || e[0] >= len(vertices) || e[1] < 0 || e[1] >= len(vertices) {
			return nil, fmt.Errorf("mesh %q edge %d %v with %d vertices: %w", name, i, e, len(vertices), ErrInvalidMesh)
		}
	}
	return &Mesh{Name: name, Vertices: vertices, Edges: edges}, nil
}

// NewLineLoop builds a closed outline in the z=0 plane
func NewLineLoop(name string, points []mgl32.Vec2) *Mesh {
	core.Assertf(len(points) >= 2, "line loop %q needs at least 2 points, got %d", name, len(points))
	m := &Mesh{
		Name:     name,
		Vertices: make([]mgl32.Vec3, len(points)),
		Edges:    make([][2]int, len(points)),
	}
	for i, p := range points {
		m.Vertices[i] = p.Vec3(0)
		m.Edges[i] = [2]int{i, (i + 1) % len(points)}
	}
	return m
}

// Bounds returns the model-space bounding box
func (m *Mesh) Bounds() vmath.AABB {
	if len(m.Vertices) == 0 {
		return vmath.AABB{}
	}
	b := vmath.AABB{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b = b.Extend(v)
	}
	return b
}
