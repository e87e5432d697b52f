package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/render"
)

// KindGraphics is claimed by the graphics subsystem
const KindGraphics = "graphics"

// GraphicsComponent is a drawable mesh with its per-frame transforms
// Position comes from the sibling physics component
type GraphicsComponent struct {
	Mesh     *render.Mesh
	Material *render.Material

	// Transform is applied in model space before translation
	Transform mgl32.Mat4

	// MVP is this frame's model-view-projection, written by the graphics subsystem
	// PrevMVP holds last frame's MVP for consumers that need motion between frames
	MVP     mgl32.Mat4
	PrevMVP mgl32.Mat4

	Hidden bool
}

func (g *GraphicsComponent) Kind() string { return KindGraphics }

// SetTransform sets the model transform
func (g *GraphicsComponent) SetTransform(m mgl32.Mat4) {
	g.Transform = m
}

// NewGraphics creates a graphics component with identity transforms
func NewGraphics(mesh *render.Mesh, material *render.Material, update engine.UpdateFunc) *engine.Component {
	g := &GraphicsComponent{
		Mesh:     mesh,
		Material: material,
		MVP:      mgl32.Ident4(),
		PrevMVP:  mgl32.Ident4(),
	}
	g.SetTransform(mgl32.Ident4())
	return engine.NewComponent(g, update)
}

// GraphicsOf returns the graphics data of an entity, asserting it exists
func GraphicsOf(e *engine.Entity) *GraphicsComponent {
	return engine.DataOf[*GraphicsComponent](e.MustComponent(KindGraphics))
}
