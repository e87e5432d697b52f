package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/render"
)

// Renderer is the drawing surface the graphics subsystem targets
// Implemented by render.TerminalRenderer
type Renderer interface {
	ClearDisplay()
	UseShader(s render.Shader)
	SetShaderParam(name string, v mgl32.Vec4)
	NewRenderTarget() *render.Target
	UseRenderTarget(t *render.Target)
	PresentRenderTarget(t *render.Target)
	DrawFullscreen()
	DrawMesh(m *render.Mesh, mvp mgl32.Mat4)
	DrawText(x, y int, text string, fg render.RGB)
	Size() (int, int)
	Aspect() float32
}

var _ Renderer = (*render.TerminalRenderer)(nil)
