package render

import "github.com/go-gl/mathgl/mgl32"

// Material binds a shader with its parameters
type Material struct {
	Name   string
	Shader Shader
	Color  RGB
	Shine  float32
	// Sort orders draws within a frame, lower first
	Sort int
}

// ShaderBinder is the renderer state a material sets
type ShaderBinder interface {
	UseShader(s Shader)
	SetShaderParam(name string, v mgl32.Vec4)
}

// Apply binds the material's shader and uniforms
func (m *Material) Apply(r ShaderBinder) {
	r.UseShader(m.Shader)
	r.SetShaderParam(UniformColor, m.Color.Vec())
	r.SetShaderParam(UniformShine, mgl32.Vec4{m.Shine})
}
