package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names understood by the built-in shaders
const (
	UniformColor     = "color"
	UniformShine     = "shine"
	UniformTime      = "time"
	UniformSkyTop    = "sky_top"
	UniformSkyBottom = "sky_bottom"
)

// Uniforms are named shader parameters set between draws
type Uniforms map[string]mgl32.Vec4

// Float returns the first component of a uniform, 0 if unset
func (u Uniforms) Float(name string) float32 {
	return u[name][0]
}

// RGB returns a uniform as a color
func (u Uniforms) RGB(name string) RGB {
	return RGBFromVec(u[name])
}

// Fragment is the input of one shaded cell
type Fragment struct {
	X, Y int
	// UV is the normalized cell position, origin top-left
	UV mgl32.Vec2
	// Depth is the interpolated NDC z, 0 for fullscreen passes
	Depth float32
	// T is the position along the edge being drawn in [0,1]
	T float32
}

// Shader colors fragments
type Shader interface {
	Name() string
	Shade(frag Fragment, u Uniforms) RGB
}

type shaderFunc struct {
	name string
	fn   func(Fragment, Uniforms) RGB
}

func (s shaderFunc) Name() string { return s.name }

func (s shaderFunc) Shade(frag Fragment, u Uniforms) RGB { return s.fn(frag, u) }

// NewShader wraps a shading function
func NewShader(name string, fn func(Fragment, Uniforms) RGB) Shader {
	return shaderFunc{name: name, fn: fn}
}

// BackgroundShader draws a vertical gradient with sparse stars that pulse over time
func BackgroundShader() Shader {
	return NewShader("background", func(f Fragment, u Uniforms) RGB {
		c := Blend(u.RGB(UniformSkyTop), u.RGB(UniformSkyBottom), f.UV[1])
		h := cellHash(f.X, f.Y)
		if h%97 == 0 {
			pulse := float32((h>>8)%16) / 16
			phase := u.Float(UniformTime) + pulse
			phase -= float32(int(phase))
			c = Blend(c, RGBWhite, 0.2+0.3*phase)
		}
		return c
	})
}

// FlatShader fills with the material color, lightened toward the edge start by shine
func FlatShader() Shader {
	return NewShader("flat", func(f Fragment, u Uniforms) RGB {
		shine := u.Float(UniformShine)
		return Blend(u.RGB(UniformColor), RGBWhite, shine*0.5*(1-f.T))
	})
}

// DebugShader colors by screen position
func DebugShader() Shader {
	return NewShader("debug", func(f Fragment, _ Uniforms) RGB {
		return RGB{R: clamp(f.UV[0] * 255), G: clamp(f.UV[1] * 255), B: 128}
	})
}

// cellHash is a small integer hash for stable per-cell noise
func cellHash(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}
