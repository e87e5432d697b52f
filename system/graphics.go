package system

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// Background colors
var (
	skyTop    = render.RGB{R: 4, G: 6, B: 18}
	skyBottom = render.RGB{R: 18, G: 12, B: 36}
	hudColor  = render.RGB{R: 200, G: 220, B: 255}
)

// GraphicsData is the graphics subsystem state
type GraphicsData struct {
	Renderer   Renderer
	Camera     Camera
	Background render.Shader
	// HUD returns text lines drawn top-left after the scene, nil for none
	HUD func(f *engine.Frame) []string

	target   *render.Target
	order    []*engine.Component
	viewProj mgl32.Mat4
	elapsed  float32
	drawn    int
}

// Drawn returns the number of meshes drawn last frame
func (d *GraphicsData) Drawn() int {
	return d.drawn
}

// ViewProjection returns the camera matrix of the last frame
func (d *GraphicsData) ViewProjection() mgl32.Mat4 {
	return d.viewProj
}

// NewGraphicsSubsystem creates the subsystem drawing every graphics component once per frame
// background may be nil to skip the background pass
func NewGraphicsSubsystem(r Renderer, background render.Shader) *engine.Subsystem {
	s := engine.NewSubsystem(component.KindGraphics)
	s.Data = &GraphicsData{
		Renderer:   r,
		Camera:     DefaultCamera(),
		Background: background,
	}
	s.AfterUpdate = drawFrame
	return s
}

// drawFrame computes transforms, draws the background then meshes by material order, and presents
func drawFrame(s *engine.Subsystem, f *engine.Frame) {
	d := s.Data.(*GraphicsData)
	r := d.Renderer

	r.ClearDisplay()
	d.elapsed += f.Delta
	d.viewProj = d.Camera.ViewProjection(r.Aspect())

	d.order = d.order[:0]
	for c := range s.Components() {
		g := engine.DataOf[*component.GraphicsComponent](c)
		phys := component.PhysicsOf(c.Entity())
		model := vmath.Model(phys.Body.Position(), g.Transform)
		g.PrevMVP = g.MVP
		g.MVP = d.viewProj.Mul4(model)
		if !g.Hidden && g.Mesh != nil && g.Material != nil {
			d.order = append(d.order, c)
		}
	}

	if d.target == nil {
		d.target = r.NewRenderTarget()
	}
	r.UseRenderTarget(d.target)

	if d.Background != nil {
		r.UseShader(d.Background)
		r.SetShaderParam(render.UniformTime, mgl32.Vec4{d.elapsed})
		r.SetShaderParam(render.UniformSkyTop, skyTop.Vec())
		r.SetShaderParam(render.UniformSkyBottom, skyBottom.Vec())
		r.DrawFullscreen()
	}

	// sorting the copy leaves update order untouched
	slices.SortStableFunc(d.order, func(a, b *engine.Component) int {
		return cmp.Compare(materialSort(a), materialSort(b))
	})
	for _, c := range d.order {
		g := engine.DataOf[*component.GraphicsComponent](c)
		g.Material.Apply(r)
		r.DrawMesh(g.Mesh, g.MVP)
	}
	d.drawn = len(d.order)

	if d.HUD != nil {
		for i, line := range d.HUD(f) {
			r.DrawText(1, i, line, hudColor)
		}
	}

	r.PresentRenderTarget(d.target)
	r.UseRenderTarget(nil)
}

func materialSort(c *engine.Component) int {
	return engine.DataOf[*component.GraphicsComponent](c).Material.Sort
}
