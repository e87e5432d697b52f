package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/vmath"
)

// CellAspect is the width of a terminal cell relative to its height
const CellAspect = 0.5

// glowStrength scales a shiny material's color into the halo behind its edges
const glowStrength = 0.35

// textBackdropAlpha darkens the background under text toward black
const textBackdropAlpha = 0.6

// maxEdgeCells bounds the cells traversed per edge so offscreen geometry cannot stall a frame
const maxEdgeCells = 4096

// Screen is the subset of tcell.Screen the renderer draws to
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Size() (width, height int)
	Clear()
}

// Stats counts work done since the last ClearDisplay
type Stats struct {
	Meshes int
	Cells  int
}

// TerminalRenderer draws wireframe meshes and text into cell targets presented on a terminal screen
// Not safe for concurrent use; all calls happen on the frame thread
type TerminalRenderer struct {
	screen   Screen
	display  *Target
	bound    *Target
	shader   Shader
	uniforms Uniforms
	stats    Stats
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen Screen) *TerminalRenderer {
	w, h := screen.Size()
	display := NewTarget(w, h)
	return &TerminalRenderer{
		screen:   screen,
		display:  display,
		bound:    display,
		shader:   FlatShader(),
		uniforms: make(Uniforms),
	}
}

// Size returns the display size in cells
func (r *TerminalRenderer) Size() (int, int) {
	return r.display.Size()
}

// Aspect returns the display width/height ratio corrected for cell shape
func (r *TerminalRenderer) Aspect() float32 {
	w, h := r.display.Size()
	if h == 0 {
		return 1
	}
	return float32(w) * CellAspect / float32(h)
}

// Stats returns draw counters for the current frame
func (r *TerminalRenderer) Stats() Stats {
	return r.stats
}

// ClearDisplay follows screen resizes and clears the display target
func (r *TerminalRenderer) ClearDisplay() {
	w, h := r.screen.Size()
	if dw, dh := r.display.Size(); dw != w || dh != h {
		r.display.Resize(w, h)
	} else {
		r.display.Clear()
	}
	r.stats = Stats{}
}

func (r *TerminalRenderer) UseShader(s Shader) {
	r.shader = s
}

func (r *TerminalRenderer) SetShaderParam(name string, v mgl32.Vec4) {
	r.uniforms[name] = v
}

// NewRenderTarget creates an offscreen target matching the display
func (r *TerminalRenderer) NewRenderTarget() *Target {
	w, h := r.display.Size()
	return NewTarget(w, h)
}

// UseRenderTarget binds t for drawing, resizing it to the display and clearing it; nil binds the display
func (r *TerminalRenderer) UseRenderTarget(t *Target) {
	if t == nil {
		r.bound = r.display
		return
	}
	w, h := r.display.Size()
	if tw, th := t.Size(); tw != w || th != h {
		t.Resize(w, h)
	} else {
		t.Clear()
	}
	r.bound = t
}

// PresentRenderTarget writes t to the screen and shows it; nil presents the display
func (r *TerminalRenderer) PresentRenderTarget(t *Target) {
	if t == nil {
		t = r.display
	}
	t.Flush(r.screen)
	r.screen.Show()
}

// DrawFullscreen shades every cell's background with the current shader
func (r *TerminalRenderer) DrawFullscreen() {
	w, h := r.bound.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f := Fragment{X: x, Y: y, UV: uv(x, y, w, h)}
			r.bound.Set(x, y, 0, RGB{}, r.shader.Shade(f, r.uniforms), BlendBgOnly, 1)
		}
	}
	r.stats.Cells += w * h
}

// DrawMesh projects the mesh edges by mvp and rasterizes them with the current shader
// A positive shine uniform adds a max-blended halo behind the edge cells
// Edges with an endpoint behind the camera are skipped
func (r *TerminalRenderer) DrawMesh(m *Mesh, mvp mgl32.Mat4) {
	w, h := r.bound.Size()
	if w == 0 || h == 0 {
		return
	}
	r.stats.Meshes++
	glow := r.uniforms.Float(UniformShine) * glowStrength

	for _, e := range m.Edges {
		a, okA := vmath.Project(mvp, m.Vertices[e[0]])
		b, okB := vmath.Project(mvp, m.Vertices[e[1]])
		if !okA || !okB {
			continue
		}
		x0, y0 := vmath.NDCToCell(a, w, h)
		x1, y1 := vmath.NDCToCell(b, w, h)
		steps := max(abs(x1-x0), abs(y1-y0))
		if steps > maxEdgeCells {
			continue
		}
		glyph := slopeGlyph(x1-x0, y1-y0)

		t := vmath.NewLineTraverser(x0, y0, x1, y1)
		for i := 0; t.Next(); i++ {
			x, y := t.Pos()
			if !r.bound.inBounds(x, y) {
				continue
			}
			var s float32
			if steps > 0 {
				s = float32(i) / float32(steps)
			}
			f := Fragment{
				X: x, Y: y,
				UV:    uv(x, y, w, h),
				Depth: a[2] + (b[2]-a[2])*s,
				T:     s,
			}
			c := r.shader.Shade(f, r.uniforms)
			r.bound.Set(x, y, glyph, c, RGB{}, BlendFgOnly, 1)
			if glow > 0 {
				r.bound.Set(x, y, 0, RGB{}, Scale(c, glow), BlendMaxBg, 1)
			}
			r.stats.Cells++
		}
	}
}

// DrawText writes text at cell (x, y) on the bound target over a darkened backdrop, clipped at the edge
func (r *TerminalRenderer) DrawText(x, y int, text string, fg RGB) {
	for _, ch := range text {
		r.bound.Set(x, y, ch, fg, RGB{}, BlendFgOnly, 1)
		r.bound.Set(x, y, 0, RGB{}, RGBBlack, BlendAlphaBg, textBackdropAlpha)
		x++
	}
}

func uv(x, y, w, h int) mgl32.Vec2 {
	return mgl32.Vec2{(float32(x) + 0.5) / float32(w), (float32(y) + 0.5) / float32(h)}
}

// slopeGlyph picks a line character for a cell-space direction, y down
func slopeGlyph(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '*'
	case ady*2 < adx:
		return '-'
	case adx*2 < ady:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
