package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScreen records the last content written per cell
type fakeScreen struct {
	w, h  int
	runes map[[2]int]rune
	shown int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, runes: make(map[[2]int]rune)}
}

func (s *fakeScreen) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	s.runes[[2]int{x, y}] = r
}

func (s *fakeScreen) Show()            { s.shown++ }
func (s *fakeScreen) Size() (int, int) { return s.w, s.h }
func (s *fakeScreen) Clear()           { clear(s.runes) }
func (s *fakeScreen) at(x, y int) rune { return s.runes[[2]int{x, y}] }

func TestDrawMeshOriginLandsInCentre(t *testing.T) {
	screen := newFakeScreen(80, 24)
	r := NewTerminalRenderer(screen)
	r.ClearDisplay()

	m, err := NewMesh("dot", []mgl32.Vec3{{0, 0, 0}}, [][2]int{{0, 0}})
	require.NoError(t, err)
	r.DrawMesh(m, mgl32.Ident4())
	r.PresentRenderTarget(nil)

	assert.Equal(t, '*', screen.at(40, 12))
	assert.Equal(t, ' ', screen.at(0, 0))
	assert.Equal(t, 1, screen.shown)
	assert.Equal(t, Stats{Meshes: 1, Cells: 1}, r.Stats())
}

func TestDrawMeshHorizontalEdge(t *testing.T) {
	screen := newFakeScreen(80, 24)
	r := NewTerminalRenderer(screen)
	m := NewLineLoop("bar", []mgl32.Vec2{{-0.5, 0}, {0.5, 0}})

	r.DrawMesh(m, mgl32.Ident4())
	r.PresentRenderTarget(nil)

	// x from 20 to 60 on row 12
	for x := 20; x <= 60; x++ {
		assert.Equal(t, '-', screen.at(x, 12), "cell %d", x)
	}
	assert.Equal(t, ' ', screen.at(19, 12))
}

func TestDrawMeshSkipsPointsBehindCamera(t *testing.T) {
	screen := newFakeScreen(20, 10)
	r := NewTerminalRenderer(screen)
	m := NewLineLoop("bar", []mgl32.Vec2{{-0.5, 0}, {0.5, 0}})

	behind := mgl32.Mat4{}
	behind[15] = -1
	r.DrawMesh(m, behind)
	assert.Equal(t, 0, r.Stats().Cells)
}

func TestNewMeshRejectsBadEdges(t *testing.T) {
	_, err := NewMesh("bad", []mgl32.Vec3{{0, 0, 0}}, [][2]int{{0, 1}})
	assert.ErrorIs(t, err, ErrInvalidMesh)
}

func TestMeshBounds(t *testing.T) {
	m := NewLineLoop("tri", []mgl32.Vec2{{-1, 0}, {1, 0}, {0, 2}})
	b := m.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, b.Max)
}

func TestRenderTargetFollowsDisplay(t *testing.T) {
	screen := newFakeScreen(10, 5)
	r := NewTerminalRenderer(screen)
	target := r.NewRenderTarget()

	screen.w, screen.h = 20, 8
	r.ClearDisplay()
	r.UseRenderTarget(target)
	w, h := target.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 8, h)

	r.DrawText(18, 7, "abc", RGBWhite)
	assert.Equal(t, 'a', target.At(18, 7).Rune)
	assert.Equal(t, 'b', target.At(19, 7).Rune)

	r.PresentRenderTarget(target)
	assert.Equal(t, 'b', screen.at(19, 7))
}

func TestDrawFullscreenTouchesEveryCell(t *testing.T) {
	screen := newFakeScreen(4, 4)
	r := NewTerminalRenderer(screen)
	r.UseShader(NewShader("solid", func(Fragment, Uniforms) RGB { return RGB{1, 2, 3} }))
	r.DrawFullscreen()

	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, RGB{1, 2, 3}, r.display.At(x, y).Bg)
		}
	}
}

func TestMaterialApply(t *testing.T) {
	r := NewTerminalRenderer(newFakeScreen(4, 4))
	m := &Material{Name: "rock", Shader: FlatShader(), Color: RGB{255, 0, 0}}
	m.Apply(r)

	assert.Equal(t, "flat", r.shader.Name())
	assert.Equal(t, RGB{255, 0, 0}, r.uniforms.RGB(UniformColor))
	assert.Equal(t, RGB{255, 0, 0}, r.shader.Shade(Fragment{T: 1}, r.uniforms))
}

func TestSlopeGlyph(t *testing.T) {
	assert.Equal(t, '-', slopeGlyph(10, 1))
	assert.Equal(t, '|', slopeGlyph(1, 10))
	assert.Equal(t, '\\', slopeGlyph(5, 5))
	assert.Equal(t, '/', slopeGlyph(5, -5))
	assert.Equal(t, '*', slopeGlyph(0, 0))
}

func TestTargetBlendModes(t *testing.T) {
	target := NewTarget(2, 1)

	target.Set(0, 0, 'x', RGB{100, 0, 0}, RGB{9, 9, 9}, BlendFgOnly, 1)
	c := target.At(0, 0)
	assert.Equal(t, 'x', c.Rune)
	assert.Equal(t, RGB{100, 0, 0}, c.Fg)
	assert.Equal(t, emptyCell.Bg, c.Bg, "fg-only keeps the background")

	target.Set(0, 0, 0, RGB{1, 1, 1}, RGB{0, 100, 0}, BlendBgOnly, 1)
	c = target.At(0, 0)
	assert.Equal(t, 'x', c.Rune, "zero rune keeps the glyph")
	assert.Equal(t, RGB{100, 0, 0}, c.Fg, "bg-only keeps the foreground")
	assert.Equal(t, RGB{0, 100, 0}, c.Bg)

	target.Set(0, 0, 0, RGB{}, RGB{50, 50, 200}, BlendMaxBg, 1)
	assert.Equal(t, RGB{50, 100, 200}, target.At(0, 0).Bg)

	target.Set(0, 0, 0, RGB{}, RGBBlack, BlendAlphaBg, 0.5)
	assert.Equal(t, RGB{25, 50, 100}, target.At(0, 0).Bg)

	assert.Equal(t, emptyCell, target.At(5, 5))
}

func TestDrawMeshShineAddsHalo(t *testing.T) {
	r := NewTerminalRenderer(newFakeScreen(80, 24))
	m, err := NewMesh("dot", []mgl32.Vec3{{0, 0, 0}}, [][2]int{{0, 0}})
	require.NoError(t, err)

	matte := &Material{Name: "matte", Shader: FlatShader(), Color: RGB{200, 100, 0}}
	matte.Apply(r)
	r.DrawMesh(m, mgl32.Ident4())
	assert.Equal(t, RGB{}, r.display.At(40, 12).Bg, "no halo without shine")

	r.ClearDisplay()
	shiny := &Material{Name: "shiny", Shader: FlatShader(), Color: RGB{200, 100, 0}, Shine: 1}
	shiny.Apply(r)
	r.DrawMesh(m, mgl32.Ident4())

	c := r.display.At(40, 12)
	assert.Equal(t, '*', c.Rune)
	assert.Equal(t, Scale(c.Fg, glowStrength), c.Bg)
	assert.Equal(t, RGB{}, r.display.At(0, 0).Bg)
}

func TestDrawTextDarkensBackdrop(t *testing.T) {
	r := NewTerminalRenderer(newFakeScreen(8, 2))
	r.UseShader(NewShader("solid", func(Fragment, Uniforms) RGB { return RGB{100, 100, 100} }))
	r.DrawFullscreen()
	r.DrawText(0, 0, "hi", RGBWhite)

	c := r.display.At(1, 0)
	assert.Equal(t, 'i', c.Rune)
	assert.Equal(t, RGBWhite, c.Fg)
	assert.InDelta(t, 40, int(c.Bg.R), 1)
	assert.Equal(t, RGB{100, 100, 100}, r.display.At(2, 0).Bg, "cells past the text untouched")
}
