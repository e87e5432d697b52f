package render

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of a render target
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

var emptyCell = Cell{Rune: 0, Fg: RGBWhite, Bg: RGBBlack}

// Target is an offscreen cell buffer with touched tracking
// Untouched cells get the default background when presented
type Target struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewTarget creates a target with the specified dimensions
func NewTarget(width, height int) *Target {
	t := &Target{}
	t.Resize(width, height)
	return t
}

// Resize adjusts dimensions, reallocates only if capacity is insufficient
func (t *Target) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(t.cells) < size {
		t.cells = make([]Cell, size)
		t.touched = make([]bool, size)
	} else {
		t.cells = t.cells[:size]
		t.touched = t.touched[:size]
	}
	t.width = width
	t.height = height
	t.Clear()
}

// Size returns the target dimensions in cells
func (t *Target) Size() (int, int) {
	return t.width, t.height
}

// Clear resets all cells to empty using exponential copy
func (t *Target) Clear() {
	if len(t.cells) == 0 {
		return
	}
	t.cells[0] = emptyCell
	t.touched[0] = false
	for filled := 1; filled < len(t.cells); filled *= 2 {
		copy(t.cells[filled:], t.cells[:filled])
	}
	for filled := 1; filled < len(t.touched); filled *= 2 {
		copy(t.touched[filled:], t.touched[:filled])
	}
}

func (t *Target) inBounds(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// At returns the cell at (x, y); out of bounds yields an empty cell
func (t *Target) At(x, y int) Cell {
	if !t.inBounds(x, y) {
		return emptyCell
	}
	return t.cells[y*t.width+x]
}

// Set composites a cell with the specified blend mode
// A zero rune keeps the existing glyph
func (t *Target) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float32) {
	if !t.inBounds(x, y) {
		return
	}
	idx := y*t.width + x
	dst := &t.cells[idx]

	if r != 0 {
		dst.Rune = r
	}
	if uint8(mode)&flagBg != 0 {
		dst.Bg = mode.apply(dst.Bg, bg, alpha)
		t.touched[idx] = true
	}
	if uint8(mode)&flagFg != 0 {
		dst.Fg = mode.apply(dst.Fg, fg, alpha)
	}
}

// finalize sets the default background on untouched cells before flush
func (t *Target) finalize() {
	for i := range t.cells {
		if !t.touched[i] {
			t.cells[i].Bg = RgbBackground
		}
	}
}

// Flush writes the target to the screen without showing it
func (t *Target) Flush(screen Screen) {
	t.finalize()
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			c := t.cells[y*t.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color())
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
