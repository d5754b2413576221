package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character with explicit colors
// Rune 0 renders as a space
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// CellBuffer is a row-major grid of cells composited in place and flushed to a tcell screen
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the specified dimensions, cleared to bg
func NewCellBuffer(width, height int, bg RGB) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height, bg)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int, bg RGB) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(bg)
}

// Clear resets all cells to empty using exponential copy
func (b *CellBuffer) Clear(bg RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: 0, Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions in cells
func (b *CellBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in buffer bounds
func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFg writes rune and composites foreground, background untouched
func (b *CellBuffer) SetFg(x, y int, r rune, fg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = mode.Apply(dst.Fg, fg, alpha)
}

// CompositeBg composites onto the background, rune and foreground untouched
func (b *CellBuffer) CompositeBg(x, y int, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = mode.Apply(dst.Bg, bg, alpha)
}

// SetText writes s left to right with opaque colors, clipped to the row
func (b *CellBuffer) SetText(x, y int, s string, fg, bg RGB) {
	for _, r := range s {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
		}
		x++
	}
}

// FlushToScreen writes every cell to screen and shows it
func (b *CellBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
