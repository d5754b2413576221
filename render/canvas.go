package render

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fulgur/parameter"
	"github.com/lixenwraith/fulgur/vmath"
)

// quadrantChars provides 2x2 sub-cell resolution
// Bitmap encoding: bit0=UL, bit1=UR, bit2=LL, bit3=LR
var quadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// quadrantBits is the inverse of quadrantChars, lets strokes merge into glyphs already in a cell
var quadrantBits = func() map[rune]uint8 {
	m := make(map[rune]uint8, len(quadrantChars))
	for bits, r := range quadrantChars {
		if r != ' ' {
			m[r] = uint8(bits)
		}
	}
	return m
}()

// CellCanvas is a Surface over a terminal cell grid
// Strokes become quadrant glyphs in the foreground, fills tint cell backgrounds by sub-cell coverage
// One cell spans CanvasUnitsX by CanvasUnitsY surface units and holds 2x2 sub-cells
type CellCanvas struct {
	buf         *CellBuffer
	background  RGB
	strokeScale float64

	state StateStack
	path  Path

	// Per-call scratch, reused across frames
	hits map[int]uint8
	xs   []float64
}

// NewCellCanvas creates a canvas of cols x rows terminal cells
// strokeScale converts surface line width to a sub-cell stamp radius, rounded to nearest
func NewCellCanvas(cols, rows int, background RGB, strokeScale float64) *CellCanvas {
	return &CellCanvas{
		buf:         NewCellBuffer(cols, rows, background),
		background:  background,
		strokeScale: strokeScale,
		state:       NewStateStack(),
		hits:        make(map[int]uint8),
	}
}

// Resize changes the cell grid and clears it
func (c *CellCanvas) Resize(cols, rows int) {
	c.buf.Resize(cols, rows, c.background)
}

// Buffer exposes the cell grid for overlays and tests
func (c *CellCanvas) Buffer() *CellBuffer {
	return c.buf
}

// Flush writes the grid to screen
func (c *CellCanvas) Flush(screen tcell.Screen) {
	c.buf.FlushToScreen(screen)
}

func (c *CellCanvas) Size() (int, int) {
	cols, rows := c.buf.Bounds()
	return cols * parameter.CanvasUnitsX, rows * parameter.CanvasUnitsY
}

func (c *CellCanvas) Clear() {
	c.buf.Clear(c.background)
}

func (c *CellCanvas) Save()    { c.state.Save() }
func (c *CellCanvas) Restore() { c.state.Restore() }

func (c *CellCanvas) SetBlendMode(mode BlendMode) { c.state.Current.Blend = mode }
func (c *CellCanvas) SetLineWidth(width float64)  { c.state.Current.LineWidth = width }

func (c *CellCanvas) SetStrokeStyle(color RGB, alpha float64) {
	c.state.Current.Stroke = Paint{Color: color, Alpha: alpha}
}

func (c *CellCanvas) SetFillStyle(color RGB, alpha float64) {
	c.state.Current.Fill = Paint{Color: color, Alpha: alpha}
}

func (c *CellCanvas) BeginPath()          { c.path.Reset() }
func (c *CellCanvas) MoveTo(x, y float64) { c.path.MoveTo(x, y) }
func (c *CellCanvas) LineTo(x, y float64) { c.path.LineTo(x, y) }
func (c *CellCanvas) ClosePath()          { c.path.Close() }

// Stroke traces every segment of the path at sub-cell resolution
func (c *CellCanvas) Stroke() {
	st := c.state.Current
	if st.Stroke.Alpha <= 0 {
		return
	}
	clear(c.hits)

	radius := int(math.Round(st.LineWidth * c.strokeScale))
	for _, sp := range c.path.Subpaths() {
		pts := sp.Points
		for i := 1; i < len(pts); i++ {
			c.traceSegment(pts[i-1], pts[i], radius)
		}
		if sp.Closed && len(pts) > 2 {
			c.traceSegment(pts[len(pts)-1], pts[0], radius)
		}
	}

	cols, _ := c.buf.Bounds()
	for key, bits := range c.hits {
		cx, cy := key%cols, key/cols
		if existing, ok := quadrantBits[c.buf.Get(cx, cy).Rune]; ok {
			bits |= existing
		}
		c.buf.SetFg(cx, cy, quadrantChars[bits], st.Stroke.Color, st.Blend, st.Stroke.Alpha)
	}
}

// Fill scan-converts the path with the even-odd rule, sampling sub-cell centers
// Every subpath is implicitly closed; coverage (0-4 sub-cells) scales fill alpha
func (c *CellCanvas) Fill() {
	st := c.state.Current
	if st.Fill.Alpha <= 0 {
		return
	}
	clear(c.hits)

	cols, rows := c.buf.Bounds()
	subW, subH := cols*2, rows*2
	const halfX = parameter.CanvasUnitsX / 2.0
	const halfY = parameter.CanvasUnitsY / 2.0

	for sy := 0; sy < subH; sy++ {
		y := (float64(sy) + 0.5) * halfY
		xs := c.xs[:0]
		for _, sp := range c.path.Subpaths() {
			pts := sp.Points
			if len(pts) < 2 {
				continue
			}
			for i := range pts {
				a, b := pts[i], pts[(i+1)%len(pts)]
				if !finite(a) || !finite(b) {
					continue
				}
				if (a.Y <= y) != (b.Y <= y) {
					xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
				}
			}
		}
		slices.Sort(xs)

		for k := 0; k+1 < len(xs); k += 2 {
			start := max(int(math.Ceil(xs[k]/halfX-0.5)), 0)
			end := min(int(math.Ceil(xs[k+1]/halfX-0.5)), subW)
			for sx := start; sx < end; sx++ {
				c.hits[(sy>>1)*cols+sx>>1]++
			}
		}
		c.xs = xs
	}

	for key, n := range c.hits {
		c.buf.CompositeBg(key%cols, key/cols, st.Fill.Color, st.Blend, st.Fill.Alpha*float64(n)/4)
	}
}

// traceSegment clips a surface segment and Bresenham-traces it in sub-cell space
// radius > 0 stamps a disc of sub-cells around every traced point
func (c *CellCanvas) traceSegment(a, b vmath.Vec2, radius int) {
	if !finite(a) || !finite(b) {
		return
	}
	w, h := c.Size()
	margin := float64(radius+1) * parameter.CanvasUnitsY
	a, b, ok := clipSegment(a, b, -margin, -margin, float64(w)+margin, float64(h)+margin)
	if !ok {
		return
	}

	sx0, sy0 := toSub(a)
	sx1, sy1 := toSub(b)

	dx := sx1 - sx0
	if dx < 0 {
		dx = -dx
	}
	dy := sy1 - sy0
	if dy < 0 {
		dy = -dy
	}

	stepX := -1
	if sx0 < sx1 {
		stepX = 1
	}
	stepY := -1
	if sy0 < sy1 {
		stepY = 1
	}

	err := dx - dy

	for {
		c.stamp(sx0, sy0, radius)

		if sx0 == sx1 && sy0 == sy1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			sx0 += stepX
		}
		if e2 < dx {
			err += dx
			sy0 += stepY
		}
	}
}

func (c *CellCanvas) stamp(sx, sy, radius int) {
	if radius <= 0 {
		c.plot(sx, sy)
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.plot(sx+dx, sy+dy)
			}
		}
	}
}

// plot records a sub-cell hit
// Quadrant bitmap encoding: row-major 2x2, qy=0 top row, qy=1 bottom row
func (c *CellCanvas) plot(sx, sy int) {
	cols, rows := c.buf.Bounds()
	if sx < 0 || sy < 0 || sx >= cols*2 || sy >= rows*2 {
		return
	}
	quadrant := uint8(1 << ((sy&1)*2 + sx&1))
	c.hits[(sy>>1)*cols+sx>>1] |= quadrant
}

func toSub(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X * 2 / parameter.CanvasUnitsX)),
		int(math.Floor(p.Y * 2 / parameter.CanvasUnitsY))
}

func finite(p vmath.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// clipSegment is Liang-Barsky against an axis-aligned box
func clipSegment(a, b vmath.Vec2, minX, minY, maxX, maxY float64) (vmath.Vec2, vmath.Vec2, bool) {
	t0, t1 := 0.0, 1.0
	dx := b.X - a.X
	dy := b.Y - a.Y

	edges := [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}

	return vmath.V2(a.X+t0*dx, a.Y+t0*dy), vmath.V2(a.X+t1*dx, a.Y+t1*dy), true
}
