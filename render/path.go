package render

import (
	"github.com/lixenwraith/fulgur/vmath"
)

// Subpath is a run of points started by MoveTo
type Subpath struct {
	Points []vmath.Vec2
	Closed bool
}

// Path records MoveTo/LineTo/ClosePath for surfaces that rasterize themselves
// Backing arrays are reused across frames
type Path struct {
	subpaths []Subpath
	n        int
}

func (p *Path) Reset() {
	for i := 0; i < p.n; i++ {
		p.subpaths[i].Points = p.subpaths[i].Points[:0]
		p.subpaths[i].Closed = false
	}
	p.n = 0
}

func (p *Path) MoveTo(x, y float64) {
	if p.n < len(p.subpaths) {
		p.subpaths[p.n].Points = p.subpaths[p.n].Points[:0]
		p.subpaths[p.n].Closed = false
	} else {
		p.subpaths = append(p.subpaths, Subpath{})
	}
	p.subpaths[p.n].Points = append(p.subpaths[p.n].Points, vmath.V2(x, y))
	p.n++
}

// LineTo without a current point behaves as MoveTo
// After ClosePath a new subpath starts at the closed subpath's first point
func (p *Path) LineTo(x, y float64) {
	if p.n == 0 {
		p.MoveTo(x, y)
		return
	}
	if last := &p.subpaths[p.n-1]; last.Closed {
		start := last.Points[0]
		p.MoveTo(start.X, start.Y)
	}
	sp := &p.subpaths[p.n-1]
	sp.Points = append(sp.Points, vmath.V2(x, y))
}

func (p *Path) Close() {
	if p.n == 0 {
		return
	}
	p.subpaths[p.n-1].Closed = true
}

// Subpaths returns the recorded subpaths, valid until the next mutation
func (p *Path) Subpaths() []Subpath {
	return p.subpaths[:p.n]
}
