package lightning

import (
	"github.com/lixenwraith/fulgur/parameter"
	"github.com/lixenwraith/fulgur/render"
)

// Draw paints id then its subtree, children on top of parents
// Uses the polylines of the last Update; bolts never updated are skipped
func (f *Forest) Draw(s render.Surface, id NodeID, style Style) {
	if !f.Valid(id) {
		return
	}
	pts := f.nodes[id].points
	if len(pts) >= 2 {
		if style.GlowRadius > 0 && style.GlowAlpha > 0 {
			f.drawGlow(s, id, style)
		}
		f.drawStroke(s, id, style)
	}

	child := style.Child()
	for _, c := range f.nodes[id].children {
		f.Draw(s, c, child)
	}
}

// drawGlow fills the band between the polyline and a copy shifted by each point's
// distance to its neighbour, capped at GlowRadius
// A cheap halo, not an exact offset curve
func (f *Forest) drawGlow(s render.Surface, id NodeID, style Style) {
	pts := f.nodes[id].points
	last := len(pts) - 1

	s.Save()
	s.SetBlendMode(render.BlendAdd)
	s.SetFillStyle(style.GlowColor, style.GlowAlpha)
	s.BeginPath()
	for i, p := range pts {
		j := i + 1
		if i == last {
			j = i - 1
		}
		d := min(p.DistanceTo(pts[j]), style.GlowRadius)
		if i == 0 {
			s.MoveTo(p.X+d, p.Y)
		} else {
			s.LineTo(p.X+d, p.Y)
		}
	}
	for i := last; i >= 0; i-- {
		s.LineTo(pts[i].X, pts[i].Y)
	}
	s.ClosePath()
	s.Fill()
	s.Restore()
}

func (f *Forest) drawStroke(s render.Surface, id NodeID, style Style) {
	pts := f.nodes[id].points

	s.Save()
	s.SetLineWidth(f.rng.Range(style.LineWidth, parameter.StrokeWidthMax))
	s.SetStrokeStyle(style.Color, style.Alpha)
	s.BeginPath()
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
	s.Restore()
}
