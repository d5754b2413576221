package lightning

import (
	"math"

	"github.com/lixenwraith/fulgur/parameter"
	"github.com/lixenwraith/fulgur/vmath"
)

// Update rebuilds the polyline of id and then of its subtree, parents first
// Children read their endpoints from the parent polyline computed in the same call
func (f *Forest) Update(id NodeID, style Style) {
	if !f.Valid(id) {
		return
	}
	f.update(id, style)

	child := style.Child()
	for _, c := range f.nodes[id].children {
		f.Update(c, child)
	}
}

func (f *Forest) update(id NodeID, style Style) {
	n := &f.nodes[id]
	if n.parent != NoNode {
		p := &f.nodes[n.parent]
		if n.endStep > p.steps {
			f.respan(id)
			Logger().Debug("respan forced", "bolt", id, "parent_steps", p.steps)
		}
		if n.endStep < len(p.points) {
			n.start = p.points[n.startStep]
			n.end = p.points[n.endStep]
		}
	}

	steps := max(n.steps, 1)
	length := n.start.DistanceTo(n.end)

	dir := vmath.V2Sub(n.end, n.start)
	dir.Normalize().Scale(length / float64(steps))
	sinv, cosv := math.Sincos(dir.Angle())

	n.phase += f.rng.Range(style.Speed, style.Speed*parameter.PhaseJitterMin)

	width := length
	if n.parent != NoNode {
		width *= parameter.ChildJitterScale
	}
	width = math.Min(parameter.JitterClamp, width*style.Amplitude)

	pts := n.points[:0]
	pts = append(pts, n.start)
	for i := 1; i < steps; i++ {
		t := float64(i) / parameter.NoiseSpatialDivisor
		av := width * f.noise.Fractal(t-n.phase) * 0.5
		bv := width * f.noise.Fractal(t+n.phase) * 0.5
		m := math.Sin(math.Pi * float64(i) / float64(steps))

		fi := float64(i)
		pts = append(pts, vmath.Vec2{
			X: n.start.X + dir.X*fi + (sinv*av-sinv*bv)*m,
			Y: n.start.Y + dir.Y*fi - (cosv*av-cosv*bv)*m,
		})
	}
	// Envelope vanishes at both ends; pin exactly rather than trust sin(pi)
	pts = append(pts, n.end)
	n.points = pts
}
