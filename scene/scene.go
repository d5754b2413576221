// Package scene drives a ring of root bolts over a render.Surface
package scene

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fulgur/lightning"
	"github.com/lixenwraith/fulgur/parameter"
	"github.com/lixenwraith/fulgur/render"
	"github.com/lixenwraith/fulgur/schedule"
	"github.com/lixenwraith/fulgur/status"
	"github.com/lixenwraith/fulgur/vmath"
)

// Metric keys published to the status registry
const (
	MetricFrames  = "frames"
	MetricBolts   = "bolts"
	MetricRespans = "respans"
	MetricFrameMs = "frame_ms"
)

// Layout is the radial placement policy of the root bolts
type Layout struct {
	Roots        int
	RootSteps    int
	ChildCount   int
	ChildDepth   int     // generations below each root carrying ChildCount children
	RadiusFactor float64 // ring radius as a fraction of surface width
}

// DefaultLayout returns the parameter defaults
func DefaultLayout() Layout {
	return Layout{
		Roots:        parameter.RootCount,
		RootSteps:    parameter.RootSteps,
		ChildCount:   parameter.ChildCount,
		ChildDepth:   parameter.ChildDepth,
		RadiusFactor: parameter.RadiusFactor,
	}
}

// Scene owns the root set and runs the per-frame clear, update, draw cycle
// Not safe for concurrent use; shares the goroutine of its forest's scheduler
type Scene struct {
	forest *lightning.Forest
	roots  []lightning.NodeID
	layout Layout
	style  lightning.Style
	clock  schedule.TimeSource

	width, height int

	frames    *atomic.Int64
	bolts     *atomic.Int64
	respans   *atomic.Int64
	frameTime *status.AtomicFloat
}

// New creates the roots in forest; geometry is assigned on the first Resize or Frame
// reg may be nil
func New(forest *lightning.Forest, layout Layout, style lightning.Style, clock schedule.TimeSource, reg *status.Registry) *Scene {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if clock == nil {
		clock = schedule.NewTimeProvider()
	}
	s := &Scene{
		forest:    forest,
		layout:    layout,
		style:     style,
		clock:     clock,
		frames:    reg.Ints.Get(MetricFrames),
		bolts:     reg.Ints.Get(MetricBolts),
		respans:   reg.Ints.Get(MetricRespans),
		frameTime: reg.Floats.Get(MetricFrameMs),
	}
	steps := max(layout.RootSteps, parameter.MinRootSteps)
	s.roots = make([]lightning.NodeID, max(layout.Roots, 0))
	for i := range s.roots {
		s.roots[i] = forest.NewRoot(vmath.Vec2{}, vmath.Vec2{}, steps)
	}
	return s
}

// Roots returns the root bolt IDs in ring order
func (s *Scene) Roots() []lightning.NodeID {
	return s.roots
}

// Size returns the viewport of the last layout
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Resize re-anchors every root on a ring centred in width x height
// Root i spans the arc from i/N to (i+1)/N of a turn; odd roots run backwards
func (s *Scene) Resize(width, height int) {
	s.width, s.height = width, height

	n := len(s.roots)
	if n == 0 {
		return
	}
	center := vmath.V2(float64(width)/2, float64(height)/2)
	radius := float64(width) * s.layout.RadiusFactor
	steps := max(s.layout.RootSteps, parameter.MinRootSteps)

	for i, id := range s.roots {
		a0 := float64(i) / float64(n) * 2 * math.Pi
		a1 := float64(i+1) / float64(n) * 2 * math.Pi
		p1 := vmath.V2(center.X+radius*math.Cos(a0), center.Y+radius*math.Sin(a0))
		p2 := vmath.V2(center.X+radius*math.Cos(a1), center.Y+radius*math.Sin(a1))
		if i%2 == 0 {
			s.forest.SetEndpoints(id, p1, p2)
		} else {
			s.forest.SetEndpoints(id, p2, p1)
		}
		s.forest.SetSteps(id, steps)
		s.populate(id, s.layout.ChildDepth)
	}
}

// populate applies the child count down depth generations and clears below it
func (s *Scene) populate(id lightning.NodeID, depth int) {
	if depth <= 0 {
		s.forest.SetChildCount(id, 0)
		return
	}
	s.forest.SetChildCount(id, s.layout.ChildCount)
	for _, c := range s.forest.Children(id) {
		s.populate(c, depth-1)
	}
}

// Frame clears surf and updates then draws each root in turn
// A surface size change triggers Resize first
func (s *Scene) Frame(surf render.Surface) {
	start := s.clock.Now()

	if w, h := surf.Size(); w != s.width || h != s.height {
		s.Resize(w, h)
	}

	surf.Clear()
	for _, id := range s.roots {
		s.forest.Update(id, s.style)
		s.forest.Draw(surf, id, s.style)
	}

	s.frames.Add(1)
	s.bolts.Store(int64(s.forest.Live()))
	s.respans.Store(int64(s.forest.Respans()))
	s.frameTime.Set(float64(s.clock.Now().Sub(start)) / float64(time.Millisecond))
}

// Close removes every root with its subtree, cancelling pending re-spans
func (s *Scene) Close() {
	for _, id := range s.roots {
		s.forest.Remove(id)
	}
	s.roots = nil
	s.bolts.Store(int64(s.forest.Live()))
}
