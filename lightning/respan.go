package lightning

import (
	"time"

	"github.com/lixenwraith/fulgur/parameter"
)

// respan picks a new random sub-span of the parent polyline
// Start in [0, P-2], end at least MinChildSpan past start and at most P
func (f *Forest) respan(id NodeID) {
	n := &f.nodes[id]
	if n.parent == NoNode {
		return
	}
	ps := f.nodes[n.parent].steps

	if ps < parameter.MinChildSpan {
		n.startStep, n.endStep = 0, ps
	} else {
		n.startStep = f.rng.IntInclusive(ps - parameter.MinChildSpan)
		n.endStep = n.startStep + f.rng.IntInclusive(ps-n.startStep-parameter.MinChildSpan) + parameter.MinChildSpan
	}
	n.steps = max(n.endStep-n.startStep, 1)
	f.respans++
}

// arm schedules the next timed re-span of id at a random delay in [0, maxDelay)
func (f *Forest) arm(id NodeID) {
	if f.sched == nil {
		return
	}
	delay := time.Duration(f.rng.Intn(int(f.maxDelay)))
	gen := f.nodes[id].gen
	f.nodes[id].task = f.sched.After(delay, func() { f.fire(id, gen) })
	f.nodes[id].timed = true
}

func (f *Forest) fire(id NodeID, gen uint32) {
	if !f.Valid(id) || f.nodes[id].gen != gen {
		return
	}
	f.nodes[id].timed = false
	f.respan(id)
	n := &f.nodes[id]
	Logger().Debug("respan", "bolt", id, "start", n.startStep, "end", n.endStep)
	f.arm(id)
}
