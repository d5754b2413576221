// Package lightning models recursive procedural bolts as an arena tree
// Roots are anchored by the caller; children track sub-spans of their parent's polyline
package lightning

import (
	"time"

	"github.com/lixenwraith/fulgur/noise"
	"github.com/lixenwraith/fulgur/parameter"
	"github.com/lixenwraith/fulgur/schedule"
	"github.com/lixenwraith/fulgur/vmath"
)

// NodeID indexes a bolt in its Forest; IDs are recycled after Remove
type NodeID int32

// NoNode is the parent of every root
const NoNode NodeID = -1

// Scheduler is the one-shot delay service used by re-span timers
// schedule.Queue satisfies it
type Scheduler interface {
	After(d time.Duration, fn func()) schedule.TaskID
	Cancel(id schedule.TaskID) bool
}

type node struct {
	live   bool
	gen    uint32 // bumped on release, invalidates stale timer callbacks
	parent NodeID

	children []NodeID

	start, end vmath.Vec2
	steps      int

	// Span into parent polyline, children only
	startStep, endStep int

	phase  float64
	points []vmath.Vec2

	task  schedule.TaskID
	timed bool
}

// Forest owns every bolt of a scene
// Not safe for concurrent use: updates, draws and timer callbacks must share one goroutine
type Forest struct {
	nodes []node
	free  []NodeID

	noise *noise.Source
	rng   *vmath.FastRand
	sched Scheduler

	maxDelay time.Duration
	live     int
	respans  uint64
}

// NewForest creates an empty forest
// sched may be nil, children then keep the span chosen at attach time
func NewForest(sched Scheduler, seed int64) *Forest {
	return &Forest{
		noise:    noise.New(seed),
		rng:      vmath.NewFastRand(uint64(seed)),
		sched:    sched,
		maxDelay: parameter.RespanMaxDelay,
	}
}

// SetRespanDelay sets the exclusive upper bound of re-span intervals, applies to timers armed afterwards
func (f *Forest) SetRespanDelay(d time.Duration) {
	if d > 0 {
		f.maxDelay = d
	}
}

func (f *Forest) alloc(parent NodeID) NodeID {
	var id NodeID
	if n := len(f.free); n > 0 {
		id = f.free[n-1]
		f.free = f.free[:n-1]
	} else {
		id = NodeID(len(f.nodes))
		f.nodes = append(f.nodes, node{})
	}
	n := &f.nodes[id]
	n.live = true
	n.parent = parent
	n.steps = 1
	f.live++
	return id
}

// NewRoot adds an unparented bolt between start and end with the given segment count
func (f *Forest) NewRoot(start, end vmath.Vec2, steps int) NodeID {
	id := f.alloc(NoNode)
	n := &f.nodes[id]
	n.start, n.end = start, end
	n.steps = max(steps, 1)
	return id
}

// Valid reports whether id names a live bolt
func (f *Forest) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(f.nodes) && f.nodes[id].live
}

// SetEndpoints moves a root bolt; ignored for children, which follow their parent
func (f *Forest) SetEndpoints(id NodeID, start, end vmath.Vec2) {
	if !f.Valid(id) || f.nodes[id].parent != NoNode {
		return
	}
	f.nodes[id].start, f.nodes[id].end = start, end
}

// SetSteps changes a root bolt's segment count
// Children spanning past the new count re-sync on their next update
func (f *Forest) SetSteps(id NodeID, steps int) {
	if !f.Valid(id) || f.nodes[id].parent != NoNode {
		return
	}
	f.nodes[id].steps = max(steps, 1)
}

// SetChildCount trims or grows the children of id to exactly n
// Removed children are disposed with their whole subtree; new children re-span immediately and arm a timer
func (f *Forest) SetChildCount(id NodeID, n int) {
	if !f.Valid(id) {
		return
	}
	n = max(n, 0)
	cur := len(f.nodes[id].children)

	if cur > n {
		for _, c := range f.nodes[id].children[n:] {
			f.release(c)
		}
		f.nodes[id].children = f.nodes[id].children[:n]
		Logger().Debug("children trimmed", "bolt", id, "from", cur, "to", n)
		return
	}

	for i := cur; i < n; i++ {
		c := f.alloc(id)
		// alloc may grow the arena; index again
		f.nodes[id].children = append(f.nodes[id].children, c)
		f.respan(c)
		f.arm(c)
	}
	if n > cur {
		Logger().Debug("children attached", "bolt", id, "from", cur, "to", n)
	}
}

// Remove disposes id and its subtree, detaching it from its parent
func (f *Forest) Remove(id NodeID) {
	if !f.Valid(id) {
		return
	}
	if p := f.nodes[id].parent; p != NoNode {
		kids := f.nodes[p].children
		for i, c := range kids {
			if c == id {
				f.nodes[p].children = append(kids[:i], kids[i+1:]...)
				break
			}
		}
	}
	f.release(id)
}

// release frees id and every descendant, cancelling their timers
func (f *Forest) release(id NodeID) {
	n := &f.nodes[id]
	for _, c := range n.children {
		f.release(c)
	}
	if n.timed && f.sched != nil {
		f.sched.Cancel(n.task)
	}
	points := n.points[:0]
	*n = node{gen: n.gen + 1, points: points}
	f.free = append(f.free, id)
	f.live--
}

// Parent returns the parent of id, NoNode for roots
func (f *Forest) Parent(id NodeID) NodeID {
	if !f.Valid(id) {
		return NoNode
	}
	return f.nodes[id].parent
}

// Children returns a copy of the child list of id
func (f *Forest) Children(id NodeID) []NodeID {
	if !f.Valid(id) {
		return nil
	}
	return append([]NodeID(nil), f.nodes[id].children...)
}

// ChildCount returns the number of direct children of id, 0 for an invalid id
func (f *Forest) ChildCount(id NodeID) int {
	if !f.Valid(id) {
		return 0
	}
	return len(f.nodes[id].children)
}

// Points returns the polyline computed by the last Update
// The slice is reused by the next Update; copy to retain
func (f *Forest) Points(id NodeID) []vmath.Vec2 {
	if !f.Valid(id) {
		return nil
	}
	return f.nodes[id].points
}

// Endpoints returns the current start and end of id
func (f *Forest) Endpoints(id NodeID) (vmath.Vec2, vmath.Vec2) {
	if !f.Valid(id) {
		return vmath.Vec2{}, vmath.Vec2{}
	}
	return f.nodes[id].start, f.nodes[id].end
}

// Length is the straight distance between the endpoints of id
func (f *Forest) Length(id NodeID) float64 {
	start, end := f.Endpoints(id)
	return start.DistanceTo(end)
}

// Steps returns the segment count of id; its polyline holds Steps+1 points
func (f *Forest) Steps(id NodeID) int {
	if !f.Valid(id) {
		return 0
	}
	return f.nodes[id].steps
}

// Span returns the parent polyline indices tracked by a child
func (f *Forest) Span(id NodeID) (startStep, endStep int) {
	if !f.Valid(id) {
		return 0, 0
	}
	return f.nodes[id].startStep, f.nodes[id].endStep
}

// Phase returns the noise phase accumulator of id
func (f *Forest) Phase(id NodeID) float64 {
	if !f.Valid(id) {
		return 0
	}
	return f.nodes[id].phase
}

// Live is the number of bolts in the forest
func (f *Forest) Live() int {
	return f.live
}

// Respans is the total number of span re-derivations since creation
func (f *Forest) Respans() uint64 {
	return f.respans
}
