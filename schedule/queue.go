package schedule

import (
	"container/heap"
	"time"
)

// TaskID identifies a pending one-shot callback, zero is never issued
type TaskID uint64

type task struct {
	id       TaskID
	deadline time.Time
	seq      uint64 // insertion order, breaks deadline ties
	fn       func()
	index    int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Queue is a one-shot delay scheduler driven by an explicit RunDue call
// Not safe for concurrent use: callbacks run on the goroutine calling RunDue,
// the same goroutine that owns the state they mutate
type Queue struct {
	clock  TimeSource
	tasks  taskHeap
	byID   map[TaskID]*task
	nextID TaskID
	seq    uint64
}

// NewQueue creates an empty queue reading time from clock
func NewQueue(clock TimeSource) *Queue {
	return &Queue{
		clock: clock,
		byID:  make(map[TaskID]*task),
	}
}

// After schedules fn to run once, no earlier than d from now
func (q *Queue) After(d time.Duration, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	q.nextID++
	q.seq++
	t := &task{
		id:       q.nextID,
		deadline: q.clock.Now().Add(d),
		seq:      q.seq,
		fn:       fn,
	}
	heap.Push(&q.tasks, t)
	q.byID[t.id] = t
	return t.id
}

// Cancel removes a pending task, returns false if it already ran or is unknown
func (q *Queue) Cancel(id TaskID) bool {
	t, ok := q.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	delete(q.byID, id)
	return true
}

// Pending returns the number of scheduled tasks
func (q *Queue) Pending() int {
	return len(q.tasks)
}

// Next returns the earliest deadline, ok=false when empty
func (q *Queue) Next() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].deadline, true
}

// RunDue runs every task whose deadline has passed, in deadline order
// Tasks scheduled by the callbacks themselves wait for the next call
func (q *Queue) RunDue() int {
	now := q.clock.Now()
	limit := q.seq
	ran := 0
	for len(q.tasks) > 0 {
		top := q.tasks[0]
		if top.deadline.After(now) || top.seq > limit {
			break
		}
		t := heap.Pop(&q.tasks).(*task)
		delete(q.byID, t.id)
		t.fn()
		ran++
	}
	return ran
}
