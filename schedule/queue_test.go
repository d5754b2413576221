package schedule

import (
	"testing"
	"time"
)

func newTestQueue() (*Queue, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewQueue(clock), clock
}

func TestQueueRunsInDeadlineOrder(t *testing.T) {
	q, clock := newTestQueue()

	var order []int
	q.After(30*time.Millisecond, func() { order = append(order, 3) })
	q.After(10*time.Millisecond, func() { order = append(order, 1) })
	q.After(20*time.Millisecond, func() { order = append(order, 2) })

	if ran := q.RunDue(); ran != 0 {
		t.Fatalf("Expected nothing due at start, ran %d", ran)
	}

	clock.Advance(25 * time.Millisecond)
	if ran := q.RunDue(); ran != 2 {
		t.Fatalf("Expected 2 due tasks, ran %d", ran)
	}

	clock.Advance(10 * time.Millisecond)
	q.RunDue()

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("Expected order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected order %v, got %v", want, order)
			break
		}
	}
	if q.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d pending", q.Pending())
	}
}

func TestQueueTiesRunInInsertionOrder(t *testing.T) {
	q, clock := newTestQueue()

	var order []string
	q.After(5*time.Millisecond, func() { order = append(order, "a") })
	q.After(5*time.Millisecond, func() { order = append(order, "b") })
	q.After(5*time.Millisecond, func() { order = append(order, "c") })

	clock.Advance(5 * time.Millisecond)
	q.RunDue()

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("Expected [a b c], got %v", order)
	}
}

func TestQueueCancel(t *testing.T) {
	q, clock := newTestQueue()

	fired := false
	id := q.After(10*time.Millisecond, func() { fired = true })

	if !q.Cancel(id) {
		t.Fatal("Expected Cancel to find pending task")
	}
	if q.Cancel(id) {
		t.Error("Expected second Cancel to report missing task")
	}

	clock.Advance(time.Second)
	q.RunDue()

	if fired {
		t.Error("Cancelled task fired")
	}
}

func TestQueueCancelAfterRun(t *testing.T) {
	q, clock := newTestQueue()

	id := q.After(0, func() {})
	clock.Advance(time.Millisecond)
	q.RunDue()

	if q.Cancel(id) {
		t.Error("Expected Cancel of completed task to return false")
	}
}

func TestQueueRescheduleWaitsForNextRun(t *testing.T) {
	q, clock := newTestQueue()

	count := 0
	var rearm func()
	rearm = func() {
		count++
		q.After(0, rearm)
	}
	q.After(0, rearm)

	q.RunDue()
	if count != 1 {
		t.Fatalf("Expected one run per RunDue, got %d", count)
	}

	clock.Advance(time.Millisecond)
	q.RunDue()
	if count != 2 {
		t.Errorf("Expected re-armed task to run on next call, got %d runs", count)
	}
}

func TestQueueNext(t *testing.T) {
	q, clock := newTestQueue()

	if _, ok := q.Next(); ok {
		t.Fatal("Expected empty queue to report no deadline")
	}

	q.After(40*time.Millisecond, func() {})
	q.After(15*time.Millisecond, func() {})

	deadline, ok := q.Next()
	if !ok {
		t.Fatal("Expected a deadline")
	}
	if want := clock.Now().Add(15 * time.Millisecond); !deadline.Equal(want) {
		t.Errorf("Expected next deadline %v, got %v", want, deadline)
	}
}

func TestQueueNegativeDelayRunsImmediately(t *testing.T) {
	q, _ := newTestQueue()

	fired := false
	q.After(-time.Second, func() { fired = true })
	q.RunDue()

	if !fired {
		t.Error("Expected negative delay to be due immediately")
	}
}
