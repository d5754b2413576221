package schedule

import (
	"context"
	"time"

	"github.com/lixenwraith/fulgur/parameter"
)

// Loop is the single execution goroutine: frame callbacks, due timers and posted
// callbacks are serialized, each runs to completion before the next starts
type Loop struct {
	queue    *Queue
	interval time.Duration
	posts    chan func()
}

// NewLoop creates a loop ticking frames every interval and draining queue between them
func NewLoop(queue *Queue, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &Loop{
		queue:    queue,
		interval: interval,
		posts:    make(chan func(), parameter.PostQueueSize),
	}
}

// Queue returns the timer queue drained by this loop
func (l *Loop) Queue() *Queue {
	return l.queue
}

// Post hands fn to the loop goroutine, safe from any goroutine
// Blocks while the post buffer is full, returns false if ctx ends first
func (l *Loop) Post(ctx context.Context, fn func()) bool {
	select {
	case l.posts <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Run blocks until ctx is done, calling frame once per interval
// Frame callbacks receive no delta, animation time lives in the callee
func (l *Loop) Run(ctx context.Context, frame func()) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	wake := time.NewTimer(time.Hour)
	wake.Stop()
	defer wake.Stop()

	for {
		l.queue.RunDue()

		var wakeC <-chan time.Time
		if deadline, ok := l.queue.Next(); ok {
			wake.Reset(max(deadline.Sub(l.queue.clock.Now()), 0))
			wakeC = wake.C
		} else {
			wake.Stop()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			frame()
		case <-wakeC:
		}
	}
}
