package schedule

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoopSerializesFramesTimersAndPosts(t *testing.T) {
	queue := NewQueue(NewTimeProvider())
	loop := NewLoop(queue, 2*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// All counters are touched only from loop callbacks, no locking
	var frames, timers, posts int
	inCallback := false
	enter := func() {
		if inCallback {
			t.Error("Callbacks overlapped")
		}
		inCallback = true
	}
	leave := func() { inCallback = false }

	queue.After(5*time.Millisecond, func() {
		enter()
		defer leave()
		timers++
	})

	go loop.Post(ctx, func() {
		enter()
		defer leave()
		posts++
	})

	err := loop.Run(ctx, func() {
		enter()
		defer leave()
		frames++
		if frames >= 20 && timers > 0 && posts > 0 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if frames < 20 {
		t.Errorf("Expected at least 20 frames, got %d", frames)
	}
	if timers != 1 {
		t.Errorf("Expected timer to fire once, got %d", timers)
	}
	if posts != 1 {
		t.Errorf("Expected posted callback to run once, got %d", posts)
	}
}

func TestLoopTimerIndependentOfFrameRate(t *testing.T) {
	queue := NewQueue(NewTimeProvider())
	// Frames far slower than the timer
	loop := NewLoop(queue, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fired := 0
	queue.After(time.Millisecond, func() {
		fired++
		cancel()
	})

	loop.Run(ctx, func() {
		t.Error("Unexpected frame")
	})

	if fired != 1 {
		t.Errorf("Expected timer to fire without a frame tick, fired %d", fired)
	}
}

func TestLoopPostAfterCancel(t *testing.T) {
	loop := NewLoop(NewQueue(NewTimeProvider()), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Fill the buffer so the send cannot proceed
	for i := 0; i < cap(loop.posts); i++ {
		loop.posts <- func() {}
	}
	if loop.Post(ctx, func() {}) {
		t.Error("Expected Post to fail on a full buffer with cancelled context")
	}
}
