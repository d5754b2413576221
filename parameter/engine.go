package parameter

import "time"

// Loop Timing
const (
	// FrameRate is the default target refresh rate
	FrameRate = 60

	// FrameUpdateInterval is the frame interval at FrameRate (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// PostQueueSize is the buffered capacity of callbacks posted onto the loop goroutine
	PostQueueSize = 64
)

// Snapshot Mode
const (
	SnapshotFrames = 90
	SnapshotWidth  = 800
	SnapshotHeight = 600
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "fulgur.log"

	// MaxLogSize triggers rotation of the existing log file on startup
	MaxLogSize = 10 * 1024 * 1024
)
