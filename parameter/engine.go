package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the demo render and tween advance interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tween advance after a stall (debugger, suspended terminal)
	MaxFrameDelta = 100 * time.Millisecond
)
