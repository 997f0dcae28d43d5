package parameter

import "time"

// Drag recognition
const (
	// MinimumDragDistance in inches before a press becomes a drag
	MinimumDragDistance = 0.04

	// MinimumPageThrowVelocity in inches/second before a paged release advances a page
	MinimumPageThrowVelocity = 5.0
)

// Animation durations
const (
	// PageThrowDuration animates a paged release
	PageThrowDuration = 500 * time.Millisecond

	// ElasticSnapDuration animates the return into bounds
	ElasticSnapDuration = 500 * time.Millisecond

	// WheelScrollDuration animates a wheel step
	WheelScrollDuration = 350 * time.Millisecond

	// KeyScrollDuration animates a keyboard step
	KeyScrollDuration = 350 * time.Millisecond

	// HideScrollBarDuration fades floating scroll bars
	HideScrollBarDuration = 200 * time.Millisecond

	// HideScrollBarDelay waits before the fade starts
	HideScrollBarDelay = 0 * time.Millisecond
)

// Discrete step sizes in pixels
const (
	WheelScrollStep = 48.0
	KeyScrollStep   = 24.0
)
