package parameter

import "time"

// Drawer gestures
const (
	// OpenGestureEdgeSize in inches from the surface edge that starts an edge drag
	OpenGestureEdgeSize = 0.1

	// MinimumDrawerThrowVelocity in inches/second to open or close regardless of position
	MinimumDrawerThrowVelocity = 5.0

	// OpenCloseDuration animates a drawer to its open or closed position
	OpenCloseDuration = 250 * time.Millisecond
)
