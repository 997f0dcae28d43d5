package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/tween"
)

// FrameClock converts wall time into per-frame deltas for the tween driver
//
// Deltas are capped at maxDelta so a stalled frame loop (debugger, suspended
// terminal) resumes smoothly instead of finishing every animation at once.
// While paused, Tick returns zero and paused wall time never reaches tweens
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	maxDelta time.Duration

	epoch    time.Time // wall time at creation, zero point of Stamp
	last     time.Time // wall time of the previous tick
	elapsed  time.Duration
	paused   bool
	pausedAt time.Time
	pauseSum time.Duration
}

// NewFrameClock creates a clock reading provider; a non-positive maxDelta
// uses parameter.MaxFrameDelta
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = parameter.MaxFrameDelta
	}
	now := provider.Now()
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
		epoch:    now,
		last:     now,
	}
}

// Tick returns the delta since the previous tick
func (c *FrameClock) Tick() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if c.paused {
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	return dt
}

// Drive ticks and advances d by the result
func (c *FrameClock) Drive(d *tween.Driver) time.Duration {
	dt := c.Tick()
	d.Advance(dt)
	return dt
}

// Elapsed returns the total delta handed out by Tick
func (c *FrameClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Stamp converts a wall time into a pointer timestamp relative to the clock
// epoch, excluding paused time
func (c *FrameClock) Stamp(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return t.Sub(c.epoch) - c.pauseSum
}

// Now returns the current pointer timestamp
func (c *FrameClock) Now() time.Duration {
	return c.Stamp(c.provider.Now())
}

// Pause freezes Tick
func (c *FrameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.provider.Now()
}

// Resume continues ticking from the resume point
func (c *FrameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	now := c.provider.Now()
	c.paused = false
	c.pauseSum += now.Sub(c.pausedAt)
	c.last = now
}

// IsPaused reports the pause state
func (c *FrameClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// PauseDuration returns cumulative paused time, including a pause in progress
func (c *FrameClock) PauseDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.pauseSum
	if c.paused {
		total += c.provider.Now().Sub(c.pausedAt)
	}
	return total
}
