package tween

import (
	"time"

	"github.com/lixenwraith/kinetic/vmath"
)

// State is the lifecycle phase of a tween
type State uint8

const (
	StatePending  State = iota // Created, not yet added to a driver
	StateRunning               // Advancing every frame
	StateFinished              // Reached its end value
	StateStopped               // Removed before reaching the end
)

// Tween interpolates one value from From to To over Duration
// Completion fires exactly once whether the tween runs out, is finished early
// or is stopped
type Tween struct {
	from, to float64
	duration time.Duration
	delay    time.Duration
	elapsed  time.Duration
	ease     EaseFunc

	onUpdate   func(v float64)
	onComplete func()

	value  float64
	state  State
	driver *Driver
}

// New creates a tween; a nil ease means Linear
func New(from, to float64, d time.Duration, ease EaseFunc) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{from: from, to: to, duration: d, ease: ease, value: from}
}

// OnUpdate sets the per-frame value callback
func (t *Tween) OnUpdate(fn func(v float64)) *Tween {
	t.onUpdate = fn
	return t
}

// OnComplete sets the completion callback
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// Delay postpones the start by d of advanced time
func (t *Tween) Delay(d time.Duration) *Tween {
	t.delay = d
	return t
}

// From returns the start value
func (t *Tween) From() float64 { return t.from }

// To returns the end value
func (t *Tween) To() float64 { return t.to }

// Value returns the last computed value
func (t *Tween) Value() float64 { return t.value }

// Duration returns the configured length, excluding delay
func (t *Tween) Duration() time.Duration { return t.duration }

// Elapsed returns advanced time past the delay
func (t *Tween) Elapsed() time.Duration { return t.elapsed }

// State returns the lifecycle phase
func (t *Tween) State() State { return t.state }

// Done reports whether completion has fired
func (t *Tween) Done() bool {
	return t.state == StateFinished || t.state == StateStopped
}

// Progress returns linear progress in [0,1]
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return vmath.Clamp(float64(t.elapsed)/float64(t.duration), 0, 1)
}

// Ratio returns eased progress
func (t *Tween) Ratio() float64 {
	return t.ease(t.Progress())
}

// advance moves the tween forward; called by Driver
func (t *Tween) advance(dt time.Duration) {
	if t.state != StateRunning {
		return
	}
	if t.delay > 0 {
		if dt <= t.delay {
			t.delay -= dt
			return
		}
		dt -= t.delay
		t.delay = 0
	}

	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.Finish()
		return
	}

	t.value = vmath.Lerp(t.from, t.to, t.Ratio())
	if t.onUpdate != nil {
		t.onUpdate(t.value)
	}
}

// Finish jumps to the end value, publishes it and completes
// The update callback may stop the tween; completion still fires once
func (t *Tween) Finish() {
	if t.Done() {
		return
	}
	t.elapsed = t.duration
	t.value = t.to
	if t.onUpdate != nil {
		t.onUpdate(t.value)
		if t.Done() {
			return
		}
	}
	t.complete(StateFinished)
}

// Stop completes the tween at its current value
func (t *Tween) Stop() {
	if t.Done() {
		return
	}
	t.complete(StateStopped)
}

// complete marks the terminal state before calling back so the callback may
// safely touch the tween or its driver
func (t *Tween) complete(s State) {
	t.state = s
	if t.driver != nil {
		t.driver.remove(t)
	}
	if t.onComplete != nil {
		t.onComplete()
	}
}
