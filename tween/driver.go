package tween

import (
	"time"

	"github.com/lixenwraith/kinetic/event"
)

// Driver advances every running tween by the frame delta supplied by the host
// clock. Frame hooks run before tweens so components can validate layout first
type Driver struct {
	tweens []*Tween
	frames *event.Router[struct{}, time.Duration]
	now    time.Duration
}

// NewDriver creates an idle driver
func NewDriver() *Driver {
	return &Driver{frames: event.NewRouter[struct{}, time.Duration]()}
}

// Add starts t; adding a running or completed tween is a no-op
func (d *Driver) Add(t *Tween) *Tween {
	if t.state != StatePending {
		return t
	}
	t.state = StateRunning
	t.driver = d
	t.value = t.from
	d.tweens = append(d.tweens, t)
	return t
}

// Remove detaches t without firing completion
func (d *Driver) Remove(t *Tween) {
	if t.driver != d {
		return
	}
	d.remove(t)
	if t.state == StateRunning {
		t.state = StateStopped
	}
}

func (d *Driver) remove(t *Tween) {
	for i, cur := range d.tweens {
		if cur == t {
			d.tweens = append(d.tweens[:i], d.tweens[i+1:]...)
			break
		}
	}
	t.driver = nil
}

// OnFrame registers fn to run at the start of every Advance
func (d *Driver) OnFrame(fn func(dt time.Duration)) *event.Subscription {
	return d.frames.Subscribe(struct{}{}, fn)
}

// Advance runs frame hooks, then moves each tween by dt
// Tweens added during this frame start on the next one
func (d *Driver) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	d.now += dt
	d.frames.Emit(struct{}{}, dt)

	snapshot := make([]*Tween, len(d.tweens))
	copy(snapshot, d.tweens)
	for _, t := range snapshot {
		if t.driver == d {
			t.advance(dt)
		}
	}
}

// Len returns the number of running tweens
func (d *Driver) Len() int {
	return len(d.tweens)
}

// Now returns the total advanced time
func (d *Driver) Now() time.Duration {
	return d.now
}
