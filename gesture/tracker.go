package gesture

import "time"

// Release velocity weighting: the final instantaneous velocity dominates while
// the retained history damps single-sample spikes
const (
	HistorySize   = 4
	CurrentWeight = 2.33
)

// HistoryWeights apply from the oldest retained velocity to the newest
var HistoryWeights = [HistorySize]float64{1, 1.33, 1.66, 2}

// Sample is one pointer position at a host timestamp
type Sample struct {
	X, Y float64
	Time time.Duration
}

// Velocity is expressed in px/ms along each axis, in pointer direction
type Velocity struct {
	X, Y float64
}

// Tracker derives instantaneous and smoothed velocity from drag samples
// Owned by a single recognizer for the duration of one drag
type Tracker struct {
	last     Sample
	velocity Velocity
	measured bool // velocity holds a real measurement, not the Begin zero

	history [HistorySize]Velocity
	count   int // valid entries in history
	head    int // index of the oldest entry
}

// Begin resets state and records the starting sample
func (t *Tracker) Begin(x, y float64, at time.Duration) {
	t.Reset()
	t.last = Sample{X: x, Y: y, Time: at}
}

// Update records a move sample; samples with no elapsed time are ignored
func (t *Tracker) Update(x, y float64, at time.Duration) {
	dt := at - t.last.Time
	if dt <= 0 {
		return
	}
	if t.measured {
		t.push(t.velocity)
	}
	ms := float64(dt) / float64(time.Millisecond)
	t.velocity = Velocity{
		X: (x - t.last.X) / ms,
		Y: (y - t.last.Y) / ms,
	}
	t.measured = true
	t.last = Sample{X: x, Y: y, Time: at}
}

// Velocity returns the latest instantaneous velocity
func (t *Tracker) Velocity() Velocity {
	return t.velocity
}

// Last returns the most recent accepted sample
func (t *Tracker) Last() Sample {
	return t.last
}

// History returns retained velocities, oldest first
func (t *Tracker) History() []Velocity {
	out := make([]Velocity, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.history[(t.head+i)%HistorySize]
	}
	return out
}

// End returns the weighted release velocity and clears the history
func (t *Tracker) End() Velocity {
	sumX := t.velocity.X * CurrentWeight
	sumY := t.velocity.Y * CurrentWeight
	total := CurrentWeight
	for i := 0; i < t.count; i++ {
		v := t.history[(t.head+i)%HistorySize]
		w := HistoryWeights[i]
		sumX += v.X * w
		sumY += v.Y * w
		total += w
	}
	t.count, t.head = 0, 0
	return Velocity{X: sumX / total, Y: sumY / total}
}

// Reset zeroes velocity and history
func (t *Tracker) Reset() {
	t.velocity = Velocity{}
	t.measured = false
	t.count, t.head = 0, 0
}

// push appends v, evicting the oldest entry when full
func (t *Tracker) push(v Velocity) {
	if t.count < HistorySize {
		t.history[(t.head+t.count)%HistorySize] = v
		t.count++
		return
	}
	t.history[t.head] = v
	t.head = (t.head + 1) % HistorySize
}
