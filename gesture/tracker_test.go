package gesture

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const ms = time.Millisecond

func TestTrackerWeightedRelease(t *testing.T) {
	var tr Tracker
	tr.Begin(0, 0, 0)
	tr.Update(10, 0, 10*ms) // v=1
	tr.Update(30, 0, 20*ms) // v=2
	tr.Update(60, 0, 30*ms) // v=3

	got := tr.End()
	want := (3*CurrentWeight + 1*1 + 2*1.33) / (CurrentWeight + 1 + 1.33)
	if math.Abs(got.X-want) > 1e-9 {
		t.Errorf("Expected smoothed velocity %v, got %v", want, got.X)
	}
	if got.Y != 0 {
		t.Errorf("Expected zero Y velocity, got %v", got.Y)
	}
}

func TestTrackerIgnoresZeroDelta(t *testing.T) {
	var tr Tracker
	tr.Begin(0, 0, 5*ms)
	tr.Update(100, 100, 5*ms)

	if v := tr.Velocity(); v != (Velocity{}) {
		t.Errorf("Expected zero velocity for dt=0 sample, got %+v", v)
	}
	if last := tr.Last(); last.X != 0 {
		t.Errorf("Expected dt=0 sample to be discarded, got last %+v", last)
	}

	tr.Update(10, 0, 15*ms)
	if v := tr.Velocity(); v.X != 1 {
		t.Errorf("Expected v=1 from original origin, got %v", v.X)
	}
}

func TestTrackerHistoryEvictsOldest(t *testing.T) {
	var tr Tracker
	tr.Begin(0, 0, 0)
	x := 0.0
	for i := 1; i <= 6; i++ {
		x += float64(i) * 10
		tr.Update(x, 0, time.Duration(i)*10*ms)
	}

	var got []float64
	for _, v := range tr.History() {
		got = append(got, v.X)
	}
	if diff := cmp.Diff([]float64{2, 3, 4, 5}, got); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
	if v := tr.Velocity(); v.X != 6 {
		t.Errorf("Expected current velocity 6, got %v", v.X)
	}
}

// TestTrackerSmoothingWithinInputRange checks the weighted average never leaves
// the range of instantaneous velocities fed into it
func TestTrackerSmoothingWithinInputRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		var tr Tracker
		tr.Begin(0, 0, 0)

		x, at := 0.0, time.Duration(0)
		lo, hi := math.Inf(1), math.Inf(-1)
		n := 1 + rng.Intn(10)
		for i := 0; i < n; i++ {
			dt := time.Duration(1+rng.Intn(30)) * ms
			dx := rng.Float64()*200 - 100
			x += dx
			at += dt
			tr.Update(x, 0, at)
			v := tr.Velocity().X
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}

		got := tr.End().X
		if got < lo-1e-9 || got > hi+1e-9 {
			t.Fatalf("Trial %d: smoothed %v outside [%v, %v]", trial, got, lo, hi)
		}
	}
}

func TestTrackerBeginResets(t *testing.T) {
	var tr Tracker
	tr.Begin(0, 0, 0)
	tr.Update(50, 50, 10*ms)
	tr.Update(100, 100, 20*ms)

	tr.Begin(0, 0, 100*ms)
	if len(tr.History()) != 0 {
		t.Errorf("Expected empty history after Begin, got %d", len(tr.History()))
	}
	if v := tr.End(); v != (Velocity{}) {
		t.Errorf("Expected zero release velocity, got %+v", v)
	}
}
