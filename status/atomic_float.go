package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 stored as bits for lock-free access
// Zero value reads 0.0
type Gauge struct {
	bits atomic.Uint64
	peak atomic.Uint64 // largest magnitude observed, as bits
}

// Set stores val and tracks the peak magnitude
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
	abs := math.Abs(val)
	for {
		old := g.peak.Load()
		if abs <= math.Float64frombits(old) {
			return
		}
		if g.peak.CompareAndSwap(old, math.Float64bits(abs)) {
			return
		}
	}
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Peak returns the largest magnitude set since creation or ResetPeak
func (g *Gauge) Peak() float64 {
	return math.Float64frombits(g.peak.Load())
}

// ResetPeak clears the peak
func (g *Gauge) ResetPeak() {
	g.peak.Store(0)
}
