package status

import "sync/atomic"

// Metric keys shared by the scroller, drawers and arbiter
const (
	KeyThrows     = "scroll.throws"
	KeyPageSnaps  = "scroll.page_snaps"
	KeySettles    = "scroll.settles"
	KeyInterrupts = "scroll.interrupts"
	KeyClaims     = "pointer.claims"
	KeyOpens      = "drawer.opens"
	KeyCloses     = "drawer.closes"

	KeyVelocity = "scroll.velocity" // gauge, px/ms of the last release
)

// Registry is the metrics facade
// Components cache pointers at construction; the frame loop writes atomics and
// the renderer reads them from another goroutine
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter returns the counter for key; a nil registry yields a private
// throwaway counter so callers never branch on metrics being enabled
func (r *Registry) Counter(key string) *atomic.Int64 {
	if r == nil {
		return new(atomic.Int64)
	}
	return r.Counters.Get(key)
}

// Gauge returns the gauge for key, with the same nil behavior as Counter
func (r *Registry) Gauge(key string) *Gauge {
	if r == nil {
		return new(Gauge)
	}
	return r.Gauges.Get(key)
}

// Snapshot copies every counter and gauge value into one map
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Counters.Range(func(k string, c *atomic.Int64) {
		out[k] = float64(c.Load())
	})
	r.Gauges.Range(func(k string, g *Gauge) {
		out[k] = g.Get()
	})
	return out
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count()
}
