package pointer

import "github.com/lixenwraith/kinetic/event"

// Filter selects which event kinds an area receives
type Filter uint8

const (
	FilterDrag   Filter = 1 << iota // Press, Move, Release, Cancel
	FilterScroll                    // Scroll (wheel)

	FilterAll = FilterDrag | FilterScroll
)

func (f Filter) accepts(k Kind) bool {
	if k == Scroll {
		return f&FilterScroll != 0
	}
	return f&FilterDrag != 0
}

// area is one subscribed hit region
type area struct {
	bounds func() Rect
	filter Filter
	fn     func(Event)
	active bool
}

// Router is the per-surface pointer dispatcher
//
// Hit testing is axis-aligned containment evaluated at Press time. Every area
// containing the press point receives the whole sequence (press, moves,
// release) even when the pointer later leaves it; overlapping recognizers
// resolve ownership through the shared Arbiter. Scroll events go to the
// topmost area accepting them. Later subscriptions are on top
type Router struct {
	areas   []*area
	grabs   map[ID][]*area
	arbiter *Arbiter
}

// NewRouter creates a router with its own arbiter
func NewRouter() *Router {
	return &Router{
		grabs:   make(map[ID][]*area),
		arbiter: NewArbiter(),
	}
}

// Arbiter returns the surface-wide claim registry
func (r *Router) Arbiter() *Arbiter {
	return r.arbiter
}

// Subscribe registers fn for events inside bounds; bounds is re-evaluated on
// each press so moving regions need no re-registration
func (r *Router) Subscribe(bounds func() Rect, filter Filter, fn func(Event)) *event.Subscription {
	a := &area{bounds: bounds, filter: filter, fn: fn, active: true}
	r.areas = append(r.areas, a)
	return event.NewSubscription(func() {
		a.active = false
		r.compact()
	})
}

// Dispatch routes one host event
func (r *Router) Dispatch(e Event) {
	switch e.Kind {
	case Press:
		// A repeated press for a live id restarts the sequence
		if prev, ok := r.grabs[e.ID]; ok {
			r.deliver(prev, Event{ID: e.ID, Kind: Cancel, Position: e.Position, Time: e.Time})
			r.arbiter.Release(e.ID)
		}
		hit := r.hitAll(e.Position, e.Kind)
		if len(hit) == 0 {
			delete(r.grabs, e.ID)
			return
		}
		r.grabs[e.ID] = hit
		r.deliver(hit, e)

	case Move:
		if hit, ok := r.grabs[e.ID]; ok {
			r.deliver(hit, e)
		}

	case Release, Cancel:
		hit, ok := r.grabs[e.ID]
		if !ok {
			return
		}
		delete(r.grabs, e.ID)
		r.deliver(hit, e)
		r.arbiter.Release(e.ID)

	case Scroll:
		for i := len(r.areas) - 1; i >= 0; i-- {
			a := r.areas[i]
			if a.active && a.filter.accepts(Scroll) && a.bounds().Contains(e.Position) {
				a.fn(e)
				return
			}
		}
	}
}

// Pressed reports whether pointer id currently has a live press sequence
func (r *Router) Pressed(id ID) bool {
	_, ok := r.grabs[id]
	return ok
}

// hitAll returns matching areas topmost first
func (r *Router) hitAll(p Point, k Kind) []*area {
	var hit []*area
	for i := len(r.areas) - 1; i >= 0; i-- {
		a := r.areas[i]
		if a.active && a.filter.accepts(k) && a.bounds().Contains(p) {
			hit = append(hit, a)
		}
	}
	return hit
}

func (r *Router) deliver(list []*area, e Event) {
	for _, a := range list {
		if a.active {
			a.fn(e)
		}
	}
}

func (r *Router) compact() {
	kept := r.areas[:0:0]
	for _, a := range r.areas {
		if a.active {
			kept = append(kept, a)
		}
	}
	r.areas = kept
}
