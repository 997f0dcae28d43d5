package event

// Router dispatches events of type E to handlers subscribed for a kind K
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can subscribe to the same kind
//   - Handlers are invoked in subscription order
//   - Handlers may subscribe or cancel during dispatch; changes apply to the next Emit
type Router[K comparable, E any] struct {
	handlers map[K][]*entry[E]
	dirty    map[K]bool
}

type entry[E any] struct {
	fn     func(E)
	active bool
}

// NewRouter creates an empty router
func NewRouter[K comparable, E any]() *Router[K, E] {
	return &Router[K, E]{
		handlers: make(map[K][]*entry[E]),
		dirty:    make(map[K]bool),
	}
}

// Subscribe registers fn for kind and returns the handle that removes it
func (r *Router[K, E]) Subscribe(kind K, fn func(E)) *Subscription {
	e := &entry[E]{fn: fn, active: true}
	r.handlers[kind] = append(r.handlers[kind], e)
	return NewSubscription(func() {
		e.active = false
		r.dirty[kind] = true
	})
}

// Emit delivers ev to every active handler of kind
func (r *Router[K, E]) Emit(kind K, ev E) {
	if r.dirty[kind] {
		r.compact(kind)
	}
	// Snapshot: handlers added during dispatch wait for the next Emit
	list := r.handlers[kind]
	for _, e := range list {
		if e.active {
			e.fn(ev)
		}
	}
}

// HandlerCount returns the number of active handlers for kind
func (r *Router[K, E]) HandlerCount(kind K) int {
	n := 0
	for _, e := range r.handlers[kind] {
		if e.active {
			n++
		}
	}
	return n
}

// HasHandlers returns true if any handler is subscribed for kind
func (r *Router[K, E]) HasHandlers(kind K) bool {
	return r.HandlerCount(kind) > 0
}

func (r *Router[K, E]) compact(kind K) {
	list := r.handlers[kind]
	kept := make([]*entry[E], 0, len(list))
	for _, e := range list {
		if e.active {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(r.handlers, kind)
	} else {
		r.handlers[kind] = kept
	}
	delete(r.dirty, kind)
}
