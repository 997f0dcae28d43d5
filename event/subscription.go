package event

// Subscription is the handle returned by every Subscribe call in the module
// Cancel is idempotent; a nil *Subscription is a valid no-op handle
type Subscription struct {
	cancel func()
}

// NewSubscription wraps a cancel function
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Cancel removes the subscription
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	fn := s.cancel
	s.cancel = nil
	fn()
}

// Active reports whether Cancel has not been called yet
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

// Subscriptions groups handles so a component can drop all of them when it is
// re-attached to a different source
type Subscriptions []*Subscription

// Add appends handles to the group
func (g *Subscriptions) Add(subs ...*Subscription) {
	*g = append(*g, subs...)
}

// CancelAll cancels and forgets every handle in the group
func (g *Subscriptions) CancelAll() {
	for _, s := range *g {
		s.Cancel()
	}
	*g = nil
}
