package pointer

import "github.com/lixenwraith/kinetic/event"

// OwnerID identifies a recognizer that may claim pointers
type OwnerID uint32

// NoOwner is never issued by NewOwner
const NoOwner OwnerID = 0

// Claim is broadcast whenever ownership of a pointer changes
// Owner is NoOwner when the claim was removed
type Claim struct {
	Pointer ID
	Owner   OwnerID
}

// Arbiter grants exclusive ownership of pointer ids to one recognizer at a time
// One arbiter exists per Router; every recognizer attached to the router
// shares it
//
// Policy: last writer wins. ClaimTouch always overwrites the current owner and
// broadcasts, so the recognizer that confirms a drag first in a frame may still
// be preempted by a sibling confirming later in the same frame
type Arbiter struct {
	claims    map[ID]OwnerID
	listeners *event.Router[struct{}, Claim]
	lastOwner OwnerID
	onClaim   func(Claim)
}

// NewArbiter creates an empty arbiter
func NewArbiter() *Arbiter {
	return &Arbiter{
		claims:    make(map[ID]OwnerID),
		listeners: event.NewRouter[struct{}, Claim](),
	}
}

// NewOwner issues a fresh claimant handle
func (a *Arbiter) NewOwner() OwnerID {
	a.lastOwner++
	return a.lastOwner
}

// Claim returns the current owner of pointer id
func (a *Arbiter) Claim(id ID) (OwnerID, bool) {
	owner, ok := a.claims[id]
	return owner, ok
}

// ClaimTouch assigns id to owner and notifies every subscriber synchronously
// Previous owners must cancel their drag state when they observe the change
func (a *Arbiter) ClaimTouch(id ID, owner OwnerID) {
	if owner == NoOwner {
		return
	}
	a.claims[id] = owner
	c := Claim{Pointer: id, Owner: owner}
	if a.onClaim != nil {
		a.onClaim(c)
	}
	a.listeners.Emit(struct{}{}, c)
}

// RemoveClaim clears the claim on id, broadcasting only if one existed
func (a *Arbiter) RemoveClaim(id ID) {
	if _, ok := a.claims[id]; !ok {
		return
	}
	delete(a.claims, id)
	a.listeners.Emit(struct{}{}, Claim{Pointer: id, Owner: NoOwner})
}

// Release is the pointer-released cleanup hook called by Router
func (a *Arbiter) Release(id ID) {
	a.RemoveClaim(id)
}

// Subscribe registers fn for every claim change
func (a *Arbiter) Subscribe(fn func(Claim)) *event.Subscription {
	return a.listeners.Subscribe(struct{}{}, fn)
}

// Len returns the number of active claims
func (a *Arbiter) Len() int {
	return len(a.claims)
}

// SetClaimHook installs an observer invoked before broadcast, used for metrics
func (a *Arbiter) SetClaimHook(fn func(Claim)) {
	a.onClaim = fn
}
