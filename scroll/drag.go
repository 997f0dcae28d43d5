package scroll

import (
	"math"

	"github.com/lixenwraith/kinetic/pointer"
)

func (s *Scroller) handlePointer(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		s.press(e)
	case pointer.Move:
		s.move(e)
	case pointer.Release:
		s.endTouch(e, true)
	case pointer.Cancel:
		s.endTouch(e, false)
	case pointer.Scroll:
		s.Wheel(e.Scroll.X, e.Scroll.Y)
	}
}

// coord returns the pointer coordinate along a
func coord(p pointer.Point, a Axis) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

func (s *Scroller) press(e pointer.Event) {
	if s.tracking {
		return
	}
	if owner, ok := s.router.Arbiter().Claim(e.ID); ok && owner != s.owner {
		return
	}

	s.tracking = true
	s.touchID = e.ID
	s.tracker.Begin(e.Position.X, e.Position.Y, e.Time)

	interrupted := false
	for i := range s.axes {
		a := &s.axes[i]
		a.touchStart = coord(e.Position, a.id)
		a.posStart = a.position
		if a.tween != nil {
			// Catching a moving list: the live position becomes the drag origin
			s.cancelTween(a)
			a.dragging = true
			interrupted = true
		}
	}
	if interrupted {
		if !s.interacting {
			s.interacting = true
			s.emit(EventBeginInteraction)
		}
		s.interrupts.Add(1)
		s.log.Printf("scroll: interrupted at %.1f,%.1f", s.axes[Horizontal].position, s.axes[Vertical].position)
		s.router.Arbiter().ClaimTouch(e.ID, s.owner)
	}
}

func (s *Scroller) move(e pointer.Event) {
	if !s.tracking || e.ID != s.touchID {
		return
	}
	s.tracker.Update(e.Position.X, e.Position.Y, e.Time)

	for i := range s.axes {
		a := &s.axes[i]
		if a.dragging || !a.scrollable() {
			continue
		}
		cur := coord(e.Position, a.id)
		if s.opts.Metric.Inches(math.Abs(cur-a.touchStart)) < s.opts.MinimumDragDistance {
			continue
		}
		s.confirmDrag(a, cur, e.ID)
		if !s.tracking {
			// A listener stopped scrolling during confirmation
			return
		}
	}

	for i := range s.axes {
		a := &s.axes[i]
		if !a.dragging {
			continue
		}
		pos := a.posStart - (coord(e.Position, a.id) - a.touchStart)
		s.setAxis(a, s.opts.Params.Bound(pos, a.min, a.max))
	}
}

// confirmDrag promotes a press to a drag on a
func (s *Scroller) confirmDrag(a *axis, cur float64, id pointer.ID) {
	a.dragging = true
	a.touchStart = cur
	a.posStart = a.position

	s.startScroll()
	if !s.interacting {
		s.interacting = true
		s.emit(EventBeginInteraction)
	}
	s.revealBars()
	if s.tracking {
		s.router.Arbiter().ClaimTouch(id, s.owner)
	}
}

// endTouch ends the tracked sequence; a pointer cancel releases with zero
// velocity
func (s *Scroller) endTouch(e pointer.Event, throw bool) {
	if !s.tracking || e.ID != s.touchID {
		return
	}
	s.tracking = false

	v := s.tracker.End()
	if !throw {
		v.X, v.Y = 0, 0
	}
	// Tracker velocity follows the pointer; scrolling runs opposite
	sv := [2]float64{-v.X, -v.Y}
	if s.axes[Vertical].dragging {
		s.velocity.Set(sv[Vertical])
	} else if s.axes[Horizontal].dragging {
		s.velocity.Set(sv[Horizontal])
	}

	if s.interacting {
		s.interacting = false
		s.emit(EventEndInteraction)
	}

	// Axes release in order while the other keeps its dragging flag so the
	// first one to settle cannot complete the scroll early
	for i := range s.axes {
		a := &s.axes[i]
		if !a.dragging {
			continue
		}
		a.dragging = false
		s.releaseAxis(a, sv[i])
	}
	s.completeScroll()
}

// handleClaim abandons the drag when another recognizer takes the pointer
func (s *Scroller) handleClaim(c pointer.Claim) {
	if !s.tracking || c.Pointer != s.touchID || c.Owner == s.owner || c.Owner == pointer.NoOwner {
		return
	}
	s.log.Printf("scroll: pointer %d claimed by %d", c.Pointer, c.Owner)
	s.tracking = false
	s.tracker.Reset()

	if s.interacting {
		s.interacting = false
		s.emit(EventEndInteraction)
	}
	for i := range s.axes {
		a := &s.axes[i]
		if !a.dragging {
			continue
		}
		a.dragging = false
		s.finishAxis(a)
	}
	s.completeScroll()
}
