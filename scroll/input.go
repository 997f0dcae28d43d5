package scroll

import (
	"math"
	"time"

	"github.com/lixenwraith/kinetic/vmath"
)

// Wheel scrolls by notches: positive deltas increase the position
// With paging each notch moves one page
func (s *Scroller) Wheel(dx, dy float64) {
	s.stepBy(dx, dy, s.opts.WheelStep, s.opts.WheelStep, s.opts.WheelDuration)
}

// Step scrolls by keyboard steps, the same way as Wheel
func (s *Scroller) Step(dx, dy float64) {
	s.stepBy(dx, dy, s.opts.KeyStep, s.opts.KeyStep, s.opts.KeyDuration)
}

// Page scrolls by whole viewports
func (s *Scroller) Page(dx, dy float64) {
	s.stepBy(dx, dy, s.viewport.Dx(), s.viewport.Dy(), s.opts.KeyDuration)
}

// stepBy bypasses the velocity model: the base is the running tween's target
// so repeated steps accumulate, and the result is hard-clamped into bounds
func (s *Scroller) stepBy(dx, dy, stepX, stepY float64, d time.Duration) {
	if s.dirty {
		s.Validate()
	}
	deltas := [2]float64{dx, dy}
	steps := [2]float64{stepX, stepY}
	moved := false

	for i := range s.axes {
		a := &s.axes[i]
		if deltas[i] == 0 || math.IsNaN(deltas[i]) || a.dragging || a.barDriven || a.collapsed() {
			continue
		}
		base := a.position
		if a.tween != nil {
			base = a.tween.To()
		}
		var target float64
		if s.paging(a) {
			pg := a.pager()
			target = pg.Position(pg.Index(base) + int(vmath.Sign(deltas[i])))
		} else {
			target = vmath.Clamp(base+deltas[i]*steps[i], a.min, a.max)
		}
		if target == a.position && a.tween == nil {
			continue
		}
		moved = true
		if d <= 0 {
			s.cancelTween(a)
			s.setAxis(a, target)
			continue
		}
		s.throwTo(a, target, d)
	}
	if moved {
		s.completeScroll()
	}
}

// BeginScrollbarDrag hands axis a to an external scroll bar
func (s *Scroller) BeginScrollbarDrag(a Axis) {
	ax := &s.axes[a]
	if ax.barDriven {
		return
	}
	s.cancelTween(ax)
	ax.dragging = false
	ax.barDriven = true
	s.startScroll()
	if !s.interacting {
		s.interacting = true
		s.emit(EventBeginInteraction)
	}
	s.revealBars()
}

// ScrollbarSet positions axis a from the scroll bar, clamped to bounds
func (s *Scroller) ScrollbarSet(a Axis, v float64) error {
	if math.IsNaN(v) {
		return ErrInvalidPosition
	}
	ax := &s.axes[a]
	s.setAxis(ax, vmath.Clamp(v, ax.min, ax.max))
	return nil
}

// EndScrollbarDrag returns axis a to the scroller
func (s *Scroller) EndScrollbarDrag(a Axis) {
	ax := &s.axes[a]
	if !ax.barDriven {
		return
	}
	ax.barDriven = false
	if s.interacting && !s.axes[1-a].barDriven {
		s.interacting = false
		s.emit(EventEndInteraction)
	}
	s.finishAxis(ax)
}
