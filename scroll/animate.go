package scroll

import (
	"math"
	"time"

	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/tween"
	"github.com/lixenwraith/kinetic/vmath"
)

// snapTolerance is the distance in px where a settle jumps instead of animating
const snapTolerance = 1.0

// cancelTween detaches and stops the axis tween, keeping the live position
func (s *Scroller) cancelTween(a *axis) {
	if a.tween == nil {
		return
	}
	t := a.tween
	a.tween = nil
	t.Stop()
}

// replaceTween finalizes a running tween before a new one takes the axis
// The axis jumps to the tween end value, then the detached tween completes
// exactly once and is ignored from then on
func (s *Scroller) replaceTween(a *axis) {
	if a.tween == nil {
		return
	}
	t := a.tween
	a.tween = nil
	end := t.To()
	if a.plan.Overshoots() && !s.opts.Params.HasElasticEdges {
		end = vmath.Clamp(end, a.min, a.max)
	}
	s.setAxis(a, end)
	t.Finish()
}

// releaseAxis throws or snaps one axis at scroll-direction velocity v in px/ms
func (s *Scroller) releaseAxis(a *axis, v float64) {
	if a.collapsed() {
		s.setAxis(a, a.min)
		s.finishAxis(a)
		return
	}

	if s.paging(a) {
		ips := s.opts.Metric.InchesPerSecond(v)
		target := a.pager().Snap(a.position, ips, s.opts.MinimumPageThrowVelocity)
		s.pageSnaps.Add(1)
		s.log.Printf("scroll: page snap %s v=%.3f target=%.1f", a.id, v, target)
		if target == a.position {
			s.finishAxis(a)
			return
		}
		s.throwTo(a, target, s.opts.PageThrowDuration)
		return
	}

	plan, ok := s.opts.Params.Throw(v, a.position, a.min, a.max)
	if !ok {
		s.finishAxis(a)
		return
	}
	s.throws.Add(1)
	s.log.Printf("scroll: throw %s v=%.3f target=%.1f end=%.3f", a.id, v, plan.Target, plan.EndRatio)
	s.startPlan(a, plan)
}

// throwTo animates a to target over d
func (s *Scroller) throwTo(a *axis, target float64, d time.Duration) {
	s.replaceTween(a)
	s.startPlan(a, s.opts.Params.Tween(a.position, target, d, a.min, a.max))
}

// startPlan runs plan on a; the tween is cut at the plan's end ratio and a
// settle animation takes over
func (s *Scroller) startPlan(a *axis, plan physics.ThrowPlan) {
	s.replaceTween(a)
	s.startScroll()

	a.plan = plan
	var t *tween.Tween
	t = tween.New(plan.Start, plan.Target, plan.Duration, s.opts.Ease).
		OnUpdate(func(v float64) {
			if a.tween != t {
				return
			}
			if plan.Overshoots() && t.Ratio() >= plan.EndRatio {
				if !s.opts.Params.HasElasticEdges {
					v = vmath.Clamp(v, a.min, a.max)
				}
				s.setAxis(a, v)
				a.tween = nil
				t.Stop()
				s.finishAxis(a)
				return
			}
			s.setAxis(a, v)
		}).
		OnComplete(func() {
			if a.tween != t {
				return
			}
			a.tween = nil
			s.finishAxis(a)
		})
	a.tween = t
	s.driver.Add(t)
}

// finishAxis returns a into bounds, or onto a page boundary when paging, then
// completes the scroll when nothing else is moving
func (s *Scroller) finishAxis(a *axis) {
	if a.busy() {
		return
	}
	target, out := physics.Settle(a.position, a.min, a.max)
	if !out && s.paging(a) && !a.collapsed() {
		target = a.pager().Snap(a.position, 0, s.opts.MinimumPageThrowVelocity)
	}

	if target != a.position {
		if math.Abs(target-a.position) <= snapTolerance || s.opts.ElasticSnapDuration == 0 {
			s.setAxis(a, target)
		} else {
			s.settles.Add(1)
			s.throwTo(a, target, s.opts.ElasticSnapDuration)
			return
		}
	}
	s.completeScroll()
}

// startScroll marks the beginning of a scroll run
func (s *Scroller) startScroll() {
	if s.scrolling {
		return
	}
	s.scrolling = true
	s.revealBars()
	s.emit(EventStart)
}

// completeScroll emits EventComplete once every axis is at rest, validating a
// dirty scroller first so listeners observe final bounds
func (s *Scroller) completeScroll() {
	if !s.scrolling {
		return
	}
	for i := range s.axes {
		if s.axes[i].busy() {
			return
		}
	}
	if s.dirty {
		s.Validate()
		// Validation may have started a pending scroll
		for i := range s.axes {
			if s.axes[i].busy() {
				return
			}
		}
		if !s.scrolling {
			return
		}
	}

	s.scrolling = false
	s.hideBars()
	s.updatePages()
	s.log.Printf("scroll: complete at %.1f,%.1f", s.axes[Horizontal].position, s.axes[Vertical].position)
	s.emit(EventComplete)
}

// revealBars shows floating scroll bars at full opacity
func (s *Scroller) revealBars() {
	if s.opts.ScrollBarMode != ScrollBarFloat {
		return
	}
	for i := range s.axes {
		a := &s.axes[i]
		if a.barTween != nil {
			s.driver.Remove(a.barTween)
			a.barTween = nil
		}
		a.barAlpha = 1
	}
}

// hideBars fades floating scroll bars after the configured delay
func (s *Scroller) hideBars() {
	if s.opts.ScrollBarMode != ScrollBarFloat {
		return
	}
	for i := range s.axes {
		a := &s.axes[i]
		if a.barAlpha == 0 || a.barTween != nil {
			continue
		}
		if s.opts.HideScrollBarDuration == 0 && s.opts.HideScrollBarDelay == 0 {
			a.barAlpha = 0
			continue
		}
		var t *tween.Tween
		t = tween.New(a.barAlpha, 0, s.opts.HideScrollBarDuration, tween.Linear).
			Delay(s.opts.HideScrollBarDelay).
			OnUpdate(func(v float64) {
				if a.barTween == t {
					a.barAlpha = v
				}
			}).
			OnComplete(func() {
				if a.barTween == t {
					a.barTween = nil
				}
			})
		a.barTween = t
		s.driver.Add(t)
	}
}
