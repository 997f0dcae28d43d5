package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/kinetic/vmath"
)

// ThrowPlan configures one throw animation
type ThrowPlan struct {
	Start    float64
	Target   float64
	Duration time.Duration
	// EndRatio is the eased progress at which the animation is cut short
	// because it crosses a bound; a settle animation takes over from there
	EndRatio float64
}

// Stop returns the position where the visual throw ends
func (tp ThrowPlan) Stop() float64 {
	return tp.Start + (tp.Target-tp.Start)*tp.EndRatio
}

// Overshoots reports whether the plan needs a second settle phase
func (tp ThrowPlan) Overshoots() bool {
	return tp.EndRatio < 1
}

// logRate is negative for any validated rate
func (p Params) logRate() float64 {
	return math.Log(p.DecelerationRate)
}

// ThrowDistance integrates v(t) = v·rᵗ until the speed decays to
// MinimumVelocity: (v - sign(v)·min) / -ln r, same sign as v
func (p Params) ThrowDistance(v float64) float64 {
	if math.Abs(v) <= MinimumVelocity {
		return 0
	}
	return (v - vmath.Sign(v)*MinimumVelocity) / -p.logRate()
}

// FixedThrowDuration mimics native inertial scrolling where throw length does
// not depend on speed: -0.1 / ln(r^(1000/60)) seconds
func (p Params) FixedThrowDuration() time.Duration {
	return seconds(-0.1 / math.Log(math.Pow(p.DecelerationRate, 1000.0/60)))
}

// DynamicThrowDuration is the time for speed v to decay to MinimumVelocity
func (p Params) DynamicThrowDuration(v float64) time.Duration {
	av := math.Abs(v)
	if av <= MinimumVelocity {
		return 0
	}
	return seconds(math.Log(MinimumVelocity/av) / p.logRate() / 1000)
}

// ThrowDuration selects fixed or dynamic duration
func (p Params) ThrowDuration(v float64) time.Duration {
	if p.UseFixedThrowDuration {
		return p.FixedThrowDuration()
	}
	return p.DynamicThrowDuration(v)
}

// DurationForDistance inverts the distance model for programmatic scrolls with
// automatic duration
func (p Params) DurationForDistance(d float64) time.Duration {
	if d == 0 {
		return 0
	}
	if p.UseFixedThrowDuration {
		return p.FixedThrowDuration()
	}
	v := math.Abs(d)*-p.logRate() + MinimumVelocity
	return p.DynamicThrowDuration(v)
}

// Throw plans a release at velocity v from pos
// Returns false when no throw is needed: speed below MinimumVelocity or a
// collapsed range; callers settle instead
func (p Params) Throw(v, pos, min, max float64) (ThrowPlan, bool) {
	min, max = clampRange(min, max)
	if max == min || math.Abs(v) <= MinimumVelocity {
		return ThrowPlan{}, false
	}
	target := pos + p.ThrowDistance(v)
	return ThrowPlan{
		Start:    pos,
		Target:   target,
		Duration: p.ThrowDuration(v),
		EndRatio: p.EndRatio(pos, target, min, max),
	}, true
}

// Tween plans an animated move to an explicit target over d
func (p Params) Tween(pos, target float64, d time.Duration, min, max float64) ThrowPlan {
	min, max = clampRange(min, max)
	return ThrowPlan{
		Start:    pos,
		Target:   target,
		Duration: d,
		EndRatio: p.EndRatio(pos, target, min, max),
	}
}

// EndRatio computes the eased progress where a throw toward target leaves
// [min, max], adjusted by ThrowElasticity when edges are elastic
func (p Params) EndRatio(start, target, min, max float64) float64 {
	distance := math.Abs(target - start)
	if distance == 0 {
		return 1
	}
	var out float64
	switch {
	case target > max:
		out = (target - max) / distance
	case target < min:
		out = (min - target) / distance
	}
	if out <= 0 {
		return 1
	}
	out = vmath.Clamp(out, 0, 1)
	if p.HasElasticEdges {
		return (1 - out) + out*p.ThrowElasticity
	}
	return 1 - out
}
