package physics

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/vmath"
)

// MinimumVelocity is the px/ms speed where the exponential decay is treated as stopped
const MinimumVelocity = parameter.MinimumVelocity

// ErrInvalidParams is returned by Params.Validate
var ErrInvalidParams = errors.New("invalid physics params")

// Params holds the constants of the drag and throw model
// Velocities are px/ms in scroll direction: positive increases position
type Params struct {
	// DecelerationRate multiplies velocity every millisecond, must be in (0,1)
	DecelerationRate float64
	// Elasticity is the fraction of overscroll kept while dragging past a bound
	Elasticity float64
	// ThrowElasticity is the fraction of overscroll kept when a throw crosses a bound
	ThrowElasticity float64
	// HasElasticEdges enables overscroll; disabled edges hard-clamp
	HasElasticEdges bool
	// UseFixedThrowDuration makes every throw last FixedThrowDuration
	UseFixedThrowDuration bool
}

// Validate rejects constants that would make the logarithmic model undefined
func (p Params) Validate() error {
	if !(p.DecelerationRate > 0 && p.DecelerationRate < 1) {
		return fmt.Errorf("%w: deceleration rate %v outside (0,1)", ErrInvalidParams, p.DecelerationRate)
	}
	if p.Elasticity < 0 || p.Elasticity > 1 || math.IsNaN(p.Elasticity) {
		return fmt.Errorf("%w: elasticity %v outside [0,1]", ErrInvalidParams, p.Elasticity)
	}
	if p.ThrowElasticity < 0 || p.ThrowElasticity > 1 || math.IsNaN(p.ThrowElasticity) {
		return fmt.Errorf("%w: throw elasticity %v outside [0,1]", ErrInvalidParams, p.ThrowElasticity)
	}
	return nil
}

// Bound applies live-drag resistance to a proposed position
// Past a bound the excess is scaled by Elasticity, so resistance grows with
// distance and the output stays strictly increasing in pos
func (p Params) Bound(pos, min, max float64) float64 {
	if max <= min {
		return min
	}
	if pos < min {
		if p.HasElasticEdges {
			return pos - (pos-min)*(1-p.Elasticity)
		}
		return min
	}
	if pos > max {
		if p.HasElasticEdges {
			return pos - (pos-max)*(1-p.Elasticity)
		}
		return max
	}
	return pos
}

// Settle returns the nearest bound when pos lies outside [min, max]
func Settle(pos, min, max float64) (float64, bool) {
	if max < min {
		max = min
	}
	switch {
	case pos < min:
		return min, true
	case pos > max:
		return max, true
	default:
		return pos, false
	}
}

// seconds converts a float second count to a Duration
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// clampRange normalizes an inverted range
func clampRange(min, max float64) (float64, float64) {
	return min, vmath.Clamp(max, min, math.Inf(1))
}
