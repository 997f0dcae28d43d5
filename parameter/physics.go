package parameter

// Momentum model
const (
	// MinimumVelocity is the px/ms speed below which a release does not throw
	MinimumVelocity = 0.02

	// DecelerationRateNormal multiplies velocity every millisecond
	DecelerationRateNormal = 0.998

	// DecelerationRateFast stops throws sooner
	DecelerationRateFast = 0.99

	// Elasticity is the fraction of overscroll kept while dragging past a bound
	Elasticity = 0.33

	// ThrowElasticity is the fraction of overscroll kept when a throw crosses a bound
	ThrowElasticity = 0.05

	// HasElasticEdges allows drags and throws past the bounds
	HasElasticEdges = true

	// UseFixedThrowDuration makes throw duration independent of velocity
	UseFixedThrowDuration = true
)
