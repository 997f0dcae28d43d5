package physics

import "github.com/lixenwraith/kinetic/parameter"

// Param profiles - pre-defined so components share one set of constants

// Normal is the default touch-scrolling feel
var Normal = Params{
	DecelerationRate:      parameter.DecelerationRateNormal,
	Elasticity:            parameter.Elasticity,
	ThrowElasticity:       parameter.ThrowElasticity,
	HasElasticEdges:       parameter.HasElasticEdges,
	UseFixedThrowDuration: parameter.UseFixedThrowDuration,
}

// Fast decelerates quickly, for short lists and pickers
var Fast = Params{
	DecelerationRate:      parameter.DecelerationRateFast,
	Elasticity:            parameter.Elasticity,
	ThrowElasticity:       parameter.ThrowElasticity,
	HasElasticEdges:       parameter.HasElasticEdges,
	UseFixedThrowDuration: parameter.UseFixedThrowDuration,
}

// Rigid has hard edges, used by drawers
var Rigid = Params{
	DecelerationRate:      parameter.DecelerationRateNormal,
	Elasticity:            parameter.Elasticity,
	ThrowElasticity:       parameter.ThrowElasticity,
	HasElasticEdges:       false,
	UseFixedThrowDuration: parameter.UseFixedThrowDuration,
}

// DefaultParams returns a copy of Normal
func DefaultParams() Params {
	return Normal
}
