package tween

// EaseFunc maps linear progress in [0,1] to eased progress
type EaseFunc func(ratio float64) float64

// Linear applies no easing
func Linear(r float64) float64 { return r }

// EaseOutQuart decelerates sharply, the default throw curve
func EaseOutQuart(r float64) float64 {
	r--
	return 1 - r*r*r*r
}

// EaseOutCubic decelerates gently
func EaseOutCubic(r float64) float64 {
	r--
	return r*r*r + 1
}

// EaseInOutQuad accelerates then decelerates
func EaseInOutQuad(r float64) float64 {
	if r < 0.5 {
		return 2 * r * r
	}
	r = -2*r + 2
	return 1 - r*r/2
}

// EaseByName resolves config names; unknown names fall back to EaseOutQuart
func EaseByName(name string) EaseFunc {
	switch name {
	case "linear":
		return Linear
	case "out-cubic":
		return EaseOutCubic
	case "in-out-quad":
		return EaseInOutQuad
	default:
		return EaseOutQuart
	}
}
