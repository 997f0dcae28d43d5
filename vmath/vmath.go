package vmath

import "math"

// Precision used when snapping page ratios so 2.0000000001 pages does not become 3
const PagePrecision = 10

// --- Arithmetic ---

// Clamp restricts v to [lo, hi]; hi below lo collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Lerp interpolates between a and b by ratio t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Multiples ---

// RoundToNearest rounds x to the nearest multiple of n, n <= 0 returns x
func RoundToNearest(x, n float64) float64 {
	if n <= 0 {
		return x
	}
	return math.Round(x/n) * n
}

// RoundUpToNearest rounds x up to the next multiple of n
func RoundUpToNearest(x, n float64) float64 {
	if n <= 0 {
		return x
	}
	return math.Ceil(RoundToPrecision(x/n, PagePrecision)) * n
}

// RoundDownToNearest rounds x down to the previous multiple of n
func RoundDownToNearest(x, n float64) float64 {
	if n <= 0 {
		return x
	}
	return math.Floor(RoundToPrecision(x/n, PagePrecision)) * n
}

// RoundToPrecision rounds x to the given number of decimal places
func RoundToPrecision(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// NearlyEqual reports whether a and b differ by less than eps
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
