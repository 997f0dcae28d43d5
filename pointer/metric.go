package pointer

// DefaultPxPerInch is the density assumed when the host reports none
const DefaultPxPerInch = 160

// Metric converts surface pixels to device-independent inches
// Drag thresholds and throw velocities are expressed in inches so a gesture
// feels the same on dense and sparse displays
type Metric struct {
	PxPerInch float64
}

// Inches converts a pixel distance
func (m Metric) Inches(px float64) float64 {
	return px / m.density()
}

// Px converts an inch distance to pixels
func (m Metric) Px(in float64) float64 {
	return in * m.density()
}

// InchesPerSecond converts a velocity in px/ms
func (m Metric) InchesPerSecond(pxPerMs float64) float64 {
	return 1000 * pxPerMs / m.density()
}

func (m Metric) density() float64 {
	if m.PxPerInch <= 0 {
		return DefaultPxPerInch
	}
	return m.PxPerInch
}
