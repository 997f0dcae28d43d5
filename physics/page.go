package physics

import (
	"math"

	"github.com/lixenwraith/kinetic/vmath"
)

// remainderEpsilon absorbs float error in span mod size
const remainderEpsilon = 1e-6

// PageRange is the inclusive range of page indices for a finite scroll range
type PageRange struct {
	Min, Max int
}

// Count returns the number of pages
func (r PageRange) Count() int {
	return r.Max - r.Min + 1
}

// Pager resolves page-aligned rest positions over [Min, Max]
// The last page may be shorter than Size; its boundary uses the remainder
type Pager struct {
	Min, Max float64
	Size     float64
}

// Valid reports whether paging is defined
func (pg Pager) Valid() bool {
	return pg.Size > 0 && !math.IsInf(pg.Size, 0) && !math.IsNaN(pg.Size)
}

func (pg Pager) span() float64 {
	if pg.Max <= pg.Min {
		return 0
	}
	return pg.Max - pg.Min
}

// remainder returns the width of a trailing partial page, zero when the span
// is a whole number of pages
func (pg Pager) remainder() float64 {
	r := math.Mod(pg.span(), pg.Size)
	if r < remainderEpsilon || pg.Size-r < remainderEpsilon {
		return 0
	}
	return r
}

// Range returns page indices, Max counting a trailing partial page
func (pg Pager) Range() PageRange {
	if !pg.Valid() {
		return PageRange{}
	}
	return PageRange{Min: 0, Max: int(math.Ceil(vmath.RoundToPrecision(pg.span()/pg.Size, vmath.PagePrecision)))}
}

// Snap returns the rest position for a release at pos
// Above threshold (inches/second) it advances to the next boundary in the
// direction of travel, otherwise it picks the nearest boundary
func (pg Pager) Snap(pos, inchesPerSecond, threshold float64) float64 {
	if !pg.Valid() {
		return vmath.Clamp(pos, pg.Min, pg.Max)
	}
	rel := pos - pg.Min
	var snapped float64
	switch {
	case inchesPerSecond > threshold:
		snapped = vmath.RoundUpToNearest(rel, pg.Size)
	case inchesPerSecond < -threshold:
		snapped = vmath.RoundDownToNearest(rel, pg.Size)
	default:
		last := pg.remainder()
		startOfLast := pg.span() - last
		if last > 0 && rel >= startOfLast {
			snapped = startOfLast + vmath.RoundToNearest(rel-startOfLast, last)
		} else {
			snapped = vmath.RoundToNearest(rel, pg.Size)
		}
	}
	return vmath.Clamp(pg.Min+snapped, pg.Min, pg.Max)
}

// Index returns the page index for a rest position
func (pg Pager) Index(pos float64) int {
	r := pg.Range()
	if !pg.Valid() {
		return 0
	}
	if pos >= pg.Max {
		return r.Max
	}
	return vmath.ClampInt(int(math.Round((pos-pg.Min)/pg.Size)), r.Min, r.Max)
}

// Position returns the rest position of page index, clamped to the range
func (pg Pager) Position(index int) float64 {
	if !pg.Valid() {
		return pg.Min
	}
	r := pg.Range()
	index = vmath.ClampInt(index, r.Min, r.Max)
	return vmath.Clamp(pg.Min+float64(index)*pg.Size, pg.Min, pg.Max)
}
