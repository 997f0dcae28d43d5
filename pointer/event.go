package pointer

import (
	"fmt"
	"time"
)

// ID identifies one pointer (mouse or touch contact) for the duration of a press
type ID uint16

// Kind is the type of pointer event
type Kind uint8

const (
	KindNone Kind = iota
	Press
	Move
	Release
	Cancel // Pointer sequence aborted by the platform
	Scroll // Wheel or trackpad scroll, discrete steps in Event.Scroll
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Scroll:
		return "Scroll"
	default:
		return "None"
	}
}

// Point is a position in surface pixels
type Point struct {
	X, Y float64
}

// Add returns p+q
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle, Min inclusive and Max exclusive
type Rect struct {
	Min, Max Point
}

// RectWH builds a rectangle from origin and size
func RectWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{x, y}, Max: Point{x + w, y + h}}
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Dx returns the width
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Event is a single pointer sample delivered by the host
type Event struct {
	ID       ID
	Kind     Kind
	Position Point
	// Scroll holds wheel steps for Kind Scroll, positive is down/right
	Scroll Point
	// Time is the sample timestamp relative to an arbitrary host epoch
	Time time.Duration
}

func (e Event) String() string {
	return fmt.Sprintf("%s#%d(%.1f,%.1f)@%v", e.Kind, e.ID, e.Position.X, e.Position.Y, e.Time)
}
