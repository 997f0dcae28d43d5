package drawer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/pointer"
	"github.com/lixenwraith/kinetic/status"
	"github.com/lixenwraith/kinetic/tween"
)

// ErrInvalidOptions is returned by Options.Validate and New
var ErrInvalidOptions = errors.New("invalid drawer options")

// Edge identifies the side of the surface a panel is docked to
type Edge uint8

const (
	Top Edge = iota
	Right
	Bottom
	Left

	edgeCount
)

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Edge(%d)", e)
	}
}

// horizontal reports whether the edge opens along x
func (e Edge) horizontal() bool {
	return e == Left || e == Right
}

// sign is the pointer direction that opens the edge
func (e Edge) sign() float64 {
	if e == Right || e == Bottom {
		return -1
	}
	return 1
}

// Gesture selects where an open drag may start
type Gesture uint8

const (
	GestureEdge    Gesture = iota // Within EdgeSize of the surface edge
	GestureContent                // Anywhere on the surface
	GestureNone                   // Programmatic only
)

// EventKind identifies a drawer notification
type EventKind uint8

const (
	EventOpen EventKind = iota
	EventClose
	EventBeginInteraction
	EventEndInteraction
)

// Event names the edge the notification concerns
type Event struct {
	Kind EventKind
	Edge Edge
}

// Options configures Drawers
type Options struct {
	// Params bounds the drag; the default has hard edges
	Params physics.Params
	Metric pointer.Metric

	Gesture Gesture
	// EdgeSize in inches from the surface edge for GestureEdge
	EdgeSize float64
	// MinimumDragDistance in inches before a press becomes a drag
	MinimumDragDistance float64
	// MinimumThrowVelocity in inches/second that opens or closes regardless
	// of the release position
	MinimumThrowVelocity float64
	// Duration animates open and close
	Duration time.Duration

	// CloseOnContentTap closes an open drawer when the content is tapped
	CloseOnContentTap bool

	// Ease nil means EaseOutQuart
	Ease    tween.EaseFunc
	Logger  *log.Logger
	Metrics *status.Registry
}

// DefaultOptions returns edge-gesture drawers with hard edges
func DefaultOptions() Options {
	return Options{
		Params:               physics.Rigid,
		Metric:               pointer.Metric{PxPerInch: pointer.DefaultPxPerInch},
		Gesture:              GestureEdge,
		EdgeSize:             parameter.OpenGestureEdgeSize,
		MinimumDragDistance:  parameter.MinimumDragDistance,
		MinimumThrowVelocity: parameter.MinimumDrawerThrowVelocity,
		Duration:             parameter.OpenCloseDuration,
		CloseOnContentTap:    true,
		Ease:                 tween.EaseOutQuart,
	}
}

// Validate rejects unusable options
func (o Options) Validate() error {
	if err := o.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.EdgeSize < 0 || o.MinimumDragDistance < 0 || o.MinimumThrowVelocity < 0 {
		return fmt.Errorf("%w: negative threshold", ErrInvalidOptions)
	}
	if o.Duration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidOptions)
	}
	if o.Gesture > GestureNone {
		return fmt.Errorf("%w: unknown gesture %d", ErrInvalidOptions, o.Gesture)
	}
	return nil
}
