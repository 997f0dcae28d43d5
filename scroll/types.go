package scroll

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

var (
	// ErrInvalidPosition is returned when a NaN position is requested
	ErrInvalidPosition = errors.New("invalid scroll position")

	// ErrInvalidOptions is returned by Options.Validate and New
	ErrInvalidOptions = errors.New("invalid scroll options")
)

// DurationAuto derives a programmatic scroll duration from the distance
const DurationAuto time.Duration = -1

// State summarizes what currently drives the scroll position
type State uint8

const (
	StateIdle State = iota
	StateDragging
	StateAnimating
	StateScrollbarDriven
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateAnimating:
		return "animating"
	case StateScrollbarDriven:
		return "scrollbar"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Axis selects horizontal or vertical scrolling
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ScrollPolicy decides whether an axis accepts drags
type ScrollPolicy uint8

const (
	PolicyAuto ScrollPolicy = iota // Scrollable when the range is not collapsed
	PolicyOn                       // Always scrollable, drags past a collapsed range stretch elastically
	PolicyOff                      // Never scrolls by drag
)

// ScrollBarMode controls scroll bar visibility
type ScrollBarMode uint8

const (
	ScrollBarFloat ScrollBarMode = iota // Revealed while scrolling, faded out afterwards
	ScrollBarFixed                      // Always visible
)

// EventKind identifies a lifecycle notification
type EventKind uint8

const (
	EventStart            EventKind = iota // Scrolling began (drag, throw or programmatic)
	EventScroll                            // Position or bounds changed
	EventComplete                          // Scrolling came to rest
	EventBeginInteraction                  // A user drag or scroll bar drag was confirmed
	EventEndInteraction                    // The user let go
	EventPageChange                        // Page index changed at rest
)

// Event carries the state at notification time
type Event struct {
	Kind           EventKind
	X, Y           float64
	HorizontalPage int
	VerticalPage   int
}

// Extents describes the content's scrollable area in content coordinates
// The scroll range on each axis is [origin, origin + size - viewport size]
type Extents struct {
	X, Y          float64
	Width, Height float64
}

// Content is the scrolled payload; only its extents are required
type Content interface {
	Extents() Extents
}

// Validator is implemented by content that lays itself out lazily
// Validate is called before extents are read
type Validator interface {
	Validate()
}

// Clipper is implemented by content that clips to the viewport
type Clipper interface {
	SetClip(r pointer.Rect)
}

// Positioner is implemented by content that renders at an offset
// It receives the negated scroll position on every change
type Positioner interface {
	SetContentOffset(x, y float64)
}

// Options configures a Scroller
type Options struct {
	Params physics.Params
	Metric pointer.Metric

	HorizontalPolicy ScrollPolicy
	VerticalPolicy   ScrollPolicy
	ScrollBarMode    ScrollBarMode

	// MinimumDragDistance in inches before a press becomes a drag
	MinimumDragDistance float64
	// MinimumPageThrowVelocity in inches/second before a paged release advances
	MinimumPageThrowVelocity float64

	PageThrowDuration   time.Duration
	ElasticSnapDuration time.Duration

	// SnapToPages rests every release on a page boundary
	SnapToPages bool
	// PageWidth and PageHeight default to the viewport size when zero
	PageWidth  float64
	PageHeight float64

	WheelStep     float64
	WheelDuration time.Duration
	KeyStep       float64
	KeyDuration   time.Duration

	HideScrollBarDuration time.Duration
	HideScrollBarDelay    time.Duration

	// Ease shapes throws and programmatic scrolls; nil means EaseOutQuart
	Ease tween.EaseFunc

	// Logger receives lifecycle diagnostics; nil is silent
	Logger *log.Logger
	// Metrics receives throw and settle counters; nil disables them
	Metrics *status.Registry
}

// DefaultOptions returns the standard touch-scrolling configuration
func DefaultOptions() Options {
	return Options{
		Params:                   physics.DefaultParams(),
		Metric:                   pointer.Metric{PxPerInch: pointer.DefaultPxPerInch},
		MinimumDragDistance:      parameter.MinimumDragDistance,
		MinimumPageThrowVelocity: parameter.MinimumPageThrowVelocity,
		PageThrowDuration:        parameter.PageThrowDuration,
		ElasticSnapDuration:      parameter.ElasticSnapDuration,
		WheelStep:                parameter.WheelScrollStep,
		WheelDuration:            parameter.WheelScrollDuration,
		KeyStep:                  parameter.KeyScrollStep,
		KeyDuration:              parameter.KeyScrollDuration,
		HideScrollBarDuration:    parameter.HideScrollBarDuration,
		HideScrollBarDelay:       parameter.HideScrollBarDelay,
		Ease:                     tween.EaseOutQuart,
	}
}

// Validate rejects options that cannot drive the physics model
func (o Options) Validate() error {
	if err := o.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.MinimumDragDistance < 0 || o.MinimumPageThrowVelocity < 0 {
		return fmt.Errorf("%w: negative threshold", ErrInvalidOptions)
	}
	if o.PageWidth < 0 || o.PageHeight < 0 {
		return fmt.Errorf("%w: negative page size", ErrInvalidOptions)
	}
	if o.PageThrowDuration < 0 || o.ElasticSnapDuration < 0 || o.WheelDuration < 0 ||
		o.KeyDuration < 0 || o.HideScrollBarDuration < 0 || o.HideScrollBarDelay < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidOptions)
	}
	return nil
}
