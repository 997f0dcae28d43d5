package scroll

import (
	"io"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/kinetic/event"
	"github.com/lixenwraith/kinetic/gesture"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/pointer"
	"github.com/lixenwraith/kinetic/status"
	"github.com/lixenwraith/kinetic/tween"
	"github.com/lixenwraith/kinetic/vmath"
)

// axis is the per-direction scroll state
type axis struct {
	id       Axis
	policy   ScrollPolicy
	position float64
	min, max float64

	dragging   bool
	touchStart float64 // pointer coordinate at drag origin
	posStart   float64 // position at drag origin

	tween *tween.Tween
	plan  physics.ThrowPlan

	page      int
	pageRange physics.PageRange
	pageSize  float64

	barDriven bool
	barAlpha  float64
	barTween  *tween.Tween
}

func (a *axis) collapsed() bool {
	return a.max <= a.min
}

func (a *axis) scrollable() bool {
	switch a.policy {
	case PolicyOn:
		return true
	case PolicyOff:
		return false
	default:
		return !a.collapsed()
	}
}

func (a *axis) busy() bool {
	return a.dragging || a.barDriven || a.tween != nil
}

// request is a programmatic scroll waiting for the next validation
type request struct {
	pages    bool
	x, y     float64
	h, v     int
	duration time.Duration
}

// Scroller turns pointer, wheel and programmatic input into a kinetic,
// elastically bounded scroll position on two axes
//
// All methods must be called from the frame loop goroutine, the same one that
// dispatches pointer events and advances the tween driver
type Scroller struct {
	opts    Options
	content Content
	driver  *tween.Driver
	router  *pointer.Router
	owner   pointer.OwnerID
	log     *log.Logger

	subs   event.Subscriptions
	frame  *event.Subscription
	events *event.Router[EventKind, Event]

	viewport pointer.Rect
	axes     [2]axis

	tracker  gesture.Tracker
	touchID  pointer.ID
	tracking bool

	scrolling   bool
	interacting bool
	dirty       bool
	pending     *request
	closed      bool

	throws     *atomic.Int64
	pageSnaps  *atomic.Int64
	settles    *atomic.Int64
	interrupts *atomic.Int64
	velocity   *status.Gauge
}

// New creates a scroller attached to router and driven by driver
func New(router *pointer.Router, driver *tween.Driver, content Content, opts Options) (*Scroller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Ease == nil {
		opts.Ease = tween.EaseOutQuart
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Scroller{
		opts:       opts,
		content:    content,
		driver:     driver,
		log:        logger,
		events:     event.NewRouter[EventKind, Event](),
		dirty:      true,
		throws:     opts.Metrics.Counter(status.KeyThrows),
		pageSnaps:  opts.Metrics.Counter(status.KeyPageSnaps),
		settles:    opts.Metrics.Counter(status.KeySettles),
		interrupts: opts.Metrics.Counter(status.KeyInterrupts),
		velocity:   opts.Metrics.Gauge(status.KeyVelocity),
	}
	s.axes[Horizontal] = axis{id: Horizontal, policy: opts.HorizontalPolicy}
	s.axes[Vertical] = axis{id: Vertical, policy: opts.VerticalPolicy}
	if opts.ScrollBarMode == ScrollBarFixed {
		s.axes[Horizontal].barAlpha, s.axes[Vertical].barAlpha = 1, 1
	}

	s.frame = driver.OnFrame(func(time.Duration) {
		if s.dirty {
			s.Validate()
		}
	})
	s.Attach(router)
	return s, nil
}

// Attach moves pointer handling to router, dropping every handle held on the
// previous one. A drag in progress is abandoned
func (s *Scroller) Attach(router *pointer.Router) {
	s.subs.CancelAll()
	s.tracking = false
	s.router = router
	if router == nil {
		return
	}
	s.owner = router.Arbiter().NewOwner()
	s.subs.Add(
		router.Subscribe(s.Viewport, pointer.FilterAll, s.handlePointer),
		router.Arbiter().Subscribe(s.handleClaim),
	)
}

// Close releases every subscription and stops animations without events
func (s *Scroller) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.subs.CancelAll()
	s.frame.Cancel()
	for i := range s.axes {
		a := &s.axes[i]
		if a.tween != nil {
			t := a.tween
			a.tween = nil
			s.driver.Remove(t)
		}
		if a.barTween != nil {
			s.driver.Remove(a.barTween)
			a.barTween = nil
		}
	}
}

// On subscribes fn to lifecycle events of kind
func (s *Scroller) On(kind EventKind, fn func(Event)) *event.Subscription {
	return s.events.Subscribe(kind, fn)
}

// SetViewport sets the visible region in surface coordinates
func (s *Scroller) SetViewport(r pointer.Rect) {
	if r == s.viewport {
		return
	}
	s.viewport = r
	s.Invalidate()
}

// Viewport returns the visible region
func (s *Scroller) Viewport() pointer.Rect {
	return s.viewport
}

// Invalidate schedules validation on the next frame
func (s *Scroller) Invalidate() {
	s.dirty = true
}

// Validate pulls content extents, recomputes bounds and page ranges, and
// processes a pending programmatic scroll
func (s *Scroller) Validate() {
	s.dirty = false
	if v, ok := s.content.(Validator); ok {
		v.Validate()
	}
	var ext Extents
	if s.content != nil {
		ext = s.content.Extents()
	}

	boundsChanged, moved := false, false
	sizes := [2]float64{s.viewport.Dx(), s.viewport.Dy()}
	origins := [2]float64{ext.X, ext.Y}
	extents := [2]float64{ext.Width, ext.Height}
	pageSizes := [2]float64{s.opts.PageWidth, s.opts.PageHeight}

	for i := range s.axes {
		a := &s.axes[i]
		min := origins[i]
		max := math.Max(min, min+extents[i]-sizes[i])
		changed := min != a.min || max != a.max
		if changed {
			boundsChanged = true
		}
		a.min, a.max = min, max

		a.pageSize = pageSizes[i]
		if a.pageSize == 0 {
			a.pageSize = sizes[i]
		}
		a.pageRange = a.pager().Range()

		if changed && !a.busy() {
			if p := vmath.Clamp(a.position, a.min, a.max); p != a.position {
				a.position = p
				moved = true
			}
		}
	}

	if c, ok := s.content.(Clipper); ok {
		c.SetClip(s.viewport)
	}
	if moved {
		s.publishOffset()
	}
	if boundsChanged || moved {
		s.emit(EventScroll)
	}
	if !s.scrolling {
		s.updatePages()
	}

	if r := s.pending; r != nil {
		s.pending = nil
		s.process(r)
	}
}

// Position returns the current scroll position
func (s *Scroller) Position() (x, y float64) {
	return s.axes[Horizontal].position, s.axes[Vertical].position
}

// Bounds returns the scroll range of a
func (s *Scroller) Bounds(a Axis) (min, max float64) {
	return s.axes[a].min, s.axes[a].max
}

// SetPosition moves both axes immediately without clamping
func (s *Scroller) SetPosition(x, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) {
		return ErrInvalidPosition
	}
	s.setPositions(x, y, true, true)
	return nil
}

// SetHorizontalPosition moves the horizontal axis immediately without clamping
func (s *Scroller) SetHorizontalPosition(x float64) error {
	if math.IsNaN(x) {
		return ErrInvalidPosition
	}
	s.setPositions(x, 0, true, false)
	return nil
}

// SetVerticalPosition moves the vertical axis immediately without clamping
func (s *Scroller) SetVerticalPosition(y float64) error {
	if math.IsNaN(y) {
		return ErrInvalidPosition
	}
	s.setPositions(0, y, false, true)
	return nil
}

func (s *Scroller) setPositions(x, y float64, h, v bool) {
	changed := false
	if h && s.axes[Horizontal].position != x {
		s.axes[Horizontal].position = x
		changed = true
	}
	if v && s.axes[Vertical].position != y {
		s.axes[Vertical].position = y
		changed = true
	}
	if !changed {
		return
	}
	s.publishOffset()
	s.emit(EventScroll)
	if !s.scrolling {
		s.updatePages()
	}
}

// ScrollToPosition animates to (x, y) clamped to bounds; d of zero jumps and
// DurationAuto derives the duration from the distance. The request runs on the
// next validation and replaces any pending one
func (s *Scroller) ScrollToPosition(x, y float64, d time.Duration) error {
	if math.IsNaN(x) || math.IsNaN(y) {
		return ErrInvalidPosition
	}
	s.pending = &request{x: x, y: y, duration: d}
	s.Invalidate()
	return nil
}

// ScrollToPageIndex animates to page indices; axes without paging keep their
// position. Replaces any pending request
func (s *Scroller) ScrollToPageIndex(h, v int, d time.Duration) {
	s.pending = &request{pages: true, h: h, v: v, duration: d}
	s.Invalidate()
}

func (s *Scroller) process(r *request) {
	targets := [2]float64{r.x, r.y}
	if r.pages {
		idx := [2]int{r.h, r.v}
		for i := range s.axes {
			a := &s.axes[i]
			if s.paging(a) {
				targets[i] = a.pager().Position(idx[i])
			} else {
				targets[i] = a.position
			}
		}
	}

	for i := range s.axes {
		a := &s.axes[i]
		if a.dragging || a.barDriven {
			continue
		}
		target := vmath.Clamp(targets[i], a.min, a.max)
		d := r.duration
		if d == DurationAuto {
			d = s.opts.Params.DurationForDistance(target - a.position)
		}
		if d <= 0 {
			s.cancelTween(a)
			s.setAxis(a, target)
			continue
		}
		if target != a.position {
			s.throwTo(a, target, d)
		}
	}
	if !s.scrolling {
		s.updatePages()
	}
	s.completeScroll()
}

// PageIndex returns the page index at rest on a
func (s *Scroller) PageIndex(a Axis) int {
	return s.axes[a].page
}

// PageRange returns the valid page indices on a; false when paging is off or
// the page size is undefined
func (s *Scroller) PageRange(a Axis) (physics.PageRange, bool) {
	ax := &s.axes[a]
	if !s.paging(ax) {
		return physics.PageRange{}, false
	}
	return ax.pageRange, true
}

// PageCount returns the number of pages on a, 1 without paging
func (s *Scroller) PageCount(a Axis) int {
	r, ok := s.PageRange(a)
	if !ok {
		return 1
	}
	return r.Count()
}

// State reports what drives the position, dragging taking precedence
func (s *Scroller) State() State {
	h, v := &s.axes[Horizontal], &s.axes[Vertical]
	switch {
	case h.dragging || v.dragging:
		return StateDragging
	case h.barDriven || v.barDriven:
		return StateScrollbarDriven
	case h.tween != nil || v.tween != nil:
		return StateAnimating
	default:
		return StateIdle
	}
}

// IsScrolling reports whether a scroll started and has not completed
func (s *Scroller) IsScrolling() bool {
	return s.scrolling
}

// ScrollBarAlpha returns the visibility of a's scroll bar in [0,1]
func (s *Scroller) ScrollBarAlpha(a Axis) float64 {
	return s.axes[a].barAlpha
}

// StopScrolling halts every animation and drag at the current position and
// ignores the rest of the current pointer sequence. Safe to call repeatedly
// and from event handlers
func (s *Scroller) StopScrolling() {
	for i := range s.axes {
		a := &s.axes[i]
		s.cancelTween(a)
		a.dragging = false
		a.barDriven = false
	}
	s.tracking = false
	s.tracker.Reset()

	if s.interacting {
		s.interacting = false
		s.emit(EventEndInteraction)
	}
	if !s.scrolling {
		return
	}
	s.scrolling = false
	s.hideBars()
	s.updatePages()
	s.log.Printf("scroll: stopped at %.1f,%.1f", s.axes[Horizontal].position, s.axes[Vertical].position)
	s.emit(EventComplete)
}

func (s *Scroller) paging(a *axis) bool {
	return s.opts.SnapToPages && a.pageSize > 0
}

func (a *axis) pager() physics.Pager {
	return physics.Pager{Min: a.min, Max: a.max, Size: a.pageSize}
}

// setAxis writes one axis and notifies
func (s *Scroller) setAxis(a *axis, pos float64) {
	if a.position == pos {
		return
	}
	a.position = pos
	s.publishOffset()
	s.emit(EventScroll)
}

func (s *Scroller) publishOffset() {
	if p, ok := s.content.(Positioner); ok {
		p.SetContentOffset(-s.axes[Horizontal].position, -s.axes[Vertical].position)
	}
}

// updatePages recomputes page indices from rest positions
func (s *Scroller) updatePages() {
	changed := false
	for i := range s.axes {
		a := &s.axes[i]
		page := 0
		if s.paging(a) {
			page = a.pager().Index(a.position)
		}
		if page != a.page {
			a.page = page
			changed = true
		}
	}
	if changed {
		s.emit(EventPageChange)
	}
}

func (s *Scroller) emit(kind EventKind) {
	s.events.Emit(kind, Event{
		Kind:           kind,
		X:              s.axes[Horizontal].position,
		Y:              s.axes[Vertical].position,
		HorizontalPage: s.axes[Horizontal].page,
		VerticalPage:   s.axes[Vertical].page,
	})
}
