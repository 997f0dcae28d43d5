package drawer

import (
	"io"
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/kinetic/event"
	"github.com/lixenwraith/kinetic/gesture"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/pointer"
	"github.com/lixenwraith/kinetic/status"
	"github.com/lixenwraith/kinetic/tween"
)

// panel is one edge drawer; offset runs from 0 (closed) to size (open)
type panel struct {
	edge    Edge
	present bool
	docked  bool
	size    float64
	offset  float64
	open    bool
	tween   *tween.Tween
}

// Drawers manages up to four edge panels over one surface
// Only one edge drags at a time and at most one undocked edge is open
type Drawers struct {
	opts   Options
	router *pointer.Router
	driver *tween.Driver
	owner  pointer.OwnerID
	log    *log.Logger

	subs   event.Subscriptions
	events *event.Router[EventKind, Event]

	bounds pointer.Rect
	panels [edgeCount]panel

	tracker     gesture.Tracker
	tracking    bool
	touchID     pointer.ID
	pressAt     pointer.Point
	dragging    bool
	active      Edge
	touchStart  float64
	startOffset float64

	opens  *atomic.Int64
	closes *atomic.Int64
}

// New creates drawers receiving pointer input from router
// Subscribe after the content's recognizers so drawers see presses first
func New(router *pointer.Router, driver *tween.Driver, opts Options) (*Drawers, error) {
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
	d := &Drawers{
		opts:   opts,
		driver: driver,
		log:    logger,
		events: event.NewRouter[EventKind, Event](),
		opens:  opts.Metrics.Counter(status.KeyOpens),
		closes: opts.Metrics.Counter(status.KeyCloses),
	}
	for e := Top; e < edgeCount; e++ {
		d.panels[e].edge = e
	}
	d.Attach(router)
	return d, nil
}

// Attach moves pointer handling to router
func (d *Drawers) Attach(router *pointer.Router) {
	d.subs.CancelAll()
	d.tracking, d.dragging = false, false
	d.router = router
	if router == nil {
		return
	}
	d.owner = router.Arbiter().NewOwner()
	d.subs.Add(
		router.Subscribe(d.Bounds, pointer.FilterDrag, d.handlePointer),
		router.Arbiter().Subscribe(d.handleClaim),
	)
}

// Detach drops subscriptions and running animations
func (d *Drawers) Detach() {
	d.subs.CancelAll()
	for i := range d.panels {
		d.stopTween(&d.panels[i])
	}
}

// On subscribes fn to drawer events of kind
func (d *Drawers) On(kind EventKind, fn func(Event)) *event.Subscription {
	return d.events.Subscribe(kind, fn)
}

// SetBounds sets the surface area the panels slide over
func (d *Drawers) SetBounds(r pointer.Rect) {
	d.bounds = r
}

// Bounds returns the surface area
func (d *Drawers) Bounds() pointer.Rect {
	return d.bounds
}

// SetPanel installs or resizes the panel on edge
func (d *Drawers) SetPanel(edge Edge, size float64) {
	p := &d.panels[edge]
	p.present = true
	p.size = math.Max(size, 0)
	if p.open || p.docked {
		p.offset = p.size
	} else {
		p.offset = math.Min(p.offset, p.size)
	}
}

// RemovePanel clears edge without events
func (d *Drawers) RemovePanel(edge Edge) {
	p := &d.panels[edge]
	d.stopTween(p)
	if d.dragging && d.active == edge {
		d.dragging = false
	}
	*p = panel{edge: edge}
}

// Dock pins edge permanently open; docked edges ignore gestures and Open/Close
func (d *Drawers) Dock(edge Edge, docked bool) {
	p := &d.panels[edge]
	if p.docked == docked {
		return
	}
	d.stopTween(p)
	p.docked = docked
	if docked {
		p.offset, p.open = p.size, true
	} else {
		p.offset, p.open = 0, false
	}
}

// IsDocked reports whether edge is docked
func (d *Drawers) IsDocked(edge Edge) bool {
	return d.panels[edge].docked
}

// IsOpen reports whether edge rests fully open
func (d *Drawers) IsOpen(edge Edge) bool {
	return d.panels[edge].open
}

// Offset returns how far edge's panel is revealed in px
func (d *Drawers) Offset(edge Edge) float64 {
	return d.panels[edge].offset
}

// ContentOffset returns the translation for the main content
func (d *Drawers) ContentOffset() (x, y float64) {
	x = d.panels[Left].offset - d.panels[Right].offset
	y = d.panels[Top].offset - d.panels[Bottom].offset
	return x, y
}

// Animating reports whether any panel is moving
func (d *Drawers) Animating() bool {
	for i := range d.panels {
		if d.panels[i].tween != nil {
			return true
		}
	}
	return false
}

// Open reveals edge, closing any other open edge
func (d *Drawers) Open(edge Edge, animated bool) {
	p := &d.panels[edge]
	if !p.present || p.docked {
		return
	}
	for i := range d.panels {
		other := &d.panels[i]
		if other.edge != edge && !other.docked && other.offset > 0 {
			d.animateTo(other, 0, animated)
		}
	}
	d.animateTo(p, p.size, animated)
}

// Close hides edge
func (d *Drawers) Close(edge Edge, animated bool) {
	p := &d.panels[edge]
	if !p.present || p.docked {
		return
	}
	d.animateTo(p, 0, animated)
}

// Toggle opens a closed or closing edge and closes an open or opening one
func (d *Drawers) Toggle(edge Edge) {
	p := &d.panels[edge]
	opening := p.open
	if p.tween != nil {
		opening = p.tween.To() > 0
	}
	if opening {
		d.Close(edge, true)
	} else {
		d.Open(edge, true)
	}
}

// openEdge returns the undocked edge currently revealed, if any
func (d *Drawers) openEdge() (*panel, bool) {
	for i := range d.panels {
		p := &d.panels[i]
		if p.present && !p.docked && p.offset > 0 {
			return p, true
		}
	}
	return nil, false
}

// panelRect returns the area covered by p at its current offset
func (d *Drawers) panelRect(p *panel) pointer.Rect {
	r := d.bounds
	switch p.edge {
	case Left:
		r.Max.X = r.Min.X + p.offset
	case Right:
		r.Min.X = r.Max.X - p.offset
	case Top:
		r.Max.Y = r.Min.Y + p.offset
	case Bottom:
		r.Min.Y = r.Max.Y - p.offset
	}
	return r
}

// edgeDistance returns the px distance from the press to edge's side
func (d *Drawers) edgeDistance(edge Edge, pt pointer.Point) float64 {
	switch edge {
	case Left:
		return pt.X - d.bounds.Min.X
	case Right:
		return d.bounds.Max.X - pt.X
	case Top:
		return pt.Y - d.bounds.Min.Y
	default:
		return d.bounds.Max.Y - pt.Y
	}
}

func coord(pt pointer.Point, edge Edge) float64 {
	if edge.horizontal() {
		return pt.X
	}
	return pt.Y
}

func (d *Drawers) stopTween(p *panel) {
	if p.tween == nil {
		return
	}
	t := p.tween
	p.tween = nil
	t.Stop()
}

// animateTo moves p to target and settles its open state at the end
func (d *Drawers) animateTo(p *panel, target float64, animated bool) {
	d.stopTween(p)
	if !animated || d.opts.Duration == 0 || target == p.offset {
		p.offset = target
		d.settle(p)
		return
	}
	var t *tween.Tween
	t = tween.New(p.offset, target, d.opts.Duration, d.opts.Ease).
		OnUpdate(func(v float64) {
			if p.tween == t {
				p.offset = v
			}
		}).
		OnComplete(func() {
			if p.tween != t {
				return
			}
			p.tween = nil
			d.settle(p)
		})
	p.tween = t
	d.driver.Add(t)
}

// settle publishes the open state of a panel at rest
func (d *Drawers) settle(p *panel) {
	was := p.open
	p.open = p.size > 0 && p.offset >= p.size
	switch {
	case p.open && !was:
		d.opens.Add(1)
		d.log.Printf("drawer: %s opened", p.edge)
		d.events.Emit(EventOpen, Event{Kind: EventOpen, Edge: p.edge})
	case !p.open && was:
		d.closes.Add(1)
		d.log.Printf("drawer: %s closed", p.edge)
		d.events.Emit(EventClose, Event{Kind: EventClose, Edge: p.edge})
	}
}

func (d *Drawers) handlePointer(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		d.press(e)
	case pointer.Move:
		d.move(e)
	case pointer.Release:
		d.release(e, true)
	case pointer.Cancel:
		d.release(e, false)
	}
}

func (d *Drawers) press(e pointer.Event) {
	if d.tracking {
		return
	}
	if owner, ok := d.router.Arbiter().Claim(e.ID); ok && owner != d.owner {
		return
	}
	d.tracking = true
	d.dragging = false
	d.touchID = e.ID
	d.pressAt = e.Position
	d.tracker.Begin(e.Position.X, e.Position.Y, e.Time)
}

func (d *Drawers) move(e pointer.Event) {
	if !d.tracking || e.ID != d.touchID {
		return
	}
	d.tracker.Update(e.Position.X, e.Position.Y, e.Time)

	if !d.dragging {
		p, ok := d.candidate(e.Position)
		if !ok {
			return
		}
		d.confirm(p, e)
		if !d.tracking {
			return
		}
	}

	p := &d.panels[d.active]
	delta := (coord(e.Position, p.edge) - d.touchStart) * p.edge.sign()
	p.offset = d.opts.Params.Bound(d.startOffset+delta, 0, p.size)
}

// candidate returns the edge a move at pt would start dragging
// An open edge may only be dragged closed; otherwise any eligible closed edge
// may be dragged open
func (d *Drawers) candidate(pt pointer.Point) (*panel, bool) {
	if p, ok := d.openEdge(); ok {
		delta := (coord(pt, p.edge) - coord(d.pressAt, p.edge)) * p.edge.sign()
		if delta < 0 && d.opts.Metric.Inches(-delta) >= d.opts.MinimumDragDistance {
			return p, true
		}
		return nil, false
	}
	if d.opts.Gesture == GestureNone {
		return nil, false
	}
	for i := range d.panels {
		p := &d.panels[i]
		if !p.present || p.docked || p.size == 0 {
			continue
		}
		if d.opts.Gesture == GestureEdge && d.opts.Metric.Inches(d.edgeDistance(p.edge, d.pressAt)) > d.opts.EdgeSize {
			continue
		}
		delta := (coord(pt, p.edge) - coord(d.pressAt, p.edge)) * p.edge.sign()
		if delta > 0 && d.opts.Metric.Inches(delta) >= d.opts.MinimumDragDistance {
			return p, true
		}
	}
	return nil, false
}

func (d *Drawers) confirm(p *panel, e pointer.Event) {
	d.stopTween(p)
	d.dragging = true
	d.active = p.edge
	d.touchStart = coord(e.Position, p.edge)
	d.startOffset = p.offset
	d.log.Printf("drawer: %s drag from %.1f", p.edge, p.offset)
	d.events.Emit(EventBeginInteraction, Event{Kind: EventBeginInteraction, Edge: p.edge})
	if d.tracking {
		d.router.Arbiter().ClaimTouch(e.ID, d.owner)
	}
}

func (d *Drawers) release(e pointer.Event, throw bool) {
	if !d.tracking || e.ID != d.touchID {
		return
	}
	d.tracking = false

	if !d.dragging {
		if throw && d.opts.CloseOnContentTap {
			if p, ok := d.openEdge(); ok && !d.panelRect(p).Contains(e.Position) {
				d.Close(p.edge, true)
			}
		}
		return
	}
	d.dragging = false
	p := &d.panels[d.active]

	v := d.tracker.End()
	pxPerMs := v.Y
	if p.edge.horizontal() {
		pxPerMs = v.X
	}
	if !throw {
		pxPerMs = 0
	}
	ips := d.opts.Metric.InchesPerSecond(pxPerMs * p.edge.sign())

	d.events.Emit(EventEndInteraction, Event{Kind: EventEndInteraction, Edge: p.edge})
	pg := physics.Pager{Min: 0, Max: p.size, Size: p.size}
	d.animateTo(p, pg.Snap(p.offset, ips, d.opts.MinimumThrowVelocity), true)
}

// handleClaim abandons a drag taken over by another recognizer
func (d *Drawers) handleClaim(c pointer.Claim) {
	if !d.tracking || c.Pointer != d.touchID || c.Owner == d.owner || c.Owner == pointer.NoOwner {
		return
	}
	d.tracking = false
	if !d.dragging {
		return
	}
	d.dragging = false
	p := &d.panels[d.active]
	d.events.Emit(EventEndInteraction, Event{Kind: EventEndInteraction, Edge: p.edge})
	pg := physics.Pager{Min: 0, Max: p.size, Size: p.size}
	d.animateTo(p, pg.Snap(p.offset, 0, d.opts.MinimumThrowVelocity), true)
}
