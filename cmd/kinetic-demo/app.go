package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/kinetic/config"
	"github.com/lixenwraith/kinetic/drawer"
	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/pointer"
	"github.com/lixenwraith/kinetic/scroll"
	"github.com/lixenwraith/kinetic/status"
	"github.com/lixenwraith/kinetic/store"
	"github.com/lixenwraith/kinetic/tween"
	"github.com/lixenwraith/kinetic/vmath"
)

// Terminal cells are mapped to a fixed pixel grid so physics constants keep
// their meaning in inches
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	rowCount  = 500
	rowHeight = cellHeight

	mouseID  = pointer.ID(1)
	stateKey = "list"
)

// rows is the scrolled list; it only reports its size and records the offset
type rows struct {
	count       int
	width       float64
	offX, offY  float64
	validations int
}

func (r *rows) Extents() scroll.Extents {
	return scroll.Extents{Width: r.width, Height: float64(r.count) * rowHeight}
}

func (r *rows) Validate() { r.validations++ }

func (r *rows) SetContentOffset(x, y float64) { r.offX, r.offY = x, y }

// app wires one scroller and one left drawer to a shared router and driver
type app struct {
	cfg     *config.Config
	log     *log.Logger
	clock   *engine.FrameClock
	driver  *tween.Driver
	router  *pointer.Router
	metrics *status.Registry

	list     *rows
	scroller *scroll.Scroller
	drawers  *drawer.Drawers

	positions *store.Positions
	sound     *clicker

	cols, lines int
	buttonDown  bool
}

func newApp(cfg *config.Config, provider engine.TimeProvider, logger *log.Logger) (*app, error) {
	a := &app{
		cfg:     cfg,
		log:     logger,
		clock:   engine.NewFrameClock(provider, 0),
		driver:  tween.NewDriver(),
		router:  pointer.NewRouter(),
		metrics: status.NewRegistry(),
		list:    &rows{count: rowCount},
	}
	claims := a.metrics.Counter(status.KeyClaims)
	a.router.Arbiter().SetClaimHook(func(pointer.Claim) { claims.Add(1) })

	so, err := cfg.ScrollOptions(logger, a.metrics)
	if err != nil {
		return nil, err
	}
	if a.scroller, err = scroll.New(a.router, a.driver, a.list, so); err != nil {
		return nil, err
	}

	// Drawers subscribe after the list so their areas are topmost
	do, err := cfg.DrawerOptions(logger, a.metrics)
	if err != nil {
		return nil, err
	}
	if a.drawers, err = drawer.New(a.router, a.driver, do); err != nil {
		return nil, err
	}
	a.drawers.SetPanel(drawer.Left, cfg.Drawer.Size*cellWidth)

	a.scroller.On(scroll.EventPageChange, func(e scroll.Event) {
		a.log.Printf("page %d", e.VerticalPage)
		a.sound.tick()
	})
	a.scroller.On(scroll.EventComplete, func(e scroll.Event) {
		a.log.Printf("scroll complete at %.1f,%.1f", e.X, e.Y)
	})
	a.drawers.On(drawer.EventOpen, func(drawer.Event) { a.sound.open() })
	return a, nil
}

// resize maps cols x lines cells to the surface; the last line is the status bar
func (a *app) resize(cols, lines int) {
	a.cols, a.lines = cols, lines
	w, h := float64(cols)*cellWidth, float64(max(lines-1, 0))*cellHeight
	a.list.width = w
	r := pointer.RectWH(0, 0, w, h)
	a.scroller.SetViewport(r)
	a.drawers.SetBounds(r)
}

// restore applies a persisted snapshot without animation
func (a *app) restore(p *store.Positions) {
	a.positions = p
	if p == nil {
		return
	}
	snap, err := p.Load(stateKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.log.Printf("restore: %v", err)
		}
		return
	}
	if a.cfg.Scroll.SnapToPages {
		a.scroller.ScrollToPageIndex(snap.HorizontalPage, snap.VerticalPage, 0)
	} else if err := a.scroller.ScrollToPosition(snap.X, snap.Y, 0); err != nil {
		a.log.Printf("restore: %v", err)
	}
	a.scroller.Validate()
}

// save persists the resting position
func (a *app) save() {
	if a.positions == nil {
		return
	}
	a.scroller.StopScrolling()
	x, y := a.scroller.Position()
	snap := store.Snapshot{
		X:              x,
		Y:              y,
		HorizontalPage: a.scroller.PageIndex(scroll.Horizontal),
		VerticalPage:   a.scroller.PageIndex(scroll.Vertical),
	}
	if err := a.positions.Save(stateKey, snap); err != nil {
		a.log.Printf("save: %v", err)
	}
}

// frame advances every animation by the clock delta
func (a *app) frame() time.Duration {
	return a.clock.Drive(a.driver)
}

// cellPoint maps a terminal cell to the centre of its pixel box
func cellPoint(col, line int) pointer.Point {
	return pointer.Point{X: (float64(col) + 0.5) * cellWidth, Y: (float64(line) + 0.5) * cellHeight}
}

// mouse converts a button-state sample into pointer events
func (a *app) mouse(col, line int, down bool, at time.Duration) {
	e := pointer.Event{ID: mouseID, Position: cellPoint(col, line), Time: at}
	switch {
	case down && !a.buttonDown:
		e.Kind = pointer.Press
	case down:
		e.Kind = pointer.Move
	case a.buttonDown:
		e.Kind = pointer.Release
	default:
		return
	}
	a.buttonDown = down
	a.router.Dispatch(e)
}

// wheel dispatches discrete scroll steps at a cell
func (a *app) wheel(col, line int, dx, dy float64, at time.Duration) {
	a.router.Dispatch(pointer.Event{
		ID:       mouseID,
		Kind:     pointer.Scroll,
		Position: cellPoint(col, line),
		Scroll:   pointer.Point{X: dx, Y: dy},
		Time:     at,
	})
}

// cancelPointer aborts a press, used when the terminal loses focus
func (a *app) cancelPointer(at time.Duration) {
	if !a.buttonDown {
		return
	}
	a.buttonDown = false
	a.router.Dispatch(pointer.Event{ID: mouseID, Kind: pointer.Cancel, Time: at})
}

// visibleRow returns the list row drawn on screen line, or -1 for overscroll
func (a *app) visibleRow(line int) int {
	_, y := a.scroller.Position()
	py := float64(line)*cellHeight + y
	if py < 0 {
		return -1
	}
	idx := int(math.Floor(py / rowHeight))
	if idx >= a.list.count {
		return -1
	}
	return idx
}

// thumb returns the scroll bar thumb span in screen lines
func (a *app) thumb() (top, size int) {
	view := a.lines - 1
	if view <= 0 {
		return 0, 0
	}
	lo, hi := a.scroller.Bounds(scroll.Vertical)
	content := a.list.Extents().Height
	if content <= 0 || hi <= lo {
		return 0, view
	}
	size = int(math.Max(1, math.Round(float64(view)*float64(view)*cellHeight/content)))
	_, y := a.scroller.Position()
	ratio := vmath.Clamp((y-lo)/(hi-lo), 0, 1)
	top = int(math.Round(ratio * float64(view-size)))
	return top, size
}

// panelColumns is the visible width of the left drawer in cells
func (a *app) panelColumns() int {
	return int(math.Round(a.drawers.Offset(drawer.Left) / cellWidth))
}

// contentColumns is how far the list is pushed by the open drawer
func (a *app) contentColumns() int {
	x, _ := a.drawers.ContentOffset()
	return int(math.Round(x / cellWidth))
}

// statusLine summarizes state and counters
func (a *app) statusLine() string {
	_, y := a.scroller.Position()
	m := a.metrics
	return fmt.Sprintf(" %-13s y=%7.1f page=%d/%d throws=%d settles=%d claims=%d v=%.2f",
		a.scroller.State(), y,
		a.scroller.PageIndex(scroll.Vertical), a.scroller.PageCount(scroll.Vertical),
		m.Counter(status.KeyThrows).Load(), m.Counter(status.KeySettles).Load(),
		m.Counter(status.KeyClaims).Load(), m.Gauge(status.KeyVelocity).Get())
}

func (a *app) close() {
	a.drawers.Detach()
	a.scroller.Close()
}
