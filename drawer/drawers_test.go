package drawer

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/kinetic/pointer"
	"github.com/lixenwraith/kinetic/scroll"
	"github.com/lixenwraith/kinetic/status"
	"github.com/lixenwraith/kinetic/tween"
)

const frame = 16 * time.Millisecond

type fixture struct {
	t       *testing.T
	router  *pointer.Router
	driver  *tween.Driver
	d       *Drawers
	metrics *status.Registry
	events  []Event
}

// newFixture creates a 400x300 surface with a 200px left panel
func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	f := &fixture{
		t:       t,
		router:  pointer.NewRouter(),
		driver:  tween.NewDriver(),
		metrics: status.NewRegistry(),
	}
	opts := DefaultOptions()
	opts.Metrics = f.metrics
	if mutate != nil {
		mutate(&opts)
	}
	d, err := New(f.router, f.driver, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d.SetBounds(pointer.RectWH(0, 0, 400, 300))
	d.SetPanel(Left, 200)
	for k := EventOpen; k <= EventEndInteraction; k++ {
		d.On(k, func(e Event) { f.events = append(f.events, e) })
	}
	f.d = d
	return f
}

func (f *fixture) send(kind pointer.Kind, x, y float64, ms int) {
	f.router.Dispatch(pointer.Event{
		ID:       1,
		Kind:     kind,
		Position: pointer.Point{X: x, Y: y},
		Time:     time.Duration(ms) * time.Millisecond,
	})
}

func (f *fixture) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		f.driver.Advance(frame)
	}
}

func (f *fixture) count(kind EventKind) int {
	n := 0
	for _, e := range f.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestOptionsValidate(t *testing.T) {
	opts := DefaultOptions()
	opts.Gesture = 9
	if _, err := New(pointer.NewRouter(), tween.NewDriver(), opts); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Expected ErrInvalidOptions, got %v", err)
	}
	opts = DefaultOptions()
	opts.Duration = -time.Second
	if err := opts.Validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Expected ErrInvalidOptions, got %v", err)
	}
}

func TestEdgeDragOpens(t *testing.T) {
	f := newFixture(t, nil)
	f.send(pointer.Press, 5, 100, 0)
	f.send(pointer.Move, 25, 100, 10)
	f.send(pointer.Move, 125, 100, 20)
	if got := f.d.Offset(Left); got != 100 {
		t.Fatalf("Expected offset 100 while dragging, got %v", got)
	}
	if owner, ok := f.router.Arbiter().Claim(1); !ok || owner == pointer.NoOwner {
		t.Error("Expected drag to claim the pointer")
	}
	f.send(pointer.Release, 125, 100, 20)

	f.advance(300 * time.Millisecond)
	if !f.d.IsOpen(Left) || f.d.Offset(Left) != 200 {
		t.Errorf("Expected open at 200, got open=%v offset=%v", f.d.IsOpen(Left), f.d.Offset(Left))
	}
	if x, y := f.d.ContentOffset(); x != 200 || y != 0 {
		t.Errorf("Expected content offset 200,0, got %v,%v", x, y)
	}
	if f.count(EventOpen) != 1 || f.count(EventBeginInteraction) != 1 || f.count(EventEndInteraction) != 1 {
		t.Errorf("Unexpected events %+v", f.events)
	}
	if got := f.metrics.Counter(status.KeyOpens).Load(); got != 1 {
		t.Errorf("Expected 1 open counted, got %d", got)
	}
}

func TestPressOutsideEdgeIgnored(t *testing.T) {
	f := newFixture(t, nil)
	f.send(pointer.Press, 100, 100, 0)
	f.send(pointer.Move, 200, 100, 10)
	f.send(pointer.Release, 200, 100, 20)
	if f.d.Offset(Left) != 0 {
		t.Errorf("Expected no drag outside the edge zone, got %v", f.d.Offset(Left))
	}
}

func TestContentGesture(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Gesture = GestureContent })
	f.send(pointer.Press, 100, 100, 0)
	f.send(pointer.Move, 120, 100, 10)
	f.send(pointer.Move, 150, 100, 20)
	if f.d.Offset(Left) != 30 {
		t.Errorf("Expected content drag offset 30, got %v", f.d.Offset(Left))
	}
}

func TestGestureNone(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Gesture = GestureNone })
	f.send(pointer.Press, 5, 100, 0)
	f.send(pointer.Move, 100, 100, 10)
	if f.d.Offset(Left) != 0 {
		t.Errorf("Expected no gesture, got %v", f.d.Offset(Left))
	}
}

func TestDragClosingDirectionIgnoredWhenClosed(t *testing.T) {
	f := newFixture(t, nil)
	f.send(pointer.Press, 10, 100, 0)
	f.send(pointer.Move, 0, 100, 10)
	f.send(pointer.Move, -20, 100, 20)
	if f.d.Offset(Left) != 0 {
		t.Errorf("Expected closed drawer to ignore closing drag, got %v", f.d.Offset(Left))
	}
}

func TestSlowReleaseSnapsNearest(t *testing.T) {
	tests := []struct {
		name string
		to   float64
		open bool
	}{
		{"below half closes", 85, false},
		{"past half opens", 145, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.send(pointer.Press, 5, 100, 0)
			f.send(pointer.Move, 25, 100, 100)
			f.send(pointer.Move, tt.to, 100, 600)
			f.send(pointer.Release, tt.to, 100, 600)
			f.advance(300 * time.Millisecond)

			if f.d.IsOpen(Left) != tt.open {
				t.Errorf("Expected open=%v, got offset %v", tt.open, f.d.Offset(Left))
			}
		})
	}
}

func TestDragToClose(t *testing.T) {
	f := newFixture(t, nil)
	f.d.Open(Left, false)
	if !f.d.IsOpen(Left) {
		t.Fatal("Expected immediate open")
	}

	f.send(pointer.Press, 300, 100, 0)
	f.send(pointer.Move, 280, 100, 10)
	f.send(pointer.Move, 180, 100, 20)
	if got := f.d.Offset(Left); got != 100 {
		t.Fatalf("Expected offset 100, got %v", got)
	}
	f.send(pointer.Release, 180, 100, 20)
	f.advance(300 * time.Millisecond)

	if f.d.IsOpen(Left) || f.d.Offset(Left) != 0 {
		t.Errorf("Expected closed, got offset %v", f.d.Offset(Left))
	}
	if f.count(EventOpen) != 1 || f.count(EventClose) != 1 {
		t.Errorf("Expected one open and one close, got %+v", f.events)
	}
}

func TestDragClampedToPanel(t *testing.T) {
	f := newFixture(t, nil)
	f.send(pointer.Press, 5, 100, 0)
	f.send(pointer.Move, 25, 100, 10)
	f.send(pointer.Move, 390, 100, 20)
	if got := f.d.Offset(Left); got != 200 {
		t.Errorf("Expected hard clamp at 200, got %v", got)
	}
}

func TestCloseOnContentTap(t *testing.T) {
	f := newFixture(t, nil)
	f.d.Open(Left, false)

	f.send(pointer.Press, 100, 100, 0)
	f.send(pointer.Release, 100, 100, 50)
	f.advance(300 * time.Millisecond)
	if !f.d.IsOpen(Left) {
		t.Fatal("Expected tap inside the panel to keep it open")
	}

	f.send(pointer.Press, 300, 100, 100)
	f.send(pointer.Release, 300, 100, 150)
	f.advance(300 * time.Millisecond)
	if f.d.IsOpen(Left) {
		t.Error("Expected tap on content to close the drawer")
	}
}

func TestToggle(t *testing.T) {
	f := newFixture(t, nil)
	f.d.Toggle(Left)
	f.advance(50 * time.Millisecond)
	f.d.Toggle(Left)
	f.advance(300 * time.Millisecond)
	if f.d.IsOpen(Left) || f.d.Offset(Left) != 0 {
		t.Errorf("Expected toggle during opening to close, got %v", f.d.Offset(Left))
	}

	f.d.Toggle(Left)
	f.advance(300 * time.Millisecond)
	if !f.d.IsOpen(Left) {
		t.Error("Expected toggle to open")
	}
	if f.count(EventOpen) != 1 || f.count(EventClose) != 0 {
		t.Errorf("Expected a single open event, got %+v", f.events)
	}
}

func TestOpeningClosesOther(t *testing.T) {
	f := newFixture(t, nil)
	f.d.SetPanel(Right, 150)
	f.d.Open(Left, false)
	f.d.Open(Right, false)

	if f.d.IsOpen(Left) || !f.d.IsOpen(Right) {
		t.Errorf("Expected only right open, left=%v right=%v", f.d.IsOpen(Left), f.d.IsOpen(Right))
	}
	if x, _ := f.d.ContentOffset(); x != -150 {
		t.Errorf("Expected content shifted -150, got %v", x)
	}
	if f.count(EventClose) != 1 {
		t.Errorf("Expected left close event, got %+v", f.events)
	}
}

func TestDocked(t *testing.T) {
	f := newFixture(t, nil)
	f.d.Dock(Left, true)
	if !f.d.IsOpen(Left) || f.d.Offset(Left) != 200 || !f.d.IsDocked(Left) {
		t.Fatalf("Expected docked open at 200")
	}
	f.d.Close(Left, false)
	f.send(pointer.Press, 300, 100, 0)
	f.send(pointer.Move, 100, 100, 10)
	f.send(pointer.Release, 100, 100, 20)
	if !f.d.IsOpen(Left) {
		t.Error("Expected docked edge to ignore close and gestures")
	}
	if len(f.events) != 0 {
		t.Errorf("Expected no events for docked edge, got %+v", f.events)
	}

	f.d.Dock(Left, false)
	if f.d.IsOpen(Left) || f.d.Offset(Left) != 0 {
		t.Error("Expected undocking to close silently")
	}
}

func TestRemovePanel(t *testing.T) {
	f := newFixture(t, nil)
	f.d.Open(Left, true)
	f.d.RemovePanel(Left)
	f.advance(300 * time.Millisecond)
	if f.d.Offset(Left) != 0 || f.d.IsOpen(Left) {
		t.Error("Expected removed panel reset")
	}
	f.d.Open(Left, false)
	if f.d.IsOpen(Left) {
		t.Error("Expected open on missing panel to be a no-op")
	}
}

func TestDetach(t *testing.T) {
	f := newFixture(t, nil)
	f.d.Open(Left, true)
	f.advance(100 * time.Millisecond)
	mid := f.d.Offset(Left)
	f.d.Detach()
	f.advance(300 * time.Millisecond)
	if got := f.d.Offset(Left); got != mid {
		t.Errorf("Expected offset to stay at %v after detach, got %v", mid, got)
	}
	if f.d.Animating() {
		t.Error("Expected no running animation after detach")
	}

	f.d.Close(Left, false)
	f.send(pointer.Press, 5, 100, 0)
	f.send(pointer.Move, 25, 100, 10)
	f.send(pointer.Move, 125, 100, 20)
	f.send(pointer.Release, 125, 100, 20)
	if got := f.d.Offset(Left); got != 0 {
		t.Errorf("Expected detached drawers to ignore pointers, got offset %v", got)
	}
}

func TestClaimLossSettles(t *testing.T) {
	f := newFixture(t, nil)
	f.send(pointer.Press, 5, 100, 0)
	f.send(pointer.Move, 25, 100, 10)
	f.send(pointer.Move, 65, 100, 20)

	other := f.router.Arbiter().NewOwner()
	f.router.Arbiter().ClaimTouch(1, other)
	f.send(pointer.Move, 300, 100, 30)
	f.advance(300 * time.Millisecond)

	if f.d.Offset(Left) != 0 {
		t.Errorf("Expected settle closed, got %v", f.d.Offset(Left))
	}
	if f.count(EventEndInteraction) != 1 {
		t.Errorf("Expected end interaction, got %+v", f.events)
	}
}

// TestDrawerBeatsVerticalList opens the drawer over a scrolling list sharing
// the pointer router
func TestDrawerBeatsVerticalList(t *testing.T) {
	router := pointer.NewRouter()
	driver := tween.NewDriver()

	list, err := scroll.New(router, driver, extents{w: 400, h: 3000}, scroll.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	list.SetViewport(pointer.RectWH(0, 0, 400, 300))
	list.Validate()

	d, err := New(router, driver, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	d.SetBounds(pointer.RectWH(0, 0, 400, 300))
	d.SetPanel(Left, 200)

	send := func(kind pointer.Kind, x, y float64, ms int) {
		router.Dispatch(pointer.Event{ID: 3, Kind: kind, Position: pointer.Point{X: x, Y: y}, Time: time.Duration(ms) * time.Millisecond})
	}
	send(pointer.Press, 5, 100, 0)
	send(pointer.Move, 30, 102, 10)
	send(pointer.Move, 120, 140, 20)

	if _, y := list.Position(); y != 0 {
		t.Errorf("Expected list to stay put, got %v", y)
	}
	if d.Offset(Left) != 90 {
		t.Errorf("Expected drawer offset 90, got %v", d.Offset(Left))
	}
	send(pointer.Release, 120, 140, 20)
}

type extents struct{ w, h float64 }

func (e extents) Extents() scroll.Extents { return scroll.Extents{Width: e.w, Height: e.h} }
