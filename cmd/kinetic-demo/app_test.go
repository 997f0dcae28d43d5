package main

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic/config"
	"github.com/lixenwraith/kinetic/drawer"
	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/scroll"
	"github.com/lixenwraith/kinetic/status"
	"github.com/lixenwraith/kinetic/store"
)

var quiet = log.New(io.Discard, "", 0)

func newTestApp(t *testing.T, mutate func(*config.Config)) (*app, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	provider := engine.NewMockTimeProvider(time.Unix(0, 0))
	a, err := newApp(cfg, provider, quiet)
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	t.Cleanup(a.close)
	a.resize(simCols, simLines)
	a.scroller.Validate()
	return a, provider
}

// step advances the mock clock by one frame and drives the tweens
func step(a *app, p *engine.MockTimeProvider, n int) {
	for i := 0; i < n; i++ {
		p.Advance(parameter.FrameUpdateInterval)
		a.frame()
	}
}

func TestResizeSetsViewport(t *testing.T) {
	a, _ := newTestApp(t, nil)
	vp := a.scroller.Viewport()
	if vp.Dx() != simCols*cellWidth || vp.Dy() != (simLines-1)*cellHeight {
		t.Errorf("Expected viewport %vx%v, got %vx%v", simCols*cellWidth, (simLines-1)*cellHeight, vp.Dx(), vp.Dy())
	}
	_, hi := a.scroller.Bounds(scroll.Vertical)
	if want := rowCount*rowHeight - vp.Dy(); hi != want {
		t.Errorf("Expected max scroll %v, got %v", want, hi)
	}
}

func TestMouseDragScrollsList(t *testing.T) {
	a, p := newTestApp(t, nil)
	a.mouse(40, 20, true, 0)
	a.mouse(40, 15, true, 500*time.Millisecond)
	a.mouse(40, 10, true, time.Second)
	if _, y := a.scroller.Position(); y != 10*cellHeight {
		t.Errorf("Expected drag to follow 10 lines, got %v", y)
	}
	a.mouse(40, 10, false, time.Second)
	if a.metrics.Counter(status.KeyThrows).Load() != 1 {
		t.Errorf("Expected release to throw, got %d throws", a.metrics.Counter(status.KeyThrows).Load())
	}
	step(a, p, 250)
	if a.scroller.IsScrolling() {
		t.Error("Expected throw to come to rest")
	}
	if _, y := a.scroller.Position(); y <= 10*cellHeight {
		t.Errorf("Expected throw to carry past %v, got %v", 10*cellHeight, y)
	}
	if a.visibleRow(0) <= 10 {
		t.Errorf("Expected a row past 10 at the top, got %d", a.visibleRow(0))
	}
	if a.metrics.Counter(status.KeyClaims).Load() == 0 {
		t.Error("Expected the drag to be counted as a claim")
	}
}

func TestKeysAndQuit(t *testing.T) {
	a, p := newTestApp(t, nil)
	if !a.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Fatal("Expected down arrow to keep running")
	}
	step(a, p, 40)
	if _, y := a.scroller.Position(); y != parameter.KeyScrollStep {
		t.Errorf("Expected one key step, got %v", y)
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	step(a, p, 40)
	if !a.drawers.IsOpen(drawer.Left) {
		t.Error("Expected m to open the drawer")
	}
	if a.panelColumns() != int(a.cfg.Drawer.Size) {
		t.Errorf("Expected panel of %v columns, got %d", a.cfg.Drawer.Size, a.panelColumns())
	}

	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected escape to quit")
	}
}

func TestWheelEvent(t *testing.T) {
	a, p := newTestApp(t, nil)
	a.handleEvent(tcell.NewEventMouse(40, 10, tcell.WheelDown, tcell.ModNone))
	step(a, p, 40)
	if _, y := a.scroller.Position(); y != parameter.WheelScrollStep {
		t.Errorf("Expected one wheel step, got %v", y)
	}
}

func TestFocusLossCancelsDrag(t *testing.T) {
	a, p := newTestApp(t, nil)
	a.mouse(40, 20, true, 0)
	a.mouse(40, 18, true, 10*time.Millisecond)
	a.mouse(40, 12, true, 20*time.Millisecond)
	a.handleEvent(tcell.NewEventFocus(false))
	if a.buttonDown {
		t.Error("Expected button state to reset")
	}
	step(a, p, 5)
	if a.metrics.Counter(status.KeyThrows).Load() != 0 {
		t.Error("Expected a cancelled drag not to throw")
	}
}

func TestRender(t *testing.T) {
	a, _ := newTestApp(t, nil)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(simCols, simLines)

	a.render(screen)
	if got := lineText(screen, 0); !strings.Contains(got, "row 0000") {
		t.Errorf("Expected first row on line 0, got %q", got)
	}
	if got := lineText(screen, simLines-1); !strings.Contains(got, "idle") {
		t.Errorf("Expected status line with state, got %q", got)
	}
}

func lineText(screen tcell.SimulationScreen, line int) string {
	var b strings.Builder
	for col := 0; col < simCols; col++ {
		r, _, _, _ := screen.GetContent(col, line)
		b.WriteRune(r)
	}
	return b.String()
}

func TestSaveRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	positions, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer positions.Close()

	a, p := newTestApp(t, nil)
	a.restore(positions)
	a.scroller.Step(0, 1)
	step(a, p, 40)
	a.save()

	b, _ := newTestApp(t, nil)
	b.restore(positions)
	if _, y := b.scroller.Position(); y != parameter.KeyScrollStep {
		t.Errorf("Expected restored position %v, got %v", parameter.KeyScrollStep, y)
	}
}

func TestSimulation(t *testing.T) {
	var out bytes.Buffer
	if err := runSim(config.Default(), &out, quiet); err != nil {
		t.Fatalf("runSim failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"phase 0:", "phase 3:", "drawer=240", "scroll.throws"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output:\n%s", want, got)
		}
	}
}
