package main

import (
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"time"

	"github.com/lixenwraith/kinetic/config"
	"github.com/lixenwraith/kinetic/drawer"
	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
)

const (
	simCols      = 80
	simLines     = 25
	simMaxFrames = 1000
)

// simStep is one scripted input applied before a frame
type simStep struct {
	name  string
	apply func(a *app, at time.Duration)
}

// flick presses at line from and drags to line to over a few frames
func flick(col, from, to int) []simStep {
	steps := []simStep{{"press", func(a *app, at time.Duration) { a.mouse(col, from, true, at) }}}
	const moves = 4
	for i := 1; i <= moves; i++ {
		line := from + (to-from)*i/moves
		steps = append(steps, simStep{"move", func(a *app, at time.Duration) { a.mouse(col, line, true, at) }})
	}
	return append(steps, simStep{"release", func(a *app, at time.Duration) { a.mouse(col, to, false, at) }})
}

// simScript throws the list, wheels it, then drags the drawer open from the edge
func simScript() [][]simStep {
	return [][]simStep{
		flick(40, 20, 4),
		{
			{"wheel", func(a *app, at time.Duration) { a.wheel(40, 10, 0, 1, at) }},
			{"wheel", func(a *app, at time.Duration) { a.wheel(40, 10, 0, 1, at) }},
		},
		flick(40, 4, 20),
		{
			{"edge", func(a *app, at time.Duration) { a.mouse(0, 10, true, at) }},
			{"edge", func(a *app, at time.Duration) { a.mouse(10, 10, true, at) }},
			{"edge", func(a *app, at time.Duration) { a.mouse(25, 10, true, at) }},
			{"edge", func(a *app, at time.Duration) { a.mouse(25, 10, false, at) }},
		},
	}
}

// runSim plays the script on a stepping clock and reports what happened
func runSim(cfg *config.Config, out io.Writer, logger *log.Logger) error {
	provider := engine.NewSteppingTimeProvider(time.Unix(0, 0), parameter.FrameUpdateInterval)
	a, err := newApp(cfg, provider, logger)
	if err != nil {
		return err
	}
	defer a.close()
	a.resize(simCols, simLines)

	frames := 0
	for i, phase := range simScript() {
		for _, step := range phase {
			a.frame()
			frames++
			step.apply(a, a.clock.Elapsed())
		}
		for a.scroller.IsScrolling() || a.drawers.Animating() {
			if frames >= simMaxFrames {
				return fmt.Errorf("phase %d did not settle after %d frames", i, frames)
			}
			a.frame()
			frames++
		}
		x, y := a.scroller.Position()
		fmt.Fprintf(out, "phase %d: %s at %.1f,%.1f drawer=%.0f\n", i, a.scroller.State(), x, y, a.drawers.Offset(drawer.Left))
	}

	fmt.Fprintf(out, "frames %d (%v)\n", frames, a.clock.Elapsed())
	snap := a.metrics.Snapshot()
	for _, key := range slices.Sorted(maps.Keys(snap)) {
		fmt.Fprintf(out, "%s %g\n", key, snap[key])
	}
	return nil
}
