package config

import (
	"fmt"
	"log"

	"github.com/lixenwraith/kinetic/drawer"
	"github.com/lixenwraith/kinetic/physics"
	"github.com/lixenwraith/kinetic/pointer"
	"github.com/lixenwraith/kinetic/scroll"
	"github.com/lixenwraith/kinetic/status"
	"github.com/lixenwraith/kinetic/tween"
)

var eases = map[string]bool{"out-quart": true, "out-cubic": true, "in-out-quad": true, "linear": true}

// Validate checks every section by building the component options
func (c *Config) Validate() error {
	if c.Display.PxPerInch <= 0 {
		return fmt.Errorf("%w: px_per_inch must be positive, got %v", ErrInvalidConfig, c.Display.PxPerInch)
	}
	if !eases[c.Scroll.Ease] {
		return fmt.Errorf("%w: unknown ease %q", ErrInvalidConfig, c.Scroll.Ease)
	}
	if c.Drawer.Size < 0 {
		return fmt.Errorf("%w: negative drawer size", ErrInvalidConfig)
	}
	so, err := c.ScrollOptions(nil, nil)
	if err != nil {
		return err
	}
	if err := so.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	do, err := c.DrawerOptions(nil, nil)
	if err != nil {
		return err
	}
	if err := do.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) metric() pointer.Metric {
	return pointer.Metric{PxPerInch: c.Display.PxPerInch}
}

func parsePolicy(s string) (scroll.ScrollPolicy, error) {
	switch s {
	case "", "auto":
		return scroll.PolicyAuto, nil
	case "on":
		return scroll.PolicyOn, nil
	case "off":
		return scroll.PolicyOff, nil
	}
	return 0, fmt.Errorf("%w: unknown scroll policy %q", ErrInvalidConfig, s)
}

// ScrollOptions maps the scroll and display sections to scroller options
func (c *Config) ScrollOptions(logger *log.Logger, metrics *status.Registry) (scroll.Options, error) {
	h, err := parsePolicy(c.Scroll.HorizontalPolicy)
	if err != nil {
		return scroll.Options{}, err
	}
	v, err := parsePolicy(c.Scroll.VerticalPolicy)
	if err != nil {
		return scroll.Options{}, err
	}
	var bar scroll.ScrollBarMode
	switch c.Display.ScrollBar {
	case "", "float":
		bar = scroll.ScrollBarFloat
	case "fixed":
		bar = scroll.ScrollBarFixed
	default:
		return scroll.Options{}, fmt.Errorf("%w: unknown scroll bar mode %q", ErrInvalidConfig, c.Display.ScrollBar)
	}

	s := c.Scroll
	return scroll.Options{
		Params: physics.Params{
			DecelerationRate:      s.DecelerationRate,
			Elasticity:            s.Elasticity,
			ThrowElasticity:       s.ThrowElasticity,
			HasElasticEdges:       s.ElasticEdges,
			UseFixedThrowDuration: s.FixedThrowDuration,
		},
		Metric:                   c.metric(),
		HorizontalPolicy:         h,
		VerticalPolicy:           v,
		ScrollBarMode:            bar,
		MinimumDragDistance:      s.MinimumDragDistance,
		MinimumPageThrowVelocity: s.MinimumPageThrowVelocity,
		PageThrowDuration:        s.PageThrowDuration.Duration,
		ElasticSnapDuration:      s.ElasticSnapDuration.Duration,
		SnapToPages:              s.SnapToPages,
		PageWidth:                s.PageWidth,
		PageHeight:               s.PageHeight,
		WheelStep:                s.WheelStep,
		WheelDuration:            s.WheelDuration.Duration,
		KeyStep:                  s.KeyStep,
		KeyDuration:              s.KeyDuration.Duration,
		HideScrollBarDuration:    s.HideScrollBarDuration.Duration,
		HideScrollBarDelay:       s.HideScrollBarDelay.Duration,
		Ease:                     tween.EaseByName(s.Ease),
		Logger:                   logger,
		Metrics:                  metrics,
	}, nil
}

// DrawerOptions maps the drawer section; drawers share the scroll physics
// constants but keep their own edge elasticity
func (c *Config) DrawerOptions(logger *log.Logger, metrics *status.Registry) (drawer.Options, error) {
	var g drawer.Gesture
	switch c.Drawer.Gesture {
	case "", "edge":
		g = drawer.GestureEdge
	case "content":
		g = drawer.GestureContent
	case "none":
		g = drawer.GestureNone
	default:
		return drawer.Options{}, fmt.Errorf("%w: unknown drawer gesture %q", ErrInvalidConfig, c.Drawer.Gesture)
	}

	d := c.Drawer
	return drawer.Options{
		Params: physics.Params{
			DecelerationRate:      c.Scroll.DecelerationRate,
			Elasticity:            c.Scroll.Elasticity,
			ThrowElasticity:       c.Scroll.ThrowElasticity,
			HasElasticEdges:       d.ElasticEdges,
			UseFixedThrowDuration: c.Scroll.FixedThrowDuration,
		},
		Metric:               c.metric(),
		Gesture:              g,
		EdgeSize:             d.EdgeSize,
		MinimumDragDistance:  d.MinimumDragDistance,
		MinimumThrowVelocity: d.MinimumThrowVelocity,
		Duration:             d.Duration.Duration,
		CloseOnContentTap:    d.CloseOnContentTap,
		Ease:                 tween.EaseByName(c.Scroll.Ease),
		Logger:               logger,
		Metrics:              metrics,
	}, nil
}
