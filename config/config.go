// Package config loads demo and component settings from TOML or YAML files
// with KINETIC_* environment overrides
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/pointer"
)

// ErrInvalidConfig is returned for unreadable or out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration written as a Go duration string ("350ms")
type Duration struct {
	time.Duration
}

// D wraps d
func D(d time.Duration) Duration { return Duration{d} }

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalYAML writes the duration string
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML reads a duration string
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.UnmarshalText([]byte(n.Value))
}

// Display describes the output surface
type Display struct {
	PxPerInch float64 `toml:"px_per_inch" yaml:"px_per_inch"`
	// ScrollBar is "float" or "fixed"
	ScrollBar string `toml:"scroll_bar" yaml:"scroll_bar"`
}

// Scroll holds scroller physics and input settings
type Scroll struct {
	DecelerationRate   float64 `toml:"deceleration_rate" yaml:"deceleration_rate"`
	Elasticity         float64 `toml:"elasticity" yaml:"elasticity"`
	ThrowElasticity    float64 `toml:"throw_elasticity" yaml:"throw_elasticity"`
	ElasticEdges       bool    `toml:"elastic_edges" yaml:"elastic_edges"`
	FixedThrowDuration bool    `toml:"fixed_throw_duration" yaml:"fixed_throw_duration"`

	// HorizontalPolicy and VerticalPolicy are "auto", "on" or "off"
	HorizontalPolicy string `toml:"horizontal_policy" yaml:"horizontal_policy"`
	VerticalPolicy   string `toml:"vertical_policy" yaml:"vertical_policy"`

	MinimumDragDistance      float64  `toml:"minimum_drag_distance" yaml:"minimum_drag_distance"`
	MinimumPageThrowVelocity float64  `toml:"minimum_page_throw_velocity" yaml:"minimum_page_throw_velocity"`
	PageThrowDuration        Duration `toml:"page_throw_duration" yaml:"page_throw_duration"`
	ElasticSnapDuration      Duration `toml:"elastic_snap_duration" yaml:"elastic_snap_duration"`

	SnapToPages bool    `toml:"snap_to_pages" yaml:"snap_to_pages"`
	PageWidth   float64 `toml:"page_width" yaml:"page_width"`
	PageHeight  float64 `toml:"page_height" yaml:"page_height"`

	WheelStep     float64  `toml:"wheel_step" yaml:"wheel_step"`
	WheelDuration Duration `toml:"wheel_duration" yaml:"wheel_duration"`
	KeyStep       float64  `toml:"key_step" yaml:"key_step"`
	KeyDuration   Duration `toml:"key_duration" yaml:"key_duration"`

	HideScrollBarDuration Duration `toml:"hide_scroll_bar_duration" yaml:"hide_scroll_bar_duration"`
	HideScrollBarDelay    Duration `toml:"hide_scroll_bar_delay" yaml:"hide_scroll_bar_delay"`

	// Ease is "out-quart", "out-cubic", "in-out-quad" or "linear"
	Ease string `toml:"ease" yaml:"ease"`
}

// Drawer holds edge drawer settings
type Drawer struct {
	// Gesture is "edge", "content" or "none"
	Gesture              string   `toml:"gesture" yaml:"gesture"`
	EdgeSize             float64  `toml:"edge_size" yaml:"edge_size"`
	MinimumDragDistance  float64  `toml:"minimum_drag_distance" yaml:"minimum_drag_distance"`
	MinimumThrowVelocity float64  `toml:"minimum_throw_velocity" yaml:"minimum_throw_velocity"`
	Duration             Duration `toml:"duration" yaml:"duration"`
	ElasticEdges         bool     `toml:"elastic_edges" yaml:"elastic_edges"`
	CloseOnContentTap    bool     `toml:"close_on_content_tap" yaml:"close_on_content_tap"`
	// Size of the demo's left panel in terminal columns
	Size float64 `toml:"size" yaml:"size"`
}

// Config is the full settings file
type Config struct {
	Display Display `toml:"display" yaml:"display"`
	Scroll  Scroll  `toml:"scroll" yaml:"scroll"`
	Drawer  Drawer  `toml:"drawer" yaml:"drawer"`
}

// Default returns settings matching the package defaults
func Default() *Config {
	return &Config{
		Display: Display{
			PxPerInch: pointer.DefaultPxPerInch,
			ScrollBar: "float",
		},
		Scroll: Scroll{
			DecelerationRate:         parameter.DecelerationRateNormal,
			Elasticity:               parameter.Elasticity,
			ThrowElasticity:          parameter.ThrowElasticity,
			ElasticEdges:             parameter.HasElasticEdges,
			FixedThrowDuration:       parameter.UseFixedThrowDuration,
			HorizontalPolicy:         "auto",
			VerticalPolicy:           "auto",
			MinimumDragDistance:      parameter.MinimumDragDistance,
			MinimumPageThrowVelocity: parameter.MinimumPageThrowVelocity,
			PageThrowDuration:        D(parameter.PageThrowDuration),
			ElasticSnapDuration:      D(parameter.ElasticSnapDuration),
			WheelStep:                parameter.WheelScrollStep,
			WheelDuration:            D(parameter.WheelScrollDuration),
			KeyStep:                  parameter.KeyScrollStep,
			KeyDuration:              D(parameter.KeyScrollDuration),
			HideScrollBarDuration:    D(parameter.HideScrollBarDuration),
			HideScrollBarDelay:       D(parameter.HideScrollBarDelay),
			Ease:                     "out-quart",
		},
		Drawer: Drawer{
			Gesture:              "edge",
			EdgeSize:             parameter.OpenGestureEdgeSize,
			MinimumDragDistance:  parameter.MinimumDragDistance,
			MinimumThrowVelocity: parameter.MinimumDrawerThrowVelocity,
			Duration:             D(parameter.OpenCloseDuration),
			CloseOnContentTap:    true,
			Size:                 30,
		},
	}
}

// Load reads path over the defaults, choosing the decoder by extension
// Unknown keys are rejected
func Load(path string) (*Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidConfig, ext)
	}

	return cfg, nil
}

// Write encodes c as TOML, creating parent directories
func (c *Config) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
