package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/kinetic/drawer"
	"github.com/lixenwraith/kinetic/scroll"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kinetic.toml")

	cfg := Default()
	cfg.Scroll.SnapToPages = true
	cfg.Scroll.PageWidth = 120
	cfg.Scroll.WheelDuration = D(90 * time.Millisecond)
	cfg.Drawer.Gesture = "content"

	if err := cfg.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kinetic.yaml")
	data := "display:\n  px_per_inch: 96\nscroll:\n  ease: linear\n  key_duration: 0s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	want.Display.PxPerInch = 96
	want.Scroll.Ease = "linear"
	want.Scroll.KeyDuration = D(0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unknown toml key", "a.toml", "[scroll]\nfriction = 3\n"},
		{"unknown yaml key", "a.yaml", "scroll:\n  friction: 3\n"},
		{"bad duration", "b.toml", "[drawer]\nduration = \"soon\"\n"},
		{"bad extension", "c.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPxPerInch, "240")
	t.Setenv(EnvDeceleration, "0.99")
	t.Setenv(EnvSnapToPages, "true")
	t.Setenv(EnvElasticEdges, "not-a-bool")
	t.Setenv(EnvDrawerTime, "1s")
	t.Setenv(EnvDrawerGesture, "none")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Display.PxPerInch != 240 {
		t.Errorf("Expected px_per_inch 240, got %v", cfg.Display.PxPerInch)
	}
	if cfg.Scroll.DecelerationRate != 0.99 {
		t.Errorf("Expected deceleration 0.99, got %v", cfg.Scroll.DecelerationRate)
	}
	if !cfg.Scroll.SnapToPages {
		t.Error("Expected snap_to_pages from env")
	}
	if !cfg.Scroll.ElasticEdges {
		t.Error("Expected invalid bool to leave elastic edges on")
	}
	if cfg.Drawer.Duration.Duration != time.Second {
		t.Errorf("Expected drawer duration 1s, got %v", cfg.Drawer.Duration)
	}
	if cfg.Drawer.Gesture != "none" {
		t.Errorf("Expected gesture none, got %q", cfg.Drawer.Gesture)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"density", func(c *Config) { c.Display.PxPerInch = 0 }},
		{"deceleration", func(c *Config) { c.Scroll.DecelerationRate = 1 }},
		{"elasticity", func(c *Config) { c.Scroll.Elasticity = 2 }},
		{"policy", func(c *Config) { c.Scroll.VerticalPolicy = "sometimes" }},
		{"scroll bar", func(c *Config) { c.Display.ScrollBar = "hidden" }},
		{"ease", func(c *Config) { c.Scroll.Ease = "bounce" }},
		{"gesture", func(c *Config) { c.Drawer.Gesture = "swipe" }},
		{"negative duration", func(c *Config) { c.Scroll.WheelDuration = D(-time.Second) }},
		{"negative drawer size", func(c *Config) { c.Drawer.Size = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestScrollOptions(t *testing.T) {
	cfg := Default()
	cfg.Scroll.HorizontalPolicy = "off"
	cfg.Scroll.VerticalPolicy = "on"
	cfg.Display.ScrollBar = "fixed"
	cfg.Scroll.ElasticEdges = false

	o, err := cfg.ScrollOptions(nil, nil)
	if err != nil {
		t.Fatalf("ScrollOptions failed: %v", err)
	}
	if o.HorizontalPolicy != scroll.PolicyOff || o.VerticalPolicy != scroll.PolicyOn {
		t.Errorf("Expected off/on policies, got %v/%v", o.HorizontalPolicy, o.VerticalPolicy)
	}
	if o.ScrollBarMode != scroll.ScrollBarFixed {
		t.Errorf("Expected fixed scroll bar, got %v", o.ScrollBarMode)
	}
	if o.Params.HasElasticEdges {
		t.Error("Expected rigid edges")
	}
	if o.Metric.PxPerInch != cfg.Display.PxPerInch {
		t.Errorf("Expected density %v, got %v", cfg.Display.PxPerInch, o.Metric.PxPerInch)
	}

	def := scroll.DefaultOptions()
	if o.WheelDuration != def.WheelDuration || o.PageThrowDuration != def.PageThrowDuration {
		t.Errorf("Expected default durations, got wheel %v page %v", o.WheelDuration, o.PageThrowDuration)
	}
	if o.Ease(0.5) != def.Ease(0.5) {
		t.Error("Expected default ease curve")
	}
}

func TestDrawerOptions(t *testing.T) {
	cfg := Default()
	o, err := cfg.DrawerOptions(nil, nil)
	if err != nil {
		t.Fatalf("DrawerOptions failed: %v", err)
	}
	def := drawer.DefaultOptions()
	if o.Gesture != def.Gesture || o.EdgeSize != def.EdgeSize || o.Duration != def.Duration {
		t.Errorf("Expected defaults, got gesture %v edge %v duration %v", o.Gesture, o.EdgeSize, o.Duration)
	}
	if o.Params.HasElasticEdges {
		t.Error("Expected drawers to default to hard edges")
	}
	if !o.CloseOnContentTap {
		t.Error("Expected close on content tap")
	}

	cfg.Drawer.Gesture = "content"
	if o, _ = cfg.DrawerOptions(nil, nil); o.Gesture != drawer.GestureContent {
		t.Errorf("Expected content gesture, got %v", o.Gesture)
	}
}
