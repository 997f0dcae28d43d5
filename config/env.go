package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables recognized by ApplyEnv
const (
	EnvPxPerInch     = "KINETIC_PX_PER_INCH"
	EnvDeceleration  = "KINETIC_DECELERATION_RATE"
	EnvElasticEdges  = "KINETIC_ELASTIC_EDGES"
	EnvSnapToPages   = "KINETIC_SNAP_TO_PAGES"
	EnvScrollBar     = "KINETIC_SCROLL_BAR"
	EnvEase          = "KINETIC_EASE"
	EnvDrawerGesture = "KINETIC_DRAWER_GESTURE"
	EnvDrawerTime    = "KINETIC_DRAWER_DURATION"
)

// ApplyEnv overrides settings from the environment
// Unparseable values are ignored and leave the current setting in place
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPxPerInch); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Display.PxPerInch = f
		}
	}
	if v := os.Getenv(EnvDeceleration); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Scroll.DecelerationRate = f
		}
	}
	if v := os.Getenv(EnvElasticEdges); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Scroll.ElasticEdges = b
		}
	}
	if v := os.Getenv(EnvSnapToPages); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Scroll.SnapToPages = b
		}
	}
	if v := os.Getenv(EnvScrollBar); v != "" {
		c.Display.ScrollBar = v
	}
	if v := os.Getenv(EnvEase); v != "" {
		c.Scroll.Ease = v
	}
	if v := os.Getenv(EnvDrawerGesture); v != "" {
		c.Drawer.Gesture = v
	}
	if v := os.Getenv(EnvDrawerTime); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Drawer.Duration = D(d)
		}
	}
}
