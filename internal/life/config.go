package life

import (
	"image"
	"strconv"
	"time"

	"lifepaint/internal/core"
)

const (
	// MaxSpeedMS is the slowest accepted step interval in milliseconds.
	MaxSpeedMS = 10000
	// DefaultDensity is the live-cell probability used by LoadRandom callers
	// that have no preference.
	DefaultDensity = 0.5
)

// Config holds everything needed to (re)initialise a Simulation.
type Config struct {
	Size      core.Size
	Rules     Rules
	Border    Border
	GridLines bool

	// MaxSurface bounds the drawing surface in pixels; the surface actually
	// used is the largest one inside it that keeps the grid aspect.
	MaxSurface image.Point
	Speed      time.Duration
	Seed       int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:       core.Size{W: 100, H: 50},
		Rules:      Conway(),
		Border:     AssumeDead,
		GridLines:  true,
		MaxSurface: image.Pt(1000, 1000),
		Speed:      100 * time.Millisecond,
		Seed:       42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Invalid values keep their defaults; numeric values are clamped.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size.W = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size.H = parsed
		}
	}
	c.Size = core.ClampSize(c.Size)
	if v, ok := cfg["rules"]; ok {
		if parsed, err := ParseRules(v); err == nil {
			c.Rules = parsed
		}
	}
	if v, ok := cfg["border"]; ok {
		if parsed, err := ParseBorder(v); err == nil {
			c.Border = parsed
		}
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.GridLines = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Speed = SpeedInterval(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// SpeedInterval converts milliseconds to a step interval clamped to
// [0, MaxSpeedMS].
func SpeedInterval(ms int) time.Duration {
	return time.Duration(core.ClampInt(ms, 0, MaxSpeedMS)) * time.Millisecond
}
