package app

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"strings"

	"lifepaint/internal/life"
	"lifepaint/internal/presets"
	"lifepaint/internal/state"
)

var errBadSet = errors.New("want key=value")

// Config represents the command-line parameters shared by every frontend.
type Config struct {
	Mode     string
	Preset   int
	Set      map[string]string
	MaxW     int
	MaxH     int
	HUDWidth int
	TPS      int
	List     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: -1, Set: map[string]string{}, MaxW: 1000, MaxH: 1000, HUDWidth: 220, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "mode string, e.g. 23/3|glider-gun|+10x5|torus|autoplay")
	fs.IntVar(&c.Preset, "preset", c.Preset, "start from preset N (see -list)")
	fs.Func("set", "base setting key=value (w, h, rules, border, grid, speed, seed); repeatable", func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok {
			return errBadSet
		}
		c.Set[strings.TrimSpace(k)] = strings.TrimSpace(v)
		return nil
	})
	fs.IntVar(&c.MaxW, "max-w", c.MaxW, "maximum surface width in pixels")
	fs.IntVar(&c.MaxH, "max-h", c.MaxH, "maximum surface height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.BoolVar(&c.List, "list", c.List, "print the presets and exit")
}

// Resolve combines the -set base, the chosen preset and the -mode tokens,
// in that order of increasing precedence.
func (c *Config) Resolve() (life.Config, state.Mode, error) {
	cfg := life.FromMap(c.Set)
	cfg.MaxSurface = image.Pt(c.MaxW, c.MaxH)

	text := c.Mode
	if c.Preset >= 0 {
		modes := presets.Modes()
		if c.Preset >= len(modes) {
			return cfg, state.Mode{}, fmt.Errorf("preset %d out of range [0, %d)", c.Preset, len(modes))
		}
		text = modes[c.Preset].Mode + "|" + text
	}
	m, err := state.ParseOver(state.FromConfig(cfg), text)
	if err != nil {
		return cfg, m, err
	}
	return m.Config(cfg), m, nil
}

// NewSimulation resolves the configuration and returns a loaded Simulation
// together with the mode it was loaded from.
func (c *Config) NewSimulation() (*life.Simulation, state.Mode, error) {
	cfg, m, err := c.Resolve()
	if err != nil {
		return nil, m, err
	}
	sim := life.New(cfg)
	if err := m.Apply(sim); err != nil {
		return nil, m, err
	}
	return sim, m, nil
}

// PrintPresets writes the numbered preset list.
func PrintPresets(w io.Writer) {
	for k, m := range presets.Modes() {
		fmt.Fprintf(w, "%2d  %-52s %s\n", k, m.Title, m.Mode)
	}
}
