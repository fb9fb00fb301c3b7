// Package control turns frontend key presses into Simulation operations so
// that every frontend offers the same commands.
package control

import (
	"fmt"
	"log"

	"lifepaint/internal/life"
	"lifepaint/internal/presets"
	"lifepaint/internal/state"
)

// Command is a frontend-independent user action.
type Command int

const (
	Toggle Command = iota
	Step
	Clear
	Random
	Reload
	Export
	Grid
	Border
	Faster
	Slower
	NextPreset
	PrevPreset
	Quit
)

// Speed factors applied by Faster and Slower.
const (
	fasterFactor = 0.5
	slowerFactor = 2
)

var runeCommands = map[rune]Command{
	' ': Toggle,
	'n': Step,
	'c': Clear,
	'r': Random,
	'l': Reload,
	'e': Export,
	'g': Grid,
	'b': Border,
	'+': Faster,
	'=': Faster,
	'-': Slower,
	']': NextPreset,
	'[': PrevPreset,
	'q': Quit,
}

// ForRune maps a typed character to its command.
func ForRune(r rune) (Command, bool) {
	cmd, ok := runeCommands[r]
	return cmd, ok
}

// Legend lists the key bindings for help overlays.
func Legend() []string {
	return []string{
		"space  run / pause",
		"n      step once",
		"c      clear",
		"r      random fill",
		"l      reload mode",
		"e      export mode",
		"g      grid lines",
		"b      border",
		"+ / -  faster / slower",
		"[ / ]  presets",
		"drag   toggle cells",
		"q      quit",
	}
}

// Controller executes commands against one Simulation. Like the Simulation
// it is owned by a single goroutine.
type Controller struct {
	sim    *life.Simulation
	mode   state.Mode
	preset int
	log    *log.Logger
	status string
}

// New returns a Controller for sim. mode is what Reload restores; logger
// receives exported mode strings and may be nil.
func New(sim *life.Simulation, mode state.Mode, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{sim: sim, mode: mode, preset: -1, log: logger}
}

// Simulation returns the controlled simulation.
func (c *Controller) Simulation() *life.Simulation { return c.sim }

// Mode returns the mode Reload restores.
func (c *Controller) Mode() state.Mode { return c.mode }

// Message returns the feedback of the last command.
func (c *Controller) Message() string { return c.status }

// Do runs cmd. It reports false for Quit so that loops can stop.
func (c *Controller) Do(cmd Command) bool {
	switch cmd {
	case Toggle:
		c.sim.Toggle()
		c.status = runningLabel(c.sim.Running())
	case Step:
		c.sim.Stop()
		c.sim.Step()
		c.status = fmt.Sprintf("generation %d", c.sim.Generation())
	case Clear:
		c.sim.Clear()
		c.status = "cleared"
	case Random:
		c.sim.LoadRandom(life.DefaultDensity)
		c.status = "random fill"
	case Reload:
		c.load(c.mode)
	case Export:
		m := state.Capture(c.sim)
		c.log.Printf("mode: %s", m)
		c.status = "exported mode to log"
	case Grid:
		c.sim.SetGridLines(!c.sim.Config().GridLines)
		c.status = "grid lines " + onOff(c.sim.Config().GridLines)
	case Border:
		c.status = "border " + c.sim.CycleBorder().String()
	case Faster:
		c.sim.ScaleSpeed(fasterFactor)
		c.status = fmt.Sprintf("%dms", c.sim.Speed())
	case Slower:
		c.sim.ScaleSpeed(slowerFactor)
		c.status = fmt.Sprintf("%dms", c.sim.Speed())
	case NextPreset:
		c.selectPreset(1)
	case PrevPreset:
		c.selectPreset(-1)
	case Quit:
		return false
	}
	return true
}

// LoadMode applies m and makes it the Reload target.
func (c *Controller) LoadMode(m state.Mode) {
	c.mode = m
	c.load(m)
}

func (c *Controller) load(m state.Mode) {
	if err := m.Apply(c.sim); err != nil {
		c.log.Printf("load mode %q: %v", m, err)
		c.status = err.Error()
		return
	}
	c.status = "loaded " + m.String()
}

// selectPreset moves delta entries through the preset list, wrapping at
// both ends. Before the first selection, forward starts at the first preset
// and backward at the last.
func (c *Controller) selectPreset(delta int) {
	modes := presets.Modes()
	k := c.preset + delta
	if c.preset < 0 {
		k = 0
		if delta < 0 {
			k = len(modes) - 1
		}
	}
	k = ((k % len(modes)) + len(modes)) % len(modes)
	m, err := state.Parse(modes[k].Mode)
	if err != nil {
		c.log.Printf("preset %q: %v", modes[k].Title, err)
		return
	}
	c.preset = k
	c.LoadMode(m)
	c.status = modes[k].Title
}

// Status summarises the simulation for status lines.
func (c *Controller) Status() string {
	return fmt.Sprintf("gen %d  pop %d  %dms  %s  %s  %s",
		c.sim.Generation(), c.sim.Population(), c.sim.Speed(),
		c.sim.Rules(), c.sim.Border(), runningLabel(c.sim.Running()))
}

func runningLabel(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
