// Package state encodes a complete starting setup as a compact mode string
// such as "23/3|glider-gun|+10x5|120x80|nogrid|50ms|torus|autoplay".
//
// Tokens are separated by '|' and may appear in any order. Each token kind
// is recognised by its shape:
//
//	a/b       rules, survive digits before the slash, birth digits after
//	name      a named pattern, or "random"
//	{...}     inline pattern data as a JSON object of row -> columns
//	+JxI      pattern offset, column J and row I
//	WxH       grid width and height
//	nogrid    hide the grid lines
//	Nms       step interval in milliseconds
//	torus     border topology, also "alive" and "dead"
//	autoplay  start running after loading
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lifepaint/internal/core"
	"lifepaint/internal/life"
	"lifepaint/internal/presets"
)

// ErrSyntax is returned for tokens that match no known shape or carry
// malformed values.
var ErrSyntax = errors.New("state: bad mode token")

const maxOffset = core.MaxDim - 1

// Mode is a decoded mode string. Pattern names a registered pattern or
// presets.Random; when it is empty Data holds the inline cells.
type Mode struct {
	Rules     life.Rules
	Pattern   string
	Data      life.Pattern
	Offset    life.Offset
	Size      core.Size
	GridLines bool
	Speed     int
	Border    life.Border
	Autoplay  bool
}

// Default returns the mode that corresponds to life.DefaultConfig with an
// empty pattern.
func Default() Mode { return FromConfig(life.DefaultConfig()) }

// FromConfig returns a mode carrying the settings of cfg and an empty
// pattern.
func FromConfig(cfg life.Config) Mode {
	return Mode{
		Rules:     cfg.Rules,
		Data:      life.Pattern{},
		Size:      core.ClampSize(cfg.Size),
		GridLines: cfg.GridLines,
		Speed:     int(cfg.Speed.Milliseconds()),
		Border:    cfg.Border,
	}
}

// Parse decodes s on top of Default. An empty string yields Default.
func Parse(s string) (Mode, error) { return ParseOver(Default(), s) }

// ParseOver decodes s on top of base. Tokens absent from s keep the value
// they have in base. On error base is returned unchanged.
func ParseOver(base Mode, s string) (Mode, error) {
	m := base
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return m, nil
	}
	for _, tok := range strings.Split(s, "|") {
		if err := m.apply(tok); err != nil {
			return base, err
		}
	}
	return m, nil
}

func (m *Mode) apply(tok string) error {
	switch {
	case tok == "":
		return nil
	case tok == "nogrid":
		m.GridLines = false
	case tok == "autoplay":
		m.Autoplay = true
	case tok == "torus" || tok == "alive" || tok == "dead":
		b, err := life.ParseBorder(tok)
		if err != nil {
			return err
		}
		m.Border = b
	case strings.HasPrefix(tok, "{"):
		var data life.Pattern
		if err := json.Unmarshal([]byte(tok), &data); err != nil {
			return fmt.Errorf("%w: pattern data: %v", ErrSyntax, err)
		}
		m.Pattern = ""
		m.Data = data
	case strings.Contains(tok, "/"):
		r, err := life.ParseRules(tok)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		m.Rules = r
	case strings.HasPrefix(tok, "+"):
		col, row, err := pair(strings.TrimPrefix(tok, "+"))
		if err != nil {
			return err
		}
		m.Offset = life.Offset{
			Row: core.ClampInt(row, 0, maxOffset),
			Col: core.ClampInt(col, 0, maxOffset),
		}
	case strings.HasSuffix(tok, "ms"):
		ms, err := strconv.Atoi(strings.TrimSuffix(tok, "ms"))
		if err != nil {
			return fmt.Errorf("%w: speed %q", ErrSyntax, tok)
		}
		m.Speed = core.ClampInt(ms, 0, life.MaxSpeedMS)
	case strings.Contains(tok, "x") && isDigit(tok[0]):
		w, h, err := pair(tok)
		if err != nil {
			return err
		}
		m.Size = core.ClampSize(core.Size{W: w, H: h})
	case presets.Known(tok):
		m.Pattern = tok
		m.Data = nil
	default:
		return fmt.Errorf("%w: %q", ErrSyntax, tok)
	}
	return nil
}

func pair(s string) (a, b int, err error) {
	left, right, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if a, err = strconv.Atoi(left); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if b, err = strconv.Atoi(right); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return a, b, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// String encodes m, omitting tokens that equal their default so that
// Parse(m.String()) reproduces m.
func (m Mode) String() string {
	def := Default()
	toks := []string{m.Rules.String()}
	switch {
	case m.Pattern != "":
		toks = append(toks, m.Pattern)
	case len(m.Data) > 0:
		raw, err := json.Marshal(m.Data)
		if err == nil {
			toks = append(toks, string(raw))
		}
	}
	if m.Offset != (life.Offset{}) {
		toks = append(toks, fmt.Sprintf("+%dx%d", m.Offset.Col, m.Offset.Row))
	}
	if m.Size != def.Size {
		toks = append(toks, fmt.Sprintf("%dx%d", m.Size.W, m.Size.H))
	}
	if !m.GridLines {
		toks = append(toks, "nogrid")
	}
	if m.Speed != def.Speed {
		toks = append(toks, strconv.Itoa(m.Speed)+"ms")
	}
	if m.Border != def.Border {
		toks = append(toks, m.Border.String())
	}
	if m.Autoplay {
		toks = append(toks, "autoplay")
	}
	return strings.Join(toks, "|")
}

// Config overlays m on base. Seed and surface bounds come from base.
func (m Mode) Config(base life.Config) life.Config {
	base.Size = m.Size
	base.Rules = m.Rules
	base.Border = m.Border
	base.GridLines = m.GridLines
	base.Speed = life.SpeedInterval(m.Speed)
	return base
}

// Apply reconfigures sim from m, loads its pattern and starts the clock when
// Autoplay is set.
func (m Mode) Apply(sim *life.Simulation) error {
	sim.Stop()
	sim.Configure(m.Config(sim.Config()))
	switch m.Pattern {
	case "":
		sim.LoadPattern(m.Offset.Row, m.Offset.Col, m.Data)
	case presets.Random:
		sim.LoadRandom(life.DefaultDensity)
	default:
		p, err := presets.Lookup(m.Pattern)
		if err != nil {
			return err
		}
		sim.LoadPattern(m.Offset.Row, m.Offset.Col, p)
	}
	if m.Autoplay {
		sim.Start()
	}
	return nil
}

// Capture describes the current state of sim as a mode with inline pattern
// data positioned at the bounding box of the live cells.
func Capture(sim *life.Simulation) Mode {
	cfg := sim.Config()
	m := Mode{
		Rules:     sim.Rules(),
		Data:      life.Pattern{},
		Size:      sim.Size(),
		GridLines: cfg.GridLines,
		Speed:     sim.Speed(),
		Border:    sim.Border(),
		Autoplay:  sim.Running(),
	}
	if snap, ok := sim.ExportSparse(); ok {
		m.Offset = snap.Offset
		m.Data = snap.Pattern
	} else {
		m.Pattern = "clean"
	}
	return m
}
