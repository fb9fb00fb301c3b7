// Package life implements a generalized Game of Life with selectable border
// topology, a pluggable survive/revive rule table and drag-to-toggle painting.
//
// A Simulation is owned by a single goroutine. Hosts feed it input, resize
// and timer events in arrival order and draw whatever its callbacks report.
package life

import (
	"image"
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/layout"
)

// Simulation ties the grid store, rules, topology, painter, coordinate
// mapper and clock together behind one set of operations.
type Simulation struct {
	cfg   Config
	avail image.Point

	grid   *Grid
	topo   Topology
	paint  *Painter
	mapper *layout.Mapper
	clock  *core.Clock
	rng    *core.RNG
	on     listeners

	dirty      bool
	generation int
}

// New builds a stopped Simulation with an empty grid.
func New(cfg Config) *Simulation {
	s := &Simulation{clock: core.NewClock(cfg.Speed), rng: core.NewRNG(cfg.Seed)}
	s.grid = NewGrid(cfg.Size)
	s.paint = NewPainter(s.grid)
	s.apply(cfg)
	return s
}

// Configure replaces size, rules, border, grid lines and speed, clearing
// the grid. A running simulation keeps running.
func (s *Simulation) Configure(cfg Config) {
	s.paint.Discard()
	s.grid.Resize(cfg.Size)
	s.apply(cfg)
	s.on.emitReset()
}

func (s *Simulation) apply(cfg Config) {
	cfg.Size = s.grid.Size()
	s.cfg = cfg
	s.topo = NewTopology(cfg.Border, cfg.Size)
	s.clock.SetInterval(cfg.Speed)
	s.cfg.Speed = s.clock.Interval()
	s.rebuildMapper()
	s.dirty = false
	s.generation = 0
}

func (s *Simulation) rebuildMapper() {
	surface := layout.FitSurface(s.cfg.Size, s.cfg.MaxSurface, s.avail)
	s.mapper = layout.NewMapper(s.cfg.Size, surface.X, surface.Y, s.cfg.GridLines)
}

// OnCellChanged registers fn for every simulated, committed or previewed
// single-cell change.
func (s *Simulation) OnCellChanged(fn CellFunc) {
	if fn != nil {
		s.on.cell = append(s.on.cell, fn)
	}
}

// OnReset registers fn for events after which every cell must be redrawn.
func (s *Simulation) OnReset(fn func()) {
	if fn != nil {
		s.on.reset = append(s.on.reset, fn)
	}
}

// Name identifies the simulation.
func (s *Simulation) Name() string { return "life" }

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.grid.Size() }

// Rules returns the active rule table.
func (s *Simulation) Rules() Rules { return s.cfg.Rules }

// Border returns the active border policy.
func (s *Simulation) Border() Border { return s.topo.Border() }

// Mapper returns the coordinate tables for the current surface.
func (s *Simulation) Mapper() *layout.Mapper { return s.mapper }

// Surface returns the drawing surface size in pixels.
func (s *Simulation) Surface() image.Point { return s.mapper.Surface() }

// Alive reports the committed state of row i, column j.
func (s *Simulation) Alive(i, j int) bool { return s.grid.Alive(i, j) }

// StateAt returns the state to draw for row i, column j.
func (s *Simulation) StateAt(i, j int) CellState { return s.paint.StateAt(i, j) }

// Dirty reports whether the generation diverged from the last load.
func (s *Simulation) Dirty() bool { return s.dirty }

// Generation counts steps since the last load or configure.
func (s *Simulation) Generation() int { return s.generation }

// Population counts live cells.
func (s *Simulation) Population() int { return s.grid.Population() }

// Resize changes the grid dimensions, clearing the grid.
func (s *Simulation) Resize(w, h int) {
	cfg := s.cfg
	cfg.Size = core.Size{W: w, H: h}
	s.Configure(cfg)
}

// SetRules replaces the rule table.
func (s *Simulation) SetRules(r Rules) { s.cfg.Rules = r }

// SetBorder replaces the border policy.
func (s *Simulation) SetBorder(b Border) {
	s.cfg.Border = b
	s.topo = NewTopology(b, s.grid.Size())
}

// CycleBorder switches to the next border policy and returns it.
func (s *Simulation) CycleBorder() Border {
	s.SetBorder(s.topo.Border().Next())
	return s.topo.Border()
}

// SetGridLines toggles the one pixel separators between cells.
func (s *Simulation) SetGridLines(on bool) {
	if on == s.cfg.GridLines {
		return
	}
	s.cfg.GridLines = on
	s.paint.Discard()
	s.rebuildMapper()
	s.on.emitReset()
}

// ResizeSurface records the pixel space the host can offer and refits the
// surface into it. An open stroke is discarded because its coordinates are
// no longer meaningful.
func (s *Simulation) ResizeSurface(w, h int) {
	s.avail = image.Pt(w, h)
	s.paint.Discard()
	s.rebuildMapper()
	s.on.emitReset()
}

// LoadPattern clears the grid and places p with its origin at (row, col).
// Cells that fall outside the grid are dropped.
func (s *Simulation) LoadPattern(row, col int, p Pattern) {
	s.reload(func() { s.grid.place(row, col, p) })
}

// LoadRandom clears the grid and makes each cell alive with the given
// probability, clamped to [0, 1].
func (s *Simulation) LoadRandom(density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	s.reload(func() { core.FillChance(s.rng.Source(), s.grid.Cells(), density) })
}

// Clear kills every cell.
func (s *Simulation) Clear() { s.reload(func() {}) }

func (s *Simulation) reload(fill func()) {
	wasRunning := s.clock.Running()
	s.clock.Stop()
	s.paint.Discard()
	s.grid.Resize(s.grid.Size())
	fill()
	s.dirty = false
	s.generation = 0
	s.on.emitReset()
	if wasRunning {
		s.clock.Start()
	}
}

// ExportSparse returns the live cells relative to their bounding box. ok is
// false when the grid is empty.
func (s *Simulation) ExportSparse() (Snapshot, bool) { return s.grid.export() }

// Step advances one generation. Every cell is evaluated against the
// pre-step generation before the buffers swap.
func (s *Simulation) Step() {
	size := s.grid.Size()
	cur := s.grid.cur.Cells()
	nxt := s.grid.nxt.Cells()
	rules := &s.cfg.Rules
	for i := 0; i < size.H; i++ {
		for j := 0; j < size.W; j++ {
			idx := i*size.W + j
			alive := cur[idx]
			next := rules.Next(alive, s.topo.Count(cur, i, j))
			nxt[idx] = next
			if next != alive {
				s.on.emitCell(i, j, s.paint.overlayState(i, j, next))
			}
		}
	}
	s.grid.Swap()
	s.dirty = true
	s.generation++
}

// Start schedules recurring steps. It does nothing when already running.
func (s *Simulation) Start() { s.clock.Start() }

// Stop cancels scheduled steps. It is safe to call when stopped.
func (s *Simulation) Stop() { s.clock.Stop() }

// Toggle starts a stopped simulation or stops a running one.
func (s *Simulation) Toggle() {
	if s.clock.Running() {
		s.clock.Stop()
		return
	}
	s.clock.Start()
}

// Running reports whether steps are scheduled.
func (s *Simulation) Running() bool { return s.clock.Running() }

// SetSpeed changes the step interval in milliseconds, clamped to
// [0, MaxSpeedMS]. A running simulation is rescheduled immediately.
func (s *Simulation) SetSpeed(ms int) {
	s.clock.SetInterval(SpeedInterval(ms))
	s.cfg.Speed = s.clock.Interval()
}

// Speed returns the step interval in milliseconds.
func (s *Simulation) Speed() int { return int(s.clock.Interval() / time.Millisecond) }

// ScaleSpeed multiplies the interval by factor, keeping it in [1, MaxSpeedMS].
func (s *Simulation) ScaleSpeed(factor float64) {
	ms := int(float64(s.Speed()) * factor)
	s.SetSpeed(core.ClampInt(ms, 1, MaxSpeedMS))
}

// SetClock replaces the time source, mainly for tests.
func (s *Simulation) SetClock(now func() time.Time) {
	s.clock.Now = now
}

// Tick runs the steps owed by the clock. Hosts call it from their frame or
// timer callback.
func (s *Simulation) Tick() int {
	n := s.clock.Due()
	for k := 0; k < n; k++ {
		s.Step()
	}
	return n
}

// Painting reports whether a stroke is open.
func (s *Simulation) Painting() bool { return s.paint.Active() }

// PointerDown opens a stroke, if none is open, and marks the cell under the
// pointer.
func (s *Simulation) PointerDown(px, py int) {
	s.paint.Begin()
	s.paintAt(px, py)
}

// PointerMove marks the cell under the pointer while a stroke is open.
func (s *Simulation) PointerMove(px, py int) {
	if !s.paint.Active() {
		return
	}
	s.paintAt(px, py)
}

// PointerUp commits the open stroke. Hosts must also call it when they see
// the button released outside a tracked move.
func (s *Simulation) PointerUp() {
	if !s.paint.Active() {
		return
	}
	if s.paint.End(s.on.emitCell) > 0 {
		s.dirty = true
	}
}

func (s *Simulation) paintAt(px, py int) {
	i, j, ok := s.mapper.CellAt(px, py)
	if !ok {
		return
	}
	if state, changed := s.paint.Mark(i, j); changed {
		s.on.emitCell(i, j, state)
	}
}
