package life

import (
	"image"
	"slices"
	"testing"
	"time"

	"lifepaint/internal/core"
)

func newTestSim(w, h int, border Border) *Simulation {
	cfg := DefaultConfig()
	cfg.Size = core.Size{W: w, H: h}
	cfg.Border = border
	return New(cfg)
}

// pixelOf returns a surface pixel that resolves to row i, column j.
func pixelOf(s *Simulation, i, j int) (int, int) {
	p := s.Mapper().PixelOf(i, j)
	return p.X, p.Y
}

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) advance(d time.Duration) { f.now = f.now.Add(d) }

func TestBlinkerOscillation(t *testing.T) {
	sim := newTestSim(5, 5, Torus)
	sim.LoadPattern(1, 2, Pattern{0: {0}, 1: {0}, 2: {0}})

	sim.Step()
	expects := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if got := sim.Alive(i, j); got != expects[[2]int{i, j}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", i, j, got, !got)
			}
		}
	}

	sim.Step()
	expects = map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if got := sim.Alive(i, j); got != expects[[2]int{i, j}] {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", i, j, got, !got)
			}
		}
	}
	if sim.Generation() != 2 || !sim.Dirty() {
		t.Fatalf("generation=%d dirty=%v after two steps", sim.Generation(), sim.Dirty())
	}
}

func TestBlockIsStable(t *testing.T) {
	for _, border := range []Border{AssumeDead, Torus} {
		sim := newTestSim(8, 8, border)
		sim.LoadPattern(3, 3, Pattern{0: {0, 1}, 1: {0, 1}})
		before := slices.Clone(sim.grid.Cells())

		events := 0
		sim.OnCellChanged(func(int, int, CellState) { events++ })
		for k := 0; k < 4; k++ {
			sim.Step()
		}
		if !slices.Equal(before, sim.grid.Cells()) {
			t.Fatalf("%s: block changed after stepping", border)
		}
		if events != 0 {
			t.Fatalf("%s: stable block emitted %d cell events", border, events)
		}
	}
}

func TestStepEmitsOnlyChangedCells(t *testing.T) {
	sim := newTestSim(5, 5, AssumeDead)
	sim.LoadPattern(2, 1, Pattern{0: {0, 1, 2}})

	changed := map[[2]int]CellState{}
	sim.OnCellChanged(func(i, j int, state CellState) { changed[[2]int{i, j}] = state })
	sim.Step()

	want := map[[2]int]CellState{
		{2, 1}: Dead, {2, 3}: Dead,
		{1, 2}: Alive, {3, 2}: Alive,
	}
	if len(changed) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(changed), len(want), changed)
	}
	for cell, state := range want {
		if changed[cell] != state {
			t.Fatalf("cell %v event = %s, want %s", cell, changed[cell], state)
		}
	}
}

func TestAssumeAliveBorderRevivesEdges(t *testing.T) {
	// A dead edge cell on an empty grid sees three phantom neighbours, which
	// satisfies the Conway birth rule.
	sim := newTestSim(5, 5, AssumeAlive)
	sim.Step()
	if !sim.Alive(0, 2) {
		t.Fatal("edge cell should be born from off-grid neighbours")
	}
	if sim.Alive(2, 2) {
		t.Fatal("interior cell should stay dead")
	}
	if sim.Alive(0, 0) {
		t.Fatal("corner cell sees five neighbours and must stay dead")
	}
}

func TestStrokeTogglesCellOnce(t *testing.T) {
	sim := newTestSim(10, 10, AssumeDead)
	x0, y0 := pixelOf(sim, 4, 4)
	x1, y1 := pixelOf(sim, 4, 5)

	for _, start := range []bool{false, true} {
		if sim.Alive(4, 4) != start {
			t.Fatalf("cell (4,4) alive=%v before stroke, want %v", !start, start)
		}

		sim.PointerDown(x0, y0)
		sim.PointerMove(x1, y1)
		sim.PointerMove(x0, y0)
		sim.PointerMove(x0, y0)
		sim.PointerUp()

		if got := sim.Alive(4, 4); got == start {
			t.Fatalf("cell (4,4) started alive=%v and was not toggled exactly once", start)
		}
		if sim.Painting() {
			t.Fatal("stroke still open after PointerUp")
		}
	}
}

func TestStrokePreviewAndCommitEvents(t *testing.T) {
	sim := newTestSim(10, 10, AssumeDead)
	sim.LoadPattern(0, 0, Pattern{0: {0}})

	var events []CellState
	sim.OnCellChanged(func(i, j int, state CellState) { events = append(events, state) })

	x, y := pixelOf(sim, 0, 0)
	sim.PointerDown(x, y)
	if got := sim.StateAt(0, 0); got != Dying {
		t.Fatalf("preview of live cell = %s, want dying", got)
	}
	x, y = pixelOf(sim, 0, 1)
	sim.PointerMove(x, y)
	if got := sim.StateAt(0, 1); got != Reviving {
		t.Fatalf("preview of dead cell = %s, want reviving", got)
	}
	if !sim.Alive(0, 0) || sim.Alive(0, 1) {
		t.Fatal("preview must not change committed state")
	}

	sim.PointerUp()
	want := []CellState{Dying, Reviving, Dead, Alive}
	if !slices.Equal(events, want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	if sim.StateAt(0, 0) != Dead || sim.StateAt(0, 1) != Alive {
		t.Fatal("commit did not apply marks")
	}
	if !sim.Dirty() {
		t.Fatal("commit should mark the generation dirty")
	}
}

func TestOldMarksNeverMatchLaterStrokes(t *testing.T) {
	sim := newTestSim(6, 6, AssumeDead)
	x, y := pixelOf(sim, 1, 1)
	sim.PointerDown(x, y)
	sim.PointerUp()
	if !sim.Alive(1, 1) {
		t.Fatal("first stroke did not revive cell")
	}

	x2, y2 := pixelOf(sim, 3, 3)
	sim.PointerDown(x2, y2)
	sim.PointerUp()
	if !sim.Alive(1, 1) || !sim.Alive(3, 3) {
		t.Fatal("second stroke must not revisit marks of the first")
	}
}

func TestPointerMoveWithoutStrokeIsIgnored(t *testing.T) {
	sim := newTestSim(6, 6, AssumeDead)
	x, y := pixelOf(sim, 2, 2)
	sim.PointerMove(x, y)
	sim.PointerUp()
	if sim.Alive(2, 2) {
		t.Fatal("move without a stroke must not paint")
	}
	sim.PointerDown(-5, -5)
	if !sim.Painting() {
		t.Fatal("pointer down outside the surface still opens a stroke")
	}
	sim.PointerUp()
	if sim.Population() != 0 {
		t.Fatal("off-surface pointer must not mark cells")
	}
}

func TestEmptyStrokeLeavesGenerationClean(t *testing.T) {
	sim := newTestSim(6, 6, AssumeDead)
	sim.PointerDown(-5, -5)
	sim.PointerUp()
	if sim.Dirty() {
		t.Fatal("a stroke that marked nothing must not dirty the generation")
	}

	x, y := pixelOf(sim, 2, 2)
	sim.PointerDown(x, y)
	sim.PointerUp()
	if !sim.Dirty() {
		t.Fatal("a committed stroke must dirty the generation")
	}
}

func TestResizeDuringStrokeDiscardsIt(t *testing.T) {
	sim := newTestSim(10, 10, AssumeDead)
	x, y := pixelOf(sim, 2, 2)
	sim.PointerDown(x, y)

	sim.Resize(12, 9)
	if sim.Painting() {
		t.Fatal("resize must close the open stroke")
	}
	for _, mark := range sim.grid.overlay.Cells() {
		if mark != 0 {
			t.Fatal("overlay holds marks after resize")
		}
	}
	sim.PointerUp()
	if sim.Population() != 0 {
		t.Fatal("discarded stroke was committed")
	}
	if got := sim.Size(); got != (core.Size{W: 12, H: 9}) {
		t.Fatalf("size = %+v", got)
	}
}

func TestResizeSameShapeResetsInPlace(t *testing.T) {
	sim := newTestSim(10, 10, AssumeDead)
	sim.LoadRandom(1)
	cells := sim.grid.Cells()
	x, y := pixelOf(sim, 2, 2)
	sim.PointerDown(x, y)

	sim.Resize(10, 10)
	if &cells[0] != &sim.grid.Cells()[0] {
		t.Fatal("same-shape resize should reuse storage")
	}
	if sim.Population() != 0 || sim.Painting() {
		t.Fatal("same-shape resize should clear cells and stroke")
	}
}

func TestSurfaceResizeDuringStrokeDiscardsIt(t *testing.T) {
	sim := newTestSim(10, 10, AssumeDead)
	resets := 0
	sim.OnReset(func() { resets++ })

	x, y := pixelOf(sim, 5, 5)
	sim.PointerDown(x, y)
	sim.ResizeSurface(300, 300)
	sim.PointerUp()

	if sim.Population() != 0 {
		t.Fatal("stroke survived a surface resize")
	}
	if resets != 1 {
		t.Fatalf("resets = %d, want 1", resets)
	}
	if got := sim.Surface(); got != image.Pt(300, 300) {
		t.Fatalf("surface = %v, want 300x300", got)
	}
}

func TestExportRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = core.Size{W: 23, H: 17}
	cfg.Seed = 7
	sim := New(cfg)
	sim.LoadRandom(0.3)
	sim.Step()

	snap, ok := sim.ExportSparse()
	if !ok {
		t.Fatal("expected a non-empty export")
	}
	if snap.Pattern.Cells() != sim.Population() {
		t.Fatalf("export holds %d cells, grid has %d", snap.Pattern.Cells(), sim.Population())
	}

	fresh := New(cfg)
	fresh.LoadPattern(snap.Offset.Row, snap.Offset.Col, snap.Pattern)
	if !slices.Equal(sim.grid.Cells(), fresh.grid.Cells()) {
		t.Fatal("loading the export did not reproduce the generation")
	}
	if fresh.Dirty() {
		t.Fatal("a fresh load must not be dirty")
	}
}

func TestPatternRowsAscending(t *testing.T) {
	p := Pattern{7: {0}, -1: {2}, 3: {1}, 0: {4}}
	if got := p.Rows(); !slices.Equal(got, []int{-1, 0, 3, 7}) {
		t.Fatalf("rows = %v", got)
	}
}

func TestExportBoundingBox(t *testing.T) {
	sim := newTestSim(10, 10, AssumeDead)
	if _, ok := sim.ExportSparse(); ok {
		t.Fatal("empty grid must export the empty sentinel")
	}

	sim.LoadPattern(3, 4, Pattern{0: {2}, 2: {0, 1}})
	snap, ok := sim.ExportSparse()
	if !ok {
		t.Fatal("expected export")
	}
	if snap.Offset != (Offset{Row: 3, Col: 4}) {
		t.Fatalf("offset = %+v, want {3 4}", snap.Offset)
	}
	if !slices.Equal(snap.Pattern[0], []int{2}) || !slices.Equal(snap.Pattern[2], []int{0, 1}) || len(snap.Pattern) != 2 {
		t.Fatalf("pattern = %v", snap.Pattern)
	}
}

func TestLoadPatternDropsOutOfBounds(t *testing.T) {
	sim := newTestSim(4, 3, AssumeDead)
	sim.LoadPattern(1, 2, Pattern{-2: {0}, 0: {-3, 0, 1, 2}, 1: {0}, 5: {0}})
	if got := sim.Population(); got != 3 {
		t.Fatalf("population = %d, want 3", got)
	}
	if !sim.Alive(1, 2) || !sim.Alive(1, 3) || !sim.Alive(2, 2) {
		t.Fatal("in-bounds cells missing")
	}
}

func TestLoadRandomDensity(t *testing.T) {
	sim := newTestSim(20, 20, AssumeDead)
	sim.LoadRandom(0)
	if sim.Population() != 0 {
		t.Fatal("density 0 must leave the grid empty")
	}
	sim.LoadRandom(2)
	if sim.Population() != 400 {
		t.Fatal("density above 1 must fill the grid")
	}

	a := newTestSim(20, 20, AssumeDead)
	b := newTestSim(20, 20, AssumeDead)
	a.LoadRandom(DefaultDensity)
	b.LoadRandom(DefaultDensity)
	if !slices.Equal(a.grid.Cells(), b.grid.Cells()) {
		t.Fatal("equal seeds must produce equal random fills")
	}
}

func TestSetSpeedWhileRunningReschedules(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	sim := newTestSim(5, 5, AssumeDead)
	sim.SetClock(ft.Now)
	sim.SetSpeed(100)
	sim.Start()

	ft.advance(50 * time.Millisecond)
	sim.SetSpeed(200)
	if !sim.Running() {
		t.Fatal("SetSpeed must keep the simulation running")
	}
	ft.advance(150 * time.Millisecond)
	if n := sim.Tick(); n != 0 {
		t.Fatalf("tick after 150ms of a 200ms period ran %d steps", n)
	}
	ft.advance(60 * time.Millisecond)
	if n := sim.Tick(); n != 1 {
		t.Fatalf("tick after 210ms ran %d steps, want 1", n)
	}
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", sim.Generation())
	}
}

func TestStartStopAreIdempotent(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	sim := newTestSim(5, 5, AssumeDead)
	sim.SetClock(ft.Now)
	sim.SetSpeed(100)

	sim.Stop()
	sim.Start()
	ft.advance(60 * time.Millisecond)
	sim.Start()
	ft.advance(60 * time.Millisecond)
	if n := sim.Tick(); n != 1 {
		t.Fatalf("second Start must not restart the period, ran %d steps", n)
	}
	sim.Stop()
	sim.Stop()
	ft.advance(time.Second)
	if n := sim.Tick(); n != 0 || sim.Running() {
		t.Fatal("stopped simulation must not step")
	}
}

func TestSpeedClamping(t *testing.T) {
	sim := newTestSim(5, 5, AssumeDead)
	sim.SetSpeed(-5)
	if sim.Speed() != 0 {
		t.Fatalf("speed = %d, want 0", sim.Speed())
	}
	sim.SetSpeed(20000)
	if sim.Speed() != MaxSpeedMS {
		t.Fatalf("speed = %d, want %d", sim.Speed(), MaxSpeedMS)
	}
	sim.SetSpeed(1)
	sim.ScaleSpeed(0.5)
	if sim.Speed() != 1 {
		t.Fatalf("quicker below 1ms = %d, want 1", sim.Speed())
	}
	sim.SetSpeed(100)
	sim.ScaleSpeed(2)
	if sim.Speed() != 200 {
		t.Fatalf("slower = %d, want 200", sim.Speed())
	}
}

func TestLoadKeepsRunningState(t *testing.T) {
	sim := newTestSim(5, 5, AssumeDead)
	sim.Start()
	sim.LoadRandom(0.5)
	if !sim.Running() {
		t.Fatal("loading a pattern must restart a running simulation")
	}
	sim.Stop()
	sim.Clear()
	if sim.Running() {
		t.Fatal("loading must not start a stopped simulation")
	}
}

func TestStrokeCounterWrapsBeforeOverflow(t *testing.T) {
	sim := newTestSim(4, 4, AssumeDead)
	sim.paint.stroke = strokeLimit + 1
	sim.grid.overlay.Set(0, 0, firstStroke+1)

	x, y := pixelOf(sim, 3, 3)
	sim.PointerDown(x, y)
	if got := sim.paint.Stroke(); got != firstStroke+1 {
		t.Fatalf("stroke after wrap = %d, want %d", got, firstStroke+1)
	}
	if sim.grid.overlay.At(0, 0) != 0 {
		t.Fatal("stale mark survived the counter reset")
	}
	sim.PointerUp()
	if sim.Alive(0, 0) || !sim.Alive(3, 3) {
		t.Fatal("only the cell painted in the new stroke should be alive")
	}
}

func TestStepDuringStrokeKeepsPreview(t *testing.T) {
	sim := newTestSim(5, 5, AssumeDead)
	sim.LoadPattern(2, 1, Pattern{0: {0, 1, 2}})

	x, y := pixelOf(sim, 1, 2)
	sim.PointerDown(x, y)

	var got CellState
	sim.OnCellChanged(func(i, j int, state CellState) {
		if i == 1 && j == 2 {
			got = state
		}
	})
	sim.Step()
	if got != Reviving {
		t.Fatalf("step event for a marked cell = %s, want reviving preview", got)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":      "900",
		"h":      "40",
		"rules":  "1357/1357",
		"border": "torus",
		"grid":   "false",
		"speed":  "25",
		"seed":   "9",
	})
	if cfg.Size != (core.Size{W: core.MaxDim, H: 40}) {
		t.Fatalf("size = %+v", cfg.Size)
	}
	if cfg.Rules.String() != "1357/1357" || cfg.Border != Torus || cfg.GridLines {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Speed != 25*time.Millisecond || cfg.Seed != 9 {
		t.Fatalf("speed=%s seed=%d", cfg.Speed, cfg.Seed)
	}

	def := FromMap(map[string]string{"rules": "bogus", "border": "mirror"})
	if def.Rules != Conway() || def.Border != AssumeDead {
		t.Fatal("invalid values must keep defaults")
	}
}

func TestHUDParameters(t *testing.T) {
	sim := newTestSim(10, 10, Torus)
	if !sim.SetIntParameter("speed", 250) || sim.Speed() != 250 {
		t.Fatal("speed parameter not applied")
	}
	if !sim.SetIntParameter("w", 30) || sim.Size().W != 30 {
		t.Fatal("width parameter not applied")
	}
	if sim.SetIntParameter("bogus", 1) {
		t.Fatal("unknown key must be rejected")
	}
	snap := sim.Parameters()
	if p, ok := snap.Lookup("border"); !ok || p.Value != "torus" {
		t.Fatalf("border parameter = %+v", p)
	}
	if p, ok := snap.Lookup("rules"); !ok || p.Value != "23/3" {
		t.Fatalf("rules parameter = %+v", p)
	}
}
