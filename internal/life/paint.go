package life

import "math"

const (
	// firstStroke is the initial, even counter value: no stroke open.
	firstStroke int32 = 2
	// strokeLimit is the point at which the counter restarts from
	// firstStroke, clearing the overlay so no stale mark can match again.
	strokeLimit int32 = math.MaxInt32 - 2
)

// Painter implements drag-to-toggle painting on a Grid's overlay.
//
// The stroke counter only grows: odd values mean a stroke is open, even values
// mean none is. A stroke marks cells with +id (will revive) or -id (will die),
// where id is the odd counter value, and commits exactly the cells carrying
// ±id. Marks from earlier strokes are never cleared; they hold smaller ids and
// therefore never match a later stroke. This only holds while the counter is
// strictly increasing, which is why it is reset together with the overlay
// before it can overflow.
type Painter struct {
	grid   *Grid
	stroke int32
}

// NewPainter returns a Painter with no open stroke.
func NewPainter(g *Grid) *Painter {
	return &Painter{grid: g, stroke: firstStroke}
}

// Active reports whether a stroke is open.
func (p *Painter) Active() bool { return p.stroke%2 == 1 }

// Stroke returns the raw counter value.
func (p *Painter) Stroke() int32 { return p.stroke }

// Begin opens a new stroke. It does nothing while a stroke is already open.
func (p *Painter) Begin() {
	if p.Active() {
		return
	}
	if p.stroke >= strokeLimit {
		p.grid.overlay.Clear()
		p.stroke = firstStroke
	}
	p.stroke++
}

// Mark records a pending toggle for row i, column j in the open stroke and
// returns the preview state to draw. changed is false when there is no open
// stroke or the cell already carries the mark it would receive.
func (p *Painter) Mark(i, j int) (state CellState, changed bool) {
	if !p.Active() {
		return Dead, false
	}
	id := p.stroke
	mark := p.grid.overlay.At(i, j)
	if p.grid.Alive(i, j) {
		if mark == -id {
			return Dying, false
		}
		p.grid.overlay.Set(i, j, -id)
		return Dying, true
	}
	if mark == id {
		return Reviving, false
	}
	p.grid.overlay.Set(i, j, id)
	return Reviving, true
}

// End closes the open stroke and applies its marks to the current
// generation, calling emit for every committed cell. It returns the number
// of cells committed.
func (p *Painter) End(emit func(i, j int, state CellState)) (n int) {
	if !p.Active() {
		return 0
	}
	id := p.stroke
	p.stroke++

	size := p.grid.Size()
	marks := p.grid.overlay.Cells()
	for i := 0; i < size.H; i++ {
		row := i * size.W
		for j := 0; j < size.W; j++ {
			switch marks[row+j] {
			case id:
				p.grid.SetAlive(i, j, true)
				emit(i, j, Alive)
				n++
			case -id:
				p.grid.SetAlive(i, j, false)
				emit(i, j, Dead)
				n++
			}
		}
	}
	return n
}

// Discard closes the open stroke without applying it.
func (p *Painter) Discard() {
	if p.Active() {
		p.stroke++
	}
}

// StateAt returns the state to draw for row i, column j, including the
// preview of the open stroke.
func (p *Painter) StateAt(i, j int) CellState {
	return p.overlayState(i, j, p.grid.Alive(i, j))
}

// overlayState lets a pending mark of the open stroke take precedence over
// the given alive state.
func (p *Painter) overlayState(i, j int, alive bool) CellState {
	if p.Active() {
		switch p.grid.overlay.At(i, j) {
		case p.stroke:
			return Reviving
		case -p.stroke:
			return Dying
		}
	}
	return stateOf(alive)
}
