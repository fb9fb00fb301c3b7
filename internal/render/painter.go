package render

import (
	"image"

	"lifepaint/internal/layout"
	"lifepaint/internal/life"
)

// CellPainter keeps a Surface in sync with a Simulation. Single-cell events
// redraw one rectangle; reset events redraw the whole surface.
type CellPainter struct {
	sim     *life.Simulation
	surface Surface
	palette Palette
}

// Attach registers a painter on sim that draws onto surface and performs an
// initial full redraw.
func Attach(sim *life.Simulation, surface Surface, palette Palette) *CellPainter {
	p := &CellPainter{sim: sim, surface: surface, palette: palette}
	sim.OnCellChanged(p.DrawCell)
	sim.OnReset(p.Redraw)
	p.Redraw()
	return p
}

// SetSurface switches the drawing target, e.g. after the host reallocated
// its backing image, and redraws everything.
func (p *CellPainter) SetSurface(surface Surface) {
	p.surface = surface
	p.Redraw()
}

// DrawCell paints one cell in the given state.
func (p *CellPainter) DrawCell(i, j int, state life.CellState) {
	r := p.sim.Mapper().CellRect(i, j)
	if c, ok := p.palette.Color(state); ok {
		p.surface.FillRect(r, c)
		return
	}
	p.surface.ClearRect(r)
}

// Redraw clears the surface, draws the border and grid lines, then every
// cell.
func (p *CellPainter) Redraw() {
	m := p.sim.Mapper()
	surface := m.Surface()
	p.surface.ClearRect(image.Rectangle{Max: surface})
	p.drawLines(m)

	size := p.sim.Size()
	for i := 0; i < size.H; i++ {
		for j := 0; j < size.W; j++ {
			p.DrawCell(i, j, p.sim.StateAt(i, j))
		}
	}
}

// drawLines draws the outer border at the first and last pixel of each axis
// and, when enabled, the separators between cells.
func (p *CellPainter) drawLines(m *layout.Mapper) {
	size := m.Size()
	surface := m.Surface()
	vline := func(x int) { p.surface.FillRect(image.Rect(x, 0, x+1, surface.Y), p.palette.Lines) }
	hline := func(y int) { p.surface.FillRect(image.Rect(0, y, surface.X, y+1), p.palette.Lines) }

	if m.GridLines() {
		for k := 1; k < size.W; k++ {
			vline(m.Line(layout.AxisX, k))
		}
		for k := 1; k < size.H; k++ {
			hline(m.Line(layout.AxisY, k))
		}
	}
	vline(0)
	vline(m.Line(layout.AxisX, size.W))
	hline(0)
	hline(m.Line(layout.AxisY, size.H))
}
