package life

import "lifepaint/internal/core"

// Grid owns the current and next generation plus the paint overlay. All
// three share one shape; changing the shape reallocates them together.
type Grid struct {
	size    core.Size
	cur     *core.BoolGrid
	nxt     *core.BoolGrid
	overlay *core.MarkGrid
}

// NewGrid allocates zeroed buffers for the clamped size.
func NewGrid(size core.Size) *Grid {
	g := &Grid{}
	g.allocate(core.ClampSize(size))
	return g
}

func (g *Grid) allocate(size core.Size) {
	g.size = size
	g.cur = core.NewBoolGrid(size.W, size.H)
	g.nxt = core.NewBoolGrid(size.W, size.H)
	g.overlay = core.NewMarkGrid(size.W, size.H)
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Alive reports the current state of row i, column j.
func (g *Grid) Alive(i, j int) bool { return g.cur.At(i, j) }

// SetAlive overwrites the current state of row i, column j.
func (g *Grid) SetAlive(i, j int, alive bool) { g.cur.Set(i, j, alive) }

// Cells exposes the current generation in row-major order. Callers must not
// retain it across Swap.
func (g *Grid) Cells() []bool { return g.cur.Cells() }

// Swap exchanges the roles of the current and next generation.
func (g *Grid) Swap() { g.cur, g.nxt = g.nxt, g.cur }

// Resize zeroes every buffer, reusing storage when the shape is unchanged
// and reallocating otherwise. Pending overlay marks are dropped either way.
func (g *Grid) Resize(size core.Size) {
	size = core.ClampSize(size)
	if size == g.size {
		g.cur.Clear()
		g.nxt.Clear()
		g.overlay.Clear()
		return
	}
	g.allocate(size)
}

// Clear kills every cell of the current generation.
func (g *Grid) Clear() { g.cur.Clear() }

// Population counts live cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur.Cells() {
		if alive {
			n++
		}
	}
	return n
}
