// Package layout maps grid cells to pixel rectangles on a drawing surface and
// back. Scale factors are rarely integral, so every boundary is computed from
// its own index instead of accumulating a rounded cell size.
package layout

import (
	"image"

	"lifepaint/internal/core"
)

// Axis selects one dimension of the mapping.
type Axis int

const (
	// AxisX is the column axis.
	AxisX Axis = iota
	// AxisY is the row axis.
	AxisY
)

type axisTable struct {
	cells  int
	pixels int
	factor float64
	bound  []int
	size   []int
	toCell []int
	first  []int
}

func newAxisTable(cells, pixels, offset int) axisTable {
	t := axisTable{cells: cells, pixels: pixels}
	t.factor = float64(pixels-2+offset) / float64(cells)

	t.bound = make([]int, cells+1)
	for k := 0; k <= cells; k++ {
		t.bound[k] = int(float64(k)*t.factor) + 1 - offset
	}

	t.size = make([]int, cells)
	for k := 0; k < cells; k++ {
		t.size[k] = t.bound[k+1] - t.bound[k] - offset
	}

	t.toCell = make([]int, pixels+1)
	for p := range t.toCell {
		t.toCell[p] = core.ClampInt(int(float64(p-1)/t.factor), 0, cells-1)
	}

	// first[k] is the lowest pixel resolving to k. Cells narrower than a
	// pixel may own none and keep their painted origin.
	t.first = make([]int, cells)
	for k := range t.first {
		t.first[k] = -1
	}
	for p, k := range t.toCell {
		if t.first[k] < 0 {
			t.first[k] = p
		}
	}
	for k := range t.first {
		if t.first[k] < 0 {
			t.first[k] = t.bound[k] + offset
		}
	}
	return t
}

// Mapper holds the precomputed coordinate tables for one grid size, surface
// size and grid-line setting. It is read-only once built; any change to
// those inputs requires a new Mapper.
type Mapper struct {
	size      core.Size
	surface   image.Point
	gridLines bool
	offset    int
	x, y      axisTable
}

// NewMapper builds the tables for a grid drawn on a surface of w×h pixels.
// With gridLines set every cell reserves a one pixel separator.
func NewMapper(size core.Size, w, h int, gridLines bool) *Mapper {
	size = core.ClampSize(size)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m := &Mapper{size: size, surface: image.Pt(w, h), gridLines: gridLines}
	if gridLines {
		m.offset = 1
	}
	m.x = newAxisTable(size.W, w, m.offset)
	m.y = newAxisTable(size.H, h, m.offset)
	return m
}

// Size returns the grid dimensions the tables were built for.
func (m *Mapper) Size() core.Size { return m.size }

// Surface returns the pixel dimensions the tables were built for.
func (m *Mapper) Surface() image.Point { return m.surface }

// GridLines reports whether cells are separated by grid lines.
func (m *Mapper) GridLines() bool { return m.gridLines }

// Offset is 1 when grid lines are drawn, 0 otherwise.
func (m *Mapper) Offset() int { return m.offset }

// Factor returns the pixels-per-cell ratio on the axis.
func (m *Mapper) Factor(a Axis) float64 { return m.table(a).factor }

// Line returns the pixel coordinate of boundary k on the axis, k in [0, cells].
// Boundary 0 and boundary cells are the outer border.
func (m *Mapper) Line(a Axis, k int) int { return m.table(a).bound[k] }

// CellExtent returns the pixel extent of cell k on the axis. Neighbouring
// cells may differ by one pixel.
func (m *Mapper) CellExtent(a Axis, k int) int { return m.table(a).size[k] }

// CellRect returns the pixel rectangle painted for row i, column j.
func (m *Mapper) CellRect(i, j int) image.Rectangle {
	x := m.x.bound[j] + m.offset
	y := m.y.bound[i] + m.offset
	return image.Rect(x, y, x+m.x.size[j], y+m.y.size[i])
}

// CellAt resolves a surface pixel to a row and column as trunc((p-1)/factor)
// per axis, clamped to the grid. Pixels outside the surface report ok=false.
func (m *Mapper) CellAt(px, py int) (i, j int, ok bool) {
	if px < 0 || py < 0 || px > m.surface.X || py > m.surface.Y {
		return 0, 0, false
	}
	return m.y.toCell[py], m.x.toCell[px], true
}

// PixelOf returns the first surface pixel that CellAt resolves to row i,
// column j.
func (m *Mapper) PixelOf(i, j int) image.Point {
	return image.Pt(m.x.first[j], m.y.first[i])
}

func (m *Mapper) table(a Axis) *axisTable {
	if a == AxisY {
		return &m.y
	}
	return &m.x
}
