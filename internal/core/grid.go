package core

// BoolGrid stores one generation of alive flags in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates a zeroed grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for row i, column j.
func (g *BoolGrid) Index(i, j int) int { return i*g.W + j }

// At reports the value at row i, column j.
func (g *BoolGrid) At(i, j int) bool { return g.data[i*g.W+j] }

// Set stores v at row i, column j.
func (g *BoolGrid) Set(i, j int, v bool) { g.data[i*g.W+j] = v }

// Clear resets every cell to false.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// MarkGrid stores signed per-cell marks in row-major order.
type MarkGrid struct {
	W, H int
	data []int32
}

// NewMarkGrid allocates a zeroed mark grid.
func NewMarkGrid(w, h int) *MarkGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &MarkGrid{W: w, H: h, data: make([]int32, w*h)}
}

// Cells exposes the backing slice.
func (g *MarkGrid) Cells() []int32 { return g.data }

// At returns the mark at row i, column j.
func (g *MarkGrid) At(i, j int) int32 { return g.data[i*g.W+j] }

// Set stores a mark at row i, column j.
func (g *MarkGrid) Set(i, j int, v int32) { g.data[i*g.W+j] = v }

// Clear zeroes every mark.
func (g *MarkGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
