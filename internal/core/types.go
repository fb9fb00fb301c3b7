package core

const (
	// MinDim is the smallest allowed grid extent on either axis.
	MinDim = 1
	// MaxDim is the largest allowed grid extent on either axis.
	MaxDim = 500
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// ClampSize bounds both extents to [MinDim, MaxDim].
func ClampSize(s Size) Size {
	return Size{W: ClampInt(s.W, MinDim, MaxDim), H: ClampInt(s.H, MinDim, MaxDim)}
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether row i and column j lie inside the grid.
func (s Size) Contains(i, j int) bool {
	return i >= 0 && i < s.H && j >= 0 && j < s.W
}

// Sim is the minimal contract the HUD and frontends need from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Step()
}

// ClampInt bounds v to [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
