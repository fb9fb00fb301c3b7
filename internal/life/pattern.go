package life

import "slices"

// Pattern maps a row offset to the alive column offsets in that row.
type Pattern map[int][]int

// Offset positions a pattern on the grid.
type Offset struct {
	Row int
	Col int
}

// Snapshot is a generation exported as a pattern anchored at its bounding box.
type Snapshot struct {
	Offset  Offset
	Pattern Pattern
}

// Rows returns the pattern's row keys in ascending order.
func (p Pattern) Rows() []int {
	rows := make([]int, 0, len(p))
	for r := range p {
		rows = append(rows, r)
	}
	slices.Sort(rows)
	return rows
}

// Cells counts the column entries across all rows.
func (p Pattern) Cells() int {
	n := 0
	for _, cols := range p {
		n += len(cols)
	}
	return n
}

// Bounds returns the number of rows and columns the pattern spans from its
// origin, ignoring negative offsets.
func (p Pattern) Bounds() (rows, cols int) {
	for r, cs := range p {
		if r+1 > rows {
			rows = r + 1
		}
		for _, c := range cs {
			if c+1 > cols {
				cols = c + 1
			}
		}
	}
	return rows, cols
}

// place sets every in-bounds cell of p, shifted by (row, col), alive.
// Entries that fall outside the grid are dropped.
func (g *Grid) place(row, col int, p Pattern) {
	for r, cols := range p {
		i := row + r
		if i < 0 || i >= g.size.H {
			continue
		}
		for _, c := range cols {
			j := col + c
			if j < 0 || j >= g.size.W {
				continue
			}
			g.cur.Set(i, j, true)
		}
	}
}

// export scans the current generation for the bounding box of live cells.
// ok is false when no cell is alive.
func (g *Grid) export() (snap Snapshot, ok bool) {
	w, h := g.size.W, g.size.H
	minI, minJ := h, w
	cells := g.cur.Cells()
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if !cells[i*w+j] {
				continue
			}
			if i < minI {
				minI = i
			}
			if j < minJ {
				minJ = j
			}
		}
	}
	if minI == h {
		return Snapshot{}, false
	}

	pattern := Pattern{}
	for i := minI; i < h; i++ {
		for j := minJ; j < w; j++ {
			if cells[i*w+j] {
				pattern[i-minI] = append(pattern[i-minI], j-minJ)
			}
		}
	}
	return Snapshot{Offset: Offset{Row: minI, Col: minJ}, Pattern: pattern}, true
}
