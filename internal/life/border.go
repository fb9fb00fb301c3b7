package life

import (
	"errors"
	"fmt"

	"lifepaint/internal/core"
)

// ErrUnknownBorder is returned for unrecognised border names.
var ErrUnknownBorder = errors.New("life: unknown border")

// Border selects how cells beyond the grid edge are counted.
type Border uint8

const (
	// AssumeDead treats every off-grid cell as dead.
	AssumeDead Border = iota
	// AssumeAlive treats every off-grid cell as permanently alive.
	AssumeAlive
	// Torus wraps both axes around.
	Torus
)

// String returns the short border name used in mode strings.
func (b Border) String() string {
	switch b {
	case Torus:
		return "torus"
	case AssumeAlive:
		return "alive"
	default:
		return "dead"
	}
}

// Next returns the border that follows b in the torus → alive → dead cycle.
func (b Border) Next() Border {
	switch b {
	case Torus:
		return AssumeAlive
	case AssumeAlive:
		return AssumeDead
	default:
		return Torus
	}
}

// ParseBorder accepts "torus", "alive", "dead" and the long forms
// "assume-alive" and "assume-dead".
func ParseBorder(s string) (Border, error) {
	switch s {
	case "torus":
		return Torus, nil
	case "alive", "assume-alive":
		return AssumeAlive, nil
	case "dead", "assume-dead":
		return AssumeDead, nil
	}
	return AssumeDead, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
}

// Topology counts live neighbours under one border policy. The torus variant
// carries wrap tables sized for one grid; build a new Topology whenever the
// size changes.
type Topology struct {
	border Border
	size   core.Size
	// wrapRow[i+1] is the wrapped row for i in [-1, H]; wrapCol likewise.
	wrapRow []int
	wrapCol []int
}

// NewTopology prepares neighbour counting for the given border and size.
func NewTopology(border Border, size core.Size) Topology {
	t := Topology{border: border, size: size}
	if border == Torus {
		t.wrapRow = wrapTable(size.H)
		t.wrapCol = wrapTable(size.W)
	}
	return t
}

func wrapTable(n int) []int {
	table := make([]int, n+2)
	table[0] = n - 1
	for k := 0; k < n; k++ {
		table[k+1] = k
	}
	table[n+1] = 0
	return table
}

// Border returns the policy the topology implements.
func (t Topology) Border() Border { return t.border }

// Count returns the number of live neighbours of row i, column j in cells,
// a row-major generation matching the topology's size. The result is in [0, 8].
func (t Topology) Count(cells []bool, i, j int) int {
	switch t.border {
	case Torus:
		return t.countTorus(cells, i, j)
	case AssumeAlive:
		return t.countAlive(cells, i, j)
	default:
		return t.countDead(cells, i, j)
	}
}

func (t Topology) countTorus(cells []bool, i, j int) int {
	w := t.size.W
	n := 0
	for di := 0; di <= 2; di++ {
		row := t.wrapRow[i+di] * w
		for dj := 0; dj <= 2; dj++ {
			if di == 1 && dj == 1 {
				continue
			}
			if cells[row+t.wrapCol[j+dj]] {
				n++
			}
		}
	}
	return n
}

// countAlive starts from a full neighbourhood and removes every in-bounds
// dead neighbour, so missing neighbours keep counting as alive.
func (t Topology) countAlive(cells []bool, i, j int) int {
	w, h := t.size.W, t.size.H
	n := 8
	for di := -1; di <= 1; di++ {
		ii := i + di
		if ii < 0 || ii >= h {
			continue
		}
		for dj := -1; dj <= 1; dj++ {
			jj := j + dj
			if (di == 0 && dj == 0) || jj < 0 || jj >= w {
				continue
			}
			if !cells[ii*w+jj] {
				n--
			}
		}
	}
	return n
}

func (t Topology) countDead(cells []bool, i, j int) int {
	w, h := t.size.W, t.size.H
	n := 0
	for di := -1; di <= 1; di++ {
		ii := i + di
		if ii < 0 || ii >= h {
			continue
		}
		for dj := -1; dj <= 1; dj++ {
			jj := j + dj
			if (di == 0 && dj == 0) || jj < 0 || jj >= w {
				continue
			}
			if cells[ii*w+jj] {
				n++
			}
		}
	}
	return n
}
