package layout

import (
	"image"
	"testing"

	"lifepaint/internal/core"
)

func TestMapperBoundsAreMonotoneAndCoverSurface(t *testing.T) {
	for _, gridLines := range []bool{true, false} {
		m := NewMapper(core.Size{W: 37, H: 23}, 641, 399, gridLines)
		off := m.Offset()
		for _, axis := range []struct {
			a      Axis
			cells  int
			pixels int
		}{{AxisX, 37, 641}, {AxisY, 23, 399}} {
			if got := m.Line(axis.a, 0); got != 1-off {
				t.Fatalf("first boundary = %d, want %d", got, 1-off)
			}
			last := m.Line(axis.a, axis.cells)
			if last > axis.pixels-1 {
				t.Fatalf("last boundary %d exceeds surface %d", last, axis.pixels)
			}
			minExt, maxExt := 1<<30, 0
			for k := 0; k < axis.cells; k++ {
				if m.Line(axis.a, k+1) <= m.Line(axis.a, k) {
					t.Fatalf("boundaries not increasing at %d", k)
				}
				ext := m.CellExtent(axis.a, k)
				if ext < minExt {
					minExt = ext
				}
				if ext > maxExt {
					maxExt = ext
				}
			}
			if maxExt-minExt > 1 {
				t.Fatalf("cell extents vary by %d pixels, want at most 1", maxExt-minExt)
			}
		}
	}
}

func TestMapperBoundaryFormula(t *testing.T) {
	// 10 cells on 34 pixels with grid lines: factor = 33/10.
	m := NewMapper(core.Size{W: 10, H: 10}, 34, 34, true)
	want := []int{0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33}
	for k, w := range want {
		if got := m.Line(AxisX, k); got != w {
			t.Fatalf("bound[%d] = %d, want %d", k, got, w)
		}
	}
	if got := m.CellExtent(AxisX, 3); got != 3 {
		t.Fatalf("cellSize[3] = %d, want 3", got)
	}
	if got := m.CellExtent(AxisX, 0); got != 2 {
		t.Fatalf("cellSize[0] = %d, want 2", got)
	}
	if got := m.CellRect(0, 3); got != image.Rect(10, 1, 13, 3) {
		t.Fatalf("CellRect(0,3) = %v", got)
	}
}

func TestCellAtTruncatesByFactor(t *testing.T) {
	for _, gridLines := range []bool{true, false} {
		m := NewMapper(core.Size{W: 10, H: 10}, 34, 34, gridLines)
		f := m.Factor(AxisX)
		for p := 1; p <= 34; p++ {
			want := min(int(float64(p-1)/f), 9)
			if _, j, ok := m.CellAt(p, 1); !ok || j != want {
				t.Fatalf("grid=%v CellAt(%d) col = %d, want %d", gridLines, p, j, want)
			}
		}
	}

	m := NewMapper(core.Size{W: 10, H: 10}, 34, 34, true)
	for p, want := range map[int]int{0: 0, 1: 0, 4: 0, 5: 1, 7: 1, 8: 2} {
		if _, j, _ := m.CellAt(p, 1); j != want {
			t.Fatalf("CellAt(%d) col = %d, want %d", p, j, want)
		}
	}
}

func TestPixelOfResolvesToCell(t *testing.T) {
	for _, gridLines := range []bool{true, false} {
		m := NewMapper(core.Size{W: 100, H: 50}, 733, 366, gridLines)
		for i := 0; i < 50; i++ {
			for j := 0; j < 100; j++ {
				p := m.PixelOf(i, j)
				gi, gj, ok := m.CellAt(p.X, p.Y)
				if !ok || gi != i || gj != j {
					t.Fatalf("grid=%v CellAt(PixelOf(%d,%d)=%v) = (%d,%d,%v)", gridLines, i, j, p, gi, gj, ok)
				}
				if p.X > 0 {
					if _, pj, _ := m.CellAt(p.X-1, p.Y); pj == j {
						t.Fatalf("grid=%v pixel before %v also resolves to column %d", gridLines, p, j)
					}
				}
			}
		}
	}
}

func TestCellAtClampsEdges(t *testing.T) {
	m := NewMapper(core.Size{W: 8, H: 4}, 200, 100, true)
	if i, j, ok := m.CellAt(0, 0); !ok || i != 0 || j != 0 {
		t.Fatalf("CellAt(0,0) = (%d,%d,%v)", i, j, ok)
	}
	if i, j, ok := m.CellAt(200, 100); !ok || i != 3 || j != 7 {
		t.Fatalf("CellAt(max) = (%d,%d,%v)", i, j, ok)
	}
	if _, _, ok := m.CellAt(201, 5); ok {
		t.Fatal("pixel beyond the surface must not resolve")
	}
	if _, _, ok := m.CellAt(5, -1); ok {
		t.Fatal("negative pixel must not resolve")
	}
}

func TestFitSurfaceKeepsAspect(t *testing.T) {
	cases := []struct {
		size  core.Size
		max   image.Point
		avail image.Point
		want  image.Point
	}{
		{core.Size{W: 100, H: 50}, image.Pt(1000, 1000), image.Point{}, image.Pt(1000, 500)},
		{core.Size{W: 100, H: 50}, image.Pt(1000, 1000), image.Pt(640, 0), image.Pt(640, 320)},
		{core.Size{W: 50, H: 100}, image.Pt(1000, 600), image.Point{}, image.Pt(300, 600)},
		{core.Size{W: 100, H: 50}, image.Pt(1000, 1000), image.Pt(900, 200), image.Pt(400, 200)},
		{core.Size{W: 500, H: 1}, image.Pt(100, 100), image.Point{}, image.Pt(100, 1)},
	}
	for _, tc := range cases {
		if got := FitSurface(tc.size, tc.max, tc.avail); got != tc.want {
			t.Errorf("FitSurface(%+v, %v, %v) = %v, want %v", tc.size, tc.max, tc.avail, got, tc.want)
		}
	}
}
