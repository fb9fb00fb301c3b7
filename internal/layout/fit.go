package layout

import (
	"image"

	"lifepaint/internal/core"
)

// FitSurface returns the largest surface that fits inside max while keeping
// the grid's aspect ratio, then shrinks it to the space the host actually has
// available. Zero components of avail mean "unconstrained". The height is
// always derived from the width.
func FitSurface(size core.Size, max, avail image.Point) image.Point {
	size = core.ClampSize(size)
	w := max.X
	if max.Y > 0 && w*size.H > max.Y*size.W {
		w = max.Y * size.W / size.H
	}
	if avail.X > 0 && w > avail.X {
		w = avail.X
	}
	if avail.Y > 0 && w*size.H > avail.Y*size.W {
		w = avail.Y * size.W / size.H
	}
	if w < 1 {
		w = 1
	}
	h := w * size.H / size.W
	if h < 1 {
		h = 1
	}
	return image.Pt(w, h)
}
