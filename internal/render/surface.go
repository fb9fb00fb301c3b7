// Package render draws simulation state onto any surface that can fill and
// clear axis-aligned rectangles.
package render

import (
	"image"
	"image/color"

	"lifepaint/internal/life"
)

// Surface is the drawing primitive the painter needs from a backend.
type Surface interface {
	FillRect(r image.Rectangle, c color.Color)
	ClearRect(r image.Rectangle)
}

// Palette assigns colors to cell states and grid lines.
type Palette struct {
	Alive    color.RGBA
	Reviving color.RGBA
	Dying    color.RGBA
	Lines    color.RGBA
}

// DefaultPalette returns the standard colors: black cells, blue previews and
// light grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive:    color.RGBA{A: 0xff},
		Reviving: color.RGBA{R: 0x33, G: 0x33, B: 0xcc, A: 0xff},
		Dying:    color.RGBA{R: 0x77, G: 0x77, B: 0xee, A: 0xff},
		Lines:    color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	}
}

// Color returns the fill for a state; ok is false for dead cells, which are
// cleared instead of filled.
func (p Palette) Color(state life.CellState) (c color.RGBA, ok bool) {
	switch state {
	case life.Alive:
		return p.Alive, true
	case life.Reviving:
		return p.Reviving, true
	case life.Dying:
		return p.Dying, true
	}
	return color.RGBA{}, false
}
