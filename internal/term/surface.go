// Package term runs the simulation in a terminal through tcell. A surface
// pixel is two terminal columns wide so that square cells look square.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// ColumnsPerPixel is the number of terminal columns one surface pixel spans.
const ColumnsPerPixel = 2

// Surface paints surface pixels as blank terminal cells with a background
// color. Nothing reaches the terminal until the screen is shown.
type Surface struct {
	screen     tcell.Screen
	background tcell.Color
}

// NewSurface wraps screen, clearing to background.
func NewSurface(screen tcell.Screen, background color.Color) *Surface {
	return &Surface{screen: screen, background: Color(background)}
}

// FillRect paints r in c.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	s.fill(r, Color(c))
}

// ClearRect resets r to the background.
func (s *Surface) ClearRect(r image.Rectangle) {
	s.fill(r, s.background)
}

func (s *Surface) fill(r image.Rectangle, c tcell.Color) {
	w, h := s.screen.Size()
	r = r.Intersect(image.Rect(0, 0, w/ColumnsPerPixel, h))
	style := tcell.StyleDefault.Background(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			for k := 0; k < ColumnsPerPixel; k++ {
				s.screen.SetContent(x*ColumnsPerPixel+k, y, ' ', nil, style)
			}
		}
	}
}

// Color converts c to a true-color tcell color.
func Color(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
