//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto a persistent offscreen ebiten image. Only the
// rectangles reported by the simulation are touched between frames.
type ImageSurface struct {
	img        *ebiten.Image
	background color.Color
}

// NewImageSurface allocates a w×h image cleared to background.
func NewImageSurface(w, h int, background color.Color) *ImageSurface {
	s := &ImageSurface{background: background}
	s.Resize(w, h)
	return s
}

// Resize reallocates the image when the dimensions change.
func (s *ImageSurface) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Dispose()
	}
	s.img = ebiten.NewImage(w, h)
	s.img.Fill(s.background)
}

// Image returns the backing image.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

// Size returns the image dimensions.
func (s *ImageSurface) Size() image.Point { return s.img.Bounds().Size() }

// FillRect paints r in c.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

// ClearRect resets r to the background.
func (s *ImageSurface) ClearRect(r image.Rectangle) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Fill(s.background)
}
