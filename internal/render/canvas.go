package render

import (
	"image"
	"image/color"
)

// Canvas is an in-memory RGBA Surface. Cleared pixels take the background
// color.
type Canvas struct {
	img        *image.RGBA
	background color.RGBA
}

// NewCanvas allocates a w×h canvas filled with the background color.
func NewCanvas(w, h int, background color.Color) *Canvas {
	c := &Canvas{background: toRGBA(background)}
	c.Resize(w, h)
	return c
}

// Resize reallocates the pixel buffer when the size changes and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if c.img == nil || c.img.Rect.Dx() != w || c.img.Rect.Dy() != h {
		c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	c.ClearRect(c.img.Rect)
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pixels exposes the raw RGBA bytes, suitable for texture uploads.
func (c *Canvas) Pixels() []byte { return c.img.Pix }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// FillRect paints r, clipped to the canvas, with col.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	c.fill(r, toRGBA(col))
}

// ClearRect resets r, clipped to the canvas, to the background.
func (c *Canvas) ClearRect(r image.Rectangle) {
	c.fill(r, c.background)
}

func (c *Canvas) fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := c.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.Pix[base+0] = col.R
			c.img.Pix[base+1] = col.G
			c.img.Pix[base+2] = col.B
			c.img.Pix[base+3] = col.A
			base += 4
		}
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
