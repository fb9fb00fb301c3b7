//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// flashFrames is how long a command message stays visible.
const flashFrames = 120

// Overlay draws the status line, the last command message and, when toggled
// with H, the key legend on top of the simulation view.
type Overlay struct {
	legend   []string
	showHelp bool
	status   string
	message  string
	ttl      int
}

// NewOverlay constructs an overlay that lists legend when help is shown.
func NewOverlay(legend []string) *Overlay {
	return &Overlay{legend: legend}
}

// Update handles the help toggle and ages the flash message.
func (o *Overlay) Update(status string) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	o.status = status
	if o.ttl > 0 {
		o.ttl--
	}
}

// Flash shows msg for a short while.
func (o *Overlay) Flash(msg string) {
	if msg == "" {
		return
	}
	o.message = msg
	o.ttl = flashFrames
}

// Draw renders the overlay into a view of the given width and height.
func (o *Overlay) Draw(screen *ebiten.Image, width, height int) {
	face := basicfont.Face7x13
	bar := float32(statusHeight)
	vector.DrawFilledRect(screen, 0, float32(height)-bar, float32(width), bar, color.RGBA{A: 170}, false)
	text.Draw(screen, o.status, face, 6, height-6, color.White)

	if o.ttl > 0 {
		b := text.BoundString(face, o.message)
		text.Draw(screen, o.message, face, width-b.Dx()-6, height-6, color.RGBA{R: 0xcc, G: 0xcc, B: 0xff, A: 0xff})
	}

	if !o.showHelp {
		return
	}
	boxH := len(o.legend)*legendLine + 2*legendPad
	vector.DrawFilledRect(screen, legendPad, legendPad, legendWidth, float32(boxH), color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)
	for i, line := range o.legend {
		text.Draw(screen, line, face, 2*legendPad, 2*legendPad+(i+1)*legendLine-4, color.White)
	}
}

const (
	statusHeight = 20
	legendPad    = 8
	legendLine   = 16
	legendWidth  = 200
)
