//go:build sdl

// Package sdlview runs the simulation in an SDL window. Cells are filled
// directly on the window surface, which keeps its content between frames.
package sdlview

import (
	"image"
	"image/color"
	"time"

	"lifepaint/internal/control"
	"lifepaint/internal/render"

	"github.com/veandco/go-sdl2/sdl"
)

// Surface adapts an SDL surface to render.Surface.
type Surface struct {
	s          *sdl.Surface
	background color.Color
}

// FillRect paints r in c.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	rect := sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
	s.s.FillRect(&rect, mapColor(s.s, c))
}

// ClearRect resets r to the background.
func (s *Surface) ClearRect(r image.Rectangle) {
	s.FillRect(r, s.background)
}

func mapColor(s *sdl.Surface, c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return sdl.MapRGBA(s.Format, uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// Command maps an SDL key to a control command.
func Command(sym sdl.Keycode) (control.Command, bool) {
	switch sym {
	case sdl.K_ESCAPE:
		return control.Quit, true
	case sdl.K_KP_PLUS:
		return control.Faster, true
	case sdl.K_KP_MINUS:
		return control.Slower, true
	}
	if sym < 0x80 {
		return control.ForRune(rune(sym))
	}
	return 0, false
}

// Run opens a window sized to the simulation surface and drives ctrl until
// the window is closed or the user quits. It must be called from the main
// OS thread.
func Run(ctrl *control.Controller, title string, fps int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	sim := ctrl.Simulation()
	size := sim.Surface()
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(size.X), int32(size.Y), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return err
	}
	defer win.Destroy()

	ws, err := win.GetSurface()
	if err != nil {
		return err
	}
	surface := &Surface{s: ws, background: color.White}
	render.Attach(sim, surface, render.DefaultPalette())

	frame := time.Second / time.Duration(max(fps, 1))
	pressed := false
	shown := ""
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
					continue
				}
				if cmd, ok := Command(e.Keysym.Sym); ok && !ctrl.Do(cmd) {
					return nil
				}
			case *sdl.MouseButtonEvent:
				if e.Button != sdl.BUTTON_LEFT {
					continue
				}
				if e.State == sdl.PRESSED {
					pressed = true
					sim.PointerDown(int(e.X), int(e.Y))
				} else {
					pressed = false
					sim.PointerUp()
				}
			case *sdl.MouseMotionEvent:
				if pressed {
					sim.PointerMove(int(e.X), int(e.Y))
				}
			case *sdl.WindowEvent:
				if e.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
					continue
				}
				if ws, err = win.GetSurface(); err != nil {
					return err
				}
				surface.s = ws
				surface.ClearRect(image.Rect(0, 0, int(e.Data1), int(e.Data2)))
				sim.ResizeSurface(int(e.Data1), int(e.Data2))
			}
		}

		sim.Tick()
		if status := ctrl.Status(); status != shown {
			win.SetTitle(title + " | " + status)
			shown = status
		}
		if err := win.UpdateSurface(); err != nil {
			return err
		}
		sdl.Delay(uint32(frame.Milliseconds()))
	}
}
