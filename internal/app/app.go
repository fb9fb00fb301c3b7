//go:build ebiten

package app

import (
	"image"
	"image/color"

	"lifepaint/internal/control"
	"lifepaint/internal/life"
	"lifepaint/internal/render"
	"lifepaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// statusBar is the strip below the grid reserved for the overlay status line.
const statusBar = 20

var keyBindings = []struct {
	key ebiten.Key
	cmd control.Command
}{
	{ebiten.KeySpace, control.Toggle},
	{ebiten.KeyN, control.Step},
	{ebiten.KeyC, control.Clear},
	{ebiten.KeyR, control.Random},
	{ebiten.KeyL, control.Reload},
	{ebiten.KeyE, control.Export},
	{ebiten.KeyG, control.Grid},
	{ebiten.KeyB, control.Border},
	{ebiten.KeyEqual, control.Faster},
	{ebiten.KeyNumpadAdd, control.Faster},
	{ebiten.KeyMinus, control.Slower},
	{ebiten.KeyNumpadSubtract, control.Slower},
	{ebiten.KeyBracketRight, control.NextPreset},
	{ebiten.KeyBracketLeft, control.PrevPreset},
	{ebiten.KeyQ, control.Quit},
	{ebiten.KeyEscape, control.Quit},
}

// Game adapts a Simulation to the ebiten.Game interface. The grid lives on
// a persistent offscreen image that only receives per-cell updates.
type Game struct {
	sim     *life.Simulation
	ctrl    *control.Controller
	surface *render.ImageSurface
	painter *render.CellPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	outside image.Point
}

// New constructs a Game driven by ctrl with a HUD panel of hudWidth pixels.
func New(ctrl *control.Controller, hudWidth int) *Game {
	sim := ctrl.Simulation()
	surface := sim.Surface()
	g := &Game{
		sim:     sim,
		ctrl:    ctrl,
		surface: render.NewImageSurface(surface.X, surface.Y, color.White),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(append(control.Legend(), "h      help")),
	}
	g.painter = render.Attach(sim, g.surface, render.DefaultPalette())
	return g
}

// WindowSize returns the initial window size for the current surface.
func (g *Game) WindowSize() (int, int) {
	s := g.sim.Surface()
	return s.X + g.hud.Width(), s.Y + statusBar
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, b := range keyBindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if !g.ctrl.Do(b.cmd) {
			return ebiten.Termination
		}
		g.overlay.Flash(g.ctrl.Message())
	}

	surface := g.sim.Surface()
	consumed := g.hud.Update(surface.X)
	g.handlePointer(surface, consumed)

	g.sim.Tick()
	g.syncSurface()
	g.overlay.Update(g.ctrl.Status())
	return nil
}

func (g *Game) handlePointer(surface image.Point, consumed bool) {
	x, y := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !consumed && x < surface.X && y < surface.Y {
			g.sim.PointerDown(x, y)
		}
	case down:
		g.sim.PointerMove(x, y)
	}
	if !down && g.sim.Painting() {
		g.sim.PointerUp()
	}
}

// syncSurface reallocates the offscreen image after the simulation picked a
// new surface size.
func (g *Game) syncSurface() {
	want := g.sim.Surface()
	if g.surface.Size() == want {
		return
	}
	g.surface.Resize(want.X, want.Y)
	g.painter.SetSurface(g.surface)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	screen.DrawImage(g.surface.Image(), nil)
	surface := g.sim.Surface()
	g.hud.Draw(screen, surface.X, g.outside.Y)
	g.overlay.Draw(screen, surface.X, g.outside.Y)
}

// Layout hands the space left of the HUD and above the status bar to the
// simulation and keeps the logical screen at the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	outside := image.Pt(outsideWidth, outsideHeight)
	if outside != g.outside {
		g.outside = outside
		g.sim.ResizeSurface(max(outsideWidth-g.hud.Width(), 1), max(outsideHeight-statusBar, 1))
		g.syncSurface()
	}
	return outsideWidth, outsideHeight
}
