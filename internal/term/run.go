package term

import (
	"image/color"
	"time"

	"lifepaint/internal/control"
	"lifepaint/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Run drives ctrl's simulation on screen until the user quits or the screen
// is finalised. Events and frame ticks are handled on the calling goroutine;
// a helper goroutine only forwards PollEvent results.
func Run(screen tcell.Screen, ctrl *control.Controller, frame time.Duration) error {
	screen.EnableMouse()
	screen.Clear()

	sim := ctrl.Simulation()
	fitSurface(screen, ctrl)
	render.Attach(sim, NewSurface(screen, color.White), render.DefaultPalette())

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	pressed := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ctrl, ev) {
					return nil
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				down := ev.Buttons()&tcell.Button1 != 0
				px := x / ColumnsPerPixel
				switch {
				case down && !pressed:
					sim.PointerDown(px, y)
				case down:
					sim.PointerMove(px, y)
				case pressed:
					sim.PointerUp()
				}
				pressed = down
			case *tcell.EventResize:
				screen.Clear()
				fitSurface(screen, ctrl)
				screen.Sync()
			}
		case <-ticker.C:
			sim.Tick()
		}
		drawStatus(screen, ctrl)
		screen.Show()
	}
}

// fitSurface offers the simulation every terminal row except the status
// line.
func fitSurface(screen tcell.Screen, ctrl *control.Controller) {
	w, h := screen.Size()
	ctrl.Simulation().ResizeSurface(max(w/ColumnsPerPixel, 1), max(h-1, 1))
}

func handleKey(ctrl *control.Controller, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ctrl.Do(control.Quit)
	case tcell.KeyRune:
		if cmd, ok := control.ForRune(ev.Rune()); ok {
			return ctrl.Do(cmd)
		}
	}
	return true
}

func drawStatus(screen tcell.Screen, ctrl *control.Controller) {
	w, h := screen.Size()
	line := ctrl.Status()
	if msg := ctrl.Message(); msg != "" {
		line += "  | " + msg
	}
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		screen.SetContent(x, h-1, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		screen.SetContent(x, h-1, ' ', nil, style)
	}
}
