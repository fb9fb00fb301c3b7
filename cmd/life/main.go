//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifepaint/internal/app"
	"lifepaint/internal/control"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.List {
		app.PrintPresets(os.Stdout)
		return
	}

	sim, mode, err := cfg.NewSimulation()
	if err != nil {
		log.Fatalf("configure: %v", err)
	}

	ctrl := control.New(sim, mode, log.Default())
	game := app.New(ctrl, cfg.HUDWidth)

	ebiten.SetWindowTitle("lifepaint - " + mode.Rules.String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
