//go:build sdl

package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"lifepaint/internal/app"
	"lifepaint/internal/control"
	"lifepaint/internal/sdlview"
)

func init() {
	// SDL video calls must stay on the main thread.
	runtime.LockOSThread()
}

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
	if err := sdlview.Run(ctrl, "lifepaint", cfg.TPS); err != nil {
		log.Fatal(err)
	}
}
