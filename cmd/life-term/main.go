package main

import (
	"flag"
	"log"
	"os"
	"time"

	"lifepaint/internal/app"
	"lifepaint/internal/control"
	"lifepaint/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Set["grid"] = "false"
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "lifepaint.log", "file receiving exported modes and errors")
	flag.Parse()

	if cfg.List {
		app.PrintPresets(os.Stdout)
		return
	}

	sim, mode, err := cfg.NewSimulation()
	if err != nil {
		log.Fatalf("configure: %v", err)
	}

	// The terminal belongs to tcell while running, so log to a file.
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer f.Close()
	logger := log.New(f, "", log.LstdFlags)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()

	ctrl := control.New(sim, mode, logger)
	frame := time.Second / time.Duration(max(cfg.TPS, 1))
	if err := term.Run(screen, ctrl, frame); err != nil {
		logger.Printf("run: %v", err)
	}
}
