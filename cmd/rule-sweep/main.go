package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"lifepaint/internal/life"
	"lifepaint/internal/presets"
	"lifepaint/internal/render"
	"lifepaint/internal/state"
)

type scenario struct {
	title  string
	mode   string
	border life.Border
}

func (s scenario) String() string {
	return fmt.Sprintf("%s [%s]", s.title, s.border)
}

type scenarioResult struct {
	scenario   scenario
	err        error
	initialPop int
	finalPop   int
	peakPop    int
	peakStep   int
	settledAt  int
	image      *image.RGBA
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "number of results to print")
	pngDir := flag.String("png", "", "directory receiving a PNG of every final generation")
	surface := flag.Int("surface", 600, "maximum PNG edge in pixels")
	flag.Parse()

	var sets []scenario
	for _, m := range presets.Modes() {
		for _, b := range []life.Border{life.Torus, life.AssumeAlive, life.AssumeDead} {
			sets = append(sets, scenario{title: m.Title, mode: m.Mode, border: b})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *steps, *surface, *pngDir != "")
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.scenario, res.err)
			continue
		}
		all = append(all, res)
		if *pngDir != "" {
			if err := writePNG(*pngDir, res); err != nil {
				log.Printf("%s: %v", res.scenario, err)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].finalPop > all[j].finalPop })
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d by final population (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		settled := "no"
		if res.settledAt >= 0 {
			settled = fmt.Sprintf("gen %d", res.settledAt)
		}
		fmt.Printf("%2d) final=%d initial=%d peak=%d@%d settled=%s %s\n",
			i+1, res.finalPop, res.initialPop, res.peakPop, res.peakStep, settled, res.scenario)
	}
}

// runScenario loads sc on a fresh simulation and steps it. A generation in
// which no cell changes marks the run as settled and ends it early.
func runScenario(sc scenario, steps, surface int, snapshot bool) scenarioResult {
	res := scenarioResult{scenario: sc, settledAt: -1}

	m, err := state.Parse(sc.mode)
	if err != nil {
		res.err = err
		return res
	}
	m.Border = sc.border
	m.Autoplay = false

	cfg := life.DefaultConfig()
	cfg.MaxSurface = image.Pt(surface, surface)
	sim := life.New(m.Config(cfg))
	if err := m.Apply(sim); err != nil {
		res.err = err
		return res
	}

	changed := 0
	sim.OnCellChanged(func(int, int, life.CellState) { changed++ })

	res.initialPop = sim.Population()
	res.peakPop = res.initialPop
	for step := 1; step <= steps; step++ {
		changed = 0
		sim.Step()
		pop := sim.Population()
		if pop > res.peakPop {
			res.peakPop = pop
			res.peakStep = step
		}
		if changed == 0 {
			res.settledAt = step
			break
		}
	}
	res.finalPop = sim.Population()

	if snapshot {
		size := sim.Surface()
		canvas := render.NewCanvas(size.X, size.Y, color.White)
		render.Attach(sim, canvas, render.DefaultPalette())
		res.image = canvas.Image()
	}
	return res
}

func writePNG(dir string, res scenarioResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s-%s.png", slug(res.scenario.title), res.scenario.border)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := png.Encode(f, res.image); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
