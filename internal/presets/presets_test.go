package presets

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"lifepaint/internal/life"
)

func TestNamesListsRandomFirst(t *testing.T) {
	names := Names()
	if names[0] != Random {
		t.Fatalf("first name = %q, want %q", names[0], Random)
	}
	for _, want := range []string{"clean", "cell1", "cell2", "nice", "h2o", "glider-gun", "line"} {
		if !slices.Contains(names, want) {
			t.Fatalf("pattern %q not registered", want)
		}
	}
	if !slices.IsSorted(names[1:]) {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("err = %v, want ErrUnknown", err)
	}
	if _, err := Lookup(Random); !errors.Is(err, ErrUnknown) {
		t.Fatal("random is not a stored pattern")
	}
	if !Known(Random) || Known("nope") {
		t.Fatal("Known disagrees with the registry")
	}
}

func TestRegisterIgnoresReservedNames(t *testing.T) {
	before := len(Names())
	Register("", life.Pattern{0: {0}})
	Register(Random, life.Pattern{0: {0}})
	Register("nil-pattern", nil)
	if got := len(Names()); got != before {
		t.Fatalf("registry grew from %d to %d", before, got)
	}
}

func TestGliderGunPopulation(t *testing.T) {
	p, err := Lookup("glider-gun")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Cells(); got != 36 {
		t.Fatalf("glider gun cells = %d, want 36", got)
	}
	rows, cols := p.Bounds()
	if rows != 9 || cols != 36 {
		t.Fatalf("glider gun bounds = %dx%d, want 9x36", rows, cols)
	}
}

func TestLineSpansTwoHundredColumns(t *testing.T) {
	p, err := Lookup("line")
	if err != nil {
		t.Fatal(err)
	}
	if rows, cols := p.Bounds(); rows != 1 || cols != 200 {
		t.Fatalf("line bounds = %dx%d", rows, cols)
	}
}

func TestModesReferenceKnownPatterns(t *testing.T) {
	modes := Modes()
	if len(modes) == 0 {
		t.Fatal("no preset modes")
	}
	for _, m := range modes {
		toks := strings.Split(m.Mode, "|")
		if _, err := life.ParseRules(toks[0]); err != nil {
			t.Fatalf("%q: rules token: %v", m.Title, err)
		}
		if len(toks) < 2 || !Known(toks[1]) {
			t.Fatalf("%q: pattern token missing or unknown", m.Title)
		}
	}
}
