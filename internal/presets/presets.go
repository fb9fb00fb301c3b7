// Package presets holds the named starting patterns and the preset modes
// offered by the frontends.
package presets

import (
	"errors"
	"fmt"
	"slices"

	"lifepaint/internal/life"
)

// Random is the pseudo pattern name that requests a random fill.
const Random = "random"

// ErrUnknown is returned when a pattern name is not registered.
var ErrUnknown = errors.New("presets: unknown pattern")

var patterns = map[string]life.Pattern{}

// Register adds a named pattern. Empty names, nil patterns and the reserved
// name Random are ignored.
func Register(name string, p life.Pattern) {
	if name == "" || name == Random || p == nil {
		return
	}
	patterns[name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (life.Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return p, nil
}

// Known reports whether name is Random or a registered pattern.
func Known(name string) bool {
	if name == Random {
		return true
	}
	_, ok := patterns[name]
	return ok
}

// Names lists Random followed by the registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns)+1)
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return append([]string{Random}, names...)
}

func init() {
	Register("clean", life.Pattern{})
	Register("cell1", life.Pattern{
		0: {4},
		1: {2, 3, 5, 6},
		2: {1, 6},
		3: {0, 7},
		4: {0, 1, 2, 4, 5, 6},
		5: {2, 3, 5},
	})
	Register("cell2", life.Pattern{
		0: {2, 3, 4},
		1: {1, 2, 3, 4, 5},
		2: {0, 1, 2, 3, 4},
		3: {0, 1, 2, 3, 4},
		4: {1, 2},
	})
	Register("nice", life.Pattern{
		0: {0, 1, 2, 4, 5, 6},
		1: {0, 6},
		2: {0, 1, 2, 4, 5, 6},
	})
	Register("h2o", life.Pattern{
		0:  {0, 3, 9, 10, 11, 12},
		1:  {0, 3, 9, 12},
		2:  {0, 3, 6, 9, 12},
		3:  {0, 1, 2, 3, 5, 6, 7, 9, 12},
		4:  {0, 3, 6, 9, 12},
		5:  {0, 3, 9, 12},
		6:  {0, 3, 9, 10, 11, 12},
		7:  {4, 5},
		8:  {5},
		9:  {4},
		10: {4, 5},
	})
	Register("glider-gun", life.Pattern{
		0: {24},
		1: {22, 24},
		2: {12, 13, 20, 21, 34, 35},
		3: {11, 15, 20, 21, 34, 35},
		4: {0, 1, 10, 16, 20, 21},
		5: {0, 1, 10, 14, 16, 17, 22, 24},
		6: {10, 16, 24},
		7: {11, 15},
		8: {12, 13},
	})
	Register("glider", life.Pattern{
		0: {1},
		1: {2},
		2: {0, 1, 2},
	})
	Register("line", life.Pattern{0: span(200)})
}

func span(n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}
	return cols
}
