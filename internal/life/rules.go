package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRules is returned when rule notation cannot be parsed.
var ErrBadRules = errors.New("life: malformed rules")

// Rules is a survive/revive table indexed by live neighbour count.
type Rules struct {
	KeepAlive [9]bool
	Revive    [9]bool
}

// Conway returns the classic 23/3 rule.
func Conway() Rules {
	var r Rules
	r.KeepAlive[2] = true
	r.KeepAlive[3] = true
	r.Revive[3] = true
	return r
}

// Next reports whether a cell is alive in the next generation.
func (r *Rules) Next(alive bool, neighbors int) bool {
	return (alive && r.KeepAlive[neighbors]) || r.Revive[neighbors]
}

// ParseRules reads "keep/revive" notation such as "23/3". Digits may appear
// in any order; 9 is ignored.
func ParseRules(s string) (Rules, error) {
	keep, revive, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(revive, "/") {
		return Rules{}, fmt.Errorf("%w: %q needs exactly one '/'", ErrBadRules, s)
	}
	var r Rules
	if err := parseDigits(keep, &r.KeepAlive); err != nil {
		return Rules{}, fmt.Errorf("%w: %q: %v", ErrBadRules, s, err)
	}
	if err := parseDigits(revive, &r.Revive); err != nil {
		return Rules{}, fmt.Errorf("%w: %q: %v", ErrBadRules, s, err)
	}
	return r, nil
}

func parseDigits(s string, dst *[9]bool) error {
	for _, c := range s {
		if c < '0' || c > '9' {
			return fmt.Errorf("unexpected %q", c)
		}
		if n := int(c - '0'); n < len(dst) {
			dst[n] = true
		}
	}
	return nil
}

// String formats the rules in ascending "keep/revive" notation.
func (r Rules) String() string {
	var b strings.Builder
	for n, ok := range r.KeepAlive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteByte('/')
	for n, ok := range r.Revive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
