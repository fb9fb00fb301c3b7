package life

import (
	"errors"
	"testing"
)

func TestParseRulesRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"23/3", "23/3"},
		{"32/3", "23/3"},
		{"1357/1357", "1357/1357"},
		{"/", "/"},
		{"012345678/3", "012345678/3"},
		{"239/3", "23/3"},
	}
	for _, tc := range cases {
		r, err := ParseRules(tc.in)
		if err != nil {
			t.Fatalf("ParseRules(%q): %v", tc.in, err)
		}
		if got := r.String(); got != tc.want {
			t.Errorf("ParseRules(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRulesRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "23", "2/3/4", "2a/3"} {
		if _, err := ParseRules(in); !errors.Is(err, ErrBadRules) {
			t.Errorf("ParseRules(%q) err = %v, want ErrBadRules", in, err)
		}
	}
}

func TestConwayMatchesNotation(t *testing.T) {
	parsed, err := ParseRules("23/3")
	if err != nil {
		t.Fatal(err)
	}
	if parsed != Conway() {
		t.Fatalf("Conway() = %v, parsed = %v", Conway(), parsed)
	}
	r := Conway()
	if !r.Next(true, 2) || !r.Next(false, 3) || r.Next(false, 2) || r.Next(true, 4) {
		t.Fatal("Conway transition table is wrong")
	}
}
