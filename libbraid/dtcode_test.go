package libbraid_test

import (
	"errors"
	"testing"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/braid-systems/gobraid/libbraid"
)

func TestExtractDT(t *testing.T) {
	cases := []struct {
		word gobraid.Word
		dt   gobraid.DTCode
	}{
		{gobraid.Word{1, 1, 1}, gobraid.DTCode{4, 6, 2}},              // trefoil
		{gobraid.Word{1, 1, 1, 1, 1}, gobraid.DTCode{6, 8, 10, 2, 4}}, // cinquefoil
		{gobraid.Word{1, 2, 1, 1}, gobraid.DTCode{6, -2, 8, 4}},
	}
	for _, c := range cases {
		dt, err := libbraid.ExtractDT(c.word)
		if err != nil {
			t.Fatalf("%q: %v", c.word.String(), err)
		}
		if !dt.IsEqual(c.dt) {
			t.Fatalf("ExtractDT(%q) = %v, want %v", c.word.String(), dt, c.dt)
		}
	}
}

func TestExtractDTNonKnot(t *testing.T) {
	// Both closures have more than one component.
	for _, w := range []gobraid.Word{{1, 1}, {1, 1, 2, 2}} {
		if _, err := libbraid.ExtractDT(w); !errors.Is(err, gobraid.ErrNotKnot) {
			t.Fatalf("ExtractDT(%q) = %v, want ErrNotKnot", w.String(), err)
		}
	}
}

// The shape contract: a knot closure with n crossings labels crossings
// 1..2n, so the code is a signed permutation of the even labels 2..2n.
func TestExtractDTShape(t *testing.T) {
	words := []gobraid.Word{
		{1, 2},
		{1, 1, 1, 2},
		{1, 1, 2, 2, 1, 2},
	}
	for _, w := range words {
		if w.Components() != 1 {
			t.Fatalf("%q: bad test input, closure is not a knot", w.String())
		}
		dt, err := libbraid.ExtractDT(w)
		if err != nil {
			t.Fatalf("%q: %v", w.String(), err)
		}
		if len(dt) != len(w) {
			t.Fatalf("%q: %d code entries for %d crossings", w.String(), len(dt), len(w))
		}
		seen := make(map[int]bool, len(dt))
		for _, di := range dt {
			abs := di
			if abs < 0 {
				abs = -abs
			}
			if abs < 2 || abs > 2*len(w) || abs%2 != 0 || seen[abs] {
				t.Fatalf("ExtractDT(%q) = %v: not a signed permutation of even labels", w.String(), dt)
			}
			seen[abs] = true
		}
	}
}
