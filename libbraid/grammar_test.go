package libbraid_test

import (
	"testing"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/braid-systems/gobraid/libbraid"
)

func TestParseWord(t *testing.T) {
	cases := []struct {
		expr string
		word gobraid.Word
	}{
		{"aaa", gobraid.Word{1, 1, 1}},
		{"aab", gobraid.Word{1, 1, 2}},
		{"1,2,1", gobraid.Word{1, 2, 1}},
		{"1 2 1", gobraid.Word{1, 2, 1}},
		{"a^3", gobraid.Word{1, 1, 1}},
		{"a^2 b^2", gobraid.Word{1, 1, 2, 2}},
		{"aa 2", gobraid.Word{1, 1, 2}},
		{"z", gobraid.Word{26}},
	}
	for _, c := range cases {
		w, err := libbraid.ParseWord(c.expr)
		if err != nil {
			t.Fatalf("ParseWord(%q): %v", c.expr, err)
		}
		if !w.IsEqual(c.word) {
			t.Fatalf("ParseWord(%q) = %v, want %v", c.expr, w, c.word)
		}
	}
}

func TestParseWordErrors(t *testing.T) {
	bad := []string{
		"",
		"a3c!",
		"0",
		"27",
		"ab^2", // repeat count needs a single generator
		"a^-1", // negative crossings are outside the positive monoid
	}
	for _, expr := range bad {
		if w, err := libbraid.ParseWord(expr); err == nil {
			t.Fatalf("ParseWord(%q) = %v, want error", expr, w)
		}
	}
}

func TestNewBraidFromExpr(t *testing.T) {
	b, err := libbraid.NewBraidFromExpr("aaa")
	if err != nil {
		t.Fatal(err)
	}
	defer b.Reclaim()
	if !b.DT.IsEqual(gobraid.DTCode{4, 6, 2}) {
		t.Fatalf("trefoil DT = %v", b.DT)
	}

	// A 2-component closure cannot receive a DT code.
	if _, err = libbraid.NewBraidFromExpr("aa"); err == nil {
		t.Fatal("expected a non-knot error for aa")
	}
}
