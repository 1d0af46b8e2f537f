package libbraid

import (
	"sort"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/pkg/errors"
)

// crossing is one entry of the transient DT table: the odd and even labels a
// crossing receives during traversal, and whether the even label carries a
// positive sign in the emitted code.
type crossing struct {
	odd, even int
	positive  bool
}

// ExtractDT derives the Dowker-Thistlethwaite code of the closure of w.
//
// The closure is traced as a walk over strand positions 1..Strands: each
// full pass through the word advances the walk by the word's permutation,
// and the trace re-enters the word until the walk returns to strand 1. Each
// time the walk meets a crossing on its current strand pair, the crossing
// receives the next sequential label; odd labels fill the odd slot, even
// labels the even slot, and the sign records the walk direction through the
// uniformly positive crossing. Sorting by odd label and reading the signed
// even slots yields the code.
//
// A single-component closure takes exactly Strands passes. Any other pass
// count means w does not close to a knot, which is an input contract
// violation: the caller is expected to have already checked Components.
func ExtractDT(w gobraid.Word) (gobraid.DTCode, error) {
	strands := w.Strands()
	table := make([]crossing, len(w))

	passes := 0
	pos := 1
	label := 1
	for {
		for i, g := range w {
			if g != pos && g != pos-1 {
				continue
			}
			goesUp := g == pos
			if label%2 == 1 {
				table[i].odd = label
			} else {
				table[i].even = label
			}
			table[i].positive = (label%2 == 1) == goesUp
			label++
			if goesUp {
				pos++
			} else {
				pos--
			}
		}
		if pos < 1 || pos > strands {
			return nil, errors.Wrapf(gobraid.ErrNotKnot, "walk left the strand range at %d", pos)
		}
		passes++
		if pos == 1 {
			break
		}
	}

	if passes != strands {
		return nil, errors.Wrapf(gobraid.ErrNotKnot,
			"closure walk of %q finished after %d passes, want %d", w.String(), passes, strands)
	}

	sort.Slice(table, func(i, j int) bool {
		return table[i].odd < table[j].odd
	})

	dt := make(gobraid.DTCode, len(w))
	for i, c := range table {
		if c.positive {
			dt[i] = c.even
		} else {
			dt[i] = -c.even
		}
	}
	return dt, nil
}
