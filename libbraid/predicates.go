package libbraid

import (
	"github.com/braid-systems/gobraid/gobraid"
	"github.com/pkg/errors"
)

// LastLetterTooHigh reports whether the final generator skips past the
// strands already in use: a word may only ever touch a strand adjacent to
// one it has crossed before. Words shorter than 2 letters trivially pass.
func LastLetterTooHigh(w gobraid.Word) bool {
	if len(w) < 2 {
		return false
	}
	return w[len(w)-1] > 1+w[:len(w)-1].MaxGen()
}

// IsCyclicMinimal reports whether w is the lexicographic minimum among all
// of its cyclic conjugates. Rotating a braid word conjugates it, so only
// the minimal rotation of each conjugacy class is enumerated.
func IsCyclicMinimal(w gobraid.Word) bool {
	for i := 1; i < len(w); i++ {
		if lexLess(w[i:], w[:len(w)-i]) {
			return false
		}
	}
	return true
}

// lexLess reports whether a compares lexicographically less than b,
// element-wise over the shorter length then by length.
func lexLess(a, b gobraid.Word) bool {
	for i, ai := range a {
		if i >= len(b) {
			return false
		}
		if ai != b[i] {
			return ai < b[i]
		}
	}
	return len(a) < len(b)
}

// HasIrreducibleTail reports whether the tail of w resists the two rewrites
// that would yield a lexicographically smaller equivalent word: shuffling
// the last letter past commuting generators, and a braid-relation
// (Reidemeister III) move. Generators more than one apart commute, so the
// backward walk skips them.
func HasIrreducibleTail(w gobraid.Word) bool {
	s := w[len(w)-1]
	i := len(w) - 2
	for i >= 0 && (w[i] < s-1 || w[i] > s+1) {
		i--
	}
	if i < 0 || w[i] == s || w[i] == s+1 {
		return true
	}
	i--
	for i >= 0 && (w[i] < s-1 || w[i] > s+1) {
		i--
	}
	if i < 0 || w[i] == s-1 || w[i] == s+1 {
		return true
	}
	return false
}

// MissingCrossingsForPrimality returns a lower bound on how many crossings
// w still lacks before its closure can be prime.
//
// For each adjacent generator pair (i, i+1), crossings are censused into
// twist regions: maximal runs of equal kept values when scanning only the
// letters i and i+1. A pair with exactly 2 regions closes to a connect sum
// unless column i grows; fewer than 4 regions leaves column i+1 short as
// well. This is a necessary condition only -- see Completable.
func MissingCrossingsForPrimality(w gobraid.Word) int {
	columns := w.MaxGen()
	missing := make(gobraid.Word, columns)
	for i := 1; i < columns; i++ {
		twistRegions := twistRegionCensus(w, i)
		if twistRegions == 2 && missing[i-1] == 0 {
			missing[i-1] = 1
		}
		if twistRegions < 4 && missing[i] == 0 {
			missing[i] = 1
		}
	}
	return missing.Sum()
}

// twistRegionCensus counts the twist regions of the generator pair (i, i+1).
func twistRegionCensus(w gobraid.Word, i int) int {
	last := -1
	twistRegions := 0
	for _, g := range w {
		if (g == i || g == i+1) && g != last {
			last = g
			twistRegions++
		}
	}
	return twistRegions
}

// VerifyTwistCensus checks the driver invariant that every adjacent
// generator pair of a search word has at least 2 twist regions. A violation
// means the driver fed the predicates a word with an unused generator, which
// is a logic defect, not a recoverable condition.
func VerifyTwistCensus(w gobraid.Word) error {
	columns := w.MaxGen()
	for i := 1; i < columns; i++ {
		if n := twistRegionCensus(w, i); n < 2 {
			return errors.Wrapf(gobraid.ErrTwistCensus, "column %d of %q has %d twist regions", i, w.String(), n)
		}
	}
	return nil
}
