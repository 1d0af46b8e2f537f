package libbraid

import "github.com/braid-systems/gobraid/gobraid"

// Completable satisfaction mask bits. Each bit is a necessary condition for
// the word to be a prefix of some eventually accepted word; a failed bit
// pinpoints which condition pruned the branch.
const (
	CanBeKnot       = 1 << iota // component count can still shrink to 1 within budget
	CanBePrime                  // missing crossings for primality fit the budget
	CyclicMinimal               // word is minimal among its cyclic conjugates
	TailIrreducible             // tail resists commuting / braid-relation rewrites

	CompletableAll = CanBeKnot | CanBePrime | CyclicMinimal | TailIrreducible
)

// Completable decides whether w can still be extended to an admissible braid
// word with first Betti number maxB1. The returned mask has all four bits
// set exactly when every necessary condition holds; callers descend only on
// CompletableAll and otherwise use the mask for diagnostics.
func Completable(w gobraid.Word, maxB1 int) int {
	budget := maxB1 - w.B1()
	mask := 0
	if w.Components()-budget <= 1 {
		mask |= CanBeKnot
	}
	if MissingCrossingsForPrimality(w) <= budget {
		mask |= CanBePrime
	}
	if IsCyclicMinimal(w) {
		mask |= CyclicMinimal
	}
	if HasIrreducibleTail(w) {
		mask |= TailIrreducible
	}
	return mask
}
