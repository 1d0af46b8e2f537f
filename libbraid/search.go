package libbraid

import (
	"github.com/braid-systems/gobraid/gobraid"
	"github.com/plan-systems/klog"
)

// SearchOpts configures one enumeration run.
type SearchOpts struct {

	// MaxB1 is the target first Betti number of accepted words: twice the
	// genus being searched.
	MaxB1 int

	// Strict enables driver contract checks that are redundant when the
	// predicates are correct. A violation panics: it is a logic defect, not
	// a runtime condition.
	Strict bool
}

// ListBraids enumerates every admissible positive braid word with first
// Betti number opts.MaxB1 and streams the accepted braids, each carrying its
// 1-based emission index and the DT code of its closure.
//
// The emitted list contains all prime positive braid knots of genus
// MaxB1/2. It is deliberately over-inclusive: from genus 3 on it also
// contains duplicate and occasionally composite entries, which a downstream
// recognizer removes.
func ListBraids(opts SearchOpts) *gobraid.BraidStream {
	stream := gobraid.NewBraidStream()
	go func() {
		runSearch(opts, stream.Outlet)
		stream.Close()
	}()
	return stream
}

// runSearch is the depth-first branch-and-bound driver: one mutable word,
// one explicit loop, no recursion. Each iteration takes exactly one of four
// transitions, in priority order:
//
//  1. last letter too high     -> pop it, increment the new last letter
//  2. oracle rejects           -> increment the last letter in place
//  3. b1 below the bound       -> append a biased fresh letter
//  4. word accepted            -> emit, then increment the last letter
//
// The word never unwinds past the two-letter seed [1 1]: an exhausted branch
// always grows its last letter until transition 1 fires, so the loop
// terminates once the seed itself is exhausted.
func runSearch(opts SearchOpts, out chan<- *gobraid.Braid) {
	seq := 0
	w := gobraid.Word{1, 1}
	for len(w) > 1 {
		if klog.V(2) {
			klog.Infof("working on %q", w.String())
		}
		if LastLetterTooHigh(w) {
			if klog.V(2) {
				klog.Infof("last letter too high, popping back")
			}
			w = w[:len(w)-1]
			w[len(w)-1]++
			continue
		}
		if opts.Strict {
			if err := VerifyTwistCensus(w); err != nil {
				panic(err)
			}
		}
		if mask := Completable(w, opts.MaxB1); mask != CompletableAll {
			if klog.V(2) {
				klog.Infof("not completable (mask %04b), increasing", mask)
			}
			w[len(w)-1]++
			continue
		}
		if w.B1() < opts.MaxB1 {
			if klog.V(2) {
				klog.Infof("too short, appending")
			}
			w = appendLetter(w)
			continue
		}

		seq++
		dt, err := ExtractDT(w)
		if err != nil {
			// The oracle guarantees a one-component closure here, so a
			// failed traversal contract is a defect in the predicates or
			// the driver itself.
			panic(err)
		}
		if klog.V(2) {
			klog.Infof("accepted #%d: %q", seq, w.String())
		}
		b := gobraid.NewBraid()
		b.Seq = seq
		b.Word = append(b.Word, w...)
		b.DT = append(b.DT, dt...)
		out <- b

		w[len(w)-1]++
	}
	klog.V(1).Infof("search exhausted after %d accepted words", seq)
}

// appendLetter grows the word by one letter, biased toward re-descending:
// below a 1 the only canonical continuation starts at 1 again, otherwise
// starting one strand down keeps the continuation lexicographically small.
func appendLetter(w gobraid.Word) gobraid.Word {
	last := w[len(w)-1]
	if last == 1 {
		return append(w, 1)
	}
	return append(w, last-1)
}
