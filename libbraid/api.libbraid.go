// Package libbraid is the positive-braid search engine: the canonical-form
// and primality pruning predicates, the depth-first branch-and-bound driver
// over braid words, and the DT-code extraction from accepted words.
//
// For a fixed genus g, ListBraids(SearchOpts{MaxB1: 2 * g}) streams a list
// of positive braid words guaranteed to contain every prime positive braid
// knot of that genus, each paired with the DT code of its closure. From
// genus 3 on the list also carries doubles, which must be removed with
// another method or program (e.g. knotscape) if a list without doubles is
// wanted.
package libbraid

var (
	LIB_VERSION = "v1.2026.1"
)
