package gobraid

const (

	// MaxGenerator is the largest Artin generator index a Word may carry.
	// Generator v renders as the v-th lowercase letter, so 26 keeps every
	// word printable as 'a'..'z'.
	MaxGenerator = 26

	// MaxB1 is the largest first Betti number a catalog is dimensioned for.
	MaxB1 = 16
)

// Word is a positive braid word: an ordered sequence of Artin generator
// indices, each >= 1, where index i crosses strand i over strand i+1.
type Word []int

// DTCode is the Dowker-Thistlethwaite code of a braid closure: one signed
// even integer per crossing, ordered by odd crossing label.
type DTCode []int

// Braid is an accepted braid word together with its emission index and the
// DT code of its closure. Ownership travels with a BraidStream channel:
// whoever pulls a Braid either passes it on or Reclaims it.
type Braid struct {
	Seq  int // 1-based emission index within a search run
	Word Word
	DT   DTCode
}

// OnBraidHit is a callback channel used to return braids meeting a set of
// selection criteria. Ownership of a Braid travels through the channel.
type OnBraidHit chan<- *Braid

// BraidAdder accepts braids into a collection, dropping exact duplicates.
type BraidAdder interface {

	// TryAddBraid tries to add the given braid to this collection.
	// If true is returned, no record with the same DT code existed and the
	// braid was added.
	TryAddBraid(b *Braid) bool
}

// Catalog wraps a database of emitted braid records.
type Catalog interface {
	BraidAdder

	// IsReadOnly returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumBraids returns the number of braid records stored for a given first
	// Betti number. An out of bounds b1 returns 0.
	NumBraids(forB1 byte) int64

	// Select fires the given callback with each stored braid that meets the
	// selection criteria.
	Select(sel BraidSelector, onHit OnBraidHit)

	Close() error
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// AttachCatalog attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// DetachCatalog detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Close signals all open catalogs to close, then closes this context.
	Close()

	// Done signals when Close() completed and all open catalogs have closed.
	Done() <-chan struct{}
}

// CatalogOpts specifies params for opening a braid Catalog.
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
	MaxB1      int32  // largest b1 the catalog counters are dimensioned for
}

// BraidSelector is an operator that either selects a given braid or not.
type BraidSelector struct {
	MinB1  byte // lower b1 bound, inclusive
	MaxB1  byte // upper b1 bound, inclusive
	MaxLen int  // longest word selected; 0 denotes no limit
}

// DefaultBraidSelector selects every stored braid record.
var DefaultBraidSelector = BraidSelector{
	MinB1: 0,
	MaxB1: MaxB1,
}

// SelectsBraid is a convenience function used to see if a braid is selected
// according to a BraidSelector.
func (sel *BraidSelector) SelectsBraid(b *Braid) bool {
	b1 := b.Word.B1()
	if b1 < int(sel.MinB1) || b1 > int(sel.MaxB1) {
		return false
	}
	if sel.MaxLen > 0 && len(b.Word) > sel.MaxLen {
		return false
	}
	return true
}

// PrintOpts specifies what is printed when rendering a braid record.
type PrintOpts struct {
	Label   string // prefix label on the word line
	DT      bool   // if set, a ": <n> <seq> <dt...>" line follows the word line
	Numeric bool   // if set, the word renders as comma-joined indices instead of letters
}

// DefaultPrintOpts renders the two-line record consumed by downstream
// knot-identification tools.
var DefaultPrintOpts = PrintOpts{
	DT: true,
}
