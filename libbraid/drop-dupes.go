package libbraid

import (
	"bytes"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// dropDupes is a memory resident BraidAdder keyed by DT code: two words
// whose closures received the same diagram code are the same record, so only
// the first is kept. It does NOT recognize equivalent knots presented by
// different codes -- that stays with the downstream recognizer.
type dropDupes struct {
	tree *redblacktree.Tree
}

// NewDropDupes returns an in-memory adder for the DropDupes stream stage.
func NewDropDupes() gobraid.BraidAdder {
	return &dropDupes{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return bytes.Compare(a.([]byte), b.([]byte))
		}),
	}
}

func (dd *dropDupes) TryAddBraid(b *gobraid.Braid) bool {
	var scrap [128]byte
	key := b.DT.AppendDTLSM(scrap[:0])
	if _, found := dd.tree.Get(key); found {
		return false
	}
	dd.tree.Put(append([]byte{}, key...), struct{}{})
	return true
}

// DropDupes filters the stream through a fresh in-memory adder, passing only
// the first braid seen for each DT code.
func DropDupes(stream *gobraid.BraidStream) *gobraid.BraidStream {
	return stream.AddTo(NewDropDupes(), gobraid.AddBraidOpts{})
}
