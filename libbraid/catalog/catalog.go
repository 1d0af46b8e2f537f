// Package catalog wraps a badger database of emitted braid records.
//
// Catalog database format:
//
//	gCatalogStateKey => CatalogState (varint encoded)
//
//	b1 (byte), DTCodeLSM, NUL, NUL => seq (uvarint), WordLSM
//	...
//
// Keys sort by b1 first, then by the DT code of the closure. DT entries are
// nonzero so their varint bytes are never NUL, which keeps the double-NUL
// key terminator unambiguous. The stored braid is fully recoverable: the DT
// code from the key, the word and emission index from the value.
package catalog

import (
	"encoding/binary"
	"runtime"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/pkg/errors"

	"github.com/dgraph-io/badger/v3"
)

var gCatalogStateKey = []byte{0x00, 0x00, 0x01}

const (
	kMajorVers = 2026
	kMinorVers = 1
)

// CatalogState is the header record of a catalog: format version and per-b1
// record counters.
type CatalogState struct {
	MajorVers int32
	MinorVers int32
	MaxB1     int32
	NumBraids []uint64 // one counter per b1 value, one-based up to MaxB1
}

// Marshal appends a varint encoding of the state to out.
func (cs *CatalogState) Marshal(out []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte
	put := func(v uint64) {
		n := binary.PutUvarint(scrap[:], v)
		out = append(out, scrap[:n]...)
	}
	put(uint64(cs.MajorVers))
	put(uint64(cs.MinorVers))
	put(uint64(cs.MaxB1))
	put(uint64(len(cs.NumBraids)))
	for _, n := range cs.NumBraids {
		put(n)
	}
	return out
}

// Unmarshal assigns this state from an encoding made by Marshal.
func (cs *CatalogState) Unmarshal(in []byte) error {
	get := func() (uint64, bool) {
		v, n := binary.Uvarint(in)
		if n <= 0 {
			return 0, false
		}
		in = in[n:]
		return v, true
	}
	major, ok1 := get()
	minor, ok2 := get()
	maxB1, ok3 := get()
	count, ok4 := get()
	if !ok1 || !ok2 || !ok3 || !ok4 || count > 1024 {
		return gobraid.ErrUnmarshal
	}
	cs.MajorVers = int32(major)
	cs.MinorVers = int32(minor)
	cs.MaxB1 = int32(maxB1)
	cs.NumBraids = make([]uint64, count)
	for i := range cs.NumBraids {
		n, ok := get()
		if !ok {
			return gobraid.ErrUnmarshal
		}
		cs.NumBraids[i] = n
	}
	return nil
}

// catalog is a db wrapper for a braid record catalog.
type catalog struct {
	ctx        gobraid.CatalogContext
	readOnly   bool
	stateDirty bool
	state      CatalogState
	db         *badger.DB
}

// OpenCatalog opens (or creates) the catalog at opts.DbPathName and attaches
// it to ctx. An empty path opens an in-memory catalog.
func OpenCatalog(ctx gobraid.CatalogContext, opts gobraid.CatalogOpts) (gobraid.Catalog, error) {
	if opts.MaxB1 <= 0 {
		opts.MaxB1 = gobraid.MaxB1
	}

	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single writer, so skip for performance
	dbOpts.Logger = nil

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gobraid.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, the catalog ctx blocks until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
		cat.state.MaxB1 = opts.MaxB1
		cat.state.NumBraids = make([]uint64, opts.MaxB1+1)
	}

	if err == nil {
		if cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers {
			err = errors.New("catalog version is incompatible")
		} else if opts.MaxB1 > cat.state.MaxB1 {
			err = errors.New("catalog's MaxB1 is below the requested MaxB1")
		}
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cat.state.Unmarshal(val)
		})
	})
}

func (cat *catalog) flushState() {
	if !cat.stateDirty || cat.readOnly {
		return
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gCatalogStateKey, cat.state.Marshal(nil))
	})
	if err != nil {
		panic(err)
	}
	cat.stateDirty = false
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumBraids(forB1 byte) int64 {
	if int(forB1) >= len(cat.state.NumBraids) {
		return 0
	}
	return int64(cat.state.NumBraids[forB1])
}

// formRecordKey appends the catalog key of b: b1, DT code LSM, double NUL.
func formRecordKey(key []byte, b *gobraid.Braid) []byte {
	key = append(key, byte(b.Word.B1()))
	key = b.DT.AppendDTLSM(key)
	key = append(key, 0, 0)
	return key
}

// TryAddBraid adds b unless a record with the same DT code already exists.
// Adding to a read-only catalog always returns false.
func (cat *catalog) TryAddBraid(b *gobraid.Braid) bool {
	if cat.readOnly {
		return false
	}

	var keyBuf [192]byte
	key := formRecordKey(keyBuf[:0], b)

	wasAdded := false
	err := cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil // already present
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		// commit buffers outlive this closure, so they get their own allocs
		var scrap [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(scrap[:], uint64(b.Seq))
		val := b.Word.AppendWordLSM(append(make([]byte, 0, 64), scrap[:n]...))

		if err = txn.Set(append([]byte{}, key...), val); err != nil {
			return err
		}
		wasAdded = true
		return nil
	})
	if err != nil {
		panic(err)
	}

	if wasAdded {
		b1 := b.Word.B1()
		if b1 >= 0 && b1 < len(cat.state.NumBraids) {
			cat.state.NumBraids[b1]++
			cat.stateDirty = true
		}
	}
	return wasAdded
}

// loadBraid reconstructs a braid record from its catalog key and value.
func loadBraid(key []byte, val []byte) (*gobraid.Braid, error) {
	if len(key) < 3 {
		return nil, gobraid.ErrUnmarshal
	}
	b := gobraid.NewBraid()
	if err := b.DT.InitFromDTLSM(key[1 : len(key)-2]); err != nil {
		b.Reclaim()
		return nil, err
	}
	seq, n := binary.Uvarint(val)
	if n <= 0 {
		b.Reclaim()
		return nil, gobraid.ErrUnmarshal
	}
	b.Seq = int(seq)
	if err := b.Word.InitFromWordLSM(val[n:]); err != nil {
		b.Reclaim()
		return nil, err
	}
	return b, nil
}

// Select fires onHit with every stored braid in the b1 range of sel.
// Records stream in key order: ascending b1, then DT code.
func (cat *catalog) Select(sel gobraid.BraidSelector, onHit gobraid.OnBraidHit) {
	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   100,
	})
	defer it.Close()

	minKey := [1]byte{sel.MinB1}
	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		item := it.Item()
		key := item.Key()
		if len(key) == len(gCatalogStateKey) && key[0] == 0 {
			continue // state header sorts below the b1=0 records
		}
		if key[0] > sel.MaxB1 {
			break
		}
		n := len(key)
		if n < 3 || key[n-2] != 0 || key[n-1] != 0 { // check double NUL suffix
			panic("what is this entry?")
		}
		err := item.Value(func(val []byte) error {
			b, err := loadBraid(key, val)
			if err != nil {
				return err
			}
			onHit <- b
			return nil
		})
		if err != nil {
			panic(err)
		}
	}
}
