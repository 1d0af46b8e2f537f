package gobraid

import (
	"bytes"
	"encoding/binary"
	"io"
	"strconv"
	"sync"
)

var gBraidPool = sync.Pool{
	New: func() any {
		return &Braid{
			Word: make(Word, 0, 32),
			DT:   make(DTCode, 0, 32),
		}
	},
}

// NewBraid returns a zeroed Braid instance from the recycle pool.
func NewBraid() *Braid {
	b := gBraidPool.Get().(*Braid)
	b.Seq = 0
	b.Word = b.Word[:0]
	b.DT = b.DT[:0]
	return b
}

// Reclaim recycles this Braid instance into a pool for reuse.
// Caller asserts that no more references to this instance will persist.
func (b *Braid) Reclaim() {
	gBraidPool.Put(b)
}

// MakeCopy returns a new copy of this instance.
func (b *Braid) MakeCopy() *Braid {
	cpy := NewBraid()
	cpy.Seq = b.Seq
	cpy.Word = append(cpy.Word, b.Word...)
	cpy.DT = append(cpy.DT, b.DT...)
	return cpy
}

// WriteAsString renders this braid record to out: the word line, then the
// ": <crossings> <seq> <dt...>" line when opts.DT is set.
func (b *Braid) WriteAsString(out io.Writer, opts PrintOpts) {
	var scrap [192]byte
	line := scrap[:0]
	if len(opts.Label) > 0 {
		line = append(line, opts.Label...)
		line = append(line, ' ')
	}
	if opts.Numeric {
		line = b.Word.AppendIndices(line)
	} else {
		line = b.Word.AppendAlpha(line)
	}
	line = append(line, '\n')
	if opts.DT {
		line = append(line, ':', ' ')
		line = strconv.AppendInt(line, int64(len(b.DT)), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(b.Seq), 10)
		for _, di := range b.DT {
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(di), 10)
		}
		line = append(line, '\n')
	}
	out.Write(line)
}

// IsEqual returns whether two DT codes are identical.
func (dt DTCode) IsEqual(other DTCode) bool {
	if len(dt) != len(other) {
		return false
	}
	for i, di := range dt {
		if di != other[i] {
			return false
		}
	}
	return true
}

func (dt DTCode) String() string {
	var scrap [128]byte
	out := scrap[:0]
	for i, di := range dt {
		if i > 0 {
			out = append(out, ' ')
		}
		out = strconv.AppendInt(out, int64(di), 10)
	}
	return string(out)
}

// AppendDTLSM appends a canonical varint encoding of dt to out.
// DT entries are nonzero, so the zigzag encoding never emits a NUL byte and
// a double-NUL terminator stays unambiguous in catalog keys.
func (dt DTCode) AppendDTLSM(out []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte
	for _, di := range dt {
		n := binary.PutVarint(scrap[:], int64(di))
		out = append(out, scrap[:n]...)
	}
	return out
}

// InitFromDTLSM assigns this DTCode from an encoding made by AppendDTLSM.
func (dt *DTCode) InitFromDTLSM(enc []byte) error {
	out := (*dt)[:0]
	rdr := bytes.NewReader(enc)
	for {
		di, err := binary.ReadVarint(rdr)
		if err != nil {
			if err == io.EOF {
				break
			}
			return ErrUnmarshal
		}
		if di == 0 {
			return ErrUnmarshal
		}
		out = append(out, int(di))
	}
	*dt = out
	return nil
}
