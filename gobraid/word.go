package gobraid

import (
	"bytes"
	"encoding/binary"
	"io"
	"strconv"
)

// MaxGen returns the largest generator index in w.
// An empty word yields 1 so that derived quantities stay well formed.
func (w Word) MaxGen() int {
	result := 1
	for _, g := range w {
		if g > result {
			result = g
		}
	}
	return result
}

// Sum returns the total of all generator indices in w.
func (w Word) Sum() int {
	result := 0
	for _, g := range w {
		result += g
	}
	return result
}

// Strands returns the number of braid strands w is written on.
func (w Word) Strands() int {
	return w.MaxGen() + 1
}

// B1 returns the first Betti number of the fiber surface of w's closure.
// For a one-component closure, B1 is twice the genus.
func (w Word) B1() int {
	return 1 + len(w) - w.Strands()
}

// Components returns the number of components of w's closure: the cycle
// count of the permutation obtained by composing the transpositions
// (i, i+1) in word order.
//
// Each unlabeled strand is walked through the whole word until the walk
// returns to its start, labeling every position visited. O(strands * len).
func (w Word) Components() int {
	if len(w) == 0 {
		return 0
	}
	label := make([]int, w.Strands())
	count := 0
	for i := 0; i < len(label); i++ {
		if label[i] != 0 {
			continue
		}
		count++
		pos := i + 1
		for label[pos-1] == 0 {
			label[pos-1] = count
			for _, g := range w {
				if g == pos {
					pos++
				} else if g == pos-1 {
					pos--
				}
			}
		}
	}
	return count
}

// IsEqual returns whether two words are identical element for element.
func (w Word) IsEqual(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i, g := range w {
		if g != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of w with its own backing array.
func (w Word) Clone() Word {
	return append(Word{}, w...)
}

// AppendAlpha appends the letter rendering of w: generator v becomes the
// v-th lowercase letter. Generators above MaxGenerator fall back to the
// numeric rendering since they have no letter.
func (w Word) AppendAlpha(out []byte) []byte {
	for _, g := range w {
		if g >= 1 && g <= MaxGenerator {
			out = append(out, byte('a'+g-1))
		} else {
			out = append(out, '<')
			out = strconv.AppendInt(out, int64(g), 10)
			out = append(out, '>')
		}
	}
	return out
}

// AppendIndices appends the numeric rendering of w: generator indices
// separated by commas, e.g. "1,2,1". The form round-trips through ParseWord.
func (w Word) AppendIndices(out []byte) []byte {
	for i, g := range w {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendInt(out, int64(g), 10)
	}
	return out
}

func (w Word) String() string {
	return string(w.AppendAlpha(nil))
}

// AppendWordLSM appends a canonical varint encoding of w to out.
// Generator indices are >= 1, so the encoding never contains a NUL byte and
// a double-NUL terminator stays unambiguous in catalog keys.
func (w Word) AppendWordLSM(out []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte
	for _, g := range w {
		n := binary.PutUvarint(scrap[:], uint64(g))
		out = append(out, scrap[:n]...)
	}
	return out
}

// InitFromWordLSM assigns this Word from an encoding made by AppendWordLSM.
func (w *Word) InitFromWordLSM(enc []byte) error {
	out := (*w)[:0]
	rdr := bytes.NewReader(enc)
	for {
		g, err := binary.ReadUvarint(rdr)
		if err != nil {
			if err == io.EOF {
				break
			}
			return ErrUnmarshal
		}
		if g < 1 {
			return ErrUnmarshal
		}
		out = append(out, int(g))
	}
	*w = out
	return nil
}
