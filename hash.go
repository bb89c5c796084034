package pythonic

import (
	"encoding/binary"
	"math"

	"github.com/delaneyj/toolbelt/bytebufferpool"
	"github.com/zeebo/xxh3"
)

// Hash returns a 64-bit hash consistent with Equal: values that compare
// equal hash equally, whatever their kinds. Containers hash structurally.
func Hash(v Var) uint64 {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	writeCanonical(buf, v)
	return xxh3.Hash(buf.Bytes())
}

// Canonical encoding markers.
const (
	canonNone        = 'N'
	canonInt         = 'i' // fits int64
	canonUint        = 'u' // above int64
	canonFloat       = 'f' // non-integral or beyond uint64, exact in float64
	canonExtended    = 'e'
	canonNaN         = 'n'
	canonString      = 's'
	canonList        = 'l'
	canonSet         = 'S'
	canonDict        = 'd'
	canonOrderedSet  = 'o'
	canonOrderedDict = 'D'
	canonGraph       = 'g'
)

func writeCanonical(buf *bytebufferpool.ByteBuffer, v Var) {
	switch {
	case v.tag == TagNone:
		buf.WriteByte(canonNone)
	case v.tag.IsInteger():
		writeCanonicalInt(buf, exactInt(v))
	case v.tag.IsFloat():
		writeCanonicalFloat(buf, numericExtended(v))
	case v.tag == TagString:
		s := v.StringUnchecked()
		buf.WriteByte(canonString)
		writeUvarint(buf, uint64(len(s)))
		buf.WriteString(s)
	case v.tag == TagList, v.tag == TagSet, v.tag == TagOrderedSet:
		marker := byte(canonList)
		switch v.tag {
		case TagSet:
			marker = canonSet
		case TagOrderedSet:
			marker = canonOrderedSet
		}
		elems := v.ElemsUnchecked()
		buf.WriteByte(marker)
		writeUvarint(buf, uint64(len(elems)))
		for _, e := range elems {
			writeCanonical(buf, e)
		}
	case v.tag == TagDict, v.tag == TagOrderedDict:
		marker := byte(canonDict)
		if v.tag == TagOrderedDict {
			marker = canonOrderedDict
		}
		d := v.dictUnchecked()
		buf.WriteByte(marker)
		writeUvarint(buf, uint64(len(d.keys)))
		for _, k := range d.keys {
			writeUvarint(buf, uint64(len(k)))
			buf.WriteString(k)
			writeCanonical(buf, d.vals[k])
		}
	case v.tag == TagGraph:
		buf.WriteByte(canonGraph)
		writeUint64(buf, v.GraphUnchecked().GraphID())
	}
}

func writeCanonicalInt(buf *bytebufferpool.ByteBuffer, w wide) {
	if fitsIn[int64](w) {
		buf.WriteByte(canonInt)
		writeUint64(buf, uint64(wrapTo[int64](w)))
		return
	}
	buf.WriteByte(canonUint)
	writeUint64(buf, w.lo)
}

func writeCanonicalFloat(buf *bytebufferpool.ByteBuffer, x Extended) {
	if x.IsNaN() {
		buf.WriteByte(canonNaN)
		return
	}
	if x.IsInt() {
		if i, ok := x.BigInt(); ok {
			if w, ok := wideFromBig(i); ok && w.hi == 0 && (!w.neg || fitsIn[int64](w)) {
				writeCanonicalInt(buf, w)
				return
			}
		}
	}
	if f := x.Float64(); ExtendedFromFloat64(f).Cmp(x) == 0 {
		buf.WriteByte(canonFloat)
		writeUint64(buf, math.Float64bits(f))
		return
	}
	buf.WriteByte(canonExtended)
	s := x.canonical()
	writeUvarint(buf, uint64(len(s)))
	buf.WriteString(s)
}

func writeUint64(buf *bytebufferpool.ByteBuffer, x uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], x)
	buf.Write(tmp[:])
}

func writeUvarint(buf *bytebufferpool.ByteBuffer, x uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], x)
	buf.Write(tmp[:n])
}
