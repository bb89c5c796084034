package pythonic

import (
	"math"
	"strconv"
	"strings"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// String renders v the way Python's str() would: strings are bare,
// everything inside a container uses Repr.
func (v Var) String() string {
	if v.tag == TagString {
		return v.StringUnchecked()
	}
	return v.Repr()
}

// Repr renders v the way Python's repr() would.
func (v Var) Repr() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	writeRepr(buf, v)
	return buf.String()
}

func writeRepr(buf *bytebufferpool.ByteBuffer, v Var) {
	switch v.tag {
	case TagNone:
		buf.WriteString("None")
	case TagBool:
		if v.BoolUnchecked() {
			buf.WriteString("True")
		} else {
			buf.WriteString("False")
		}
	case TagInt, TagLong, TagLongLong:
		var tmp [20]byte
		buf.Write(strconv.AppendInt(tmp[:0], int64(v.n), 10))
	case TagUInt, TagULong, TagULongLong:
		var tmp [20]byte
		buf.Write(strconv.AppendUint(tmp[:0], v.n, 10))
	case TagFloat:
		buf.WriteString(formatFloat(float64(v.FloatUnchecked()), 32))
	case TagDouble:
		buf.WriteString(formatFloat(v.DoubleUnchecked(), 64))
	case TagLongDouble:
		buf.WriteString(formatExtended(v.ExtendedUnchecked()))
	case TagString:
		buf.WriteString(quoteString(v.StringUnchecked()))
	case TagList:
		writeElems(buf, "[", "]", v.ElemsUnchecked())
	case TagSet, TagOrderedSet:
		elems := v.ElemsUnchecked()
		if len(elems) == 0 {
			buf.WriteString("set()")
			return
		}
		writeElems(buf, "{", "}", elems)
	case TagDict, TagOrderedDict:
		d := v.dictUnchecked()
		buf.WriteByte('{')
		for i, k := range d.keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(quoteString(k))
			buf.WriteString(": ")
			writeRepr(buf, d.vals[k])
		}
		buf.WriteByte('}')
	case TagGraph:
		buf.WriteString("<graph ")
		var tmp [20]byte
		buf.Write(strconv.AppendUint(tmp[:0], v.GraphUnchecked().GraphID(), 10))
		buf.WriteByte('>')
	}
}

func writeElems(buf *bytebufferpool.ByteBuffer, open, close string, elems []Var) {
	buf.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			buf.WriteString(", ")
		}
		writeRepr(buf, e)
	}
	buf.WriteString(close)
}

// quoteString uses single quotes unless the text contains one.
func quoteString(s string) string {
	q := strconv.Quote(s)
	if strings.ContainsRune(s, '\'') {
		return q
	}
	inner := strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`)
	return "'" + inner + "'"
}

// formatFloat prints the shortest round-tripping digits, in positional
// form for decimal exponents in [-4, 16) and scientific form otherwise.
// Whole values keep a trailing ".0".
func formatFloat(x float64, bitSize int) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return pyFloat(strconv.FormatFloat(x, 'e', -1, bitSize), func() string {
		return strconv.FormatFloat(x, 'f', -1, bitSize)
	})
}

func formatExtended(x Extended) string {
	if !x.IsFinite() {
		return x.Text()
	}
	f := x.big()
	return pyFloat(f.Text('e', -1), func() string { return f.Text('f', -1) })
}

func pyFloat(sci string, positional func() string) string {
	_, exp, _ := strings.Cut(sci, "e")
	e, err := strconv.Atoi(exp)
	if err != nil || e < -4 || e >= 16 {
		return sci
	}
	s := positional()
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
