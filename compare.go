package pythonic

import (
	"cmp"
	"math"
	"strings"
)

// category orders kinds that do not compare by value.
func category(t Tag) int {
	switch {
	case t == TagNone:
		return 0
	case t.IsNumeric():
		return 1
	case t == TagString:
		return 2
	case t == TagList:
		return 3
	case t == TagSet:
		return 4
	case t == TagDict:
		return 5
	case t == TagOrderedSet:
		return 6
	case t == TagOrderedDict:
		return 7
	}
	return 8
}

// Compare is a total order over every Var. Numbers compare by exact value
// across kinds, with NaN equal to itself and below every other number.
// Otherwise None < numbers < str < list < set < dict < orderedset <
// ordereddict < graph, and containers compare element-wise.
func Compare(a, b Var) int {
	ca, cb := category(a.tag), category(b.tag)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	switch ca {
	case 0:
		return 0
	case 1:
		return compareNumbers(a, b)
	case 2:
		return strings.Compare(a.StringUnchecked(), b.StringUnchecked())
	case 3, 4, 6:
		return compareElems(a.ElemsUnchecked(), b.ElemsUnchecked())
	case 5, 7:
		return compareDicts(a.dictUnchecked(), b.dictUnchecked())
	}
	return cmp.Compare(a.GraphUnchecked().GraphID(), b.GraphUnchecked().GraphID())
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b Var) bool { return Compare(a, b) == 0 }

// Less reports whether a orders before b.
func Less(a, b Var) bool { return Compare(a, b) < 0 }

func compareNumbers(a, b Var) int {
	ai, bi := a.tag.IsInteger(), b.tag.IsInteger()
	switch {
	case ai && bi:
		return exactInt(a).cmp(exactInt(b))
	case !ai && !bi && a.tag != TagLongDouble && b.tag != TagLongDouble:
		return compareFloat64(floatValue(a), floatValue(b))
	}
	return numericExtended(a).Cmp(numericExtended(b))
}

func compareFloat64(x, y float64) int {
	xn, yn := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func compareElems(a, b []Var) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareDicts(a, b *dictPayload) int {
	for i := range min(len(a.keys), len(b.keys)) {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.vals[a.keys[i]], b.vals[b.keys[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.keys), len(b.keys))
}

// exactInt reads an integer kind (Bool included) as an exact value.
func exactInt(v Var) wide {
	if v.tag.IsSigned() {
		return wideOf(int64(v.n))
	}
	return wideOf(v.n)
}

// floatValue reads Float or Double as float64.
func floatValue(v Var) float64 {
	if v.tag == TagFloat {
		return float64(v.FloatUnchecked())
	}
	return v.DoubleUnchecked()
}

// numericExtended widens any numeric kind to Extended without rounding.
func numericExtended(v Var) Extended {
	switch {
	case v.tag.IsSigned():
		return ExtendedFromInt64(int64(v.n))
	case v.tag.IsInteger():
		return ExtendedFromUint64(v.n)
	case v.tag == TagLongDouble:
		return v.ExtendedUnchecked()
	}
	return ExtendedFromFloat64(floatValue(v))
}
