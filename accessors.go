package pythonic

import "math"

// Unchecked accessors read the payload without looking at the tag. The
// caller must already know the tag; any other use returns garbage.

func (v Var) BoolUnchecked() bool { return v.n != 0 }
func (v Var) IntUnchecked() int32 { return int32(v.n) }
func (v Var) UIntUnchecked() uint32 { return uint32(v.n) }
func (v Var) LongUnchecked() int64 { return int64(v.n) }
func (v Var) ULongUnchecked() uint64 { return v.n }
func (v Var) LongLongUnchecked() int64 { return int64(v.n) }
func (v Var) ULongLongUnchecked() uint64 { return v.n }
func (v Var) FloatUnchecked() float32 { return math.Float32frombits(uint32(v.n)) }
func (v Var) DoubleUnchecked() float64 { return math.Float64frombits(v.n) }
func (v Var) ExtendedUnchecked() Extended { return v.ref.(Extended) }
func (v Var) StringUnchecked() string { return v.ref.(string) }
func (v Var) ElemsUnchecked() []Var { return v.ref.([]Var) }
func (v Var) GraphUnchecked() GraphRef { return v.ref.(GraphRef) }
func (v Var) dictUnchecked() *dictPayload { return v.ref.(*dictPayload) }
func (v Var) boolBit() uint8 { return uint8(v.n) }
func (v Var) signedUnchecked() int64 { return int64(v.n) }
func (v Var) unsignedUnchecked() uint64 { return v.n }

// Checked accessors fail with ErrTypeMismatch unless the tag matches.

func (v Var) AsBool() (bool, error) {
	if v.tag != TagBool {
		return false, accessMismatch(v.tag, TagBool)
	}
	return v.BoolUnchecked(), nil
}

func (v Var) AsInt() (int32, error) {
	if v.tag != TagInt {
		return 0, accessMismatch(v.tag, TagInt)
	}
	return v.IntUnchecked(), nil
}

func (v Var) AsUInt() (uint32, error) {
	if v.tag != TagUInt {
		return 0, accessMismatch(v.tag, TagUInt)
	}
	return v.UIntUnchecked(), nil
}

func (v Var) AsLong() (int64, error) {
	if v.tag != TagLong {
		return 0, accessMismatch(v.tag, TagLong)
	}
	return v.LongUnchecked(), nil
}

func (v Var) AsULong() (uint64, error) {
	if v.tag != TagULong {
		return 0, accessMismatch(v.tag, TagULong)
	}
	return v.ULongUnchecked(), nil
}

func (v Var) AsLongLong() (int64, error) {
	if v.tag != TagLongLong {
		return 0, accessMismatch(v.tag, TagLongLong)
	}
	return v.LongLongUnchecked(), nil
}

func (v Var) AsULongLong() (uint64, error) {
	if v.tag != TagULongLong {
		return 0, accessMismatch(v.tag, TagULongLong)
	}
	return v.ULongLongUnchecked(), nil
}

func (v Var) AsFloat() (float32, error) {
	if v.tag != TagFloat {
		return 0, accessMismatch(v.tag, TagFloat)
	}
	return v.FloatUnchecked(), nil
}

func (v Var) AsDouble() (float64, error) {
	if v.tag != TagDouble {
		return 0, accessMismatch(v.tag, TagDouble)
	}
	return v.DoubleUnchecked(), nil
}

func (v Var) AsExtended() (Extended, error) {
	if v.tag != TagLongDouble {
		return Extended{}, accessMismatch(v.tag, TagLongDouble)
	}
	return v.ExtendedUnchecked(), nil
}

func (v Var) AsString() (string, error) {
	if v.tag != TagString {
		return "", accessMismatch(v.tag, TagString)
	}
	return v.StringUnchecked(), nil
}

// AsList returns the elements of a List. The slice is shared with v.
func (v Var) AsList() ([]Var, error) {
	if v.tag != TagList {
		return nil, accessMismatch(v.tag, TagList)
	}
	return v.ElemsUnchecked(), nil
}

// AsSet returns the members of a Set or OrderedSet in stored order.
func (v Var) AsSet() ([]Var, error) {
	if v.tag != TagSet && v.tag != TagOrderedSet {
		return nil, accessMismatch(v.tag, TagSet)
	}
	return v.ElemsUnchecked(), nil
}

// AsDict returns the entries of a Dict or OrderedDict in stored order.
func (v Var) AsDict() ([]DictEntry, error) {
	if v.tag != TagDict && v.tag != TagOrderedDict {
		return nil, accessMismatch(v.tag, TagDict)
	}
	return v.dictUnchecked().entries(), nil
}

// Get looks up key in a Dict or OrderedDict.
func (v Var) Get(key string) (Var, bool) {
	if v.tag != TagDict && v.tag != TagOrderedDict {
		return Var{}, false
	}
	val, ok := v.dictUnchecked().vals[key]
	return val, ok
}

func (v Var) AsGraph() (GraphRef, error) {
	if v.tag != TagGraph {
		return nil, accessMismatch(v.tag, TagGraph)
	}
	return v.GraphUnchecked(), nil
}

// AsFloat64 converts any numeric kind to the nearest float64.
func (v Var) AsFloat64() (float64, error) {
	switch {
	case v.tag == TagBool || v.tag.IsUnsigned():
		return float64(v.n), nil
	case v.tag.IsSigned():
		return float64(int64(v.n)), nil
	case v.tag == TagFloat:
		return float64(v.FloatUnchecked()), nil
	case v.tag == TagDouble:
		return v.DoubleUnchecked(), nil
	case v.tag == TagLongDouble:
		return v.ExtendedUnchecked().Float64(), nil
	}
	return 0, accessMismatch(v.tag, TagDouble)
}

// AsInt64 returns the value of an integer kind (Bool included) when it
// fits in int64.
func (v Var) AsInt64() (int64, error) {
	switch {
	case v.tag == TagBool || v.tag.IsSigned():
		return int64(v.n), nil
	case v.tag.IsUnsigned():
		if v.n > math.MaxInt64 {
			return 0, &OpError{Op: OpAs, Left: v.tag, Tag: TagLong, Err: ErrOverflow}
		}
		return int64(v.n), nil
	}
	return 0, accessMismatch(v.tag, TagLong)
}
