package pythonic

import (
	"math"
	"math/big"
	"strings"
)

// Truthy reports Python truthiness: None, False, zero, empty strings and
// empty containers are false. NaN is true.
func Truthy(v Var) bool {
	switch {
	case v.tag == TagNone:
		return false
	case v.tag == TagGraph:
		return true
	case v.tag == TagLongDouble:
		x := v.ExtendedUnchecked()
		return x.IsNaN() || x.Sign() != 0
	case v.tag == TagFloat:
		return v.FloatUnchecked() != 0 || isNaN(v.FloatUnchecked())
	case v.tag == TagDouble:
		return v.DoubleUnchecked() != 0 || isNaN(v.DoubleUnchecked())
	case v.tag.IsInteger():
		return v.n != 0
	}
	return v.Len() > 0
}

// Cast converts v to the kind to.
//
// Floats convert to integers by truncation. Under Wrap integers keep their
// low bits and floats round to the target. Throw fails with ErrOverflow when
// the value leaves the target range. Promote never loses a value: when the
// target cannot hold it the result is the smallest wider kind that can.
// Strings parse as numbers; any value converts to str and bool.
func Cast(v Var, to Tag, p Policy) (Var, error) {
	switch {
	case to == v.tag:
		return v, nil
	case to == TagString:
		return NewString(v.String()), nil
	case to == TagBool:
		return NewBool(Truthy(v)), nil
	case !to.IsNumeric():
		return Var{}, castError(v.tag, to, ErrTypeMismatch)
	}
	var r Raw
	switch {
	case v.tag.IsInteger():
		r = rawWide(exactInt(v))
	case v.tag.IsFloat():
		r = RawExtended(numericExtended(v))
	case v.tag == TagString:
		var ok bool
		if r, ok = parseNumber(v.StringUnchecked()); !ok {
			return Var{}, castError(v.tag, to, ErrTypeMismatch)
		}
	default:
		return Var{}, castError(v.tag, to, ErrTypeMismatch)
	}
	if to.IsInteger() {
		return castInt(r, v.tag, to, p)
	}
	return castFloat(r, v.tag, to, p)
}

func castError(from, to Tag, err error) error {
	return &OpError{Op: OpCast, Left: from, Tag: to, Err: err}
}

func parseNumber(s string) (Raw, bool) {
	s = strings.TrimSpace(s)
	if i, ok := new(big.Int).SetString(s, 0); ok {
		return RawBigInt(i), true
	}
	x, err := ParseExtended(s)
	if err != nil {
		return Raw{}, false
	}
	return RawExtended(x), true
}

func intCandidateFor(t Tag) intCandidate {
	for _, c := range signedLadder {
		if c.tag == t {
			return c
		}
	}
	for _, c := range unsignedLadder {
		if c.tag == t {
			return c
		}
	}
	panic("pythonic: no integer candidate for " + t.String())
}

func floatCandidateFor(t Tag) floatCandidate {
	for _, c := range floatLadder {
		if c.tag == t {
			return c
		}
	}
	panic("pythonic: no float candidate for " + t.String())
}

func castInt(r Raw, from, to Tag, p Policy) (Var, error) {
	if r.isFloat {
		if !r.f.IsFinite() {
			return Var{}, castError(from, to, ErrOverflow)
		}
		i, _ := r.f.BigInt()
		r = RawBigInt(i)
	}
	c := intCandidateFor(to)
	w, exact := r.integer()
	if !exact {
		w = lowBits(r.b)
	}
	switch {
	case p == Wrap:
		return c.build(w), nil
	case exact && c.accept(w):
		return c.build(w), nil
	case p == Throw:
		return Var{}, castError(from, to, ErrOverflow)
	}
	class := Others
	if to.IsUnsigned() && !w.neg {
		class = BothUnsigned
	}
	v, err := Fit(r, class, rankOf(to), false)
	if err != nil {
		return Var{}, castError(from, to, ErrOverflow)
	}
	return v, nil
}

// lowBits keeps the sign and the low 64 bits of the magnitude of x.
func lowBits(x *big.Int) wide {
	var mag big.Int
	mag.Abs(x)
	mag.And(&mag, new(big.Int).SetUint64(math.MaxUint64))
	return wide{neg: x.Sign() < 0, lo: mag.Uint64()}.norm()
}

func castFloat(r Raw, from, to Tag, p Policy) (Var, error) {
	x := r.extended()
	c := floatCandidateFor(to)
	if p == Wrap || !x.IsFinite() || c.accept(x) {
		return c.build(x), nil
	}
	if p == Throw {
		out := c.build(x)
		if f, _ := out.AsFloat64(); isInf(f) {
			return Var{}, castError(from, to, ErrOverflow)
		}
		return out, nil
	}
	v, err := Fit(RawExtended(x), HasFloat, rankOf(to), false)
	if err != nil {
		return Var{}, castError(from, to, ErrOverflow)
	}
	return v, nil
}
