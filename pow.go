package pythonic

import (
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// intPowPair builds pow for an integer-hosted pairing. A negative exponent
// leaves the integer domain and yields a Double (or, under Promote, the
// smallest float that holds the result).
func intPowPair[A, B, H constraints.Integer](k pairKey, la func(Var) A, lb func(Var) B, mk func(H) Var) BinaryFunc {
	return func(a, b Var, p Policy, smallestFit bool) (Var, error) {
		x, y := la(a), lb(b)
		if y < 0 {
			return k.negativePow(wideOf(x), wideOf(y), p, smallestFit)
		}
		e := uint64(y)
		switch p {
		case Wrap:
			return mk(wrapPow(H(x), e)), nil
		case Promote:
			return k.promotePow(wideOf(x), e, smallestFit)
		}
		w, ok := checkedPow(wideOf(x), e, fitsIn[H])
		if !ok {
			return Var{}, k.overflow()
		}
		return mk(wrapTo[H](w)), nil
	}
}

func wrapPow[H constraints.Integer](base H, e uint64) H {
	r := H(1)
	for e > 0 {
		if e&1 == 1 {
			r *= base
		}
		e >>= 1
		if e > 0 {
			base *= base
		}
	}
	return r
}

// checkedPow is square-and-multiply on exact values; every partial product
// must satisfy fits, which gives pow the same overflow boundary as mul.
// The base is only squared when a higher exponent bit remains, so a
// squared base never exceeds the final magnitude.
func checkedPow(base wide, e uint64, fits func(wide) bool) (wide, bool) {
	r := wideOf(1)
	for e > 0 {
		var ok bool
		if e&1 == 1 {
			if r, ok = r.mul(base); !ok || !fits(r) {
				return wide{}, false
			}
		}
		e >>= 1
		if e > 0 {
			if base, ok = base.mul(base); !ok || !fits(base) {
				return wide{}, false
			}
		}
	}
	return r, true
}

// maxPowBits bounds exact integer powers; anything larger is beyond the
// long double range.
const maxPowBits = extendedMaxExp + 64

func (k pairKey) promotePow(base wide, e uint64, smallestFit bool) (Var, error) {
	if base.hi == 0 && base.lo <= 1 {
		r := base
		if e == 0 {
			r = wideOf(1)
		} else if base.neg && e&1 == 0 {
			r = base.negate()
		}
		return k.fit(rawWide(r), k.class, smallestFit, false)
	}
	bitsPerFactor := uint64(64 - bits.LeadingZeros64(base.lo) - 1)
	if bitsPerFactor > 0 && e > maxPowBits/bitsPerFactor {
		return Var{}, &OpError{Op: k.op, Left: k.left, Right: k.right, Tag: TagLongDouble, Err: ErrOverflow}
	}
	r := new(big.Int).Exp(base.bigInt(), new(big.Int).SetUint64(e), nil)
	return k.fit(RawBigInt(r), k.class, smallestFit, false)
}

func (k pairKey) negativePow(x, y wide, p Policy, smallestFit bool) (Var, error) {
	if p == Promote {
		r := powExtended(x.extended(), y.extended())
		return k.fit(RawExtended(r), HasFloat, smallestFit, false)
	}
	xf, yf := x.extended().Float64(), y.extended().Float64()
	r := math.Pow(xf, yf)
	if p == Throw && math.IsInf(r, 0) {
		return Var{}, &OpError{Op: k.op, Left: k.left, Right: k.right, Tag: TagDouble, Err: ErrOverflow}
	}
	return NewDouble(r), nil
}

// powExtended raises x to y. Whole exponents that fit in int64 use
// square-and-multiply at extended precision; other exponents go through
// math.Pow at float64 precision.
func powExtended(x, y Extended) Extended {
	if y.isZero() {
		return ExtendedFromInt64(1)
	}
	if x.IsNaN() || y.IsNaN() {
		return ExtendedNaN()
	}
	if y.IsInt() {
		if e, ok := y.BigInt(); ok && e.IsInt64() && x.IsFinite() {
			n := e.Int64()
			neg := n < 0
			if neg {
				n = -n
			}
			if n > 0 {
				r, base := ExtendedFromInt64(1), x
				for u := uint64(n); u > 0; u >>= 1 {
					if u&1 == 1 {
						r = r.Mul(base)
					}
					if u > 1 {
						base = base.Mul(base)
					}
				}
				if neg {
					return ExtendedFromInt64(1).Quo(r)
				}
				return r
			}
		}
	}
	return ExtendedFromFloat64(math.Pow(x.Float64(), y.Float64()))
}
