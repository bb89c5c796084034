package pythonic

import (
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// wide is an exact sign-magnitude integer with a 128-bit magnitude. Every
// integer operand of the engine fits in 64 bits, so sums, differences,
// products and quotients of two operands are always representable.
// Zero is never negative.
type wide struct {
	neg    bool
	hi, lo uint64
}

func wideOf[T constraints.Integer](x T) wide {
	if x < 0 {
		return wide{neg: true, lo: uint64(-int64(x))}
	}
	return wide{lo: uint64(x)}
}

func wideFromBig(x *big.Int) (wide, bool) {
	if x.BitLen() > 128 {
		return wide{}, false
	}
	var mag big.Int
	mag.Abs(x)
	lo := mag.Uint64()
	mag.Rsh(&mag, 64)
	return wide{neg: x.Sign() < 0, hi: mag.Uint64(), lo: lo}, true
}

func (w wide) isZero() bool { return w.hi == 0 && w.lo == 0 }

func (w wide) norm() wide {
	if w.isZero() {
		w.neg = false
	}
	return w
}

func (w wide) negate() wide {
	w.neg = !w.neg
	return w.norm()
}

func (w wide) cmpAbs(v wide) int {
	switch {
	case w.hi != v.hi:
		if w.hi < v.hi {
			return -1
		}
		return 1
	case w.lo != v.lo:
		if w.lo < v.lo {
			return -1
		}
		return 1
	}
	return 0
}

// cmp orders w and v by value.
func (w wide) cmp(v wide) int {
	switch {
	case w.neg && !v.neg:
		return -1
	case !w.neg && v.neg:
		return 1
	case w.neg:
		return -w.cmpAbs(v)
	}
	return w.cmpAbs(v)
}

func addMag(a, b wide) (hi, lo uint64, carry bool) {
	lo, c := bits.Add64(a.lo, b.lo, 0)
	hi, c = bits.Add64(a.hi, b.hi, c)
	return hi, lo, c != 0
}

// subMag returns |a| - |b| for |a| >= |b|.
func subMag(a, b wide) (hi, lo uint64) {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ = bits.Sub64(a.hi, b.hi, borrow)
	return hi, lo
}

// add returns w + v; ok is false when the magnitude leaves 128 bits.
func (w wide) add(v wide) (wide, bool) {
	if w.neg == v.neg {
		hi, lo, carry := addMag(w, v)
		return wide{neg: w.neg, hi: hi, lo: lo}.norm(), !carry
	}
	if w.cmpAbs(v) >= 0 {
		hi, lo := subMag(w, v)
		return wide{neg: w.neg, hi: hi, lo: lo}.norm(), true
	}
	hi, lo := subMag(v, w)
	return wide{neg: v.neg, hi: hi, lo: lo}.norm(), true
}

func (w wide) sub(v wide) (wide, bool) {
	return w.add(v.negate())
}

// mul returns w * v; ok is false when the magnitude leaves 128 bits.
func (w wide) mul(v wide) (wide, bool) {
	if w.hi != 0 && v.hi != 0 {
		return wide{}, false
	}
	neg := w.neg != v.neg
	if w.hi == 0 && v.hi == 0 {
		hi, lo := bits.Mul64(w.lo, v.lo)
		return wide{neg: neg, hi: hi, lo: lo}.norm(), true
	}
	// one side is a plain 64-bit magnitude
	long, short := w, v
	if w.hi == 0 {
		long, short = v, w
	}
	h1, lo := bits.Mul64(long.lo, short.lo)
	h2, l2 := bits.Mul64(long.hi, short.lo)
	if h2 != 0 {
		return wide{}, false
	}
	hi, carry := bits.Add64(h1, l2, 0)
	if carry != 0 {
		return wide{}, false
	}
	return wide{neg: neg, hi: hi, lo: lo}.norm(), true
}

// quoRem returns the truncated quotient and the remainder, which takes the
// sign of w. v must be non-zero and both magnitudes must fit in 64 bits.
func (w wide) quoRem(v wide) (q, r wide) {
	q = wide{neg: w.neg != v.neg, lo: w.lo / v.lo}.norm()
	r = wide{neg: w.neg, lo: w.lo % v.lo}.norm()
	return q, r
}

func (w wide) bigInt() *big.Int {
	x := new(big.Int).SetUint64(w.hi)
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(w.lo))
	if w.neg {
		x.Neg(x)
	}
	return x
}

func (w wide) extended() Extended {
	if w.hi == 0 {
		if w.neg {
			return ExtendedFromUint64(w.lo).Neg()
		}
		return ExtendedFromUint64(w.lo)
	}
	return ExtendedFromBigInt(w.bigInt())
}

// wrapTo truncates w to H with two's complement semantics.
func wrapTo[H constraints.Integer](w wide) H {
	if w.neg {
		return -H(w.lo)
	}
	return H(w.lo)
}

// fitsIn reports whether w is exactly representable in H.
func fitsIn[H constraints.Integer](w wide) bool {
	return w.hi == 0 && wideOf(wrapTo[H](w)) == w
}

// exactIntOp returns the exact integer kernel for op. Pow is handled
// separately because its result is not bounded by 128 bits.
func exactIntOp(op Op) func(x, y wide) (wide, error) {
	switch op {
	case OpAdd:
		return func(x, y wide) (wide, error) {
			r, _ := x.add(y)
			return r, nil
		}
	case OpSub:
		return func(x, y wide) (wide, error) {
			r, _ := x.sub(y)
			return r, nil
		}
	case OpMul:
		return func(x, y wide) (wide, error) {
			r, _ := x.mul(y)
			return r, nil
		}
	case OpDiv:
		return func(x, y wide) (wide, error) {
			if y.isZero() {
				return wide{}, ErrDivideByZero
			}
			q, _ := x.quoRem(y)
			return q, nil
		}
	case OpMod:
		return func(x, y wide) (wide, error) {
			if y.isZero() {
				return wide{}, ErrDivideByZero
			}
			_, r := x.quoRem(y)
			return r, nil
		}
	}
	panic("pythonic: no exact integer kernel for " + op.String())
}
