package pythonic

import (
	"math"

	"golang.org/x/exp/constraints"
)

// BinaryFunc is an arithmetic kernel specialised for one ordered pair of
// operand tags. It branches only on the policy.
type BinaryFunc func(a, b Var, p Policy, smallestFit bool) (Var, error)

type number interface {
	constraints.Integer | constraints.Float
}

// pairKey carries everything a kernel knows about its pairing, resolved
// once when the table is built.
type pairKey struct {
	op          Op
	left, right Tag
	host        Tag
	class       Classification
	floor       int // floor used when smallestFit is false
}

func newPairKey(op Op, left, right Tag) pairKey {
	host, err := PromoteTags(left, right)
	if err != nil {
		panic(err)
	}
	return pairKey{
		op:    op,
		left:  left,
		right: right,
		host:  ArithmeticHost(host),
		class: Classify(left, right),
		floor: FloorFor(left, right, false),
	}
}

func (k pairKey) fail(err error) error {
	return &OpError{Op: k.op, Left: k.left, Right: k.right, Tag: k.host, Err: err}
}

func (k pairKey) overflow() error { return k.fail(ErrOverflow) }

func (k pairKey) fit(r Raw, class Classification, smallestFit, forceSigned bool) (Var, error) {
	floor := RankUInt
	if !smallestFit {
		floor = k.floor
	}
	v, err := Fit(r, class, floor, forceSigned)
	if err != nil {
		return Var{}, &OpError{Op: k.op, Left: k.left, Right: k.right, Tag: TagLongDouble, Err: err}
	}
	return v, nil
}

// intPair builds add, sub, mul, div and mod for a pairing hosted by an
// integer kind H. Throw and Promote work on the exact result; Wrap uses
// H's native arithmetic.
func intPair[A, B, H constraints.Integer](k pairKey, la func(Var) A, lb func(Var) B, mk func(H) Var) BinaryFunc {
	wrap := wrapIntOp[H](k.op)
	exact := exactIntOp(k.op)
	return func(a, b Var, p Policy, smallestFit bool) (Var, error) {
		x, y := la(a), lb(b)
		switch p {
		case Wrap:
			r, err := wrap(H(x), H(y))
			if err != nil {
				return Var{}, k.fail(err)
			}
			return mk(r), nil
		case Promote:
			w, err := exact(wideOf(x), wideOf(y))
			if err != nil {
				return Var{}, k.fail(err)
			}
			return k.fit(rawWide(w), k.class, smallestFit, k.op == OpSub && w.neg)
		}
		w, err := exact(wideOf(x), wideOf(y))
		if err != nil {
			return Var{}, k.fail(err)
		}
		if !fitsIn[H](w) {
			return Var{}, k.overflow()
		}
		return mk(wrapTo[H](w)), nil
	}
}

func wrapIntOp[H constraints.Integer](op Op) func(x, y H) (H, error) {
	switch op {
	case OpAdd:
		return func(x, y H) (H, error) { return x + y, nil }
	case OpSub:
		return func(x, y H) (H, error) { return x - y, nil }
	case OpMul:
		return func(x, y H) (H, error) { return x * y, nil }
	case OpDiv:
		return func(x, y H) (H, error) {
			if y == 0 {
				return 0, ErrDivideByZero
			}
			return x / y, nil
		}
	case OpMod:
		return func(x, y H) (H, error) {
			if y == 0 {
				return 0, ErrDivideByZero
			}
			return x % y, nil
		}
	}
	panic("pythonic: no wrapping kernel for " + op.String())
}

// floatPair builds every operation for a pairing hosted by float32 or
// float64. Throw fails when finite operands produce an infinity; Promote
// computes in extended precision and searches the float ladder.
func floatPair[A, B number, H constraints.Float](k pairKey, la func(Var) A, lb func(Var) B, ea, eb func(Var) Extended, mk func(H) Var) BinaryFunc {
	native := floatOp[H](k.op)
	ext := extendedOp(k.op)
	return func(a, b Var, p Policy, smallestFit bool) (Var, error) {
		if p == Promote {
			r, err := ext(ea(a), eb(b))
			if err != nil {
				return Var{}, k.fail(err)
			}
			return k.fit(RawExtended(r), HasFloat, smallestFit, false)
		}
		x, y := H(la(a)), H(lb(b))
		r, err := native(x, y)
		if err != nil {
			return Var{}, k.fail(err)
		}
		if p == Throw && isInf(r) && !isInf(x) && !isInf(y) && !isNaN(x) && !isNaN(y) {
			return Var{}, k.overflow()
		}
		return mk(r), nil
	}
}

func isInf[H constraints.Float](x H) bool { return math.IsInf(float64(x), 0) }
func isNaN[H constraints.Float](x H) bool { return math.IsNaN(float64(x)) }

func floatOp[H constraints.Float](op Op) func(x, y H) (H, error) {
	switch op {
	case OpAdd:
		return func(x, y H) (H, error) { return x + y, nil }
	case OpSub:
		return func(x, y H) (H, error) { return x - y, nil }
	case OpMul:
		return func(x, y H) (H, error) { return x * y, nil }
	case OpDiv:
		return func(x, y H) (H, error) {
			if y == 0 {
				return 0, ErrDivideByZero
			}
			return x / y, nil
		}
	case OpMod:
		return func(x, y H) (H, error) {
			if y == 0 {
				return 0, ErrDivideByZero
			}
			return H(math.Mod(float64(x), float64(y))), nil
		}
	case OpPow:
		return func(x, y H) (H, error) { return H(math.Pow(float64(x), float64(y))), nil }
	}
	panic("pythonic: no float kernel for " + op.String())
}

// extendedPair builds every operation for a pairing hosted by LongDouble.
func extendedPair(k pairKey, ea, eb func(Var) Extended) BinaryFunc {
	ext := extendedOp(k.op)
	return func(a, b Var, p Policy, smallestFit bool) (Var, error) {
		x, y := ea(a), eb(b)
		r, err := ext(x, y)
		if err != nil {
			return Var{}, k.fail(err)
		}
		switch p {
		case Promote:
			return k.fit(RawExtended(r), HasFloat, smallestFit, false)
		case Throw:
			if r.IsInf() && x.IsFinite() && y.IsFinite() {
				return Var{}, k.overflow()
			}
		}
		return NewExtended(r), nil
	}
}

func extendedOp(op Op) func(x, y Extended) (Extended, error) {
	switch op {
	case OpAdd:
		return func(x, y Extended) (Extended, error) { return x.Add(y), nil }
	case OpSub:
		return func(x, y Extended) (Extended, error) { return x.Sub(y), nil }
	case OpMul:
		return func(x, y Extended) (Extended, error) { return x.Mul(y), nil }
	case OpDiv:
		return func(x, y Extended) (Extended, error) {
			if y.isZero() {
				return Extended{}, ErrDivideByZero
			}
			return x.Quo(y), nil
		}
	case OpMod:
		return func(x, y Extended) (Extended, error) {
			if y.isZero() {
				return Extended{}, ErrDivideByZero
			}
			return x.Rem(y), nil
		}
	case OpPow:
		return func(x, y Extended) (Extended, error) { return powExtended(x, y), nil }
	}
	panic("pythonic: no extended kernel for " + op.String())
}

// Operand loaders that widen a payload to Extended, one per payload family.

func extFromSigned(v Var) Extended   { return ExtendedFromInt64(v.signedUnchecked()) }
func extFromUnsigned(v Var) Extended { return ExtendedFromUint64(v.unsignedUnchecked()) }
func extFromFloat(v Var) Extended    { return ExtendedFromFloat64(float64(v.FloatUnchecked())) }
func extFromDouble(v Var) Extended   { return ExtendedFromFloat64(v.DoubleUnchecked()) }
func extFromExtended(v Var) Extended { return v.ExtendedUnchecked() }

// registerIntHost installs all six kernels of an integer-hosted pairing.
func registerIntHost[A, B, H constraints.Integer](t *dispatchTable, left, right Tag, la func(Var) A, lb func(Var) B, mk func(H) Var) {
	for op := OpAdd; op < OpPow; op++ {
		t[op][left][right] = intPair(newPairKey(op, left, right), la, lb, mk)
	}
	t[OpPow][left][right] = intPowPair(newPairKey(OpPow, left, right), la, lb, mk)
}

// registerFloatHost installs all six kernels of a float32 or float64
// hosted pairing.
func registerFloatHost[A, B number, H constraints.Float](t *dispatchTable, left, right Tag, la func(Var) A, lb func(Var) B, ea, eb func(Var) Extended, mk func(H) Var) {
	for op := OpAdd; op <= OpPow; op++ {
		t[op][left][right] = floatPair(newPairKey(op, left, right), la, lb, ea, eb, mk)
	}
}

// registerExtendedHost installs all six kernels of a LongDouble-hosted
// pairing.
func registerExtendedHost(t *dispatchTable, left, right Tag, ea, eb func(Var) Extended) {
	for op := OpAdd; op <= OpPow; op++ {
		t[op][left][right] = extendedPair(newPairKey(op, left, right), ea, eb)
	}
}
