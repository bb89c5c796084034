package pythonic

import (
	"math"

	"golang.org/x/exp/constraints"
)

// sameTagFast runs add, sub and mul on two operands of the same native
// kind without consulting the promotion rules or the dispatch table. It
// reports false whenever the generic path has to decide, which includes
// every Throw overflow, so both paths always agree.
func sameTagFast(op Op, a, b Var, p Policy) (Var, bool) {
	if p == Promote || op > OpMul {
		return Var{}, false
	}
	switch a.tag {
	case TagInt:
		return fastInt(op, a.IntUnchecked(), b.IntUnchecked(), p, NewInt)
	case TagUInt:
		return fastInt(op, a.UIntUnchecked(), b.UIntUnchecked(), p, NewUInt)
	case TagLong:
		return fastInt(op, a.LongUnchecked(), b.LongUnchecked(), p, NewLong)
	case TagULong:
		return fastInt(op, a.ULongUnchecked(), b.ULongUnchecked(), p, NewULong)
	case TagLongLong:
		return fastInt(op, a.LongLongUnchecked(), b.LongLongUnchecked(), p, NewLongLong)
	case TagULongLong:
		return fastInt(op, a.ULongLongUnchecked(), b.ULongLongUnchecked(), p, NewULongLong)
	case TagFloat:
		return fastFloat(op, a.FloatUnchecked(), b.FloatUnchecked(), p, NewFloat)
	case TagDouble:
		return fastFloat(op, a.DoubleUnchecked(), b.DoubleUnchecked(), p, NewDouble)
	}
	return Var{}, false
}

func fastInt[H constraints.Integer](op Op, x, y H, p Policy, mk func(H) Var) (Var, bool) {
	signed := ^H(0) < 0
	var r H
	var overflow bool
	switch op {
	case OpAdd:
		r = x + y
		if signed {
			overflow = (x^r)&(y^r) < 0
		} else {
			overflow = r < x
		}
	case OpSub:
		r = x - y
		if signed {
			overflow = (x^y)&(x^r) < 0
		} else {
			overflow = x < y
		}
	case OpMul:
		r = x * y
		if x != 0 && y != 0 {
			overflow = r/y != x || (signed && y == ^H(0) && r == x)
		}
	}
	if overflow && p == Throw {
		return Var{}, false
	}
	return mk(r), true
}

func fastFloat[H constraints.Float](op Op, x, y H, p Policy, mk func(H) Var) (Var, bool) {
	var r H
	switch op {
	case OpAdd:
		r = x + y
	case OpSub:
		r = x - y
	case OpMul:
		r = x * y
	}
	if p == Throw && math.IsInf(float64(r), 0) {
		return Var{}, false
	}
	return mk(r), true
}
