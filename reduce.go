package pythonic

import "fmt"

// Sum adds vals left to right under p. The sum of nothing is Int(0).
func Sum(vals []Var, p Policy) (Var, error) {
	return Reduce(OpAdd, vals, p, true)
}

// Product multiplies vals left to right under p. The product of nothing
// is Int(1).
func Product(vals []Var, p Policy) (Var, error) {
	return Reduce(OpMul, vals, p, true)
}

// Reduce folds vals left to right with op, passing smallestFit to every
// step the way Compute does. Only add and mul have a value for empty input.
func Reduce(op Op, vals []Var, p Policy, smallestFit bool) (Var, error) {
	if len(vals) == 0 {
		switch op {
		case OpAdd:
			return NewInt(0), nil
		case OpMul:
			return NewInt(1), nil
		}
		return Var{}, fmt.Errorf("%s of no values", op)
	}
	c := NewCachedOp(op, p, smallestFit)
	acc := vals[0]
	for _, v := range vals[1:] {
		var err error
		if acc, err = c.Apply(acc, v); err != nil {
			return Var{}, err
		}
	}
	return acc, nil
}

// Min returns the smallest of vals by Compare, or false for no values.
func Min(vals ...Var) (Var, bool) {
	if len(vals) == 0 {
		return Var{}, false
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if Less(v, best) {
			best = v
		}
	}
	return best, true
}

// Max returns the largest of vals by Compare, or false for no values.
func Max(vals ...Var) (Var, bool) {
	if len(vals) == 0 {
		return Var{}, false
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if Less(best, v) {
			best = v
		}
	}
	return best, true
}
