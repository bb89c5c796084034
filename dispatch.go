package pythonic

import "sync"

//go:generate go run ./cmd/pairgen -o pairs_gen.go

// dispatchTable maps an op and an ordered pair of operand tags to the
// kernel for that pairing.
type dispatchTable [arithOps][tagCount][tagCount]BinaryFunc

var (
	opTable     *dispatchTable
	opTableOnce sync.Once
)

func table() *dispatchTable {
	opTableOnce.Do(func() {
		t := new(dispatchTable)
		registerNumericPairs(t)
		registerSequencePairs(t)
		for op := range t {
			for l := range t[op] {
				for r := range t[op][l] {
					if t[op][l][r] == nil {
						t[op][l][r] = mismatchKernel(Op(op), Tag(l), Tag(r))
					}
				}
			}
		}
		opTable = t
	})
	return opTable
}

// Lookup returns the kernel for op on the given operand tags. Callers that
// run the same pairing in a loop can hoist the lookup.
func Lookup(op Op, a, b Tag) BinaryFunc {
	if int(op) >= arithOps || a >= tagCount || b >= tagCount {
		return mismatchKernel(op, a, b)
	}
	return table()[op][a][b]
}

// Compute runs op on a and b under p. With smallestFit a promoted result
// may be narrower than the operands; without it the result is never
// narrower than the wider operand.
func Compute(op Op, a, b Var, p Policy, smallestFit bool) (Var, error) {
	if a.tag == b.tag {
		if v, ok := sameTagFast(op, a, b, p); ok {
			return v, nil
		}
	}
	return Lookup(op, a.tag, b.tag)(a, b, p, smallestFit)
}

// Add returns a + b. String operands concatenate and lists join.
func Add(a, b Var, p Policy) (Var, error) { return Compute(OpAdd, a, b, p, true) }

// Sub returns a - b.
func Sub(a, b Var, p Policy) (Var, error) { return Compute(OpSub, a, b, p, true) }

// Mul returns a * b. A string or list times an integer repeats it.
func Mul(a, b Var, p Policy) (Var, error) { return Compute(OpMul, a, b, p, true) }

// Div returns a / b. Integer division truncates toward zero.
func Div(a, b Var, p Policy) (Var, error) { return Compute(OpDiv, a, b, p, true) }

// Mod returns a % b with the sign of a.
func Mod(a, b Var, p Policy) (Var, error) { return Compute(OpMod, a, b, p, true) }

// Pow returns a ** b. A negative integer exponent always gives a float.
func Pow(a, b Var, p Policy) (Var, error) { return Compute(OpPow, a, b, p, true) }

func mismatchKernel(op Op, a, b Tag) BinaryFunc {
	err := mismatch(op, a, b)
	return func(Var, Var, Policy, bool) (Var, error) { return Var{}, err }
}

func registerSequencePairs(t *dispatchTable) {
	t[OpAdd][TagString][TagString] = func(a, b Var, _ Policy, _ bool) (Var, error) {
		return NewString(a.StringUnchecked() + b.StringUnchecked()), nil
	}
	t[OpAdd][TagList][TagList] = func(a, b Var, _ Policy, _ bool) (Var, error) {
		return concatList(a.ElemsUnchecked(), b.ElemsUnchecked()), nil
	}
	for _, n := range NumericTags() {
		t[OpAdd][TagString][n] = func(a, b Var, _ Policy, _ bool) (Var, error) {
			return NewString(a.StringUnchecked() + b.String()), nil
		}
		t[OpAdd][n][TagString] = func(a, b Var, _ Policy, _ bool) (Var, error) {
			return NewString(a.String() + b.StringUnchecked()), nil
		}
		if !n.IsInteger() {
			continue
		}
		t[OpMul][TagString][n] = func(a, b Var, _ Policy, _ bool) (Var, error) {
			return repeatString(a.StringUnchecked(), repeatCount(b))
		}
		t[OpMul][n][TagString] = func(a, b Var, _ Policy, _ bool) (Var, error) {
			return repeatString(b.StringUnchecked(), repeatCount(a))
		}
		t[OpMul][TagList][n] = func(a, b Var, _ Policy, _ bool) (Var, error) {
			return repeatList(a.ElemsUnchecked(), repeatCount(b))
		}
		t[OpMul][n][TagList] = func(a, b Var, _ Policy, _ bool) (Var, error) {
			return repeatList(b.ElemsUnchecked(), repeatCount(a))
		}
	}
}

// repeatCount reads an integer repetition count; unsigned counts beyond
// int64 saturate.
func repeatCount(v Var) int64 {
	if v.tag.IsUnsigned() || v.tag == TagBool {
		if v.n > 1<<62 {
			return 1 << 62
		}
		return int64(v.n)
	}
	return int64(v.n)
}
