package calc

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"sync"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

type functionEntry struct {
	name    string
	minArgs int
	maxArgs int // -1 for variadic
	handler func(env *Env, args []pythonic.Var) (pythonic.Var, error)
}

func (f functionEntry) checkArity(n int) error {
	switch {
	case f.maxArgs < 0 && n < f.minArgs:
		return fmt.Errorf("%s() takes at least %d arguments, got %d", f.name, f.minArgs, n)
	case f.maxArgs >= 0 && (n < f.minArgs || n > f.maxArgs):
		if f.minArgs == f.maxArgs {
			return fmt.Errorf("%s() takes %d arguments, got %d", f.name, f.minArgs, n)
		}
		return fmt.Errorf("%s() takes %d to %d arguments, got %d", f.name, f.minArgs, f.maxArgs, n)
	}
	return nil
}

var (
	defaultFunctionTable     map[string]functionEntry
	defaultFunctionTableOnce sync.Once
)

func lookupFunction(name string) (functionEntry, bool) {
	defaultFunctionTableOnce.Do(func() {
		defaultFunctionTable = newFunctionTable()
	})
	entry, ok := defaultFunctionTable[name]
	return entry, ok
}

// FunctionNames lists the built-in functions in sorted order.
func FunctionNames() []string {
	lookupFunction("")
	names := make([]string, 0, len(defaultFunctionTable))
	for name := range defaultFunctionTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newFunctionTable() map[string]functionEntry {
	entries := []functionEntry{
		{name: "abs", minArgs: 1, maxArgs: 1, handler: fnAbs},
		{name: "sqrt", minArgs: 1, maxArgs: 1, handler: unaryMath("sqrt", func(x float64) (float64, bool) {
			return math.Sqrt(x), x >= 0 || math.IsNaN(x)
		})},
		{name: "sin", minArgs: 1, maxArgs: 1, handler: unaryMath("sin", total(math.Sin))},
		{name: "cos", minArgs: 1, maxArgs: 1, handler: unaryMath("cos", total(math.Cos))},
		{name: "tan", minArgs: 1, maxArgs: 1, handler: unaryMath("tan", total(math.Tan))},
		{name: "cot", minArgs: 1, maxArgs: 1, handler: unaryMath("cot", reciprocal(math.Tan))},
		{name: "sec", minArgs: 1, maxArgs: 1, handler: unaryMath("sec", reciprocal(math.Cos))},
		{name: "csc", minArgs: 1, maxArgs: 1, handler: unaryMath("csc", reciprocal(math.Sin))},
		{name: "asin", minArgs: 1, maxArgs: 1, handler: unaryMath("asin", unitDomain(math.Asin))},
		{name: "acos", minArgs: 1, maxArgs: 1, handler: unaryMath("acos", unitDomain(math.Acos))},
		{name: "atan", minArgs: 1, maxArgs: 1, handler: unaryMath("atan", total(math.Atan))},
		{name: "log", minArgs: 1, maxArgs: 1, handler: unaryMath("log", positiveDomain(math.Log))},
		{name: "log2", minArgs: 1, maxArgs: 1, handler: unaryMath("log2", positiveDomain(math.Log2))},
		{name: "log10", minArgs: 1, maxArgs: 1, handler: unaryMath("log10", positiveDomain(math.Log10))},
		{name: "exp", minArgs: 1, maxArgs: 1, handler: unaryMath("exp", total(math.Exp))},
		{name: "sinh", minArgs: 1, maxArgs: 1, handler: unaryMath("sinh", total(math.Sinh))},
		{name: "cosh", minArgs: 1, maxArgs: 1, handler: unaryMath("cosh", total(math.Cosh))},
		{name: "tanh", minArgs: 1, maxArgs: 1, handler: unaryMath("tanh", total(math.Tanh))},
		{name: "radians", minArgs: 1, maxArgs: 1, handler: unaryMath("radians", total(func(x float64) float64 { return x * math.Pi / 180 }))},
		{name: "degrees", minArgs: 1, maxArgs: 1, handler: unaryMath("degrees", total(func(x float64) float64 { return x * 180 / math.Pi }))},
		{name: "floor", minArgs: 1, maxArgs: 1, handler: roundTo("floor", big.ToNegativeInf)},
		{name: "ceil", minArgs: 1, maxArgs: 1, handler: roundTo("ceil", big.ToPositiveInf)},
		{name: "round", minArgs: 1, maxArgs: 1, handler: roundTo("round", big.ToNearestAway)},
		{name: "trunc", minArgs: 1, maxArgs: 1, handler: roundTo("trunc", big.ToZero)},
		{name: "fmod", minArgs: 2, maxArgs: 2, handler: binaryMath("fmod", func(x, y float64) (float64, bool) {
			return math.Mod(x, y), y != 0 && !math.IsInf(x, 0)
		})},
		{name: "hypot", minArgs: 2, maxArgs: 2, handler: binaryMath("hypot", func(x, y float64) (float64, bool) {
			return math.Hypot(x, y), true
		})},
		{name: "copysign", minArgs: 2, maxArgs: 2, handler: binaryMath("copysign", func(x, y float64) (float64, bool) {
			return math.Copysign(x, y), true
		})},
		{name: "nthroot", minArgs: 2, maxArgs: 2, handler: binaryMath("nthroot", nthRoot)},
		{name: "pow", minArgs: 2, maxArgs: 2, handler: fnPow},
		{name: "gcd", minArgs: 2, maxArgs: 2, handler: fnGCD},
		{name: "lcm", minArgs: 2, maxArgs: 2, handler: fnLCM},
		{name: "factorial", minArgs: 1, maxArgs: 1, handler: fnFactorial},
		{name: "min", minArgs: 1, maxArgs: -1, handler: extreme("min", pythonic.Min)},
		{name: "max", minArgs: 1, maxArgs: -1, handler: extreme("max", pythonic.Max)},
		{name: "sum", minArgs: 1, maxArgs: -1, handler: fnSum},
		{name: "len", minArgs: 1, maxArgs: 1, handler: fnLen},
		{name: "type", minArgs: 1, maxArgs: 1, handler: fnType},
		{name: "cast", minArgs: 2, maxArgs: 2, handler: fnCast},
	}
	table := make(map[string]functionEntry, len(entries))
	for _, e := range entries {
		table[e.name] = e
	}
	return table
}

func total(fn func(float64) float64) func(float64) (float64, bool) {
	return func(x float64) (float64, bool) { return fn(x), true }
}

func reciprocal(fn func(float64) float64) func(float64) (float64, bool) {
	return func(x float64) (float64, bool) {
		d := fn(x)
		return 1 / d, d != 0
	}
}

func unitDomain(fn func(float64) float64) func(float64) (float64, bool) {
	return func(x float64) (float64, bool) {
		return fn(x), math.IsNaN(x) || (x >= -1 && x <= 1)
	}
}

func positiveDomain(fn func(float64) float64) func(float64) (float64, bool) {
	return func(x float64) (float64, bool) {
		return fn(x), math.IsNaN(x) || x > 0
	}
}

// unaryMath wraps a float64 function. The result is a double whatever the
// argument kind.
func unaryMath(name string, fn func(float64) (float64, bool)) func(*Env, []pythonic.Var) (pythonic.Var, error) {
	return func(_ *Env, args []pythonic.Var) (pythonic.Var, error) {
		x, err := args[0].AsFloat64()
		if err != nil {
			return pythonic.Var{}, fmt.Errorf("%s(): %w", name, err)
		}
		out, ok := fn(x)
		if !ok {
			return pythonic.Var{}, fmt.Errorf("%s(%s): %w", name, args[0].Repr(), ErrDomain)
		}
		return pythonic.NewDouble(out), nil
	}
}

func binaryMath(name string, fn func(x, y float64) (float64, bool)) func(*Env, []pythonic.Var) (pythonic.Var, error) {
	return func(_ *Env, args []pythonic.Var) (pythonic.Var, error) {
		x, err := args[0].AsFloat64()
		if err != nil {
			return pythonic.Var{}, fmt.Errorf("%s(): %w", name, err)
		}
		y, err := args[1].AsFloat64()
		if err != nil {
			return pythonic.Var{}, fmt.Errorf("%s(): %w", name, err)
		}
		out, ok := fn(x, y)
		if !ok {
			return pythonic.Var{}, fmt.Errorf("%s(%s, %s): %w", name, args[0].Repr(), args[1].Repr(), ErrDomain)
		}
		return pythonic.NewDouble(out), nil
	}
}

// nthRoot is the real n-th root. Odd roots of negative numbers are
// negative; even ones are outside the domain.
func nthRoot(x, n float64) (float64, bool) {
	switch {
	case n == 0 || math.IsNaN(n):
		return math.NaN(), false
	case n == 2:
		return math.Sqrt(x), x >= 0 || math.IsNaN(x)
	case n == 3:
		return math.Cbrt(x), true
	case x >= 0 || math.IsNaN(x):
		return math.Pow(x, 1/n), true
	case n == math.Trunc(n) && math.Mod(n, 2) != 0:
		return -math.Pow(-x, 1/n), true
	}
	return math.NaN(), false
}

func fnAbs(env *Env, args []pythonic.Var) (pythonic.Var, error) {
	v := args[0]
	switch {
	case v.Tag().IsUnsigned():
		return v, nil
	case v.Tag().IsNumeric() && pythonic.Less(v, pythonic.NewInt(0)):
		return negate(v, env)
	case v.Tag().IsNumeric():
		return v, nil
	}
	return pythonic.Var{}, fmt.Errorf("abs(): bad operand %s", v.TypeName())
}

// roundTo rounds a floating argument to a whole number with mode and
// casts it to long under the session policy. Integers pass through
// unchanged. ToNearestAway rounds halves away from zero.
func roundTo(name string, mode big.RoundingMode) func(*Env, []pythonic.Var) (pythonic.Var, error) {
	half := pythonic.ExtendedFromFloat64(0.5)
	return func(env *Env, args []pythonic.Var) (pythonic.Var, error) {
		v := args[0]
		switch {
		case v.Tag().IsInteger():
			return v, nil
		case !v.Tag().IsFloat():
			return pythonic.Var{}, fmt.Errorf("%s(): bad operand %s", name, v.TypeName())
		}
		var ext pythonic.Extended
		if v.Tag() == pythonic.TagLongDouble {
			ext = v.ExtendedUnchecked()
		} else {
			f, _ := v.AsFloat64()
			ext = pythonic.ExtendedFromFloat64(f)
		}
		if !ext.IsFinite() {
			return pythonic.Var{}, fmt.Errorf("%s(%s): cannot convert to an integer: %w", name, v.Repr(), pythonic.ErrOverflow)
		}
		i, _ := ext.BigInt()
		if !ext.IsInt() {
			// BigInt truncates toward zero
			var away bool
			switch mode {
			case big.ToNegativeInf:
				away = ext.Sign() < 0
			case big.ToPositiveInf:
				away = ext.Sign() > 0
			case big.ToNearestAway:
				frac := ext.Sub(pythonic.ExtendedFromBigInt(i))
				if frac.Sign() < 0 {
					frac = frac.Neg()
				}
				away = frac.Cmp(half) >= 0
			}
			if away {
				i.Add(i, big.NewInt(int64(ext.Sign())))
			}
		}
		out, err := pythonic.Cast(pythonic.NewExtended(pythonic.ExtendedFromBigInt(i)), pythonic.TagLong, env.Policy)
		if err != nil {
			return pythonic.Var{}, fmt.Errorf("%s(%s): %w", name, v.Repr(), err)
		}
		return out, nil
	}
}

func fnPow(env *Env, args []pythonic.Var) (pythonic.Var, error) {
	return pythonic.Compute(pythonic.OpPow, args[0], args[1], env.Policy, env.SmallestFit)
}

// spread lets aggregate functions take either one list or several values.
func spread(args []pythonic.Var) []pythonic.Var {
	if len(args) == 1 {
		switch args[0].Tag() {
		case pythonic.TagList, pythonic.TagSet, pythonic.TagOrderedSet:
			return args[0].ElemsUnchecked()
		}
	}
	return args
}

func extreme(name string, pick func(...pythonic.Var) (pythonic.Var, bool)) func(*Env, []pythonic.Var) (pythonic.Var, error) {
	return func(_ *Env, args []pythonic.Var) (pythonic.Var, error) {
		v, ok := pick(spread(args)...)
		if !ok {
			return pythonic.Var{}, fmt.Errorf("%s() arg is an empty sequence", name)
		}
		return v, nil
	}
}

func fnSum(env *Env, args []pythonic.Var) (pythonic.Var, error) {
	return pythonic.Reduce(pythonic.OpAdd, spread(args), env.Policy, env.SmallestFit)
}

// magnitude is |v| for an integer cell. It cannot overflow: the most
// negative long long has magnitude 1<<63.
func magnitude(v pythonic.Var) uint64 {
	if v.Tag().IsSigned() {
		x, _ := v.AsInt64()
		if x < 0 {
			return uint64(-x)
		}
		return uint64(x)
	}
	return v.ULongUnchecked()
}

func integerArgs(name string, args []pythonic.Var) (pythonic.Tag, error) {
	for _, a := range args {
		if !a.Tag().IsInteger() {
			return 0, fmt.Errorf("%s(): %s is not an integer", name, a.TypeName())
		}
	}
	host, err := pythonic.PromoteTags(args[0].Tag(), args[len(args)-1].Tag())
	if err != nil {
		return 0, err
	}
	return pythonic.ArithmeticHost(host), nil
}

// gcd is the non-negative greatest common divisor in the promoted kind of
// its arguments.
func gcd(env *Env, name string, args []pythonic.Var) (pythonic.Var, pythonic.Tag, error) {
	host, err := integerArgs(name, args)
	if err != nil {
		return pythonic.Var{}, 0, err
	}
	a, b := magnitude(args[0]), magnitude(args[1])
	for b != 0 {
		a, b = b, a%b
	}
	g, err := pythonic.Cast(pythonic.NewULongLong(a), host, env.Policy)
	if err != nil {
		return pythonic.Var{}, 0, fmt.Errorf("%s(): %w", name, err)
	}
	return g, host, nil
}

func fnGCD(env *Env, args []pythonic.Var) (pythonic.Var, error) {
	g, _, err := gcd(env, "gcd", args)
	return g, err
}

// fnLCM computes |a| / gcd * |b| with the engine, so the result follows
// the session policy when it leaves the promoted kind.
func fnLCM(env *Env, args []pythonic.Var) (pythonic.Var, error) {
	g, host, err := gcd(env, "lcm", args)
	if err != nil {
		return pythonic.Var{}, err
	}
	if magnitude(g) == 0 {
		return pythonic.Cast(pythonic.NewInt(0), host, pythonic.Wrap)
	}
	a, err := fnAbs(env, args[0:1])
	if err != nil {
		return pythonic.Var{}, err
	}
	b, err := fnAbs(env, args[1:2])
	if err != nil {
		return pythonic.Var{}, err
	}
	q, err := pythonic.Compute(pythonic.OpDiv, a, g, env.Policy, env.SmallestFit)
	if err != nil {
		return pythonic.Var{}, err
	}
	return pythonic.Compute(pythonic.OpMul, q, b, env.Policy, env.SmallestFit)
}

// fnFactorial multiplies 2..n in n's kind with the engine, so the session
// policy decides what happens once the product leaves that kind.
func fnFactorial(env *Env, args []pythonic.Var) (pythonic.Var, error) {
	n := args[0]
	if _, err := integerArgs("factorial", args); err != nil {
		return pythonic.Var{}, err
	}
	if n.Tag().IsSigned() && pythonic.Less(n, pythonic.NewInt(0)) {
		return pythonic.Var{}, fmt.Errorf("factorial(%s): %w", n.Repr(), ErrDomain)
	}
	tag := pythonic.ArithmeticHost(n.Tag())
	acc, err := pythonic.Cast(pythonic.NewInt(1), tag, pythonic.Wrap)
	if err != nil {
		return pythonic.Var{}, err
	}
	last := magnitude(n)
	for i := uint64(2); i <= last; i++ {
		k, err := pythonic.Cast(pythonic.NewULongLong(i), tag, pythonic.Wrap)
		if err != nil {
			return pythonic.Var{}, err
		}
		if acc, err = pythonic.Compute(pythonic.OpMul, acc, k, env.Policy, env.SmallestFit); err != nil {
			return pythonic.Var{}, fmt.Errorf("factorial(%s): %w", n.Repr(), err)
		}
		// under Wrap the product reaches zero and stays there
		if !pythonic.Truthy(acc) {
			break
		}
	}
	return acc, nil
}

func fnLen(_ *Env, args []pythonic.Var) (pythonic.Var, error) {
	v := args[0]
	if v.Tag() != pythonic.TagString && !v.Tag().IsContainer() || v.Tag() == pythonic.TagGraph {
		return pythonic.Var{}, fmt.Errorf("object of type %s has no len()", v.TypeName())
	}
	n := v.Len()
	if n <= math.MaxInt32 {
		return pythonic.NewInt(int32(n)), nil
	}
	return pythonic.NewLong(int64(n)), nil
}

func fnType(_ *Env, args []pythonic.Var) (pythonic.Var, error) {
	return pythonic.NewString(args[0].TypeName()), nil
}

func fnCast(env *Env, args []pythonic.Var) (pythonic.Var, error) {
	name, err := args[1].AsString()
	if err != nil {
		return pythonic.Var{}, fmt.Errorf("cast(): kind must be a string: %w", err)
	}
	tag, ok := pythonic.ParseTag(name)
	if !ok {
		return pythonic.Var{}, fmt.Errorf("cast(): unknown kind %q", name)
	}
	return pythonic.Cast(args[0], tag, env.Policy)
}
