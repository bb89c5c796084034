package calc

import (
	"errors"
	"math"
	"testing"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

func eval(t *testing.T, env *Env, src string) pythonic.Var {
	t.Helper()
	v, err := env.Eval(src)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return v
}

func TestEvalExpressions(t *testing.T) {
	cases := []struct {
		src  string
		tag  pythonic.Tag
		repr string
	}{
		{"1 + 2", pythonic.TagInt, "3"},
		{"2 ** 10", pythonic.TagInt, "1024"},
		{"2 ^ 10", pythonic.TagInt, "1024"},
		{"-2 ** 2", pythonic.TagInt, "-4"},
		{"2 ** 3 ** 2", pythonic.TagInt, "512"},
		{"2 ** -1", pythonic.TagDouble, "0.5"},
		{"1 + 2 * 3", pythonic.TagInt, "7"},
		{"(1 + 2) * 3", pythonic.TagInt, "9"},
		{"7 / 2", pythonic.TagInt, "3"},
		{"-7 / 2", pythonic.TagInt, "-3"},
		{"7 % -3", pythonic.TagInt, "1"},
		{"-7 % 3", pythonic.TagInt, "-1"},
		{"7.0 / 2", pythonic.TagDouble, "3.5"},
		{"1e3", pythonic.TagDouble, "1000.0"},
		{"2147483648", pythonic.TagLong, "2147483648"},
		{"18446744073709551615", pythonic.TagULong, "18446744073709551615"},
		{"5u", pythonic.TagUInt, "5"},
		{"5ul", pythonic.TagULong, "5"},
		{"5ULL", pythonic.TagULongLong, "5"},
		{"5l", pythonic.TagLong, "5"},
		{"5ll", pythonic.TagLongLong, "5"},
		{"300i", pythonic.TagInt, "300"},
		{"1.5f", pythonic.TagFloat, "1.5"},
		{"2d", pythonic.TagDouble, "2.0"},
		{"1.5ld", pythonic.TagLongDouble, "1.5"},
		{"true + true", pythonic.TagInt, "2"},
		{"none", pythonic.TagNone, "None"},
		{"'ab' + \"c\"", pythonic.TagString, "'abc'"},
		{"'ab' * 3", pythonic.TagString, "'ababab'"},
		{"'tab\\t'", pythonic.TagString, "'tab\\t'"},
		{"[1, 2] + [3]", pythonic.TagList, "[1, 2, 3]"},
		{"[]", pythonic.TagList, "[]"},
		{"1 < 2.5", pythonic.TagBool, "True"},
		{"1 == 1.0", pythonic.TagBool, "True"},
		{"'a' != 'a'", pythonic.TagBool, "False"},
		{"3 >= 4", pythonic.TagBool, "False"},
		{"1 + 1 == 2", pythonic.TagBool, "True"},
		{"2(3 + 1)", pythonic.TagInt, "8"},
		{"(1 + 1)(2)", pythonic.TagInt, "4"},
		{"+5", pythonic.TagInt, "5"},
	}
	env := NewEnv()
	for _, tc := range cases {
		got := eval(t, env, tc.src)
		if got.Tag() != tc.tag || got.Repr() != tc.repr {
			t.Fatalf("%s = %s %s, want %s %s", tc.src, got.Tag(), got.Repr(), tc.tag, tc.repr)
		}
	}
}

func TestEvalPolicies(t *testing.T) {
	cases := []struct {
		src    string
		policy pythonic.Policy
		tag    pythonic.Tag
		repr   string
	}{
		{"2147483647 + 1", pythonic.Promote, pythonic.TagLong, "2147483648"},
		{"2147483647 + 1", pythonic.Wrap, pythonic.TagInt, "-2147483648"},
		{"4u - 5u", pythonic.Promote, pythonic.TagInt, "-1"},
		{"4u - 5u", pythonic.Wrap, pythonic.TagUInt, "4294967295"},
		{"-5u", pythonic.Wrap, pythonic.TagUInt, "4294967291"},
		{"-5u", pythonic.Promote, pythonic.TagInt, "-5"},
	}
	for _, tc := range cases {
		env := NewEnv()
		env.Policy = tc.policy
		got := eval(t, env, tc.src)
		if got.Tag() != tc.tag || got.Repr() != tc.repr {
			t.Fatalf("%s under %s = %s %s, want %s %s", tc.src, tc.policy, got.Tag(), got.Repr(), tc.tag, tc.repr)
		}
	}

	env := NewEnv()
	for _, src := range []string{"2147483647 + 1", "4u - 5u", "-5u", "-(-2147483647 - 1)"} {
		if _, err := env.Eval(src); !errors.Is(err, pythonic.ErrOverflow) {
			t.Fatalf("%s under throw: expected overflow, got %v", src, err)
		}
	}
	if _, err := env.Eval("1 / 0"); !errors.Is(err, pythonic.ErrDivideByZero) {
		t.Fatalf("expected division by zero, got %v", err)
	}
	if _, err := env.Eval("'a' - 1"); !errors.Is(err, pythonic.ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
}

func TestVariables(t *testing.T) {
	env := NewEnv()
	got := eval(t, env, "var a = 10, b = a*2")
	if got.Repr() != "20" {
		t.Fatalf("declaration returned %s", got.Repr())
	}
	if got := eval(t, env, "a + b"); got.Repr() != "30" {
		t.Fatalf("a + b = %s", got.Repr())
	}
	eval(t, env, "a += 5")
	if v, _ := env.Get("a"); v.Tag() != pythonic.TagInt || v.Repr() != "15" {
		t.Fatalf("a = %s %s", v.Tag(), v.Repr())
	}
	eval(t, env, "b **= 2")
	if v, _ := env.Get("b"); v.Repr() != "400" {
		t.Fatalf("b = %s", v.Repr())
	}
	eval(t, env, "x = 3")
	if got := eval(t, env, "2x"); got.Repr() != "6" {
		t.Fatalf("2x = %s", got.Repr())
	}
	if got := eval(t, env, "2pi"); got.Tag() != pythonic.TagDouble || got.DoubleUnchecked() != 2*math.Pi {
		t.Fatalf("2pi = %s %s", got.Tag(), got.Repr())
	}
	eval(t, env, "pi = 3")
	if v, _ := env.Get("pi"); v.Tag() != pythonic.TagInt {
		t.Fatalf("pi was not shadowed: %s", v.Repr())
	}
	if names := env.Names(); len(names) != 4 || names[0] != "a" || names[3] != "x" {
		t.Fatalf("Names = %v", names)
	}
	if !env.Delete("pi") || env.Delete("pi") {
		t.Fatalf("Delete did not report existence")
	}
	if v, _ := env.Get("pi"); v.Tag() != pythonic.TagDouble {
		t.Fatalf("constant not restored after delete: %s", v.Repr())
	}
	if _, err := env.Eval("missing + 1"); !errors.Is(err, ErrUndefined) {
		t.Fatalf("expected undefined, got %v", err)
	}
	if _, err := env.Eval("missing += 1"); !errors.Is(err, ErrUndefined) {
		t.Fatalf("expected undefined, got %v", err)
	}
	env.Clear()
	if len(env.Names()) != 0 {
		t.Fatalf("Clear left %v", env.Names())
	}
}

func TestFunctions(t *testing.T) {
	cases := []struct {
		src  string
		tag  pythonic.Tag
		repr string
	}{
		{"sqrt(16)", pythonic.TagDouble, "4.0"},
		{"abs(-5)", pythonic.TagInt, "5"},
		{"abs(-2.5)", pythonic.TagDouble, "2.5"},
		{"abs(7u)", pythonic.TagUInt, "7"},
		{"floor(2.5)", pythonic.TagLong, "2"},
		{"floor(-2.5)", pythonic.TagLong, "-3"},
		{"ceil(2.1)", pythonic.TagLong, "3"},
		{"ceil(-2.1)", pythonic.TagLong, "-2"},
		{"floor(7)", pythonic.TagInt, "7"},
		{"floor(4.0)", pythonic.TagLong, "4"},
		{"max(3, 7.5, 2)", pythonic.TagDouble, "7.5"},
		{"min([4, 1, 9])", pythonic.TagInt, "1"},
		{"sum([1, 2, 3])", pythonic.TagInt, "6"},
		{"sum(1, 2.5)", pythonic.TagDouble, "3.5"},
		{"len('abc')", pythonic.TagInt, "3"},
		{"len([1, [2, 3]])", pythonic.TagInt, "2"},
		{"type(1.5)", pythonic.TagString, "'double'"},
		{"type(5ull)", pythonic.TagString, "'ulong long'"},
		{"cast(3.9, 'int')", pythonic.TagInt, "3"},
		{"cast(-1, 'uint')", pythonic.TagUInt, "4294967295"},
		{"pow(2, 8)", pythonic.TagInt, "256"},
		{"log10(1)", pythonic.TagDouble, "0.0"},
		{"log2(8)", pythonic.TagDouble, "3.0"},
		{"sin(0)", pythonic.TagDouble, "0.0"},
		{"cos(0)", pythonic.TagDouble, "1.0"},
		{"atan(0)", pythonic.TagDouble, "0.0"},
	}
	env := NewEnv()
	env.Policy = pythonic.Wrap
	for _, tc := range cases {
		got := eval(t, env, tc.src)
		if got.Tag() != tc.tag || got.Repr() != tc.repr {
			t.Fatalf("%s = %s %s, want %s %s", tc.src, got.Tag(), got.Repr(), tc.tag, tc.repr)
		}
	}

	for _, src := range []string{"sqrt(-1)", "log(0)", "log10(-2)", "asin(2)", "acos(-1.5)", "cot(0)", "csc(0)"} {
		if _, err := env.Eval(src); !errors.Is(err, ErrDomain) {
			t.Fatalf("%s: expected domain error, got %v", src, err)
		}
	}
	bad := []string{"nope(1)", "sqrt()", "sqrt(1, 2)", "max()", "max([])", "len(5)", "cast(1, 'bogus')", "cast(1, 2)", "floor('x')", "floor(inf)", "sqrt('x')"}
	for _, src := range bad {
		if _, err := env.Eval(src); err == nil {
			t.Fatalf("%s should fail", src)
		}
	}
	if err := (functionEntry{name: "f", minArgs: 1, maxArgs: 2}).checkArity(3); err == nil || err.Error() != "f() takes 1 to 2 arguments, got 3" {
		t.Fatalf("arity error = %v", err)
	}
	names := FunctionNames()
	if len(names) == 0 || names[0] != "abs" {
		t.Fatalf("FunctionNames = %v", names)
	}
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		src    string
		offset int
	}{
		{"1 +", 3},
		{"1 $ 2", 2},
		{"'abc", 0},
		{"2 3", 2},
		{"(1", 2},
		{"[1, 2", 5},
		{"1.5i", 0},
		{"3000000000i", 0},
		{"", 0},
		{"1 ! 2", 2},
		{"var a 1", 6},
		{"1.", 1},
	}
	for _, tc := range cases {
		_, err := Compile(tc.src)
		var syntaxErr SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("Compile(%q): expected a syntax error, got %v", tc.src, err)
		}
		if syntaxErr.Offset != tc.offset {
			t.Fatalf("Compile(%q): offset %d, want %d (%v)", tc.src, syntaxErr.Offset, tc.offset, err)
		}
	}
	_, err := Compile("1 +")
	if got, want := err.(SyntaxError).HighlightLocation(), "1 +\n   ^"; got != want {
		t.Fatalf("HighlightLocation = %q, want %q", got, want)
	}
}

func TestCompileCache(t *testing.T) {
	ClearCompileCache()
	defer SetCompileCacheSize(defaultCompileCacheSize)
	a := MustCompile("1 + 1")
	b := MustCompile("1 + 1")
	if a != b {
		t.Fatalf("second compile was not cached")
	}
	if stats := CompileCacheStats(); stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	SetCompileCacheSize(1)
	MustCompile("2 + 2")
	if stats := CompileCacheStats(); stats.Entries != 1 || stats.Limit != 1 {
		t.Fatalf("stats after resize = %+v", stats)
	}
	SetCompileCacheSize(0)
	if MustCompile("3 + 3") == MustCompile("3 + 3") {
		t.Fatalf("disabled cache returned the same expression")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustCompile did not panic")
		}
	}()
	MustCompile("1 +")
}

func TestExprIsReusable(t *testing.T) {
	expr := MustCompile("n * 2")
	if expr.IsAssignment() || !MustCompile("n = 1").IsAssignment() {
		t.Fatalf("IsAssignment is wrong")
	}
	for i := range int32(3) {
		env := NewEnv()
		env.Set("n", pythonic.NewInt(i))
		got, err := expr.Eval(env)
		if err != nil || got.IntUnchecked() != 2*i {
			t.Fatalf("n=%d: %s, %v", i, got.Repr(), err)
		}
	}
	if got, err := MustCompile("1 + 1").Eval(nil); err != nil || got.Repr() != "2" {
		t.Fatalf("Eval(nil) = %s, %v", got.Repr(), err)
	}
	if expr.String() != "n * 2" {
		t.Fatalf("String = %q", expr.String())
	}
}

func TestExactMode(t *testing.T) {
	env := NewEnv()
	env.Policy = pythonic.Promote
	if got := eval(t, env, "1l + 1l"); got.Tag() != pythonic.TagInt {
		t.Fatalf("smallest fit: 1l + 1l = %s", got.Tag())
	}
	if got := eval(t, env, "sum(1l, 2l)"); got.Tag() != pythonic.TagInt {
		t.Fatalf("smallest fit: sum(1l, 2l) = %s", got.Tag())
	}
	env.SmallestFit = false
	if got := eval(t, env, "1l + 1l"); got.Tag() != pythonic.TagLong {
		t.Fatalf("exact: 1l + 1l = %s", got.Tag())
	}
	if got := eval(t, env, "sum(1l, 2l)"); got.Tag() != pythonic.TagLong || got.Repr() != "3" {
		t.Fatalf("exact: sum(1l, 2l) = %s %s", got.Tag(), got.Repr())
	}
	if got := eval(t, env, "sum([1l, 2l, 3l])"); got.Tag() != pythonic.TagLong {
		t.Fatalf("exact: sum([1l, 2l, 3l]) = %s", got.Tag())
	}
	if got := eval(t, env, "factorial(5l)"); got.Tag() != pythonic.TagLong || got.Repr() != "120" {
		t.Fatalf("exact: factorial(5l) = %s %s", got.Tag(), got.Repr())
	}
}

func TestMathFunctions(t *testing.T) {
	cases := []struct {
		src  string
		tag  pythonic.Tag
		repr string
	}{
		{"round(2.5)", pythonic.TagLong, "3"},
		{"round(-2.5)", pythonic.TagLong, "-3"},
		{"round(2.4)", pythonic.TagLong, "2"},
		{"round(7)", pythonic.TagInt, "7"},
		{"trunc(-2.7)", pythonic.TagLong, "-2"},
		{"trunc(2.7f)", pythonic.TagLong, "2"},
		{"exp(0)", pythonic.TagDouble, "1.0"},
		{"sinh(0)", pythonic.TagDouble, "0.0"},
		{"cosh(0)", pythonic.TagDouble, "1.0"},
		{"tanh(0)", pythonic.TagDouble, "0.0"},
		{"radians(0)", pythonic.TagDouble, "0.0"},
		{"degrees(0)", pythonic.TagDouble, "0.0"},
		{"fmod(7.5, 2)", pythonic.TagDouble, "1.5"},
		{"fmod(-7.5, 2)", pythonic.TagDouble, "-1.5"},
		{"hypot(3, 4)", pythonic.TagDouble, "5.0"},
		{"copysign(3, -1)", pythonic.TagDouble, "-3.0"},
		{"nthroot(9, 2)", pythonic.TagDouble, "3.0"},
		{"nthroot(-27, 3)", pythonic.TagDouble, "-3.0"},
		{"gcd(12, 18)", pythonic.TagInt, "6"},
		{"gcd(-4, 6)", pythonic.TagInt, "2"},
		{"gcd(0, 0)", pythonic.TagInt, "0"},
		{"gcd(12l, 18)", pythonic.TagLong, "6"},
		{"gcd(7u, 21u)", pythonic.TagUInt, "7"},
		{"lcm(4, 6)", pythonic.TagInt, "12"},
		{"lcm(-3, 5)", pythonic.TagInt, "15"},
		{"lcm(0, 5)", pythonic.TagInt, "0"},
		{"factorial(0)", pythonic.TagInt, "1"},
		{"factorial(5)", pythonic.TagInt, "120"},
		{"factorial(12)", pythonic.TagInt, "479001600"},
		{"factorial(20l)", pythonic.TagLong, "2432902008176640000"},
	}
	env := NewEnv()
	for _, tc := range cases {
		got := eval(t, env, tc.src)
		if got.Tag() != tc.tag || got.Repr() != tc.repr {
			t.Fatalf("%s = %s %s, want %s %s", tc.src, got.Tag(), got.Repr(), tc.tag, tc.repr)
		}
	}

	for _, src := range []string{"fmod(1, 0)", "nthroot(-8, 2)", "nthroot(8, 0)", "factorial(-1)"} {
		if _, err := env.Eval(src); !errors.Is(err, ErrDomain) {
			t.Fatalf("%s: expected domain error, got %v", src, err)
		}
	}
	for _, src := range []string{"gcd(1.5, 2)", "lcm('a', 2)", "factorial(2.0)", "round('x')", "hypot(1)"} {
		if _, err := env.Eval(src); err == nil {
			t.Fatalf("%s should fail", src)
		}
	}
}

func TestMathFunctionPolicies(t *testing.T) {
	throw := NewEnv()
	for _, src := range []string{"factorial(13)", "factorial(21l)", "lcm(65536, 65537)"} {
		if _, err := throw.Eval(src); !errors.Is(err, pythonic.ErrOverflow) {
			t.Fatalf("throw: %s: expected overflow, got %v", src, err)
		}
	}

	promote := NewEnv()
	promote.Policy = pythonic.Promote
	cases := []struct {
		src  string
		tag  pythonic.Tag
		repr string
	}{
		{"factorial(13)", pythonic.TagLong, "6227020800"},
		{"lcm(65536, 65537)", pythonic.TagLong, "4295032832"},
	}
	for _, tc := range cases {
		got := eval(t, promote, tc.src)
		if got.Tag() != tc.tag || got.Repr() != tc.repr {
			t.Fatalf("promote: %s = %s %s, want %s %s", tc.src, got.Tag(), got.Repr(), tc.tag, tc.repr)
		}
	}
	if got := eval(t, promote, "factorial(21l)"); got.Tag() != pythonic.TagLongDouble {
		t.Fatalf("promote: factorial(21l) = %s", got.Tag())
	}

	wrap := NewEnv()
	wrap.Policy = pythonic.Wrap
	if got := eval(t, wrap, "factorial(13)"); got.Tag() != pythonic.TagInt || got.Repr() != "1932053504" {
		t.Fatalf("wrap: factorial(13) = %s %s", got.Tag(), got.Repr())
	}
	if got := eval(t, wrap, "factorial(100000)"); got.Repr() != "0" {
		t.Fatalf("wrap: factorial(100000) = %s", got.Repr())
	}
}
