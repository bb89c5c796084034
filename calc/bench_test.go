package calc

import (
	"testing"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

var sinkVar pythonic.Var

func FuzzCompile(f *testing.F) {
	for _, seed := range []string{"1 + 2", "var a = 1, b = a*2", "sqrt(2) ** 2", "'x' * 3", "2pi", "[1, [2.5f]]", "a **= 3ull"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		expr, err := Compile(src)
		if err != nil {
			if _, ok := err.(SyntaxError); !ok {
				t.Fatalf("Compile(%q) returned %T", src, err)
			}
			return
		}
		if expr.String() != src {
			t.Fatalf("source not kept")
		}
	})
}

func BenchmarkCompileCached(b *testing.B) {
	MustCompile("x * 2 + sqrt(y) - 3")
	b.ReportAllocs()
	for b.Loop() {
		MustCompile("x * 2 + sqrt(y) - 3")
	}
}

func BenchmarkCompileUncached(b *testing.B) {
	SetCompileCacheSize(0)
	defer SetCompileCacheSize(defaultCompileCacheSize)
	b.ReportAllocs()
	for b.Loop() {
		MustCompile("x * 2 + sqrt(y) - 3")
	}
}

func BenchmarkEval(b *testing.B) {
	expr := MustCompile("x * 2 + sqrt(y) - 3")
	env := NewEnv()
	env.Set("x", pythonic.NewLong(21))
	env.Set("y", pythonic.NewDouble(16))
	b.ReportAllocs()
	for b.Loop() {
		v, err := expr.Eval(env)
		if err != nil {
			b.Fatal(err)
		}
		sinkVar = v
	}
}
