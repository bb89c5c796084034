package pythonic

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
)

var (
	sinkVar   Var
	sinkBytes []byte
	sinkHash  uint64
	sinkErr   error
)

func benchInts(n int) []Var {
	out := make([]Var, n)
	for i := range out {
		switch i % 3 {
		case 0:
			out[i] = NewInt(int32(i))
		case 1:
			out[i] = NewLong(int64(i) << 20)
		default:
			out[i] = NewUInt(uint32(i))
		}
	}
	return out
}

func BenchmarkAddSameTagFast(b *testing.B) {
	x, y := NewInt(12345), NewInt(678)
	b.ReportAllocs()
	for b.Loop() {
		sinkVar, sinkErr = Add(x, y, Throw)
	}
}

func BenchmarkAddMixedKernel(b *testing.B) {
	x, y := NewInt(12345), NewULong(678)
	b.ReportAllocs()
	for b.Loop() {
		sinkVar, sinkErr = Add(x, y, Throw)
	}
}

func BenchmarkAddPromoteOverflow(b *testing.B) {
	x, y := NewInt(2000000000), NewInt(2000000000)
	b.ReportAllocs()
	for b.Loop() {
		sinkVar, sinkErr = Add(x, y, Promote)
	}
}

func BenchmarkMulDoublePromote(b *testing.B) {
	x, y := NewDouble(1.5), NewDouble(0.1)
	b.ReportAllocs()
	for b.Loop() {
		sinkVar, sinkErr = Mul(x, y, Promote)
	}
}

func BenchmarkPowPromote(b *testing.B) {
	x, y := NewLong(3), NewInt(40)
	b.ReportAllocs()
	for b.Loop() {
		sinkVar, sinkErr = Pow(x, y, Promote)
	}
}

func BenchmarkSumMixed(b *testing.B) {
	vals := benchInts(1024)
	b.ReportAllocs()
	for b.Loop() {
		sinkVar, sinkErr = Sum(vals, Promote)
	}
}

func BenchmarkCachedOpStableTags(b *testing.B) {
	c := NewCachedOp(OpAdd, Wrap, true)
	one := NewLong(1)
	b.ReportAllocs()
	for b.Loop() {
		acc := NewLong(0)
		for range 1024 {
			acc, sinkErr = c.Apply(acc, one)
		}
		sinkVar = acc
	}
}

func BenchmarkHashList(b *testing.B) {
	v := NewList(benchInts(256)...)
	b.ReportAllocs()
	for b.Loop() {
		sinkHash = Hash(v)
	}
}

func BenchmarkMarshalCBOR(b *testing.B) {
	v := NewList(benchInts(256)...)
	b.ReportAllocs()
	for b.Loop() {
		sinkBytes, sinkErr = cbor.Marshal(v)
	}
}
