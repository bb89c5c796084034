package pythonic

import (
	"math"
	"math/big"
)

// Extended emulates the x87 80-bit extended precision format used for
// long double: a 64-bit mantissa and a binary exponent bounded by
// extendedMaxExp. Values are immutable; every operation returns a new
// Extended.
type Extended struct {
	f   *big.Float // nil means +0
	nan bool
}

const (
	extendedPrec = 64
	// big.Float exponents use a mantissa in [0.5, 1).
	extendedMaxExp = 16384
	extendedMinExp = -16444
)

func newExtFloat() *big.Float {
	return new(big.Float).SetPrec(extendedPrec).SetMode(big.ToNearestEven)
}

// ExtendedNaN returns the extended not-a-number.
func ExtendedNaN() Extended {
	return Extended{nan: true}
}

// ExtendedInf returns +Inf for sign >= 0 and -Inf otherwise.
func ExtendedInf(sign int) Extended {
	return Extended{f: newExtFloat().SetInf(sign < 0)}
}

// ExtendedFromFloat64 converts x exactly.
func ExtendedFromFloat64(x float64) Extended {
	if math.IsNaN(x) {
		return ExtendedNaN()
	}
	return Extended{f: newExtFloat().SetFloat64(x)}
}

// ExtendedFromInt64 converts x exactly.
func ExtendedFromInt64(x int64) Extended {
	return Extended{f: newExtFloat().SetInt64(x)}
}

// ExtendedFromUint64 converts x exactly.
func ExtendedFromUint64(x uint64) Extended {
	return Extended{f: newExtFloat().SetUint64(x)}
}

// ExtendedFromBigInt rounds x to the extended format.
func ExtendedFromBigInt(x *big.Int) Extended {
	return clampExtended(newExtFloat().SetInt(x))
}

// ExtendedFromBigFloat rounds x to the extended format.
func ExtendedFromBigFloat(x *big.Float) Extended {
	return clampExtended(newExtFloat().Set(x))
}

// ParseExtended parses a decimal or hexadecimal floating literal.
func ParseExtended(s string) (Extended, error) {
	switch s {
	case "nan", "NaN", "NAN":
		return ExtendedNaN(), nil
	case "inf", "+inf", "Inf", "+Inf":
		return ExtendedInf(1), nil
	case "-inf", "-Inf":
		return ExtendedInf(-1), nil
	}
	f, _, err := big.ParseFloat(s, 0, extendedPrec, big.ToNearestEven)
	if err != nil {
		return Extended{}, err
	}
	return clampExtended(f), nil
}

// clampExtended applies the x87 exponent range to f in place.
func clampExtended(f *big.Float) Extended {
	if f.IsInf() || f.Sign() == 0 {
		return Extended{f: f}
	}
	exp := f.MantExp(nil)
	switch {
	case exp > extendedMaxExp:
		return Extended{f: newExtFloat().SetInf(f.Sign() < 0)}
	case exp < extendedMinExp:
		z := newExtFloat()
		if f.Sign() < 0 {
			z.Neg(z)
		}
		return Extended{f: z}
	}
	return Extended{f: f}
}

func (x Extended) big() *big.Float {
	if x.f == nil {
		return newExtFloat()
	}
	return x.f
}

// IsNaN reports whether x is not-a-number.
func (x Extended) IsNaN() bool { return x.nan }

// IsInf reports whether x is an infinity.
func (x Extended) IsInf() bool { return !x.nan && x.f != nil && x.f.IsInf() }

// IsFinite reports whether x is neither NaN nor infinite.
func (x Extended) IsFinite() bool { return !x.nan && (x.f == nil || !x.f.IsInf()) }

// Sign returns -1, 0 or +1. NaN reports 0.
func (x Extended) Sign() int {
	if x.nan || x.f == nil {
		return 0
	}
	return x.f.Sign()
}

func (x Extended) isZero() bool { return !x.nan && x.Sign() == 0 }

// Signbit reports whether x is negative or negative zero.
func (x Extended) Signbit() bool {
	return !x.nan && x.f != nil && x.f.Signbit()
}

// IsInt reports whether x is a finite whole number.
func (x Extended) IsInt() bool {
	if !x.IsFinite() {
		return false
	}
	return x.big().IsInt()
}

// Float64 returns the nearest float64; out of range values become ±Inf.
func (x Extended) Float64() float64 {
	if x.nan {
		return math.NaN()
	}
	f, _ := x.big().Float64()
	return f
}

// Float32 returns the nearest float32; out of range values become ±Inf.
func (x Extended) Float32() float32 {
	if x.nan {
		return float32(math.NaN())
	}
	f, _ := x.big().Float32()
	return f
}

// BigFloat returns a copy of the value. NaN reports nil.
func (x Extended) BigFloat() *big.Float {
	if x.nan {
		return nil
	}
	return newExtFloat().Set(x.big())
}

// BigInt returns the integer part of a finite x.
func (x Extended) BigInt() (*big.Int, bool) {
	if !x.IsFinite() {
		return nil, false
	}
	i, _ := x.big().Int(nil)
	return i, true
}

// Neg returns -x.
func (x Extended) Neg() Extended {
	if x.nan {
		return x
	}
	return Extended{f: newExtFloat().Neg(x.big())}
}

// Add returns x + y.
func (x Extended) Add(y Extended) Extended {
	if x.nan || y.nan {
		return ExtendedNaN()
	}
	a, b := x.big(), y.big()
	if a.IsInf() && b.IsInf() && a.Signbit() != b.Signbit() {
		return ExtendedNaN()
	}
	return clampExtended(newExtFloat().Add(a, b))
}

// Sub returns x - y.
func (x Extended) Sub(y Extended) Extended {
	if x.nan || y.nan {
		return ExtendedNaN()
	}
	a, b := x.big(), y.big()
	if a.IsInf() && b.IsInf() && a.Signbit() == b.Signbit() {
		return ExtendedNaN()
	}
	return clampExtended(newExtFloat().Sub(a, b))
}

// Mul returns x * y.
func (x Extended) Mul(y Extended) Extended {
	if x.nan || y.nan {
		return ExtendedNaN()
	}
	a, b := x.big(), y.big()
	if (a.IsInf() && b.Sign() == 0) || (b.IsInf() && a.Sign() == 0) {
		return ExtendedNaN()
	}
	return clampExtended(newExtFloat().Mul(a, b))
}

// Quo returns x / y following IEEE rules for zero and infinite operands.
func (x Extended) Quo(y Extended) Extended {
	if x.nan || y.nan {
		return ExtendedNaN()
	}
	a, b := x.big(), y.big()
	if (a.Sign() == 0 && b.Sign() == 0) || (a.IsInf() && b.IsInf()) {
		return ExtendedNaN()
	}
	return clampExtended(newExtFloat().Quo(a, b))
}

// Rem returns the fmod remainder of x / y: the result has the sign of x
// and magnitude below |y|. The result is exact.
func (x Extended) Rem(y Extended) Extended {
	if x.nan || y.nan || x.IsInf() || y.Sign() == 0 {
		return ExtendedNaN()
	}
	if y.IsInf() || x.Sign() == 0 {
		return x
	}
	am, ae := mantInt(x.big())
	bm, be := mantInt(y.big())
	e := min(ae, be)
	am.Lsh(am, uint(ae-e))
	bm.Lsh(bm, uint(be-e))
	r := new(big.Int).Rem(am, bm)
	out := newExtFloat().SetInt(r)
	out.SetMantExp(out, e)
	if r.Sign() == 0 && x.Signbit() {
		out.Neg(out)
	}
	return clampExtended(out)
}

// mantInt splits a finite non-zero f into an integer mantissa m and a
// binary exponent e with f == m * 2**e.
func mantInt(f *big.Float) (*big.Int, int) {
	mant := new(big.Float)
	exp := f.MantExp(mant)
	mant.SetMantExp(mant, extendedPrec)
	m, _ := mant.Int(nil)
	return m, exp - extendedPrec
}

// Cmp compares x and y. NaN compares equal to NaN and below every other value.
func (x Extended) Cmp(y Extended) int {
	switch {
	case x.nan && y.nan:
		return 0
	case x.nan:
		return -1
	case y.nan:
		return 1
	}
	return x.big().Cmp(y.big())
}

// Text formats x like strconv.FormatFloat with format 'g' and the
// shortest representation that round-trips at 64-bit precision.
func (x Extended) Text() string {
	switch {
	case x.nan:
		return "nan"
	case x.IsInf() && x.Signbit():
		return "-inf"
	case x.IsInf():
		return "inf"
	}
	return x.big().Text('g', -1)
}

// String implements fmt.Stringer.
func (x Extended) String() string { return x.Text() }

// canonical returns a representation that is equal for equal values.
func (x Extended) canonical() string {
	if x.nan {
		return "nan"
	}
	if x.Sign() == 0 {
		return "0"
	}
	return x.big().Text('p', 0)
}
