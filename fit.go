package pythonic

import (
	"fmt"
	"math"
	"math/big"
)

// Raw is the wide-precision result handed to Fit: an exact integer or an
// extended float.
type Raw struct {
	isFloat bool
	w       wide     // exact integer when !isFloat and b == nil
	b       *big.Int // exact integer beyond 128 bits
	f       Extended
}

func rawWide(w wide) Raw { return Raw{w: w} }

// RawInt64 wraps an exact signed integer.
func RawInt64(x int64) Raw { return rawWide(wideOf(x)) }

// RawUint64 wraps an exact unsigned integer.
func RawUint64(x uint64) Raw { return rawWide(wideOf(x)) }

// RawBigInt wraps an exact integer of any size.
func RawBigInt(x *big.Int) Raw {
	if w, ok := wideFromBig(x); ok {
		return rawWide(w)
	}
	return Raw{b: new(big.Int).Set(x)}
}

// RawExtended wraps an extended float.
func RawExtended(x Extended) Raw { return Raw{isFloat: true, f: x} }

// RawFloat64 wraps a float64.
func RawFloat64(x float64) Raw { return RawExtended(ExtendedFromFloat64(x)) }

// integer returns the value as an exact 128-bit integer when it is whole
// and small enough.
func (r Raw) integer() (wide, bool) {
	switch {
	case r.b != nil:
		return wide{}, false
	case !r.isFloat:
		return r.w, true
	case !r.f.IsInt():
		return wide{}, false
	}
	i, _ := r.f.BigInt()
	return wideFromBig(i)
}

func (r Raw) extended() Extended {
	switch {
	case r.isFloat:
		return r.f
	case r.b != nil:
		return ExtendedFromBigInt(r.b)
	}
	return r.w.extended()
}

// Extended returns the raw value rounded to the extended format.
func (r Raw) Extended() Extended { return r.extended() }

type intCandidate struct {
	tag    Tag
	accept func(w wide) bool
	build  func(w wide) Var
}

type floatCandidate struct {
	tag    Tag
	accept func(x Extended) bool
	build  func(x Extended) Var
}

var (
	unsignedLadder = [...]intCandidate{
		{TagUInt, fitsIn[uint32], func(w wide) Var { return NewUInt(wrapTo[uint32](w)) }},
		{TagULong, fitsIn[uint64], func(w wide) Var { return NewULong(wrapTo[uint64](w)) }},
		{TagULongLong, fitsIn[uint64], func(w wide) Var { return NewULongLong(wrapTo[uint64](w)) }},
	}
	signedLadder = [...]intCandidate{
		{TagInt, fitsIn[int32], func(w wide) Var { return NewInt(wrapTo[int32](w)) }},
		{TagLong, fitsIn[int64], func(w wide) Var { return NewLong(wrapTo[int64](w)) }},
		{TagLongLong, fitsIn[int64], func(w wide) Var { return NewLongLong(wrapTo[int64](w)) }},
	}
	floatLadder = [...]floatCandidate{
		{TagFloat, roundTripsFloat32, func(x Extended) Var { return NewFloat(x.Float32()) }},
		{TagDouble, roundTripsFloat64, func(x Extended) Var { return NewDouble(x.Float64()) }},
		{TagLongDouble, Extended.IsFinite, NewExtended},
	}
)

// A narrower float is accepted only when it converts back to exactly the
// same value.
func roundTripsFloat32(x Extended) bool {
	f := x.Float32()
	if math.IsInf(float64(f), 0) {
		return false
	}
	return ExtendedFromFloat64(float64(f)).Cmp(x) == 0
}

func roundTripsFloat64(x Extended) bool {
	f := x.Float64()
	if math.IsInf(f, 0) {
		return false
	}
	return ExtendedFromFloat64(f).Cmp(x) == 0
}

var errNoFit = fmt.Errorf("result exceeds long double range: %w", ErrOverflow)

// Fit returns the narrowest kind at or above floor that holds r exactly.
//
// HasFloat searches only the float ladder. BothUnsigned searches the
// unsigned ladder for non-negative whole results unless forceSigned is set.
// Everything else searches the signed ladder. Integer ladders that run out,
// and fractional or out-of-ladder results, continue on the float ladder
// starting at Float. The only failure is a result that is not finite even
// as a long double; it wraps ErrOverflow.
func Fit(r Raw, class Classification, floor int, forceSigned bool) (Var, error) {
	if class != HasFloat {
		if w, ok := r.integer(); ok {
			switch {
			case class == BothUnsigned && !forceSigned && !w.neg:
				if v, ok := searchInt(unsignedLadder[:], w, floor); ok {
					return v, nil
				}
			case class == BothUnsigned && !forceSigned:
				// negative without forceSigned goes straight to floats
			default:
				if v, ok := searchInt(signedLadder[:], w, floor); ok {
					return v, nil
				}
			}
		}
	}
	return searchFloat(r.extended(), max(floor, RankFloat))
}

func searchInt(ladder []intCandidate, w wide, floor int) (Var, bool) {
	for _, c := range ladder {
		if rankOf(c.tag) >= floor && c.accept(w) {
			return c.build(w), true
		}
	}
	return Var{}, false
}

func searchFloat(x Extended, floor int) (Var, error) {
	if !x.IsFinite() {
		return Var{}, errNoFit
	}
	for _, c := range floatLadder {
		if rankOf(c.tag) >= floor && c.accept(x) {
			return c.build(x), nil
		}
	}
	return Var{}, errNoFit
}

// fitRaw runs Fit for an operation on a and b and reports failures as an
// OpError.
func fitRaw(op Op, a, b Tag, r Raw, smallestFit, forceSigned bool) (Var, error) {
	v, err := Fit(r, Classify(a, b), FloorFor(a, b, smallestFit), forceSigned)
	if err != nil {
		return Var{}, &OpError{Op: op, Left: a, Right: b, Tag: TagLongDouble, Err: ErrOverflow}
	}
	return v, nil
}
