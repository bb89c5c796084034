package pythonic

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// Var is a tagged runtime value. The tag and the active payload always
// change together; a Var is an ordinary value and may be copied freely.
//
// Numeric payloads live in n: signed integers sign-extended to 64 bits,
// unsigned integers zero-extended, Float as float32 bits and Double as
// float64 bits. ref carries strings, containers, Extended and graph handles.
type Var struct {
	tag Tag
	n   uint64
	ref any
}

// None returns the none value. The zero Var is also none.
func None() Var { return Var{} }

// NewBool returns a Bool cell.
func NewBool(b bool) Var {
	if b {
		return Var{tag: TagBool, n: 1}
	}
	return Var{tag: TagBool}
}

// NewInt returns an Int (int32) cell.
func NewInt(x int32) Var { return Var{tag: TagInt, n: uint64(int64(x))} }

// NewUInt returns a UInt (uint32) cell.
func NewUInt(x uint32) Var { return Var{tag: TagUInt, n: uint64(x)} }

// NewLong returns a Long (int64) cell.
func NewLong(x int64) Var { return Var{tag: TagLong, n: uint64(x)} }

// NewULong returns a ULong (uint64) cell.
func NewULong(x uint64) Var { return Var{tag: TagULong, n: x} }

// NewLongLong returns a LongLong (int64) cell.
func NewLongLong(x int64) Var { return Var{tag: TagLongLong, n: uint64(x)} }

// NewULongLong returns a ULongLong (uint64) cell.
func NewULongLong(x uint64) Var { return Var{tag: TagULongLong, n: x} }

// NewFloat returns a Float (float32) cell.
func NewFloat(x float32) Var { return Var{tag: TagFloat, n: uint64(math.Float32bits(x))} }

// NewDouble returns a Double (float64) cell.
func NewDouble(x float64) Var { return Var{tag: TagDouble, n: math.Float64bits(x)} }

// NewLongDouble returns a LongDouble cell holding x exactly.
func NewLongDouble(x float64) Var { return NewExtended(ExtendedFromFloat64(x)) }

// NewExtended returns a LongDouble cell.
func NewExtended(x Extended) Var { return Var{tag: TagLongDouble, ref: x} }

// NewString returns a String cell.
func NewString(s string) Var { return Var{tag: TagString, ref: s} }

// Tag reports the kind currently held.
func (v Var) Tag() Tag { return v.tag }

// IsNone reports whether v holds none.
func (v Var) IsNone() bool { return v.tag == TagNone }

// TypeName returns the Python-style name of the held kind.
func (v Var) TypeName() string { return v.tag.String() }

// FromAny converts a Go value into a Var. Supported inputs are nil, bool,
// the sized integer and float kinds, int/uint (as Long/ULong), string,
// Extended, *big.Float, GraphRef, Var, []Var, map[string]Var, and slices
// or string-keyed maps of supported values.
func FromAny(x any) (Var, error) {
	switch val := x.(type) {
	case nil:
		return None(), nil
	case Var:
		return val, nil
	case bool:
		return NewBool(val), nil
	case int8:
		return NewInt(int32(val)), nil
	case int16:
		return NewInt(int32(val)), nil
	case int32:
		return NewInt(val), nil
	case int:
		return NewLong(int64(val)), nil
	case int64:
		return NewLong(val), nil
	case uint8:
		return NewUInt(uint32(val)), nil
	case uint16:
		return NewUInt(uint32(val)), nil
	case uint32:
		return NewUInt(val), nil
	case uint:
		return NewULong(uint64(val)), nil
	case uint64:
		return NewULong(val), nil
	case float32:
		return NewFloat(val), nil
	case float64:
		return NewDouble(val), nil
	case Extended:
		return NewExtended(val), nil
	case *big.Float:
		return NewExtended(ExtendedFromBigFloat(val)), nil
	case string:
		return NewString(val), nil
	case []Var:
		return NewList(val...), nil
	case map[string]Var:
		return NewDict(val), nil
	case GraphRef:
		return NewGraph(val), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) (Var, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return NewBool(rv.Bool()), nil
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return NewInt(int32(rv.Int())), nil
	case reflect.Int, reflect.Int64:
		return NewLong(rv.Int()), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return NewUInt(uint32(rv.Uint())), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return NewULong(rv.Uint()), nil
	case reflect.Float32:
		return NewFloat(float32(rv.Float())), nil
	case reflect.Float64:
		return NewDouble(rv.Float()), nil
	case reflect.String:
		return NewString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		out := make([]Var, rv.Len())
		for i := range out {
			elem, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Var{}, err
			}
			out[i] = elem
		}
		return NewList(out...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Var{}, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		m := make(map[string]Var, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elem, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Var{}, err
			}
			m[iter.Key().String()] = elem
		}
		return NewDict(m), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return None(), nil
		}
		return FromAny(rv.Elem().Interface())
	}
	return Var{}, fmt.Errorf("unsupported go type %s", rv.Type())
}
