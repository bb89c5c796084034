package pythonic

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR encodes v as a two element array: the tag number and the
// payload. Dicts encode as arrays of key/value pairs so stored order
// survives. Graphs are process-local handles and cannot be encoded.
func (v Var) MarshalCBOR() ([]byte, error) {
	var payload any
	switch {
	case v.tag == TagNone:
		return cbor.Marshal([]any{uint8(v.tag)})
	case v.tag == TagBool:
		payload = v.BoolUnchecked()
	case v.tag.IsSigned():
		payload = int64(v.n)
	case v.tag.IsUnsigned():
		payload = v.n
	case v.tag == TagFloat:
		payload = v.FloatUnchecked()
	case v.tag == TagDouble:
		payload = v.DoubleUnchecked()
	case v.tag == TagLongDouble:
		payload = extendedWire(v.ExtendedUnchecked())
	case v.tag == TagString:
		payload = v.StringUnchecked()
	case v.tag == TagList, v.tag == TagSet, v.tag == TagOrderedSet:
		payload = v.ElemsUnchecked()
	case v.tag == TagDict, v.tag == TagOrderedDict:
		d := v.dictUnchecked()
		pairs := make([][2]any, len(d.keys))
		for i, k := range d.keys {
			pairs[i] = [2]any{k, d.vals[k]}
		}
		payload = pairs
	default:
		return nil, fmt.Errorf("cbor: cannot encode %s", v.tag)
	}
	return cbor.Marshal([]any{uint8(v.tag), payload})
}

// UnmarshalCBOR decodes the form written by MarshalCBOR.
func (v *Var) UnmarshalCBOR(data []byte) error {
	var parts []cbor.RawMessage
	if err := cbor.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) == 0 || len(parts) > 2 {
		return fmt.Errorf("cbor: var must be a one or two element array, got %d", len(parts))
	}
	var raw uint8
	if err := cbor.Unmarshal(parts[0], &raw); err != nil {
		return err
	}
	t := Tag(raw)
	if t >= tagCount || t == TagGraph {
		return fmt.Errorf("cbor: unsupported tag %d", raw)
	}
	if t == TagNone {
		*v = None()
		return nil
	}
	if len(parts) != 2 {
		return fmt.Errorf("cbor: %s has no payload", t)
	}
	out, err := decodePayload(t, parts[1])
	if err != nil {
		return fmt.Errorf("cbor: decode %s: %w", t, err)
	}
	*v = out
	return nil
}

var errInvalidUTF8 = errors.New("string is not valid utf-8")

func decodePayload(t Tag, data cbor.RawMessage) (Var, error) {
	switch {
	case t == TagBool:
		var b bool
		if err := cbor.Unmarshal(data, &b); err != nil {
			return Var{}, err
		}
		return NewBool(b), nil
	case t.IsSigned():
		var i int64
		if err := cbor.Unmarshal(data, &i); err != nil {
			return Var{}, err
		}
		if t == TagInt && (i < math.MinInt32 || i > math.MaxInt32) {
			return Var{}, ErrOverflow
		}
		return Var{tag: t, n: uint64(i)}, nil
	case t.IsUnsigned():
		var u uint64
		if err := cbor.Unmarshal(data, &u); err != nil {
			return Var{}, err
		}
		if t == TagUInt && u > math.MaxUint32 {
			return Var{}, ErrOverflow
		}
		return Var{tag: t, n: u}, nil
	case t == TagFloat:
		var f float32
		if err := cbor.Unmarshal(data, &f); err != nil {
			return Var{}, err
		}
		return NewFloat(f), nil
	case t == TagDouble:
		var f float64
		if err := cbor.Unmarshal(data, &f); err != nil {
			return Var{}, err
		}
		return NewDouble(f), nil
	case t == TagLongDouble:
		var s string
		if err := cbor.Unmarshal(data, &s); err != nil {
			return Var{}, err
		}
		x, err := ParseExtended(s)
		if err != nil {
			return Var{}, err
		}
		return NewExtended(x), nil
	case t == TagString:
		var s string
		if err := cbor.Unmarshal(data, &s); err != nil {
			return Var{}, err
		}
		if !utf8.ValidString(s) {
			return Var{}, errInvalidUTF8
		}
		return NewString(s), nil
	case t == TagList, t == TagSet, t == TagOrderedSet:
		var elems []Var
		if err := cbor.Unmarshal(data, &elems); err != nil {
			return Var{}, err
		}
		switch t {
		case TagSet:
			return NewSet(elems...), nil
		case TagOrderedSet:
			return NewOrderedSet(elems...), nil
		}
		return NewList(elems...), nil
	case t == TagDict, t == TagOrderedDict:
		var pairs []struct {
			_     struct{} `cbor:",toarray"`
			Key   string
			Value Var
		}
		if err := cbor.Unmarshal(data, &pairs); err != nil {
			return Var{}, err
		}
		entries := make([]DictEntry, len(pairs))
		for i, p := range pairs {
			if !utf8.ValidString(p.Key) {
				return Var{}, errInvalidUTF8
			}
			entries[i] = DictEntry{Key: p.Key, Value: p.Value}
		}
		if t == TagOrderedDict {
			return NewOrderedDict(entries...), nil
		}
		m := make(map[string]Var, len(entries))
		for _, e := range entries {
			m[e.Key] = e.Value
		}
		return NewDict(m), nil
	}
	return Var{}, ErrTypeMismatch
}

// extendedWire is an exact text form of x that ParseExtended reads back.
func extendedWire(x Extended) string {
	if !x.IsFinite() {
		return x.Text()
	}
	return x.big().Text('p', 0)
}
