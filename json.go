package pythonic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/minio/simdjson-go"
)

// FromJSON parses JSON using simdjson-go. Integers take the narrowest
// signed kind that holds them (unsigned above the int64 range), other
// numbers become Double, objects become OrderedDict and arrays List.
func FromJSON(data []byte) (Var, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Var{}, fmt.Errorf("json input is empty")
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return scalarFromJSON(trimmed)
	}
	parsed, err := simdjson.Parse(trimmed, nil)
	if err != nil {
		return Var{}, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return Var{}, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return Var{}, err
	}
	return varFromJSONIter(typ, root)
}

func scalarFromJSON(data []byte) (Var, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Var{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Var{}, fmt.Errorf("invalid character after top-level value")
	}
	switch val := v.(type) {
	case nil:
		return None(), nil
	case bool:
		return NewBool(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return jsonInt(i), nil
		}
		if u, err := strconv.ParseUint(val.String(), 10, 64); err == nil {
			return jsonUint(u), nil
		}
		if f, err := val.Float64(); err == nil {
			return NewDouble(f), nil
		}
		return Var{}, fmt.Errorf("invalid json number: %s", val)
	case string:
		return NewString(val), nil
	default:
		return Var{}, fmt.Errorf("unsupported scalar json type %T", v)
	}
}

func jsonInt(i int64) Var {
	v, _ := Fit(RawInt64(i), Others, RankUInt, false)
	return v
}

func jsonUint(u uint64) Var {
	if u <= math.MaxInt64 {
		return jsonInt(int64(u))
	}
	v, _ := Fit(RawUint64(u), BothUnsigned, RankUInt, false)
	return v
}

func varFromJSONIter(typ simdjson.Type, it *simdjson.Iter) (Var, error) {
	switch typ {
	case simdjson.TypeNull:
		return None(), nil
	case simdjson.TypeBool:
		v, err := it.Bool()
		if err != nil {
			return Var{}, err
		}
		return NewBool(v), nil
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return Var{}, err
		}
		return jsonInt(v), nil
	case simdjson.TypeUint:
		v, err := it.Uint()
		if err != nil {
			return Var{}, err
		}
		return jsonUint(v), nil
	case simdjson.TypeFloat:
		v, err := it.Float()
		if err != nil {
			return Var{}, err
		}
		return NewDouble(v), nil
	case simdjson.TypeString:
		s, err := it.String()
		if err != nil {
			return Var{}, err
		}
		return NewString(s), nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return Var{}, err
		}
		var entries []DictEntry
		var parseErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if parseErr != nil {
				return
			}
			val, err := varFromJSONIter(elem.Type(), &elem)
			if err != nil {
				parseErr = err
				return
			}
			entries = append(entries, DictEntry{Key: string(key), Value: val})
		}, nil)
		if err != nil {
			return Var{}, err
		}
		if parseErr != nil {
			return Var{}, parseErr
		}
		return NewOrderedDict(entries...), nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return Var{}, err
		}
		elems := []Var{}
		iter := arr.Iter()
		for {
			t := iter.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem := iter
			val, err := varFromJSONIter(t, &elem)
			if err != nil {
				return Var{}, err
			}
			elems = append(elems, val)
		}
		return NewList(elems...), nil
	default:
		return Var{}, fmt.Errorf("unsupported json type: %v", typ)
	}
}

// ToJSON renders v as JSON. Sets become arrays and both dict kinds become
// objects in their stored key order. Non-finite floats and graphs have no
// JSON form.
func ToJSON(v Var) (string, error) {
	var sb strings.Builder
	if err := WriteJSON(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSON appends JSON for v to sb.
func WriteJSON(sb *strings.Builder, v Var) error {
	switch v.tag {
	case TagNone:
		sb.WriteString("null")
	case TagBool:
		if v.BoolUnchecked() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case TagInt, TagLong, TagLongLong:
		sb.WriteString(strconv.FormatInt(int64(v.n), 10))
	case TagUInt, TagULong, TagULongLong:
		sb.WriteString(strconv.FormatUint(v.n, 10))
	case TagFloat, TagDouble, TagLongDouble:
		if !numericExtended(v).IsFinite() {
			return fmt.Errorf("json: cannot encode %s %s", v.tag, v.Repr())
		}
		sb.WriteString(v.Repr())
	case TagString:
		writeJSONString(sb, v.StringUnchecked())
	case TagList, TagSet, TagOrderedSet:
		sb.WriteByte('[')
		for i, e := range v.ElemsUnchecked() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := WriteJSON(sb, e); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case TagDict, TagOrderedDict:
		d := v.dictUnchecked()
		sb.WriteByte('{')
		for i, k := range d.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSONString(sb, k)
			sb.WriteByte(':')
			if err := WriteJSON(sb, d.vals[k]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("json: cannot encode %s", v.tag)
	}
	return nil
}

func writeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigit(c >> 4))
				sb.WriteByte(hexDigit(c & 0xF))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + (n - 10)
}

// AppendJSON appends the JSON form of v to dst.
func AppendJSON(dst []byte, v Var) ([]byte, error) {
	s, err := ToJSON(v)
	if err != nil {
		return dst, err
	}
	return append(dst, s...), nil
}
