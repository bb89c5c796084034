package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

// literalSuffixes maps a number suffix to the kind it selects.
var literalSuffixes = map[string]pythonic.Tag{
	"i":   pythonic.TagInt,
	"u":   pythonic.TagUInt,
	"l":   pythonic.TagLong,
	"ul":  pythonic.TagULong,
	"ll":  pythonic.TagLongLong,
	"ull": pythonic.TagULongLong,
	"f":   pythonic.TagFloat,
	"d":   pythonic.TagDouble,
	"ld":  pythonic.TagLongDouble,
}

func splitSuffix(text string) (digits string, tag pythonic.Tag, suffixed bool) {
	end := len(text)
	for end > 0 && isIdentStart(rune(text[end-1])) {
		end--
	}
	if end == len(text) {
		return text, pythonic.TagNone, false
	}
	return text[:end], literalSuffixes[strings.ToLower(text[end:])], true
}

// parseNumberLiteral turns a number token into a Var. Unsuffixed integers
// take the first of int, long and ulong that holds them; unsuffixed
// decimals are doubles.
func parseNumberLiteral(text string) (pythonic.Var, error) {
	digits, tag, suffixed := splitSuffix(text)
	decimal := strings.ContainsAny(digits, ".eE")
	if !suffixed {
		if decimal {
			f, err := strconv.ParseFloat(digits, 64)
			if err != nil {
				return pythonic.Var{}, literalError(text, err)
			}
			return pythonic.NewDouble(f), nil
		}
		if i, err := strconv.ParseInt(digits, 10, 64); err == nil {
			if i <= math.MaxInt32 {
				return pythonic.NewInt(int32(i)), nil
			}
			return pythonic.NewLong(i), nil
		}
		u, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return pythonic.Var{}, literalError(text, err)
		}
		return pythonic.NewULong(u), nil
	}
	if decimal && tag.IsInteger() {
		return pythonic.Var{}, fmt.Errorf("number literal %s: integer suffix on a decimal", text)
	}
	switch tag {
	case pythonic.TagInt, pythonic.TagLong, pythonic.TagLongLong:
		bits := 64
		if tag == pythonic.TagInt {
			bits = 32
		}
		i, err := strconv.ParseInt(digits, 10, bits)
		if err != nil {
			return pythonic.Var{}, literalError(text, err)
		}
		switch tag {
		case pythonic.TagInt:
			return pythonic.NewInt(int32(i)), nil
		case pythonic.TagLong:
			return pythonic.NewLong(i), nil
		}
		return pythonic.NewLongLong(i), nil
	case pythonic.TagUInt, pythonic.TagULong, pythonic.TagULongLong:
		bits := 64
		if tag == pythonic.TagUInt {
			bits = 32
		}
		u, err := strconv.ParseUint(digits, 10, bits)
		if err != nil {
			return pythonic.Var{}, literalError(text, err)
		}
		switch tag {
		case pythonic.TagUInt:
			return pythonic.NewUInt(uint32(u)), nil
		case pythonic.TagULong:
			return pythonic.NewULong(u), nil
		}
		return pythonic.NewULongLong(u), nil
	case pythonic.TagFloat:
		f, err := strconv.ParseFloat(digits, 32)
		if err != nil {
			return pythonic.Var{}, literalError(text, err)
		}
		return pythonic.NewFloat(float32(f)), nil
	case pythonic.TagDouble:
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return pythonic.Var{}, literalError(text, err)
		}
		return pythonic.NewDouble(f), nil
	case pythonic.TagLongDouble:
		x, err := pythonic.ParseExtended(digits)
		if err != nil {
			return pythonic.Var{}, literalError(text, err)
		}
		return pythonic.NewExtended(x), nil
	}
	return pythonic.Var{}, fmt.Errorf("number literal %s: unknown suffix", text)
}

func literalError(text string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return fmt.Errorf("number literal %s is out of range", text)
	}
	return fmt.Errorf("number literal %s: %w", text, err)
}
