package pythonic

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch reports an operation that is undefined for the
	// operand kinds, or an accessor used on the wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrDivideByZero is raised by div and mod for a zero right operand
	// under every policy.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOverflow reports a result outside the host kind's range (Throw) or
	// outside every kind (Promote).
	ErrOverflow = errors.New("overflow")
)

// OpError describes a failed operation. Tag is the kind the result was
// meant to have: the host kind for arithmetic, the target of a cast or the
// requested kind of an accessor.
type OpError struct {
	Op    Op
	Left  Tag
	Right Tag
	Tag   Tag
	Err   error
}

func (e *OpError) Error() string {
	switch {
	case e.Op == OpAs:
		return fmt.Sprintf("value is %s, not %s: %v", e.Left, e.Tag, e.Err)
	case e.Op == OpCast:
		return fmt.Sprintf("cast %s to %s: %v", e.Left, e.Tag, e.Err)
	case errors.Is(e.Err, ErrOverflow):
		return fmt.Sprintf("%s %s, %s: result %v in %s", e.Op, e.Left, e.Right, e.Err, e.Tag)
	}
	return fmt.Sprintf("%s %s, %s: %v", e.Op, e.Left, e.Right, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func mismatch(op Op, a, b Tag) error {
	return &OpError{Op: op, Left: a, Right: b, Err: ErrTypeMismatch}
}

func accessMismatch(have, want Tag) error {
	return &OpError{Op: OpAs, Left: have, Tag: want, Err: ErrTypeMismatch}
}
