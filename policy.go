package pythonic

import "fmt"

// Policy selects what arithmetic does when a result leaves the host kind.
type Policy uint8

const (
	// Throw fails with ErrOverflow. It is the zero value.
	Throw Policy = iota
	// Promote widens the result to the smallest kind that holds it exactly.
	Promote
	// Wrap keeps the host kind with two's complement or IEEE semantics.
	Wrap
)

var policyNames = [...]string{Throw: "throw", Promote: "promote", Wrap: "wrap"}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy accepts the names printed by String.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if name == s {
			return Policy(i), nil
		}
	}
	return Throw, fmt.Errorf("unknown overflow policy %q", s)
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Op names a binary operation.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	// The remaining ops only appear in errors.
	OpCast
	OpAs
	OpPromote
)

const arithOps = int(OpPow) + 1

var opNames = [...]string{
	OpAdd:  "add",
	OpSub:  "sub",
	OpMul:  "mul",
	OpDiv:  "div",
	OpMod:  "mod",
	OpPow:  "pow",
	OpCast: "cast",
	OpAs:   "as",

	OpPromote: "promote",
}

var opSymbols = [arithOps]string{"+", "-", "*", "/", "%", "**"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Symbol returns the infix operator for arithmetic ops.
func (o Op) Symbol() string {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return o.String()
}
