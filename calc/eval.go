package calc

import (
	"fmt"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

type interpreter struct {
	env *Env
}

func (intr *interpreter) reset() {
	intr.env = nil
}

func (intr *interpreter) execute(n node) (pythonic.Var, error) {
	switch n.typ {
	case astLiteral:
		return n.value.(pythonic.Var), nil
	case astIdentifier:
		if v, ok := intr.env.Get(n.name); ok {
			return v, nil
		}
		return pythonic.Var{}, undefined(n.name)
	case astNegate, astPlus:
		operand, err := intr.execute(n.children[0])
		if err != nil {
			return pythonic.Var{}, err
		}
		if n.typ == astPlus {
			if !operand.Tag().IsNumeric() {
				return pythonic.Var{}, fmt.Errorf("bad operand for unary +: %s", operand.TypeName())
			}
			return operand, nil
		}
		return negate(operand, intr.env)
	case astBinary:
		left, err := intr.execute(n.children[0])
		if err != nil {
			return pythonic.Var{}, err
		}
		right, err := intr.execute(n.children[1])
		if err != nil {
			return pythonic.Var{}, err
		}
		return pythonic.Compute(n.value.(pythonic.Op), left, right, intr.env.Policy, intr.env.SmallestFit)
	case astComparator:
		left, err := intr.execute(n.children[0])
		if err != nil {
			return pythonic.Var{}, err
		}
		right, err := intr.execute(n.children[1])
		if err != nil {
			return pythonic.Var{}, err
		}
		return pythonic.NewBool(compareWith(n.value.(comparator), left, right)), nil
	case astFunctionCall:
		return intr.call(n)
	case astList:
		elems := make([]pythonic.Var, len(n.children))
		for i, child := range n.children {
			v, err := intr.execute(child)
			if err != nil {
				return pythonic.Var{}, err
			}
			elems[i] = v
		}
		return pythonic.NewList(elems...), nil
	case astAssign:
		v, err := intr.execute(n.children[0])
		if err != nil {
			return pythonic.Var{}, err
		}
		intr.env.Set(n.name, v)
		return v, nil
	case astCompoundAssign:
		cur, ok := intr.env.Get(n.name)
		if !ok {
			return pythonic.Var{}, undefined(n.name)
		}
		right, err := intr.execute(n.children[0])
		if err != nil {
			return pythonic.Var{}, err
		}
		if err := compoundAssign(&cur, n.value.(pythonic.Op), right, intr.env.Policy); err != nil {
			return pythonic.Var{}, err
		}
		intr.env.Set(n.name, cur)
		return cur, nil
	case astDeclare:
		var last pythonic.Var
		for _, child := range n.children {
			v, err := intr.execute(child)
			if err != nil {
				return pythonic.Var{}, err
			}
			last = v
		}
		return last, nil
	}
	return pythonic.Var{}, fmt.Errorf("unknown AST node: %s", n.typ)
}

func (intr *interpreter) call(n node) (pythonic.Var, error) {
	fn, ok := lookupFunction(n.name)
	if !ok {
		return pythonic.Var{}, fmt.Errorf("unknown function: %s", n.name)
	}
	if err := fn.checkArity(len(n.children)); err != nil {
		return pythonic.Var{}, err
	}
	args := pythonic.GetVarSlice(len(n.children))
	defer pythonic.PutVarSlice(args)
	for i, child := range n.children {
		v, err := intr.execute(child)
		if err != nil {
			return pythonic.Var{}, err
		}
		args[i] = v
	}
	return fn.handler(intr.env, args)
}

func compoundAssign(v *pythonic.Var, op pythonic.Op, right pythonic.Var, p pythonic.Policy) error {
	switch op {
	case pythonic.OpAdd:
		return v.AddAssign(right, p)
	case pythonic.OpSub:
		return v.SubAssign(right, p)
	case pythonic.OpMul:
		return v.MulAssign(right, p)
	case pythonic.OpDiv:
		return v.DivAssign(right, p)
	case pythonic.OpMod:
		return v.ModAssign(right, p)
	}
	return v.PowAssign(right, p)
}

func compareWith(c comparator, a, b pythonic.Var) bool {
	r := pythonic.Compare(a, b)
	switch c {
	case cmpEQ:
		return r == 0
	case cmpNE:
		return r != 0
	case cmpLT:
		return r < 0
	case cmpLTE:
		return r <= 0
	case cmpGT:
		return r > 0
	}
	return r >= 0
}

// negate flips the sign of a number. Floats negate directly; integers
// compute 0 - v in their own kind so the policy decides what happens to
// unsigned values and the most negative signed value.
func negate(v pythonic.Var, env *Env) (pythonic.Var, error) {
	switch v.Tag() {
	case pythonic.TagFloat:
		return pythonic.NewFloat(-v.FloatUnchecked()), nil
	case pythonic.TagDouble:
		return pythonic.NewDouble(-v.DoubleUnchecked()), nil
	case pythonic.TagLongDouble:
		return pythonic.NewExtended(v.ExtendedUnchecked().Neg()), nil
	}
	zero := pythonic.NewInt(0)
	if v.Tag().IsInteger() {
		var err error
		if zero, err = pythonic.Cast(zero, v.Tag(), pythonic.Wrap); err != nil {
			return pythonic.Var{}, err
		}
	}
	return pythonic.Compute(pythonic.OpSub, zero, v, env.Policy, env.SmallestFit)
}
