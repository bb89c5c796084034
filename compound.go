package pythonic

// Compound assignment updates v in place. When the result keeps v's tag
// only the payload changes; otherwise tag and payload are replaced
// together. Promote never narrows below v's current kind. There is no
// locking: a Var must have a single writer.

func (v *Var) AddAssign(b Var, p Policy) error { return v.assign(OpAdd, b, p) }
func (v *Var) SubAssign(b Var, p Policy) error { return v.assign(OpSub, b, p) }
func (v *Var) MulAssign(b Var, p Policy) error { return v.assign(OpMul, b, p) }
func (v *Var) DivAssign(b Var, p Policy) error { return v.assign(OpDiv, b, p) }
func (v *Var) ModAssign(b Var, p Policy) error { return v.assign(OpMod, b, p) }
func (v *Var) PowAssign(b Var, p Policy) error { return v.assign(OpPow, b, p) }

func (v *Var) assign(op Op, b Var, p Policy) error {
	r, err := Compute(op, *v, b, p, false)
	if err != nil {
		return err
	}
	if r.tag == v.tag {
		v.n, v.ref = r.n, r.ref
		return nil
	}
	*v = r
	return nil
}
