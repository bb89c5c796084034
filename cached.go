package pythonic

// CachedOp applies one operation repeatedly and remembers the kernel of the
// last tag pair it saw, so a loop over values of stable kinds pays for the
// table lookup once. A CachedOp must not be shared between goroutines.
type CachedOp struct {
	op          Op
	policy      Policy
	smallestFit bool

	left, right Tag
	fn          BinaryFunc
}

// NewCachedOp returns a CachedOp for op under p.
func NewCachedOp(op Op, p Policy, smallestFit bool) *CachedOp {
	return &CachedOp{op: op, policy: p, smallestFit: smallestFit}
}

// Apply computes a op b.
func (c *CachedOp) Apply(a, b Var) (Var, error) {
	if c.fn == nil || a.tag != c.left || b.tag != c.right {
		c.left, c.right = a.tag, b.tag
		c.fn = Lookup(c.op, a.tag, b.tag)
	}
	return c.fn(a, b, c.policy, c.smallestFit)
}

// Hit reports whether the next Apply on these tags reuses the cached kernel.
func (c *CachedOp) Hit(a, b Tag) bool {
	return c.fn != nil && a == c.left && b == c.right
}
