package pythonic

import "github.com/delaneyj/toolbelt"

var varPool = toolbelt.New(func() []Var { return make([]Var, 0, 16) })

// GetVarSlice returns a pooled slice of length n. Callers that hand the
// slice back with PutVarSlice must not retain it.
func GetVarSlice(n int) []Var {
	if n <= 0 {
		return nil
	}
	s := varPool.Get()
	if cap(s) < n {
		return make([]Var, n)
	}
	return s[:n]
}

// PutVarSlice returns s to the pool.
func PutVarSlice(s []Var) {
	if s == nil {
		return
	}
	clear(s)
	s = s[:0]
	varPool.Put(s)
}
