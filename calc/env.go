package calc

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

var (
	// ErrUndefined is returned when a statement reads an unknown name.
	ErrUndefined = errors.New("undefined name")
	// ErrDomain is returned by math functions outside their domain.
	ErrDomain = errors.New("math domain error")
)

var constants = map[string]pythonic.Var{
	"pi":  pythonic.NewDouble(math.Pi),
	"e":   pythonic.NewDouble(math.E),
	"inf": pythonic.NewDouble(math.Inf(1)),
	"nan": pythonic.NewDouble(math.NaN()),
}

// Env holds the variables of a calculator session and the arithmetic
// settings statements run under. An Env is not safe for concurrent use.
type Env struct {
	Policy pythonic.Policy
	// SmallestFit lets promoted results drop below the operands' ranks.
	SmallestFit bool

	vars map[string]pythonic.Var
}

// NewEnv returns an empty environment with the Throw policy and
// smallest-fit promotion.
func NewEnv() *Env {
	return &Env{
		Policy:      pythonic.Throw,
		SmallestFit: true,
		vars:        map[string]pythonic.Var{},
	}
}

// Get returns a variable, falling back to the built-in constants.
func (env *Env) Get(name string) (pythonic.Var, bool) {
	if v, ok := env.vars[name]; ok {
		return v, true
	}
	v, ok := constants[name]
	return v, ok
}

// Set binds name to v. Constants may be shadowed.
func (env *Env) Set(name string, v pythonic.Var) {
	if env.vars == nil {
		env.vars = map[string]pythonic.Var{}
	}
	env.vars[name] = v
}

// Delete removes a variable and reports whether it existed.
func (env *Env) Delete(name string) bool {
	_, ok := env.vars[name]
	delete(env.vars, name)
	return ok
}

// Names returns the defined variable names in sorted order.
func (env *Env) Names() []string {
	return slices.Sorted(maps.Keys(env.vars))
}

// Clear drops every variable.
func (env *Env) Clear() {
	clear(env.vars)
}

// Eval compiles and runs one statement.
func (env *Env) Eval(statement string) (pythonic.Var, error) {
	expr, err := Compile(statement)
	if err != nil {
		return pythonic.Var{}, err
	}
	return expr.Eval(env)
}

func undefined(name string) error {
	return fmt.Errorf("%w: %s", ErrUndefined, name)
}
