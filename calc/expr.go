package calc

import (
	"fmt"
	"sync"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

// Expr is a compiled calculator statement. An Expr is immutable and may be
// evaluated concurrently against different environments.
type Expr struct {
	source string
	root   node
}

var parserPool = sync.Pool{
	New: func() any {
		return newParser()
	},
}

// Compile parses a statement.
func Compile(statement string) (*Expr, error) {
	if expr, ok := compileCache.get(statement); ok {
		return expr, nil
	}
	p := parserPool.Get().(*parser)
	defer parserPool.Put(p)
	root, err := p.Parse(statement)
	if err != nil {
		return nil, err
	}
	expr := &Expr{source: statement, root: root}
	compileCache.add(statement, expr)
	return expr, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(statement string) *Expr {
	expr, err := Compile(statement)
	if err != nil {
		panic(fmt.Sprintf("calc: Compile(%q): %v", statement, err))
	}
	return expr
}

// String returns the source the expression was compiled from.
func (e *Expr) String() string { return e.source }

// IsAssignment reports whether evaluating e binds variables.
func (e *Expr) IsAssignment() bool {
	switch e.root.typ {
	case astAssign, astCompoundAssign, astDeclare:
		return true
	}
	return false
}

// Eval runs the statement against env and returns its value. Assignments
// return the last value bound.
func (e *Expr) Eval(env *Env) (pythonic.Var, error) {
	if env == nil {
		env = NewEnv()
	}
	intr := getInterpreter()
	defer putInterpreter(intr)
	intr.env = env
	return intr.execute(e.root)
}
