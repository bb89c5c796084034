package calc

import (
	"fmt"
	"strings"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

type nodeType int

const (
	astEmpty nodeType = iota
	astLiteral
	astIdentifier
	astNegate
	astPlus
	astBinary
	astComparator
	astFunctionCall
	astList
	astAssign
	astCompoundAssign
	astDeclare
)

var nodeNames = [...]string{
	astEmpty:          "Empty",
	astLiteral:        "Literal",
	astIdentifier:     "Identifier",
	astNegate:         "Negate",
	astPlus:           "Plus",
	astBinary:         "Binary",
	astComparator:     "Comparator",
	astFunctionCall:   "FunctionCall",
	astList:           "List",
	astAssign:         "Assign",
	astCompoundAssign: "CompoundAssign",
	astDeclare:        "Declare",
}

func (t nodeType) String() string {
	if int(t) < len(nodeNames) {
		return nodeNames[t]
	}
	return fmt.Sprintf("nodeType(%d)", int(t))
}

type comparator int

const (
	cmpEQ comparator = iota
	cmpNE
	cmpLT
	cmpLTE
	cmpGT
	cmpGTE
)

var comparatorSymbols = [...]string{"==", "!=", "<", "<=", ">", ">="}

func (c comparator) String() string { return comparatorSymbols[c] }

// node is one element of a parsed statement. value holds the literal Var,
// the identifier or function name, the pythonic.Op of a binary or compound
// assignment, or the comparator.
type node struct {
	typ      nodeType
	value    any
	name     string
	children []node
}

func (n node) String() string {
	return n.prettyPrint(0)
}

func (n node) prettyPrint(indent int) string {
	var sb strings.Builder
	spaces := strings.Repeat(" ", indent)
	fmt.Fprintf(&sb, "%s%s {\n", spaces, n.typ)
	inner := strings.Repeat(" ", indent+2)
	if n.name != "" {
		fmt.Fprintf(&sb, "%sname: %s\n", inner, n.name)
	}
	switch v := n.value.(type) {
	case nil:
	case pythonic.Var:
		fmt.Fprintf(&sb, "%svalue: %s %s\n", inner, v.Tag(), v.Repr())
	case fmt.Stringer:
		fmt.Fprintf(&sb, "%svalue: %s\n", inner, v.String())
	default:
		fmt.Fprintf(&sb, "%svalue: %#v\n", inner, v)
	}
	if len(n.children) > 0 {
		fmt.Fprintf(&sb, "%schildren: {\n", inner)
		for _, c := range n.children {
			sb.WriteString(c.prettyPrint(indent + 4))
		}
		fmt.Fprintf(&sb, "%s}\n", inner)
	}
	fmt.Fprintf(&sb, "%s}\n", spaces)
	return sb.String()
}
