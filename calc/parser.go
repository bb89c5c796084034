package calc

import (
	"fmt"
	"sync"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

const (
	bpCompare = 5
	bpSum     = 10
	bpProduct = 20
	bpUnary   = 25
	bpPower   = 30
)

var bindingPowers = map[tokType]int{
	tEOF:      0,
	tRparen:   0,
	tRbracket: 0,
	tComma:    0,
	tEQ:       bpCompare,
	tNE:       bpCompare,
	tLT:       bpCompare,
	tLTE:      bpCompare,
	tGT:       bpCompare,
	tGTE:      bpCompare,
	tPlus:     bpSum,
	tMinus:    bpSum,
	tStar:     bpProduct,
	tSlash:    bpProduct,
	tPercent:  bpProduct,
	tPower:    bpPower,
}

var binaryOps = map[tokType]pythonic.Op{
	tPlus:      pythonic.OpAdd,
	tMinus:     pythonic.OpSub,
	tStar:      pythonic.OpMul,
	tSlash:     pythonic.OpDiv,
	tPercent:   pythonic.OpMod,
	tPower:     pythonic.OpPow,
	tAddAssign: pythonic.OpAdd,
	tSubAssign: pythonic.OpSub,
	tMulAssign: pythonic.OpMul,
	tDivAssign: pythonic.OpDiv,
	tModAssign: pythonic.OpMod,
	tPowAssign: pythonic.OpPow,
}

var comparators = map[tokType]comparator{
	tEQ:  cmpEQ,
	tNE:  cmpNE,
	tLT:  cmpLT,
	tLTE: cmpLTE,
	tGT:  cmpGT,
	tGTE: cmpGTE,
}

var keywordLiterals = map[string]pythonic.Var{
	"true":  pythonic.NewBool(true),
	"True":  pythonic.NewBool(true),
	"false": pythonic.NewBool(false),
	"False": pythonic.NewBool(false),
	"none":  pythonic.None(),
	"None":  pythonic.None(),
}

var lexerPool = sync.Pool{
	New: func() any {
		return newLexer()
	},
}

func acquireLexer() *lexer {
	return lexerPool.Get().(*lexer)
}

func releaseLexer(lx *lexer) {
	lx.reset()
	lexerPool.Put(lx)
}

// parser holds state about the statement being parsed.
type parser struct {
	expression string
	tokens     []token
	index      int
}

func newParser() *parser {
	return &parser{}
}

func (p *parser) reset() {
	p.expression = ""
	p.tokens = nil
	p.index = 0
}

// Parse compiles one statement: an expression, an assignment
// (name = expr, name += expr, ...) or a declaration list
// (var a = expr, b = expr).
func (p *parser) Parse(expression string) (node, error) {
	lx := acquireLexer()
	defer releaseLexer(lx)
	tokens, err := lx.tokenize(expression)
	if err != nil {
		return node{}, err
	}
	p.expression = expression
	p.tokens = tokens
	p.index = 0
	defer p.reset()

	var parsed node
	switch {
	case p.current() == tEOF:
		return node{}, p.syntaxError("empty expression")
	case p.current() == tIdentifier && p.tokens[0].value == "var" && p.lookahead(1) == tIdentifier:
		parsed, err = p.parseDeclare()
	case p.current() == tIdentifier && isAssignment(p.lookahead(1)):
		parsed, err = p.parseAssign()
	default:
		parsed, err = p.parseExpression(0)
	}
	if err != nil {
		return node{}, err
	}
	if p.current() != tEOF {
		return node{}, p.syntaxError(fmt.Sprintf("unexpected token: %s", p.lookaheadToken(0).value))
	}
	return parsed, nil
}

func isAssignment(t tokType) bool {
	switch t {
	case tAssign, tAddAssign, tSubAssign, tMulAssign, tDivAssign, tModAssign, tPowAssign:
		return true
	}
	return false
}

func (p *parser) parseDeclare() (node, error) {
	p.advance()
	decl := node{typ: astDeclare}
	for {
		if p.current() != tIdentifier {
			return node{}, p.syntaxError("expected a variable name")
		}
		name := p.lookaheadToken(0).value
		p.advance()
		if err := p.match(tAssign); err != nil {
			return node{}, err
		}
		expr, err := p.parseExpression(0)
		if err != nil {
			return node{}, err
		}
		decl.children = append(decl.children, node{typ: astAssign, name: name, children: []node{expr}})
		if p.current() != tComma {
			return decl, nil
		}
		p.advance()
	}
}

func (p *parser) parseAssign() (node, error) {
	name := p.lookaheadToken(0).value
	p.advance()
	op := p.lookaheadToken(0)
	p.advance()
	expr, err := p.parseExpression(0)
	if err != nil {
		return node{}, err
	}
	if op.typ == tAssign {
		return node{typ: astAssign, name: name, children: []node{expr}}, nil
	}
	return node{typ: astCompoundAssign, name: name, value: binaryOps[op.typ], children: []node{expr}}, nil
}

func (p *parser) parseExpression(bindingPower int) (node, error) {
	var err error
	leftToken := p.lookaheadToken(0)
	p.advance()
	leftNode, err := p.nud(leftToken)
	if err != nil {
		return node{}, err
	}
	currentToken := p.current()
	for bindingPower < bindingPowers[currentToken] {
		p.advance()
		leftNode, err = p.led(currentToken, leftNode)
		if err != nil {
			return node{}, err
		}
		currentToken = p.current()
	}
	return leftNode, nil
}

func (p *parser) nud(tok token) (node, error) {
	switch tok.typ {
	case tNumber:
		v, err := parseNumberLiteral(tok.value)
		if err != nil {
			return node{}, p.syntaxErrorToken(err.Error(), tok)
		}
		return node{typ: astLiteral, value: v}, nil
	case tString:
		return node{typ: astLiteral, value: pythonic.NewString(tok.value)}, nil
	case tIdentifier:
		if v, ok := keywordLiterals[tok.value]; ok {
			return node{typ: astLiteral, value: v}, nil
		}
		if p.current() == tLparen {
			p.advance()
			args, err := p.parseCommaList(tRparen)
			if err != nil {
				return node{}, err
			}
			return node{typ: astFunctionCall, name: tok.value, children: args}, nil
		}
		return node{typ: astIdentifier, name: tok.value}, nil
	case tMinus, tPlus:
		operand, err := p.parseExpression(bpUnary)
		if err != nil {
			return node{}, err
		}
		typ := astNegate
		if tok.typ == tPlus {
			typ = astPlus
		}
		return node{typ: typ, children: []node{operand}}, nil
	case tLparen:
		expr, err := p.parseExpression(0)
		if err != nil {
			return node{}, err
		}
		if err := p.match(tRparen); err != nil {
			return node{}, err
		}
		return expr, nil
	case tLbracket:
		elems, err := p.parseCommaList(tRbracket)
		if err != nil {
			return node{}, err
		}
		return node{typ: astList, children: elems}, nil
	case tEOF:
		return node{}, p.syntaxErrorToken("incomplete expression", tok)
	}
	return node{}, p.syntaxErrorToken(fmt.Sprintf("unexpected token: %s", tok.typ), tok)
}

func (p *parser) led(tokenType tokType, leftNode node) (node, error) {
	if cmp, ok := comparators[tokenType]; ok {
		right, err := p.parseExpression(bpCompare)
		if err != nil {
			return node{}, err
		}
		return node{typ: astComparator, value: cmp, children: []node{leftNode, right}}, nil
	}
	op, ok := binaryOps[tokenType]
	if !ok {
		return node{}, p.syntaxError(fmt.Sprintf("unexpected token: %s", tokenType))
	}
	bp := bindingPowers[tokenType]
	if tokenType == tPower {
		// right associative: 2**3**2 is 2**(3**2)
		bp--
	}
	right, err := p.parseExpression(bp)
	if err != nil {
		return node{}, err
	}
	return node{typ: astBinary, value: op, children: []node{leftNode, right}}, nil
}

// parseCommaList reads expressions up to and including the closing token.
func (p *parser) parseCommaList(closing tokType) ([]node, error) {
	var out []node
	if p.current() == closing {
		p.advance()
		return out, nil
	}
	for {
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
		switch p.current() {
		case tComma:
			p.advance()
		case closing:
			p.advance()
			return out, nil
		default:
			return nil, p.syntaxError(fmt.Sprintf("expected %s or %s, got %s", tComma, closing, p.current()))
		}
	}
}

func (p *parser) match(tokenType tokType) error {
	if p.current() == tokenType {
		p.advance()
		return nil
	}
	return p.syntaxError(fmt.Sprintf("expected %s, got %s", tokenType, p.current()))
}

func (p *parser) lookahead(number int) tokType {
	return p.lookaheadToken(number).typ
}

func (p *parser) current() tokType {
	return p.lookahead(0)
}

func (p *parser) lookaheadToken(number int) token {
	i := p.index + number
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) advance() {
	if p.index < len(p.tokens)-1 {
		p.index++
	}
}

func (p *parser) syntaxError(msg string) SyntaxError {
	return SyntaxError{
		msg:        msg,
		Expression: p.expression,
		Offset:     p.lookaheadToken(0).position,
	}
}

// Create a SyntaxError based on the provided token.
// This differs from syntaxError() which creates a SyntaxError
// based on the current lookahead token.
func (p *parser) syntaxErrorToken(msg string, t token) SyntaxError {
	return SyntaxError{
		msg:        msg,
		Expression: p.expression,
		Offset:     t.position,
	}
}
