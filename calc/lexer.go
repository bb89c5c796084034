package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type token struct {
	typ      tokType
	value    string
	position int
	length   int
}

type tokType int

const eof = -1

const (
	tUnknown tokType = iota
	tNumber
	tString
	tIdentifier
	tPlus
	tMinus
	tStar
	tSlash
	tPercent
	tPower
	tLparen
	tRparen
	tLbracket
	tRbracket
	tComma
	tAssign
	tAddAssign
	tSubAssign
	tMulAssign
	tDivAssign
	tModAssign
	tPowAssign
	tEQ
	tNE
	tLT
	tLTE
	tGT
	tGTE
	tEOF
)

var tokNames = [...]string{
	tUnknown:    "unknown",
	tNumber:     "number",
	tString:     "string",
	tIdentifier: "identifier",
	tPlus:       "'+'",
	tMinus:      "'-'",
	tStar:       "'*'",
	tSlash:      "'/'",
	tPercent:    "'%'",
	tPower:      "'**'",
	tLparen:     "'('",
	tRparen:     "')'",
	tLbracket:   "'['",
	tRbracket:   "']'",
	tComma:      "','",
	tAssign:     "'='",
	tAddAssign:  "'+='",
	tSubAssign:  "'-='",
	tMulAssign:  "'*='",
	tDivAssign:  "'/='",
	tModAssign:  "'%='",
	tPowAssign:  "'**='",
	tEQ:         "'=='",
	tNE:         "'!='",
	tLT:         "'<'",
	tLTE:        "'<='",
	tGT:         "'>'",
	tGTE:        "'>='",
	tEOF:        "end of input",
}

func (t tokType) String() string {
	if int(t) < len(tokNames) {
		return tokNames[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

func (t token) String() string {
	return fmt.Sprintf("Token{%s, %s, %d, %d}", t.typ, t.value, t.position, t.length)
}

// SyntaxError is returned for any lexing or parsing failure.
type SyntaxError struct {
	msg        string
	Expression string // source that failed
	Offset     int    // byte offset of the offending token
}

func (e SyntaxError) Error() string {
	return "syntax error: " + e.msg
}

// HighlightLocation shows the source with a "^" under the offending byte.
func (e SyntaxError) HighlightLocation() string {
	return e.Expression + "\n" + strings.Repeat(" ", e.Offset) + "^"
}

var basicTokens = map[rune]tokType{
	'(': tLparen,
	')': tRparen,
	'[': tLbracket,
	']': tRbracket,
	',': tComma,
	'+': tPlus,
	'-': tMinus,
	'/': tSlash,
	'%': tPercent,
	'^': tPower,
}

// compound assignment forms of the basic operators
var assignForms = map[tokType]tokType{
	tPlus:    tAddAssign,
	tMinus:   tSubAssign,
	tSlash:   tDivAssign,
	tPercent: tModAssign,
	tPower:   tPowAssign,
}

var whiteSpace = map[rune]bool{
	' ': true, '\t': true, '\n': true, '\r': true,
}

type lexer struct {
	expression string
	currentPos int
	lastWidth  int
	buf        strings.Builder
	tokens     []token
}

func newLexer() *lexer {
	return &lexer{}
}

func (lx *lexer) reset() {
	lx.expression = ""
	lx.currentPos = 0
	lx.lastWidth = 0
	lx.buf.Reset()
	if len(lx.tokens) > 0 {
		clear(lx.tokens)
		lx.tokens = lx.tokens[:0]
	}
}

func (lx *lexer) next() rune {
	if lx.currentPos >= len(lx.expression) {
		lx.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.expression[lx.currentPos:])
	lx.lastWidth = w
	lx.currentPos += w
	return r
}

func (lx *lexer) back() {
	lx.currentPos -= lx.lastWidth
}

func (lx *lexer) peek() rune {
	r := lx.next()
	lx.back()
	return r
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// implicitMul reports whether a value starting right after last multiplies
// it, as in 2x, 2(3) or (a)(b).
func implicitMul(last []token) bool {
	if len(last) == 0 {
		return false
	}
	switch last[len(last)-1].typ {
	case tNumber, tRparen:
		return true
	}
	return false
}

func (lx *lexer) tokenize(expression string) ([]token, error) {
	tokens := lx.tokens[:0]
	lx.expression = expression
	lx.currentPos = 0
	lx.lastWidth = 0
	lx.buf.Reset()
	defer func() {
		lx.tokens = tokens
	}()
loop:
	for {
		r := lx.next()
		start := lx.currentPos - lx.lastWidth
		switch {
		case r == eof:
			break loop
		case whiteSpace[r]:
		case isIdentStart(r):
			if implicitMul(tokens) {
				tokens = append(tokens, token{typ: tStar, value: "*", position: start})
			}
			tokens = append(tokens, lx.consumeIdentifier())
		case isDigit(r):
			t, err := lx.consumeNumber()
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, t)
		case r == '"' || r == '\'':
			t, err := lx.consumeString(r)
			if err != nil {
				return tokens, err
			}
			tokens = append(tokens, t)
		case r == '*':
			typ, value := tStar, "*"
			if lx.peek() == '*' {
				lx.next()
				typ, value = tPower, "**"
			}
			if lx.peek() == '=' {
				lx.next()
				if typ == tStar {
					typ = tMulAssign
				} else {
					typ = tPowAssign
				}
				value += "="
			}
			tokens = append(tokens, token{typ: typ, value: value, position: start, length: len(value)})
		case r == '=':
			tokens = append(tokens, lx.matchOrElse(r, '=', tEQ, tAssign))
		case r == '!':
			t := lx.matchOrElse(r, '=', tNE, tUnknown)
			if t.typ == tUnknown {
				return tokens, lx.syntaxError("unexpected character '!'")
			}
			tokens = append(tokens, t)
		case r == '<':
			tokens = append(tokens, lx.matchOrElse(r, '=', tLTE, tLT))
		case r == '>':
			tokens = append(tokens, lx.matchOrElse(r, '=', tGTE, tGT))
		default:
			typ, ok := basicTokens[r]
			if !ok {
				return tokens, lx.syntaxError(fmt.Sprintf("unknown character %s", strconv.QuoteRuneToASCII(r)))
			}
			if typ == tLparen && implicitMul(tokens) {
				tokens = append(tokens, token{typ: tStar, value: "*", position: start})
			}
			if assign, ok := assignForms[typ]; ok && lx.peek() == '=' {
				lx.next()
				tokens = append(tokens, token{typ: assign, value: string(r) + "=", position: start, length: 2})
				continue
			}
			tokens = append(tokens, token{typ: typ, value: string(r), position: start, length: 1})
		}
	}
	tokens = append(tokens, token{typ: tEOF, position: len(lx.expression)})
	return tokens, nil
}

func (lx *lexer) syntaxError(msg string) SyntaxError {
	return SyntaxError{
		msg:        msg,
		Expression: lx.expression,
		Offset:     lx.currentPos - lx.lastWidth,
	}
}

// Checks for a two char token, otherwise matches a single character
// token.
func (lx *lexer) matchOrElse(first, second rune, matchedType, singleCharType tokType) token {
	start := lx.currentPos - lx.lastWidth
	if lx.next() == second {
		return token{typ: matchedType, value: string(first) + string(second), position: start, length: 2}
	}
	lx.back()
	return token{typ: singleCharType, value: string(first), position: start, length: 1}
}

func (lx *lexer) consumeIdentifier() token {
	start := lx.currentPos - lx.lastWidth
	for {
		r := lx.next()
		if !isIdentPart(r) {
			if r != eof {
				lx.back()
			}
			break
		}
	}
	value := lx.expression[start:lx.currentPos]
	return token{typ: tIdentifier, value: value, position: start, length: len(value)}
}

// consumeNumber reads digits, an optional fraction and exponent, and a
// literal suffix. Letters that do not form a suffix are left for the
// next token so 2x lexes as 2 * x.
func (lx *lexer) consumeNumber() (token, error) {
	start := lx.currentPos - lx.lastWidth
	lx.skipDigits()
	if lx.peek() == '.' {
		lx.next()
		if !isDigit(lx.peek()) {
			return token{}, SyntaxError{
				msg:        "expected digits after decimal point",
				Expression: lx.expression,
				Offset:     lx.currentPos - 1,
			}
		}
		lx.skipDigits()
	}
	if r := lx.peek(); r == 'e' || r == 'E' {
		mark := lx.currentPos
		lx.next()
		if s := lx.peek(); s == '+' || s == '-' {
			lx.next()
		}
		if isDigit(lx.peek()) {
			lx.skipDigits()
		} else {
			lx.currentPos = mark
		}
	}
	end := lx.currentPos
	for isIdentPart(lx.peek()) {
		lx.next()
	}
	if _, ok := literalSuffixes[strings.ToLower(lx.expression[end:lx.currentPos])]; ok {
		end = lx.currentPos
	}
	lx.currentPos = end
	lx.lastWidth = 0
	value := lx.expression[start:end]
	return token{typ: tNumber, value: value, position: start, length: len(value)}, nil
}

func (lx *lexer) skipDigits() {
	for isDigit(lx.peek()) {
		lx.next()
	}
}

// consumeString reads a quoted string with Go escape sequences.
func (lx *lexer) consumeString(quote rune) (token, error) {
	start := lx.currentPos - lx.lastWidth
	bodyStart := lx.currentPos
	for {
		r := lx.next()
		switch r {
		case eof:
			return token{}, SyntaxError{
				msg:        "unclosed string literal",
				Expression: lx.expression,
				Offset:     start,
			}
		case '\\':
			lx.next()
			continue
		case quote:
		default:
			continue
		}
		break
	}
	body := lx.expression[bodyStart : lx.currentPos-1]
	lx.buf.Reset()
	for len(body) > 0 {
		r, multibyte, tail, err := strconv.UnquoteChar(body, byte(quote))
		if err != nil {
			return token{}, SyntaxError{
				msg:        "invalid escape in string literal",
				Expression: lx.expression,
				Offset:     start,
			}
		}
		if multibyte || r >= utf8.RuneSelf {
			lx.buf.WriteRune(r)
		} else {
			lx.buf.WriteByte(byte(r))
		}
		body = tail
	}
	value := lx.buf.String()
	lx.buf.Reset()
	return token{typ: tString, value: value, position: start, length: lx.currentPos - start}, nil
}
