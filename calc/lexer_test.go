package calc

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src  string
		want []tokType
	}{
		{"1 + 2", []tokType{tNumber, tPlus, tNumber, tEOF}},
		{"a **= 2", []tokType{tIdentifier, tPowAssign, tNumber, tEOF}},
		{"a *= 2", []tokType{tIdentifier, tMulAssign, tNumber, tEOF}},
		{"x^2", []tokType{tIdentifier, tPower, tNumber, tEOF}},
		{"a<=b != c", []tokType{tIdentifier, tLTE, tIdentifier, tNE, tIdentifier, tEOF}},
		{"2x", []tokType{tNumber, tStar, tIdentifier, tEOF}},
		{"2(1)", []tokType{tNumber, tStar, tLparen, tNumber, tRparen, tEOF}},
		{"f(1)", []tokType{tIdentifier, tLparen, tNumber, tRparen, tEOF}},
		{"2ull", []tokType{tNumber, tEOF}},
		{"2l5", []tokType{tNumber, tStar, tIdentifier, tEOF}},
		{"1e5", []tokType{tNumber, tEOF}},
		{"2e", []tokType{tNumber, tStar, tIdentifier, tEOF}},
		{"[1, 'a']", []tokType{tLbracket, tNumber, tComma, tString, tRbracket, tEOF}},
	}
	lx := newLexer()
	for _, tc := range cases {
		tokens, err := lx.tokenize(tc.src)
		if err != nil {
			t.Fatalf("tokenize(%q): %v", tc.src, err)
		}
		if len(tokens) != len(tc.want) {
			t.Fatalf("tokenize(%q) = %v", tc.src, tokens)
		}
		for i, tok := range tokens {
			if tok.typ != tc.want[i] {
				t.Fatalf("tokenize(%q)[%d] = %s, want %s", tc.src, i, tok.typ, tc.want[i])
			}
		}
		lx.reset()
	}
}

func TestTokenValues(t *testing.T) {
	lx := newLexer()
	tokens, err := lx.tokenize(`"héllo!" 12.5e-3f`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if tokens[0].value != "héllo!" {
		t.Fatalf("string value = %q", tokens[0].value)
	}
	if tokens[1].value != "12.5e-3f" || tokens[1].position != 10 {
		t.Fatalf("number token = %s", tokens[1])
	}
	if _, err := lx.tokenize(`'bad \q'`); err == nil || !strings.Contains(err.Error(), "escape") {
		t.Fatalf("bad escape: %v", err)
	}
}

func TestParseTree(t *testing.T) {
	p := newParser()
	root, err := p.Parse("a = -b ** 2 + f(1, [2])")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.typ != astAssign || root.name != "a" {
		t.Fatalf("root = %s", root)
	}
	sum := root.children[0]
	if sum.typ != astBinary || sum.children[0].typ != astNegate || sum.children[1].typ != astFunctionCall {
		t.Fatalf("tree =\n%s", root)
	}
	if pow := sum.children[0].children[0]; pow.typ != astBinary {
		t.Fatalf("negation should wrap the power:\n%s", root)
	}
	if !strings.Contains(root.String(), "FunctionCall") {
		t.Fatalf("pretty print = %s", root.String())
	}
}
