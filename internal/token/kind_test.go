package token_test

import (
	"testing"

	"zirc/internal/source"
	"zirc/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.StringLit, token.CharLit,
		token.KwTrue, token.KwFalse,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsIntType(t *testing.T) {
	ints := []token.Kind{
		token.KwU8, token.KwU16, token.KwU32, token.KwU64, token.KwU128,
		token.KwI8, token.KwI16, token.KwI32, token.KwI64, token.KwI128,
	}
	for _, k := range ints {
		if !tok(k).IsIntType() {
			t.Fatalf("%v should be an int type", k)
		}
	}
	if tok(token.KwField).IsIntType() {
		t.Fatal("field is not an int type")
	}
	if !tok(token.KwField).IsTypeKeyword() {
		t.Fatal("field should be a type keyword")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Dot, "'.'"},
		{token.IntLit, "integer literal"},
		{token.EOF, "end of input"},
		{token.Ident, "identifier"},
		{token.Exp, "'**'"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
