package token

import (
	"zirc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer, boolean, string, or
// char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, CharLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIntType reports whether the token names a fixed-width integer type
// usable as a literal suffix (u8..u128, i8..i128).
func (t Token) IsIntType() bool {
	switch t.Kind {
	case KwU8, KwU16, KwU32, KwU64, KwU128, KwI8, KwI16, KwI32, KwI64, KwI128:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token names a builtin type. Type
// keywords double as identifiers in expression position (`u8::MAX`).
func (t Token) IsTypeKeyword() bool {
	if t.IsIntType() {
		return true
	}
	switch t.Kind {
	case KwField, KwGroup, KwBool, KwAddress, KwChar:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwCircuit, KwFunction, KwLet, KwConst, KwMut, KwReturn, KwIf, KwElse,
		KwFor, KwIn, KwImport, KwAs, KwStatic, KwTrue, KwFalse, KwInput,
		KwSelf, KwBigSelf:
		return true
	default:
		return t.IsTypeKeyword()
	}
}
