package lexer

import (
	"zirc/internal/token"
)

// scanNumber scans a decimal integer literal: a plain run of digits.
// The language has no floats, bases, or digit separators; a type suffix
// such as `42u8` is left to the parser as an adjacent type-keyword token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.IntLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
