package parser

import (
	"fmt"

	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/token"
)

// parsePrimary parses an atom: identifier, literal, or a parenthesized
// expression / tuple.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Ident, tok.Kind == token.KwSelf, tok.Kind == token.KwBigSelf, tok.Kind == token.KwInput:
		p.advance()
		name := p.arenas.Intern(tok.Text)
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case tok.Kind == token.KwTrue, tok.Kind == token.KwFalse:
		p.advance()
		value := p.arenas.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitBool, value, ast.TypeUnresolved), true

	case tok.Kind == token.IntLit:
		return p.parseIntegerLiteral()

	case tok.Kind == token.StringLit:
		p.advance()
		value := p.arenas.Intern(unquote(tok.Text))
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitString, value, ast.TypeUnresolved), true

	case tok.Kind == token.CharLit:
		p.advance()
		value := p.arenas.Intern(unquote(tok.Text))
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitChar, value, ast.TypeUnresolved), true

	case tok.Kind == token.LParen:
		return p.parseParenOrTuple()

	default:
		p.err(diag.SynUnexpectedToken, fmt.Sprintf("expected expression, found %s", tok.Kind))
		return ast.NoExprID, false
	}
}

// parseIntegerLiteral parses a decimal literal and its optional type
// suffix. The lexer splits `42u8` into IntLit("42") then KwU8; the two
// tokens belong together only when they touch byte to byte.
func (p *Parser) parseIntegerLiteral() (ast.ExprID, bool) {
	intTok := p.advance()
	value := p.arenas.Intern(intTok.Text)

	suffix := p.lx.Peek()
	if !suffix.IsTypeKeyword() || suffix.Kind == token.KwBool || suffix.Kind == token.KwAddress || suffix.Kind == token.KwChar {
		return p.arenas.Exprs.NewLiteral(intTok.Span, ast.LitImplicit, value, ast.TypeUnresolved), true
	}
	if suffix.Span.Start != intTok.Span.End {
		p.errAt(diag.SynLiteralSuffixGap, suffix.Span,
			fmt.Sprintf("type suffix %s must immediately follow the literal", suffix.Kind))
		return ast.NoExprID, false
	}

	p.advance() // suffix keyword
	span := intTok.Span.Cover(suffix.Span)
	switch suffix.Kind {
	case token.KwField:
		return p.arenas.Exprs.NewLiteral(span, ast.LitField, value, ast.TypeUnresolved), true
	case token.KwGroup:
		return p.arenas.Exprs.NewLiteral(span, ast.LitGroup, value, ast.TypeUnresolved), true
	default:
		return p.arenas.Exprs.NewLiteral(span, ast.LitInteger, value, suffixType(suffix.Kind)), true
	}
}

// parseParenOrTuple parses '(' ... ')'. A single element with no comma
// is plain grouping and yields the inner expression unchanged; anything
// else is a tuple. `(a,)` is a one-element tuple.
func (p *Parser) parseParenOrTuple() (ast.ExprID, bool) {
	openTok := p.advance() // '('

	if p.at(token.RParen) {
		closeTok := p.advance()
		return p.arenas.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), nil), true
	}

	var elems []ast.ExprID
	sawComma := false
	for {
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)

		if !p.at(token.Comma) {
			break
		}
		p.advance() // ','
		sawComma = true
		if p.at(token.RParen) {
			break
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnterminatedGroup, "expected ')' to close the group")
	if !ok {
		return ast.NoExprID, false
	}

	if len(elems) == 1 && !sawComma {
		return elems[0], true
	}
	return p.arenas.Exprs.NewTuple(openTok.Span.Cover(closeTok.Span), elems), true
}

func unquote(text string) string {
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}
