package parser

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/token"
)

// parsePostfix parses a primary expression followed by any number of
// postfix operations: member access, tuple access, call, array index.
// The loop is iterative, so long chains cost no stack; each step wraps
// the accumulated expression, which is what makes `a.b.c` nest left.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			expr, ok = p.parseAccessExpr(expr)
		case token.LParen:
			expr, ok = p.parseCallExpr(expr)
		case token.LBracket:
			expr, ok = p.parseIndexExpr(expr)
		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

// parseAccessExpr parses what follows a '.'. The integer case is checked
// before the identifier case: `x.0` is a tuple access, never a member
// named "0". Anything else after the dot is an error.
func (p *Parser) parseAccessExpr(target ast.ExprID) (ast.ExprID, bool) {
	dotTok := p.advance() // '.'

	next := p.lx.Peek()
	switch next.Kind {
	case token.IntLit:
		return p.parseTupleAccess(target)

	case token.Ident, token.KwSelf, token.KwBigSelf:
		nameTok := p.advance()
		nameID := p.arenas.Intern(nameTok.Text)
		span := p.arenas.Exprs.Span(target).Cover(nameTok.Span)
		return p.arenas.Exprs.NewMember(span, target, nameID, nameTok.Span), true

	case token.EOF:
		p.errAt(diag.SynInvalidMemberToken, dotTok.Span,
			"expected member name or tuple index after '.'")
		return ast.NoExprID, false

	default:
		// The diagnostic points at the dot itself; the offending token
		// is named in the message.
		p.errAt(diag.SynInvalidMemberToken, dotTok.Span,
			fmt.Sprintf("expected member name or tuple index after '.', found %s", next.Kind))
		return ast.NoExprID, false
	}
}

// parseTupleAccess parses the integer after a '.'. The index must be a
// plain decimal with no type suffix.
func (p *Parser) parseTupleAccess(target ast.ExprID) (ast.ExprID, bool) {
	idxTok := p.advance()

	suffix := p.lx.Peek()
	if suffix.IsTypeKeyword() && suffix.Span.Start == idxTok.Span.End {
		p.errAt(diag.SynInvalidIndex, idxTok.Span.Cover(suffix.Span),
			"tuple index must not carry a type suffix")
		return ast.NoExprID, false
	}

	value, err := strconv.ParseUint(idxTok.Text, 10, 64)
	if err != nil {
		p.errAt(diag.SynInvalidIndex, idxTok.Span,
			fmt.Sprintf("invalid tuple index %q", idxTok.Text))
		return ast.NoExprID, false
	}
	index, err := safecast.Conv[uint32](value)
	if err != nil {
		p.errAt(diag.SynInvalidIndex, idxTok.Span,
			fmt.Sprintf("tuple index %q out of range", idxTok.Text))
		return ast.NoExprID, false
	}

	span := p.arenas.Exprs.Span(target).Cover(idxTok.Span)
	return p.arenas.Exprs.NewTupleIndex(span, target, index), true
}

// parseCallExpr parses `expr(args...)`. The argument list does not allow
// a trailing comma.
func (p *Parser) parseCallExpr(callee ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '('

	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)

			if !p.at(token.Comma) {
				break
			}
			commaTok := p.advance()
			if p.at(token.RParen) {
				p.errAt(diag.SynUnexpectedToken, commaTok.Span,
					"unexpected trailing comma in argument list")
				return ast.NoExprID, false
			}
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnterminatedGroup, "expected ')' after arguments")
	if !ok {
		return ast.NoExprID, false
	}

	span := p.arenas.Exprs.Span(callee).Cover(closeTok.Span)
	return p.arenas.Exprs.NewCall(span, callee, args), true
}

// parseIndexExpr parses `expr[index]`.
func (p *Parser) parseIndexExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '['

	index, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnterminatedGroup, "expected ']' after index")
	if !ok {
		return ast.NoExprID, false
	}

	span := p.arenas.Exprs.Span(target).Cover(closeTok.Span)
	return p.arenas.Exprs.NewIndex(span, target, index), true
}
