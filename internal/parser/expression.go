package parser

import (
	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/token"
)

// parseExpr is the expression entry point: a ternary conditional or
// anything below it. Every recursive re-entry goes through here or
// parseUnary, which is where nesting depth is enforced.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	if !p.enter() {
		return ast.NoExprID, false
	}
	defer p.leave()
	return p.parseTernary()
}

// parseTernary parses `cond ? then : else`, right associative.
func (p *Parser) parseTernary() (ast.ExprID, bool) {
	cond, ok := p.parseBinary(0)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Question) {
		return cond, true
	}
	p.advance() // '?'

	then, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression"); !ok {
		return ast.NoExprID, false
	}
	els, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	span := p.arenas.Exprs.Span(cond).Cover(p.arenas.Exprs.Span(els))
	return p.arenas.Exprs.NewTernary(span, cond, then, els), true
}

// parseBinary is precedence climbing over the operator table. minPrec
// is the lowest precedence this call is allowed to consume.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		opKind := p.lx.Peek().Kind
		prec, rightAssoc := binaryPrec(opKind)
		if prec < 0 || prec < minPrec {
			return left, true
		}
		p.advance() // operator

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, ok := p.parseBinary(nextMin)
		if !ok {
			return ast.NoExprID, false
		}

		span := p.arenas.Exprs.Span(left).Cover(p.arenas.Exprs.Span(right))
		left = p.arenas.Exprs.NewBinary(span, tokenToBinaryOp(opKind), left, right)
	}
}

// parseUnary parses prefix `!` and `-` chains, then hands off to the
// postfix level.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	var op ast.ExprUnaryOp
	switch p.lx.Peek().Kind {
	case token.Not:
		op = ast.ExprUnaryNot
	case token.Minus:
		op = ast.ExprUnaryNegate
	default:
		return p.parsePostfix()
	}

	if !p.enter() {
		return ast.NoExprID, false
	}
	defer p.leave()

	opTok := p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	span := opTok.Span.Cover(p.arenas.Exprs.Span(operand))
	return p.arenas.Exprs.NewUnary(span, op, operand), true
}
