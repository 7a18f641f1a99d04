package parser

import (
	"zirc/internal/ast"
	"zirc/internal/token"
)

// Binary operator precedence. Higher binds tighter. The ternary
// conditional sits below all of these and is handled separately.
const (
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * /
	precExponent       = 7 // ** (right associative)
)

// binaryPrec returns the precedence of a binary operator token and
// whether it is right associative. Non-operators return (-1, false).
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.Eq, token.NotEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash:
		return precMultiplicative, false
	case token.Exp:
		return precExponent, true
	default:
		return -1, false
	}
}

func tokenToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.OrOr:
		return ast.ExprBinaryOr
	case token.AndAnd:
		return ast.ExprBinaryAnd
	case token.Eq:
		return ast.ExprBinaryEq
	case token.NotEq:
		return ast.ExprBinaryNotEq
	case token.Lt:
		return ast.ExprBinaryLess
	case token.LtEq:
		return ast.ExprBinaryLessEq
	case token.Gt:
		return ast.ExprBinaryGreater
	case token.GtEq:
		return ast.ExprBinaryGreaterEq
	case token.Plus:
		return ast.ExprBinaryAdd
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	case token.Exp:
		return ast.ExprBinaryPow
	default:
		panic("parser: not a binary operator token")
	}
}

// suffixType maps an integer literal suffix keyword to its TypeRef.
func suffixType(kind token.Kind) ast.TypeRef {
	switch kind {
	case token.KwU8:
		return ast.TypeU8
	case token.KwU16:
		return ast.TypeU16
	case token.KwU32:
		return ast.TypeU32
	case token.KwU64:
		return ast.TypeU64
	case token.KwU128:
		return ast.TypeU128
	case token.KwI8:
		return ast.TypeI8
	case token.KwI16:
		return ast.TypeI16
	case token.KwI32:
		return ast.TypeI32
	case token.KwI64:
		return ast.TypeI64
	case token.KwI128:
		return ast.TypeI128
	default:
		return ast.TypeUnresolved
	}
}
