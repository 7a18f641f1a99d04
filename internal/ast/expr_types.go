package ast

import (
	"zirc/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal value expression.
	ExprLit
	// ExprMember represents circuit member access: expr.name.
	ExprMember
	// ExprTupleIndex represents positional tuple access: expr.0.
	ExprTupleIndex
	// ExprIndex represents array indexing: expr[index].
	ExprIndex
	// ExprCall represents a function call: expr(args...).
	ExprCall
	// ExprUnary represents a prefix unary expression.
	ExprUnary
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprTernary represents cond ? then : else.
	ExprTernary
	// ExprTuple represents a tuple literal (a, b).
	ExprTuple
)

var exprKindNames = [...]string{
	ExprIdent:      "Identifier",
	ExprLit:        "Value",
	ExprMember:     "CircuitMemberAccess",
	ExprTupleIndex: "TupleAccess",
	ExprIndex:      "ArrayAccess",
	ExprCall:       "Call",
	ExprUnary:      "Unary",
	ExprBinary:     "Binary",
	ExprTernary:    "Ternary",
	ExprTuple:      "Tuple",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Expr is an expression node header. Kind-specific fields live in payload
// arenas; children are owned exclusively by their parent, so the result of
// a parse is a strict rooted tree.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind enumerates literal shapes.
type ExprLitKind uint8

const (
	// LitImplicit is an integer literal whose concrete type is deferred
	// to the inference stage: `42`.
	LitImplicit ExprLitKind = iota
	// LitInteger is a suffixed integer literal: `42u8`.
	LitInteger
	// LitField is a field element literal: `42field`.
	LitField
	// LitGroup is a group element literal: `42group`.
	LitGroup
	// LitBool is `true` or `false`.
	LitBool
	// LitString is a string literal.
	LitString
	// LitChar is a char literal.
	LitChar
)

var litKindNames = [...]string{
	LitImplicit: "Implicit",
	LitInteger:  "Integer",
	LitField:    "Field",
	LitGroup:    "Group",
	LitBool:     "Boolean",
	LitString:   "String",
	LitChar:     "Char",
}

func (k ExprLitKind) String() string {
	if int(k) < len(litKindNames) {
		return litKindNames[k]
	}
	return "Unknown"
}

// ExprUnaryOp enumerates prefix operators.
type ExprUnaryOp uint8

const (
	// ExprUnaryNot is logical negation (!).
	ExprUnaryNot ExprUnaryOp = iota
	// ExprUnaryNegate is arithmetic negation (-).
	ExprUnaryNegate
)

func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryNot:
		return "!"
	case ExprUnaryNegate:
		return "-"
	}
	return "?"
}

// ExprBinaryOp enumerates binary operators.
type ExprBinaryOp uint8

const (
	// ExprBinaryOr represents logical or (||).
	ExprBinaryOr ExprBinaryOp = iota
	// ExprBinaryAnd represents logical and (&&).
	ExprBinaryAnd
	// ExprBinaryEq represents equality (==).
	ExprBinaryEq
	// ExprBinaryNotEq represents inequality (!=).
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
	// ExprBinaryAdd represents addition (+).
	ExprBinaryAdd
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	// ExprBinaryPow represents exponentiation (**), right associative.
	ExprBinaryPow
)

var binaryOpNames = [...]string{
	ExprBinaryOr:        "||",
	ExprBinaryAnd:       "&&",
	ExprBinaryEq:        "==",
	ExprBinaryNotEq:     "!=",
	ExprBinaryLess:      "<",
	ExprBinaryLessEq:    "<=",
	ExprBinaryGreater:   ">",
	ExprBinaryGreaterEq: ">=",
	ExprBinaryAdd:       "+",
	ExprBinarySub:       "-",
	ExprBinaryMul:       "*",
	ExprBinaryDiv:       "/",
	ExprBinaryPow:       "**",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// Payload data, one struct per kind.

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID // literal text without any suffix
	Type  TypeRef         // suffix for LitInteger, TypeUnresolved otherwise
}

// ExprMemberData is circuit member access. Type is the annotation slot for
// the semantic stage and stays TypeUnresolved for the whole parse.
type ExprMemberData struct {
	Target   ExprID
	Name     source.StringID
	NameSpan source.Span
	Type     TypeRef
}

type ExprTupleIndexData struct {
	Target ExprID
	Index  uint32
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprTernaryData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

type ExprTupleData struct {
	Elems []ExprID
}
