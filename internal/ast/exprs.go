package ast

import (
	"zirc/internal/source"
)

// Exprs manages allocation of expression nodes. Constructors are the only
// way to create nodes: each one takes a complete set of sub-fields and the
// already-merged span, so partial nodes never exist.
type Exprs struct {
	Arena        *Arena[Expr]
	Idents       *Arena[ExprIdentData]
	Literals     *Arena[ExprLiteralData]
	Members      *Arena[ExprMemberData]
	TupleIndices *Arena[ExprTupleIndexData]
	Indices      *Arena[ExprIndexData]
	Calls        *Arena[ExprCallData]
	Unaries      *Arena[ExprUnaryData]
	Binaries     *Arena[ExprBinaryData]
	Ternaries    *Arena[ExprTernaryData]
	Tuples       *Arena[ExprTupleData]
}

// NewExprs creates an Exprs with per-kind arenas preallocated to capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		Idents:       NewArena[ExprIdentData](capHint),
		Literals:     NewArena[ExprLiteralData](capHint),
		Members:      NewArena[ExprMemberData](capHint),
		TupleIndices: NewArena[ExprTupleIndexData](capHint),
		Indices:      NewArena[ExprIndexData](capHint),
		Calls:        NewArena[ExprCallData](capHint),
		Unaries:      NewArena[ExprUnaryData](capHint),
		Binaries:     NewArena[ExprBinaryData](capHint),
		Ternaries:    NewArena[ExprTernaryData](capHint),
		Tuples:       NewArena[ExprTupleData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression header for the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Span returns the span of an expression.
func (e *Exprs) Span(id ExprID) source.Span {
	return e.Get(id).Span
}

// Len returns the number of allocated expressions.
func (e *Exprs) Len() uint32 {
	return e.Arena.Len()
}

func mustValid(id ExprID, what string) {
	if !id.IsValid() {
		panic("ast: " + what + " is NoExprID")
	}
}

// NewIdent creates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for id.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a literal expression. For LitInteger the suffix type
// must be one of the integer TypeRefs; every other kind carries
// TypeUnresolved.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID, typ TypeRef) ExprID {
	if kind != LitInteger && typ != TypeUnresolved {
		panic("ast: literal suffix on non-integer literal")
	}
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value, Type: typ})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for id.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewMember creates a circuit member access node. The type annotation is
// always created unresolved; the parser has no business filling it.
func (e *Exprs) NewMember(span source.Span, target ExprID, name source.StringID, nameSpan source.Span) ExprID {
	mustValid(target, "member target")
	payload := e.Members.Allocate(ExprMemberData{
		Target:   target,
		Name:     name,
		NameSpan: nameSpan,
		Type:     TypeUnresolved,
	})
	return e.new(ExprMember, span, PayloadID(payload))
}

// Member returns the member access data for id.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

// NewTupleIndex creates a positional tuple access node.
func (e *Exprs) NewTupleIndex(span source.Span, target ExprID, index uint32) ExprID {
	mustValid(target, "tuple access target")
	payload := e.TupleIndices.Allocate(ExprTupleIndexData{Target: target, Index: index})
	return e.new(ExprTupleIndex, span, PayloadID(payload))
}

// TupleIndex returns the tuple access data for id.
func (e *Exprs) TupleIndex(id ExprID) (*ExprTupleIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTupleIndex {
		return nil, false
	}
	return e.TupleIndices.Get(uint32(expr.Payload)), true
}

// NewIndex creates an array access node.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	mustValid(target, "array access target")
	mustValid(index, "array access index")
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the array access data for id.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewCall creates a call node. Args keeps source order; an empty argument
// list is valid and distinct from nil only in capacity.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	mustValid(callee, "callee")
	for _, a := range args {
		mustValid(a, "call argument")
	}
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for id.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewUnary creates a prefix unary node.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	mustValid(operand, "unary operand")
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for id.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary node.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	mustValid(left, "binary left")
	mustValid(right, "binary right")
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for id.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewTernary creates a conditional node.
func (e *Exprs) NewTernary(span source.Span, cond, then, els ExprID) ExprID {
	mustValid(cond, "ternary condition")
	mustValid(then, "ternary then")
	mustValid(els, "ternary else")
	payload := e.Ternaries.Allocate(ExprTernaryData{Cond: cond, Then: then, Else: els})
	return e.new(ExprTernary, span, PayloadID(payload))
}

// Ternary returns the ternary data for id.
func (e *Exprs) Ternary(id ExprID) (*ExprTernaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTernary {
		return nil, false
	}
	return e.Ternaries.Get(uint32(expr.Payload)), true
}

// NewTuple creates a tuple literal node.
func (e *Exprs) NewTuple(span source.Span, elems []ExprID) ExprID {
	for _, el := range elems {
		mustValid(el, "tuple element")
	}
	payload := e.Tuples.Allocate(ExprTupleData{Elems: elems})
	return e.new(ExprTuple, span, PayloadID(payload))
}

// Tuple returns the tuple data for id.
func (e *Exprs) Tuple(id ExprID) (*ExprTupleData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTuple {
		return nil, false
	}
	return e.Tuples.Get(uint32(expr.Payload)), true
}
