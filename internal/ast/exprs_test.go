package ast

import (
	"testing"

	"zirc/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestExprsIdentRoundTrip(t *testing.T) {
	b := NewBuilder(Hints{})
	name := b.Intern("x")
	id := b.Exprs.NewIdent(sp(0, 1), name)
	if !id.IsValid() {
		t.Fatalf("NewIdent returned invalid id")
	}
	data, ok := b.Exprs.Ident(id)
	if !ok {
		t.Fatalf("Ident accessor failed")
	}
	if data.Name != name {
		t.Fatalf("name = %d, want %d", data.Name, name)
	}
	if got := b.Exprs.Span(id); got != sp(0, 1) {
		t.Fatalf("span = %v, want %v", got, sp(0, 1))
	}
}

func TestExprsMemberChain(t *testing.T) {
	b := NewBuilder(Hints{})
	x := b.Exprs.NewIdent(sp(0, 1), b.Intern("x"))
	m1 := b.Exprs.NewMember(sp(0, 3), x, b.Intern("y"), sp(2, 3))
	m2 := b.Exprs.NewMember(sp(0, 5), m1, b.Intern("z"), sp(4, 5))

	outer, ok := b.Exprs.Member(m2)
	if !ok {
		t.Fatalf("Member accessor failed on outer node")
	}
	if outer.Target != m1 {
		t.Fatalf("outer target = %d, want %d", outer.Target, m1)
	}
	if outer.Type != TypeUnresolved {
		t.Fatalf("fresh member carries type %v, want unresolved", outer.Type)
	}
	inner, ok := b.Exprs.Member(outer.Target)
	if !ok {
		t.Fatalf("Member accessor failed on inner node")
	}
	if inner.Target != x {
		t.Fatalf("inner target = %d, want %d", inner.Target, x)
	}
	if b.Lookup(inner.Name) != "y" {
		t.Fatalf("inner name = %q, want %q", b.Lookup(inner.Name), "y")
	}
}

func TestExprsAccessorKindMismatch(t *testing.T) {
	b := NewBuilder(Hints{})
	x := b.Exprs.NewIdent(sp(0, 1), b.Intern("x"))
	if _, ok := b.Exprs.Call(x); ok {
		t.Fatalf("Call accessor accepted an identifier node")
	}
	if _, ok := b.Exprs.Member(x); ok {
		t.Fatalf("Member accessor accepted an identifier node")
	}
}

func TestExprsCallArgsOrder(t *testing.T) {
	b := NewBuilder(Hints{})
	callee := b.Exprs.NewIdent(sp(0, 1), b.Intern("f"))
	a1 := b.Exprs.NewLiteral(sp(2, 3), LitImplicit, b.Intern("1"), TypeUnresolved)
	a2 := b.Exprs.NewLiteral(sp(5, 6), LitImplicit, b.Intern("2"), TypeUnresolved)
	call := b.Exprs.NewCall(sp(0, 7), callee, []ExprID{a1, a2})

	data, ok := b.Exprs.Call(call)
	if !ok {
		t.Fatalf("Call accessor failed")
	}
	if len(data.Args) != 2 || data.Args[0] != a1 || data.Args[1] != a2 {
		t.Fatalf("args = %v, want [%d %d]", data.Args, a1, a2)
	}
}

func TestExprsEmptyCall(t *testing.T) {
	b := NewBuilder(Hints{})
	callee := b.Exprs.NewIdent(sp(0, 1), b.Intern("f"))
	call := b.Exprs.NewCall(sp(0, 3), callee, nil)
	data, ok := b.Exprs.Call(call)
	if !ok {
		t.Fatalf("Call accessor failed")
	}
	if len(data.Args) != 0 {
		t.Fatalf("args = %v, want empty", data.Args)
	}
}

func TestExprsInvalidTargetPanics(t *testing.T) {
	b := NewBuilder(Hints{})
	defer func() {
		if recover() == nil {
			t.Fatalf("NewMember with NoExprID target did not panic")
		}
	}()
	b.Exprs.NewMember(sp(0, 3), NoExprID, b.Intern("y"), sp(2, 3))
}

func TestExprsLiteralSuffix(t *testing.T) {
	b := NewBuilder(Hints{})
	lit := b.Exprs.NewLiteral(sp(0, 4), LitInteger, b.Intern("42"), TypeU8)
	data, ok := b.Exprs.Literal(lit)
	if !ok {
		t.Fatalf("Literal accessor failed")
	}
	if data.Type != TypeU8 {
		t.Fatalf("type = %v, want %v", data.Type, TypeU8)
	}
	if !data.Type.IsResolved() {
		t.Fatalf("suffixed integer literal should carry a resolved type")
	}
}

func TestExprsTupleIndex(t *testing.T) {
	b := NewBuilder(Hints{})
	x := b.Exprs.NewIdent(sp(0, 1), b.Intern("x"))
	ti := b.Exprs.NewTupleIndex(sp(0, 3), x, 0)
	data, ok := b.Exprs.TupleIndex(ti)
	if !ok {
		t.Fatalf("TupleIndex accessor failed")
	}
	if data.Index != 0 || data.Target != x {
		t.Fatalf("tuple index data = %+v", data)
	}
}
