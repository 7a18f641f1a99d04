package parser

import (
	"strings"
	"testing"

	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/lexer"
	"zirc/internal/source"
)

func TestMemberAccessSimple(t *testing.T) {
	res := mustParse(t, "x.y")

	member, ok := res.arenas.Exprs.Member(res.expr)
	if !ok {
		t.Fatalf("got %s, want member access", res.arenas.Exprs.Get(res.expr).Kind)
	}
	if got := res.arenas.Lookup(member.Name); got != "y" {
		t.Errorf("member name = %q, want %q", got, "y")
	}
	target, ok := res.arenas.Exprs.Ident(member.Target)
	if !ok {
		t.Fatalf("target is %s, want identifier", res.arenas.Exprs.Get(member.Target).Kind)
	}
	if got := res.arenas.Lookup(target.Name); got != "x" {
		t.Errorf("target name = %q, want %q", got, "x")
	}

	loc := res.loc(res.expr)
	if loc.ColStart != 1 || loc.ColStop != 4 {
		t.Errorf("cols = %d..%d, want 1..4", loc.ColStart, loc.ColStop)
	}
	if loc.Content != "x.y" {
		t.Errorf("content = %q, want %q", loc.Content, "x.y")
	}
}

func TestMemberAccessCasePreserved(t *testing.T) {
	res := mustParse(t, "X.Y")
	member, ok := res.arenas.Exprs.Member(res.expr)
	if !ok {
		t.Fatalf("want member access")
	}
	if got := res.arenas.Lookup(member.Name); got != "Y" {
		t.Errorf("member name = %q, want %q", got, "Y")
	}
	target, _ := res.arenas.Exprs.Ident(member.Target)
	if got := res.arenas.Lookup(target.Name); got != "X" {
		t.Errorf("target name = %q, want %q", got, "X")
	}
}

func TestMemberChainNestsLeft(t *testing.T) {
	res := mustParse(t, "x.y.z")

	outer, ok := res.arenas.Exprs.Member(res.expr)
	if !ok {
		t.Fatalf("want member access at the top")
	}
	if got := res.arenas.Lookup(outer.Name); got != "z" {
		t.Errorf("outer name = %q, want %q", got, "z")
	}
	inner, ok := res.arenas.Exprs.Member(outer.Target)
	if !ok {
		t.Fatalf("outer target is %s, want member access", res.arenas.Exprs.Get(outer.Target).Kind)
	}
	if got := res.arenas.Lookup(inner.Name); got != "y" {
		t.Errorf("inner name = %q, want %q", got, "y")
	}
	if _, ok := res.arenas.Exprs.Ident(inner.Target); !ok {
		t.Fatalf("innermost target should be an identifier")
	}

	loc := res.loc(res.expr)
	if loc.ColStart != 1 || loc.ColStop != 6 {
		t.Errorf("cols = %d..%d, want 1..6", loc.ColStart, loc.ColStop)
	}
	innerLoc := res.loc(outer.Target)
	if innerLoc.ColStart != 1 || innerLoc.ColStop != 4 {
		t.Errorf("inner cols = %d..%d, want 1..4", innerLoc.ColStart, innerLoc.ColStop)
	}
}

func TestEmptyCallOnMember(t *testing.T) {
	res := mustParse(t, "x.y()")

	call, ok := res.arenas.Exprs.Call(res.expr)
	if !ok {
		t.Fatalf("want call at the top")
	}
	if len(call.Args) != 0 {
		t.Errorf("args = %d, want 0", len(call.Args))
	}
	if _, ok := res.arenas.Exprs.Member(call.Callee); !ok {
		t.Fatalf("callee should be a member access")
	}

	loc := res.loc(res.expr)
	if loc.ColStart != 1 || loc.ColStop != 6 {
		t.Errorf("cols = %d..%d, want 1..6", loc.ColStart, loc.ColStop)
	}
	if loc.Content != "x.y()" {
		t.Errorf("content = %q, want %q", loc.Content, "x.y()")
	}
}

func TestTupleAccessOnMember(t *testing.T) {
	res := mustParse(t, "x.y.0")

	tup, ok := res.arenas.Exprs.TupleIndex(res.expr)
	if !ok {
		t.Fatalf("got %s, want tuple access", res.arenas.Exprs.Get(res.expr).Kind)
	}
	if tup.Index != 0 {
		t.Errorf("index = %d, want 0", tup.Index)
	}
	if _, ok := res.arenas.Exprs.Member(tup.Target); !ok {
		t.Fatalf("tuple access target should be a member access")
	}

	loc := res.loc(res.expr)
	if loc.ColStart != 1 || loc.ColStop != 6 {
		t.Errorf("cols = %d..%d, want 1..6", loc.ColStart, loc.ColStop)
	}
}

func TestArrayAccessOnMember(t *testing.T) {
	res := mustParse(t, "x.y[1]")

	idx, ok := res.arenas.Exprs.Index(res.expr)
	if !ok {
		t.Fatalf("got %s, want array access", res.arenas.Exprs.Get(res.expr).Kind)
	}
	if _, ok := res.arenas.Exprs.Member(idx.Target); !ok {
		t.Fatalf("array access target should be a member access")
	}
	lit, ok := res.arenas.Exprs.Literal(idx.Index)
	if !ok || lit.Kind != ast.LitImplicit {
		t.Fatalf("index should be an implicit integer literal")
	}

	loc := res.loc(res.expr)
	if loc.ColStart != 1 || loc.ColStop != 7 {
		t.Errorf("cols = %d..%d, want 1..7", loc.ColStart, loc.ColStop)
	}
}

func TestDanglingDot(t *testing.T) {
	res := mustFail(t, "x.", diag.SynInvalidMemberToken)
	for _, d := range res.bag.Items() {
		if d.Code != diag.SynInvalidMemberToken {
			continue
		}
		loc := res.fs.Describe(d.Primary)
		if loc.LineStart != 1 || loc.ColStart != 2 {
			t.Errorf("error at %d:%d, want 1:2", loc.LineStart, loc.ColStart)
		}
	}
}

func TestInvalidMemberToken(t *testing.T) {
	mustFail(t, "x.+", diag.SynInvalidMemberToken)
	mustFail(t, "x.(", diag.SynInvalidMemberToken)
	mustFail(t, "x.]", diag.SynInvalidMemberToken)
}

func TestTupleIndexBeforeIdentifier(t *testing.T) {
	// '.0' must never parse as a member named "0".
	res := mustParse(t, "pair.0")
	if _, ok := res.arenas.Exprs.TupleIndex(res.expr); !ok {
		t.Fatalf("got %s, want tuple access", res.arenas.Exprs.Get(res.expr).Kind)
	}
}

func TestTupleIndexRejectsSuffix(t *testing.T) {
	mustFail(t, "x.0u8", diag.SynInvalidIndex)
}

func TestTupleIndexOutOfRange(t *testing.T) {
	mustFail(t, "x.99999999999999999999", diag.SynInvalidIndex)
	mustFail(t, "x.4294967296", diag.SynInvalidIndex)
}

func TestCallArguments(t *testing.T) {
	res := mustParse(t, "f(a, b, 1)")
	call, ok := res.arenas.Exprs.Call(res.expr)
	if !ok {
		t.Fatalf("want call")
	}
	if len(call.Args) != 3 {
		t.Fatalf("args = %d, want 3", len(call.Args))
	}
}

func TestCallTrailingComma(t *testing.T) {
	mustFail(t, "f(a,)", diag.SynUnexpectedToken)
}

func TestUnterminatedGroups(t *testing.T) {
	mustFail(t, "f(a", diag.SynUnterminatedGroup)
	mustFail(t, "a[1", diag.SynUnterminatedGroup)
	mustFail(t, "(a + b", diag.SynUnterminatedGroup)
}

func TestMixedPostfixChain(t *testing.T) {
	res := mustParse(t, "f(x).y[0].1")

	tup, ok := res.arenas.Exprs.TupleIndex(res.expr)
	if !ok {
		t.Fatalf("want tuple access at the top")
	}
	if tup.Index != 1 {
		t.Errorf("index = %d, want 1", tup.Index)
	}
	idx, ok := res.arenas.Exprs.Index(tup.Target)
	if !ok {
		t.Fatalf("want array access below tuple access")
	}
	member, ok := res.arenas.Exprs.Member(idx.Target)
	if !ok {
		t.Fatalf("want member access below array access")
	}
	if _, ok := res.arenas.Exprs.Call(member.Target); !ok {
		t.Fatalf("want call at the bottom of the chain")
	}
}

func TestSpanContentInvariant(t *testing.T) {
	inputs := []string{
		"x.y",
		"x.y.z",
		"x.y()",
		"x.y.0",
		"x.y[1]",
		"f(a, b)",
		"a + b * c",
		"(a, b)",
		"!flag",
		"cond ? a : b",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			res := mustParse(t, input)
			loc := res.loc(res.expr)
			if loc.Content != input {
				t.Errorf("content = %q, want %q", loc.Content, input)
			}
		})
	}
}

func TestBinaryPrecedence(t *testing.T) {
	res := mustParse(t, "a + b * c")
	add, ok := res.arenas.Exprs.Binary(res.expr)
	if !ok || add.Op != ast.ExprBinaryAdd {
		t.Fatalf("want '+' at the top")
	}
	mul, ok := res.arenas.Exprs.Binary(add.Right)
	if !ok || mul.Op != ast.ExprBinaryMul {
		t.Fatalf("want '*' on the right of '+'")
	}
}

func TestBinaryLeftAssociative(t *testing.T) {
	res := mustParse(t, "a - b - c")
	outer, ok := res.arenas.Exprs.Binary(res.expr)
	if !ok || outer.Op != ast.ExprBinarySub {
		t.Fatalf("want '-' at the top")
	}
	if _, ok := res.arenas.Exprs.Binary(outer.Left); !ok {
		t.Fatalf("'a - b - c' should nest as '(a - b) - c'")
	}
	if _, ok := res.arenas.Exprs.Ident(outer.Right); !ok {
		t.Fatalf("right operand should be the identifier 'c'")
	}
}

func TestExponentRightAssociative(t *testing.T) {
	res := mustParse(t, "a ** b ** c")
	outer, ok := res.arenas.Exprs.Binary(res.expr)
	if !ok || outer.Op != ast.ExprBinaryPow {
		t.Fatalf("want '**' at the top")
	}
	if _, ok := res.arenas.Exprs.Ident(outer.Left); !ok {
		t.Fatalf("'a ** b ** c' should nest as 'a ** (b ** c)'")
	}
	if _, ok := res.arenas.Exprs.Binary(outer.Right); !ok {
		t.Fatalf("right operand should be another '**'")
	}
}

func TestTernary(t *testing.T) {
	res := mustParse(t, "cond ? a : b")
	tern, ok := res.arenas.Exprs.Ternary(res.expr)
	if !ok {
		t.Fatalf("want ternary")
	}
	if _, ok := res.arenas.Exprs.Ident(tern.Cond); !ok {
		t.Errorf("condition should be an identifier")
	}
}

func TestUnaryChain(t *testing.T) {
	res := mustParse(t, "!!a")
	outer, ok := res.arenas.Exprs.Unary(res.expr)
	if !ok || outer.Op != ast.ExprUnaryNot {
		t.Fatalf("want '!' at the top")
	}
	inner, ok := res.arenas.Exprs.Unary(outer.Operand)
	if !ok || inner.Op != ast.ExprUnaryNot {
		t.Fatalf("want nested '!'")
	}
}

func TestLiteralSuffixes(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.ExprLitKind
		typ   ast.TypeRef
	}{
		{"42", ast.LitImplicit, ast.TypeUnresolved},
		{"42u8", ast.LitInteger, ast.TypeU8},
		{"42i128", ast.LitInteger, ast.TypeI128},
		{"1field", ast.LitField, ast.TypeUnresolved},
		{"2group", ast.LitGroup, ast.TypeUnresolved},
		{"true", ast.LitBool, ast.TypeUnresolved},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := mustParse(t, tt.input)
			lit, ok := res.arenas.Exprs.Literal(res.expr)
			if !ok {
				t.Fatalf("want literal")
			}
			if lit.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", lit.Kind, tt.kind)
			}
			if lit.Type != tt.typ {
				t.Errorf("type = %s, want %s", lit.Type, tt.typ)
			}
			loc := res.loc(res.expr)
			if loc.Content != tt.input {
				t.Errorf("content = %q, want %q", loc.Content, tt.input)
			}
		})
	}
}

func TestLiteralSuffixGap(t *testing.T) {
	mustFail(t, "42 u8", diag.SynLiteralSuffixGap)
}

func TestGroupingAndTuples(t *testing.T) {
	res := mustParse(t, "(a)")
	if _, ok := res.arenas.Exprs.Ident(res.expr); !ok {
		t.Errorf("'(a)' should yield the inner identifier")
	}

	res = mustParse(t, "(a, b)")
	tup, ok := res.arenas.Exprs.Tuple(res.expr)
	if !ok || len(tup.Elems) != 2 {
		t.Errorf("'(a, b)' should yield a two-element tuple")
	}

	res = mustParse(t, "(a,)")
	tup, ok = res.arenas.Exprs.Tuple(res.expr)
	if !ok || len(tup.Elems) != 1 {
		t.Errorf("'(a,)' should yield a one-element tuple")
	}

	res = mustParse(t, "()")
	tup, ok = res.arenas.Exprs.Tuple(res.expr)
	if !ok || len(tup.Elems) != 0 {
		t.Errorf("'()' should yield an empty tuple")
	}
}

func TestTrailingTokens(t *testing.T) {
	mustFail(t, "x y", diag.SynUnexpectedToken)
	mustFail(t, "a + b c", diag.SynUnexpectedToken)
}

func TestExpressionAtEOF(t *testing.T) {
	mustFail(t, "a +", diag.SynUnexpectedToken)
}

func TestSelfIdentifiers(t *testing.T) {
	res := mustParse(t, "self.balance")
	member, ok := res.arenas.Exprs.Member(res.expr)
	if !ok {
		t.Fatalf("want member access")
	}
	target, ok := res.arenas.Exprs.Ident(member.Target)
	if !ok {
		t.Fatalf("'self' should parse as an identifier")
	}
	if got := res.arenas.Lookup(target.Name); got != "self" {
		t.Errorf("target = %q, want %q", got, "self")
	}
}

func TestNestingDepthLimit(t *testing.T) {
	deep := strings.Repeat("(", 200) + "x" + strings.Repeat(")", 200)
	mustFail(t, deep, diag.SynNestingTooDeep)

	shallow := strings.Repeat("(", 50) + "x" + strings.Repeat(")", 50)
	mustParse(t, shallow)
}

func TestCustomDepthLimit(t *testing.T) {
	fsRes := parseInputWithDepth(t, "((x))", 2)
	if fsRes.expr.IsValid() {
		t.Fatalf("depth 2 should reject '((x))'")
	}
	fsRes = parseInputWithDepth(t, "(x)", 4)
	if !fsRes.expr.IsValid() {
		t.Fatalf("depth 4 should accept '(x)': %s", diagnosticsSummary(fsRes.bag))
	}
}

func TestLongPostfixChainStaysFlat(t *testing.T) {
	// Postfix chains are iterative: depth must not grow with chain length.
	input := "x" + strings.Repeat(".y", 500)
	res := mustParse(t, input)
	loc := res.loc(res.expr)
	if loc.Content != input {
		t.Errorf("span does not cover the whole chain")
	}
}

func TestErrorBudgetEmitsFirstDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.zc", []byte("x.")))

	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseExpression(fs, lx, arenas, Options{
		MaxErrors: 1,
		Reporter:  &diag.BagReporter{Bag: bag},
	})
	if res.Expr.IsValid() {
		t.Fatalf("parse of \"x.\" succeeded")
	}
	if bag.Len() != 1 {
		t.Fatalf("bag has %d diagnostics, want the single budgeted error: %s",
			bag.Len(), diagnosticsSummary(bag))
	}
	if bag.Items()[0].Code != diag.SynInvalidMemberToken {
		t.Errorf("got %s, want %s", bag.Items()[0].Code.ID(), diag.SynInvalidMemberToken.ID())
	}
}
