package parser

import (
	"fmt"
	"strings"
	"testing"

	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/lexer"
	"zirc/internal/source"
)

type parseResult struct {
	fs     *source.FileSet
	arenas *ast.Builder
	expr   ast.ExprID
	bag    *diag.Bag
}

// parseInput runs ParseExpression over a one-line virtual file.
func parseInput(t *testing.T, input string) parseResult {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.zc", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseExpression(fs, lx, arenas, Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return parseResult{fs: fs, arenas: arenas, expr: res.Expr, bag: bag}
}

// parseInputWithDepth parses with an explicit nesting limit.
func parseInputWithDepth(t *testing.T, input string, maxDepth uint) parseResult {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.zc", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseExpression(fs, lx, arenas, Options{
		MaxDepth: maxDepth,
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return parseResult{fs: fs, arenas: arenas, expr: res.Expr, bag: bag}
}

// mustParse asserts the input parses cleanly and returns the result.
func mustParse(t *testing.T, input string) parseResult {
	t.Helper()
	res := parseInput(t, input)
	if !res.expr.IsValid() {
		t.Fatalf("parse of %q failed: %s", input, diagnosticsSummary(res.bag))
	}
	if res.bag.HasErrors() {
		t.Fatalf("parse of %q reported errors: %s", input, diagnosticsSummary(res.bag))
	}
	return res
}

// mustFail asserts the input fails with the given code.
func mustFail(t *testing.T, input string, code diag.Code) parseResult {
	t.Helper()
	res := parseInput(t, input)
	if res.expr.IsValid() {
		t.Fatalf("parse of %q succeeded, want error %s", input, code.ID())
	}
	for _, d := range res.bag.Items() {
		if d.Code == code {
			return res
		}
	}
	t.Fatalf("parse of %q reported %s, want %s", input, diagnosticsSummary(res.bag), code.ID())
	return res
}

// loc describes the span of an expression in 1-based line/column form.
func (r parseResult) loc(id ast.ExprID) source.Location {
	return r.fs.Describe(r.arenas.Exprs.Span(id))
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
