package parser

import (
	"fmt"

	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/lexer"
	"zirc/internal/source"
	"zirc/internal/token"
)

// DefaultMaxDepth bounds expression nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 128

type Options struct {
	MaxErrors     uint
	MaxDepth      uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Expr ast.ExprID
	Bag  *diag.Bag
}

// Parser holds per-file parse state. One Parser per file, no reuse.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span of the last consumed token
	depth    uint
}

// ParseExpression parses a single complete expression from the lexer's
// input. Anything left over after the expression is an error: the input
// must be exactly one expression.
func ParseExpression(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	id, ok := p.parseExpr()
	if ok && !p.at(token.EOF) {
		p.err(diag.SynUnexpectedToken,
			fmt.Sprintf("unexpected %s after expression", p.lx.Peek().Kind))
		id = ast.NoExprID
	}
	if !ok {
		id = ast.NoExprID
	}

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Expr: id, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}
