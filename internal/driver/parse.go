package driver

import (
	"fortio.org/safecast"

	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/lexer"
	"zirc/internal/parser"
	"zirc/internal/source"
)

// ParseResult holds everything a command needs after parsing one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Expr    ast.ExprID
	Bag     *diag.Bag
}

// Parse loads a file and parses it as a single expression.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics)
}

// ParseSource parses in-memory content under a virtual file name.
func ParseSource(name string, content []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fileID, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseExpression(fs, lx, builder, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  &diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Expr:    result.Expr,
		Bag:     bag,
	}, nil
}
