package conformance

import (
	"fmt"
	"strings"

	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/diagfmt"
	"zirc/internal/lexer"
	"zirc/internal/parser"
	"zirc/internal/source"
)

// Run executes a fixture and returns its golden text. Each input line
// is parsed as its own one-line virtual file so spans and line numbers
// stay independent of the fixture layout.
//
// Pass fixtures yield one compact JSON serialization per line; the
// bytes are compared verbatim against the golden file. Fail fixtures
// yield the diagnostics of every line in golden form.
func Run(fx *Fixture) (string, error) {
	if fx.Header.Namespace != "ParseExpression" {
		return "", fmt.Errorf("conformance: unsupported namespace %q", fx.Header.Namespace)
	}

	var sb strings.Builder
	for i, input := range fx.Inputs {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("", []byte(input)))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
		arenas := ast.NewBuilder(ast.Hints{})

		res := parser.ParseExpression(fs, lx, arenas, parser.Options{
			Reporter: &diag.BagReporter{Bag: bag},
		})

		switch fx.Header.Expectation {
		case ExpectationPass:
			if bag.HasErrors() || !res.Expr.IsValid() {
				return "", fmt.Errorf("conformance: %s line %d: %q failed to parse", fx.Name, i+1, input)
			}
			data, err := diagfmt.MarshalExpr(arenas, fs, res.Expr)
			if err != nil {
				return "", fmt.Errorf("conformance: %s line %d: %w", fx.Name, i+1, err)
			}
			sb.Write(data)
			sb.WriteByte('\n')

		case ExpectationFail:
			if !bag.HasErrors() {
				return "", fmt.Errorf("conformance: %s line %d: %q parsed but should fail", fx.Name, i+1, input)
			}
			sb.WriteString(diag.FormatGolden(bag.Items(), fs))
		}
	}
	return sb.String(), nil
}
