package lexer

import (
	"zirc/internal/diag"
	"zirc/internal/source"
)

// ReporterAdapter forwards lexer errors into a diag.Bag, mapping the
// lexer's string kinds onto diagnostic codes.
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (r *ReporterAdapter) Report(kind string, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	code := diag.LexUnknownChar
	switch kind {
	case "UnknownChar":
		code = diag.LexUnknownChar
	case "UnterminatedString":
		code = diag.LexUnterminatedString
	case "UnterminatedChar":
		code = diag.LexUnterminatedChar
	case "UnterminatedBlockComment":
		code = diag.LexUnterminatedBlockComment
	}
	r.Bag.Add(diag.NewError(code, span, msg))
}
