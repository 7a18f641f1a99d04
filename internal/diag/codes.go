package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Lexical errors.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004

	// Syntax errors. The parser's expression taxonomy lives here:
	// an error of any of these codes aborts the enclosing expression
	// without producing a partial tree.
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001 // token cannot begin or continue an expression
	SynUnterminatedGroup  Code = 2002 // missing ')' or ']'
	SynInvalidMemberToken Code = 2003 // token after '.' is neither integer nor identifier
	SynInvalidIndex       Code = 2004 // malformed tuple index literal
	SynNestingTooDeep     Code = 2005 // expression nesting exceeded the configured limit
	SynLiteralSuffixGap   Code = 2006 // whitespace between literal and its type suffix

	// Driver/IO errors.
	IOInfo     Code = 4000
	IOReadFile Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexInfo:                     "lexer info",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexUnterminatedChar:         "unterminated char literal",
	SynInfo:                     "parser info",
	SynUnexpectedToken:          "unexpected token",
	SynUnterminatedGroup:        "unterminated group",
	SynInvalidMemberToken:       "invalid member token",
	SynInvalidIndex:             "invalid tuple index",
	SynNestingTooDeep:           "expression nesting too deep",
	SynLiteralSuffixGap:         "literal type suffix must be adjacent",
	IOInfo:                      "io info",
	IOReadFile:                  "cannot read file",
}

// ID renders the stable machine identifier, e.g. SYN2003.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
