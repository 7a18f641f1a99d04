package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside a single file.
// Every token and AST node carries one; line/column views are derived
// through FileSet.Describe.
type Span struct {
	File  FileID
	Start uint32 // inclusive byte offset
	End   uint32 // exclusive byte offset
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Composite AST nodes get their span as base.Cover(lastToken): the start
// comes from the base expression, the stop from the last consumed token.
// Spans from different files are never merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// CaretAfter returns the zero-length span immediately following s.
// Diagnostics use it to point at end of input.
func (s Span) CaretAfter() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}
