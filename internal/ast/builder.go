package ast

import (
	"zirc/internal/source"
)

// Hints carries capacity estimates for arena preallocation.
type Hints struct {
	Exprs uint
}

// Builder bundles the arenas and the string interner the parser writes into.
type Builder struct {
	Exprs           *Exprs
	StringsInterner *source.Interner
}

// NewBuilder creates a Builder with a fresh interner.
func NewBuilder(hints Hints) *Builder {
	return &Builder{
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: source.NewInterner(),
	}
}

// Intern interns a string and returns its ID.
func (b *Builder) Intern(s string) source.StringID {
	return b.StringsInterner.Intern(s)
}

// Lookup resolves a StringID back to its text.
func (b *Builder) Lookup(id source.StringID) string {
	return b.StringsInterner.MustLookup(id)
}
