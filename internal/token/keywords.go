package token

var keywords = map[string]Kind{
	"circuit":  KwCircuit,
	"function": KwFunction,
	"let":      KwLet,
	"const":    KwConst,
	"mut":      KwMut,
	"return":   KwReturn,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"in":       KwIn,
	"import":   KwImport,
	"as":       KwAs,
	"static":   KwStatic,
	"true":     KwTrue,
	"false":    KwFalse,
	"input":    KwInput,
	"self":     KwSelf,
	"Self":     KwBigSelf,
	"u8":       KwU8,
	"u16":      KwU16,
	"u32":      KwU32,
	"u64":      KwU64,
	"u128":     KwU128,
	"i8":       KwI8,
	"i16":      KwI16,
	"i32":      KwI32,
	"i64":      KwI64,
	"i128":     KwI128,
	"field":    KwField,
	"group":    KwGroup,
	"bool":     KwBool,
	"address":  KwAddress,
	"char":     KwChar,
}

// LookupKeyword returns the keyword kind for ident, if there is one.
// Keyword matching is case sensitive: `Circuit` is a plain identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
