package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwCircuit represents the 'circuit' keyword.
	KwCircuit // circuit
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwInput represents the 'input' keyword.
	KwInput // input
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwBigSelf represents the 'Self' keyword.
	KwBigSelf // Self

	// Type keywords. Integer literal suffixes reuse these token kinds:
	// `42u8` lexes as IntLit("42") immediately followed by KwU8.

	KwU8   // u8
	KwU16  // u16
	KwU32  // u32
	KwU64  // u64
	KwU128 // u128
	KwI8   // i8
	KwI16  // i16
	KwI32  // i32
	KwI64  // i64
	KwI128 // i128
	// KwField represents the 'field' scalar type keyword.
	KwField // field
	// KwGroup represents the 'group' curve type keyword.
	KwGroup // group
	// KwBool represents the 'bool' type keyword.
	KwBool // bool
	// KwAddress represents the 'address' type keyword.
	KwAddress // address
	// KwChar represents the 'char' type keyword.
	KwChar // char

	// IntLit represents a decimal integer literal. The language has no
	// float literals, so '.' always lexes as Dot.
	IntLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit

	// Punctuation.

	// Dot represents the '.' token.
	Dot // .
	// DotDot represents the '..' range token.
	DotDot // ..
	// Comma represents the ',' token.
	Comma // ,
	// Colon represents the ':' token.
	Colon // :
	// ColonColon represents the '::' token.
	ColonColon // ::
	// Semicolon represents the ';' token.
	Semicolon // ;
	// Question represents the '?' token.
	Question // ?
	// Arrow represents the '->' token.
	Arrow // ->
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// LBracket represents the '[' token.
	LBracket // [
	// RBracket represents the ']' token.
	RBracket // ]
	// LBrace represents the '{' token.
	LBrace // {
	// RBrace represents the '}' token.
	RBrace // }
	// Underscore represents the '_' token.
	Underscore // _
	// At represents the '@' annotation token.
	At // @

	// Operators.

	// Assign represents the '=' token.
	Assign // =
	// Eq represents the '==' token.
	Eq // ==
	// NotEq represents the '!=' token.
	NotEq // !=
	// Not represents the '!' token.
	Not // !
	// Lt represents the '<' token.
	Lt // <
	// LtEq represents the '<=' token.
	LtEq // <=
	// Gt represents the '>' token.
	Gt // >
	// GtEq represents the '>=' token.
	GtEq // >=
	// Plus represents the '+' token.
	Plus // +
	// Minus represents the '-' token.
	Minus // -
	// Star represents the '*' token.
	Star // *
	// Slash represents the '/' token.
	Slash // /
	// Exp represents the '**' exponentiation token.
	Exp // **
	// AndAnd represents the '&&' token.
	AndAnd // &&
	// OrOr represents the '||' token.
	OrOr // ||
	// PlusAssign represents the '+=' token.
	PlusAssign // +=
	// MinusAssign represents the '-=' token.
	MinusAssign // -=
	// StarAssign represents the '*=' token.
	StarAssign // *=
	// SlashAssign represents the '/=' token.
	SlashAssign // /=
	// ExpAssign represents the '**=' token.
	ExpAssign // **=
)

var kindNames = map[Kind]string{
	Invalid:     "invalid",
	EOF:         "end of input",
	Ident:       "identifier",
	KwCircuit:   "'circuit'",
	KwFunction:  "'function'",
	KwLet:       "'let'",
	KwConst:     "'const'",
	KwMut:       "'mut'",
	KwReturn:    "'return'",
	KwIf:        "'if'",
	KwElse:      "'else'",
	KwFor:       "'for'",
	KwIn:        "'in'",
	KwImport:    "'import'",
	KwAs:        "'as'",
	KwStatic:    "'static'",
	KwTrue:      "'true'",
	KwFalse:     "'false'",
	KwInput:     "'input'",
	KwSelf:      "'self'",
	KwBigSelf:   "'Self'",
	KwU8:        "'u8'",
	KwU16:       "'u16'",
	KwU32:       "'u32'",
	KwU64:       "'u64'",
	KwU128:      "'u128'",
	KwI8:        "'i8'",
	KwI16:       "'i16'",
	KwI32:       "'i32'",
	KwI64:       "'i64'",
	KwI128:      "'i128'",
	KwField:     "'field'",
	KwGroup:     "'group'",
	KwBool:      "'bool'",
	KwAddress:   "'address'",
	KwChar:      "'char'",
	IntLit:      "integer literal",
	StringLit:   "string literal",
	CharLit:     "char literal",
	Dot:         "'.'",
	DotDot:      "'..'",
	Comma:       "','",
	Colon:       "':'",
	ColonColon:  "'::'",
	Semicolon:   "';'",
	Question:    "'?'",
	Arrow:       "'->'",
	LParen:      "'('",
	RParen:      "')'",
	LBracket:    "'['",
	RBracket:    "']'",
	LBrace:      "'{'",
	RBrace:      "'}'",
	Underscore:  "'_'",
	At:          "'@'",
	Assign:      "'='",
	Eq:          "'=='",
	NotEq:       "'!='",
	Not:         "'!'",
	Lt:          "'<'",
	LtEq:        "'<='",
	Gt:          "'>'",
	GtEq:        "'>='",
	Plus:        "'+'",
	Minus:       "'-'",
	Star:        "'*'",
	Slash:       "'/'",
	Exp:         "'**'",
	AndAnd:      "'&&'",
	OrOr:        "'||'",
	PlusAssign:  "'+='",
	MinusAssign: "'-='",
	StarAssign:  "'*='",
	SlashAssign: "'/='",
	ExpAssign:   "'**='",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
