// Package token defines lexical token kinds and trivia for the zirc compiler.
// Invariants:
//   - Token.Text reproduces the original source bytes exactly.
//   - Token.Span matches Text exactly (Start..End).
//   - The language has no float literals, so '.' always lexes as Dot; the
//     parser's dot-disambiguation (tuple index vs. member name) relies on it.
//   - Integer literal suffixes are not merged by the lexer: `42u8` is
//     IntLit("42") followed by KwU8, adjacency checked by the parser.
//   - Annotations are lexed as '@' (Kind: At) + Ident.
package token
