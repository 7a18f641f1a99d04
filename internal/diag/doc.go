// Package diag defines the diagnostic model shared by the lexer, parser,
// and tooling: a Diagnostic with a numeric code and a primary span, a Bag
// that collects them with a cap, and the Reporter contract that phases
// emit through. The parser never recovers inside an expression; its
// diagnostics are fail-fast and carry the offending span.
package diag
