// Package token defines the C token classes produced by the lexer.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Digraphs (<% %> <: :>) share the Kind of their primary spelling; Text keeps the digraph.
//   - Every C keyword is reported as Keyword; the lexeme tells which one.
//   - EOF tokens carry an empty span at the end of the buffer.
package token
