// Package token defines the lexer output for Grit sources.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Every trivium carries its own span; concatenating Leading, Text and
//     Trailing of all tokens reproduces the file byte for byte.
//   - Trailing trivia never hold a newline trivium: a token's trailing band ends
//     right before the next line break.
//   - Only the first token may carry a BOM or shebang, as its first leading trivia.
//   - The EOF token has empty text and owns whatever trivia end the file.
package token
