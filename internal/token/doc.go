// Package token defines lexical token kinds and trivia for the photon compiler.
// Invariants:
//   - Token.Text holds the source text its Span covers.
//   - Token.Span matches Text exactly (Begin..End).
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute token kinds.
//   - /// lines are represented as leading Trivia (TriviaDocLine) and never
//     appear in the main token stream; the lexer does not produce
//     TriviaDirective.
//   - Built-in type names (int, int8, uint32, float64, ...) are identifiers.
//     They are recognized by the semantic layer, not the lexer.
package token
