package lexer

import "github.com/photon-lang/photon/internal/token"

// TokenStream owns a fully materialized vector of tokens produced by one
// lexer pass and exposes random-access navigation over it — current token,
// k-token lookahead, seek-to-position, reset-to-start — none of which a
// Lexer's own single-token lookahead (Next/Peek) can give a caller that
// needs to backtrack.
type TokenStream struct {
	tokens []token.Token
	pos    int
}

// Tokenize drives lx to completion and returns a TokenStream positioned at
// the first token. The returned stream always ends with exactly one EOF
// token, which both Current and Peek keep returning once position reaches it.
func Tokenize(lx *Lexer) *TokenStream {
	return TokenizeStreaming(lx, nil)
}

// TokenizeStreaming drives lx, invoking fn with every token as it is
// produced and stopping early if fn returns false — for callers that want
// to observe tokens as they're scanned (e.g. incremental syntax
// highlighting) without necessarily waiting for the whole file to finish
// lexing. fn may be nil, in which case TokenizeStreaming behaves exactly
// like Tokenize. The returned TokenStream holds whatever tokens were
// produced before stopping, always ending with the last token handed to fn.
func TokenizeStreaming(lx *Lexer, fn func(token.Token) bool) *TokenStream {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		cont := fn == nil || fn(tok)
		if tok.Kind == token.EOF || !cont {
			break
		}
	}
	return &TokenStream{tokens: tokens}
}

// Position reports the index of the current token.
func (ts *TokenStream) Position() int { return ts.pos }

// Len reports the total number of tokens in the stream, including the
// trailing EOF.
func (ts *TokenStream) Len() int { return len(ts.tokens) }

// Current returns the token at the current position without consuming it.
// Past the end of the stream this keeps returning the trailing EOF token.
func (ts *TokenStream) Current() token.Token { return ts.at(ts.pos) }

// Peek returns the token k positions ahead of the current one without
// moving the position. Peek(0) is equivalent to Current.
func (ts *TokenStream) Peek(k int) token.Token { return ts.at(ts.pos + k) }

// Advance returns the current token and moves the position forward by one.
// Calling Advance once already at EOF returns EOF again and does not move
// past the end of the stream.
func (ts *TokenStream) Advance() token.Token {
	tok := ts.Current()
	if ts.pos < len(ts.tokens)-1 {
		ts.pos++
	}
	return tok
}

// Consume advances past the current token if it has kind expected,
// returning it and true. Otherwise the stream is left untouched and the
// zero Token plus false is returned.
func (ts *TokenStream) Consume(expected token.Kind) (token.Token, bool) {
	if ts.Current().Kind == expected {
		return ts.Advance(), true
	}
	return token.Token{}, false
}

// Seek moves the position directly to pos, clamped to [0, Len()-1].
func (ts *TokenStream) Seek(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos >= len(ts.tokens):
		pos = len(ts.tokens) - 1
	}
	ts.pos = pos
}

// Reset moves the position back to the first token, equivalent to Seek(0).
func (ts *TokenStream) Reset() { ts.pos = 0 }

func (ts *TokenStream) at(i int) token.Token {
	if i < 0 {
		i = 0
	}
	if i >= len(ts.tokens) {
		i = len(ts.tokens) - 1
	}
	return ts.tokens[i]
}
