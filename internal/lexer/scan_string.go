package lexer

import (
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/token"
)

// scanString scans a double-quoted string literal. Supported escapes are
// \n \t \r \0 \\ \' \" — anything else reports LexInvalidEscape. The
// decoded body is interned into the lexer's string arena and attached as
// the token's Payload so the parser never has to re-decode Text.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var buf []byte
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind:    token.StringLit,
				Span:    sp,
				Text:    string(lx.file.Content[sp.Start:sp.End]),
				Payload: token.Payload{Kind: token.PayloadString, Str: lx.strs.InternString(string(buf))},
			}
		case '\\':
			decoded, ok := lx.scanEscape()
			if !ok {
				continue
			}
			buf = append(buf, decoded)
		default:
			buf = append(buf, b)
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEscape consumes a backslash escape sequence and returns its decoded
// byte. ok is false when the escape was invalid (a diagnostic was already
// reported and the offending bytes consumed).
func (lx *Lexer) scanEscape() (b byte, ok bool) {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(escStart)
		lx.errLex(diag.LexInvalidEscape, sp, "unterminated escape sequence")
		return 0, false
	}
	c := lx.cursor.Bump()
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	default:
		sp := lx.cursor.SpanFrom(escStart)
		lx.errLex(diag.LexInvalidEscape, sp, "invalid escape sequence")
		return 0, false
	}
}

// scanChar scans a single-quoted character literal: 'c' or an escape.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	var value byte
	if lx.cursor.Peek() == '\\' {
		decoded, ok := lx.scanEscape()
		if !ok {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		value = decoded
	} else if lx.cursor.EOF() || lx.cursor.Peek() == '\'' {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "empty character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	} else {
		value = lx.cursor.Bump()
	}

	if lx.cursor.Peek() != '\'' {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	lx.cursor.Bump() // closing '\''

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:    token.IntLit,
		Span:    sp,
		Text:    string(lx.file.Content[sp.Start:sp.End]),
		Payload: token.Payload{Kind: token.PayloadInt, I64: int64(value)},
	}
}
