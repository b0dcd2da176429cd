package lexer

import (
	"strconv"
	"strings"

	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/token"
)

// scanNumber scans an integer or floating-point literal and attaches the
// parsed value as the token's Payload:
//   - 0b[01]+, 0o[0-7]+, 0x[0-9a-fA-F]+ → IntLit
//   - [0-9]+ (.[0-9]+)? ([eE][+-]?[0-9]+)? → IntLit or FloatLit
//   - .[0-9]+ (reached only when isNumberAfterDot already confirmed it)
//
// Overflow on an integer literal reports LexNumberTooLarge and falls back
// to FloatLit so the parser still receives a usable payload.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	isFloat := false

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		isFloat = true
		lx.consumeDigits(isDec)
		return lx.finishNumber(start, isFloat)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.consumeDigits(func(b byte) bool { return b == '0' || b == '1' })
			return lx.finishRadixInt(start, 2, "0b")
		case 'o', 'O':
			lx.cursor.Bump()
			lx.consumeDigits(func(b byte) bool { return b >= '0' && b <= '7' })
			return lx.finishRadixInt(start, 8, "0o")
		case 'x', 'X':
			lx.cursor.Bump()
			lx.consumeDigits(isHex)
			return lx.finishRadixInt(start, 16, "0x")
		}
	}

	lx.consumeDigits(isDec)

	if lx.cursor.Peek() == '.' {
		if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
			lx.cursor.Bump()
			isFloat = true
			lx.consumeDigits(isDec)
		}
	}

	return lx.finishNumber(start, isFloat)
}

func (lx *Lexer) consumeDigits(pred func(byte) bool) {
	for pred(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// finishNumber handles the optional exponent then parses and attaches the
// literal payload.
func (lx *Lexer) finishNumber(start Mark, isFloat bool) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		isFloat = true
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.consumeDigits(isDec)
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			lx.errLex(diag.LexInvalidFloat, sp, "invalid floating-point literal")
		}
		return token.Token{
			Kind:    token.FloatLit,
			Span:    sp,
			Text:    text,
			Payload: token.Payload{Kind: token.PayloadFloat, F64: f},
		}
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		lx.errLex(diag.LexNumberTooLarge, sp, "integer literal too large for 64 bits")
		f, _ := strconv.ParseFloat(text, 64)
		return token.Token{
			Kind:    token.FloatLit,
			Span:    sp,
			Text:    text,
			Payload: token.Payload{Kind: token.PayloadFloat, F64: f},
		}
	}
	return token.Token{
		Kind:    token.IntLit,
		Span:    sp,
		Text:    text,
		Payload: token.Payload{Kind: token.PayloadInt, I64: i},
	}
}

// finishRadixInt parses a prefixed (0b/0o/0x) integer literal.
func (lx *Lexer) finishRadixInt(start Mark, base int, prefix string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	digits := strings.TrimPrefix(text, prefix)
	if digits == "" {
		lx.errLex(diag.LexBadNumber, sp, "expected digits after radix prefix")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	i, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		lx.errLex(diag.LexNumberTooLarge, sp, "integer literal too large for 64 bits")
	}
	return token.Token{
		Kind:    token.IntLit,
		Span:    sp,
		Text:    text,
		Payload: token.Payload{Kind: token.PayloadInt, I64: int64(i)},
	}
}
