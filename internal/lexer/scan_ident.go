package lexer

import "github.com/photon-lang/photon/internal/token"

// scanIdentOrKeyword scans an ASCII identifier run [A-Za-z_][A-Za-z0-9_]*
// and looks it up against the keyword table. true/false resolve straight
// to BoolLit with a boolean payload rather than a keyword token.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	b := lx.cursor.Peek()
	if !isIdentStartByte(b) {
		return lx.scanOperatorOrPunct()
	}
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if len(text) == 1 && text[0] == '_' {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}

	if k, ok := token.LookupKeyword(text); ok {
		tok := token.Token{Kind: k, Span: sp, Text: text}
		if k == token.BoolLit {
			tok.Payload = token.Payload{Kind: token.PayloadBool, Bool: text == "true"}
		}
		return tok
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
