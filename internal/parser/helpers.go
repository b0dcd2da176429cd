package parser

import (
	"fmt"

	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/source"
	"github.com/photon-lang/photon/internal/token"
)

// peek returns the token n positions ahead of the current one without
// consuming anything; peek(0) is the current token.
func (p *Parser) peek(n int) token.Token {
	return p.ts.Peek(n)
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	return p.ts.Advance()
}

// check reports whether the current token has the given kind, without
// consuming it.
func (p *Parser) check(k token.Kind) bool {
	return p.peek(0).Kind == k
}

// match consumes the current token and returns true if it has kind k;
// otherwise leaves the stream untouched and returns false.
func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind k; otherwise reports
// code with msg at the current token's span and returns the zero Token
// plus false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	p.errorAt(p.peek(0).Span, code, msg)
	return token.Token{}, false
}

func (p *Parser) internName(tok token.Token) source.StringID {
	return p.interner.Intern(tok.Text)
}

// errorAt records a diagnostic both in the parser's own error list and
// (when configured) through the DiagnosticEngine-backed Reporter.
func (p *Parser) errorAt(sp source.Span, code diag.Code, msg string) {
	d := diag.Diagnostic{Severity: diag.SevError, Code: code, Message: msg, Primary: sp}
	p.errs = append(p.errs, d)
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}

func (p *Parser) errorAtf(sp source.Span, code diag.Code, format string, args ...any) {
	p.errorAt(sp, code, fmt.Sprintf(format, args...))
}

// synchronize implements the Synchronize recovery strategy: advance until
// the current token opens a new declaration/statement or closes/ends one.
func (p *Parser) synchronize() {
	for !p.check(token.EOF) {
		switch p.peek(0).Kind {
		case token.KwFn, token.KwLet, token.KwConst, token.LBrace, token.RBrace, token.Semicolon:
			return
		}
		p.advance()
	}
}

// skipStatementSeparators consumes stray `;` tokens between statements —
// leading/trailing semicolons are all optional in this grammar.
func (p *Parser) skipStatementSeparators() {
	for p.match(token.Semicolon) {
	}
}
