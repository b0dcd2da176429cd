package parser

import (
	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/token"
)

// parseStatement dispatches on the current token to block/var-decl/expression.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	switch p.peek(0).Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwLet:
		return p.parseVarDecl()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses `{` statement* `}`. Stray semicolons between statements
// are skipped.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}

	var stmts []ast.StmtID
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		p.skipStatementSeparators()
		if p.check(token.RBrace) {
			break
		}
		st, ok := p.parseStatement()
		if !ok {
			p.synchronize()
			continue
		}
		stmts = append(stmts, st)
		p.skipStatementSeparators()
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	if !ok {
		return ast.NoStmtID, false
	}
	sp := open.Span.Cover(closeTok.Span)
	return p.builder.Stmts.NewBlock(sp, stmts), true
}

// parseVarDecl parses `let` [`mut`] identifier [`:` type] [`=` expression].
// Type and init are independently optional.
func (p *Parser) parseVarDecl() (ast.StmtID, bool) {
	kw := p.advance() // 'let'
	isMut := p.match(token.KwMut)

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after 'let'")
	if !ok {
		return ast.NoStmtID, false
	}

	typ := ast.NoExprID
	if p.match(token.Colon) {
		typ, ok = p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
	}

	init := ast.NoExprID
	if p.match(token.Assign) {
		init, ok = p.parseExpr(precAssignment)
		if !ok {
			return ast.NoStmtID, false
		}
	}

	end := nameTok.Span
	if typ.IsValid() {
		end = p.builder.Exprs.Get(typ).Span
	}
	if init.IsValid() {
		end = p.builder.Exprs.Get(init).Span
	}
	sp := kw.Span.Cover(end)
	p.match(token.Semicolon)

	return p.builder.Stmts.NewVarDecl(sp, ast.VarDecl{
		Name:   p.internName(nameTok),
		Type:   typ,
		Init:   init,
		IsMut:  isMut,
		NameSp: nameTok.Span,
	}), true
}

// parseExprStmt parses an expression in statement position with an
// optional trailing `;`.
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr(precAssignment)
	if !ok {
		return ast.NoStmtID, false
	}
	sp := p.builder.Exprs.Get(expr).Span
	p.match(token.Semicolon)
	return p.builder.Stmts.NewExprStmt(sp, expr), true
}
