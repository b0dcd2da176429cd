package parser

import (
	"fmt"

	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/token"
)

// parseDeclaration dispatches on the current token. Only function
// declarations are in-scope at the top level.
func (p *Parser) parseDeclaration() (ast.ItemID, bool) {
	if p.check(token.KwFn) {
		return p.parseFunctionDecl()
	}
	p.errorAt(p.peek(0).Span, diag.SynExpectDeclaration, fmt.Sprintf("expected declaration, got %v", p.peek(0).Kind))
	return ast.NoItemID, false
}

// parseFunctionDecl parses `fn name(param: type, ...) [-> type] block`.
func (p *Parser) parseFunctionDecl() (ast.ItemID, bool) {
	kw := p.advance() // 'fn'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return ast.NoItemID, false
	}

	if _, ok := p.expect(token.LParen, diag.SynMissingDelimiter, "expected '(' after function name"); !ok {
		return ast.NoItemID, false
	}

	var params []ast.Param
	seen := make(map[string]bool)
	if !p.check(token.RParen) {
		for {
			pnameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
			if !ok {
				return ast.NoItemID, false
			}
			if seen[pnameTok.Text] {
				p.errorAt(pnameTok.Span, diag.SynDuplicateParameter, fmt.Sprintf("duplicate parameter %q", pnameTok.Text))
			}
			seen[pnameTok.Text] = true

			if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
				return ast.NoItemID, false
			}
			ptyp, ok := p.parseType()
			if !ok {
				return ast.NoItemID, false
			}
			params = append(params, ast.Param{
				Name: p.internName(pnameTok),
				Type: ptyp,
				Span: pnameTok.Span.Cover(p.builder.Exprs.Get(ptyp).Span),
			})
			if !p.match(token.Comma) {
				break
			}
			if p.check(token.RParen) {
				p.errorAt(p.peek(0).Span, diag.SynInvalidSyntax, "trailing comma not allowed in parameter list")
				return ast.NoItemID, false
			}
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynMissingDelimiter, "expected ')' to close parameter list"); !ok {
		return ast.NoItemID, false
	}

	retType := ast.NoExprID
	if p.match(token.Arrow) {
		retType, ok = p.parseType()
		if !ok {
			return ast.NoItemID, false
		}
	}

	if !p.check(token.LBrace) {
		p.errorAt(p.peek(0).Span, diag.SynMissingFunctionBody, "expected function body")
		return ast.NoItemID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoItemID, false
	}

	sp := kw.Span.Cover(p.builder.Stmts.Get(body).Span)
	return p.builder.Items.NewFunction(sp, ast.FunctionDecl{
		Name:       p.internName(nameTok),
		NameSpan:   nameTok.Span,
		Params:     params,
		ReturnType: retType,
		Body:       body,
	}), true
}
