package parser

import (
	"fmt"

	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/token"
)

// parseExpr climbs the precedence table starting at minPrec. A recursion
// guard prevents unbounded nesting (e.g. `((((((...`) from overflowing the
// Go call stack.
func (p *Parser) parseExpr(minPrec precedence) (ast.ExprID, bool) {
	if p.recursion >= p.maxDepth {
		p.errorAt(p.peek(0).Span, diag.SynNestedTooDeep, "expression nested too deeply")
		return ast.NoExprID, false
	}
	p.recursion++
	defer func() { p.recursion-- }()

	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.peek(0)
		info, found := binaryTable[tok.Kind]
		if !found || info.prec < minPrec {
			break
		}
		p.advance()

		nextMin := info.prec
		if !info.rightAssoc {
			nextMin++
		}
		right, ok := p.parseExpr(nextMin)
		if !ok {
			return ast.NoExprID, false
		}
		sp := p.builder.Exprs.Get(left).Span.Cover(p.builder.Exprs.Get(right).Span)
		left = p.builder.Exprs.NewBinary(sp, info.op, left, right)
	}
	return left, true
}

// parseUnary handles the prefix operators at Unary precedence, recursing
// into itself so stacked prefixes (`!-x`) parse right-to-left.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	tok := p.peek(0)
	if op, ok := prefixUnaryTable[tok.Kind]; ok {
		p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		sp := tok.Span.Cover(p.builder.Exprs.Get(operand).Span)
		return p.builder.Exprs.NewUnary(sp, op, operand), true
	}
	return p.parsePostfix()
}

// parsePostfix handles call expressions; index/member/cast are declared in
// the AST enum but have no production here.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	for p.check(token.LParen) {
		expr, ok = p.parseCall(expr)
		if !ok {
			return ast.NoExprID, false
		}
	}
	return expr, true
}

func (p *Parser) parseCall(callee ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '('

	var args []ast.ExprID
	if !p.check(token.RParen) {
		for {
			arg, ok := p.parseExpr(precAssignment)
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
			if p.check(token.RParen) {
				p.errorAt(p.peek(0).Span, diag.SynInvalidSyntax, "trailing comma not allowed in call arguments")
				return ast.NoExprID, false
			}
		}
	}
	closeTok, ok := p.expect(token.RParen, diag.SynMissingDelimiter, "expected ')' to close call arguments")
	if !ok {
		return ast.NoExprID, false
	}
	sp := p.builder.Exprs.Get(callee).Span.Cover(closeTok.Span)
	return p.builder.Exprs.NewCall(sp, callee, args), true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.peek(0)
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return p.builder.Exprs.NewLiteral(tok.Span, ast.Literal{Kind: ast.LitInt, I64: tok.Payload.I64}), true
	case token.FloatLit:
		p.advance()
		return p.builder.Exprs.NewLiteral(tok.Span, ast.Literal{Kind: ast.LitFloat, F64: tok.Payload.F64}), true
	case token.StringLit:
		p.advance()
		sid := p.interner.Intern(tok.Payload.Str)
		return p.builder.Exprs.NewLiteral(tok.Span, ast.Literal{Kind: ast.LitString, Str: sid}), true
	case token.BoolLit:
		p.advance()
		return p.builder.Exprs.NewLiteral(tok.Span, ast.Literal{Kind: ast.LitBool, Bool: tok.Payload.Bool}), true
	case token.Ident:
		p.advance()
		return p.builder.Exprs.NewIdent(tok.Span, p.internName(tok)), true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr(precAssignment)
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynMissingDelimiter, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return inner, true
	default:
		p.errorAt(tok.Span, diag.SynExpectExpression, fmt.Sprintf("expected expression, got %v", tok.Kind))
		return ast.NoExprID, false
	}
}

// parseType parses a type-expression. The core grammar only supports a
// bare identifier as a type; richer type syntax is out of scope.
func (p *Parser) parseType() (ast.ExprID, bool) {
	if !p.check(token.Ident) {
		p.errorAt(p.peek(0).Span, diag.SynExpectType, "expected type")
		return ast.NoExprID, false
	}
	tok := p.advance()
	return p.builder.Exprs.NewIdent(tok.Span, p.internName(tok)), true
}
