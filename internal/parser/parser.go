// Package parser turns a token stream into an ast.Program: top-down
// recursive descent for declarations and statements, Pratt climbing for
// expressions.
package parser

import (
	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/lexer"
	"github.com/photon-lang/photon/internal/source"
	"github.com/photon-lang/photon/internal/token"
)

// Options configures a Parser.
type Options struct {
	Reporter diag.Reporter

	// MaxRecursionDepth bounds parseExpr nesting; exceeding it reports
	// SynNestedTooDeep and unwinds. Zero selects the default of 1000.
	MaxRecursionDepth int
}

// Parser consumes tokens from a TokenStream and builds an ast.Program into a
// shared Builder. A Parser is single-use and not safe for concurrent access.
type Parser struct {
	ts       *lexer.TokenStream
	file     source.FileID
	opts     Options
	builder  *ast.Builder
	interner *source.Interner

	recursion int
	maxDepth  int

	errs []diag.Diagnostic
}

// New tokenizes lx to completion and constructs a Parser over the result,
// building into builder and interning identifier/string text via interner.
func New(lx *lexer.Lexer, file source.FileID, builder *ast.Builder, interner *source.Interner, opts Options) *Parser {
	return NewFromStream(lexer.Tokenize(lx), file, builder, interner, opts)
}

// NewFromStream constructs a Parser directly over an already-materialized
// TokenStream, for callers that tokenize once and parse it more than once
// (e.g. re-parsing after a Seek/Reset, or sharing a stream with a formatter).
func NewFromStream(ts *lexer.TokenStream, file source.FileID, builder *ast.Builder, interner *source.Interner, opts Options) *Parser {
	if opts.MaxRecursionDepth <= 0 {
		opts.MaxRecursionDepth = 1000
	}
	return &Parser{
		ts:       ts,
		file:     file,
		opts:     opts,
		builder:  builder,
		interner: interner,
		maxDepth: opts.MaxRecursionDepth,
	}
}

// Errors returns every diagnostic the parser reported, in insertion order.
func (p *Parser) Errors() []diag.Diagnostic { return p.errs }

// HasErrors reports whether any error-or-worse diagnostic was reported.
func (p *Parser) HasErrors() bool {
	for _, d := range p.errs {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// ClearErrors discards everything collected by Errors so far.
func (p *Parser) ClearErrors() { p.errs = nil }

// ParseProgram repeatedly parses declarations until EOF. A failed
// declaration triggers synchronize() and the loop continues, so a single
// parse always returns a Program even when it reported errors.
func (p *Parser) ParseProgram() ast.FileID {
	start := p.peek(0).Span
	file := p.builder.NewFile(p.file, start)

	for !p.check(token.EOF) {
		p.skipStatementSeparators()
		if p.check(token.EOF) {
			break
		}
		item, ok := p.parseDeclaration()
		if !ok {
			p.synchronize()
			continue
		}
		p.builder.PushItem(file, item)
	}
	return file
}

// ParseExpression exposes the Pratt parser directly, for REPL/test callers.
func (p *Parser) ParseExpression() (ast.ExprID, bool) {
	return p.parseExpr(precAssignment)
}

// ParseStatement exposes single-statement parsing directly.
func (p *Parser) ParseStatement() (ast.StmtID, bool) {
	return p.parseStatement()
}
