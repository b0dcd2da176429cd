package parser_test

import (
	"testing"

	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/lexer"
	"github.com/photon-lang/photon/internal/parser"
	"github.com/photon-lang/photon/internal/source"
)

func newParser(t *testing.T, input string) (*parser.Parser, *ast.Builder, *source.Interner) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.ph", []byte(input))
	file := fs.Get(fid)

	lx := lexer.New(file, lexer.Options{})
	builder := ast.NewBuilder(ast.Hints{})
	interner := source.NewInterner()
	p := parser.New(lx, fid, builder, interner, parser.Options{})
	return p, builder, interner
}

// S1 — keyword + identifier: `fn add(a: i32, b: i32) -> i32 { a + b }`.
func TestParseProgram_FunctionDecl(t *testing.T) {
	p, b, interner := newParser(t, "fn add(a: i32, b: i32) -> i32 { a + b }")
	fileID := p.ParseProgram()
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	prog := b.Files.Get(fileID)
	if len(prog.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(prog.Items))
	}

	printer := ast.NewPrinter(b, interner)
	got := printer.Item(prog.Items[0])
	want := "fn add(a: i32, b: i32) -> i32 {\n  (a + b);\n}"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

// S2 — precedence: `1 + 2 * 3 + 4` -> `((1 + (2 * 3)) + 4)`.
func TestParseExpression_Precedence(t *testing.T) {
	p, b, interner := newParser(t, "1 + 2 * 3 + 4")
	expr, ok := p.ParseExpression()
	if !ok || p.HasErrors() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	printer := ast.NewPrinter(b, interner)
	got := printer.Expr(expr)
	want := "((1 + (2 * 3)) + 4)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// S3 — right-associative power: `2 ** 3 ** 2` -> `(2 ** (3 ** 2))`.
func TestParseExpression_PowerRightAssoc(t *testing.T) {
	p, b, interner := newParser(t, "2 ** 3 ** 2")
	expr, ok := p.ParseExpression()
	if !ok || p.HasErrors() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	printer := ast.NewPrinter(b, interner)
	got := printer.Expr(expr)
	want := "(2 ** (3 ** 2))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseExpression_AssignmentRightAssoc(t *testing.T) {
	p, b, interner := newParser(t, "a = b = c")
	expr, ok := p.ParseExpression()
	if !ok || p.HasErrors() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	printer := ast.NewPrinter(b, interner)
	got := printer.Expr(expr)
	want := "(a = (b = c))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseExpression_CallWithArgs(t *testing.T) {
	p, b, interner := newParser(t, "f(1, 2 + 3, g())")
	expr, ok := p.ParseExpression()
	if !ok || p.HasErrors() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	printer := ast.NewPrinter(b, interner)
	got := printer.Expr(expr)
	want := "f(1, (2 + 3), g())"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseExpression_ParenthesesDropFromAST(t *testing.T) {
	p1, b1, i1 := newParser(t, "(1 + 2) * 3")
	e1, ok := p1.ParseExpression()
	if !ok {
		t.Fatalf("parse failed: %v", p1.Errors())
	}
	got := ast.NewPrinter(b1, i1).Expr(e1)
	want := "((1 + 2) * 3)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseVarDecl_AllOptionalParts(t *testing.T) {
	cases := []string{"let x", "let mut x", "let x: i32", "let x = 1", "let mut x: i32 = 1"}
	for _, src := range cases {
		p, _, _ := newParser(t, src)
		_, ok := p.ParseStatement()
		if !ok || p.HasErrors() {
			t.Fatalf("%q: parse failed: %v", src, p.Errors())
		}
	}
}

func TestParseBlock_SkipsStraySemicolons(t *testing.T) {
	p, b, interner := newParser(t, "{ ;; 1; ;2;; }")
	stmt, ok := p.ParseStatement()
	if !ok || p.HasErrors() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	printer := ast.NewPrinter(b, interner)
	got := printer.Stmt(stmt, 0)
	want := "{\n  1;\n  2;\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseFunctionDecl_DuplicateParameter(t *testing.T) {
	p, _, _ := newParser(t, "fn f(a: i32, a: i32) { a }")
	p.ParseProgram()
	found := false
	for _, d := range p.Errors() {
		if d.Code == diag.SynDuplicateParameter {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynDuplicateParameter, got %v", p.Errors())
	}
}

func TestParseFunctionDecl_TrailingCommaRejected(t *testing.T) {
	p, _, _ := newParser(t, "fn f(a: i32,) { a }")
	p.ParseProgram()
	if !p.HasErrors() {
		t.Fatalf("expected an error for the trailing comma")
	}
}

func TestParseFunctionDecl_MissingBody(t *testing.T) {
	p, _, _ := newParser(t, "fn f(a: i32)")
	p.ParseProgram()
	found := false
	for _, d := range p.Errors() {
		if d.Code == diag.SynMissingFunctionBody {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynMissingFunctionBody, got %v", p.Errors())
	}
}

func TestParseProgram_RecoversAfterBadDeclaration(t *testing.T) {
	p, b, _ := newParser(t, "@@@ fn ok() { 1 }")
	fileID := p.ParseProgram()
	if !p.HasErrors() {
		t.Fatalf("expected an error for the leading garbage tokens")
	}
	prog := b.Files.Get(fileID)
	if len(prog.Items) != 1 {
		t.Fatalf("expected recovery to still parse the trailing function, got %d items", len(prog.Items))
	}
}

func TestParseExpression_DeeplyNestedParensReportsNestedTooDeep(t *testing.T) {
	src := ""
	for i := 0; i < 2000; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 2000; i++ {
		src += ")"
	}
	p, _, _ := newParser(t, src)
	p.ParseExpression()
	found := false
	for _, d := range p.Errors() {
		if d.Code == diag.SynNestedTooDeep {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynNestedTooDeep for deeply nested parens")
	}
}
