package ast

import (
	"testing"

	"github.com/photon-lang/photon/internal/source"
)

func TestPrinter_BinaryAssociativity(t *testing.T) {
	// 1 + 2 * 3 + 4  ==  ((1 + (2 * 3)) + 4)
	interns := source.NewInterner()
	b := NewBuilder(Hints{})

	one := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 1})
	two := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 2})
	three := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 3})
	four := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 4})

	mul := b.Exprs.NewBinary(source.Span{}, Mul, two, three)
	addLeft := b.Exprs.NewBinary(source.Span{}, Add, one, mul)
	top := b.Exprs.NewBinary(source.Span{}, Add, addLeft, four)

	p := NewPrinter(b, interns)
	got := p.Expr(top)
	want := "((1 + (2 * 3)) + 4)"
	if got != want {
		t.Fatalf("Expr() = %q, want %q", got, want)
	}
}

func TestPrinter_PowRightAssociative(t *testing.T) {
	interns := source.NewInterner()
	b := NewBuilder(Hints{})

	two := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 2})
	three := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 3})
	twoAgain := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 2})

	inner := b.Exprs.NewBinary(source.Span{}, Pow, three, twoAgain)
	top := b.Exprs.NewBinary(source.Span{}, Pow, two, inner)

	p := NewPrinter(b, interns)
	got := p.Expr(top)
	want := "(2 ** (3 ** 2))"
	if got != want {
		t.Fatalf("Expr() = %q, want %q", got, want)
	}
}

func TestFunctionDecl_RoundTrip(t *testing.T) {
	interns := source.NewInterner()
	b := NewBuilder(Hints{})

	a := interns.Intern("a")
	bb := interns.Intern("b")
	i32 := interns.Intern("i32")
	add := interns.Intern("add")

	i32TypeA := b.Exprs.NewIdent(source.Span{}, i32)
	i32TypeB := b.Exprs.NewIdent(source.Span{}, i32)
	retType := b.Exprs.NewIdent(source.Span{}, i32)

	aIdent := b.Exprs.NewIdent(source.Span{}, a)
	bIdent := b.Exprs.NewIdent(source.Span{}, bb)
	sum := b.Exprs.NewBinary(source.Span{}, Add, aIdent, bIdent)
	exprStmt := b.Stmts.NewExprStmt(source.Span{}, sum)
	body := b.Stmts.NewBlock(source.Span{}, []StmtID{exprStmt})

	fnID := b.Items.NewFunction(source.Span{}, FunctionDecl{
		Name: add,
		Params: []Param{
			{Name: a, Type: i32TypeA},
			{Name: bb, Type: i32TypeB},
		},
		ReturnType: retType,
		Body:       body,
	})

	p := NewPrinter(b, interns)
	got := p.Item(fnID)
	want := "fn add(a: i32, b: i32) -> i32 {\n  (a + b);\n}"
	if got != want {
		t.Fatalf("Item() = %q, want %q", got, want)
	}
}

func TestVarDecl_OptionalClauses(t *testing.T) {
	tests := []struct {
		name string
		decl VarDecl
		want string
	}{
		{
			name: "name only",
			decl: VarDecl{},
			want: "let ",
		},
		{
			name: "mutable without init",
			decl: VarDecl{IsMut: true},
			want: "let mut ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interns := source.NewInterner()
			b := NewBuilder(Hints{})
			tt.decl.Name = interns.Intern("x")
			id := b.Stmts.NewVarDecl(source.Span{}, tt.decl)
			p := NewPrinter(b, interns)
			got := p.Stmt(id, 0)
			want := tt.want + "x"
			if got != want {
				t.Fatalf("Stmt() = %q, want %q", got, want)
			}
		})
	}
}

func TestWalker_VisitsEveryExprNode(t *testing.T) {
	interns := source.NewInterner()
	b := NewBuilder(Hints{})
	one := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 1})
	two := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 2})
	bin := b.Exprs.NewBinary(source.Span{}, Add, one, two)

	w := NewWalker(b)
	var visited []ExprKind
	mv := &countingVisitor{record: func(k ExprKind) { visited = append(visited, k) }}
	w.WalkExpr(bin, mv)

	if len(visited) != 3 {
		t.Fatalf("visited %d nodes, want 3", len(visited))
	}
	if visited[2] != ExprBinary {
		t.Fatalf("last visited kind = %v, want ExprBinary", visited[2])
	}
	_ = interns
}

func TestWalker_VisitsExprStmt(t *testing.T) {
	b := NewBuilder(Hints{})
	one := b.Exprs.NewLiteral(source.Span{}, Literal{Kind: LitInt, I64: 1})
	exprStmt := b.Stmts.NewExprStmt(source.Span{}, one)

	w := NewWalker(b)
	var visitedStmt bool
	var visitedExpr bool
	v := &countingVisitor{record: func(ExprKind) { visitedExpr = true }}
	v.onExprStmt = func(StmtID, *ExprStmtPayload) { visitedStmt = true }
	w.WalkStmt(exprStmt, v)

	if !visitedExpr {
		t.Fatalf("expected the inner literal to be visited")
	}
	if !visitedStmt {
		t.Fatalf("expected VisitExprStmt to be called for the StmtExpr node itself")
	}
}

type countingVisitor struct {
	record     func(ExprKind)
	onExprStmt func(StmtID, *ExprStmtPayload)
}

func (v *countingVisitor) VisitLiteral(ExprID, *Literal)  { v.record(ExprLiteral) }
func (v *countingVisitor) VisitIdent(ExprID, *Ident)      { v.record(ExprIdentifier) }
func (v *countingVisitor) VisitBinary(ExprID, *Binary)    { v.record(ExprBinary) }
func (v *countingVisitor) VisitUnary(ExprID, *Unary)      { v.record(ExprUnary) }
func (v *countingVisitor) VisitCall(ExprID, *Call)        { v.record(ExprCall) }
func (v *countingVisitor) VisitBlock(StmtID, *Block)      {}
func (v *countingVisitor) VisitVarDecl(StmtID, *VarDecl)  {}
func (v *countingVisitor) VisitExprStmt(id StmtID, es *ExprStmtPayload) {
	if v.onExprStmt != nil {
		v.onExprStmt(id, es)
	}
}
func (v *countingVisitor) VisitFunction(ItemID, *FunctionDecl) {}
