package ast

import "github.com/photon-lang/photon/internal/source"

// Expr is the closed tagged node for the expression category. Payload is an
// index into the arena selected by Kind (Literals for ExprLiteral, Idents
// for ExprIdentifier, and so on); it is opaque outside this package.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
}

type Literal struct {
	Kind LiteralKind
	I64  int64
	F64  float64
	Str  source.StringID
	Bool bool
}

type Ident struct {
	Name source.StringID
}

type Binary struct {
	Op          BinaryOp
	Left, Right ExprID
}

type Unary struct {
	Op      UnaryOp
	Operand ExprID
}

type Call struct {
	Callee ExprID
	Args   []ExprID
}

// Exprs owns the expression arena and one payload arena per variant.
type Exprs struct {
	Arena    *Arena[Expr]
	Literals *Arena[Literal]
	Idents   *Arena[Ident]
	Binaries *Arena[Binary]
	Unaries  *Arena[Unary]
	Calls    *Arena[Call]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Literals: NewArena[Literal](capHint / 4),
		Idents:   NewArena[Ident](capHint / 4),
		Binaries: NewArena[Binary](capHint / 4),
		Unaries:  NewArena[Unary](capHint / 8),
		Calls:    NewArena[Call](capHint / 8),
	}
}

func (e *Exprs) Get(id ExprID) *Expr { return e.Arena.Get(uint32(id)) }

func (e *Exprs) NewLiteral(sp source.Span, lit Literal) ExprID {
	payload := e.Literals.Allocate(lit)
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprLiteral, Span: sp, Payload: payload}))
}

func (e *Exprs) NewIdent(sp source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(Ident{Name: name})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprIdentifier, Span: sp, Payload: payload}))
}

func (e *Exprs) NewBinary(sp source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(Binary{Op: op, Left: left, Right: right})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprBinary, Span: sp, Payload: payload}))
}

func (e *Exprs) NewUnary(sp source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(Unary{Op: op, Operand: operand})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprUnary, Span: sp, Payload: payload}))
}

func (e *Exprs) NewCall(sp source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(Call{Callee: callee, Args: args})
	return ExprID(e.Arena.Allocate(Expr{Kind: ExprCall, Span: sp, Payload: payload}))
}

func (e *Exprs) Literal(id ExprID) *Literal {
	n := e.Get(id)
	if n == nil || n.Kind != ExprLiteral {
		return nil
	}
	return e.Literals.Get(n.Payload)
}

func (e *Exprs) Ident(id ExprID) *Ident {
	n := e.Get(id)
	if n == nil || n.Kind != ExprIdentifier {
		return nil
	}
	return e.Idents.Get(n.Payload)
}

func (e *Exprs) Binary(id ExprID) *Binary {
	n := e.Get(id)
	if n == nil || n.Kind != ExprBinary {
		return nil
	}
	return e.Binaries.Get(n.Payload)
}

func (e *Exprs) Unary(id ExprID) *Unary {
	n := e.Get(id)
	if n == nil || n.Kind != ExprUnary {
		return nil
	}
	return e.Unaries.Get(n.Payload)
}

func (e *Exprs) Call(id ExprID) *Call {
	n := e.Get(id)
	if n == nil || n.Kind != ExprCall {
		return nil
	}
	return e.Calls.Get(n.Payload)
}
