package ast

import "github.com/photon-lang/photon/internal/source"

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload uint32
}

type Block struct {
	Stmts []StmtID
}

// VarDecl mirrors `let [mut] name [: type] [= init]`; Type and Init are
// NoExprID when the corresponding clause was absent — all three are
// independently optional apart from the name itself.
type VarDecl struct {
	Name   source.StringID
	Type   ExprID
	Init   ExprID
	IsMut  bool
	NameSp source.Span
}

// ExprStmtPayload wraps an expression parsed in statement position. The
// language design reserves this kind without mandating it be built; we
// build it so the statement list reflects everything the parser actually
// consumed (see DESIGN.md's decision on the reserved ExprStmt kind).
type ExprStmtPayload struct {
	Expr ExprID
}

type Stmts struct {
	Arena     *Arena[Stmt]
	Blocks    *Arena[Block]
	VarDecls  *Arena[VarDecl]
	ExprStmts *Arena[ExprStmtPayload]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Blocks:    NewArena[Block](capHint / 4),
		VarDecls:  NewArena[VarDecl](capHint / 4),
		ExprStmts: NewArena[ExprStmtPayload](capHint / 2),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt { return s.Arena.Get(uint32(id)) }

func (s *Stmts) NewBlock(sp source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(Block{Stmts: stmts})
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtBlock, Span: sp, Payload: payload}))
}

func (s *Stmts) NewVarDecl(sp source.Span, decl VarDecl) StmtID {
	payload := s.VarDecls.Allocate(decl)
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtVarDecl, Span: sp, Payload: payload}))
}

func (s *Stmts) NewExprStmt(sp source.Span, expr ExprID) StmtID {
	payload := s.ExprStmts.Allocate(ExprStmtPayload{Expr: expr})
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtExpr, Span: sp, Payload: payload}))
}

func (s *Stmts) Block(id StmtID) *Block {
	n := s.Get(id)
	if n == nil || n.Kind != StmtBlock {
		return nil
	}
	return s.Blocks.Get(n.Payload)
}

func (s *Stmts) VarDeclOf(id StmtID) *VarDecl {
	n := s.Get(id)
	if n == nil || n.Kind != StmtVarDecl {
		return nil
	}
	return s.VarDecls.Get(n.Payload)
}

func (s *Stmts) ExprStmt(id StmtID) *ExprStmtPayload {
	n := s.Get(id)
	if n == nil || n.Kind != StmtExpr {
		return nil
	}
	return s.ExprStmts.Get(n.Payload)
}
