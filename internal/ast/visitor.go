package ast

// Visitor is the read-only traversal capability set: one VisitX per node
// type that appears in the parsed subset. Walk calls the matching method
// for every node reachable from a Program, post-order (a node's children
// are visited before the node itself).
type Visitor interface {
	VisitLiteral(id ExprID, lit *Literal)
	VisitIdent(id ExprID, ident *Ident)
	VisitBinary(id ExprID, bin *Binary)
	VisitUnary(id ExprID, un *Unary)
	VisitCall(id ExprID, call *Call)
	VisitBlock(id StmtID, blk *Block)
	VisitVarDecl(id StmtID, decl *VarDecl)
	VisitExprStmt(id StmtID, es *ExprStmtPayload)
	VisitFunction(id ItemID, fn *FunctionDecl)
}

// Mutator is the mutable counterpart: each method may rewrite the node
// in place via the pointer it receives.
type Mutator interface {
	MutateLiteral(id ExprID, lit *Literal)
	MutateIdent(id ExprID, ident *Ident)
	MutateBinary(id ExprID, bin *Binary)
	MutateUnary(id ExprID, un *Unary)
	MutateCall(id ExprID, call *Call)
	MutateBlock(id StmtID, blk *Block)
	MutateVarDecl(id StmtID, decl *VarDecl)
	MutateExprStmt(id StmtID, es *ExprStmtPayload)
	MutateFunction(id ItemID, fn *FunctionDecl)
}

type Walker struct {
	Exprs *Exprs
	Stmts *Stmts
	Items *Items
}

func NewWalker(b *Builder) *Walker {
	return &Walker{Exprs: b.Exprs, Stmts: b.Stmts, Items: b.Items}
}

func (w *Walker) WalkExpr(id ExprID, v Visitor) {
	if !id.IsValid() {
		return
	}
	n := w.Exprs.Get(id)
	switch n.Kind {
	case ExprLiteral:
		v.VisitLiteral(id, w.Exprs.Literals.Get(n.Payload))
	case ExprIdentifier:
		v.VisitIdent(id, w.Exprs.Idents.Get(n.Payload))
	case ExprBinary:
		b := w.Exprs.Binaries.Get(n.Payload)
		w.WalkExpr(b.Left, v)
		w.WalkExpr(b.Right, v)
		v.VisitBinary(id, b)
	case ExprUnary:
		u := w.Exprs.Unaries.Get(n.Payload)
		w.WalkExpr(u.Operand, v)
		v.VisitUnary(id, u)
	case ExprCall:
		c := w.Exprs.Calls.Get(n.Payload)
		w.WalkExpr(c.Callee, v)
		for _, a := range c.Args {
			w.WalkExpr(a, v)
		}
		v.VisitCall(id, c)
	}
}

func (w *Walker) WalkStmt(id StmtID, v Visitor) {
	if !id.IsValid() {
		return
	}
	n := w.Stmts.Get(id)
	switch n.Kind {
	case StmtBlock:
		blk := w.Stmts.Blocks.Get(n.Payload)
		for _, s := range blk.Stmts {
			w.WalkStmt(s, v)
		}
		v.VisitBlock(id, blk)
	case StmtVarDecl:
		decl := w.Stmts.VarDecls.Get(n.Payload)
		w.WalkExpr(decl.Type, v)
		w.WalkExpr(decl.Init, v)
		v.VisitVarDecl(id, decl)
	case StmtExpr:
		es := w.Stmts.ExprStmts.Get(n.Payload)
		w.WalkExpr(es.Expr, v)
		v.VisitExprStmt(id, es)
	}
}

func (w *Walker) WalkItem(id ItemID, v Visitor) {
	n := w.Items.Get(id)
	switch n.Kind {
	case ItemFunction:
		fn := w.Items.Function(id)
		for _, p := range fn.Params {
			w.WalkExpr(p.Type, v)
		}
		w.WalkExpr(fn.ReturnType, v)
		w.WalkStmt(fn.Body, v)
		v.VisitFunction(id, fn)
	}
}

func (w *Walker) WalkProgram(prog *Program, v Visitor) {
	for _, it := range prog.Items {
		w.WalkItem(it, v)
	}
}
