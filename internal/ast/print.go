package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/photon-lang/photon/internal/source"
)

// Printer renders AST nodes back to source-like text, used by tests to
// assert on parse shape without comparing arena indices directly.
type Printer struct {
	Exprs   *Exprs
	Stmts   *Stmts
	Items   *Items
	Interns *source.Interner
}

func NewPrinter(b *Builder, interns *source.Interner) *Printer {
	return &Printer{Exprs: b.Exprs, Stmts: b.Stmts, Items: b.Items, Interns: interns}
}

func (p *Printer) name(id source.StringID) string {
	s, _ := p.Interns.Lookup(id)
	return s
}

func (p *Printer) Expr(id ExprID) string {
	if !id.IsValid() {
		return ""
	}
	n := p.Exprs.Get(id)
	switch n.Kind {
	case ExprLiteral:
		lit := p.Exprs.Literals.Get(n.Payload)
		switch lit.Kind {
		case LitInt:
			return strconv.FormatInt(lit.I64, 10)
		case LitFloat:
			return strconv.FormatFloat(lit.F64, 'g', -1, 64)
		case LitString:
			return strconv.Quote(p.name(lit.Str))
		case LitBool:
			if lit.Bool {
				return "true"
			}
			return "false"
		}
	case ExprIdentifier:
		ident := p.Exprs.Idents.Get(n.Payload)
		return p.name(ident.Name)
	case ExprBinary:
		b := p.Exprs.Binaries.Get(n.Payload)
		return fmt.Sprintf("(%s %s %s)", p.Expr(b.Left), b.Op, p.Expr(b.Right))
	case ExprUnary:
		u := p.Exprs.Unaries.Get(n.Payload)
		return fmt.Sprintf("(%s%s)", u.Op, p.Expr(u.Operand))
	case ExprCall:
		c := p.Exprs.Calls.Get(n.Payload)
		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = p.Expr(a)
		}
		return fmt.Sprintf("%s(%s)", p.Expr(c.Callee), strings.Join(args, ", "))
	}
	return "<?expr>"
}

func (p *Printer) Stmt(id StmtID, indent int) string {
	n := p.Stmts.Get(id)
	pad := strings.Repeat("  ", indent)
	switch n.Kind {
	case StmtBlock:
		blk := p.Stmts.Blocks.Get(n.Payload)
		if len(blk.Stmts) == 0 {
			return "{}"
		}
		var b strings.Builder
		b.WriteString("{\n")
		for _, s := range blk.Stmts {
			b.WriteString(pad + "  " + p.Stmt(s, indent+1) + ";\n")
		}
		b.WriteString(pad + "}")
		return b.String()
	case StmtVarDecl:
		v := p.Stmts.VarDecls.Get(n.Payload)
		var b strings.Builder
		b.WriteString("let ")
		if v.IsMut {
			b.WriteString("mut ")
		}
		b.WriteString(p.name(v.Name))
		if v.Type.IsValid() {
			b.WriteString(": " + p.Expr(v.Type))
		}
		if v.Init.IsValid() {
			b.WriteString(" = " + p.Expr(v.Init))
		}
		return b.String()
	case StmtExpr:
		e := p.Stmts.ExprStmts.Get(n.Payload)
		return p.Expr(e.Expr)
	}
	return "<?stmt>"
}

func (p *Printer) Function(id ItemID) string {
	fn := p.Items.Function(id)
	params := make([]string, len(fn.Params))
	for i, pr := range fn.Params {
		params[i] = p.name(pr.Name) + ": " + p.Expr(pr.Type)
	}
	var b strings.Builder
	b.WriteString("fn " + p.name(fn.Name) + "(" + strings.Join(params, ", ") + ")")
	if fn.ReturnType.IsValid() {
		b.WriteString(" -> " + p.Expr(fn.ReturnType))
	}
	b.WriteString(" " + p.Stmt(fn.Body, 0))
	return b.String()
}

func (p *Printer) Item(id ItemID) string {
	n := p.Items.Get(id)
	switch n.Kind {
	case ItemFunction:
		return p.Function(id)
	}
	return "<?item>"
}

func (p *Printer) Program(prog *Program) string {
	parts := make([]string, len(prog.Items))
	for i, it := range prog.Items {
		parts[i] = p.Item(it)
	}
	return strings.Join(parts, "\n\n")
}
