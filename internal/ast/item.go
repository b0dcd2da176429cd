package ast

import "github.com/photon-lang/photon/internal/source"

// Param is one entry of a FunctionDecl's parameter list: `name ':' type`.
type Param struct {
	Name source.StringID
	Type ExprID
	Span source.Span
}

type FunctionDecl struct {
	Name       source.StringID
	NameSpan   source.Span
	Params     []Param
	ReturnType ExprID // NoExprID when the `-> type` clause is absent
	Body       StmtID // a StmtBlock
}

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload uint32
}

type Items struct {
	Arena     *Arena[Item]
	Functions *Arena[FunctionDecl]
}

func NewItems(capHint uint) *Items {
	return &Items{
		Arena:     NewArena[Item](capHint),
		Functions: NewArena[FunctionDecl](capHint),
	}
}

func (it *Items) Get(id ItemID) *Item { return it.Arena.Get(uint32(id)) }

func (it *Items) NewFunction(sp source.Span, fn FunctionDecl) ItemID {
	payload := it.Functions.Allocate(fn)
	return ItemID(it.Arena.Allocate(Item{Kind: ItemFunction, Span: sp, Payload: payload}))
}

func (it *Items) Function(id ItemID) *FunctionDecl {
	n := it.Get(id)
	if n == nil || n.Kind != ItemFunction {
		return nil
	}
	return it.Functions.Get(n.Payload)
}
