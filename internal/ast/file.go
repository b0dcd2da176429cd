package ast

import "github.com/photon-lang/photon/internal/source"

// Program is the root node: the declarations parsed out of one source file,
// in order. It is not part of the ExprKind/StmtKind/ItemKind tag space —
// there is exactly one Program per parse and nothing downcasts into it.
type Program struct {
	Source source.FileID
	Span   source.Span
	Items  []ItemID
}

type Files struct {
	Arena *Arena[Program]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[Program](capHint)}
}

func (f *Files) New(src source.FileID, sp source.Span) FileID {
	return FileID(f.Arena.Allocate(Program{Source: src, Span: sp}))
}

func (f *Files) Get(id FileID) *Program { return f.Arena.Get(uint32(id)) }
