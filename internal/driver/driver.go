// Package driver wires the lexer, parser, and diagnostics engine into the
// single-pass pipeline the CLI drives: load a file, tokenize it, parse it,
// and hand back a Program alongside whatever diagnostics were collected.
package driver

import (
	"errors"

	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/lexer"
	"github.com/photon-lang/photon/internal/parser"
	"github.com/photon-lang/photon/internal/source"
)

// builtinExample is used when no path is given, so the driver always has
// something to compile.
const builtinExample = `fn add(a: i32, b: i32) -> i32 {
  a + b
}

fn main() {
  let result = add(1, 2);
}
`

// Result carries everything a caller needs to report diagnostics and
// inspect the parsed program.
type Result struct {
	FileSet  *source.FileSet
	FileID   source.FileID
	Builder  *ast.Builder
	Program  ast.FileID
	Interner *source.Interner
	Bag      *diag.Bag
}

// Compile loads path (or a built-in example when path is empty), lexes it,
// and parses it into a Program. Lexer and parser diagnostics both land in
// Result.Bag in the order they are reported: the file is tokenized in full
// before parsing starts, so every lexer diagnostic precedes every parser one.
func Compile(path string, maxDiagnostics int) (*Result, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 1000
	}

	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)

	var fid source.FileID
	if path == "" {
		fid = fs.AddVirtual("<builtin>", []byte(builtinExample))
	} else {
		loaded, err := fs.LoadFile(path, "")
		if err != nil {
			bag.Add(diag.New(diag.SevFatal, loadErrorCode(err), source.Span{}, err.Error()))
			return &Result{FileSet: fs, Bag: bag}, nil
		}
		fid = loaded
	}
	file := fs.Get(fid)

	reporter := diag.BagReporter{Bag: bag}

	if err := fs.ValidateFileUTF8(fid); err != nil {
		var offset uint32
		var utfErr *source.InvalidUTF8Error
		if errors.As(err, &utfErr) {
			offset = utfErr.Offset
		}
		bag.Add(diag.New(diag.SevFatal, diag.IOInvalidUtf8, source.Span{File: fid, Start: offset, End: offset + 1}, err.Error()))
		return &Result{FileSet: fs, FileID: fid, Bag: bag}, nil
	}

	lx := lexer.New(file, lexer.Options{
		Reporter:           reporter,
		PreserveWhitespace: true,
		PreserveComments:   true,
	})
	builder := ast.NewBuilder(ast.Hints{})
	interner := source.NewInterner()
	p := parser.New(lx, fid, builder, interner, parser.Options{Reporter: reporter})

	program := p.ParseProgram()

	return &Result{
		FileSet:  fs,
		FileID:   fid,
		Builder:  builder,
		Program:  program,
		Interner: interner,
		Bag:      bag,
	}, nil
}

// loadErrorCode maps a LoadFile failure to the diag.Code spec.md §4.2
// names for it, falling back to the generic load-error code for anything
// that didn't come from LoadFile as a typed *source.LoadError.
func loadErrorCode(err error) diag.Code {
	var loadErr *source.LoadError
	if errors.As(err, &loadErr) {
		switch loadErr.Kind {
		case source.LoadErrorFileNotFound:
			return diag.IOFileNotFound
		case source.LoadErrorAccessDenied:
			return diag.IOAccessDenied
		case source.LoadErrorFileTooLarge:
			return diag.IOFileTooLarge
		case source.LoadErrorTooManyFiles:
			return diag.IOTooManyFiles
		case source.LoadErrorMemoryMapFailed:
			return diag.IOMemoryMapFailed
		}
	}
	return diag.IOLoadFileError
}
