package lexer

import (
	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/source"
)

// Options configures a Lexer. Reporter may be nil; diagnostics are then
// simply dropped and lexing continues best-effort.
type Options struct {
	Reporter diag.Reporter

	// PreserveWhitespace/PreserveComments are stored but not consulted:
	// whitespace, newline and comment trivia are always attached to the
	// next token's Leading slice, and comments never become tokens of
	// their own, whatever these flags are set to.
	PreserveWhitespace bool
	PreserveComments   bool

	// StrictMode is stored but not consulted; lexing and its diagnostics
	// are the same whether it is set or not.
	StrictMode bool
}

// errLex reports a lexical diagnostic through the configured Reporter.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil, nil)
}
