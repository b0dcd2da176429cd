package diag

import (
	"math"
	"sync/atomic"

	"github.com/photon-lang/photon/internal/source"
)

// Engine is the DiagnosticEngine: a shared sink with atomic counters that
// may be reported into from multiple phases/goroutines, backed by an
// ordered Bag that
// callers are expected to serialize access to (sort/dedup/clear).
type Engine struct {
	bag *Bag

	errors    atomic.Uint64
	warnings  atomic.Uint64
	notes     atomic.Uint64
	fatalSeen atomic.Bool

	maxErrors uint64
}

// NewEngine builds an Engine. maxErrors == 0 means unlimited.
func NewEngine(maxErrors uint64) *Engine {
	return &Engine{bag: &Bag{max: math.MaxUint16}, maxErrors: maxErrors}
}

func (e *Engine) Bag() *Bag { return e.bag }

// ShouldStop mirrors fatal_seen ∨ (max_errors>0 ∧ errors≥max_errors).
func (e *Engine) ShouldStop() bool {
	if e.fatalSeen.Load() {
		return true
	}
	return e.maxErrors > 0 && e.errors.Load() >= e.maxErrors
}

// Report accepts a fully-built Diagnostic. Returns false if should_stop was
// already true before acceptance (the diagnostic is dropped); otherwise it
// is appended and the return value reflects should_stop's new state.
func (e *Engine) Report(d Diagnostic) bool {
	if e.ShouldStop() {
		return false
	}
	switch d.Severity {
	case SevFatal:
		e.errors.Add(1)
		e.fatalSeen.Store(true)
	case SevError:
		e.errors.Add(1)
	case SevWarning:
		e.warnings.Add(1)
	case SevInfo:
		e.notes.Add(1)
	}
	e.bag.Add(d)
	return !e.ShouldStop()
}

// Error builds and immediately reports a SevError diagnostic with no notes
// or fixes attached. Returns the engine's should_stop state after reporting.
func (e *Engine) Error(code Code, primary source.Span, msg string) bool {
	return e.Report(Diagnostic{Severity: SevError, Code: code, Message: msg, Primary: primary})
}

// Warning builds and immediately reports a SevWarning diagnostic.
func (e *Engine) Warning(code Code, primary source.Span, msg string) bool {
	return e.Report(Diagnostic{Severity: SevWarning, Code: code, Message: msg, Primary: primary})
}

// Note builds and immediately reports a SevInfo diagnostic.
func (e *Engine) Note(code Code, primary source.Span, msg string) bool {
	return e.Report(Diagnostic{Severity: SevInfo, Code: code, Message: msg, Primary: primary})
}

// Fatal builds and immediately reports a SevFatal diagnostic.
func (e *Engine) Fatal(code Code, primary source.Span, msg string) bool {
	return e.Report(Diagnostic{Severity: SevFatal, Code: code, Message: msg, Primary: primary})
}

// MakeError returns a ReportBuilder for a SevError diagnostic bound to this
// engine, for call sites that want to attach notes, suggestions, or fixes
// before calling Emit.
func (e *Engine) MakeError(code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(EngineReporter{Engine: e}, SevError, code, primary, msg)
}

// MakeWarning returns a ReportBuilder for a SevWarning diagnostic bound to
// this engine.
func (e *Engine) MakeWarning(code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(EngineReporter{Engine: e}, SevWarning, code, primary, msg)
}

// MakeFatal returns a ReportBuilder for a SevFatal diagnostic bound to this
// engine.
func (e *Engine) MakeFatal(code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(EngineReporter{Engine: e}, SevFatal, code, primary, msg)
}

// ReportDiagnostic implements the Reporter interface so the lexer/parser's
// existing call sites (which speak Code/Severity/span/message) can target
// an Engine directly instead of a bare BagReporter.
func (e *Engine) ReportDiagnostic(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	e.Report(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes, Fixes: fixes})
}

func (e *Engine) Errors() uint64   { return e.errors.Load() }
func (e *Engine) Warnings() uint64 { return e.warnings.Load() }
func (e *Engine) Notes() uint64    { return e.notes.Load() }
func (e *Engine) HasFatal() bool   { return e.fatalSeen.Load() }

// EngineReporter adapts Engine to the Reporter interface used throughout
// the lexer and parser.
type EngineReporter struct{ Engine *Engine }

func (r EngineReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r.Engine == nil {
		return
	}
	r.Engine.ReportDiagnostic(code, sev, primary, msg, notes, fixes)
}

// FilteredDiagnostics returns diagnostics at or above the given severity.
func (e *Engine) FilteredDiagnostics(min Severity) []Diagnostic {
	items := e.bag.Items()
	out := make([]Diagnostic, 0, len(items))
	for _, d := range items {
		if d.Severity >= min {
			out = append(out, d)
		}
	}
	return out
}

// DiagnosticsByCode groups the engine's current diagnostics by Code.
func (e *Engine) DiagnosticsByCode() map[Code][]Diagnostic {
	out := make(map[Code][]Diagnostic)
	for _, d := range e.bag.Items() {
		out[d.Code] = append(out[d.Code], d)
	}
	return out
}

// DiagnosticsByLevel groups the engine's current diagnostics by Severity.
func (e *Engine) DiagnosticsByLevel() map[Severity][]Diagnostic {
	out := make(map[Severity][]Diagnostic)
	for _, d := range e.bag.Items() {
		out[d.Severity] = append(out[d.Severity], d)
	}
	return out
}
