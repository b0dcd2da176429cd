package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/source"
)

// Pretty renders every diagnostic in bag to w, in insertion order, using
// the plain/compact/colored rendering spec.md §4.3 describes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	useColor := opts.Color && supportsColor()
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts, useColor)
	}
	writeSummary(w, bag)
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, useColor bool) {
	if opts.Compact {
		writeCompactLine(w, d.Severity, d.Message, d.Primary, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeCompactLine(w, diag.SevInfo, note.Msg, note.Span, fs, opts)
			}
		}
		return
	}

	writeBlock(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts, useColor)
	if opts.ShowNotes {
		for _, note := range d.Notes {
			writeBlock(w, diag.SevInfo, diag.UnknownCode, note.Msg, note.Span, fs, opts, useColor)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "help: %s\n", fix.Title)
		}
	}
}

func writeCompactLine(w io.Writer, sev diag.Severity, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	loc := "<unknown>"
	if fs != nil {
		loc = locationString(span, fs, opts.PathMode)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", loc, strings.ToLower(sev.String()), msg)
}

func writeBlock(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts, useColor bool) {
	fmt.Fprintf(w, "%s: %s\n", levelLabel(sev, useColor), msg)

	if fs == nil {
		return
	}
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, _ := fs.Resolve(span)

	header := fmt.Sprintf("  --> %s:%d:%d", pathFor(f, fs, opts.PathMode), start.Line, start.Col)
	if code != diag.UnknownCode {
		header += fmt.Sprintf(" [E%d]", uint16(code))
	}
	fmt.Fprintln(w, header)

	if !opts.ShowSourceContext {
		return
	}

	line := f.GetLine(start.Line)
	maxLen := opts.MaxLineLength
	if maxLen <= 0 {
		maxLen = 120
	}
	display := line
	if runewidth.StringWidth(line) > maxLen {
		display = runewidth.Truncate(line, maxLen, "…")
	}

	gutter := ""
	if opts.ShowLineNumbers {
		gutter = fmt.Sprintf("%d", start.Line)
	}
	fmt.Fprintf(w, " %s | %s\n", gutter, display)

	if opts.ShowColumnMarkers {
		runes := []rune(line)
		upto := int(start.Col) - 1
		if upto > len(runes) {
			upto = len(runes)
		}
		if upto < 0 {
			upto = 0
		}
		pad := strings.Repeat(" ", len(gutter)+3)
		marker := strings.Repeat(" ", runewidth.StringWidth(string(runes[:upto])))
		fmt.Fprintf(w, "%s%s^\n", pad, marker)
	}
}

func writeSummary(w io.Writer, bag *diag.Bag) {
	var errors, warnings, notes int
	for _, d := range bag.Items() {
		switch {
		case d.Severity >= diag.SevError:
			errors++
		case d.Severity == diag.SevWarning:
			warnings++
		default:
			notes++
		}
	}
	if errors == 0 && warnings == 0 {
		if notes > 0 {
			fmt.Fprintf(w, "compilation completed successfully (%s generated)\n", pluralize(notes, "note", "notes"))
			return
		}
		fmt.Fprintln(w, "compilation completed successfully")
		return
	}
	fmt.Fprintf(w, "%s, %s, %s generated\n",
		pluralize(errors, "error", "errors"),
		pluralize(warnings, "warning", "warnings"),
		pluralize(notes, "note", "notes"))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func levelLabel(sev diag.Severity, useColor bool) string {
	label := strings.ToLower(sev.String())
	if !useColor {
		return label
	}
	return severityColor(sev)("%s", label)
}

func locationString(span source.Span, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", pathFor(f, fs, mode), start.Line, start.Col)
}

func pathFor(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", fs.BaseDir())
	}
}
