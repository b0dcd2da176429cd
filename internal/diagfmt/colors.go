package diagfmt

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/photon-lang/photon/internal/diag"
)

var severityColors = map[diag.Severity]*color.Color{
	diag.SevFatal:   color.New(color.FgRed, color.Bold),
	diag.SevError:   color.New(color.FgRed),
	diag.SevWarning: color.New(color.FgYellow),
	diag.SevInfo:    color.New(color.FgCyan),
}

// supportsColor reports whether ANSI color escapes should be emitted:
// stdout must be a terminal, TERM must be set and not "dumb", and either
// COLORTERM is set or TERM names a color-capable terminal.
func supportsColor() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return false
	}
	if os.Getenv("COLORTERM") != "" {
		return true
	}
	for _, marker := range []string{"color", "xterm", "screen", "ansi"} {
		if strings.Contains(termEnv, marker) {
			return true
		}
	}
	return false
}

func severityColor(sev diag.Severity) func(format string, a ...any) string {
	c, ok := severityColors[sev]
	if !ok {
		return severityColors[diag.SevError].SprintfFunc()
	}
	return c.SprintfFunc()
}
