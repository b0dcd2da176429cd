package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color             bool
	ShowSourceContext bool
	ContextLines      int8
	ShowLineNumbers   bool
	ShowColumnMarkers bool
	Compact           bool
	MaxLineLength     int
	PathMode          PathMode
	ShowNotes         bool
	ShowFixes         bool
}

// DefaultPrettyOpts matches the formatter defaults: two lines of source
// context, a 120-column truncation width, notes and fixes both shown.
func DefaultPrettyOpts() PrettyOpts {
	return PrettyOpts{
		ShowSourceContext: true,
		ContextLines:      2,
		ShowLineNumbers:   true,
		ShowColumnMarkers: true,
		MaxLineLength:     120,
		ShowNotes:         true,
		ShowFixes:         true,
	}
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int
	IncludeNotes     bool
	IncludeFixes     bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
