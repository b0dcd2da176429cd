package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/diagfmt"
	"github.com/photon-lang/photon/internal/source"
)

func newTestFileSet(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.ph", []byte(content))
	return fs, fid
}

func TestPretty_PlainBlock(t *testing.T) {
	fs, fid := newTestFileSet(t, "let x = \"unterminated\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: fid, Start: 8, End: 21}, "unterminated string literal"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.DefaultPrettyOpts())
	out := buf.String()

	if !strings.Contains(out, "error: unterminated string literal") {
		t.Fatalf("missing error header, got:\n%s", out)
	}
	if !strings.Contains(out, "--> test.ph:1:9") {
		t.Fatalf("missing location line, got:\n%s", out)
	}
	if !strings.Contains(out, "1 errors") && !strings.Contains(out, "1 error,") {
		t.Fatalf("missing summary, got:\n%s", out)
	}
}

func TestPretty_CompactMode(t *testing.T) {
	fs, fid := newTestFileSet(t, "1 + \n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: fid, Start: 4, End: 5}, "unexpected token"))

	opts := diagfmt.DefaultPrettyOpts()
	opts.Compact = true
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, opts)
	out := buf.String()

	if !strings.HasPrefix(out, "test.ph:1:5: error: unexpected token") {
		t.Fatalf("got %q", out)
	}
}

func TestPretty_SuccessSummary(t *testing.T) {
	bag := diag.NewBag(10)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, nil, diagfmt.DefaultPrettyOpts())
	if strings.TrimSpace(buf.String()) != "compilation completed successfully" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPretty_ErrorCodeTag(t *testing.T) {
	fs, fid := newTestFileSet(t, "@@@\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: fid, Start: 0, End: 1}, "unknown character"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.DefaultPrettyOpts())
	if !strings.Contains(buf.String(), "[E1001]") {
		t.Fatalf("missing error code tag, got:\n%s", buf.String())
	}
}

func TestPretty_NotesRendered(t *testing.T) {
	fs, fid := newTestFileSet(t, "fn f(a, a) {}\n")
	d := diag.New(diag.SevError, diag.SynDuplicateParameter, source.Span{File: fid, Start: 8, End: 9}, "duplicate parameter \"a\"")
	d.Notes = []diag.Note{{Span: source.Span{File: fid, Start: 5, End: 6}, Msg: "first declared here"}}
	bag := diag.NewBag(10)
	bag.Add(d)

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.DefaultPrettyOpts())
	if !strings.Contains(buf.String(), "note: first declared here") {
		t.Fatalf("missing note, got:\n%s", buf.String())
	}
}
