package lexer_test

import (
	"fmt"
	"testing"

	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/lexer"
	"github.com/photon-lang/photon/internal/source"
	"github.com/photon-lang/photon/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%d] %s: %s", d.Code, d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ph", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\nerrors: %v", len(expected), len(tokens), input, reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v", kind, tok.Kind)
	}
	if tok.Text != text {
		t.Errorf("expected text %q, got %q", text, tok.Text)
	}
	return tok
}

func TestIdentifiers_ASCII(t *testing.T) {
	for _, name := range []string{"x", "foo", "foo_bar", "_private", "CamelCase", "a1b2c3"} {
		expectSingleToken(t, name, token.Ident, name)
	}
}

func TestIdentifiers_NonASCIIStartsNewToken(t *testing.T) {
	// identifiers are ASCII-only; a UTF-8 continuation byte doesn't extend one
	lx, reporter := makeTestLexer("café")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "caf" {
		t.Fatalf("expected Ident %q, got %v %q", "caf", tok.Kind, tok.Text)
	}
	lx.Next() // consumes the non-ASCII byte as an unknown character
	if !reporter.HasErrors() {
		t.Fatalf("expected an unknown-character diagnostic for the non-ASCII byte")
	}
}

func TestUnderscore_Single(t *testing.T) {
	expectSingleToken(t, "_", token.Underscore, "_")
}

func TestKeywords(t *testing.T) {
	cases := map[string]token.Kind{
		"fn": token.KwFn, "let": token.KwLet, "const": token.KwConst, "mut": token.KwMut,
		"if": token.KwIf, "else": token.KwElse, "while": token.KwWhile, "for": token.KwFor,
		"return": token.KwReturn, "break": token.KwBreak, "continue": token.KwContinue,
	}
	for text, kind := range cases {
		expectSingleToken(t, text, kind, text)
	}
}

func TestBoolLiterals(t *testing.T) {
	lx, _ := makeTestLexer("true false")
	tok := lx.Next()
	if tok.Kind != token.BoolLit || tok.Payload.Kind != token.PayloadBool || !tok.Payload.Bool {
		t.Fatalf("expected true BoolLit, got %+v", tok)
	}
	tok2 := lx.Next()
	if tok2.Kind != token.BoolLit || tok2.Payload.Bool {
		t.Fatalf("expected false BoolLit, got %+v", tok2)
	}
}

func TestNumbers_Decimal(t *testing.T) {
	lx, _ := makeTestLexer("12345")
	tok := lx.Next()
	if tok.Kind != token.IntLit || tok.Payload.I64 != 12345 {
		t.Fatalf("unexpected token %+v", tok)
	}
}

// TestNumbers_UnderscoreEndsDigitRun confirms '_' is not a digit-run
// separator: a digit run stops at '_', and '_' together with whatever
// follows it is scanned as a separate identifier, same as any other
// underscore-led name.
func TestNumbers_UnderscoreEndsDigitRun(t *testing.T) {
	lx, _ := makeTestLexer("5_x")
	first := lx.Next()
	if first.Kind != token.IntLit || first.Payload.I64 != 5 {
		t.Fatalf("unexpected first token %+v", first)
	}
	second := lx.Next()
	if second.Kind != token.Ident || second.Text != "_x" {
		t.Fatalf("unexpected second token %+v", second)
	}
}

func TestNumbers_Binary(t *testing.T) {
	lx, _ := makeTestLexer("0b1010")
	tok := lx.Next()
	if tok.Kind != token.IntLit || tok.Payload.I64 != 10 {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestNumbers_Octal(t *testing.T) {
	lx, _ := makeTestLexer("0o755")
	tok := lx.Next()
	if tok.Kind != token.IntLit || tok.Payload.I64 != 493 {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestNumbers_Hexadecimal(t *testing.T) {
	lx, _ := makeTestLexer("0xFF")
	tok := lx.Next()
	if tok.Kind != token.IntLit || tok.Payload.I64 != 255 {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestNumbers_Float(t *testing.T) {
	lx, _ := makeTestLexer("3.14")
	tok := lx.Next()
	if tok.Kind != token.FloatLit || tok.Payload.F64 != 3.14 {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestNumbers_FloatWithExponent(t *testing.T) {
	lx, _ := makeTestLexer("1e-3")
	tok := lx.Next()
	if tok.Kind != token.FloatLit || tok.Payload.F64 != 1e-3 {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestNumbers_InvalidExponent(t *testing.T) {
	lx, reporter := makeTestLexer("1e")
	lx.Next()
	if !reporter.HasErrors() {
		t.Fatalf("expected an error for a dangling exponent")
	}
}

func TestNumbers_DotDotNotPartOfNumber(t *testing.T) {
	expectTokens(t, "1..5", []token.Kind{token.IntLit, token.DotDot, token.IntLit})
}

func TestNumbers_TooLarge(t *testing.T) {
	lx, reporter := makeTestLexer("99999999999999999999999999")
	tok := lx.Next()
	if tok.Payload.Kind != token.PayloadFloat {
		t.Fatalf("expected overflow to fall back to a float payload, got %+v", tok.Payload)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexNumberTooLarge diagnostic")
	}
}

func TestString_Simple(t *testing.T) {
	lx, _ := makeTestLexer(`"hello"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit || tok.Payload.Str != "hello" {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestString_Escapes(t *testing.T) {
	lx, _ := makeTestLexer(`"a\nb\tc\\d\"e"`)
	tok := lx.Next()
	want := "a\nb\tc\\d\"e"
	if tok.Kind != token.StringLit || tok.Payload.Str != want {
		t.Fatalf("expected %q, got %+v", want, tok)
	}
}

func TestString_InvalidEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"bad\qescape"`)
	lx.Next()
	if !reporter.HasErrors() {
		t.Fatalf("expected LexInvalidEscape diagnostic")
	}
}

func TestString_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer(`"unterminated`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnterminatedString diagnostic")
	}
}

// TestString_EmbeddedNewlineIsAccumulated confirms a raw newline inside a
// double-quoted string is accumulated into the body like any other byte —
// EOF is the only condition that aborts a string literal as unterminated.
func TestString_EmbeddedNewlineIsAccumulated(t *testing.T) {
	lx, reporter := makeTestLexer("\"a\nb\"")
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %v", tok.Kind)
	}
	if reporter.HasErrors() {
		t.Fatalf("unexpected diagnostics for an embedded newline: %v", reporter.ErrorMessages())
	}
}

func TestChar_Simple(t *testing.T) {
	lx, _ := makeTestLexer(`'a'`)
	tok := lx.Next()
	if tok.Kind != token.IntLit || tok.Payload.I64 != int64('a') {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestChar_Escape(t *testing.T) {
	lx, _ := makeTestLexer(`'\n'`)
	tok := lx.Next()
	if tok.Kind != token.IntLit || tok.Payload.I64 != int64('\n') {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestChar_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer(`'ab`)
	lx.Next()
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnterminatedChar diagnostic")
	}
}

func TestOperators_Arithmetic(t *testing.T) {
	expectTokens(t, "+ - * / % ** ~",
		[]token.Kind{token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Pow, token.Tilde})
}

func TestOperators_Comparison(t *testing.T) {
	expectTokens(t, "== != < <= > >= <=>",
		[]token.Kind{token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq, token.Spaceship})
}

func TestOperators_CompoundAssign(t *testing.T) {
	expectTokens(t, "+= -= *= /= %= &= |= ^= <<= >>=", []token.Kind{
		token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign, token.PercentAssign,
		token.AmpAssign, token.PipeAssign, token.CaretAssign, token.ShlAssign, token.ShrAssign,
	})
}

func TestOperators_Greedy(t *testing.T) {
	// `<<=` must win over `<<` then `<=` then `<`
	expectTokens(t, "<<=", []token.Kind{token.ShlAssign})
	expectTokens(t, "<<", []token.Kind{token.Shl})
	expectTokens(t, "<=", []token.Kind{token.LtEq})
	expectTokens(t, "<", []token.Kind{token.Lt})
	// `**` must win over two `*`
	expectTokens(t, "**", []token.Kind{token.Pow})
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "( ) { } [ ] , ; : :: -> => . .. ..= ... @",
		[]token.Kind{
			token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
			token.Comma, token.Semicolon, token.Colon, token.ColonColon, token.Arrow, token.FatArrow,
			token.Dot, token.DotDot, token.DotDotEq, token.DotDotDot, token.At,
		})
}

func TestTrivia_Spaces(t *testing.T) {
	lx, _ := makeTestLexer("  x")
	tok := lx.Next()
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaSpace {
		t.Fatalf("expected one leading space trivia, got %+v", tok.Leading)
	}
}

func TestTrivia_LineComment(t *testing.T) {
	lx, _ := makeTestLexer("// hi\nx")
	tok := lx.Next()
	found := false
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaLineComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a line comment trivia, got %+v", tok.Leading)
	}
}

func TestTrivia_BlockComment_NonNesting(t *testing.T) {
	// the first "*/" closes the comment; the trailing "*/" becomes real tokens
	lx, reporter := makeTestLexer("/* outer /* inner */ */ x")
	tok := lx.Next()
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if tok.Kind != token.Star {
		t.Fatalf("expected the '*' of the trailing '*/' to surface as a Star token, got %v %q", tok.Kind, tok.Text)
	}
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected a single LexUnterminatedString diagnostic, got %v", reporter.diagnostics)
	}
}

func TestLexer_PeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("foo bar")
	peeked := lx.Peek()
	next := lx.Next()
	if peeked.Text != next.Text {
		t.Fatalf("Peek/Next mismatch: %q vs %q", peeked.Text, next.Text)
	}
	second := lx.Next()
	if second.Text != "bar" {
		t.Fatalf("expected second token %q, got %q", "bar", second.Text)
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	lx, reporter := makeTestLexer("$")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected LexUnknownChar diagnostic")
	}
}

func TestLexer_FunctionDefinition(t *testing.T) {
	expectTokens(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }", []token.Kind{
		token.KwFn, token.Ident, token.LParen, token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Ident, token.RParen, token.Arrow, token.Ident, token.LBrace,
		token.KwReturn, token.Ident, token.Plus, token.Ident, token.Semicolon, token.RBrace,
	})
}
