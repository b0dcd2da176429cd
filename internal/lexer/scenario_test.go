package lexer_test

import (
	"testing"

	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/testkit"
	"github.com/photon-lang/photon/internal/token"
)

// TestScenarios_Lexer drives the declarative fixtures in testdata/scenarios.toml
// (spec.md's seeded S4/S5 scenarios) through the lexer.
func TestScenarios_Lexer(t *testing.T) {
	sf, err := testkit.LoadScenarios("testdata/scenarios.toml")
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}
	for _, sc := range sf.Scenario {
		sc := sc
		t.Run(sc.ID+"_"+sc.Name, func(t *testing.T) {
			lx, reporter := makeTestLexer(sc.Input)
			tokens := collectAllTokens(lx)

			switch sc.Kind {
			case "lex_error":
				if !reporter.HasErrors() {
					t.Fatalf("expected a diagnostic for input %q", sc.Input)
				}
				found := false
				for _, d := range reporter.diagnostics {
					if wantCode(sc.WantCode) == d.Code {
						found = true
					}
				}
				if !found {
					t.Fatalf("expected diagnostic code %s, got %v", sc.WantCode, reporter.ErrorMessages())
				}
			case "lex_int":
				lit := firstNonEOF(tokens)
				if lit.Payload.Kind != token.PayloadInt {
					t.Fatalf("expected an int payload, got %v", lit.Payload.Kind)
				}
				if lit.Payload.I64 != sc.WantInt {
					t.Fatalf("got int %d, want %d", lit.Payload.I64, sc.WantInt)
				}
			case "lex_float":
				lit := firstNonEOF(tokens)
				if lit.Payload.Kind != token.PayloadFloat {
					t.Fatalf("expected a float payload, got %v", lit.Payload.Kind)
				}
				if lit.Payload.F64 != sc.WantFloat {
					t.Fatalf("got float %v, want %v", lit.Payload.F64, sc.WantFloat)
				}
			default:
				t.Fatalf("unknown scenario kind %q", sc.Kind)
			}
		})
	}
}

func firstNonEOF(tokens []token.Token) token.Token {
	for _, tok := range tokens {
		if tok.Kind != token.EOF {
			return tok
		}
	}
	return token.Token{}
}

func wantCode(name string) diag.Code {
	codes := map[string]diag.Code{
		"LexUnknownChar":        diag.LexUnknownChar,
		"LexUnterminatedString": diag.LexUnterminatedString,
		"LexBadNumber":          diag.LexBadNumber,
		"LexUnterminatedChar":   diag.LexUnterminatedChar,
	}
	return codes[name]
}
