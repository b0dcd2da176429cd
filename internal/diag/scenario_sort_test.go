package diag

import (
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/photon-lang/photon/internal/source"
)

type sortScenarioDiagnostic struct {
	File     uint32 `toml:"file"`
	Start    uint32 `toml:"start"`
	Severity string `toml:"severity"`
}

type sortScenario struct {
	ID                string                   `toml:"id"`
	Name              string                   `toml:"name"`
	Diagnostic        []sortScenarioDiagnostic `toml:"diagnostic"`
	WantOrder         []int                    `toml:"want_order"`
	WantOrderLocation []int                    `toml:"want_order_by_location"`
	WantOrderSeverity []int                    `toml:"want_order_by_severity"`
}

var severityByName = map[string]Severity{
	"Note":    SevInfo,
	"Warning": SevWarning,
	"Error":   SevError,
	"Fatal":   SevFatal,
}

func loadSortScenario(t *testing.T) sortScenario {
	var sc sortScenario
	if _, err := toml.DecodeFile("testdata/scenario_sort.toml", &sc); err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	return sc
}

func newSortScenarioBag(sc sortScenario) *Bag {
	bag := NewBag(len(sc.Diagnostic))
	for _, d := range sc.Diagnostic {
		span := source.Span{File: source.FileID(d.File), Start: d.Start, End: d.Start + 1}
		bag.Add(New(severityByName[d.Severity], LexInfo, span, sc.Name))
	}
	return bag
}

func checkSortScenarioOrder(t *testing.T, sc sortScenario, items []Diagnostic, wantOrder []int) {
	t.Helper()
	if len(items) != len(wantOrder) {
		t.Fatalf("expected %d diagnostics, got %d", len(wantOrder), len(items))
	}
	for i, wantIdx := range wantOrder {
		want := sc.Diagnostic[wantIdx]
		got := items[i]
		if got.Primary.File != source.FileID(want.File) || got.Primary.Start != want.Start || got.Severity != severityByName[want.Severity] {
			t.Fatalf("position %d: got (file=%d, start=%d, sev=%s), want (file=%d, start=%d, sev=%s)",
				i, got.Primary.File, got.Primary.Start, got.Severity,
				want.File, want.Start, want.Severity)
		}
	}
}

// TestScenarios_DiagnosticSort drives the declarative fixture in
// testdata/scenario_sort.toml (spec.md's seeded S6 scenario) through
// Bag.Sort.
func TestScenarios_DiagnosticSort(t *testing.T) {
	sc := loadSortScenario(t)
	bag := newSortScenarioBag(sc)
	bag.Sort()
	checkSortScenarioOrder(t, sc, bag.Items(), sc.WantOrder)
}

// TestScenarios_DiagnosticSortByLocation exercises SortByLocation in
// isolation against the same S6 fixture, independent of severity.
func TestScenarios_DiagnosticSortByLocation(t *testing.T) {
	sc := loadSortScenario(t)
	bag := newSortScenarioBag(sc)
	bag.SortByLocation()
	checkSortScenarioOrder(t, sc, bag.Items(), sc.WantOrderLocation)
}

// TestScenarios_DiagnosticSortBySeverity exercises SortBySeverity in
// isolation against the same S6 fixture — the half of S6 the combined
// Bag.Sort test alone never exercises.
func TestScenarios_DiagnosticSortBySeverity(t *testing.T) {
	sc := loadSortScenario(t)
	bag := newSortScenarioBag(sc)
	bag.SortBySeverity()
	checkSortScenarioOrder(t, sc, bag.Items(), sc.WantOrderSeverity)
}
