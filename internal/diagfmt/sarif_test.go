package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/photon-lang/photon/internal/diag"
	"github.com/photon-lang/photon/internal/diagfmt"
	"github.com/photon-lang/photon/internal/source"
)

func TestSarif_EncodesResults(t *testing.T) {
	fs, fid := newTestFileSet(t, "let x = 1\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: fid, Start: 0, End: 1}, "unknown character"))

	var buf bytes.Buffer
	diagfmt.Sarif(&buf, bag, fs, diagfmt.SarifRunMeta{ToolName: "photon", ToolVersion: "0.1.0"})

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["version"] != "2.1.0" {
		t.Fatalf("unexpected version: %v", doc["version"])
	}
	runs, ok := doc["runs"].([]any)
	if !ok || len(runs) != 1 {
		t.Fatalf("expected one run, got %v", doc["runs"])
	}
	run := runs[0].(map[string]any)
	results := run["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	result := results[0].(map[string]any)
	if result["level"] != "error" {
		t.Fatalf("expected level error, got %v", result["level"])
	}
}

func TestSarif_ExecutionSuccessfulWithNoErrors(t *testing.T) {
	bag := diag.NewBag(10)
	var buf bytes.Buffer
	diagfmt.Sarif(&buf, bag, nil, diagfmt.SarifRunMeta{ToolName: "photon"})

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	run := doc["runs"].([]any)[0].(map[string]any)
	inv := run["invocations"].([]any)[0].(map[string]any)
	if inv["executionSuccessful"] != true {
		t.Fatalf("expected executionSuccessful=true, got %v", inv["executionSuccessful"])
	}
}
