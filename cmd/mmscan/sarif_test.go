package main

import (
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"mmscan/internal/logging"
	"mmscan/internal/refdata"
	"mmscan/internal/scan"
)

func buildReport(t *testing.T, files map[string]string) (*ScanReport, map[string]string) {
	t.Helper()
	logger := logging.NewLogger(logging.Config{Output: io.Discard})
	scanner := scan.NewScanner(refdata.Builtin(), logger)

	report := &ScanReport{ScannedAt: time.Now().UTC()}
	for name, text := range files {
		result := FileResult{File: name, Suggestions: scanner.Scan(text)}
		report.Files = append(report.Files, result)
		report.Total += len(result.Suggestions)
	}
	return report, files
}

func TestFormatScanAsSARIF(t *testing.T) {
	source := "REPORT ztest.\nCALL TRANSACTION 'ME21'.\nCALL TRANSACTION 'ME21'.\nSUBMIT RM06EV47.\n"
	report, sources := buildReport(t, map[string]string{"ztest.abap": source})

	out, err := FormatScanAsSARIF(report, sources, "1.2.0")
	if err != nil {
		t.Fatalf("FormatScanAsSARIF failed: %v", err)
	}

	var sarif SARIFReport
	if err := json.Unmarshal([]byte(out), &sarif); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if sarif.Version != "2.1.0" {
		t.Errorf("Expected SARIF version 2.1.0, got %s", sarif.Version)
	}
	if len(sarif.Runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(sarif.Runs))
	}

	run := sarif.Runs[0]
	if run.Tool.Driver.Name != "mmscan" || run.Tool.Driver.Version != "1.2.0" {
		t.Errorf("Unexpected driver metadata: %+v", run.Tool.Driver)
	}

	// Two ME21 hits share one rule, the archive report gets its own
	if len(run.Tool.Driver.Rules) != 2 {
		t.Errorf("Expected 2 deduplicated rules, got %d", len(run.Tool.Driver.Rules))
	}
	if len(run.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(run.Results))
	}

	first := run.Results[0]
	if first.RuleID != "mmscan/transaction/ME21" {
		t.Errorf("Unexpected rule ID: %s", first.RuleID)
	}
	if first.Level != "warning" {
		t.Errorf("Expected warning level for unambiguous hit, got %s", first.Level)
	}
	if !strings.Contains(first.Message.Text, "CALL TRANSACTION 'ME21N'.") {
		t.Errorf("Message missing suggested statement: %s", first.Message.Text)
	}

	loc := first.Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "ztest.abap" {
		t.Errorf("Unexpected artifact URI: %s", loc.ArtifactLocation.URI)
	}
	if loc.Region.StartLine != 2 || loc.Region.StartColumn != 1 {
		t.Errorf("Expected region to start at 2:1, got %d:%d", loc.Region.StartLine, loc.Region.StartColumn)
	}
}

func TestSARIFAmbiguousLevel(t *testing.T) {
	report, sources := buildReport(t, map[string]string{
		"z.abap": "CALL TRANSACTION 'ME24'.",
	})

	out, err := FormatScanAsSARIF(report, sources, "1.2.0")
	if err != nil {
		t.Fatal(err)
	}

	var sarif SARIFReport
	if err := json.Unmarshal([]byte(out), &sarif); err != nil {
		t.Fatal(err)
	}

	results := sarif.Runs[0].Results
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Level != "note" {
		t.Errorf("Expected note level for ambiguous hit, got %s", results[0].Level)
	}
}

func TestSpanToRegion(t *testing.T) {
	text := "line one\nline two\nline three\n"

	s := scan.Suggestion{StartChar: 9, EndChar: 17} // "line two"
	region := spanToRegion(text, s)

	if region.StartLine != 2 || region.StartColumn != 1 {
		t.Errorf("Expected start 2:1, got %d:%d", region.StartLine, region.StartColumn)
	}
	if region.EndLine != 2 || region.EndColumn != 9 {
		t.Errorf("Expected end 2:9, got %d:%d", region.EndLine, region.EndColumn)
	}
	if region.CharOffset != 9 || region.CharLength != 8 {
		t.Errorf("Unexpected char span: offset=%d length=%d", region.CharOffset, region.CharLength)
	}
}

func TestSpanToRegionMissingSource(t *testing.T) {
	s := scan.Suggestion{StartChar: 5, EndChar: 10}
	region := spanToRegion("", s)

	// Char span survives even without source text for line derivation
	if region.CharOffset != 5 || region.CharLength != 5 {
		t.Errorf("Unexpected char span: %+v", region)
	}
	if region.StartLine != 0 {
		t.Errorf("Expected no line info without source, got %d", region.StartLine)
	}
}

func TestLineCol(t *testing.T) {
	text := "abc\ndef\n"

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{7, 2, 4},
	}
	for _, tt := range tests {
		line, col := lineCol(text, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("lineCol(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}
}
