package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatReportHuman(t *testing.T) {
	report, _ := buildReport(t, map[string]string{
		"z.abap": "CALL TRANSACTION 'ME24'.\nSUBMIT RM06EV47.",
	})

	out := formatReportHuman(report)

	if !strings.Contains(out, "z.abap: 2 finding(s)") {
		t.Errorf("Missing per-file count:\n%s", out)
	}
	if !strings.Contains(out, "[?] Transaction ME24") {
		t.Errorf("Ambiguous hit not marked:\n%s", out)
	}
	if !strings.Contains(out, "[ ] Report RM06EV47") {
		t.Errorf("Unambiguous hit marked wrong:\n%s", out)
	}
	if !strings.Contains(out, "Total: 2 finding(s)") {
		t.Errorf("Missing total:\n%s", out)
	}
}

func TestFormatScanReportJSON(t *testing.T) {
	report, sources := buildReport(t, map[string]string{
		"z.abap": "CALL TRANSACTION 'ME21'.",
	})

	out, err := formatScanReport(report, sources, "json")
	if err != nil {
		t.Fatalf("formatScanReport failed: %v", err)
	}

	var decoded ScanReport
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON output does not round-trip: %v", err)
	}
	if decoded.Total != 1 {
		t.Errorf("Expected total 1, got %d", decoded.Total)
	}
}

func TestFormatScanReportYAML(t *testing.T) {
	report, sources := buildReport(t, map[string]string{
		"z.abap": "CALL TRANSACTION 'ME21'.",
	})

	out, err := formatScanReport(report, sources, "yaml")
	if err != nil {
		t.Fatalf("formatScanReport failed: %v", err)
	}
	if !strings.Contains(out, "target_name: ME21") && !strings.Contains(out, "targetname: ME21") {
		t.Errorf("YAML output missing the finding:\n%s", out)
	}
}

func TestFormatScanReportUnsupported(t *testing.T) {
	report, sources := buildReport(t, map[string]string{"z.abap": ""})

	if _, err := formatScanReport(report, sources, "xml"); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}
