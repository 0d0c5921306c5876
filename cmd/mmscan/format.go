package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// formatJSON formats the response as indented JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatYAML formats the response as YAML
func formatYAML(resp interface{}) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// formatReportHuman renders a scan report for terminal reading
func formatReportHuman(report *ScanReport) string {
	var b strings.Builder

	b.WriteString("MM Purchasing Scan Results\n")
	b.WriteString("==========================\n\n")

	for _, f := range report.Files {
		fmt.Fprintf(&b, "%s: %d finding(s)\n", f.File, len(f.Suggestions))
		for _, s := range f.Suggestions {
			marker := " "
			if s.Ambiguous {
				marker = "?"
			}
			fmt.Fprintf(&b, "  [%s] %s %s at [%d,%d)\n", marker, s.TargetType, s.TargetName, s.StartChar, s.EndChar)
			fmt.Fprintf(&b, "      suggest: %s\n", s.SuggestedStatement)
			if s.Note != "" {
				fmt.Fprintf(&b, "      note:    %s\n", s.Note)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total: %d finding(s)", report.Total)
	return b.String()
}
