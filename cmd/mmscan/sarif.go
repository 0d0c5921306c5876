package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"mmscan/internal/scan"
)

// SARIF 2.1.0 schema types
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html

// SARIFReport is the top-level SARIF document.
type SARIFReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results,omitempty"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver describes the primary analysis component.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []SARIFRule `json:"rules,omitempty"`
}

// SARIFRule describes a rule that detected an issue.
type SARIFRule struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name,omitempty"`
	ShortDescription *SARIFMessage          `json:"shortDescription,omitempty"`
	FullDescription  *SARIFMessage          `json:"fullDescription,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID     string                 `json:"ruleId"`
	RuleIndex  int                    `json:"ruleIndex,omitempty"`
	Level      string                 `json:"level,omitempty"`
	Message    SARIFMessage           `json:"message"`
	Locations  []SARIFLocation        `json:"locations,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// SARIFMessage contains text in various formats.
type SARIFMessage struct {
	Text string `json:"text,omitempty"`
}

// SARIFLocation describes where a result was found.
type SARIFLocation struct {
	PhysicalLocation *SARIFPhysicalLocation `json:"physicalLocation,omitempty"`
}

// SARIFPhysicalLocation identifies a file and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation *SARIFArtifactLocation `json:"artifactLocation,omitempty"`
	Region           *SARIFRegion           `json:"region,omitempty"`
}

// SARIFArtifactLocation identifies a file.
type SARIFArtifactLocation struct {
	URI string `json:"uri,omitempty"`
}

// SARIFRegion identifies a region within a file.
type SARIFRegion struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
	CharOffset  int `json:"charOffset,omitempty"`
	CharLength  int `json:"charLength,omitempty"`
}

// FormatScanAsSARIF converts a scan report to SARIF format. sources maps
// each file name in the report to its raw text, used to derive line/column
// regions from the character spans.
func FormatScanAsSARIF(report *ScanReport, sources map[string]string, version string) (string, error) {
	var rules []SARIFRule
	ruleIndex := make(map[string]int)

	var results []SARIFResult
	for _, f := range report.Files {
		for _, s := range f.Suggestions {
			ruleID := fmt.Sprintf("mmscan/%s/%s", strings.ToLower(string(s.TargetType)), s.TargetName)
			idx, exists := ruleIndex[ruleID]
			if !exists {
				idx = len(rules)
				ruleIndex[ruleID] = idx
				rules = append(rules, SARIFRule{
					ID:   ruleID,
					Name: s.TargetName,
					ShortDescription: &SARIFMessage{
						Text: fmt.Sprintf("Deprecated MM purchasing %s %s", string(s.TargetType), s.TargetName),
					},
					FullDescription: &SARIFMessage{
						Text: fmt.Sprintf("%s %s is deprecated per SAP Note 1803189 and should be replaced.", string(s.TargetType), s.TargetName),
					},
					Properties: map[string]interface{}{
						"tags": []string{"deprecation", "mm-purchasing", string(s.TargetType)},
					},
				})
			}

			message := fmt.Sprintf("Replace with: %s", s.SuggestedStatement)
			if s.Note != "" {
				message += " (" + s.Note + ")"
			}

			level := "warning"
			if s.Ambiguous {
				level = "note"
			}

			results = append(results, SARIFResult{
				RuleID:    ruleID,
				RuleIndex: idx,
				Level:     level,
				Message:   SARIFMessage{Text: message},
				Locations: []SARIFLocation{{
					PhysicalLocation: &SARIFPhysicalLocation{
						ArtifactLocation: &SARIFArtifactLocation{URI: f.File},
						Region:           spanToRegion(sources[f.File], s),
					},
				}},
				Properties: map[string]interface{}{
					"ambiguous": s.Ambiguous,
				},
			})
		}
	}

	sarif := SARIFReport{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []SARIFRun{{
			Tool: SARIFTool{
				Driver: SARIFDriver{
					Name:    "mmscan",
					Version: version,
					Rules:   rules,
				},
			},
			Results: results,
		}},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal SARIF: %w", err)
	}
	return string(data), nil
}

// spanToRegion converts a character span into a 1-based line/column region.
func spanToRegion(text string, s scan.Suggestion) *SARIFRegion {
	region := &SARIFRegion{
		CharOffset: s.StartChar,
		CharLength: s.EndChar - s.StartChar,
	}
	if text == "" || s.StartChar > len(text) || s.EndChar > len(text) {
		return region
	}

	region.StartLine, region.StartColumn = lineCol(text, s.StartChar)
	region.EndLine, region.EndColumn = lineCol(text, s.EndChar)
	return region
}

func lineCol(text string, offset int) (line, col int) {
	line = 1
	col = 1
	for _, c := range text[:offset] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
