package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mmscan/internal/logging"
	"mmscan/internal/scan"
	"mmscan/internal/version"
)

var (
	scanFormat         string
	scanFailOnFindings bool
)

// FileResult holds the suggestions for one scanned file.
type FileResult struct {
	File        string            `json:"file"`
	Suggestions []scan.Suggestion `json:"suggestions"`
}

// ScanReport is the CLI scan output.
type ScanReport struct {
	ScannedAt time.Time    `json:"scannedAt"`
	Files     []FileResult `json:"files"`
	Total     int          `json:"total"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "Scan ABAP source files for deprecated MM purchasing APIs",
	Long: `Scan ABAP source files for deprecated MM purchasing APIs and print a
remediation suggestion for every occurrence found. With no file arguments,
source text is read from stdin.

Examples:
  # Scan files
  mmscan scan zprogram.abap zinclude.abap

  # Scan stdin
  cat zprogram.abap | mmscan scan

  # SARIF for code-review tooling
  mmscan scan --output sarif src/zprogram.abap

  # Extend the builtin tables
  mmscan scan --rules custom-rules.toml zprogram.abap`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFormat, "output", "o", "human", "Output format: human, json, yaml, sarif")
	scanCmd.Flags().BoolVar(&scanFailOnFindings, "fail-on-findings", false, "Exit with code 2 when any suggestion is produced")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	tables, err := buildTables(rulesFlag)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.WarnLevel,
	})
	scanner := scan.NewScanner(tables, logger)

	sources := make(map[string]string)
	report := ScanReport{ScannedAt: time.Now().UTC()}

	if len(args) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		sources["<stdin>"] = string(text)
		report.Files = append(report.Files, FileResult{
			File:        "<stdin>",
			Suggestions: scanner.Scan(string(text)),
		})
	} else {
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			sources[path] = string(data)
			report.Files = append(report.Files, FileResult{
				File:        path,
				Suggestions: scanner.Scan(string(data)),
			})
		}
	}

	for _, f := range report.Files {
		report.Total += len(f.Suggestions)
	}

	output, err := formatScanReport(&report, sources, scanFormat)
	if err != nil {
		return err
	}
	fmt.Println(output)

	if scanFailOnFindings && report.Total > 0 {
		os.Exit(2)
	}
	return nil
}

func formatScanReport(report *ScanReport, sources map[string]string, format string) (string, error) {
	switch format {
	case "human":
		return formatReportHuman(report), nil
	case "json":
		return formatJSON(report)
	case "yaml":
		return formatYAML(report)
	case "sarif":
		return FormatScanAsSARIF(report, sources, version.Version)
	default:
		return "", fmt.Errorf("unsupported format: %s (use: human, json, yaml, sarif)", format)
	}
}
