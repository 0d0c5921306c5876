package main

import (
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"mmscan/internal/refdata"
)

var rulesFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active reference tables",
	Long: `Show the reference tables the scanner matches against: deprecated
transactions, BAPIs, IDoc input function modules, archiving report families,
and read reports.

The TOML output round-trips as a rule overlay file for --rules.

Examples:
  mmscan rules
  mmscan rules --format toml > my-rules.toml
  mmscan rules --rules my-rules.toml --format json`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesFormat, "format", "f", "human", "Output format: human, json, yaml, toml")
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	tables, err := buildTables(rulesFlag)
	if err != nil {
		return err
	}

	var output string
	switch rulesFormat {
	case "human":
		output = formatRulesHuman(tables)
	case "json":
		output, err = formatJSON(tables)
	case "yaml":
		output, err = formatYAML(tables)
	case "toml":
		data, merr := toml.Marshal(tables)
		if merr != nil {
			return fmt.Errorf("failed to marshal TOML: %w", merr)
		}
		output = strings.TrimRight(string(data), "\n")
	default:
		return fmt.Errorf("unsupported format: %s (use: human, json, yaml, toml)", rulesFormat)
	}
	if err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

func formatRulesHuman(tables *refdata.Tables) string {
	var b strings.Builder

	b.WriteString("MM Purchasing Reference Tables\n")
	b.WriteString("==============================\n\n")

	fmt.Fprintf(&b, "Transactions (%d):\n", len(tables.Transactions))
	for _, code := range sortedStrings(tables.Transactions) {
		fmt.Fprintf(&b, "  %-6s -> %s\n", code, strings.Join(tables.Transactions[code], " or "))
	}

	fmt.Fprintf(&b, "\nBAPIs (%d):\n", len(tables.BAPIs))
	for _, name := range sortedStrings(tables.BAPIs) {
		fmt.Fprintf(&b, "  %-28s -> %s\n", name, tables.BAPIs[name].New)
	}

	fmt.Fprintf(&b, "\nIDoc input function modules (%d):\n", len(tables.IDocFunctions))
	for _, name := range sortedStrings(tables.IDocFunctions) {
		entry := tables.IDocFunctions[name]
		if entry.New == name {
			fmt.Fprintf(&b, "  %-28s -> (unchanged, verify version)\n", name)
		} else {
			fmt.Fprintf(&b, "  %-28s -> %s\n", name, entry.New)
		}
	}

	fmt.Fprintf(&b, "\nArchiving reports (%d):\n", len(tables.ArchiveReports))
	for _, name := range sortedStrings(tables.ArchiveReports) {
		entry := tables.ArchiveReports[name]
		fmt.Fprintf(&b, "  %-10s -> %s (%s)\n", name, entry.New, entry.Object)
	}

	fmt.Fprintf(&b, "\nOld-generation prefixes: %s\n", strings.Join(tables.ArchivePrefixes, ", "))
	fmt.Fprintf(&b, "Read reports (advisory only): %s", strings.Join(tables.ReadReports, ", "))

	return b.String()
}

func sortedStrings[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
