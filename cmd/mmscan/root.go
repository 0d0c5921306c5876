package main

import (
	"github.com/spf13/cobra"

	"mmscan/internal/refdata"
	"mmscan/internal/version"
)

var (
	// rulesFlag is the CLI --rules flag value (path to a TOML overlay)
	rulesFlag string
)

var rootCmd = &cobra.Command{
	Use:   "mmscan",
	Short: "mmscan - MM purchasing remediation scanner",
	Long: `mmscan scans ABAP source code for usages of deprecated MM purchasing APIs
(SAP Note 1803189) - classic transactions, BAPIs, IDoc input function modules,
and obsolete archiving reports - and suggests modern replacements for each
occurrence.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("mmscan version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&rulesFlag, "rules", "",
		"Path to a TOML rule overlay merged into the builtin reference tables")
}

// buildTables returns the builtin reference tables, merged with the overlay
// at rulesPath when one is given.
func buildTables(rulesPath string) (*refdata.Tables, error) {
	tables := refdata.Builtin()
	if rulesPath == "" {
		return tables, nil
	}

	overlay, err := refdata.LoadOverlay(rulesPath)
	if err != nil {
		return nil, err
	}
	return tables.Merge(overlay), nil
}
