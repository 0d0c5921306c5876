package refdata

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	mmerrors "mmscan/internal/errors"
)

// LoadOverlay reads a TOML rule overlay from path. The overlay uses the
// same table layout as Tables; it extends or overrides builtin entries.
func LoadOverlay(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mmerrors.New(mmerrors.RulesInvalid, "failed to read rule overlay", err)
	}

	var overlay Tables
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, mmerrors.New(mmerrors.RulesInvalid, "failed to parse rule overlay", err)
	}

	normalized := normalizeTables(&overlay)
	if err := validateOverlay(normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Merge returns a new Tables combining t with the overlay. Overlay entries
// win on key collision; list-valued fields are unioned.
func (t *Tables) Merge(overlay *Tables) *Tables {
	merged := t.clone()
	if overlay == nil {
		return merged
	}

	for code, repls := range overlay.Transactions {
		merged.Transactions[code] = append([]string(nil), repls...)
	}
	for code, note := range overlay.TransactionNotes {
		merged.TransactionNotes[code] = note
	}
	for name, entry := range overlay.BAPIs {
		merged.BAPIs[name] = entry
	}
	for name, entry := range overlay.IDocFunctions {
		merged.IDocFunctions[name] = entry
	}
	for name, entry := range overlay.ArchiveReports {
		merged.ArchiveReports[name] = entry
	}
	merged.ArchivePrefixes = unionStrings(merged.ArchivePrefixes, overlay.ArchivePrefixes)
	merged.ReadReports = unionStrings(merged.ReadReports, overlay.ReadReports)

	return merged
}

func (t *Tables) clone() *Tables {
	c := &Tables{
		Transactions:     make(map[string][]string, len(t.Transactions)),
		TransactionNotes: make(map[string]string, len(t.TransactionNotes)),
		BAPIs:            make(map[string]FunctionEntry, len(t.BAPIs)),
		IDocFunctions:    make(map[string]FunctionEntry, len(t.IDocFunctions)),
		ArchiveReports:   make(map[string]ArchiveEntry, len(t.ArchiveReports)),
		ArchivePrefixes:  append([]string(nil), t.ArchivePrefixes...),
		ReadReports:      append([]string(nil), t.ReadReports...),
	}
	for k, v := range t.Transactions {
		c.Transactions[k] = append([]string(nil), v...)
	}
	for k, v := range t.TransactionNotes {
		c.TransactionNotes[k] = v
	}
	for k, v := range t.BAPIs {
		c.BAPIs[k] = v
	}
	for k, v := range t.IDocFunctions {
		c.IDocFunctions[k] = v
	}
	for k, v := range t.ArchiveReports {
		c.ArchiveReports[k] = v
	}
	return c
}

// normalizeTables uppercases every identifier so lookups can assume
// uppercase keys.
func normalizeTables(t *Tables) *Tables {
	n := &Tables{
		Transactions:     make(map[string][]string, len(t.Transactions)),
		TransactionNotes: make(map[string]string, len(t.TransactionNotes)),
		BAPIs:            make(map[string]FunctionEntry, len(t.BAPIs)),
		IDocFunctions:    make(map[string]FunctionEntry, len(t.IDocFunctions)),
	}
	for code, repls := range t.Transactions {
		up := make([]string, len(repls))
		for i, r := range repls {
			up[i] = strings.ToUpper(r)
		}
		n.Transactions[strings.ToUpper(code)] = up
	}
	for code, note := range t.TransactionNotes {
		n.TransactionNotes[strings.ToUpper(code)] = note
	}
	for name, entry := range t.BAPIs {
		entry.New = strings.ToUpper(entry.New)
		n.BAPIs[strings.ToUpper(name)] = entry
	}
	for name, entry := range t.IDocFunctions {
		entry.New = strings.ToUpper(entry.New)
		n.IDocFunctions[strings.ToUpper(name)] = entry
	}
	if len(t.ArchiveReports) > 0 {
		n.ArchiveReports = make(map[string]ArchiveEntry, len(t.ArchiveReports))
		for name, entry := range t.ArchiveReports {
			entry.New = strings.ToUpper(entry.New)
			n.ArchiveReports[strings.ToUpper(name)] = entry
		}
	}
	for _, p := range t.ArchivePrefixes {
		n.ArchivePrefixes = append(n.ArchivePrefixes, strings.ToUpper(p))
	}
	for _, r := range t.ReadReports {
		n.ReadReports = append(n.ReadReports, strings.ToUpper(r))
	}
	return n
}

func validateOverlay(t *Tables) error {
	for code, repls := range t.Transactions {
		if len(repls) == 0 {
			return mmerrors.New(mmerrors.RulesInvalid,
				fmt.Sprintf("transaction %s has an empty replacement list", code), nil)
		}
	}
	for name, entry := range t.BAPIs {
		if entry.New == "" {
			return mmerrors.New(mmerrors.RulesInvalid,
				fmt.Sprintf("bapi %s has no replacement", name), nil)
		}
	}
	for name, entry := range t.IDocFunctions {
		if entry.New == "" {
			return mmerrors.New(mmerrors.RulesInvalid,
				fmt.Sprintf("idoc function %s has no replacement", name), nil)
		}
	}
	for name, entry := range t.ArchiveReports {
		if entry.New == "" {
			return mmerrors.New(mmerrors.RulesInvalid,
				fmt.Sprintf("archive report %s has no replacement", name), nil)
		}
	}
	return nil
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := append([]string(nil), a...)
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
