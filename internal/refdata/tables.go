// Package refdata holds the reference mappings for deprecated MM purchasing
// APIs (SAP Note 1803189): classic transactions replaced by their Enjoy
// counterparts, BAPI and IDoc input function modules, and the generational
// archiving report families.
//
// The tables are constructed once at process start and never mutated
// afterward; matchers and suggestion building read them concurrently
// without locking.
package refdata

import "sort"

// FunctionEntry maps a deprecated function module to its replacement.
// New may equal the deprecated name itself: IDOC_INPUT_PORDCH kept its name
// across the BUS2012 switch, so a hit on it needs human verification rather
// than a rename.
type FunctionEntry struct {
	New  string `json:"new" toml:"new" yaml:"new"`
	Note string `json:"note,omitempty" toml:"note,omitempty" yaml:"note,omitempty"`
}

// ArchiveEntry maps a *47 archiving report to its *70 successor and names
// the archiving object family it belongs to.
type ArchiveEntry struct {
	New    string `json:"new" toml:"new" yaml:"new"`
	Object string `json:"object" toml:"object" yaml:"object"`
}

// Tables bundles all reference mappings. All keys are uppercase.
type Tables struct {
	// Transactions maps a classic transaction code to one or more Enjoy
	// codes. Two entries means the classic code split in intent and only
	// the author can pick the right successor.
	Transactions map[string][]string `json:"transactions" toml:"transactions" yaml:"transactions"`

	// TransactionNotes carries per-code clarifications independent of the
	// replacement count.
	TransactionNotes map[string]string `json:"transaction_notes,omitempty" toml:"transaction_notes,omitempty" yaml:"transaction_notes,omitempty"`

	// BAPIs maps deprecated BAPI names to their Enjoy successors.
	BAPIs map[string]FunctionEntry `json:"bapis" toml:"bapis" yaml:"bapis"`

	// IDocFunctions maps deprecated IDoc input function modules.
	IDocFunctions map[string]FunctionEntry `json:"idoc_functions" toml:"idoc_functions" yaml:"idoc_functions"`

	// ArchiveReports maps *47 archiving reports to their *70 successors.
	ArchiveReports map[string]ArchiveEntry `json:"archive_reports" toml:"archive_reports" yaml:"archive_reports"`

	// ArchivePrefixes are the report-name prefixes of the *30 generation,
	// which is not individually enumerated. Matches get a generic
	// move-to-*70 advisory.
	ArchivePrefixes []string `json:"archive_prefixes" toml:"archive_prefixes" yaml:"archive_prefixes"`

	// ReadReports are still valid to run; hits only get a redirect to the
	// Archive Information System.
	ReadReports []string `json:"read_reports" toml:"read_reports" yaml:"read_reports"`
}

// Builtin returns the builtin reference tables.
func Builtin() *Tables {
	return &Tables{
		Transactions: map[string][]string{
			// PO transactions
			"ME21": {"ME21N"},
			"ME22": {"ME22N"},
			"ME23": {"ME23N"},
			"ME24": {"ME21N", "ME22N"}, // release/check split: create vs. change
			"ME25": {"ME21N"},
			"ME27": {"ME21N"},
			"ME28": {"ME29N"},
			// PR transactions
			"ME51": {"ME51N"},
			"ME52": {"ME52N"},
			"ME53": {"ME53N"},
			"ME54": {"ME54N"},
			"ME59": {"ME59N"},
		},
		TransactionNotes: map[string]string{
			"ME25": "ME25 functions available via ME21N (use Hold / Enjoy features).",
			"ME27": "PO without material: create via ME21N.",
		},
		BAPIs: map[string]FunctionEntry{
			// PO BAPIs
			"BAPI_PO_CREATE":    {New: "BAPI_PO_CREATE1", Note: "Use Enjoy PO BAPI."},
			"BAPI_PO_GETDETAIL": {New: "BAPI_PO_GETDETAIL1", Note: "Use Enjoy PO BAPI."},
			// PR BAPIs
			"BAPI_REQUISITION_CREATE":    {New: "BAPI_PR_CREATE", Note: "Use PR Enjoy BAPI."},
			"BAPI_REQUISITION_CHANGE":    {New: "BAPI_PR_CHANGE", Note: "Use PR Enjoy BAPI."},
			"BAPI_REQUISITION_DELETE":    {New: "BAPI_PR_CHANGE", Note: "Delete via CHANGE in Enjoy BAPI."},
			"BAPI_REQUISITION_GETDETAIL": {New: "BAPI_PR_GETDETAIL", Note: "Use PR Enjoy BAPI."},
		},
		IDocFunctions: map[string]FunctionEntry{
			"IDOC_INPUT_PORDCR": {New: "IDOC_INPUT_PORDCR1", Note: "Use new PO IDoc FM (BUS2012)."},
			// PORDCH kept its name; only the underlying object version changed
			"IDOC_INPUT_PORDCH": {New: "IDOC_INPUT_PORDCH", Note: "Ensure BUS2012 version is used."},
			"IDOC_INPUT_PREQCR": {New: "IDOC_INPUT_PREQCR1", Note: "Use new PR IDoc FM (BUS2105)."},
		},
		ArchiveReports: map[string]ArchiveEntry{
			// MM_EKKO
			"RM06EV47": {New: "RM06EV70", Object: "MM_EKKO"},
			"RM06EW47": {New: "RM06EW70", Object: "MM_EKKO"},
			"RM06ED47": {New: "RM06ED70", Object: "MM_EKKO"},
			// MM_EBAN
			"RM06BV47": {New: "RM06BV70", Object: "MM_EBAN"},
			"RM06BW47": {New: "RM06BW70", Object: "MM_EBAN"},
			"RM06BD47": {New: "RM06BD70", Object: "MM_EBAN"},
			// MM_EINA
			"RM06IW47": {New: "RM06IW70", Object: "MM_EINA"},
			"RM06ID47": {New: "RM06ID70", Object: "MM_EINA"},
		},
		ArchivePrefixes: []string{"RM06E", "RM06B", "RM06I"},
		ReadReports:     []string{"RM06ER30", "RM06BR30", "RM06IR30"},
	}
}

// TransactionNames returns the transaction codes sorted longest-first, the
// order needed when building a regexp alternation so no code is shadowed by
// a shorter prefix.
func (t *Tables) TransactionNames() []string {
	return sortedKeysLongestFirst(keys(t.Transactions))
}

// FunctionNames returns the union of BAPI and IDoc function names sorted
// longest-first.
func (t *Tables) FunctionNames() []string {
	seen := make(map[string]bool, len(t.BAPIs)+len(t.IDocFunctions))
	var names []string
	for name := range t.BAPIs {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range t.IDocFunctions {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return sortedKeysLongestFirst(names)
}

// ArchiveReportNames returns the *47 report names sorted longest-first.
func (t *Tables) ArchiveReportNames() []string {
	return sortedKeysLongestFirst(keys(t.ArchiveReports))
}

// ReadReportNames returns the read-report names sorted longest-first.
func (t *Tables) ReadReportNames() []string {
	names := make([]string, len(t.ReadReports))
	copy(names, t.ReadReports)
	return sortedKeysLongestFirst(names)
}

// IsReadReport reports whether name is one of the read-only reports.
func (t *Tables) IsReadReport(name string) bool {
	for _, r := range t.ReadReports {
		if r == name {
			return true
		}
	}
	return false
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func sortedKeysLongestFirst(names []string) []string {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}
