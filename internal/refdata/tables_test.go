package refdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinInvariants(t *testing.T) {
	tables := Builtin()

	for code, repls := range tables.Transactions {
		if len(repls) == 0 {
			t.Errorf("Transaction %s has an empty replacement list", code)
		}
		if code != strings.ToUpper(code) {
			t.Errorf("Transaction key %s is not uppercase", code)
		}
	}

	for name, entry := range tables.BAPIs {
		if entry.New == "" {
			t.Errorf("BAPI %s has no replacement", name)
		}
		if entry.New == name {
			t.Errorf("BAPI %s maps to itself; self-maps belong to the IDoc table only", name)
		}
	}

	for name, entry := range tables.IDocFunctions {
		if entry.New == "" {
			t.Errorf("IDoc function %s has no replacement", name)
		}
	}

	// The verify-version special case must stay a self-map
	if entry := tables.IDocFunctions["IDOC_INPUT_PORDCH"]; entry.New != "IDOC_INPUT_PORDCH" {
		t.Errorf("IDOC_INPUT_PORDCH must map to itself, got %s", entry.New)
	}

	for name, entry := range tables.ArchiveReports {
		if !strings.HasSuffix(name, "47") {
			t.Errorf("Archive report key %s does not end in 47", name)
		}
		if !strings.HasSuffix(entry.New, "70") {
			t.Errorf("Archive replacement %s does not end in 70", entry.New)
		}
		if entry.Object == "" {
			t.Errorf("Archive report %s has no archiving object", name)
		}
	}

	for _, name := range tables.ReadReports {
		if _, clash := tables.ArchiveReports[name]; clash {
			t.Errorf("Read report %s also appears in the archive table", name)
		}
	}
}

func TestNameOrderingLongestFirst(t *testing.T) {
	tables := Builtin()

	for _, names := range [][]string{
		tables.TransactionNames(),
		tables.FunctionNames(),
		tables.ArchiveReportNames(),
		tables.ReadReportNames(),
	} {
		for i := 1; i < len(names); i++ {
			if len(names[i]) > len(names[i-1]) {
				t.Errorf("Names not sorted longest-first: %s before %s", names[i-1], names[i])
			}
		}
	}
}

func TestFunctionNamesUnion(t *testing.T) {
	tables := Builtin()
	names := tables.FunctionNames()

	want := len(tables.BAPIs) + len(tables.IDocFunctions)
	if len(names) != want {
		t.Errorf("Expected %d function names, got %d", want, len(names))
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("Duplicate function name %s", n)
		}
		seen[n] = true
	}
}

func TestLoadOverlayAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")

	overlay := `
read_reports = ["rm06xr30"]

[transactions]
me31 = ["ME31N"]
me21 = ["ME21X"]

[bapis.bapi_po_change]
new = "bapi_po_change1"
note = "Use Enjoy PO BAPI."

[archive_reports.rm06xw47]
new = "RM06XW70"
object = "MM_TEST"
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}

	merged := Builtin().Merge(loaded)

	// New entry added, keys uppercased
	if got := merged.Transactions["ME31"]; len(got) != 1 || got[0] != "ME31N" {
		t.Errorf("Expected ME31 -> [ME31N], got %v", got)
	}

	// Overlay wins on collision
	if got := merged.Transactions["ME21"]; len(got) != 1 || got[0] != "ME21X" {
		t.Errorf("Expected overlay to override ME21, got %v", got)
	}

	if entry := merged.BAPIs["BAPI_PO_CHANGE"]; entry.New != "BAPI_PO_CHANGE1" {
		t.Errorf("Expected BAPI_PO_CHANGE -> BAPI_PO_CHANGE1, got %s", entry.New)
	}

	if entry := merged.ArchiveReports["RM06XW47"]; entry.Object != "MM_TEST" {
		t.Errorf("Expected archive overlay entry, got %+v", entry)
	}

	// Lists are unioned without duplicates
	if !merged.IsReadReport("RM06XR30") {
		t.Error("Expected overlay read report to be merged")
	}
	if !merged.IsReadReport("RM06ER30") {
		t.Error("Expected builtin read reports to survive the merge")
	}

	// Builtin tables are untouched
	if got := Builtin().Transactions["ME21"]; got[0] != "ME21N" {
		t.Errorf("Merge mutated the builtin tables: %v", got)
	}
}

func TestLoadOverlayRejectsEmptyReplacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")

	if err := os.WriteFile(path, []byte("[transactions]\nme31 = []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOverlay(path); err == nil {
		t.Error("Expected an error for an empty replacement list")
	}
}

func TestLoadOverlayMissingFile(t *testing.T) {
	if _, err := LoadOverlay(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected an error for a missing overlay file")
	}
}
