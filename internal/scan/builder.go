package scan

import (
	"fmt"
	"strings"
)

// Fixed statements for hits that have no exact replacement name.
const (
	// archive30Statement is the placeholder suggestion for the old *30
	// report generation, where only the target family is known.
	archive30Statement = "SUBMIT <corresponding RM06**70 report>."
	archive30Note      = "Move to RM06**70 reports (EhP4+)."

	// readRedirectStatement is the advisory for read reports that remain
	// valid to run; it is an instruction, not an invocation.
	readRedirectStatement = "Use transaction SARI for displaying archived MM Purchasing documents."
	readRedirectNote      = "Read programs still usable; consider using Archive Information System (SARI)."
)

// buildStatement renders the suggested replacement statement for a match.
//
// Transactions reproduce the keyword form that matched, so a SUBMIT stays a
// SUBMIT. Function modules are always rendered as CALL FUNCTION because the
// replacement BAPIs are only reachable that way, and reports are always
// rendered as SUBMIT. A multi-replacement transaction yields all renderings
// joined by " or ", leaving the choice to the reader.
func buildStatement(category Category, replacements []string, keyword string) string {
	switch category {
	case CategoryTransaction:
		submit := strings.HasPrefix(strings.ToUpper(keyword), "SUBMIT")
		parts := make([]string, len(replacements))
		for i, r := range replacements {
			if submit {
				parts[i] = fmt.Sprintf("SUBMIT %s.", r)
			} else {
				parts[i] = fmt.Sprintf("CALL TRANSACTION '%s'.", r)
			}
		}
		return strings.Join(parts, " or ")

	case CategoryFunctionModule:
		return fmt.Sprintf("CALL FUNCTION '%s'.", replacements[0])

	case CategoryReport:
		return fmt.Sprintf("SUBMIT %s.", replacements[0])
	}
	return ""
}

// archiveNote names the archiving object a *47 report belongs to.
func archiveNote(object string) string {
	return fmt.Sprintf("Archiving Object %s: use *70 reports (EhP4+).", object)
}
