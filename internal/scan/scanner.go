package scan

import (
	"mmscan/internal/logging"
	"mmscan/internal/refdata"
)

// Scanner runs all call-site matchers over ABAP source text. It holds only
// immutable state (the reference tables and the patterns compiled from
// them), so a single Scanner serves concurrent scans without locking.
type Scanner struct {
	tables *refdata.Tables
	logger *logging.Logger

	transactions *Matcher
	functions    *Matcher
	archive47    *Matcher
	archive30    *Matcher
	readReports  *Matcher
}

// NewScanner compiles the matchers from the given tables. A table with no
// entries produces no matcher; its pass is skipped rather than compiled
// into a pattern that can never match.
func NewScanner(tables *refdata.Tables, logger *logging.Logger) *Scanner {
	return &Scanner{
		tables:       tables,
		logger:       logger,
		transactions: newTransactionMatcher(tables.TransactionNames()),
		functions:    newFunctionMatcher(tables.FunctionNames()),
		archive47:    newReportMatcher(tables.ArchiveReportNames()),
		archive30:    newPrefixReportMatcher(tables.ArchivePrefixes),
		readReports:  newReportMatcher(tables.ReadReportNames()),
	}
}

// Tables returns the reference tables the scanner was built from.
func (s *Scanner) Tables() *refdata.Tables {
	return s.tables
}

// Scan locates every deprecated call site in text and returns one
// suggestion per hit. Records are ordered by category pass (transactions,
// function modules, *47 reports, *30 reports, read reports), each pass in
// document order. Empty text yields an empty list.
func (s *Scanner) Scan(text string) []Suggestion {
	suggestions := []Suggestion{}
	if text == "" {
		return suggestions
	}

	// 1) Transactions
	for _, m := range s.transactions.FindAll(text) {
		repls, ok := s.tables.Transactions[m.Name]
		if !ok || len(repls) == 0 {
			continue
		}
		statement := buildStatement(CategoryTransaction, repls, m.Keyword)
		suggestions = append(suggestions, newSuggestion(
			CategoryTransaction, m.Name, m.Start, m.End,
			statement, len(repls) > 1, s.tables.TransactionNotes[m.Name]))
	}

	// 2) BAPIs and IDoc input function modules
	for _, m := range s.functions.FindAll(text) {
		if entry, ok := s.tables.BAPIs[m.Name]; ok {
			statement := buildStatement(CategoryFunctionModule, []string{entry.New}, m.Keyword)
			suggestions = append(suggestions, newSuggestion(
				CategoryFunctionModule, m.Name, m.Start, m.End,
				statement, false, entry.Note))
			continue
		}
		if entry, ok := s.tables.IDocFunctions[m.Name]; ok {
			statement := buildStatement(CategoryFunctionModule, []string{entry.New}, m.Keyword)
			// A self-mapped name signals "verify the business-object
			// version", which needs human review.
			suggestions = append(suggestions, newSuggestion(
				CategoryFunctionModule, m.Name, m.Start, m.End,
				statement, entry.New == m.Name, entry.Note))
		}
	}

	// 3) Archiving reports *47 -> *70
	for _, m := range s.archive47.FindAll(text) {
		entry, ok := s.tables.ArchiveReports[m.Name]
		if !ok {
			continue
		}
		statement := buildStatement(CategoryReport, []string{entry.New}, m.Keyword)
		suggestions = append(suggestions, newSuggestion(
			CategoryReport, m.Name, m.Start, m.End,
			statement, false, archiveNote(entry.Object)))
	}

	// 4) Very old *30 reports: only the target family is known
	for _, m := range s.archive30.FindAll(text) {
		// Read reports also carry the 30 suffix; they get their own pass
		// below and must not be double-reported here.
		if s.tables.IsReadReport(m.Name) {
			continue
		}
		suggestions = append(suggestions, newSuggestion(
			CategoryReport, m.Name, m.Start, m.End,
			archive30Statement, true, archive30Note))
	}

	// 5) Read reports: still valid, advisory redirect only
	for _, m := range s.readReports.FindAll(text) {
		suggestions = append(suggestions, newSuggestion(
			CategoryReport, m.Name, m.Start, m.End,
			readRedirectStatement, true, readRedirectNote))
	}

	if s.logger != nil && len(suggestions) > 0 {
		s.logger.Debug("Scan complete", map[string]interface{}{
			"chars":       len(text),
			"suggestions": len(suggestions),
		})
	}

	return suggestions
}
