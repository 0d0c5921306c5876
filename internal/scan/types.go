// Package scan locates deprecated MM purchasing call sites in ABAP source
// text and turns each hit into a remediation suggestion. Matching is purely
// lexical: the matchers trust the ABAP keyword and period-terminator
// conventions and do not parse the language.
package scan

// Category identifies the kind of call site a suggestion refers to.
type Category string

const (
	CategoryTransaction    Category = "Transaction"
	CategoryFunctionModule Category = "FunctionModule"
	CategoryReport         Category = "Report"
)

// tableSentinel is the fixed value of the reserved "table" field.
const tableSentinel = "None"

// Suggestion is one remediation record. Spans are half-open character
// offsets into the scanned text and cover the whole matched construct
// (keyword, identifier and trailing syntax), not just the identifier.
//
// used_fields and suggested_fields are reserved for field-level analysis
// and are always an empty list and null respectively.
type Suggestion struct {
	Table              string   `json:"table"`
	TargetType         Category `json:"target_type"`
	TargetName         string   `json:"target_name"`
	StartChar          int      `json:"start_char_in_unit"`
	EndChar            int      `json:"end_char_in_unit"`
	UsedFields         []string `json:"used_fields"`
	Ambiguous          bool     `json:"ambiguous"`
	SuggestedStatement string   `json:"suggested_statement"`
	SuggestedFields    []string `json:"suggested_fields"`
	Note               string   `json:"note,omitempty"`
}

func newSuggestion(category Category, name string, start, end int, statement string, ambiguous bool, note string) Suggestion {
	return Suggestion{
		Table:              tableSentinel,
		TargetType:         category,
		TargetName:         name,
		StartChar:          start,
		EndChar:            end,
		UsedFields:         []string{},
		Ambiguous:          ambiguous,
		SuggestedStatement: statement,
		SuggestedFields:    nil,
		Note:               note,
	}
}
