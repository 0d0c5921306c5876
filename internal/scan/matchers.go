package scan

import (
	"regexp"
	"strings"
)

// Match is one located call site.
type Match struct {
	Keyword string // invocation keyword as it appears in the text
	Name    string // matched identifier, uppercased
	Start   int    // span start, inclusive
	End     int    // span end, exclusive
}

// Matcher is a compiled case-insensitive pattern for one call-site shape.
// Matchers are built once from the reference tables and are safe for
// concurrent use.
type Matcher struct {
	re         *regexp.Regexp
	keywordIdx int
	nameIdx    int
}

func compile(expr string) *Matcher {
	re := regexp.MustCompile(expr)
	return &Matcher{
		re:         re,
		keywordIdx: re.SubexpIndex("stmt"),
		nameIdx:    re.SubexpIndex("name"),
	}
}

// FindAll returns every match in text in document order.
func (m *Matcher) FindAll(text string) []Match {
	if m == nil || text == "" {
		return nil
	}

	var matches []Match
	for _, idx := range m.re.FindAllStringSubmatchIndex(text, -1) {
		match := Match{
			Start: idx[0],
			End:   idx[1],
		}
		if m.keywordIdx > 0 && idx[2*m.keywordIdx] >= 0 {
			match.Keyword = text[idx[2*m.keywordIdx]:idx[2*m.keywordIdx+1]]
		}
		if m.nameIdx > 0 && idx[2*m.nameIdx] >= 0 {
			match.Name = strings.ToUpper(text[idx[2*m.nameIdx]:idx[2*m.nameIdx+1]])
		}
		matches = append(matches, match)
	}
	return matches
}

// alternation joins pre-sorted (longest-first) literals into a regexp
// alternation group body.
func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}

// newTransactionMatcher matches CALL TRANSACTION or SUBMIT followed by one
// of the deprecated transaction codes, optionally quoted, with an optional
// statement terminator. The trailing \b keeps a classic code from matching
// inside its Enjoy successor (ME21 inside ME21N).
func newTransactionMatcher(codes []string) *Matcher {
	if len(codes) == 0 {
		return nil
	}
	return compile(`(?i)(?P<stmt>CALL\s+TRANSACTION|SUBMIT)\s+['"]?(?P<name>` +
		alternation(codes) + `)\b['"]?\s*\.?`)
}

// newFunctionMatcher matches CALL FUNCTION with a quoted deprecated name.
// The match consumes the whole statement up to and including the period, so
// the span covers the parameter list.
func newFunctionMatcher(names []string) *Matcher {
	if len(names) == 0 {
		return nil
	}
	return compile(`(?is)(?P<stmt>CALL\s+FUNCTION)\s+['"](?P<name>` +
		alternation(names) + `)['"][^.]*\.`)
}

// newReportMatcher matches SUBMIT of one of the given report names,
// consuming the whole statement.
func newReportMatcher(names []string) *Matcher {
	if len(names) == 0 {
		return nil
	}
	return compile(`(?is)(?P<stmt>SUBMIT)\s+(?P<name>` +
		alternation(names) + `)\b[^.]*\.`)
}

// newPrefixReportMatcher matches SUBMIT of any report from the old *30
// generation: a known family prefix, arbitrary letters, then the 30 suffix.
func newPrefixReportMatcher(prefixes []string) *Matcher {
	if len(prefixes) == 0 {
		return nil
	}
	return compile(`(?is)(?P<stmt>SUBMIT)\s+(?P<name>(?:` +
		alternation(prefixes) + `)[A-Z]*30)\b[^.]*\.`)
}
