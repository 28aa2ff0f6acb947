package synergy

import "strings"

// Card rules text references named sub-families by quoting them between
// guillemet markers, e.g. "All «Spear» combatants gain +2 attack". The
// quoted term is matched against card names to resolve the family.

const (
	termOpen  = '«'
	termClose = '»'
)

// QuotedTerms extracts the «...» terms from rules text, lowercased and
// trimmed, in order of appearance. Unterminated markers are ignored.
func QuotedTerms(text string) []string {
	var terms []string
	rest := text
	for {
		open := strings.IndexRune(rest, termOpen)
		if open < 0 {
			return terms
		}
		rest = rest[open+len(string(termOpen)):]

		closing := strings.IndexRune(rest, termClose)
		if closing < 0 {
			return terms
		}
		term := strings.TrimSpace(strings.ToLower(rest[:closing]))
		if term != "" {
			terms = append(terms, term)
		}
		rest = rest[closing+len(string(termClose)):]
	}
}
