package deck

import (
	"strings"
	"unicode"
)

// identityOverride maps a lowercase name fragment to a canonical hero
// identity. Some hero variants don't share a leading name token (Otto is an
// Asmonious variant, for example), so overrides run before the generic
// first-token fallback. The list is ordered; the first match wins, and new
// overrides are added here rather than as branches.
type identityOverride struct {
	fragment string
	identity string
}

var heroIdentityOverrides = []identityOverride{
	{fragment: "mahina", identity: "Mahina"},
	{fragment: "otto", identity: "Asmonious"},
	{fragment: "asmonious", identity: "Asmonious"},
	{fragment: "vellret", identity: "Vellret"},
}

// HeroIdentity derives the canonical identity token for a hero name. Hero
// variants with the same identity ("Jenos Caído", "Jenos Senhor do
// Macroverso") may share a deck; heroes with different identities may not.
func HeroIdentity(name string) string {
	lower := strings.ToLower(name)
	for _, override := range heroIdentityOverrides {
		if strings.Contains(lower, override.fragment) {
			return override.identity
		}
	}

	// Fallback: first whitespace- or hyphen-delimited token of the
	// original (unlowered) name.
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}
