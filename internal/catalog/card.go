// Package catalog provides the read-only card catalog the rest of the
// application operates on. The catalog is supplied externally (a JSON file
// maintained by the content team) and is immutable for the lifetime of the
// process; components receive it by injection rather than through package
// state so they can be tested against synthetic catalogs.
package catalog

// CardType classifies a card. Every card is exactly one of the four types.
type CardType string

const (
	// TypeHero is a hero card. A deck may mix hero variants only when they
	// share the same hero identity.
	TypeHero CardType = "Hero"
	// TypeCombatant is a front-line creature card.
	TypeCombatant CardType = "Combatant"
	// TypeEquipment is an equipment card attached to a hero or combatant.
	TypeEquipment CardType = "Equipment"
	// TypeEffect is a one-shot or continuous effect card.
	TypeEffect CardType = "Effect"
)

// Valid reports whether t is one of the four known card types.
func (t CardType) Valid() bool {
	switch t {
	case TypeHero, TypeCombatant, TypeEquipment, TypeEffect:
		return true
	}
	return false
}

// Card is an immutable catalog record.
//
// Code is the catalog primary key and is unique across the catalog.
// Archetype may carry multiple tags joined by " / ". Attack and Defense are
// present only for Hero and Combatant cards. Description is free rules text
// and may embed «...» group references (see the synergy package).
type Card struct {
	Name          string   `json:"name"`
	Type          CardType `json:"type"`
	Archetype     string   `json:"archetype"`
	Collection    string   `json:"collection,omitempty"`
	CT            int      `json:"ct"`
	Attack        *int     `json:"attack,omitempty"`
	Defense       *int     `json:"defense,omitempty"`
	Description   string   `json:"description"`
	Code          string   `json:"code"`
	Lore          string   `json:"lore,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	ImageGradient string   `json:"imageGradient,omitempty"`
}

// ArchetypeTagSeparator joins multiple archetype tags in Card.Archetype.
const ArchetypeTagSeparator = " / "

// Archetype describes one of the game's archetype factions. Presentation
// fields are carried through for the site but have no semantic role here.
type Archetype struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
