package catalog

import (
	"fmt"
	"sort"
)

// Catalog is an immutable ordered collection of cards plus the archetype
// list. Iteration order is the order cards appear in the source file; the
// synergy recommender relies on it for deterministic tie-breaking.
type Catalog struct {
	cards      []*Card
	archetypes []Archetype
	byCode     map[string]*Card
}

// New builds a catalog from the supplied cards and archetypes. It rejects
// duplicate card codes, unknown card types, and negative CT values; the
// catalog file is already validated upstream, so any error here indicates a
// corrupt data set rather than a recoverable condition.
func New(cards []*Card, archetypes []Archetype) (*Catalog, error) {
	byCode := make(map[string]*Card, len(cards))
	for i, card := range cards {
		if card.Code == "" {
			return nil, fmt.Errorf("card %d (%q): empty code", i, card.Name)
		}
		if !card.Type.Valid() {
			return nil, fmt.Errorf("card %q: unknown type %q", card.Code, card.Type)
		}
		if card.CT < 0 {
			return nil, fmt.Errorf("card %q: negative ct %d", card.Code, card.CT)
		}
		if _, exists := byCode[card.Code]; exists {
			return nil, fmt.Errorf("duplicate card code %q", card.Code)
		}
		byCode[card.Code] = card
	}

	return &Catalog{
		cards:      cards,
		archetypes: archetypes,
		byCode:     byCode,
	}, nil
}

// Cards returns all cards in catalog order. Callers must not modify the
// returned slice or the cards it points to.
func (c *Catalog) Cards() []*Card {
	return c.cards
}

// Archetypes returns the archetype records in catalog order.
func (c *Catalog) Archetypes() []Archetype {
	return c.archetypes
}

// ByCode returns the card with the given code, or nil if no card matches.
func (c *Catalog) ByCode(code string) *Card {
	return c.byCode[code]
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Collections returns the distinct non-empty collection names, sorted.
func (c *Catalog) Collections() []string {
	seen := make(map[string]bool)
	var collections []string
	for _, card := range c.cards {
		if card.Collection == "" || seen[card.Collection] {
			continue
		}
		seen[card.Collection] = true
		collections = append(collections, card.Collection)
	}
	sort.Strings(collections)
	return collections
}
