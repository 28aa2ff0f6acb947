package catalog

import "strings"

// Query holds the optional filter dimensions for a catalog search. A zero
// value for any dimension leaves that dimension inert; active dimensions
// combine with logical AND. The same query type backs the browse view and
// the deck builder's card pool.
type Query struct {
	// Text matches case-insensitively as a substring of the card's name,
	// code, or description (any of the three).
	Text string
	// Type matches the card type exactly.
	Type CardType
	// Archetype matches as a substring of the card's archetype field, which
	// may carry multiple " / "-joined tags.
	Archetype string
	// Collection matches the card's collection exactly.
	Collection string
	// CT matches the card's CT value exactly.
	CT *int
	// Attack matches the card's attack exactly. Cards without an attack
	// value never match when this is set.
	Attack *int
	// Defense matches the card's defense exactly. Cards without a defense
	// value never match when this is set.
	Defense *int
}

// Filter returns the cards matching every active dimension of q, in catalog
// order.
func (c *Catalog) Filter(q Query) []*Card {
	var matched []*Card
	for _, card := range c.cards {
		if q.Matches(card) {
			matched = append(matched, card)
		}
	}
	return matched
}

// Matches reports whether a single card satisfies every active dimension.
func (q Query) Matches(card *Card) bool {
	if q.Text != "" {
		text := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(card.Name), text) &&
			!strings.Contains(strings.ToLower(card.Code), text) &&
			!strings.Contains(strings.ToLower(card.Description), text) {
			return false
		}
	}
	if q.Type != "" && card.Type != q.Type {
		return false
	}
	if q.Archetype != "" && !strings.Contains(card.Archetype, q.Archetype) {
		return false
	}
	if q.Collection != "" && card.Collection != q.Collection {
		return false
	}
	if q.CT != nil && card.CT != *q.CT {
		return false
	}
	if q.Attack != nil && (card.Attack == nil || *card.Attack != *q.Attack) {
		return false
	}
	if q.Defense != nil && (card.Defense == nil || *card.Defense != *q.Defense) {
		return false
	}
	return true
}
