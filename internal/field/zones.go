// Package field holds the reference content for the physical play-field
// diagram: each interactive zone's title and rules blurb. Pure lookup data;
// rendering belongs to the site.
package field

// ZoneKind groups zones by their role on the board.
type ZoneKind string

const (
	KindCombat    ZoneKind = "combat"
	KindSupport   ZoneKind = "support"
	KindDeck      ZoneKind = "deck"
	KindHeroDeck  ZoneKind = "hero-deck"
	KindGraveyard ZoneKind = "graveyard"
	KindBanished  ZoneKind = "banished"
	KindStats     ZoneKind = "stats"
	KindModifier  ZoneKind = "modifier"
)

// Zone describes one area of the play field.
type Zone struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Kind        ZoneKind `json:"kind"`
}

// zones lists the play-field areas in board order: the two six-slot rows,
// then the utility column.
var zones = []Zone{
	{
		ID:          "combatant",
		Title:       "Combatant / Hero Row",
		Description: "Up to 6 cards on the front line. Your combatants and your hero fight here; they attack and defend the player.",
		Kind:        KindCombat,
	},
	{
		ID:          "effect",
		Title:       "Equipment / Effect Row",
		Description: "Up to 6 cards in the back row for equipment and continuous effects. Multiple equipment cards may stack on the same combatant or hero from this row.",
		Kind:        KindSupport,
	},
	{
		ID:          "graveyard",
		Title:       "Dead Zone",
		Description: "Cards destroyed in combat, spent, or discarded go here.",
		Kind:        KindGraveyard,
	},
	{
		ID:          "stats",
		Title:       "Life and Mana",
		Description: "Players start at 20 life; at 0 you lose. Mana is a fixed 12 points per round, spent on card costs (CT).",
		Kind:        KindStats,
	},
	{
		ID:          "main-deck",
		Title:       "Main Deck",
		Description: "Your main pile of combatants, effects, and equipment. Counting heroes, the deck must hold 30 to 35 cards with no duplicates.",
		Kind:        KindDeck,
	},
	{
		ID:          "hero-deck",
		Title:       "Hero Deck",
		Description: "A separate pile holding only your heroes. A deck commits to a single hero, but may run several of that hero's variants.",
		Kind:        KindHeroDeck,
	},
	{
		ID:          "cost-mod",
		Title:       "Cost Modifiers",
		Description: "Card effects can raise or lower the cost of your cards during play.",
		Kind:        KindModifier,
	},
	{
		ID:          "deck-damage",
		Title:       "Deck Damage",
		Description: "Some effects burn the opposing deck. While deck damage is in force, combatants with life at or below the damage value die as they are summoned.",
		Kind:        KindModifier,
	},
	{
		ID:          "runes",
		Title:       "Runes",
		Description: "Special markers accumulated by Cosmic-archetype cards and specific effects, spent to trigger powerful abilities.",
		Kind:        KindModifier,
	},
	{
		ID:          "banished",
		Title:       "Erased Zone",
		Description: "The game's exile. Cards here are removed from the match and rarely return.",
		Kind:        KindBanished,
	},
}

// Zones returns all play-field zones in board order.
func Zones() []Zone {
	return zones
}

// ByID returns the zone with the given id, or nil when none matches.
func ByID(id string) *Zone {
	for i := range zones {
		if zones[i].ID == id {
			return &zones[i]
		}
	}
	return nil
}
