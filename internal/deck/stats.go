package deck

import "github.com/lightdarktcg/companion/internal/catalog"

// Stats is a derived view over a deck. It is recomputed from scratch on
// every mutation; nothing incremental is kept.
type Stats struct {
	// Total is the number of cards in the deck.
	Total int `json:"total"`
	// CountsByType maps each card type to its count. All four types are
	// always present, zero-valued when absent from the deck.
	CountsByType map[catalog.CardType]int `json:"counts_by_type"`
	// CostDistribution maps each CT value present in the deck to its count.
	CostDistribution map[int]int `json:"cost_distribution"`
	// IsSizeValid reports whether the deck is within the submittable
	// 30-35 card range.
	IsSizeValid bool `json:"is_size_valid"`
	// HasHero reports whether the deck contains at least one hero.
	HasHero bool `json:"has_hero"`
}

// ComputeStats derives statistics for the deck. Total function: it is
// defined for every deck state, including empty.
func ComputeStats(d *Deck) Stats {
	stats := Stats{
		Total: d.Len(),
		CountsByType: map[catalog.CardType]int{
			catalog.TypeHero:      0,
			catalog.TypeCombatant: 0,
			catalog.TypeEquipment: 0,
			catalog.TypeEffect:    0,
		},
		CostDistribution: make(map[int]int),
	}

	for _, card := range d.Cards() {
		stats.CountsByType[card.Type]++
		stats.CostDistribution[card.CT]++
	}

	stats.IsSizeValid = stats.Total >= MinSize && stats.Total <= MaxSize
	stats.HasHero = stats.CountsByType[catalog.TypeHero] > 0

	return stats
}
