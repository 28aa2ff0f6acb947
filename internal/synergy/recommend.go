// Package synergy infers related cards from free rules text. The card data
// carries no structured relatedness field, so recommendations are scored
// from text patterns: direct name mentions, quoted «family» references, and
// archetype co-mentions, gated by equipment attachment restrictions.
//
// The scoring is deliberately zero-infrastructure: no index, no model, just
// a linear pass over the catalog per focal card. The catalog is small and
// lookups are user-driven, one card at a time, so recomputing on demand is
// cheaper than keeping anything warm.
package synergy

import (
	"sort"
	"strings"

	"github.com/lightdarktcg/companion/internal/catalog"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not specify one.
const DefaultLimit = 6

// Scoring weights. Direct name mentions are the strongest signal; archetype
// co-mentions the weakest (archetype alone scores nothing — the description
// must mention the tag, otherwise every card of a faction would relate to
// every other).
const (
	nameMentionScore   = 50
	quotedTermScore    = 30
	archetypeTagScore  = 15
	minQuotedTermRunes = 3
)

// ScoreRule scores one directionless aspect of a focal/candidate pair.
// Rules are pure and independent; the recommender sums them.
type ScoreRule func(focal, candidate *catalog.Card) int

// Recommender computes ranked related-card lists over a catalog.
type Recommender struct {
	rules []ScoreRule
}

// NewRecommender returns a recommender with the standard rule set.
func NewRecommender() *Recommender {
	return &Recommender{
		rules: []ScoreRule{
			nameMentionRule,
			quotedTermRule,
			archetypeRule,
		},
	}
}

// Recommendation pairs a card with its synergy score.
type Recommendation struct {
	Card  *catalog.Card `json:"card"`
	Score int           `json:"score"`
}

// Recommend returns up to limit cards related to focal, ranked by score
// descending. Ties keep catalog order (stable sort). Candidates scoring
// zero or below are excluded, as is the focal card itself. limit <= 0 uses
// DefaultLimit.
func (r *Recommender) Recommend(focal *catalog.Card, cat *catalog.Catalog, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var scored []Recommendation
	for _, candidate := range cat.Cards() {
		if candidate.Code == focal.Code {
			continue
		}
		score := r.score(focal, candidate)
		if score <= 0 {
			continue
		}
		scored = append(scored, Recommendation{Card: candidate, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// score applies the equipment gate, then sums the scoring rules.
func (r *Recommender) score(focal, candidate *catalog.Card) int {
	// Equipment restrictions are a hard filter, not a scored signal: an
	// equipment that cannot legally attach to the other card relates to it
	// not at all, whatever the text overlap.
	if focal.Type == catalog.TypeEquipment && !equipmentAllows(focal, candidate) {
		return 0
	}
	if candidate.Type == catalog.TypeEquipment && !equipmentAllows(candidate, focal) {
		return 0
	}

	total := 0
	for _, rule := range r.rules {
		total += rule(focal, candidate)
	}
	return total
}

// Marker phrases for equipment attachment restrictions. The card pool is
// bilingual while collections are translated, so both phrasings are
// recognized.
var (
	heroOnlyMarkers    = []string{"só pode ser equipada em heróis", "only equip to heroes"}
	namedTargetMarkers = []string{"só pode equipar", "can only equip"}
)

// equipmentAllows reports whether the equipment card's textual restrictions
// permit attaching to target.
func equipmentAllows(equip, target *catalog.Card) bool {
	desc := strings.ToLower(equip.Description)

	if containsAny(desc, heroOnlyMarkers) && target.Type != catalog.TypeHero {
		return false
	}

	if containsAny(desc, namedTargetMarkers) {
		restrictions := QuotedTerms(desc)
		if len(restrictions) > 0 {
			targetName := strings.ToLower(target.Name)
			matched := false
			for _, term := range restrictions {
				if strings.Contains(targetName, term) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}

	return true
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// nameMentionRule scores direct full-name mentions, each direction
// independently, so a mutual mention scores twice.
func nameMentionRule(focal, candidate *catalog.Card) int {
	focalDesc := strings.ToLower(focal.Description)
	candDesc := strings.ToLower(candidate.Description)

	score := 0
	if strings.Contains(focalDesc, strings.ToLower(candidate.Name)) {
		score += nameMentionScore
	}
	if strings.Contains(candDesc, strings.ToLower(focal.Name)) {
		score += nameMentionScore
	}
	return score
}

// quotedTermRule scores «family» references against the other card's name,
// each qualifying term in each direction. Terms shorter than three runes
// are skipped; they match too broadly to mean anything.
func quotedTermRule(focal, candidate *catalog.Card) int {
	score := 0
	score += quotedTermMatches(focal.Description, candidate.Name)
	score += quotedTermMatches(candidate.Description, focal.Name)
	return score
}

func quotedTermMatches(desc, name string) int {
	lowerName := strings.ToLower(name)
	score := 0
	for _, term := range QuotedTerms(desc) {
		if len([]rune(term)) < minQuotedTermRunes {
			continue
		}
		if strings.Contains(lowerName, term) {
			score += quotedTermScore
		}
	}
	return score
}

// archetypeRule scores archetype tags of one card mentioned in the other
// card's description, each tag in each direction.
func archetypeRule(focal, candidate *catalog.Card) int {
	score := 0
	score += archetypeMentions(candidate.Archetype, focal.Description)
	score += archetypeMentions(focal.Archetype, candidate.Description)
	return score
}

func archetypeMentions(archetype, desc string) int {
	lowerDesc := strings.ToLower(desc)
	score := 0
	for _, tag := range strings.Split(strings.ToLower(archetype), catalog.ArchetypeTagSeparator) {
		if tag == "" {
			continue
		}
		if strings.Contains(lowerDesc, tag) {
			score += archetypeTagScore
		}
	}
	return score
}
