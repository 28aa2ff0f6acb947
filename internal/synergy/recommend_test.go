package synergy

import (
	"fmt"
	"testing"

	"github.com/lightdarktcg/companion/internal/catalog"
)

func mustCatalog(t *testing.T, cards []*catalog.Card) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(cards, nil)
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}
	return cat
}

func TestRecommend_NameMention(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Mahina, a Guardiã", Type: catalog.TypeHero, Code: "h-1", Description: "Quando Eco da Luz entrar em campo, compre uma carta."},
		{Name: "Eco da Luz", Type: catalog.TypeCombatant, Code: "c-1", CT: 2, Description: "Voa."},
		{Name: "Sombra Errante", Type: catalog.TypeCombatant, Code: "c-2", CT: 3, Description: "Nada a ver."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("h-1"), cat, 0)

	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Card.Code != "c-1" {
		t.Errorf("Expected c-1, got %s", recs[0].Card.Code)
	}
	if recs[0].Score < 50 {
		t.Errorf("Expected name mention score of at least 50, got %d", recs[0].Score)
	}
}

func TestRecommend_MutualMentionScoresTwice(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Alfa", Type: catalog.TypeCombatant, Code: "c-1", Description: "Beta ganha +2."},
		{Name: "Beta", Type: catalog.TypeCombatant, Code: "c-2", Description: "Alfa ganha +2."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("c-1"), cat, 0)

	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Score != 100 {
		t.Errorf("Expected mutual mention score 100, got %d", recs[0].Score)
	}
}

func TestRecommend_QuotedTerm(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Mestre das Lanças", Type: catalog.TypeCombatant, Code: "c-1", Description: "Todos os combatentes «Lança» ganham +1."},
		{Name: "Lança Solar", Type: catalog.TypeEquipment, Code: "e-1", Description: "+2 de ataque."},
		{Name: "Escudo Lunar", Type: catalog.TypeEquipment, Code: "e-2", Description: "+2 de defesa."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("c-1"), cat, 0)

	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Card.Code != "e-1" {
		t.Errorf("Expected e-1, got %s", recs[0].Card.Code)
	}
	if recs[0].Score != 30 {
		t.Errorf("Expected quoted term score 30, got %d", recs[0].Score)
	}
}

func TestRecommend_ArchetypeMention(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Arauto", Type: catalog.TypeCombatant, Code: "c-1", Archetype: "Luz", Description: "Voa."},
		{Name: "Bênção", Type: catalog.TypeEffect, Code: "f-1", Archetype: "Luz", Description: "Cartas Luz custam 1 a menos."},
		{Name: "Maldição", Type: catalog.TypeEffect, Code: "f-2", Archetype: "Escuridão", Description: "Nada."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("c-1"), cat, 0)

	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Card.Code != "f-1" {
		t.Errorf("Expected f-1, got %s", recs[0].Card.Code)
	}
	if recs[0].Score != 15 {
		t.Errorf("Expected archetype score 15, got %d", recs[0].Score)
	}
}

func TestRecommend_SharedArchetypeAloneScoresNothing(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Arauto", Type: catalog.TypeCombatant, Code: "c-1", Archetype: "Luz", Description: "Voa."},
		{Name: "Sentinela", Type: catalog.TypeCombatant, Code: "c-2", Archetype: "Luz", Description: "Provoca."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("c-1"), cat, 0)

	if len(recs) != 0 {
		t.Errorf("Expected no recommendations for archetype membership alone, got %d", len(recs))
	}
}

func TestRecommend_ExcludesSelf(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Eco", Type: catalog.TypeCombatant, Code: "c-1", Description: "Eco ganha +1 por cada Eco."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("c-1"), cat, 0)

	if len(recs) != 0 {
		t.Errorf("Expected focal card to be excluded, got %d recommendations", len(recs))
	}
}

func TestRecommend_HeroOnlyEquipmentGate(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Lança Solar", Type: catalog.TypeEquipment, Code: "e-1", Description: "Só pode ser equipada em heróis. Sombra Errante teme esta arma."},
		{Name: "Sombra Errante", Type: catalog.TypeCombatant, Code: "c-1", Description: "Teme a Lança Solar."},
		{Name: "Mahina, a Guardiã", Type: catalog.TypeHero, Code: "h-1", Description: "Busca a Lança Solar."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("e-1"), cat, 0)

	// The combatant mentions the equipment but cannot carry it; only the
	// hero qualifies.
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Card.Code != "h-1" {
		t.Errorf("Expected h-1, got %s", recs[0].Card.Code)
	}
}

func TestRecommend_NamedTargetEquipmentGate(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Martelo Ancestral", Type: catalog.TypeEquipment, Code: "e-1", Description: "Só pode equipar «Vellret». Sombra Errante e Vellret Sombrio buscam esta carta."},
		{Name: "Vellret Sombrio", Type: catalog.TypeHero, Code: "h-1", Description: "Nada."},
		{Name: "Sombra Errante", Type: catalog.TypeCombatant, Code: "c-1", Description: "Busca o Martelo Ancestral."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("e-1"), cat, 0)

	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Card.Code != "h-1" {
		t.Errorf("Expected h-1, got %s", recs[0].Card.Code)
	}
}

func TestRecommend_GateAppliesWhenCandidateIsEquipment(t *testing.T) {
	cat := mustCatalog(t, []*catalog.Card{
		{Name: "Sombra Errante", Type: catalog.TypeCombatant, Code: "c-1", Description: "Busca a Lança Solar."},
		{Name: "Lança Solar", Type: catalog.TypeEquipment, Code: "e-1", Description: "Só pode ser equipada em heróis."},
	})

	recs := NewRecommender().Recommend(cat.ByCode("c-1"), cat, 0)

	if len(recs) != 0 {
		t.Errorf("Expected hero-only equipment to be gated out, got %d recommendations", len(recs))
	}
}

func TestRecommend_RankingAndLimit(t *testing.T) {
	cards := []*catalog.Card{
		{Name: "Foco", Type: catalog.TypeCombatant, Code: "focal", Archetype: "Luz", Description: "Mencionado ganha +1. «Família» também."},
		{Name: "Mencionado", Type: catalog.TypeCombatant, Code: "strong", Description: "Nada."},
		{Name: "Família Real", Type: catalog.TypeCombatant, Code: "medium", Description: "Nada."},
		{Name: "Devoto", Type: catalog.TypeCombatant, Code: "weak", Archetype: "Luz", Description: "Protege cartas Luz."},
	}
	// Padding cards that score equally with weak, to exercise the limit.
	for i := 0; i < 5; i++ {
		cards = append(cards, &catalog.Card{
			Name: fmt.Sprintf("Devoto %d", i), Type: catalog.TypeCombatant,
			Code: fmt.Sprintf("pad-%d", i), Archetype: "Luz",
			Description: "Protege cartas Luz.",
		})
	}
	cat := mustCatalog(t, cards)

	recs := NewRecommender().Recommend(cat.ByCode("focal"), cat, 0)

	if len(recs) != DefaultLimit {
		t.Fatalf("Expected %d recommendations, got %d", DefaultLimit, len(recs))
	}
	if recs[0].Card.Code != "strong" {
		t.Errorf("Expected strong first, got %s", recs[0].Card.Code)
	}
	if recs[1].Card.Code != "medium" {
		t.Errorf("Expected medium second, got %s", recs[1].Card.Code)
	}
	// Ties keep catalog order.
	if recs[2].Card.Code != "weak" || recs[3].Card.Code != "pad-0" {
		t.Errorf("Expected tied cards in catalog order, got %s then %s", recs[2].Card.Code, recs[3].Card.Code)
	}

	limited := NewRecommender().Recommend(cat.ByCode("focal"), cat, 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 recommendations with limit 2, got %d", len(limited))
	}
}
