package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lightdarktcg/companion/internal/api/response"
	"github.com/lightdarktcg/companion/internal/catalog"
	"github.com/lightdarktcg/companion/internal/charts"
	"github.com/lightdarktcg/companion/internal/deck"
)

// DeckHandler handles deck validation, statistics, sharing and chart
// requests. Decks arrive as card code lists or as exported deck codes; the
// server never holds an editing session.
type DeckHandler struct {
	source CatalogSource
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(source CatalogSource) *DeckHandler {
	return &DeckHandler{source: source}
}

// CardListRequest is a deck given as an ordered list of card codes.
type CardListRequest struct {
	Cards []string `json:"cards"`
}

// DeckCodeRequest is a deck given in its exported code form.
type DeckCodeRequest struct {
	Code string `json:"code"`
}

// ValidationIssue describes one rejected card from a validation replay.
type ValidationIssue struct {
	Position int    `json:"position"`
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	Reason   string `json:"reason"`
}

// ValidationResult is the outcome of replaying a card list through the deck
// insertion rules.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues"`
	Stats  deck.Stats        `json:"stats"`
}

// resolveCards maps card codes to catalog cards. Unknown codes fail the
// whole request; the builder never produces them, so they indicate a stale
// or hand-edited payload.
func resolveCards(cat *catalog.Catalog, codes []string) ([]*catalog.Card, error) {
	cards := make([]*catalog.Card, 0, len(codes))
	for _, code := range codes {
		card := cat.ByCode(code)
		if card == nil {
			return nil, errors.New("unknown card code: " + code)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Validate replays the card list through the insertion rules in order and
// reports every rejection. Rejected cards are skipped, so later cards are
// judged against the deck that the accepted prefix builds. Size validity of
// the accepted deck counts toward the verdict.
func (h *DeckHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req CardListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	cat := h.source.Catalog()
	d := deck.New()
	issues := []ValidationIssue{}

	for i, code := range req.Cards {
		card := cat.ByCode(code)
		if card == nil {
			issues = append(issues, ValidationIssue{
				Position: i,
				Code:     code,
				Reason:   "unknown card code",
			})
			continue
		}
		if err := d.TryAdd(card); err != nil {
			issues = append(issues, ValidationIssue{
				Position: i,
				Code:     code,
				Name:     card.Name,
				Reason:   err.Error(),
			})
		}
	}

	stats := deck.ComputeStats(d)
	response.Success(w, ValidationResult{
		Valid:  len(issues) == 0 && stats.IsSizeValid,
		Issues: issues,
		Stats:  stats,
	})
}

// Stats computes statistics for a deck given as a card list. The list is
// taken as-is; validity is Validate's concern.
func (h *DeckHandler) Stats(w http.ResponseWriter, r *http.Request) {
	d, ok := h.deckFromBody(w, r)
	if !ok {
		return
	}
	response.Success(w, deck.ComputeStats(d))
}

// Export encodes a card list into the shareable deck code.
func (h *DeckHandler) Export(w http.ResponseWriter, r *http.Request) {
	d, ok := h.deckFromBody(w, r)
	if !ok {
		return
	}
	response.Success(w, DeckCodeRequest{Code: deck.Encode(d)})
}

// ImportResult is the outcome of decoding a deck code.
type ImportResult struct {
	Cards      []*catalog.Card `json:"cards"`
	Unresolved int             `json:"unresolved"`
	Stats      deck.Stats      `json:"stats"`
}

// Import decodes a deck code against the current catalog. Codes that no
// longer resolve are dropped and counted; only a malformed code fails.
func (h *DeckHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req DeckCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}
	if req.Code == "" {
		response.BadRequest(w, errors.New("deck code is required"))
		return
	}

	d, unresolved, err := deck.Decode(req.Code, h.source.Catalog())
	if err != nil {
		response.UnprocessableEntity(w, err)
		return
	}

	cards := d.Cards()
	if cards == nil {
		cards = []*catalog.Card{}
	}
	response.Success(w, ImportResult{
		Cards:      cards,
		Unresolved: unresolved,
		Stats:      deck.ComputeStats(d),
	})
}

// CostCurveChart renders the deck's cost curve as an ECharts HTML page.
func (h *DeckHandler) CostCurveChart(w http.ResponseWriter, r *http.Request) {
	d, ok := h.deckFromBody(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderCostCurve(deck.ComputeStats(d), charts.DefaultChartConfig(), w); err != nil {
		response.InternalError(w, err)
	}
}

// TypeDistributionChart renders the deck's type breakdown as an ECharts
// HTML page.
func (h *DeckHandler) TypeDistributionChart(w http.ResponseWriter, r *http.Request) {
	d, ok := h.deckFromBody(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderTypeDistribution(deck.ComputeStats(d), charts.DefaultChartConfig(), w); err != nil {
		response.InternalError(w, err)
	}
}

// deckFromBody reads a card list body and resolves it against the catalog.
// Writes the error response itself; the bool reports success.
func (h *DeckHandler) deckFromBody(w http.ResponseWriter, r *http.Request) (*deck.Deck, bool) {
	var req CardListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return nil, false
	}

	cards, err := resolveCards(h.source.Catalog(), req.Cards)
	if err != nil {
		response.UnprocessableEntity(w, err)
		return nil, false
	}

	return deck.FromCards(cards), true
}

// parseLimit reads an optional positive "limit" query parameter, returning
// fallback when absent.
func parseLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	l, err := strconv.Atoi(raw)
	if err != nil || l <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}
	return l, nil
}
