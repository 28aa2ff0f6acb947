package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lightdarktcg/companion/internal/api/response"
	"github.com/lightdarktcg/companion/internal/catalog"
	"github.com/lightdarktcg/companion/internal/synergy"
)

// CatalogSource yields the current card catalog. Behind the hot-reload
// watcher the catalog pointer changes between requests, so handlers fetch it
// per request.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}

// CardHandler handles card catalog API requests.
type CardHandler struct {
	source      CatalogSource
	recommender *synergy.Recommender
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(source CatalogSource, recommender *synergy.Recommender) *CardHandler {
	return &CardHandler{source: source, recommender: recommender}
}

// intParam parses an optional integer query parameter. Returns nil when the
// parameter is absent.
func intParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

// SearchCards filters the catalog by the query parameters. All dimensions
// combine with AND; absent parameters do not constrain the result.
func (h *CardHandler) SearchCards(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Text:       r.URL.Query().Get("q"),
		Archetype:  r.URL.Query().Get("archetype"),
		Collection: r.URL.Query().Get("collection"),
	}

	if t := r.URL.Query().Get("type"); t != "" {
		ct := catalog.CardType(t)
		if !ct.Valid() {
			response.BadRequest(w, errors.New("unknown card type: "+t))
			return
		}
		q.Type = ct
	}

	var err error
	if q.CT, err = intParam(r, "ct"); err != nil {
		response.BadRequest(w, err)
		return
	}
	if q.Attack, err = intParam(r, "attack"); err != nil {
		response.BadRequest(w, err)
		return
	}
	if q.Defense, err = intParam(r, "defense"); err != nil {
		response.BadRequest(w, err)
		return
	}

	cards := h.source.Catalog().Filter(q)
	response.Success(w, cards)
}

// GetCard returns a card by its catalog code.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, errors.New("card code is required"))
		return
	}

	card := h.source.Catalog().ByCode(code)
	if card == nil {
		response.NotFound(w, errors.New("card not found"))
		return
	}

	response.Success(w, card)
}

// GetRelated returns recommended companion cards for a focal card.
func (h *CardHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, errors.New("card code is required"))
		return
	}

	cat := h.source.Catalog()
	focal := cat.ByCode(code)
	if focal == nil {
		response.NotFound(w, errors.New("card not found"))
		return
	}

	limit := synergy.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l <= 0 {
			response.BadRequest(w, errors.New("limit must be a positive integer"))
			return
		}
		limit = l
	}

	recs := h.recommender.Recommend(focal, cat, limit)
	response.Success(w, recs)
}

// GetArchetypes returns the archetype records of the catalog.
func (h *CardHandler) GetArchetypes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.source.Catalog().Archetypes())
}

// GetCollections returns the distinct collection names in the catalog.
func (h *CardHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.source.Catalog().Collections())
}
