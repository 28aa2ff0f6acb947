package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lightdarktcg/companion/internal/api/response"
	"github.com/lightdarktcg/companion/internal/api/websocket"
	"github.com/lightdarktcg/companion/internal/deck"
	"github.com/lightdarktcg/companion/internal/storage"
)

// editKeyHeader carries the edit key on delete requests. A header keeps the
// key out of server access logs.
const editKeyHeader = "X-Edit-Key"

// EventBroadcaster pushes server events to connected clients.
type EventBroadcaster interface {
	BroadcastEvent(event websocket.Event) bool
}

// SharedDeckHandler handles the shared-deck endpoints.
type SharedDeckHandler struct {
	db     *storage.DB
	source CatalogSource
	events EventBroadcaster
}

// NewSharedDeckHandler creates a new SharedDeckHandler. events may be nil.
func NewSharedDeckHandler(db *storage.DB, source CatalogSource, events EventBroadcaster) *SharedDeckHandler {
	return &SharedDeckHandler{db: db, source: source, events: events}
}

// ShareDeckRequest is the body for saving a shared deck.
type ShareDeckRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	EditKey string `json:"editKey,omitempty"`
}

// SharedDeckResponse is the public view of a stored shared deck. The edit
// key hash never leaves the server.
type SharedDeckResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CardCount int       `json:"cardCount"`
	Protected bool      `json:"protected"`
	CreatedAt time.Time `json:"createdAt"`
}

func sharedDeckView(d *storage.SharedDeck) SharedDeckResponse {
	return SharedDeckResponse{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.DeckCode,
		CardCount: d.CardCount,
		Protected: d.Protected(),
		CreatedAt: d.CreatedAt,
	}
}

// Share stores a deck code under a name so it can be fetched by id. The
// code is decoded first so corrupt codes are rejected at save time and the
// card count can be denormalized for listings.
func (h *SharedDeckHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req ShareDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}
	if req.Name == "" {
		response.BadRequest(w, errors.New("deck name is required"))
		return
	}
	if req.Code == "" {
		response.BadRequest(w, errors.New("deck code is required"))
		return
	}

	d, _, err := deck.Decode(req.Code, h.source.Catalog())
	if err != nil {
		response.UnprocessableEntity(w, err)
		return
	}

	saved, err := h.db.SaveDeck(r.Context(), req.Name, req.Code, d.Len(), req.EditKey)
	if err != nil {
		response.InternalError(w, err)
		return
	}

	view := sharedDeckView(saved)
	if h.events != nil {
		h.events.BroadcastEvent(websocket.Event{Type: websocket.EventDeckShared, Data: view})
	}

	response.Created(w, view)
}

// Get returns a shared deck by id.
func (h *SharedDeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "deckID")

	d, err := h.db.GetDeck(r.Context(), id)
	if errors.Is(err, storage.ErrDeckNotFound) {
		response.NotFound(w, err)
		return
	}
	if err != nil {
		response.InternalError(w, err)
		return
	}

	response.Success(w, sharedDeckView(d))
}

// ListRecent returns the most recently shared decks.
func (h *SharedDeckHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, 20)
	if err != nil {
		response.BadRequest(w, err)
		return
	}

	decks, err := h.db.ListRecentDecks(r.Context(), limit)
	if err != nil {
		response.InternalError(w, err)
		return
	}

	views := make([]SharedDeckResponse, 0, len(decks))
	for _, d := range decks {
		views = append(views, sharedDeckView(d))
	}

	response.Success(w, views)
}

// Delete removes a shared deck. Protected decks require the matching edit
// key in the X-Edit-Key header.
func (h *SharedDeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "deckID")

	d, err := h.db.GetDeck(r.Context(), id)
	if errors.Is(err, storage.ErrDeckNotFound) {
		response.NotFound(w, err)
		return
	}
	if err != nil {
		response.InternalError(w, err)
		return
	}

	if d.Protected() {
		key := r.Header.Get(editKeyHeader)
		if key == "" || !storage.VerifyEditKey(key, d.EditKeyHash) {
			response.Forbidden(w, errors.New("edit key required"))
			return
		}
	}

	if err := h.db.DeleteDeck(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrDeckNotFound) {
			response.NotFound(w, err)
			return
		}
		response.InternalError(w, err)
		return
	}

	response.NoContent(w)
}
