package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lightdarktcg/companion/internal/api/websocket"
	"github.com/lightdarktcg/companion/internal/catalog"
	"github.com/lightdarktcg/companion/internal/deck"
	"github.com/lightdarktcg/companion/internal/storage"
)

// recordingBroadcaster captures broadcast events.
type recordingBroadcaster struct {
	events []websocket.Event
}

func (r *recordingBroadcaster) BroadcastEvent(event websocket.Event) bool {
	r.events = append(r.events, event)
	return true
}

func sharedTestRouter(t *testing.T) (*chi.Mux, *recordingBroadcaster) {
	t.Helper()

	config := storage.DefaultConfig(filepath.Join(t.TempDir(), "test.db"))
	config.AutoMigrate = true
	db, err := storage.Open(config)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	broadcaster := &recordingBroadcaster{}
	handler := NewSharedDeckHandler(db, testSource(t), broadcaster)

	r := chi.NewRouter()
	r.Get("/decks/shared", handler.ListRecent)
	r.Post("/decks/shared", handler.Share)
	r.Get("/decks/shared/{deckID}", handler.Get)
	r.Delete("/decks/shared/{deckID}", handler.Delete)
	return r, broadcaster
}

func exportCode(t *testing.T, codes ...string) string {
	t.Helper()
	source := testSource(t)
	cards := make([]*catalog.Card, 0, len(codes))
	for _, code := range codes {
		card := source.Catalog().ByCode(code)
		if card == nil {
			t.Fatalf("Unknown test card code %s", code)
		}
		cards = append(cards, card)
	}
	return deck.Encode(deck.FromCards(cards))
}

func TestShareDeck(t *testing.T) {
	r, broadcaster := sharedTestRouter(t)
	code := exportCode(t, "ld-001", "ld-002")

	rec := doJSON(t, r, http.MethodPost, "/decks/shared", ShareDeckRequest{
		Name: "Luz Control",
		Code: code,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var saved SharedDeckResponse
	decodeData(t, rec, &saved)

	if saved.ID == "" {
		t.Error("Expected generated deck id")
	}
	if saved.CardCount != 2 {
		t.Errorf("Expected card count 2, got %d", saved.CardCount)
	}
	if saved.Protected {
		t.Error("Expected unprotected deck")
	}

	if len(broadcaster.events) != 1 || broadcaster.events[0].Type != websocket.EventDeckShared {
		t.Errorf("Expected one deck.shared event, got %v", broadcaster.events)
	}

	// Fetch it back.
	rec = doJSON(t, r, http.MethodGet, "/decks/shared/"+saved.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var fetched SharedDeckResponse
	decodeData(t, rec, &fetched)
	if fetched.Code != code {
		t.Error("Expected stored deck code to round-trip")
	}
}

func TestShareDeck_MalformedCode(t *testing.T) {
	r, _ := sharedTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/decks/shared", ShareDeckRequest{
		Name: "Broken",
		Code: "!!! not a deck code !!!",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", rec.Code)
	}
}

func TestShareDeck_MissingFields(t *testing.T) {
	r, _ := sharedTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/decks/shared", ShareDeckRequest{Code: "abc"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing name, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPost, "/decks/shared", ShareDeckRequest{Name: "abc"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing code, got %d", rec.Code)
	}
}

func TestGetSharedDeck_NotFound(t *testing.T) {
	r, _ := sharedTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/decks/shared/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestListSharedDecks(t *testing.T) {
	r, _ := sharedTestRouter(t)
	code := exportCode(t, "ld-001")

	for _, name := range []string{"First", "Second"} {
		rec := doJSON(t, r, http.MethodPost, "/decks/shared", ShareDeckRequest{Name: name, Code: code})
		if rec.Code != http.StatusCreated {
			t.Fatalf("Share failed: %d", rec.Code)
		}
	}

	rec := doJSON(t, r, http.MethodGet, "/decks/shared", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var decks []SharedDeckResponse
	decodeData(t, rec, &decks)
	if len(decks) != 2 {
		t.Errorf("Expected 2 decks, got %d", len(decks))
	}
}

func TestDeleteSharedDeck_Unprotected(t *testing.T) {
	r, _ := sharedTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/decks/shared", ShareDeckRequest{
		Name: "Doomed",
		Code: exportCode(t, "ld-001"),
	})
	var saved SharedDeckResponse
	decodeData(t, rec, &saved)

	rec = doJSON(t, r, http.MethodDelete, "/decks/shared/"+saved.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/decks/shared/"+saved.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected deck to be gone, got %d", rec.Code)
	}
}

func TestDeleteSharedDeck_Protected(t *testing.T) {
	r, _ := sharedTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/decks/shared", ShareDeckRequest{
		Name:    "Locked",
		Code:    exportCode(t, "ld-001"),
		EditKey: "hunter2",
	})
	var saved SharedDeckResponse
	decodeData(t, rec, &saved)
	if !saved.Protected {
		t.Fatal("Expected protected deck")
	}

	// No key.
	rec = doJSON(t, r, http.MethodDelete, "/decks/shared/"+saved.ID, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 without key, got %d", rec.Code)
	}

	// Wrong key.
	req := httptest.NewRequest(http.MethodDelete, "/decks/shared/"+saved.ID, nil)
	req.Header.Set("X-Edit-Key", "wrong")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 with wrong key, got %d", resp.Code)
	}

	// Right key.
	req = httptest.NewRequest(http.MethodDelete, "/decks/shared/"+saved.ID, nil)
	req.Header.Set("X-Edit-Key", "hunter2")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Errorf("Expected 204 with correct key, got %d", resp.Code)
	}
}
