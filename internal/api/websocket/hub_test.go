package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHub_BroadcastToClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer func() { _ = conn.Close() }()

	// Wait for the hub to register the client.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for client registration")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !hub.BroadcastEvent(Event{Type: EventCatalogReloaded, Data: map[string]int{"cards": 42}}) {
		t.Fatal("BroadcastEvent returned false")
	}

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline failed: %v", err)
	}
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}

	if !strings.Contains(string(message), EventCatalogReloaded) {
		t.Errorf("Expected %s event, got %s", EventCatalogReloaded, message)
	}
}

func TestHub_BroadcastAfterStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	hub.Stop()

	if hub.BroadcastEvent(Event{Type: EventDeckShared}) {
		t.Error("Expected BroadcastEvent to return false after Stop")
	}
}

func TestHub_ServeWsAfterStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	// Give the run loop time to mark the hub stopped.
	time.Sleep(50 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	hub.ServeWs(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 after stop, got %d", rec.Code)
	}
}
