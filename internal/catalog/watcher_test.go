package catalog

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeTempCatalog(t, sampleCatalogJSON)

	initial, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	reloaded := make(chan *Catalog, 1)
	w, err := NewWatcher(WatcherConfig{
		Path:     path,
		Initial:  initial,
		Debounce: 50 * time.Millisecond,
		OnReload: func(c *Catalog) { reloaded <- c },
	})
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer w.Stop()

	updated := `{"cards": [{"name": "Eclipse", "type": "Effect", "archetype": "Luz", "ct": 5, "code": "ld-004", "description": ""}]}`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("Failed to rewrite catalog: %v", err)
	}

	select {
	case c := <-reloaded:
		if c.Len() != 1 {
			t.Errorf("Expected reloaded catalog with 1 card, got %d", c.Len())
		}
		if w.Catalog().ByCode("ld-004") == nil {
			t.Error("Expected watcher to serve the reloaded catalog")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for catalog reload")
	}
}

func TestWatcher_KeepsPreviousOnBadReload(t *testing.T) {
	path := writeTempCatalog(t, sampleCatalogJSON)

	initial, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	w, err := NewWatcher(WatcherConfig{
		Path:     path,
		Initial:  initial,
		Debounce: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite catalog: %v", err)
	}

	// Give the debounced reload time to run and fail.
	time.Sleep(500 * time.Millisecond)

	if w.Catalog() != initial {
		t.Error("Expected watcher to keep the previous catalog after a failed reload")
	}
}

func TestNewWatcher_Validation(t *testing.T) {
	if _, err := NewWatcher(WatcherConfig{Initial: &Catalog{}}); err == nil {
		t.Error("Expected error for empty path")
	}
	if _, err := NewWatcher(WatcherConfig{Path: "catalog.json"}); err == nil {
		t.Error("Expected error for nil initial catalog")
	}
}
