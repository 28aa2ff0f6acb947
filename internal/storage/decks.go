package storage

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// SharedDeck is a named deck stored server-side for sharing. The deck
// itself stays in its exported code form; the card count is denormalized at
// save time for listings. EditKeyHash is empty for unprotected decks.
type SharedDeck struct {
	ID          string
	Name        string
	DeckCode    string
	CardCount   int
	EditKeyHash string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Protected reports whether the deck requires an edit key for deletion.
func (d *SharedDeck) Protected() bool {
	return d.EditKeyHash != ""
}

// ErrDeckNotFound is returned when no shared deck matches the given id.
var ErrDeckNotFound = errors.New("shared deck not found")

// newDeckID generates a random 8-byte hex identifier. Short enough to live
// in a URL, long enough that guessing is impractical.
func newDeckID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate deck id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SaveDeck stores a new shared deck and returns it with its generated id.
// editKey may be empty for an unprotected deck.
func (db *DB) SaveDeck(ctx context.Context, name, deckCode string, cardCount int, editKey string) (*SharedDeck, error) {
	id, err := newDeckID()
	if err != nil {
		return nil, err
	}

	var keyHash string
	if editKey != "" {
		keyHash, err = HashEditKey(editKey)
		if err != nil {
			return nil, fmt.Errorf("failed to hash edit key: %w", err)
		}
	}

	query := `
		INSERT INTO shared_decks (id, name, deck_code, card_count, edit_key_hash)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := db.conn.ExecContext(ctx, query, id, name, deckCode, cardCount, nullable(keyHash)); err != nil {
		return nil, fmt.Errorf("failed to save shared deck: %w", err)
	}

	return db.GetDeck(ctx, id)
}

// GetDeck retrieves a shared deck by id.
func (db *DB) GetDeck(ctx context.Context, id string) (*SharedDeck, error) {
	query := `
		SELECT id, name, deck_code, card_count, COALESCE(edit_key_hash, ''), created_at, updated_at
		FROM shared_decks
		WHERE id = ?
	`

	var d SharedDeck
	err := db.conn.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.DeckCode, &d.CardCount, &d.EditKeyHash, &d.CreatedAt, &d.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shared deck: %w", err)
	}

	return &d, nil
}

// ListRecentDecks retrieves the most recently created shared decks.
func (db *DB) ListRecentDecks(ctx context.Context, limit int) ([]*SharedDeck, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, name, deck_code, card_count, COALESCE(edit_key_hash, ''), created_at, updated_at
		FROM shared_decks
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared decks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var decks []*SharedDeck
	for rows.Next() {
		var d SharedDeck
		err := rows.Scan(&d.ID, &d.Name, &d.DeckCode, &d.CardCount, &d.EditKeyHash, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shared deck: %w", err)
		}
		decks = append(decks, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shared decks: %w", err)
	}

	return decks, nil
}

// DeleteDeck removes a shared deck by id.
func (db *DB) DeleteDeck(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, "DELETE FROM shared_decks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shared deck: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrDeckNotFound
	}

	return nil
}

// nullable maps an empty string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
