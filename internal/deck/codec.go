package deck

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lightdarktcg/companion/internal/catalog"
)

// Deck codes are the copy/paste sharing format: the deck's card codes as a
// JSON string array, base64-encoded. There is no version field or checksum;
// transport or structural corruption are the only hard failures.

// Decode failure modes.
var (
	// ErrMalformedTransport is returned when the input is not valid base64.
	ErrMalformedTransport = errors.New("deck code is not valid base64")
	// ErrMalformedStructure is returned when the decoded payload is not a
	// JSON array of strings.
	ErrMalformedStructure = errors.New("deck code payload is not a card code list")
)

// Encode serializes the deck to its shareable code string.
func Encode(d *Deck) string {
	codes := make([]string, 0, d.Len())
	for _, card := range d.Cards() {
		codes = append(codes, card.Code)
	}

	// Marshaling a []string cannot fail.
	payload, _ := json.Marshal(codes)
	return base64.StdEncoding.EncodeToString(payload)
}

// Decode reconstructs a deck from a code string against the given catalog.
// Card codes with no catalog match are dropped and counted in unresolved so
// the caller can report partial recovery; unresolved codes alone never fail
// the decode. The reconstructed deck is returned as exported, without
// re-running validation: a previously exported deck is trusted as-is.
func Decode(code string, cat *catalog.Catalog) (d *Deck, unresolved int, err error) {
	payload, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedTransport, err)
	}

	var codes []string
	if err := json.Unmarshal(payload, &codes); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedStructure, err)
	}

	d = New()
	for _, cardCode := range codes {
		card := cat.ByCode(cardCode)
		if card == nil {
			unresolved++
			continue
		}
		d.cards = append(d.cards, card)
	}

	return d, unresolved, nil
}
