// Package deck implements the deck-in-progress: the validated mutable card
// sequence behind the deck builder, its statistics, and the shareable deck
// code format.
package deck

import (
	"errors"
	"fmt"

	"github.com/lightdarktcg/companion/internal/catalog"
)

const (
	// MinSize is the minimum card count for a submittable deck. It is
	// advisory: TryAdd never enforces it, so players can export an
	// in-progress deck. Stats surfaces it via IsSizeValid.
	MinSize = 30
	// MaxSize is the hard upper bound enforced at insertion time.
	MaxSize = 35
)

// Rejection reasons returned by TryAdd. All are expected, user-facing
// conditions; the deck is left unchanged when one is returned.
var (
	// ErrDeckFull is returned when the deck already holds MaxSize cards.
	ErrDeckFull = errors.New("deck is full")
	// ErrDuplicateCard is returned when the deck already holds a card with
	// the same code. Decks allow a single copy of each card.
	ErrDuplicateCard = errors.New("card already in deck")
	// ErrIncompatibleHero is returned when a hero's identity differs from
	// the identity of the heroes already in the deck.
	ErrIncompatibleHero = errors.New("incompatible hero identity")
)

// Deck is an ordered sequence of catalog cards owned by a single editing
// session. Insertion order is preserved for display; it has no effect on
// validity. The zero value is an empty deck ready for use.
type Deck struct {
	cards []*catalog.Card
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{}
}

// FromCards returns a deck holding the given cards as-is, without running
// the insertion checks. Use it for decks that were already validated, such
// as a decoded share code.
func FromCards(cards []*catalog.Card) *Deck {
	d := New()
	d.cards = append(d.cards, cards...)
	return d
}

// Cards returns the deck's cards in insertion order. Callers must not
// modify the returned slice.
func (d *Deck) Cards() []*catalog.Card {
	return d.cards
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Contains reports whether the deck holds a card with the given code.
func (d *Deck) Contains(code string) bool {
	for _, card := range d.cards {
		if card.Code == code {
			return true
		}
	}
	return false
}

// TryAdd validates the candidate against the deck invariants and appends it
// on success. On rejection the deck is unchanged and the returned error
// matches one of ErrDeckFull, ErrDuplicateCard, or ErrIncompatibleHero via
// errors.Is.
func (d *Deck) TryAdd(candidate *catalog.Card) error {
	if len(d.cards) >= MaxSize {
		return fmt.Errorf("%w: limit is %d cards", ErrDeckFull, MaxSize)
	}
	if d.Contains(candidate.Code) {
		return fmt.Errorf("%w: only one copy of %q is allowed", ErrDuplicateCard, candidate.Name)
	}
	if candidate.Type == catalog.TypeHero {
		if first := d.firstHero(); first != nil {
			want := HeroIdentity(first.Name)
			got := HeroIdentity(candidate.Name)
			if want != got {
				return fmt.Errorf("%w: deck is committed to %q heroes, %q is %q",
					ErrIncompatibleHero, want, candidate.Name, got)
			}
		}
	}

	d.cards = append(d.cards, candidate)
	return nil
}

// RemoveAt removes the card at the given position. The position must be in
// range; an out-of-range position is a caller bug, not a recoverable
// condition.
func (d *Deck) RemoveAt(pos int) {
	d.cards = append(d.cards[:pos], d.cards[pos+1:]...)
}

// Clear empties the deck. Confirmation is the caller's concern.
func (d *Deck) Clear() {
	d.cards = nil
}

func (d *Deck) firstHero() *catalog.Card {
	for _, card := range d.cards {
		if card.Type == catalog.TypeHero {
			return card
		}
	}
	return nil
}
