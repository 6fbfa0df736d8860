package cards

import "fmt"

// HandSize is the number of kept cards in a scorable cribbage hand.
const HandSize = 4

// DuplicateCardError reports the same physical card appearing twice
// within one hand or deal.
type DuplicateCardError struct {
	Card Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card %v", e.Card)
}

// InvalidSizeError reports the wrong number of cards for the requested
// operation.
type InvalidSizeError struct {
	Got  int
	Want string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("wrong number of cards: got %d, want %s", e.Got, e.Want)
}

// Hand is the 4 kept cards plus an optional starter. It is validated at
// construction; scoring a constructed Hand cannot fail.
type Hand struct {
	kept       [HandSize]Card
	starter    Card
	hasStarter bool
}

// checkDistinct returns a DuplicateCardError if any card repeats.
func checkDistinct(cs []Card) error {
	var seen [NumRanks * NumSuits]bool
	for _, c := range cs {
		idx := int(c.Suit)*NumRanks + c.Rank.Ordinal() - 1
		if seen[idx] {
			return &DuplicateCardError{Card: c}
		}
		seen[idx] = true
	}
	return nil
}

// NewHand builds a hand from exactly 4 kept cards and no starter.
func NewHand(kept []Card) (Hand, error) {
	if len(kept) != HandSize {
		return Hand{}, &InvalidSizeError{Got: len(kept), Want: "4"}
	}
	if err := checkDistinct(kept); err != nil {
		return Hand{}, err
	}
	var h Hand
	copy(h.kept[:], kept)
	return h, nil
}

// NewHandWithStarter builds a hand from exactly 4 kept cards plus a
// starter drawn after the discard.
func NewHandWithStarter(kept []Card, starter Card) (Hand, error) {
	if len(kept) != HandSize {
		return Hand{}, &InvalidSizeError{Got: len(kept) + 1, Want: "5 (4 kept + starter)"}
	}
	all := make([]Card, 0, HandSize+1)
	all = append(all, kept...)
	all = append(all, starter)
	if err := checkDistinct(all); err != nil {
		return Hand{}, err
	}
	var h Hand
	copy(h.kept[:], kept)
	h.starter = starter
	h.hasStarter = true
	return h, nil
}

// Kept returns the 4 kept cards.
func (h Hand) Kept() [HandSize]Card {
	return h.kept
}

// Starter returns the starter card, if one was drawn.
func (h Hand) Starter() (Card, bool) {
	return h.starter, h.hasStarter
}

// All returns the kept cards followed by the starter when present.
func (h Hand) All() []Card {
	out := make([]Card, HandSize, HandSize+1)
	copy(out, h.kept[:])
	if h.hasStarter {
		out = append(out, h.starter)
	}
	return out
}

func (h Hand) String() string {
	s := CardsString(h.kept[:])
	if h.hasStarter {
		s += " | " + h.starter.String()
	}
	return s
}

// Deal is the 5 or 6 cards dealt to a player before discarding to the
// crib. It is the input to the discard search and is never itself
// scored.
type Deal struct {
	cards []Card
}

// NewDeal validates a 5- or 6-card deal.
func NewDeal(cs []Card) (Deal, error) {
	if len(cs) != 5 && len(cs) != 6 {
		return Deal{}, &InvalidSizeError{Got: len(cs), Want: "5 or 6"}
	}
	if err := checkDistinct(cs); err != nil {
		return Deal{}, err
	}
	d := Deal{cards: make([]Card, len(cs))}
	copy(d.cards, cs)
	return d, nil
}

// Cards returns the dealt cards in their original order.
func (d Deal) Cards() []Card {
	return d.cards
}

// Size returns the number of dealt cards.
func (d Deal) Size() int {
	return len(d.cards)
}

// Contains reports whether the deal holds the given card.
func (d Deal) Contains(c Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}
