package cards

import "lukechampine.com/frand"

// DeckSize is the number of cards in a full deck.
const DeckSize = NumRanks * NumSuits

// Deck is a mutable pile of cards, drawn from the top (the end of the
// slice).
type Deck struct {
	cards []Card
}

// NewDeck returns the full 52-card deck in canonical order.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for _, s := range Suits {
		for _, r := range Ranks {
			d.cards = append(d.cards, Card{Rank: r, Suit: s})
		}
	}
	return d
}

// NewShuffledDeck returns the full deck in random order.
func NewShuffledDeck() *Deck {
	d := NewDeck()
	d.Shuffle()
	return d
}

// Shuffle randomizes the remaining cards.
func (d *Deck) Shuffle() {
	frand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Cards returns the remaining cards, top of the deck last.
func (d *Deck) Cards() []Card {
	return d.cards
}

// Len returns the number of remaining cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Remove takes the given cards out of the deck wherever they sit,
// keeping the order of the rest. Cards not present are ignored.
func (d *Deck) Remove(toRemove []Card) {
	kept := d.cards[:0]
	for _, c := range d.cards {
		found := false
		for _, r := range toRemove {
			if c == r {
				found = true
				break
			}
		}
		if !found {
			kept = append(kept, c)
		}
	}
	d.cards = kept
}

// Draw removes and returns the top card. It panics on an empty deck;
// callers deal at most once per shuffle.
func (d *Deck) Draw() Card {
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// DrawN removes and returns the top n cards.
func (d *Deck) DrawN(n int) []Card {
	out := make([]Card, n)
	for i := 0; i < n; i++ {
		out[i] = d.Draw()
	}
	return out
}
