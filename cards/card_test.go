package cards

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	// every suit
	for _, tc := range []struct {
		token string
		want  Card
	}{
		{"Ah", Card{Ace, Hearts}},
		{"Ad", Card{Ace, Diamonds}},
		{"As", Card{Ace, Spades}},
		{"Ac", Card{Ace, Clubs}},
		// any casing
		{"aC", Card{Ace, Clubs}},
		// '1' is an alias for Ace
		{"1c", Card{Ace, Clubs}},
		{"2c", Card{Two, Clubs}},
		{"3c", Card{Three, Clubs}},
		{"4c", Card{Four, Clubs}},
		{"5c", Card{Five, Clubs}},
		{"6c", Card{Six, Clubs}},
		{"7c", Card{Seven, Clubs}},
		{"8c", Card{Eight, Clubs}},
		{"9c", Card{Nine, Clubs}},
		{"Tc", Card{Ten, Clubs}},
		{"Jc", Card{Jack, Clubs}},
		{"Qc", Card{Queen, Clubs}},
		{"Kc", Card{King, Clubs}},
	} {
		got, err := ParseCards(tc.token)
		require.NoError(t, err, tc.token)
		assert.Equal(t, []Card{tc.want}, got, tc.token)
	}

	// whitespace between tokens is fine, and so is none at all
	got, err := ParseCards(" Ac  Ah ")
	require.NoError(t, err)
	assert.Equal(t, []Card{{Ace, Clubs}, {Ace, Hearts}}, got)

	got, err = ParseCards("5d6h7c8s")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		input string
		token string
	}{
		{"Fc", "F"},
		{"2g", "2g"},
		{"2", "2"},
		{"5d 6h x", "x"},
	} {
		_, err := ParseCards(tc.input)
		require.Error(t, err, tc.input)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), tc.input)
		assert.Equal(t, tc.token, perr.Token, tc.input)
	}
}

func TestCountValue(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}
	for i, r := range Ranks {
		assert.Equal(t, want[i], r.CountValue())
		assert.Equal(t, i+1, r.Ordinal())
	}
}

func TestCardStrings(t *testing.T) {
	c := Card{Five, Diamonds}
	assert.Equal(t, "5♦", c.String())
	assert.Equal(t, "5d", c.Token())
	assert.Equal(t, "T♥ J♠", CardsString([]Card{{Ten, Hearts}, {Jack, Spades}}))
}

func TestNewHandValidation(t *testing.T) {
	cs, err := ParseCards("5d 6h 7c 8s")
	require.NoError(t, err)

	_, err = NewHand(cs)
	assert.NoError(t, err)

	_, err = NewHand(cs[:3])
	var serr *InvalidSizeError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 3, serr.Got)

	dup, err := ParseCards("5d 6h 7c 5d")
	require.NoError(t, err)
	_, err = NewHand(dup)
	var derr *DuplicateCardError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, Card{Five, Diamonds}, derr.Card)

	// a starter equal to a kept card is a duplicate too
	_, err = NewHandWithStarter(cs, Card{Eight, Spades})
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, Card{Eight, Spades}, derr.Card)

	h, err := NewHandWithStarter(cs, Card{Five, Spades})
	require.NoError(t, err)
	st, ok := h.Starter()
	assert.True(t, ok)
	assert.Equal(t, Card{Five, Spades}, st)
	assert.Len(t, h.All(), 5)
}

func TestNewDealValidation(t *testing.T) {
	cs, err := ParseCards("5d 6h 7c 8s 9d Th")
	require.NoError(t, err)

	deal, err := NewDeal(cs)
	require.NoError(t, err)
	assert.Equal(t, 6, deal.Size())
	assert.True(t, deal.Contains(Card{Nine, Diamonds}))
	assert.False(t, deal.Contains(Card{Nine, Hearts}))

	_, err = NewDeal(cs[:5])
	assert.NoError(t, err)

	_, err = NewDeal(cs[:4])
	var serr *InvalidSizeError
	assert.True(t, errors.As(err, &serr))

	_, err = NewDeal([]Card{cs[0], cs[1], cs[2], cs[3], cs[0]})
	var derr *DuplicateCardError
	assert.True(t, errors.As(err, &derr))
}

func TestDeck(t *testing.T) {
	d := NewDeck()
	require.Equal(t, DeckSize, d.Len())

	seen := map[Card]bool{}
	for _, c := range d.Cards() {
		assert.False(t, seen[c], "duplicate %v in fresh deck", c)
		seen[c] = true
	}

	remove, err := ParseCards("5d Td Qd Jd")
	require.NoError(t, err)
	d.Remove(remove)
	assert.Equal(t, DeckSize-4, d.Len())
	for _, c := range remove {
		assert.False(t, containsCard(d.Cards(), c))
	}

	top := d.Cards()[d.Len()-1]
	assert.Equal(t, top, d.Draw())
	assert.Equal(t, DeckSize-5, d.Len())

	hand := d.DrawN(4)
	assert.Len(t, hand, 4)
	assert.Equal(t, DeckSize-9, d.Len())
}

func TestShuffleKeepsAllCards(t *testing.T) {
	d := NewShuffledDeck()
	require.Equal(t, DeckSize, d.Len())
	seen := map[Card]bool{}
	for _, c := range d.Cards() {
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
}

func containsCard(cs []Card, c Card) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
