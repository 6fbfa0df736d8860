// Package cards implements the playing-card model for cribbage: ranks,
// suits, cards, hands, deals, and the full deck.
package cards

import (
	"fmt"
	"strings"
)

// Suit is one of the four playing-card suits. Suits have no ordering;
// they are only ever compared for equality (flush, nobs).
type Suit uint8

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

// Suits lists every suit, in deck-construction order.
var Suits = [NumSuits]Suit{Hearts, Spades, Clubs, Diamonds}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// Letter returns the lowercase ASCII token character for the suit, as
// used in the "5d"-style text grammar.
func (s Suit) Letter() byte {
	switch s {
	case Hearts:
		return 'h'
	case Spades:
		return 's'
	case Clubs:
		return 'c'
	case Diamonds:
		return 'd'
	}
	return '?'
}

// Rank is a card rank, Ace through King. The zero value is not a valid
// rank; valid ranks have ordinals 1 through 13.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

// Ranks lists every rank in ascending ordinal order.
var Ranks = [NumRanks]Rank{
	Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King,
}

const rankLetters = "A23456789TJQK"

// Ordinal returns the rank's position in the Ace..King ordering, 1 to 13.
// Runs and pairs compare ordinals.
func (r Rank) Ordinal() int {
	return int(r)
}

// CountValue returns the rank's counting value for the fifteens rule:
// the face value capped at 10, so Jack, Queen and King all count 10.
func (r Rank) CountValue() int {
	if r > Ten {
		return 10
	}
	return int(r)
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return string(rankLetters[r-1])
}

// Card is an immutable (rank, suit) pair. Cards are comparable; two
// cards are equal iff both fields match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard builds a card from a rank and suit.
func NewCard(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// String renders the card for human output, e.g. "5♦".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Token renders the card in the two-character text grammar, e.g. "5d".
func (c Card) Token() string {
	return c.Rank.String() + string(c.Suit.Letter())
}

// CardsString joins cards with spaces for display.
func CardsString(cs []Card) string {
	strs := make([]string, len(cs))
	for i, c := range cs {
		strs[i] = c.String()
	}
	return strings.Join(strs, " ")
}

// ParseError reports a malformed card token. It carries the offending
// text and its rune position within the parsed input.
type ParseError struct {
	Token string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad card token %q at position %d: %s", e.Token, e.Pos, e.Msg)
}

func parseRank(ch rune) (Rank, bool) {
	switch ch {
	case 'A', 'a', '1':
		return Ace, true
	case '2':
		return Two, true
	case '3':
		return Three, true
	case '4':
		return Four, true
	case '5':
		return Five, true
	case '6':
		return Six, true
	case '7':
		return Seven, true
	case '8':
		return Eight, true
	case '9':
		return Nine, true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

func parseSuit(ch rune) (Suit, bool) {
	switch ch {
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	}
	return 0, false
}

// ParseCard parses a single two-character token like "5d" or "Th".
// Rank and suit characters are case-insensitive and '1' is accepted as
// an alias for Ace.
func ParseCard(token string) (Card, error) {
	cs, err := ParseCards(token)
	if err != nil {
		return Card{}, err
	}
	if len(cs) != 1 {
		return Card{}, &ParseError{Token: token, Msg: "expected a single card"}
	}
	return cs[0], nil
}

// ParseCards parses a whitespace-separated (or simply concatenated)
// sequence of card tokens. On failure the returned error identifies the
// offending token and its position.
func ParseCards(input string) ([]Card, error) {
	out := make([]Card, 0, 6)
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		ch := runes[i]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			i++
			continue
		}
		rank, ok := parseRank(ch)
		if !ok {
			return nil, &ParseError{
				Token: string(ch), Pos: i,
				Msg: "rank must be one of A23456789TJQK",
			}
		}
		if i+1 >= len(runes) {
			return nil, &ParseError{
				Token: string(ch), Pos: i,
				Msg: "unexpected end of input, missing suit",
			}
		}
		suit, ok := parseSuit(runes[i+1])
		if !ok {
			return nil, &ParseError{
				Token: string(runes[i : i+2]), Pos: i,
				Msg: "suit must be one of hscd",
			}
		}
		out = append(out, Card{Rank: rank, Suit: suit})
		i += 2
	}
	return out, nil
}
