package discard_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/jmorin/crible/cards"
	"github.com/jmorin/crible/discard"
)

func parse(t testing.TB, tokens string) []cards.Card {
	t.Helper()
	cs, err := cards.ParseCards(tokens)
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func TestBestRanksAllKeepSets(t *testing.T) {
	is := is.New(t)

	results, err := discard.Best(parse(t, "5d 6h 7c 8s 9d Th"))
	is.NoErr(err)
	is.Equal(len(results), 15) // C(6,4)

	results, err = discard.Best(parse(t, "5d 6h 7c 8s 9d"))
	is.NoErr(err)
	is.Equal(len(results), 5) // C(5,4)

	for _, r := range results {
		is.Equal(len(r.Discard), 1)
	}
}

func TestBestInputValidation(t *testing.T) {
	is := is.New(t)

	_, err := discard.Best(parse(t, "5d 6h 7c 8s"))
	var serr *cards.InvalidSizeError
	is.True(errors.As(err, &serr))

	_, err = discard.Best(parse(t, "5d 6h 7c 8s 9d 5d"))
	var derr *cards.DuplicateCardError
	is.True(errors.As(err, &derr))
	is.Equal(derr.Card, cards.Card{Rank: cards.Five, Suit: cards.Diamonds})
}

func TestBestObviousKeep(t *testing.T) {
	is := is.New(t)

	// Keeping 5-5-5-J dominates anything involving the 2 or the 7.
	results, err := discard.Best(parse(t, "5h 5d 5c Js 2d 7c"))
	is.NoErr(err)

	best := results[0]
	is.Equal(best.Certain, 14) // three fives, three 5+J fifteens, three pairs
	keep := map[cards.Card]bool{}
	for _, c := range best.Keep {
		keep[c] = true
	}
	is.True(keep[cards.Card{Rank: cards.Five, Suit: cards.Hearts}])
	is.True(keep[cards.Card{Rank: cards.Five, Suit: cards.Diamonds}])
	is.True(keep[cards.Card{Rank: cards.Five, Suit: cards.Clubs}])
	is.True(keep[cards.Card{Rank: cards.Jack, Suit: cards.Spades}])
}

func TestRankingIsSorted(t *testing.T) {
	is := is.New(t)

	results, err := discard.Best(parse(t, "As 4h 7d Tc Js Qd"))
	is.NoErr(err)
	for i := 1; i < len(results); i++ {
		is.True(results[i-1].Expected >= results[i].Expected)
		if results[i-1].Expected == results[i].Expected {
			is.True(results[i-1].Certain >= results[i].Certain)
		}
	}
}

func TestExpectedNeverBelowCertain(t *testing.T) {
	is := is.New(t)

	// A starter can only add points, so the average over starters is at
	// least the locked-in score.
	results, err := discard.Best(parse(t, "2h 3h 4h 5h 6h Kd"))
	is.NoErr(err)
	for _, r := range results {
		is.True(r.Expected >= float64(r.Certain))
	}
}

func TestDeterministicAcrossThreadCounts(t *testing.T) {
	is := is.New(t)

	deal, err := cards.NewDeal(parse(t, "Ah 5d 5s Jc Qh Kd"))
	is.NoErr(err)

	sequential := discard.NewSelector(1).Rank(deal)
	parallel := discard.NewSelector(8).Rank(deal)
	is.Equal(sequential, parallel)

	// and stable across repeated runs
	again := discard.NewSelector(8).Rank(deal)
	is.Equal(parallel, again)
}

func BenchmarkBestDiscards(b *testing.B) {
	deal, err := cards.NewDeal(parse(b, "5d 6h 7c 8s Jd Kh"))
	if err != nil {
		b.Fatal(err)
	}
	sel := discard.NewSelector(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sel.Rank(deal)
	}
}
