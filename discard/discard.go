// Package discard ranks every way to keep 4 cards out of a 5- or
// 6-card deal by expected show score over all unseen starters.
package discard

import (
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/jmorin/crible/cards"
	"github.com/jmorin/crible/score"
	"github.com/jmorin/crible/subsets"
)

// Result is the evaluation of one keep-set. Certain is the score the 4
// kept cards lock in with no starter; Expected averages the full score
// over every starter not in the deal.
type Result struct {
	Keep     [cards.HandSize]cards.Card
	Discard  []cards.Card
	Certain  int
	Expected float64
}

// Selector runs the discard search. It is stateless apart from its
// thread count and safe for concurrent use.
type Selector struct {
	threads int
}

// NewSelector returns a selector running on the given number of worker
// threads; zero or negative means one per CPU.
func NewSelector(threads int) *Selector {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Selector{threads: threads}
}

// Best validates a raw 5- or 6-card deal and ranks its keep-sets with a
// default selector.
func Best(cs []cards.Card) ([]Result, error) {
	deal, err := cards.NewDeal(cs)
	if err != nil {
		return nil, err
	}
	return NewSelector(0).Rank(deal), nil
}

// Rank evaluates every 4-card keep-set of the deal and returns them
// sorted by expected score descending, then certain score descending,
// then keep-set enumeration order. The ordering is deterministic
// regardless of thread count: workers write into disjoint slots and the
// final stable sort runs after all of them finish.
func (s *Selector) Rank(deal cards.Deal) []Result {
	start := time.Now()

	unseen := cards.NewDeck()
	unseen.Remove(deal.Cards())
	starters := unseen.Cards()

	dealt := deal.Cards()
	var keeps [][cards.HandSize]cards.Card
	subsets.Each(deal.Size(), cards.HandSize, func(idx []int) {
		var keep [cards.HandSize]cards.Card
		for i, j := range idx {
			keep[i] = dealt[j]
		}
		keeps = append(keeps, keep)
	})

	results := make([]Result, len(keeps))
	g := errgroup.Group{}
	g.SetLimit(s.threads)
	for i := range keeps {
		i := i
		g.Go(func() error {
			results[i] = evaluate(keeps[i], dealt, starters)
			return nil
		})
	}
	// The workers cannot fail; Wait only synchronizes them.
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Expected != results[j].Expected {
			return results[i].Expected > results[j].Expected
		}
		return results[i].Certain > results[j].Certain
	})

	log.Debug().
		Int("keep-sets", len(keeps)).
		Int("starters", len(starters)).
		Dur("elapsed", time.Since(start)).
		Msg("ranked discards")
	return results
}

func evaluate(keep [cards.HandSize]cards.Card, dealt, starters []cards.Card) Result {
	h, err := cards.NewHand(keep[:])
	if err != nil {
		// Keep-sets come from a validated deal.
		panic(err)
	}

	sum := lo.SumBy(starters, func(st cards.Card) int {
		hs, err := cards.NewHandWithStarter(keep[:], st)
		if err != nil {
			panic(err)
		}
		return score.Hand(hs).Total
	})

	var discarded []cards.Card
	for _, c := range dealt {
		inKeep := false
		for _, k := range keep {
			if c == k {
				inKeep = true
				break
			}
		}
		if !inKeep {
			discarded = append(discarded, c)
		}
	}

	return Result{
		Keep:     keep,
		Discard:  discarded,
		Certain:  score.Hand(h).Total,
		Expected: float64(sum) / float64(len(starters)),
	}
}
