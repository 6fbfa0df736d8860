// Package score implements the cribbage show-scoring rules. Every rule
// is an independent scan over the same hand; a card may count toward
// several categories at once.
package score

import (
	"github.com/samber/lo"

	"github.com/jmorin/crible/cards"
	"github.com/jmorin/crible/subsets"
)

// Breakdown itemizes a hand's score by rule category. Total is always
// the sum of the five subtotals.
type Breakdown struct {
	Fifteens int `json:"fifteens"`
	Pairs    int `json:"pairs"`
	Runs     int `json:"runs"`
	Flush    int `json:"flush"`
	Nobs     int `json:"nobs"`
	Total    int `json:"total"`
}

// Hand scores a regular (non-crib) hand.
func Hand(h cards.Hand) Breakdown {
	return scoreHand(h, false)
}

// Crib scores a crib hand. The only rule difference is the flush: a
// crib flush needs all five cards, starter included, to share a suit.
func Crib(h cards.Hand) Breakdown {
	return scoreHand(h, true)
}

func scoreHand(h cards.Hand, crib bool) Breakdown {
	all := h.All()

	// Count values and ordinals are read many times across the rule
	// scans; compute them once.
	var values [5]int
	var ordinals [5]int
	for i, c := range all {
		values[i] = c.Rank.CountValue()
		ordinals[i] = c.Rank.Ordinal()
	}

	b := Breakdown{
		Fifteens: scoreFifteens(values[:len(all)]),
		Pairs:    scorePairs(ordinals[:len(all)]),
		Runs:     scoreRuns(ordinals[:len(all)]),
		Flush:    scoreFlush(h, crib),
	}
	if starter, ok := h.Starter(); ok {
		b.Nobs = scoreNobs(h, starter)
	}
	b.Total = b.Fifteens + b.Pairs + b.Runs + b.Flush + b.Nobs
	return b
}

// scoreFifteens awards 2 points for every subset of cards whose count
// values sum to exactly 15. Overlapping subsets all count.
func scoreFifteens(values []int) int {
	fifteens := 0
	subsets.EachUpTo(len(values), len(values), func(idx []int) {
		sum := 0
		for _, i := range idx {
			sum += values[i]
		}
		if sum == 15 {
			fifteens++
		}
	})
	return fifteens * 2
}

// scorePairs awards 2 points per unordered pair of equal ranks. Trips
// and quads fall out of the pairwise count (3 and 6 pairs).
func scorePairs(ordinals []int) int {
	pairs := 0
	for i := 0; i < len(ordinals); i++ {
		for j := i + 1; j < len(ordinals); j++ {
			if ordinals[i] == ordinals[j] {
				pairs++
			}
		}
	}
	return pairs * 2
}

// scoreRuns scores maximal-length runs of 3 or more contiguous ranks.
// Duplicated ranks multiply the run (double and triple runs), each copy
// scoring the run's full length. Shorter runs are superseded: only
// segments of the maximum length present score.
func scoreRuns(ordinals []int) int {
	var counts [cards.NumRanks + 1]int
	for _, o := range ordinals {
		counts[o]++
	}

	maxLen := 0
	points := 0
	for start := 1; start <= cards.NumRanks; {
		if counts[start] == 0 {
			start++
			continue
		}
		end := start
		for end+1 <= cards.NumRanks && counts[end+1] > 0 {
			end++
		}
		length := end - start + 1
		if length >= 3 {
			combos := 1
			for o := start; o <= end; o++ {
				combos *= counts[o]
			}
			switch {
			case length > maxLen:
				maxLen = length
				points = length * combos
			case length == maxLen:
				points += length * combos
			}
		}
		start = end + 1
	}
	return points
}

// scoreFlush awards 4 for four kept cards of one suit, 5 when the
// starter matches too. A crib flush only scores the 5-card form.
func scoreFlush(h cards.Hand, crib bool) int {
	kept := h.Kept()
	same := lo.EveryBy(kept[1:], func(c cards.Card) bool {
		return c.Suit == kept[0].Suit
	})
	if !same {
		return 0
	}
	if starter, ok := h.Starter(); ok && starter.Suit == kept[0].Suit {
		return 5
	}
	if crib {
		return 0
	}
	return 4
}

// scoreNobs awards 1 point for holding the jack of the starter's suit.
func scoreNobs(h cards.Hand, starter cards.Card) int {
	nob := cards.Card{Rank: cards.Jack, Suit: starter.Suit}
	for _, c := range h.Kept() {
		if c == nob {
			return 1
		}
	}
	return 0
}
