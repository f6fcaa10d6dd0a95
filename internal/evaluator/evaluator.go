// Package evaluator ranks Texas Hold'em hands. Evaluation maps 5 or 7 cards
// onto a category plus a tie-break vector; comparison is category first,
// then lexicographic on the vector.
package evaluator

import (
	"errors"
	"sort"

	"github.com/feltworks/holdem/internal/deck"
)

// Category is the ordered hand category, ordinal 1 (weakest) to 10.
// Ranking depends only on the ordinal; display names live in a separate
// lookup.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = map[Category]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// String returns the display name for the category
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// ErrInvalidHandSize is returned when Evaluate is called with a card count
// outside {5, 7}. Callers must never evaluate a partial hand.
var ErrInvalidHandSize = errors.New("evaluation requires exactly 5 or 7 cards")

// Result is a ranked hand: the category ordinal plus the tie-break ranks,
// most significant first.
type Result struct {
	Category Category
	TieBreak []int
}

// Evaluate ranks the best 5-card hand from 5 or 7 cards.
// For 7 cards every one of the 21 five-card subsets is evaluated and the
// maximum kept. Brute force is deliberate: 21 is small and it guarantees
// the true optimum with no heuristic risk.
func Evaluate(cards []deck.Card) (Result, error) {
	switch len(cards) {
	case 5:
		return evaluateFive(cards), nil
	case 7:
		return evaluateSeven(cards), nil
	default:
		return Result{}, ErrInvalidHandSize
	}
}

func evaluateSeven(cards []deck.Card) Result {
	var best Result
	first := true

	subset := make([]deck.Card, 5)
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						subset[0] = cards[a]
						subset[1] = cards[b]
						subset[2] = cards[c]
						subset[3] = cards[d]
						subset[4] = cards[e]
						r := evaluateFive(subset)
						if first || Compare(r, best) > 0 {
							best = r
							first = false
						}
					}
				}
			}
		}
	}
	return best
}

func evaluateFive(cards []deck.Card) Result {
	values := make([]int, 5)
	for i, card := range cards {
		values[i] = card.Value()
	}

	valueCounts := make(map[int]int, 5)
	for _, v := range values {
		valueCounts[v]++
	}

	isFlush := true
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight, straightHigh := checkStraight(values)

	if isStraight && isFlush {
		if straightHigh == 14 {
			return Result{Category: RoyalFlush, TieBreak: []int{14}}
		}
		return Result{Category: StraightFlush, TieBreak: []int{straightHigh}}
	}

	// Rank multiplicities, largest group first
	counts := make([]int, 0, len(valueCounts))
	for _, c := range valueCounts {
		counts = append(counts, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	switch {
	case counts[0] == 4:
		quad := valuesWithCount(valueCounts, 4)[0]
		kicker := valuesWithCount(valueCounts, 1)[0]
		return Result{Category: FourOfAKind, TieBreak: []int{quad, kicker}}

	case counts[0] == 3 && counts[1] == 2:
		trips := valuesWithCount(valueCounts, 3)[0]
		pair := valuesWithCount(valueCounts, 2)[0]
		return Result{Category: FullHouse, TieBreak: []int{trips, pair}}
	}

	if isFlush {
		return Result{Category: Flush, TieBreak: sortedDesc(values)}
	}

	if isStraight {
		return Result{Category: Straight, TieBreak: []int{straightHigh}}
	}

	switch {
	case counts[0] == 3:
		trips := valuesWithCount(valueCounts, 3)[0]
		kickers := valuesWithCount(valueCounts, 1)
		return Result{Category: ThreeOfAKind, TieBreak: append([]int{trips}, kickers...)}

	case counts[0] == 2 && counts[1] == 2:
		pairs := valuesWithCount(valueCounts, 2)
		kicker := valuesWithCount(valueCounts, 1)[0]
		return Result{Category: TwoPair, TieBreak: append(pairs, kicker)}

	case counts[0] == 2:
		pair := valuesWithCount(valueCounts, 2)[0]
		kickers := valuesWithCount(valueCounts, 1)
		return Result{Category: Pair, TieBreak: append([]int{pair}, kickers...)}
	}

	return Result{Category: HighCard, TieBreak: sortedDesc(values)}
}

// checkStraight reports whether the values form a straight and the high
// card of the run. The wheel (A-2-3-4-5) counts with a high card of 5,
// the only case where the ace plays low.
func checkStraight(values []int) (bool, int) {
	unique := make([]int, 0, 5)
	seen := make(map[int]bool, 5)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	sort.Ints(unique)

	if len(unique) == 5 && unique[0] == 2 && unique[1] == 3 && unique[2] == 4 &&
		unique[3] == 5 && unique[4] == 14 {
		return true, 5
	}

	if len(unique) == 5 && unique[4]-unique[0] == 4 {
		return true, unique[4]
	}

	return false, 0
}

// valuesWithCount returns the rank values appearing exactly n times,
// highest first.
func valuesWithCount(valueCounts map[int]int, n int) []int {
	var out []int
	for v, c := range valueCounts {
		if c == n {
			out = append(out, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func sortedDesc(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Compare returns 1 if a beats b, -1 if b beats a, 0 for a true tie.
// The category ordinal is the primary key; ties break element-wise on the
// tie-break vectors.
func Compare(a, b Result) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}

	for i := 0; i < len(a.TieBreak) && i < len(b.TieBreak); i++ {
		if a.TieBreak[i] != b.TieBreak[i] {
			if a.TieBreak[i] > b.TieBreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// CompareCards evaluates both card sets and compares the results.
func CompareCards(a, b []deck.Card) (int, error) {
	ra, err := Evaluate(a)
	if err != nil {
		return 0, err
	}
	rb, err := Evaluate(b)
	if err != nil {
		return 0, err
	}
	return Compare(ra, rb), nil
}

// Strength collapses a hand into a coarse scalar in [0, 1] for downstream
// state discretization: category/10 plus a small bounded kicker bonus.
// This is NOT a win-probability estimate and must not be treated as equity.
func Strength(cards []deck.Card) (float64, error) {
	r, err := Evaluate(cards)
	if err != nil {
		return 0, err
	}

	score := float64(r.Category) / 10.0
	if len(r.TieBreak) > 0 {
		maxKicker := r.TieBreak[0]
		for _, k := range r.TieBreak[1:] {
			if k > maxKicker {
				maxKicker = k
			}
		}
		score += float64(maxKicker-2) / 12.0 * 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score, nil
}
