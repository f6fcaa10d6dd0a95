// Package bot provides rule-based decision agents for automated play.
// Each bot implements game.Agent and decides purely from the view it is
// handed; none of them retain state between hands.
package bot

import (
	"math"
	"sort"

	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/evaluator"
	"github.com/feltworks/holdem/internal/game"
)

// potOdds returns pot size relative to the call amount. With nothing to
// call the odds are infinite.
func potOdds(view game.GameView) float64 {
	if view.CallAmount == 0 {
		return math.Inf(1)
	}
	return float64(view.Pot) / float64(view.CallAmount)
}

// handStrength estimates a 0-1 strength for the hole cards plus whatever
// board has been revealed. With a complete 5- or 7-card hand it defers to
// the evaluator; on earlier streets it uses coarse heuristics.
func handStrength(view game.GameView) float64 {
	hole := parseCards(view.HoleCards)
	board := parseCards(view.CommunityCards)
	all := append(append([]deck.Card{}, hole...), board...)

	switch {
	case len(all) == 5 || len(all) == 7:
		s, err := evaluator.Strength(all)
		if err != nil {
			return 0.2
		}
		return s
	case len(all) >= 3:
		return partialStrength(all)
	default:
		return preflopStrength(hole)
	}
}

func parseCards(strs []string) []deck.Card {
	cards := make([]deck.Card, 0, len(strs))
	for _, s := range strs {
		c, err := deck.ParseCard(s)
		if err != nil {
			continue
		}
		cards = append(cards, c)
	}
	return cards
}

// preflopStrength scores two hole cards: pocket pairs by rank, suited
// connectors, then high-card combinations.
func preflopStrength(hole []deck.Card) float64 {
	if len(hole) != 2 {
		return 0.2
	}
	a, b := hole[0], hole[1]

	if a.Rank == b.Rank {
		switch {
		case a.Value() >= 10:
			return 0.9
		case a.Value() >= 7:
			return 0.7
		default:
			return 0.5
		}
	}

	if a.Suit == b.Suit && abs(a.Value()-b.Value()) == 1 {
		return 0.8
	}

	high := max(a.Value(), b.Value())
	low := min(a.Value(), b.Value())
	switch {
	case high == 14 && low >= 11:
		return 0.85
	case high == 14 && low >= 9:
		return 0.6
	case high == 14:
		return 0.4
	case high >= 13 && low >= 11:
		return 0.7
	case high >= 13 && low >= 9:
		return 0.5
	case high >= 13:
		return 0.3
	}
	return 0.2
}

// partialStrength scores an incomplete hand (flop or turn before the
// board fills in): made pairs and trips, plus flush and straight draws.
func partialStrength(cards []deck.Card) float64 {
	rankCounts := make(map[int]int)
	suitCounts := make(map[deck.Suit]int)
	for _, c := range cards {
		rankCounts[c.Value()]++
		suitCounts[c.Suit]++
	}

	score := 0.3
	bestCount, bestPair := 0, 0
	for v, n := range rankCounts {
		if n > bestCount {
			bestCount = n
		}
		if n == 2 && v > bestPair {
			bestPair = v
		}
	}
	switch {
	case bestCount >= 3:
		score = 0.8
	case bestCount == 2 && bestPair >= 10:
		score = 0.6
	case bestCount == 2:
		score = 0.5
	}

	for _, n := range suitCounts {
		if n >= 3 {
			score += 0.1
			break
		}
	}

	values := make([]int, 0, len(rankCounts))
	for v := range rankCounts {
		values = append(values, v)
	}
	sort.Ints(values)
	run, bestRun := 1, 1
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1]+1 {
			run++
			if run > bestRun {
				bestRun = run
			}
		} else {
			run = 1
		}
	}
	if bestRun >= 3 {
		score += 0.1
	}

	if score > 0.9 {
		score = 0.9
	}
	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
