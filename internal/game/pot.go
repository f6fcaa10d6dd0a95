package game

import (
	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/evaluator"
)

// Payout is one player's share of a settled pot.
type Payout struct {
	Player *Player
	Result evaluator.Result
	Amount int
	// Showdown is false when the pot was won uncontested and no hands
	// were evaluated.
	Showdown bool
}

// SettlePot distributes the pot among the non-folded players.
//
// With a single contender the pot is awarded without evaluating anything:
// their cards stay face down and the Result is zero-valued. Otherwise each
// contender's best five-card hand from hole cards plus board decides, with
// ties splitting the pot evenly. An indivisible remainder goes one chip at
// a time to the earliest winners in seat order, keeping settlement
// deterministic.
//
// Only one pot is modeled. When players are all-in for different stack
// depths the shorter stacks are not capped to their contribution, so
// distribution in that scenario is not side-pot correct.
func SettlePot(contenders []*Player, board []deck.Card, pot int) ([]Payout, error) {
	if len(contenders) == 0 {
		return nil, nil
	}

	if len(contenders) == 1 {
		winner := contenders[0]
		winner.WinChips(pot)
		return []Payout{{Player: winner, Amount: pot}}, nil
	}

	results := make([]evaluator.Result, len(contenders))
	for i, p := range contenders {
		cards := make([]deck.Card, 0, len(p.HoleCards)+len(board))
		cards = append(cards, p.HoleCards...)
		cards = append(cards, board...)

		r, err := evaluator.Evaluate(cards)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}

	best := results[0]
	for _, r := range results[1:] {
		if evaluator.Compare(r, best) > 0 {
			best = r
		}
	}

	var winners []int
	for i, r := range results {
		if evaluator.Compare(r, best) == 0 {
			winners = append(winners, i)
		}
	}

	share := pot / len(winners)
	remainder := pot % len(winners)

	payouts := make([]Payout, 0, len(winners))
	for n, i := range winners {
		amount := share
		if n < remainder {
			amount++
		}
		p := contenders[i]
		p.WinChips(amount)
		payouts = append(payouts, Payout{
			Player:   p,
			Result:   results[i],
			Amount:   amount,
			Showdown: true,
		})
	}

	return payouts, nil
}
