package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/game"
)

// TagBot is a tight-aggressive bot: it folds weak holdings, calls when
// pot odds justify it, value-bets strong hands at about half pot, and
// mixes in an occasional bluff when checking is free.
type TagBot struct {
	rng            *rand.Rand
	logger         *log.Logger
	bluffFrequency float64
}

// NewTagBot creates a TagBot using the given randomness source
func NewTagBot(rng *rand.Rand, logger *log.Logger) *TagBot {
	return &TagBot{
		rng:            rng,
		logger:         logger,
		bluffFrequency: 0.15,
	}
}

func (b *TagBot) GetAction(view game.GameView) (game.Action, int) {
	strength := handStrength(view)
	odds := potOdds(view)

	b.logger.Debug("tag-bot evaluating",
		"street", view.BettingRound, "strength", strength, "potOdds", odds)

	switch {
	case strength < 0.3:
		if view.CallAmount == 0 {
			if amount := b.betSize(view, 0.3); view.Chips > amount && b.rng.Float64() < b.bluffFrequency {
				return game.Raise, amount
			}
			return game.Check, 0
		}
		// Chase only when the price is tiny
		if odds > 4 && view.CallAmount <= view.Chips/20 {
			return game.Call, 0
		}
		return game.Fold, 0

	case strength < 0.6:
		if view.CallAmount == 0 {
			return game.Check, 0
		}
		if odds >= 2 {
			return game.Call, 0
		}
		return game.Fold, 0

	default:
		if view.CallAmount == 0 {
			if amount := b.betSize(view, 0.5); view.Chips > amount {
				return game.Raise, amount
			}
			return game.Check, 0
		}
		if strength >= 0.85 && view.Chips > view.CallAmount+view.MinRaise {
			return game.Raise, b.betSize(view, 0.5)
		}
		return game.Call, 0
	}
}

// betSize returns a raise increment of roughly fraction-of-pot, capped at
// a fifth of the remaining stack and floored at the minimum raise.
func (b *TagBot) betSize(view game.GameView, fraction float64) int {
	amount := int(float64(view.Pot) * fraction)
	if limit := view.Chips / 5; amount > limit {
		amount = limit
	}
	if amount < view.MinRaise {
		amount = view.MinRaise
	}
	return amount
}
