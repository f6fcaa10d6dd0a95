package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/game"
)

// ManiacBot plays hyper-aggressively regardless of its cards: it bets
// most streets, shoves a short stack, and almost never folds.
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewManiacBot creates a ManiacBot using the given randomness source
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: logger}
}

func (m *ManiacBot) GetAction(view game.GameView) (game.Action, int) {
	shortStacked := view.Chips <= 20*view.BigBlind
	canRaise := view.Chips > view.CallAmount+view.MinRaise

	if shortStacked && m.rng.Float64() < 0.5 {
		m.logger.Debug("maniac shoving short stack", "chips", view.Chips)
		return game.AllIn, 0
	}

	if canRaise && m.rng.Float64() < 0.7 {
		amount := view.MinRaise * 2
		if amount > view.Chips-view.CallAmount {
			amount = view.MinRaise
		}
		return game.Raise, amount
	}

	if view.CallAmount == 0 {
		return game.Check, 0
	}
	if view.Chips > 0 {
		return game.Call, 0
	}
	return game.Fold, 0
}
