package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/game"
)

// RandBot picks a uniform random legal action. Raise sizing is a random
// increment between the minimum raise and the pot.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a RandBot using the given randomness source
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) GetAction(view game.GameView) (game.Action, int) {
	actions := []game.Action{game.Fold}
	if view.CallAmount == 0 {
		actions = append(actions, game.Check)
	} else if view.Chips > 0 {
		actions = append(actions, game.Call)
	}
	if view.Chips > view.CallAmount+view.MinRaise {
		actions = append(actions, game.Raise)
	}

	action := actions[r.rng.Intn(len(actions))]
	amount := 0
	if action == game.Raise {
		ceiling := view.Pot
		if ceiling < view.MinRaise {
			ceiling = view.MinRaise
		}
		amount = view.MinRaise + r.rng.Intn(ceiling-view.MinRaise+1)
	}

	r.logger.Debug("rand-bot acting", "action", action, "amount", amount)
	return action, amount
}
