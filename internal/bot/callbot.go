package bot

import (
	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/game"
)

// CallBot checks when it can and calls any bet. It never raises and
// never folds, so every hand it plays reaches showdown.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a CallBot
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

func (c *CallBot) GetAction(view game.GameView) (game.Action, int) {
	if view.CallAmount == 0 {
		return game.Check, 0
	}
	c.logger.Debug("call-bot calling", "callAmount", view.CallAmount)
	return game.Call, 0
}
